package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/focussphere/internal/watcher"
)

func TestPIDFile_AcquireAndRelease(t *testing.T) {
	p := pidFile(filepath.Join(t.TempDir(), "nested", "watch.pid"))

	release, err := p.acquire()
	require.NoError(t, err)
	pid, err := p.read()
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), pid)

	release()
	_, err = os.Stat(string(p))
	assert.True(t, os.IsNotExist(err))
}

func TestPIDFile_ReplacesStaleOwnPID(t *testing.T) {
	p := pidFile(filepath.Join(t.TempDir(), "watch.pid"))
	require.NoError(t, os.WriteFile(string(p), []byte(strconv.Itoa(os.Getpid())+"\n"), 0o644))

	release, err := p.acquire()
	require.NoError(t, err)
	release()
}

func TestPIDFile_StopWithoutDaemon(t *testing.T) {
	p := pidFile(filepath.Join(t.TempDir(), "watch.pid"))

	err := p.stop(&bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no daemon running")
}

func TestPIDFile_ReadGarbage(t *testing.T) {
	p := pidFile(filepath.Join(t.TempDir(), "watch.pid"))
	require.NoError(t, os.WriteFile(string(p), []byte("not a pid"), 0o644))

	_, err := p.read()
	assert.Error(t, err)
}

func TestPrintAlert(t *testing.T) {
	at := time.Date(2026, 10, 17, 18, 5, 0, 0, time.UTC)
	var b bytes.Buffer

	printAlert(&b, watcher.Alert{Level: "critical", Title: "Budget nearly spent", Message: "Spent 950.00", Time: at})
	printAlert(&b, watcher.Alert{Level: "info", Title: "Starting soon: Standup", Time: at})

	assert.Equal(t,
		"[2026-10-17 18:05:00] !! Budget nearly spent\n"+
			"    Spent 950.00\n"+
			"[2026-10-17 18:05:00] -  Starting soon: Standup\n",
		b.String())
}
