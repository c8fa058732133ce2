//go:build windows

package app

import "os"

var shutdownSignals = []os.Signal{os.Interrupt}

// terminate kills pid outright; Windows has no SIGTERM.
func terminate(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return proc.Kill()
}

// processExists reports whether pid is live. FindProcess opens a handle on
// Windows, so it fails for processes that have exited.
func processExists(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	_ = proc.Release()
	return true
}
