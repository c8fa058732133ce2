//go:build !windows

package app

import (
	"os"
	"syscall"
)

var shutdownSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

func terminate(pid int) error {
	return syscall.Kill(pid, syscall.SIGTERM)
}

// processExists reports whether pid is alive by sending it signal 0.
func processExists(pid int) bool {
	return syscall.Kill(pid, 0) == nil
}
