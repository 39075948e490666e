//go:build windows

package main

import (
	"syscall"

	"github.com/cjelland/redwall/config"
	"github.com/cjelland/redwall/util/log"
	"golang.org/x/sys/windows"
)

var mutex windows.Handle

// acquireLock tries to acquire a single-instance lock (named mutex on Windows).
func acquireLock() (bool, error) {
	namePtr, err := syscall.UTF16PtrFromString(config.AppName + "_SingleInstanceMutex")
	if err != nil {
		return false, err
	}

	// CreateMutex reports a duplicate through its own error return; reading
	// GetLastError here could pick up a value clobbered by a later syscall.
	mutex, err = windows.CreateMutex(nil, false, namePtr)
	if err != nil {
		if err == windows.ERROR_ALREADY_EXISTS {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// releaseLock releases the single-instance lock.
func releaseLock() {
	if mutex != 0 {
		if err := windows.ReleaseMutex(mutex); err != nil {
			log.Printf("Failed to release mutex: %v", err)
		}
		if err := windows.CloseHandle(mutex); err != nil {
			log.Printf("Failed to close mutex handle: %v", err)
		}
	}
}
