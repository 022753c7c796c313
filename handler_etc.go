//go:build !windows
// +build !windows

package main

import (
	"errors"
)

var errWindowsOnly = errors.New("ssh protocol registration requires Windows")

// Errors are already in the log.
func showError(string) {}

func showInfo(caption, text string) {
	l.Println(caption + "\n" + text)
}

func registeredOptions() ([]string, error) {
	return nil, errWindowsOnly
}

func register(string, []string) (string, error) {
	return "", errWindowsOnly
}
