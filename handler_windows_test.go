//go:build windows
// +build windows

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/windows"

	"github.com/abakum/ssh-handler/handler"
)

func TestRegistrationCommand(t *testing.T) {
	assert := assert.New(t)
	exe := `C:\Program Files\ssh-handler\ssh-handler.exe`
	options := []string{"/openssh", `/mintty:C:\Program Files\cygwin\bin\mintty.exe`, "/bash"}

	command := registrationCommand(exe, options)
	assert.Equal(`"C:\Program Files\ssh-handler\ssh-handler.exe" /openssh "/mintty:C:\Program Files\cygwin\bin\mintty.exe" /bash "%1"`, command)

	argv, err := windows.DecomposeCommandLine(command)
	assert.NoError(err)
	assert.Equal(options, handler.RegisteredOptions(argv))
}
