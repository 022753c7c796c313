//go:build windows
// +build windows

package handler

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// setCmdLine hands a pre-quoted argument line to the program untouched.
func setCmdLine(cmd *exec.Cmd, c Command) {
	if c.Line == "" {
		return
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: syscall.EscapeArg(c.Path) + " " + c.Line,
	}
}

func hideWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}
