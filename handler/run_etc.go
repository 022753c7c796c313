//go:build !windows
// +build !windows

package handler

import "os/exec"

func setCmdLine(*exec.Cmd, Command) {}

func hideWindow(*exec.Cmd) {}
