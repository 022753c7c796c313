//go:build windows
// +build windows

package main

import (
	"errors"
	"os"
	"strings"
	"syscall"

	"github.com/abakum/ssh-handler/handler"
	"github.com/mattn/go-isatty"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const (
	protocolCommand = `ssh\shell\open\command`
	userClasses     = `Software\Classes\`
)

// Is there a console to write to? A protocol handler started by the shell
// usually has none.
func hasConsole() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func messageBox(caption, text string, icon uint32) {
	t, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return
	}
	c, err := windows.UTF16PtrFromString(caption)
	if err != nil {
		return
	}
	windows.MessageBox(0, t, c, windows.MB_OK|icon)
}

func showError(text string) {
	if hasConsole() {
		return
	}
	messageBox("SSH Handler Error", text, windows.MB_ICONERROR)
}

func showInfo(caption, text string) {
	if hasConsole() {
		l.Println(caption + "\n" + text)
		return
	}
	messageBox(caption, text, windows.MB_ICONINFORMATION)
}

// Options of the registered ssh protocol command.
func registeredOptions() ([]string, error) {
	k, err := registry.OpenKey(registry.CLASSES_ROOT, protocolCommand, registry.QUERY_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer k.Close()

	command, _, err := k.GetStringValue("")
	if errors.Is(err, registry.ErrNotExist) || strings.TrimSpace(command) == "" {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	argv, err := windows.DecomposeCommandLine(command)
	if err != nil {
		return nil, err
	}
	return handler.RegisteredOptions(argv), nil
}

func registrationCommand(exe string, options []string) string {
	s := []string{`"` + exe + `"`}
	for _, option := range options {
		s = append(s, syscall.EscapeArg(option))
	}
	return strings.Join(append(s, `"%1"`), " ")
}

// Register exe with options as the ssh protocol handler of the current user.
func register(exe string, options []string) (string, error) {
	root, _, err := registry.CreateKey(registry.CURRENT_USER, userClasses+"ssh", registry.ALL_ACCESS)
	if err != nil {
		return "", err
	}
	defer root.Close()
	if err = root.SetStringValue("", "URL:SSH Protocol"); err != nil {
		return "", err
	}
	if err = root.SetStringValue("URL Protocol", ""); err != nil {
		return "", err
	}

	rk, _, err := registry.CreateKey(registry.CURRENT_USER, userClasses+protocolCommand, registry.ALL_ACCESS)
	if err != nil {
		return "", err
	}
	defer rk.Close()
	command := registrationCommand(exe, options)
	return command, rk.SetStringValue("", command)
}
