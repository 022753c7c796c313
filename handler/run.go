package handler

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
)

// Runner starts programs.
type Runner interface {
	// Start spawns c and does not wait for it.
	Start(c Command) error
	// Output runs a helper to completion and returns its trimmed stdout.
	// A non-zero exit is a Helper error carrying the helper's stderr;
	// a helper that cannot be started is returned as is.
	Output(name string, args ...string) (string, error)
}

// Exec is the Runner backed by os/exec.
type Exec struct{}

func (Exec) Start(c Command) error {
	cmd := exec.Command(c.Path, c.Args...)
	setCmdLine(cmd, c)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

func (Exec) Output(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	hideWindow(cmd)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", newError(Helper, msg, nil)
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}
