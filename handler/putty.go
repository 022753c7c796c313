package handler

import (
	"path/filepath"
	"strconv"
	"strings"
)

const (
	puttyExe         = "putty.exe"
	puttyUninstall   = `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall\PuTTY_is1`
	puttyInstallName = "InstallLocation"
)

type PuttyHandler struct {
	path string
}

var puttyRegex = optionRegex("putty")

func NewPutty() *PuttyHandler {
	return &PuttyHandler{}
}

func (p *PuttyHandler) String() string { return Putty.String() }

func (p *PuttyHandler) Kind() Kind { return Putty }

func (p *PuttyHandler) Usages() []Usage {
	return []Usage{
		{"/putty[:<putty-path>]", "Use PuTTY to connect"},
	}
}

func (p *PuttyHandler) Match(arg string) MatchOption {
	if v, ok := value(puttyRegex, arg); ok {
		setValue(v, &p.path)
		return MatchSelect
	}
	return MatchNone
}

func (p *PuttyHandler) Find(l Locator) (*Resolved, error) {
	if p.path != "" {
		return p.found(p.path), nil
	}

	for _, location := range l.RegistryStrings(puttyUninstall, puttyInstallName) {
		path := filepath.Join(strings.TrimSpace(location), puttyExe)
		if l.FileExists(path) {
			debug("found PuTTY in registry: %s", path)
			return p.found(path), nil
		}
	}

	if path, ok := findInPath(l, puttyExe); ok {
		debug("found PuTTY in path: %s", path)
		return p.found(path), nil
	}

	return nil, newError(NotFound, "could not find PuTTY executable", nil)
}

func (p *PuttyHandler) found(path string) *Resolved {
	return &Resolved{Kind: Putty, Path: strings.TrimSpace(path)}
}

// Command passes the password with -pw, where it shows in the process list.
func (p *PuttyHandler) Command(r *Resolved, t Target, _ Runner) (Command, error) {
	var args []string
	if t.HasPassword {
		args = append(args, "-pw", t.Password)
	}
	if t.Port != -1 {
		args = append(args, "-P", strconv.Itoa(t.Port))
	}
	args = append(args, t.Destination())
	return Command{Path: r.Path, Args: args}, nil
}
