// Package handler resolves and launches the SSH client behind an ssh:// URI.
//
// A Handler knows its own flags, where its executables may be installed and
// how to build the command line for a Target. Handlers are tried in the
// order New returns them.
package handler

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Kind int

const (
	Putty Kind = iota
	Openssh
)

func (k Kind) String() string {
	switch k {
	case Putty:
		return "PuTTY"
	case Openssh:
		return "OpenSSH"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type Usage struct {
	Option      string
	Description string
}

// Resolved holds the executables a handler found.
type Resolved struct {
	Kind   Kind
	Path   string // primary program
	Cygwin string // Cygwin root, empty when unused
	MinTTY string
	Icon   string // MinTTY window icon
	Bash   string
}

// Command is a program with its arguments.
// Line, when set, is the argument string already quoted for the program
// and is passed on the command line verbatim.
type Command struct {
	Path string
	Args []string
	Line string
}

// Arguments renders the argument part of the command line.
func (c Command) Arguments() string {
	if c.Line != "" {
		return c.Line
	}
	return strings.Join(c.Args, " ")
}

func (c Command) String() string {
	return strings.TrimSpace(c.Path + " " + c.Arguments())
}

type Handler interface {
	fmt.Stringer
	Kind() Kind
	Usages() []Usage
	// Match configures the handler from one argument token.
	Match(arg string) MatchOption
	// Find resolves the handler's executables. An *Error of kind NotFound
	// means the handler is unavailable; any other error is fatal.
	Find(l Locator) (*Resolved, error)
	// Command builds the command that opens a session to t.
	Command(r *Resolved, t Target, run Runner) (Command, error)
}

// New returns the handlers in priority order.
func New() []Handler {
	return []Handler{
		NewPutty(),
		NewOpenssh(),
	}
}

// FindHandler returns the first handler whose resolution succeeds.
func FindHandler(handlers []Handler, l Locator) (Handler, *Resolved, error) {
	for _, h := range handlers {
		r, err := h.Find(l)
		if err == nil {
			return h, r, nil
		}
		if !IsKind(err, NotFound) {
			return nil, nil, err
		}
		debug("%s: %v", h, err)
	}
	return nil, nil, newError(NotFound, "could not find a suitable SSH application", nil)
}

// Resolve picks the selected handler, or the first available one, and
// resolves its executables.
func (inv *Invocation) Resolve(l Locator) (Handler, *Resolved, error) {
	if inv.Selected == nil {
		return FindHandler(inv.Handlers, l)
	}
	r, err := inv.Selected.Find(l)
	if IsKind(err, NotFound) {
		return nil, nil, newError(NotFound, fmt.Sprintf("could not find %s executable", inv.Selected), nil)
	}
	if err != nil {
		return nil, nil, err
	}
	return inv.Selected, r, nil
}

// Execute parses the URI, resolves a handler and starts the client.
func (inv *Invocation) Execute(l Locator, run Runner) error {
	t, err := ParseTarget(inv.URI)
	if err != nil {
		return err
	}
	h, r, err := inv.Resolve(l)
	if err != nil {
		return err
	}
	cmd, err := h.Command(r, t, run)
	if err != nil {
		return err
	}
	debug("running %s command: %s", h, cmd)
	return run.Start(cmd)
}

// findInPath returns the first existing program in the PATH directories.
func findInPath(l Locator, program string) (string, bool) {
	for _, dir := range filepath.SplitList(l.Getenv("PATH")) {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, program)
		if l.FileExists(path) {
			return path, true
		}
	}
	return "", false
}
