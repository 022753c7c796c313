package handler

import (
	"path/filepath"
	"strconv"
	"strings"
)

const (
	sshExe        = "ssh.exe"
	minttyExe     = "mintty.exe"
	bashExe       = "bash.exe"
	cygpathExe    = "cygpath.exe"
	cygwinIcon    = "Cygwin-Terminal.ico"
	cygwinSetup   = `SOFTWARE\Cygwin\setup`
	cygwinRootDir = "rootdir"
)

var (
	opensshRegex = optionRegex("openssh")
	cygwinRegex  = optionRegex("cygwin")
	minttyRegex  = optionRegex("mintty")
	bashRegex    = optionRegex("bash")
)

type OpensshHandler struct {
	path       string
	cygwin     AutoYesNo
	cygwinPath string
	mintty     AutoYesNo
	minttyPath string
	bash       bool
	bashPath   string
}

func NewOpenssh() *OpensshHandler {
	return &OpensshHandler{}
}

func (o *OpensshHandler) String() string { return Openssh.String() }

func (o *OpensshHandler) Kind() Kind { return Openssh }

func (o *OpensshHandler) Usages() []Usage {
	return []Usage{
		{"/openssh[:<openssh-path>]", "Use OpenSSH to connect"},
		{"/cygwin[:(yes|no|<cygwin-path>)]", "Use Cygwin for OpenSSH (by default, Cygwin will be used for OpenSSH if detected)"},
		{"/mintty[:(yes|no|<mintty-path>)]", "Use MinTTY for OpenSSH (by default, MinTTY will be used for OpenSSH if detected)"},
		{"/bash[:(yes|no|<bash-path>)]", "Use Bash login shell for use with ssh-agent"},
	}
}

func (o *OpensshHandler) Match(arg string) MatchOption {
	if v, ok := value(opensshRegex, arg); ok {
		setValue(v, &o.path)
		return MatchSelect
	}
	if v, ok := value(cygwinRegex, arg); ok {
		setYesNo(v, &o.cygwin, &o.cygwinPath)
		return MatchConfig
	}
	if v, ok := value(minttyRegex, arg); ok {
		setYesNo(v, &o.mintty, &o.minttyPath)
		return MatchConfig
	}
	if v, ok := value(bashRegex, arg); ok {
		setBoolean(v, &o.bash, &o.bashPath)
		return MatchConfig
	}
	return MatchNone
}

func (o *OpensshHandler) Find(l Locator) (*Resolved, error) {
	r := &Resolved{Kind: Openssh, Cygwin: strings.TrimSpace(o.cygwinPath)}

	switch {
	case o.path != "":
		r.Path = o.path
	case o.cygwin != No && o.findCygwin(l, r):
		// Cygwin ssh.exe
	default:
		if err := o.cygwinFailure(r); err != nil {
			return nil, err
		}
		path, ok := findInPath(l, sshExe)
		if !ok {
			return nil, newError(NotFound, "could not find OpenSSH executable", nil)
		}
		debug("found OpenSSH in path: %s", path)
		r.Path = path
	}
	r.Path = strings.TrimSpace(r.Path)

	if o.mintty != No {
		if err := o.findMintty(l, r); err != nil {
			return nil, err
		}
	}
	if o.bash {
		if err := o.findBash(l, r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// findCygwin locates the Cygwin root and its ssh.exe. The root stays in r
// even when ssh.exe is missing so MinTTY and Bash can still be found there.
func (o *OpensshHandler) findCygwin(l Locator, r *Resolved) bool {
	if r.Cygwin == "" {
		for _, root := range l.RegistryStrings(cygwinSetup, cygwinRootDir) {
			root = strings.TrimSpace(root)
			if root != "" && l.DirExists(root) {
				debug("found Cygwin in registry: %s", root)
				r.Cygwin = root
				break
			}
		}
	}
	if r.Cygwin == "" {
		return false
	}

	path := filepath.Join(r.Cygwin, "bin", sshExe)
	if !l.FileExists(path) {
		return false
	}
	debug("found OpenSSH in Cygwin directory: %s", path)
	r.Path = path
	return true
}

// cygwinFailure turns a failed Cygwin lookup into an error when Cygwin was
// forced on.
func (o *OpensshHandler) cygwinFailure(r *Resolved) error {
	if o.cygwin != Yes {
		return nil
	}
	if r.Cygwin == "" {
		return newError(Forced, "could not find Cygwin in registry", nil)
	}
	return newError(Forced, "could not find OpenSSH in Cygwin directory", nil)
}

func (o *OpensshHandler) findMintty(l Locator, r *Resolved) error {
	path, ok := o.findTool(l, r, "MinTTY", o.minttyPath, minttyExe)
	if !ok {
		if o.mintty == Yes {
			return newError(Forced, "could not find MinTTY executable", nil)
		}
		return nil
	}
	r.MinTTY = path
	if r.Cygwin != "" {
		icon := filepath.Join(r.Cygwin, cygwinIcon)
		if l.FileExists(icon) {
			r.Icon = icon
		}
	}
	return nil
}

func (o *OpensshHandler) findBash(l Locator, r *Resolved) error {
	path, ok := o.findTool(l, r, "Bash", o.bashPath, bashExe)
	if !ok {
		return newError(Forced, "could not find Bash executable", nil)
	}
	r.Bash = path
	return nil
}

// findTool tries the explicit path, then the Cygwin bin directory, then PATH.
func (o *OpensshHandler) findTool(l Locator, r *Resolved, name, explicit, program string) (string, bool) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit, true
	}
	if r.Cygwin != "" {
		path := filepath.Join(r.Cygwin, "bin", program)
		if l.FileExists(path) {
			debug("found %s in Cygwin directory: %s", name, path)
			return path, true
		}
	}
	if path, ok := findInPath(l, program); ok {
		debug("found %s in path: %s", name, path)
		return path, true
	}
	return "", false
}

func (o *OpensshHandler) Command(r *Resolved, t Target, run Runner) (Command, error) {
	path := r.Path
	if r.Cygwin != "" && o.bash {
		out, err := run.Output(filepath.Join(r.Cygwin, "bin", cygpathExe), "-u", path)
		if IsKind(err, Helper) {
			return Command{}, err
		}
		if err != nil {
			return Command{}, newError(NotFound, "could not run "+cygpathExe, err)
		}
		path = out
	}

	command := []string{path}
	if t.HasPassword {
		warning("OpenSSH does not support passing a password")
	}
	if t.Port != -1 {
		command = append(command, "-p", strconv.Itoa(t.Port))
	}
	command = append(command, t.Destination())

	if o.bash {
		command = []string{r.Bash, "-lc", cygwinCommand(command)}
	}

	if r.MinTTY != "" {
		mintty := []string{r.MinTTY}
		if r.Icon != "" {
			mintty = append(mintty, "-i", r.Icon)
		}
		mintty = append(mintty, "-e")
		command = append(mintty, command...)
	}

	return Command{
		Path: command[0],
		Args: command[1:],
		Line: cygwinCommand(command[1:]),
	}, nil
}
