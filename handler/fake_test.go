package handler

import (
	"errors"
	"path/filepath"
	"strings"
)

// fakeLocator is a machine made of maps.
type fakeLocator struct {
	registry map[string][]string // key + "|" + name
	files    map[string]bool
	dirs     map[string]bool
	env      map[string]string

	registryCalls int
}

func newFakeLocator() *fakeLocator {
	return &fakeLocator{
		registry: map[string][]string{},
		files:    map[string]bool{},
		dirs:     map[string]bool{},
		env:      map[string]string{},
	}
}

func (f *fakeLocator) RegistryStrings(key, name string) []string {
	f.registryCalls++
	return f.registry[key+"|"+name]
}

func (f *fakeLocator) FileExists(path string) bool { return f.files[path] }

func (f *fakeLocator) DirExists(path string) bool { return f.dirs[path] }

func (f *fakeLocator) Getenv(key string) string { return f.env[key] }

func (f *fakeLocator) withFiles(paths ...string) *fakeLocator {
	for _, p := range paths {
		f.files[p] = true
	}
	return f
}

func (f *fakeLocator) withPath(dirs ...string) *fakeLocator {
	f.env["PATH"] = strings.Join(dirs, string(filepath.ListSeparator))
	return f
}

// withCygwin installs Cygwin at root as the registry and filesystem see it.
func (f *fakeLocator) withCygwin(root string, programs ...string) *fakeLocator {
	f.registry[cygwinSetup+"|"+cygwinRootDir] = append(f.registry[cygwinSetup+"|"+cygwinRootDir], root)
	f.dirs[root] = true
	for _, p := range programs {
		f.files[filepath.Join(root, "bin", p)] = true
	}
	return f
}

type fakeRunner struct {
	started []Command
	calls   [][]string
	output  string
	err     error
}

func (r *fakeRunner) Start(c Command) error {
	r.started = append(r.started, c)
	return nil
}

func (r *fakeRunner) Output(name string, args ...string) (string, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.output, r.err
}

var (
	errHelper   = newError(Helper, "cygpath: cannot create short name", nil)
	errNoHelper = errors.New(`exec: "cygpath.exe": file does not exist`)
)
