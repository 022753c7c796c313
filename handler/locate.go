package handler

import (
	"os"
)

// Locator answers the questions resolution asks about the machine.
type Locator interface {
	// RegistryStrings returns the string value name of key in search order:
	// per-user hive before per-machine hive, 64-bit view before 32-bit view.
	// Missing keys and values are skipped.
	RegistryStrings(key, name string) []string
	FileExists(path string) bool
	DirExists(path string) bool
	Getenv(key string) string
}

// System is the Locator of the running machine.
type System struct{}

func (System) FileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}

func (System) DirExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func (System) Getenv(key string) string {
	return os.Getenv(key)
}
