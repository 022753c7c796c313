//go:build windows
// +build windows

package handler

import (
	"runtime"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// Per-user settings shadow per-machine ones.
var registryHives = []registry.Key{registry.CURRENT_USER, registry.LOCAL_MACHINE}

// registryViews lists the registry views to search, native 64-bit first.
func registryViews(is64 bool) []uint32 {
	if is64 {
		return []uint32{registry.WOW64_64KEY, registry.WOW64_32KEY}
	}
	return []uint32{registry.WOW64_32KEY}
}

func (System) RegistryStrings(key, name string) (values []string) {
	views := registryViews(is64BitOperatingSystem())
	for _, hive := range registryHives {
		for _, view := range views {
			k, err := registry.OpenKey(hive, key, registry.QUERY_VALUE|view)
			if err != nil {
				continue
			}
			v, _, err := k.GetStringValue(name)
			k.Close()
			if err != nil {
				continue
			}
			values = append(values, v)
		}
	}
	return
}

func is64BitOperatingSystem() bool {
	switch runtime.GOARCH {
	case "amd64", "arm64":
		return true
	}
	var wow64 bool
	if err := windows.IsWow64Process(windows.CurrentProcess(), &wow64); err != nil {
		return false
	}
	return wow64
}
