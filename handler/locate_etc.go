//go:build !windows
// +build !windows

package handler

// There is no registry outside Windows.
func (System) RegistryStrings(key, name string) []string {
	return nil
}
