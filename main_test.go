package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsText(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("No options registered. The first client found is used.", settingsText(nil))
	assert.Equal("Registered options: /openssh /bash\nClient: OpenSSH", settingsText([]string{"/openssh", "/bash"}))
	assert.Equal("Registered options: /cygwin:no\nClient: the first client found", settingsText([]string{"/cygwin:no"}))
}

func TestSrc(t *testing.T) {
	where := func() string { return src(8) }
	s := where()
	assert.True(t, strings.HasPrefix(s, "main_test.go:"), s)
}
