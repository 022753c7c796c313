package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisteredOptions(t *testing.T) {
	assert := assert.New(t)

	assert.Nil(RegisteredOptions(nil))
	assert.Nil(RegisteredOptions([]string{`C:\ssh-handler.exe`}))
	assert.Nil(RegisteredOptions([]string{`C:\ssh-handler.exe`, "%1"}))
	assert.Equal([]string{"/openssh", "/bash"},
		RegisteredOptions([]string{`C:\ssh-handler.exe`, "/openssh", "/bash", "%1"}))
	assert.Equal([]string{`/putty:C:\Program Files\PuTTY\putty.exe`},
		RegisteredOptions([]string{`C:\ssh-handler.exe`, `/putty:C:\Program Files\PuTTY\putty.exe`, "%1", "extra"}))
}

func TestSelected(t *testing.T) {
	assert := assert.New(t)

	assert.Nil(Selected(nil))
	assert.Nil(Selected([]string{"/cygwin:no"}))
	if h := Selected([]string{"/openssh", "/bash"}); assert.NotNil(h) {
		assert.Equal(Openssh, h.Kind())
	}
	if h := Selected([]string{"/openssh", "/putty"}); assert.NotNil(h) {
		assert.Equal(Putty, h.Kind())
	}
}
