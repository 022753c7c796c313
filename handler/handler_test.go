package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindHandlerPriority(t *testing.T) {
	assert := assert.New(t)

	l := newFakeLocator().withFiles("/bin/putty.exe", "/bin/ssh.exe").withPath("/bin")
	h, r, err := FindHandler(New(), l)
	require.NoError(t, err)
	assert.Equal(Putty, h.Kind())
	assert.Equal("/bin/putty.exe", r.Path)

	l = newFakeLocator().withFiles("/bin/ssh.exe").withPath("/bin")
	h, r, err = FindHandler(New(), l)
	require.NoError(t, err)
	assert.Equal(Openssh, h.Kind())
	assert.Equal("/bin/ssh.exe", r.Path)

	_, _, err = FindHandler(New(), newFakeLocator())
	assert.True(IsKind(err, NotFound))
	assert.EqualError(err, "could not find a suitable SSH application")
}

func TestFindHandlerForcedFailureIsFatal(t *testing.T) {
	inv := parse("/mintty:yes ssh://h")
	l := newFakeLocator().withFiles("/bin/ssh.exe").withPath("/bin")

	_, _, err := inv.Resolve(l)
	assert.True(t, IsKind(err, Forced))
}

func TestResolveSelected(t *testing.T) {
	assert := assert.New(t)
	l := newFakeLocator().withFiles("/bin/putty.exe").withPath("/bin")

	h, r, err := parse("/putty ssh://h").Resolve(l)
	require.NoError(t, err)
	assert.Equal(Putty, h.Kind())
	assert.Equal("/bin/putty.exe", r.Path)

	_, _, err = parse("/openssh ssh://h").Resolve(l)
	assert.True(IsKind(err, NotFound))
	assert.EqualError(err, "could not find OpenSSH executable")
}

func TestExecute(t *testing.T) {
	assert := assert.New(t)
	l := newFakeLocator().withFiles("/bin/putty.exe").withPath("/bin")
	run := &fakeRunner{}

	err := parse(`/putty:C:\x\putty.exe ssh://u:p@h:22`).Execute(l, run)
	require.NoError(t, err)
	require.Len(t, run.started, 1)
	assert.Equal(`C:\x\putty.exe`, run.started[0].Path)
	assert.Equal("-pw p -P 22 u@h", run.started[0].Arguments())
	assert.Equal(`C:\x\putty.exe -pw p -P 22 u@h`, run.started[0].String())

	run = &fakeRunner{}
	err = parse("/openssh:/usr/bin/ssh /mintty:no ssh://u@h:2222").Execute(l, run)
	require.NoError(t, err)
	require.Len(t, run.started, 1)
	assert.Equal("/usr/bin/ssh -p 2222 u@h", run.started[0].String())
}

func TestExecuteSplitURI(t *testing.T) {
	assert := assert.New(t)
	run := &fakeRunner{}

	inv := Parse(New(), []string{`/putty:C:\x\putty.exe`, "ssh://user:my", "pass@host:22"})
	assert.Equal("ssh://user:my pass@host:22", inv.URI)
	require.NoError(t, inv.Execute(newFakeLocator(), run))
	require.Len(t, run.started, 1)
	assert.Equal([]string{"-pw", "my pass", "-P", "22", "user@host"}, run.started[0].Args)
}

func TestExecuteErrors(t *testing.T) {
	assert := assert.New(t)
	run := &fakeRunner{}

	err := parse("/putty:putty.exe not-a-uri").Execute(newFakeLocator(), run)
	assert.True(IsKind(err, BadURI))

	err = parse("ssh://h").Execute(newFakeLocator(), run)
	assert.True(IsKind(err, NotFound))
	assert.Empty(run.started)
}
