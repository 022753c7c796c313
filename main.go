package main

/*
ssh-handler opens ssh:// links with a locally installed SSH client.

Register it as the ssh protocol handler with the options to use:
`ssh-handler /settings /openssh /mintty /bash`
Show the registered options:
`ssh-handler /settings`

Windows then runs `"ssh-handler.exe" /openssh /mintty /bash "%1"` for a link
such as `ssh://user@host:2222`. Without /putty or /openssh the first client
found wins, PuTTY before OpenSSH.
*/

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/abakum/menu"
	"github.com/abakum/ssh-handler/handler"
	"github.com/xlab/closer"
)

var (
	Std  = menu.Std
	repo = "ssh-handler"
)

func main() {
	SetColor()

	handler.DebugF = func(format string) string {
		return fmt.Sprintf("%s%s %s\r\n", l.Prefix(), src(9), format)
	}
	handler.WarningF = func(format string) string {
		return fmt.Sprintf("%s%s %s\r\n", le.Prefix(), src(9), format)
	}

	handlers := handler.New()
	inv := handler.Parse(handlers, os.Args[1:])

	handler.EnableDebug(inv.Debug)
	log.SetFlags(lf.Flags())
	log.SetPrefix(lf.Prefix())
	if !inv.Debug {
		log.SetOutput(io.Discard)
	}

	switch {
	case inv.Help:
		usage(handlers, 0)
	case inv.Settings:
		Fatal(settings(inv))
		closer.Exit(0)
	case inv.URI == "":
		usage(handlers, 1)
	}

	log.Println(repo, strings.Join(os.Args[1:], " "))
	Fatal(inv.Execute(handler.System{}, handler.Exec{}))
	closer.Exit(0)
}

func usage(handlers []handler.Handler, code int) {
	showInfo("SSH Handler Usage", handler.UsageText(repo, handlers))
	closer.Exit(code)
}

// settings shows the registered options, or registers the given ones.
func settings(inv *handler.Invocation) error {
	if len(inv.Options) > 0 {
		exe, err := os.Executable()
		if err != nil {
			return err
		}
		command, err := register(exe, inv.Options)
		if err != nil {
			return fmt.Errorf("register ssh protocol: %w", err)
		}
		showInfo("SSH Handler Settings", "Registered: "+command)
		return nil
	}

	options, err := registeredOptions()
	if err != nil {
		return fmt.Errorf("read ssh protocol registration: %w", err)
	}
	showInfo("SSH Handler Settings", settingsText(options))
	return nil
}

func settingsText(options []string) string {
	if len(options) == 0 {
		return "No options registered. The first client found is used."
	}
	client := "the first client found"
	if h := handler.Selected(options); h != nil {
		client = h.String()
	}
	return fmt.Sprintf("Registered options: %s\nClient: %s", strings.Join(options, " "), client)
}
