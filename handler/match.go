package handler

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchOption tells the argument loop what a handler made of a token.
type MatchOption int

const (
	// MatchNone means the token is not one of the handler's flags.
	MatchNone MatchOption = iota
	// MatchConfig means the token configured the handler.
	MatchConfig
	// MatchSelect means the token configured the handler and selected it.
	MatchSelect
)

// AutoYesNo is the tri-state of an optional auxiliary tool.
type AutoYesNo int

const (
	Auto AutoYesNo = iota
	Yes
	No
)

func (o AutoYesNo) String() string {
	switch o {
	case Yes:
		return "yes"
	case No:
		return "no"
	}
	return "auto"
}

var (
	usageRegex    = regexp.MustCompile(`(?i)^(?:/|--?)(?:h|help|usage|\?)$`)
	settingsRegex = regexp.MustCompile(`(?i)^(?:/|--?)settings$`)
	debugRegex    = regexp.MustCompile(`(?i)^(?:/|--?)debug$`)
)

// optionRegex builds the pattern of /name[:value] in all accepted spellings.
func optionRegex(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^(?:/|--?)` + regexp.QuoteMeta(name) + `(?:[:=](.*))?$`)
}

// value returns the flag value and whether the token matched at all.
// An empty value counts as no value.
func value(re *regexp.Regexp, arg string) (v string, matched bool) {
	m := re.FindStringSubmatch(arg)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// setValue stores an optional path.
func setValue(v string, path *string) {
	if v != "" {
		*path = v
	}
}

// setBoolean parses yes, no or a path. A bare flag or a path means yes.
func setBoolean(v string, option *bool, path *string) {
	switch strings.ToLower(v) {
	case "", "yes":
		*option = true
	case "no":
		*option = false
	default:
		*path = v
		*option = true
	}
}

func setYesNo(v string, option *AutoYesNo, path *string) {
	var b bool
	setBoolean(v, &b, path)
	*option = No
	if b {
		*option = Yes
	}
}

// Invocation is the outcome of matching the process arguments.
type Invocation struct {
	Handlers []Handler
	Selected Handler  // nil when no primary flag was given
	Options  []string // handler flags in the order given
	URI      string
	Help     bool
	Settings bool
	Debug    bool
}

// Parse matches args against the mode flags and every handler's flags.
// The first token nothing recognizes starts the URI; it and the tokens after
// it are joined with spaces.
func Parse(handlers []Handler, args []string) *Invocation {
	inv := &Invocation{Handlers: handlers}
	for i, arg := range args {
		switch {
		case usageRegex.MatchString(arg):
			inv.Help = true
			return inv
		case settingsRegex.MatchString(arg):
			inv.Settings = true
		case debugRegex.MatchString(arg):
			inv.Debug = true
		case inv.match(arg):
			inv.Options = append(inv.Options, arg)
		default:
			inv.URI = strings.Join(args[i:], " ")
			return inv
		}
	}
	return inv
}

func (inv *Invocation) match(arg string) bool {
	for _, h := range inv.Handlers {
		switch h.Match(arg) {
		case MatchSelect:
			debug("setting handler: %s", h)
			inv.Selected = h
			return true
		case MatchConfig:
			return true
		}
	}
	return false
}

// UsageText renders the help text for the given handlers.
func UsageText(program string, handlers []Handler) string {
	var (
		b     strings.Builder
		lines []string
	)
	fmt.Fprintf(&b, "%s [/settings] [/debug]", program)
	for _, h := range handlers {
		for _, u := range h.Usages() {
			fmt.Fprintf(&b, " [%s]", u.Option)
			lines = append(lines, fmt.Sprintf("%s -- %s", u.Option, u.Description))
		}
	}
	b.WriteString(" <ssh-url>\n\n")
	b.WriteString(strings.Join(lines, "\n\n"))
	return b.String()
}
