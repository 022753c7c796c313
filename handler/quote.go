package handler

import (
	"regexp"
	"strings"

	"github.com/alessio/shellescape"
)

var cygwinSpecial = regexp.MustCompile(`[ '"]`)

// cygwinQuote single-quotes s for Cygwin programs when it is empty or holds
// a space or a quote.
func cygwinQuote(s string) string {
	if s == "" || cygwinSpecial.MatchString(s) {
		return shellescape.Quote(s)
	}
	return s
}

// cygwinCommand joins args into one Cygwin command line.
func cygwinCommand(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = cygwinQuote(arg)
	}
	return strings.Join(quoted, " ")
}
