package main

import (
	"fmt"
	"log"
	"path"
	"runtime"
	"strings"

	"github.com/abakum/menu"
	"github.com/xlab/closer"
)

var (
	le = log.New(Std, menu.BUG, 0)
	lf = log.New(Std, menu.GT, log.Lshortfile)
	l  = log.New(Std, menu.GT, 0)
)

// Colorable log
func SetColor() {
	bug, _, out := menu.BugGtOut()
	le.SetOutput(out)
	bug = strings.ReplaceAll(bug, menu.BUG, "<")
	le.SetPrefix(bug)
}

// Get source of code
func src(depth int) (s string) {
	pc := make([]uintptr, 1)
	n := runtime.Callers(depth-5, pc)
	if n > 0 {
		frame, _ := runtime.CallersFrames(pc).Next()
		s = fmt.Sprintf("%s:%d:", path.Base(frame.File), frame.Line)
	}
	return
}

// Show the error and exit with code 2.
func Fatal(err error) {
	if err != nil {
		le.Println(src(8), err)
		showError(err.Error())
		closer.Exit(2)
	}
}
