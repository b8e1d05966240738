package core

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Site is the source provenance attached to a trace line
type Site struct {
	File     string
	Line     int
	Function string
}

// Caller retrieves the call site skip frames above the caller of Caller.
// File is reduced to its base name and Function to its unqualified name,
// the way a source-location macro would report them.
func Caller(skip int) Site {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Site{File: "???"}
	}

	var funcName string
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = shortFuncName(fn.Name())
	}

	return Site{
		File:     filepath.Base(file),
		Line:     line,
		Function: funcName,
	}
}

// shortFuncName strips the import path and package qualifier:
// "github.com/x/y/pkg.(*T).Method" becomes "(*T).Method".
func shortFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
