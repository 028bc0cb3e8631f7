// Package stacktrace resolves the calling context of a log write: either the
// short identifier of the immediate caller or a rendered multi-line trace.
package stacktrace

import (
	"fmt"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

const maxDepth = 64

var whitespace = regexp.MustCompile(`\s+`)

type Frame struct {
	File     string
	Line     int
	Function string
}

// Capture returns the frames above the function calling Capture. skip=0
// starts at that function itself, skip=1 at its caller and so on. Runtime
// frames are left out.
func Capture(skip int) []Frame {
	if skip < 0 {
		skip = 0
	}

	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	out := make([]Frame, 0, n)
	for {
		f, more := frames.Next()
		if f.Function != "" && !strings.HasPrefix(f.Function, "runtime.") {
			out = append(out, Frame{File: f.File, Line: f.Line, Function: f.Function})
		}
		if !more {
			break
		}
	}
	return out
}

// Caller returns the identifier of the innermost frame, or "" when there is none.
func Caller(frames []Frame) string {
	if len(frames) == 0 {
		return ""
	}
	return Identifier(frames[0].Function)
}

// Identifier turns a fully qualified runtime function name into
// "Type::Method" for methods and "function" for everything else.
//
//	github.com/a/b/service.(*LogService).InsertEntry -> LogService::InsertEntry
//	github.com/a/b/service.Sweeper.Run                -> Sweeper::Run
//	github.com/a/b/service.NewServices                -> NewServices
//	github.com/a/b/service.TestX.func1                -> TestX.func1
func Identifier(function string) string {
	name := QualifiedName(function)
	if dot := strings.Index(name, "."); dot >= 0 {
		name = name[dot+1:]
	}

	if strings.HasPrefix(name, "(") {
		end := strings.Index(name, ")")
		if end < 0 || end+2 > len(name) {
			return name
		}
		recv := strings.TrimPrefix(name[1:end], "*")
		return recv + "::" + name[end+2:]
	}

	parts := strings.SplitN(name, ".", 2)
	if len(parts) == 1 || isClosure(parts[1]) {
		return name
	}
	return parts[0] + "::" + parts[1]
}

// QualifiedName strips the import path, keeping the package name.
func QualifiedName(function string) string {
	if slash := strings.LastIndex(function, "/"); slash >= 0 {
		return function[slash+1:]
	}
	return function
}

func isClosure(s string) bool {
	return strings.HasPrefix(s, "func") && len(s) > 4 && s[4] >= '0' && s[4] <= '9'
}

// Render formats frames as a numbered trace, one frame per line:
//
//	#1 internal/service/log.go(42): service.(*LogService).InsertEntry(arg1, arg2)
//	#2 internal/app/main.go(10): app.Run()
//
// File paths are made relative to root when they live under it. Only the
// innermost frame carries args, flattened onto one line.
func Render(frames []Frame, root string, args []any) string {
	var b strings.Builder
	for i, f := range frames {
		fmt.Fprintf(&b, "#%d ", i+1)

		file := relativePath(f.File, root)
		if file != "" {
			fmt.Fprintf(&b, "%s(%d): ", file, f.Line)
		}

		rendered := ""
		if i == 0 && len(args) > 0 {
			rendered = FlattenArgs(args)
		}
		fmt.Fprintf(&b, "%s(%s)\n", QualifiedName(f.Function), rendered)
	}
	return b.String()
}

// FlattenArgs renders values the way %+v does and collapses every run of
// whitespace into a single space.
func FlattenArgs(args []any) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, strings.TrimSpace(whitespace.ReplaceAllString(fmt.Sprintf("%+v", a), " ")))
	}
	return strings.Join(parts, ", ")
}

func relativePath(file, root string) string {
	if file == "" || root == "" {
		return file
	}
	rel, err := filepath.Rel(root, file)
	if err != nil || strings.HasPrefix(rel, "..") {
		return file
	}
	return filepath.ToSlash(rel)
}
