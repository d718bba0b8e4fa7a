// Package regexp selects the regular expression engine used for rules.
// Both engines implement RE2 semantics, so matching time is linear in the
// length of the input. The constant differs a lot: bounded repetitions such
// as {2,256} cost the stdlib engine about a thousand times more per byte
// than re2, which is why re2 is the default.
package regexp

import (
	"fmt"
	stdlib "regexp"

	gore2 "github.com/wasilibs/go-re2"
)

const (
	EngineStdlib = "stdlib"
	EngineRE2    = "re2"
)

// engine is an internal interface satisfied by both *stdlib.Regexp and *gore2.Regexp.
type engine interface {
	MatchString(s string) bool
	FindAllStringIndex(s string, n int) [][]int
	String() string
}

// Regexp wraps a compiled regular expression. It is a concrete struct
// so that *Regexp works as a normal pointer (not pointer-to-interface).
type Regexp struct{ e engine }

func (r *Regexp) MatchString(s string) bool {
	return r.e.MatchString(s)
}
func (r *Regexp) FindAllStringIndex(s string, n int) [][]int {
	return r.e.FindAllStringIndex(s, n)
}
func (r *Regexp) String() string {
	return r.e.String()
}

var currentEngine = EngineRE2

// Version returns the name of the active regex engine.
func Version() string { return currentEngine }

// ValidEngine reports whether name is a known engine.
func ValidEngine(name string) bool {
	return name == EngineStdlib || name == EngineRE2
}

// SetEngine selects the regex engine used by subsequent Compile calls.
// It is meant to be called once at startup, before any rule is compiled.
func SetEngine(name string) {
	if !ValidEngine(name) {
		panic("regexp: unknown engine: " + name)
	}
	currentEngine = name
}

// Compile compiles a regular expression using the currently selected engine.
func Compile(str string) (*Regexp, error) {
	if currentEngine == EngineRE2 {
		re, err := gore2.Compile(str)
		if err != nil {
			return nil, fmt.Errorf("regexp: compile %q: %w", str, err)
		}
		return &Regexp{e: re}, nil
	}
	re, err := stdlib.Compile(str)
	if err != nil {
		return nil, fmt.Errorf("regexp: compile %q: %w", str, err)
	}
	return &Regexp{e: re}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(str string) *Regexp {
	re, err := Compile(str)
	if err != nil {
		panic(err)
	}
	return re
}
