// Package flagx lets the config-file flag and the settings flags be parsed
// from one command line by independent flag sets.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// Set is a flag.FlagSet that ignores arguments naming flags it does not
// define, so each component can declare only its own flags.
type Set struct {
	*flag.FlagSet
}

// NewSet returns an empty set that reports parse errors instead of exiting.
func NewSet(name string) *Set {
	return &Set{FlagSet: flag.NewFlagSet(name, flag.ContinueOnError)}
}

// Parse drops foreign arguments with Filter and parses the rest.
func (s *Set) Parse(args []string) error {
	return s.FlagSet.Parse(s.Filter(args))
}

// Filter returns the arguments that belong to flags defined on s, in order.
//
// Accepted forms are "-f value", "-f=value" and the same with "--". A
// separate value is taken only when it does not start with '-', and boolean
// flags never take one. Positional arguments are dropped.
func (s *Set) Filter(args []string) []string {
	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		name, inline, ok := flagName(args[i])
		if !ok {
			continue
		}
		f := s.Lookup(name)
		if f == nil {
			continue
		}

		filtered = append(filtered, args[i])
		if inline || isBoolFlag(f) {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

func flagName(arg string) (name string, inline, ok bool) {
	if len(arg) < 2 || arg[0] != '-' {
		return "", false, false
	}
	name = strings.TrimPrefix(arg[1:], "-")
	name, _, inline = strings.Cut(name, "=")
	return name, inline, name != ""
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// ConfigFile returns the JSON config path given with -c or -config in args,
// or "" when neither is present. When both appear the last one wins.
func ConfigFile(args []string) string {
	var path string

	s := NewSet("config-file")
	s.SetOutput(io.Discard)
	s.StringVar(&path, "config", "", "path to JSON config file")
	s.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = s.Parse(args)

	return path
}
