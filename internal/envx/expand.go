// Package envx expands environment-variable references inside stored paths.
//
// Both `$NAME` and `${NAME}` are recognised on every platform. On Windows
// `%NAME%` is recognised as well. A reference whose variable is not set is
// left untouched, so `$UNSET/x` stays `$UNSET/x` rather than becoming `/x`.
package envx

import (
	"os"
	"regexp"
	"runtime"
	"strings"
)

// LookupFunc resolves a variable name, like os.LookupEnv.
type LookupFunc func(name string) (string, bool)

var (
	posixRef   = regexp.MustCompile(`\$(\w+)|\$\{([^}]*)\}`)
	windowsRef = regexp.MustCompile(`%([^%]+)%|\$(\w+)|\$\{([^}]*)\}`)
)

// Expander expands references using Lookup and the rules of one platform.
type Expander struct {
	Lookup  LookupFunc
	Windows bool
}

// Host returns an Expander for the current process environment and OS.
func Host() Expander {
	return Expander{Lookup: os.LookupEnv, Windows: runtime.GOOS == "windows"}
}

// Expand returns s with every resolvable reference replaced by its value.
func (e Expander) Expand(s string) string {
	if !strings.ContainsAny(s, "$%") {
		return s
	}

	re := posixRef
	if e.Windows {
		re = windowsRef
	}

	return re.ReplaceAllStringFunc(s, func(ref string) string {
		name := referenceName(ref)
		if name == "" {
			return ref
		}
		if v, ok := e.lookup(name); ok {
			return v
		}
		return ref
	})
}

func (e Expander) lookup(name string) (string, bool) {
	if e.Lookup == nil {
		return "", false
	}
	return e.Lookup(name)
}

// referenceName strips the delimiters from a matched reference.
func referenceName(ref string) string {
	switch {
	case strings.HasPrefix(ref, "${"):
		return ref[2 : len(ref)-1]
	case strings.HasPrefix(ref, "$"):
		return ref[1:]
	case strings.HasPrefix(ref, "%"):
		return ref[1 : len(ref)-1]
	}
	return ""
}

// MapLookup returns a LookupFunc over a fixed set of variables. With
// foldCase set, names match regardless of case, as they do on Windows.
func MapLookup(vars map[string]string, foldCase bool) LookupFunc {
	return func(name string) (string, bool) {
		if v, ok := vars[name]; ok {
			return v, true
		}
		if !foldCase {
			return "", false
		}
		for k, v := range vars {
			if strings.EqualFold(k, name) {
				return v, true
			}
		}
		return "", false
	}
}
