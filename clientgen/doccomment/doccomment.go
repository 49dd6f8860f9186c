// Package doccomment looks up documentation for host types and members.
//
// Keys follow the .NET XML documentation convention: "T:" for types, "P:"
// for properties and "F:" for fields, followed by the full type name and,
// for members, "." and the member name.
package doccomment

import (
	"strings"
)

// Doc is the documentation attached to one type or member. Only the summary
// is carried into generated code.
type Doc struct {
	Summary []string
}

// IsEmpty reports whether d has no summary text.
func (d Doc) IsEmpty() bool {
	return len(d.Summary) == 0
}

// Lookup resolves documentation keys.
type Lookup interface {
	Lookup(key string) (Doc, bool)
}

func TypeKey(fullName string) string {
	return "T:" + fullName
}

func PropertyKey(typeFullName, name string) string {
	return "P:" + typeFullName + "." + name
}

func FieldKey(typeFullName, name string) string {
	return "F:" + typeFullName + "." + name
}

// Map is an in-memory Lookup.
type Map map[string]Doc

func (m Map) Lookup(key string) (Doc, bool) {
	d, ok := m[key]
	if !ok || d.IsEmpty() {
		return Doc{}, false
	}
	return d, true
}

// Set stores summary text under key, normalising indentation.
func (m Map) Set(key, summary string) {
	m[key] = Doc{Summary: TrimLines(summary)}
}

// Chain consults each lookup in order; the first hit wins.
type Chain []Lookup

func (c Chain) Lookup(key string) (Doc, bool) {
	for _, l := range c {
		if l == nil {
			continue
		}
		if d, ok := l.Lookup(key); ok {
			return d, true
		}
	}
	return Doc{}, false
}

// TrimLines splits text into lines, drops leading and trailing blank lines
// and removes the indentation common to the remaining lines.
func TrimLines(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil
	}

	indent := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		if len(l) >= indent {
			l = l[indent:]
		} else {
			l = strings.TrimLeft(l, " \t")
		}
		out[i] = strings.TrimRight(l, " \t")
	}
	return out
}
