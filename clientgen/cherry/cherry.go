// Package cherry decides which host types and members are exposed to
// clients ("cherry-picking") and at what visibility tier.
package cherry

import (
	"sort"
	"strings"

	"github.com/developerxd/webapiclientgen/errors"
)

// Method is a bit set of cherry-picking methods.
type Method int

const (
	// All exposes every public member; no attributes are consulted.
	All          Method = 0
	DataContract Method = 1 << iota
	NewtonsoftJson
	Serializable
	AspNet
	NetCore
)

var methodNames = map[string]Method{
	"all":            All,
	"datacontract":   DataContract,
	"newtonsoftjson": NewtonsoftJson,
	"jsonnet":        NewtonsoftJson,
	"serializable":   Serializable,
	"aspnet":         AspNet,
	"netcore":        NetCore,
}

// Has reports whether m includes flag.
func (m Method) Has(flag Method) bool {
	return flag != All && m&flag == flag
}

func (m Method) String() string {
	if m == All {
		return "all"
	}
	var parts []string
	for _, f := range []struct {
		flag Method
		name string
	}{
		{DataContract, "datacontract"},
		{NewtonsoftJson, "newtonsoftjson"},
		{Serializable, "serializable"},
		{AspNet, "aspnet"},
		{NetCore, "netcore"},
	} {
		if m.Has(f.flag) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseMethods combines method names such as "datacontract" and
// "newtonsoftjson" (case-insensitive) into one Method.
func ParseMethods(names []string) (Method, error) {
	var m Method
	for _, raw := range names {
		for _, name := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == '|' }) {
			flag, ok := methodNames[strings.ToLower(strings.TrimSpace(name))]
			if !ok {
				known := make([]string, 0, len(methodNames))
				for k := range methodNames {
					known = append(known, k)
				}
				sort.Strings(known)
				return All, errors.WithHintf(errors.NewInvalidInputError("unknown cherry-picking method %q", name),
					"known methods: %s", strings.Join(known, ", "))
			}
			m |= flag
		}
	}
	return m, nil
}

// Category is the visibility tier of a member.
type Category int

const (
	// None hides the member.
	None Category = iota
	// Cherry exposes the member.
	Cherry
	// BigCherry exposes the member and marks it required.
	BigCherry
)

func (c Category) String() string {
	switch c {
	case Cherry:
		return "cherry"
	case BigCherry:
		return "big-cherry"
	}
	return "none"
}
