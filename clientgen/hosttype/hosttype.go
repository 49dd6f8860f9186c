// Package hosttype is the read-only descriptor model of the host platform's
// type graph.
//
// Descriptors are populated once, up front, by a loader (manifest files or Go
// packages) and never mutated during a generation run. The translator and the
// emitter depend only on this model, never on a live reflection API.
package hosttype

import (
	"strconv"
	"strings"
)

// Kind classifies a host type.
type Kind int

const (
	KindVoid Kind = iota
	KindClass
	KindValue // struct-like value type
	KindEnum
	KindArray
	KindGeneric // generic instantiation, e.g. List<int>
	KindInterface
	KindGenericParam // open type parameter such as T
)

var kindNames = map[Kind]string{
	KindVoid:         "void",
	KindClass:        "class",
	KindValue:        "value",
	KindEnum:         "enum",
	KindArray:        "array",
	KindGeneric:      "generic",
	KindInterface:    "interface",
	KindGenericParam: "generic-param",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind converts a manifest spelling ("class", "struct", "enum", ...) to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "class":
		return KindClass, true
	case "value", "struct":
		return KindValue, true
	case "enum":
		return KindEnum, true
	case "interface":
		return KindInterface, true
	}
	return KindVoid, false
}

// Type describes one host type.
type Type struct {
	Namespace string
	// Name is the simple name without the generic arity marker.
	Name string
	Kind Kind

	Base       *Type
	Interfaces []*Type

	// Properties and Fields are declared-only members, in declaration order.
	Properties  []*Member
	Fields      []*Member
	EnumMembers []EnumMember

	// GenericParams names the type parameters of a generic definition.
	GenericParams []string
	// GenericDef and GenericArgs are set on instantiations (KindGeneric).
	GenericDef  *Type
	GenericArgs []*Type

	// Elem and Rank are set on arrays (KindArray).
	Elem *Type
	Rank int

	Attributes   []Attribute
	Serializable bool
	// Public is false for types that selection must never pick up.
	Public bool
}

// MemberKind tells properties and fields apart.
type MemberKind int

const (
	MemberProperty MemberKind = iota
	MemberField
)

func (k MemberKind) String() string {
	if k == MemberField {
		return "field"
	}
	return "property"
}

// Member is a declared property or field.
type Member struct {
	Name       string
	Type       *Type
	Kind       MemberKind
	Public     bool
	Static     bool
	Attributes []Attribute
}

// EnumMember is one named constant of an enum, kept in declared order.
type EnumMember struct {
	Name  string
	Value int64
}

// Attribute is a custom attribute applied to a type or member.
// Args holds named arguments such as IsRequired=true.
type Attribute struct {
	Name string
	Args map[string]string
}

// IsGenericDefinition reports whether t declares type parameters.
func (t *Type) IsGenericDefinition() bool {
	return t != nil && len(t.GenericParams) > 0 && t.Kind != KindGeneric
}

// IsGeneric reports whether t is a generic instantiation.
func (t *Type) IsGeneric() bool {
	return t != nil && t.Kind == KindGeneric && t.GenericDef != nil
}

// IsArray reports whether t is an array type.
func (t *Type) IsArray() bool {
	return t != nil && t.Kind == KindArray && t.Elem != nil
}

// IsEnum reports whether t is an enum.
func (t *Type) IsEnum() bool {
	return t != nil && t.Kind == KindEnum
}

// IsValueType reports whether t is a struct-like value type. Enums count as
// value types on the host platform.
func (t *Type) IsValueType() bool {
	return t != nil && (t.Kind == KindValue || t.Kind == KindEnum)
}

// IsClassOrStruct reports whether t becomes a class or value declaration.
func (t *Type) IsClassOrStruct() bool {
	return t != nil && (t.Kind == KindClass || t.Kind == KindValue)
}

// DefinitionName is Ns.Name, plus `N for generic definitions.
func (t *Type) DefinitionName() string {
	name := t.Name
	if t.Namespace != "" {
		name = t.Namespace + "." + t.Name
	}
	if len(t.GenericParams) > 0 {
		name += "`" + strconv.Itoa(len(t.GenericParams))
	}
	return name
}

// FullName is the identity string of a type: Ns.Name for plain types,
// Ns.Name`N for generic definitions, Def[Arg1,Arg2] for instantiations and
// Elem[] or Elem[,] for arrays. Generic parameters are identified by name.
func (t *Type) FullName() string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case KindGeneric:
		if t.GenericDef == nil {
			return t.Name
		}
		args := make([]string, len(t.GenericArgs))
		for i, a := range t.GenericArgs {
			args[i] = a.FullName()
		}
		return t.GenericDef.FullName() + "[" + strings.Join(args, ",") + "]"
	case KindArray:
		rank := t.Rank
		if rank < 1 {
			rank = 1
		}
		return t.Elem.FullName() + "[" + strings.Repeat(",", rank-1) + "]"
	case KindGenericParam:
		return t.Name
	default:
		return t.DefinitionName()
	}
}

func (t *Type) String() string {
	return t.FullName()
}

// PublicInstanceProperties returns the declared public instance properties.
func (t *Type) PublicInstanceProperties() []*Member {
	return publicInstance(t.Properties)
}

// PublicInstanceFields returns the declared public instance fields.
func (t *Type) PublicInstanceFields() []*Member {
	return publicInstance(t.Fields)
}

func publicInstance(members []*Member) []*Member {
	out := make([]*Member, 0, len(members))
	for _, m := range members {
		if m.Public && !m.Static {
			out = append(out, m)
		}
	}
	return out
}

// Implements reports whether t, its generic definition, or anything on its
// base chain declares an interface whose definition is ifaceDef.
func (t *Type) Implements(ifaceDef string) bool {
	seen := make(map[*Type]bool)
	var walk func(*Type) bool
	walk = func(x *Type) bool {
		if x == nil || seen[x] {
			return false
		}
		seen[x] = true
		if x.definitionIdentity() == ifaceDef {
			return true
		}
		for _, i := range x.Interfaces {
			if walk(i) {
				return true
			}
		}
		if x.GenericDef != nil && walk(x.GenericDef) {
			return true
		}
		return walk(x.Base)
	}
	return walk(t)
}

func (t *Type) definitionIdentity() string {
	if t.Kind == KindGeneric && t.GenericDef != nil {
		return t.GenericDef.FullName()
	}
	return t.FullName()
}

// FindAttribute looks up an attribute by name. Names compare without namespace
// and without the "Attribute" suffix, so "DataMember" matches
// "System.Runtime.Serialization.DataMemberAttribute".
func FindAttribute(attrs []Attribute, name string) (Attribute, bool) {
	want := ShortAttributeName(name)
	for _, a := range attrs {
		if ShortAttributeName(a.Name) == want {
			return a, true
		}
	}
	return Attribute{}, false
}

// HasAttribute reports whether attrs carries the named attribute.
func HasAttribute(attrs []Attribute, name string) bool {
	_, ok := FindAttribute(attrs, name)
	return ok
}

// ShortAttributeName strips the namespace and the "Attribute" suffix.
func ShortAttributeName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "Attribute")
}

// Arg returns a named attribute argument, compared case-insensitively.
func (a Attribute) Arg(name string) (string, bool) {
	for k, v := range a.Args {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}
