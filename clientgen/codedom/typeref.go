// Package codedom is the in-memory client declaration model: type references,
// declarations, namespaces and the compile unit a printer turns into source.
package codedom

import (
	"strconv"
	"strings"
)

// RefKind tags a TypeRef.
type RefKind int

const (
	RefMirrored RefKind = iota + 1
	RefPrimitive
	RefArray
	RefGeneric
	RefTuple
	RefMap
	RefPair
	RefOptional
	RefRaw
)

var refKindNames = map[RefKind]string{
	RefMirrored:  "mirrored",
	RefPrimitive: "primitive",
	RefArray:     "array",
	RefGeneric:   "generic",
	RefTuple:     "tuple",
	RefMap:       "map",
	RefPair:      "pair",
	RefOptional:  "optional",
	RefRaw:       "raw",
}

func (k RefKind) String() string {
	if s, ok := refKindNames[k]; ok {
		return s
	}
	return "ref(" + strconv.Itoa(int(k)) + ")"
}

// TypeRef is a client-side type reference.
//
//	Mirrored:  Namespace, Name
//	Primitive: Name
//	Raw:       Name
//	Array:     Elem, Rank
//	Generic:   Name, Args; Namespace is set when the definition is mirrored
//	Tuple:     Args (arity is len(Args))
//	Map, Pair: Args[0] key, Args[1] value
//	Optional:  Args[0]
type TypeRef struct {
	Kind      RefKind
	Namespace string
	Name      string
	Elem      *TypeRef
	Rank      int
	Args      []*TypeRef
}

func Mirrored(namespace, name string) *TypeRef {
	return &TypeRef{Kind: RefMirrored, Namespace: namespace, Name: name}
}

func Primitive(name string) *TypeRef {
	return &TypeRef{Kind: RefPrimitive, Name: name}
}

func Raw(name string) *TypeRef {
	return &TypeRef{Kind: RefRaw, Name: name}
}

func Array(elem *TypeRef, rank int) *TypeRef {
	if rank < 1 {
		rank = 1
	}
	return &TypeRef{Kind: RefArray, Elem: elem, Rank: rank}
}

func Generic(name string, args ...*TypeRef) *TypeRef {
	return &TypeRef{Kind: RefGeneric, Name: name, Args: args}
}

// MirroredGeneric references an instantiation of a generated generic
// declaration.
func MirroredGeneric(namespace, name string, args ...*TypeRef) *TypeRef {
	return &TypeRef{Kind: RefGeneric, Namespace: namespace, Name: name, Args: args}
}

func Tuple(args ...*TypeRef) *TypeRef {
	return &TypeRef{Kind: RefTuple, Args: args}
}

func Map(key, value *TypeRef) *TypeRef {
	return &TypeRef{Kind: RefMap, Args: []*TypeRef{key, value}}
}

func Pair(key, value *TypeRef) *TypeRef {
	return &TypeRef{Kind: RefPair, Args: []*TypeRef{key, value}}
}

func Optional(inner *TypeRef) *TypeRef {
	return &TypeRef{Kind: RefOptional, Args: []*TypeRef{inner}}
}

// Arity is the number of tuple components.
func (r *TypeRef) Arity() int {
	if r == nil || r.Kind != RefTuple {
		return 0
	}
	return len(r.Args)
}

// IsMirrored reports whether r names a generated declaration, either
// directly or as a generic instantiation.
func (r *TypeRef) IsMirrored() bool {
	if r == nil {
		return false
	}
	return r.Kind == RefMirrored || (r.Kind == RefGeneric && r.Namespace != "")
}

// QualifiedName is Namespace.Name for mirrored references and Name otherwise.
func (r *TypeRef) QualifiedName() string {
	if r.IsMirrored() && r.Namespace != "" {
		return r.Namespace + "." + r.Name
	}
	return r.Name
}

// Key returns the key of a map or pair reference.
func (r *TypeRef) Key() *TypeRef { return r.arg(0) }

// Value returns the value of a map or pair reference.
func (r *TypeRef) Value() *TypeRef { return r.arg(1) }

// Inner returns the wrapped reference of an optional.
func (r *TypeRef) Inner() *TypeRef { return r.arg(0) }

func (r *TypeRef) arg(i int) *TypeRef {
	if r == nil || i >= len(r.Args) {
		return nil
	}
	return r.Args[i]
}

// Equal compares two references structurally. Two nil references are equal.
func (r *TypeRef) Equal(o *TypeRef) bool {
	if r == nil || o == nil {
		return r == nil && o == nil
	}
	if r.Kind != o.Kind || r.Namespace != o.Namespace || r.Name != o.Name ||
		r.Rank != o.Rank || len(r.Args) != len(o.Args) || !r.Elem.Equal(o.Elem) {
		return false
	}
	for i := range r.Args {
		if !r.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// String renders a language-neutral canonical form, e.g.
// Map<System.String, Acme.Client.Order[]>. Printers do not use it.
func (r *TypeRef) String() string {
	if r == nil {
		return "<none>"
	}
	switch r.Kind {
	case RefArray:
		return r.Elem.String() + "[" + strings.Repeat(",", r.Rank-1) + "]"
	case RefGeneric:
		return r.QualifiedName() + "<" + joinRefs(r.Args) + ">"
	case RefTuple:
		return "Tuple" + strconv.Itoa(len(r.Args)) + "<" + joinRefs(r.Args) + ">"
	case RefMap:
		return "Map<" + joinRefs(r.Args) + ">"
	case RefPair:
		return "Pair<" + joinRefs(r.Args) + ">"
	case RefOptional:
		return "Optional<" + joinRefs(r.Args) + ">"
	default:
		return r.QualifiedName()
	}
}

func joinRefs(refs []*TypeRef) string {
	parts := make([]string, len(refs))
	for i, a := range refs {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}
