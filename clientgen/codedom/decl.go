package codedom

// DeclKind tells the three declaration shapes apart.
type DeclKind int

const (
	DeclClass DeclKind = iota + 1
	DeclValue
	DeclEnum
)

func (k DeclKind) String() string {
	switch k {
	case DeclClass:
		return "class"
	case DeclValue:
		return "value"
	case DeclEnum:
		return "enum"
	}
	return "unknown"
}

// MemberOrigin records whether a member came from a host property or field.
type MemberOrigin int

const (
	OriginProperty MemberOrigin = iota
	OriginField
)

// MemberShape is how a printer should lay a member out. Public fields of a
// host class keep their get/set contract (AutoProperty); public fields of a
// host value type stay plain fields.
type MemberShape int

const (
	ShapeAutoProperty MemberShape = iota
	ShapePlainField
	ShapeEnumValue
)

// Member is one member of a declaration.
type Member struct {
	Name     string
	Type     *TypeRef
	Required bool
	Doc      []string
	Origin   MemberOrigin
	Shape    MemberShape
	// Value is the explicit enum value; nil means implicit (sequential).
	Value *int64
}

// Declaration is one generated client type.
type Declaration struct {
	Kind       DeclKind
	Name       string
	Namespace  string
	TypeParams []string
	Base       *TypeRef
	Members    []*Member
	Doc        []string
}

// QualifiedName is Namespace.Name.
func (d *Declaration) QualifiedName() string {
	if d.Namespace == "" {
		return d.Name
	}
	return d.Namespace + "." + d.Name
}

// Namespace is one client namespace block.
type Namespace struct {
	Name         string
	Declarations []*Declaration
}

// CompileUnit is the output model of a run.
type CompileUnit struct {
	Namespaces []*Namespace
}

// NewCompileUnit returns an empty unit.
func NewCompileUnit() *CompileUnit {
	return &CompileUnit{}
}

// Merge appends the namespaces of other after the ones already present.
// Used when several runs target one document (e.g. data types plus service
// client code). Namespaces are never reordered.
func (u *CompileUnit) Merge(other *CompileUnit) {
	if other == nil {
		return
	}
	u.Namespaces = append(u.Namespaces, other.Namespaces...)
}

// Declarations returns every declaration in output order.
func (u *CompileUnit) Declarations() []*Declaration {
	var out []*Declaration
	for _, ns := range u.Namespaces {
		out = append(out, ns.Declarations...)
	}
	return out
}

// Find returns the declaration with the given qualified name.
func (u *CompileUnit) Find(qualified string) (*Declaration, bool) {
	for _, d := range u.Declarations() {
		if d.QualifiedName() == qualified {
			return d, true
		}
	}
	return nil, false
}

// Int64 returns a pointer to v, for explicit enum values.
func Int64(v int64) *int64 {
	return &v
}
