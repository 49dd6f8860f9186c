// Package goload reads host types from Go packages.
//
// Exported struct types become classes (an embedded struct becomes the
// base), named integer types with constants become enums, interfaces are
// declared so the emitter can report them, and field types map onto the
// platform catalog: slices to List`1, maps to Dictionary`2, pointers to
// value types to Nullable`1, any to a serializable System.Object.
package goload

import (
	"context"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"sort"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/go/packages"

	"github.com/developerxd/webapiclientgen/clientgen/doccomment"
	"github.com/developerxd/webapiclientgen/clientgen/hosttype"
	"github.com/developerxd/webapiclientgen/errors"
	"github.com/developerxd/webapiclientgen/logger"
)

// Options configures loading.
type Options struct {
	// NamespacePrefix is prepended to every package namespace, e.g. "Acme".
	NamespacePrefix string
	// Dir is the directory packages are resolved from.
	Dir string
}

// Package is one type-checked package with its syntax, for doc comments.
type Package struct {
	Types  *types.Package
	Syntax []*ast.File
}

// Result is what loading produces.
type Result struct {
	Universe *hosttype.Universe
	Docs     doccomment.Map
}

// Load type-checks the packages matching patterns and converts them.
func Load(ctx context.Context, patterns []string, opts Options) (*Result, error) {
	if len(patterns) == 0 {
		return nil, errors.NewInvalidInputError("no Go package patterns given")
	}
	cfg := &packages.Config{
		Context: ctx,
		Dir:     opts.Dir,
		Mode:    packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load Go packages %s", strings.Join(patterns, " "))
	}
	if len(pkgs) == 0 {
		return nil, errors.NewNotFoundError("no Go packages match %s", strings.Join(patterns, " "))
	}

	var problems []string
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			problems = append(problems, e.Error())
		}
	})
	if len(problems) > 0 {
		return nil, errors.WithDetail(
			errors.NewInvalidInputError("Go packages have %d errors, first: %s", len(problems), problems[0]),
			strings.Join(problems, "\n"))
	}

	in := make([]Package, 0, len(pkgs))
	for _, p := range pkgs {
		if p.Types == nil {
			return nil, errors.NewInvalidInputError("type information not available for %s", p.PkgPath)
		}
		in = append(in, Package{Types: p.Types, Syntax: p.Syntax})
		logger.Debugw("loaded Go package", logger.FieldPackage, p.PkgPath)
	}
	return Convert(in, opts)
}

// Convert turns type-checked packages into host types.
func Convert(pkgs []Package, opts Options) (*Result, error) {
	c := &converter{
		u:     hosttype.NewUniverse(),
		docs:  doccomment.Map{},
		opts:  opts,
		named: make(map[*types.TypeName]*hosttype.Type),
		title: cases.Title(language.Und, cases.NoLower),
	}

	for _, p := range pkgs {
		if err := c.declare(p.Types); err != nil {
			return nil, err
		}
	}
	for _, p := range pkgs {
		if err := c.complete(p.Types); err != nil {
			return nil, err
		}
	}
	for _, p := range pkgs {
		c.collectDocs(p)
	}
	return &Result{Universe: c.u, Docs: c.docs}, nil
}

type converter struct {
	u     *hosttype.Universe
	docs  doccomment.Map
	opts  Options
	named map[*types.TypeName]*hosttype.Type
	title cases.Caser
}

// Namespace is the host namespace of a Go package.
func (c *converter) namespace(pkg *types.Package) string {
	ns := c.title.String(pkg.Name())
	if c.opts.NamespacePrefix != "" {
		ns = c.opts.NamespacePrefix + "." + ns
	}
	return ns
}

func (c *converter) declare(pkg *types.Package) error {
	scope := pkg.Scope()
	ns := c.namespace(pkg)
	enums := enumConstants(pkg)

	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !tn.Exported() || tn.IsAlias() {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}

		t := &hosttype.Type{Namespace: ns, Name: tn.Name(), Public: true}
		switch u := named.Underlying().(type) {
		case *types.Struct:
			t.Kind = hosttype.KindClass
		case *types.Interface:
			t.Kind = hosttype.KindInterface
		case *types.Basic:
			consts := enums[tn]
			if u.Info()&types.IsInteger == 0 || len(consts) == 0 {
				continue
			}
			t.Kind = hosttype.KindEnum
			for _, k := range consts {
				v, err := constValue(k)
				if err != nil {
					return errors.Wrapf(err, "enum %s.%s", ns, tn.Name())
				}
				t.EnumMembers = append(t.EnumMembers, hosttype.EnumMember{Name: k.Name(), Value: v})
			}
		default:
			continue
		}

		if tps := named.TypeParams(); tps != nil {
			for i := 0; i < tps.Len(); i++ {
				t.GenericParams = append(t.GenericParams, tps.At(i).Obj().Name())
			}
		}
		if err := c.u.Add(t); err != nil {
			return err
		}
		c.named[tn] = t
	}
	return nil
}

// enumConstants groups exported constants by their named type, in source
// order.
func enumConstants(pkg *types.Package) map[*types.TypeName][]*types.Const {
	out := make(map[*types.TypeName][]*types.Const)
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		k, ok := scope.Lookup(name).(*types.Const)
		if !ok || !k.Exported() {
			continue
		}
		named, ok := k.Type().(*types.Named)
		if !ok || named.Obj().Pkg() != pkg {
			continue
		}
		out[named.Obj()] = append(out[named.Obj()], k)
	}
	for _, ks := range out {
		sort.Slice(ks, func(i, j int) bool { return ks[i].Pos() < ks[j].Pos() })
	}
	return out
}

func constValue(k *types.Const) (int64, error) {
	val := constant.ToInt(k.Val())
	if v, exact := constant.Int64Val(val); exact {
		return v, nil
	}
	u, exact := constant.Uint64Val(val)
	if !exact {
		return 0, errors.NewInvalidInputError("constant %s is not an integer", k.Name())
	}
	v, err := safecast.Conv[int64](u)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrInvalidInput, "constant %s overflows int64", k.Name())
	}
	return v, nil
}

func (c *converter) complete(pkg *types.Package) error {
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok {
			continue
		}
		t, ok := c.named[tn]
		if !ok || t.Kind != hosttype.KindClass {
			continue
		}
		st := tn.Type().Underlying().(*types.Struct)
		if err := c.fields(t, st); err != nil {
			return errors.Wrapf(err, "type %s", t.FullName())
		}
		if t.Base == nil {
			t.Base = c.u.MustLookup(hosttype.ObjectName)
		}
	}
	return nil
}

func (c *converter) fields(t *hosttype.Type, st *types.Struct) error {
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if f.Embedded() {
			if t.Base == nil {
				if base := c.embeddedStruct(f.Type()); base != nil {
					t.Base = base
				}
			}
			continue
		}
		if !f.Exported() {
			continue
		}
		ft, err := c.typeOf(f.Type())
		if err != nil {
			return errors.Wrapf(err, "field %s", f.Name())
		}
		t.Properties = append(t.Properties, &hosttype.Member{
			Name:       f.Name(),
			Type:       ft,
			Kind:       hosttype.MemberProperty,
			Public:     true,
			Attributes: tagAttributes(st.Tag(i)),
		})
	}
	return nil
}

func (c *converter) embeddedStruct(typ types.Type) *hosttype.Type {
	if p, ok := typ.(*types.Pointer); ok {
		typ = p.Elem()
	}
	named, ok := types.Unalias(typ).(*types.Named)
	if !ok {
		return nil
	}
	t, ok := c.named[named.Origin().Obj()]
	if !ok || t.Kind != hosttype.KindClass || named.TypeArgs().Len() > 0 {
		return nil
	}
	return t
}

var basicTypes = map[types.BasicKind]string{
	types.Bool:       "System.Boolean",
	types.Int:        "System.Int64",
	types.Int8:       "System.SByte",
	types.Int16:      "System.Int16",
	types.Int32:      "System.Int32",
	types.Int64:      "System.Int64",
	types.Uint:       "System.UInt64",
	types.Uint8:      "System.Byte",
	types.Uint16:     "System.UInt16",
	types.Uint32:     "System.UInt32",
	types.Uint64:     "System.UInt64",
	types.Uintptr:    "System.UInt64",
	types.Float32:    "System.Single",
	types.Float64:    "System.Double",
	types.String:     "System.String",
	types.Complex64:  hosttype.ObjectName,
	types.Complex128: hosttype.ObjectName,
}

// wellKnown maps named types outside the loaded packages.
var wellKnown = map[string]string{
	"time.Time":                "System.DateTime",
	"time.Duration":            "System.Int64",
	"encoding/json.RawMessage": hosttype.ObjectName,
	"net/url.URL":              "System.Uri",
}

func (c *converter) typeOf(typ types.Type) (*hosttype.Type, error) {
	switch t := types.Unalias(typ).(type) {
	case *types.Basic:
		if name, ok := basicTypes[t.Kind()]; ok {
			return c.u.MustLookup(name), nil
		}
		return c.u.MustLookup(hosttype.ObjectName), nil

	case *types.Pointer:
		elem, err := c.typeOf(t.Elem())
		if err != nil {
			return nil, err
		}
		if elem.Kind == hosttype.KindValue || elem.Kind == hosttype.KindEnum {
			return c.u.Instantiate(c.u.MustLookup(hosttype.NullableDef), elem)
		}
		return elem, nil

	case *types.Slice:
		if b, ok := t.Elem().Underlying().(*types.Basic); ok && b.Kind() == types.Byte {
			// encoding/json writes []byte as a base64 string
			return c.u.MustLookup(hosttype.StringName), nil
		}
		elem, err := c.typeOf(t.Elem())
		if err != nil {
			return nil, err
		}
		return c.u.Instantiate(c.u.MustLookup("List`1"), elem)

	case *types.Array:
		elem, err := c.typeOf(t.Elem())
		if err != nil {
			return nil, err
		}
		return c.u.ArrayOf(elem, 1), nil

	case *types.Map:
		key, err := c.typeOf(t.Key())
		if err != nil {
			return nil, err
		}
		val, err := c.typeOf(t.Elem())
		if err != nil {
			return nil, err
		}
		return c.u.Instantiate(c.u.MustLookup(hosttype.DictionaryDef), key, val)

	case *types.Named:
		obj := t.Origin().Obj()
		if obj.Pkg() != nil {
			if name, ok := wellKnown[obj.Pkg().Path()+"."+obj.Name()]; ok {
				return c.u.MustLookup(name), nil
			}
		}
		def, ok := c.named[obj]
		if !ok {
			return c.typeOf(t.Underlying())
		}
		if t.TypeArgs().Len() == 0 {
			return def, nil
		}
		args := make([]*hosttype.Type, t.TypeArgs().Len())
		for i := range args {
			a, err := c.typeOf(t.TypeArgs().At(i))
			if err != nil {
				return nil, err
			}
			args[i] = a
		}
		return c.u.Instantiate(def, args...)

	case *types.TypeParam:
		return c.u.Param(t.Obj().Name()), nil
	}
	// interfaces, anonymous structs, funcs and channels
	return c.u.MustLookup(hosttype.ObjectName), nil
}

func (c *converter) collectDocs(p Package) {
	scope := p.Types.Scope()
	lookup := func(name string) *hosttype.Type {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok {
			return nil
		}
		return c.named[tn]
	}

	for _, file := range p.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			for _, spec := range gd.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					t := lookup(s.Name.Name)
					if t == nil {
						continue
					}
					doc := s.Doc
					if doc == nil && len(gd.Specs) == 1 {
						doc = gd.Doc
					}
					c.setDoc(doccomment.TypeKey(t.FullName()), doc)
					if st, ok := s.Type.(*ast.StructType); ok {
						c.fieldDocs(t, st)
					}
				case *ast.ValueSpec:
					if gd.Tok != token.CONST {
						continue
					}
					for _, n := range s.Names {
						k, ok := scope.Lookup(n.Name).(*types.Const)
						if !ok {
							continue
						}
						named, ok := k.Type().(*types.Named)
						if !ok {
							continue
						}
						if t, ok := c.named[named.Obj()]; ok && t.Kind == hosttype.KindEnum {
							c.setDoc(doccomment.FieldKey(t.FullName(), n.Name), firstDoc(s.Doc, s.Comment))
						}
					}
				}
			}
		}
	}
}

func (c *converter) fieldDocs(t *hosttype.Type, st *ast.StructType) {
	for _, f := range st.Fields.List {
		doc := firstDoc(f.Doc, f.Comment)
		for _, n := range f.Names {
			c.setDoc(doccomment.PropertyKey(t.FullName(), n.Name), doc)
		}
	}
}

func (c *converter) setDoc(key string, doc *ast.CommentGroup) {
	if doc == nil {
		return
	}
	if text := strings.TrimSpace(doc.Text()); text != "" {
		c.docs.Set(key, text)
	}
}

func firstDoc(groups ...*ast.CommentGroup) *ast.CommentGroup {
	for _, g := range groups {
		if g != nil {
			return g
		}
	}
	return nil
}
