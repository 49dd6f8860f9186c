package manifest

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/developerxd/webapiclientgen/clientgen/doccomment"
	"github.com/developerxd/webapiclientgen/clientgen/hosttype"
	"github.com/developerxd/webapiclientgen/errors"
	"github.com/developerxd/webapiclientgen/logger"
)

// Format is a manifest encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.WithHint(
		errors.NewInvalidInputError("unknown manifest format for %s", path),
		"manifests must end in .yaml, .yml or .toml")
}

// Decode parses one manifest document.
func Decode(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(err, "failed to decode YAML manifest")
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode TOML manifest")
		}
		for _, key := range md.Undecoded() {
			// attribute tables decode through UnmarshalTOML and may be reported here
			if strings.Contains(key.String(), "attributes") {
				continue
			}
			logger.Warnw("ignoring unknown manifest key", "key", key.String())
		}
	default:
		return nil, errors.NewInvalidInputError("unsupported manifest format %q", format)
	}
	return &f, nil
}

// Result is what loading manifests produces.
type Result struct {
	Universe *hosttype.Universe
	Docs     doccomment.Map
}

// LoadFiles reads and builds every manifest in paths into one universe.
func LoadFiles(paths ...string) (*Result, error) {
	files, err := ReadFiles(paths...)
	if err != nil {
		return nil, err
	}
	res := &Result{Universe: hosttype.NewUniverse(), Docs: doccomment.Map{}}
	if err := Build(res.Universe, res.Docs, files...); err != nil {
		return nil, err
	}
	return res, nil
}

// ReadFiles reads and decodes manifests without building them, so they can
// be built into a universe that already holds other host types.
func ReadFiles(paths ...string) ([]*File, error) {
	if len(paths) == 0 {
		return nil, errors.NewInvalidInputError("no manifest files given")
	}
	files := make([]*File, 0, len(paths))
	for _, path := range paths {
		format, err := FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrapf(errors.ErrNotFound, "manifest %s", path)
			}
			return nil, errors.Wrapf(err, "failed to read manifest %s", path)
		}
		f, err := Decode(data, format)
		if err != nil {
			return nil, errors.Wrapf(err, "manifest %s", path)
		}
		files = append(files, f)
		logger.Debugw("loaded manifest", logger.FieldFile, path)
	}
	return files, nil
}

// Build declares the types of files in u and records their docs. All types
// are declared before any type expression is resolved, so declarations may
// refer to each other in any order and across files.
func Build(u *hosttype.Universe, docs doccomment.Map, files ...*File) error {
	type pendingDecl struct {
		decl *TypeDecl
		t    *hosttype.Type
	}
	var decls []pendingDecl

	for _, f := range files {
		for _, ns := range f.Namespaces {
			for i := range ns.Types {
				d := &ns.Types[i]
				t, err := declare(ns.Name, d)
				if err != nil {
					return err
				}
				if err := u.Add(t); err != nil {
					return err
				}
				decls = append(decls, pendingDecl{decl: d, t: t})
			}
		}
	}

	for _, pd := range decls {
		r := &resolver{u: u, namespace: pd.t.Namespace, params: pd.t.GenericParams}
		if err := r.complete(pd.t, pd.decl); err != nil {
			return errors.Wrapf(err, "type %s", pd.t.FullName())
		}
		recordDocs(docs, pd.t, pd.decl)
	}
	return nil
}

func declare(namespace string, d *TypeDecl) (*hosttype.Type, error) {
	if d.Name == "" {
		return nil, errors.NewInvalidInputError("type without a name in namespace %s", namespace)
	}
	kind, ok := hosttype.ParseKind(d.Kind)
	if !ok {
		return nil, errors.NewInvalidInputError("type %s.%s has unknown kind %q", namespace, d.Name, d.Kind)
	}
	t := &hosttype.Type{
		Namespace:     namespace,
		Name:          d.Name,
		Kind:          kind,
		GenericParams: d.GenericParams,
		Serializable:  d.Serializable,
		Public:        !d.Internal,
		Attributes:    attributes(d.Attributes),
	}
	if kind == hosttype.KindEnum {
		var next int64
		for _, m := range d.Members {
			v := next
			if m.Value != nil {
				v = *m.Value
			}
			t.EnumMembers = append(t.EnumMembers, hosttype.EnumMember{Name: m.Name, Value: v})
			next = v + 1
		}
	}
	return t, nil
}

func attributes(decls []AttributeDecl) []hosttype.Attribute {
	if len(decls) == 0 {
		return nil
	}
	out := make([]hosttype.Attribute, len(decls))
	for i, a := range decls {
		out[i] = hosttype.Attribute{Name: a.Name, Args: a.Args}
	}
	return out
}

func recordDocs(docs doccomment.Map, t *hosttype.Type, d *TypeDecl) {
	if docs == nil {
		return
	}
	full := t.FullName()
	if d.Doc != "" {
		docs.Set(doccomment.TypeKey(full), d.Doc)
	}
	for _, p := range d.Properties {
		if p.Doc != "" {
			docs.Set(doccomment.PropertyKey(full, p.Name), p.Doc)
		}
	}
	for _, f := range d.Fields {
		if f.Doc != "" {
			docs.Set(doccomment.FieldKey(full, f.Name), f.Doc)
		}
	}
	for _, m := range d.Members {
		if m.Doc != "" {
			docs.Set(doccomment.FieldKey(full, m.Name), m.Doc)
		}
	}
}

// resolver turns type expressions into host types from the point of view
// of one declaring type.
type resolver struct {
	u         *hosttype.Universe
	namespace string
	params    []string
}

func (r *resolver) complete(t *hosttype.Type, d *TypeDecl) error {
	switch {
	case d.Base != "":
		base, err := r.resolveString(d.Base)
		if err != nil {
			return errors.Wrap(err, "base")
		}
		t.Base = base
	case t.Kind == hosttype.KindClass:
		t.Base = r.u.MustLookup(hosttype.ObjectName)
	}

	for _, iface := range d.Interfaces {
		it, err := r.resolveString(iface)
		if err != nil {
			return errors.Wrapf(err, "interface %s", iface)
		}
		t.Interfaces = append(t.Interfaces, it)
	}

	var err error
	if t.Properties, err = r.members(d.Properties, hosttype.MemberProperty); err != nil {
		return err
	}
	if t.Fields, err = r.members(d.Fields, hosttype.MemberField); err != nil {
		return err
	}
	return nil
}

func (r *resolver) members(decls []MemberDecl, kind hosttype.MemberKind) ([]*hosttype.Member, error) {
	var out []*hosttype.Member
	for _, md := range decls {
		if md.Name == "" {
			return nil, errors.NewInvalidInputError("%s without a name", kind)
		}
		typ, err := r.resolveString(md.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "%s %s", kind, md.Name)
		}
		out = append(out, &hosttype.Member{
			Name:       md.Name,
			Type:       typ,
			Kind:       kind,
			Public:     !md.Private,
			Static:     md.Static,
			Attributes: attributes(md.Attributes),
		})
	}
	return out, nil
}

func (r *resolver) resolveString(s string) (*hosttype.Type, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.NewInvalidInputError("missing type")
	}
	e, err := ParseExpr(s)
	if err != nil {
		return nil, err
	}
	return r.resolve(e)
}

func (r *resolver) resolve(e *Expr) (*hosttype.Type, error) {
	switch e.Kind {
	case ExprNullable:
		inner, err := r.resolve(e.Elem)
		if err != nil {
			return nil, err
		}
		return r.u.Instantiate(r.u.MustLookup(hosttype.NullableDef), inner)
	case ExprArray:
		elem, err := r.resolve(e.Elem)
		if err != nil {
			return nil, err
		}
		return r.u.ArrayOf(elem, e.Rank), nil
	case ExprTuple:
		if len(e.Args) > 7 {
			return nil, errors.NewInvalidInputError("tuple %s has more than 7 components", e)
		}
		def := r.u.MustLookup("System.ValueTuple`" + strconv.Itoa(len(e.Args)))
		args, err := r.resolveAll(e.Args)
		if err != nil {
			return nil, err
		}
		return r.u.Instantiate(def, args...)
	}

	if len(e.Args) == 0 {
		for _, p := range r.params {
			if p == e.Name {
				return r.u.Param(p), nil
			}
		}
	}
	def, err := r.lookup(e.Name, len(e.Args))
	if err != nil {
		return nil, err
	}
	if len(e.Args) == 0 {
		return def, nil
	}
	args, err := r.resolveAll(e.Args)
	if err != nil {
		return nil, err
	}
	return r.u.Instantiate(def, args...)
}

func (r *resolver) resolveAll(es []*Expr) ([]*hosttype.Type, error) {
	out := make([]*hosttype.Type, len(es))
	for i, e := range es {
		t, err := r.resolve(e)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// lookup tries the name as written, then relative to the declaring
// namespace and each of its parents.
func (r *resolver) lookup(name string, arity int) (*hosttype.Type, error) {
	if t, ok := r.u.Lookup(name, arity); ok {
		return t, nil
	}
	ns := r.namespace
	for ns != "" {
		if t, ok := r.u.Lookup(ns+"."+name, arity); ok {
			return t, nil
		}
		i := strings.LastIndex(ns, ".")
		if i < 0 {
			break
		}
		ns = ns[:i]
	}
	return nil, errors.WithHint(
		errors.NewNotFoundError("unknown type %s", name),
		"declare it in a manifest or use a namespace-qualified platform name")
}
