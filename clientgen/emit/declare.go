package emit

import (
	"context"
	"sort"

	"github.com/developerxd/webapiclientgen/clientgen/cherry"
	"github.com/developerxd/webapiclientgen/clientgen/codedom"
	"github.com/developerxd/webapiclientgen/clientgen/doccomment"
	"github.com/developerxd/webapiclientgen/clientgen/hosttype"
	"github.com/developerxd/webapiclientgen/clientgen/translate"
	"github.com/developerxd/webapiclientgen/errors"
	"github.com/developerxd/webapiclientgen/logger"
)

// builder is shared read-only by every group of a run.
type builder struct {
	tr         *translate.Translator
	opts       Options
	namespaces map[string]bool
}

func (b *builder) buildGroup(ctx context.Context, g group) (groupResult, error) {
	clientNS := b.tr.ClientNamespace(g.namespace)
	res := groupResult{ns: &codedom.Namespace{Name: clientNS}}
	logger.Debugw("generating types in namespace",
		logger.FieldNamespace, g.namespace,
		logger.FieldCount, len(g.types))

	for _, t := range g.types {
		if err := ctx.Err(); err != nil {
			return groupResult{}, errors.Wrap(err, "emit cancelled")
		}

		var (
			decl *codedom.Declaration
			err  error
		)
		switch {
		case t.IsClassOrStruct():
			decl, err = b.classOrValue(t, clientNS)
		case t.IsEnum():
			decl = b.enum(t, clientNS)
		default:
			d := Diagnostic{Namespace: g.namespace, Type: t.Name, Message: "not yet supported: " + t.Kind.String()}
			logger.Warnw("skipping unsupported host type",
				logger.FieldNamespace, g.namespace,
				logger.FieldType, t.Name,
				logger.FieldKind, t.Kind.String())
			res.diags = append(res.diags, d)
			continue
		}
		if err != nil {
			return groupResult{}, errors.Wrapf(err, "type %s", t.FullName())
		}
		res.ns.Declarations = append(res.ns.Declarations, decl)
	}
	return res, nil
}

func (b *builder) classOrValue(t *hosttype.Type, clientNS string) (*codedom.Declaration, error) {
	decl := &codedom.Declaration{
		Kind:      codedom.DeclClass,
		Name:      t.Name,
		Namespace: clientNS,
		Doc:       b.doc(doccomment.TypeKey(t.FullName())),
	}
	if t.Kind == hosttype.KindValue {
		decl.Kind = codedom.DeclValue
	}
	if t.IsGenericDefinition() {
		decl.TypeParams = append([]string(nil), t.GenericParams...)
	}
	if decl.Kind == codedom.DeclClass && t.Base != nil {
		base, err := b.baseRef(t.Base)
		if err != nil {
			return nil, errors.Wrap(err, "base type")
		}
		decl.Base = base
	}

	full := t.FullName()
	for _, p := range sortedByName(t.PublicInstanceProperties()) {
		m, err := b.member(t, p, codedom.OriginProperty, codedom.ShapeAutoProperty, doccomment.PropertyKey(full, p.Name))
		if err != nil {
			return nil, err
		}
		if m != nil {
			decl.Members = append(decl.Members, m)
		}
	}

	shape := codedom.ShapeAutoProperty
	if decl.Kind == codedom.DeclValue {
		shape = codedom.ShapePlainField
	}
	for _, f := range sortedByName(t.PublicInstanceFields()) {
		m, err := b.member(t, f, codedom.OriginField, shape, doccomment.FieldKey(full, f.Name))
		if err != nil {
			return nil, err
		}
		if m != nil {
			decl.Members = append(decl.Members, m)
		}
	}
	return decl, nil
}

// baseRef mirrors a base type declared in one of the processed namespaces
// and passes any other base through by its host name. Generic bases keep
// their translated type arguments.
func (b *builder) baseRef(base *hosttype.Type) (*codedom.TypeRef, error) {
	ns := base.Namespace
	if base.IsGeneric() {
		ns = base.GenericDef.Namespace
	}
	return b.tr.TranslateBase(base, b.namespaces[ns])
}

func (b *builder) member(t *hosttype.Type, m *hosttype.Member, origin codedom.MemberOrigin, shape codedom.MemberShape, docKey string) (*codedom.Member, error) {
	category := b.opts.Policy.Classify(m, t, b.opts.Methods)
	if category == cherry.None {
		return nil, nil
	}
	ref, err := b.tr.Translate(m.Type)
	if err != nil {
		return nil, errors.Wrapf(err, "member %s", m.Name)
	}
	return &codedom.Member{
		Name:     m.Name,
		Type:     ref,
		Required: category == cherry.BigCherry,
		Doc:      b.doc(docKey),
		Origin:   origin,
		Shape:    shape,
	}, nil
}

func (b *builder) enum(t *hosttype.Type, clientNS string) *codedom.Declaration {
	decl := &codedom.Declaration{
		Kind:      codedom.DeclEnum,
		Name:      t.Name,
		Namespace: clientNS,
		Doc:       b.doc(doccomment.TypeKey(t.FullName())),
	}
	full := t.FullName()
	for k, em := range t.EnumMembers {
		m := &codedom.Member{
			Name:   em.Name,
			Doc:    b.doc(doccomment.FieldKey(full, em.Name)),
			Origin: codedom.OriginField,
			Shape:  codedom.ShapeEnumValue,
		}
		if em.Value != int64(k) {
			m.Value = codedom.Int64(em.Value)
		}
		decl.Members = append(decl.Members, m)
	}
	return decl
}

func (b *builder) doc(key string) []string {
	if b.opts.Docs == nil {
		return nil
	}
	d, ok := b.opts.Docs.Lookup(key)
	if !ok {
		return nil
	}
	return d.Summary
}

func sortedByName(members []*hosttype.Member) []*hosttype.Member {
	sort.SliceStable(members, func(i, j int) bool { return members[i].Name < members[j].Name })
	return members
}
