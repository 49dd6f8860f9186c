// Package translate turns host types into client type references.
//
// Rules are tried in a fixed order and the first match wins:
//
//  1. nil or void: no reference
//  2. pending (selected for mirroring): reference to the generated declaration
//  3. generic instantiation: see translateGeneric
//  4. array: array of the translated element
//  5. platform substitutions (HTTP result wrappers, serializable object)
//  6. primitive or raw pass-through of the host name
//
// Pending membership is checked before any structural inspection, so a
// pending generic or array type is still mirrored by name.
package translate

import (
	"github.com/developerxd/webapiclientgen/clientgen/codedom"
	"github.com/developerxd/webapiclientgen/clientgen/hosttype"
	"github.com/developerxd/webapiclientgen/errors"
	"github.com/developerxd/webapiclientgen/logger"
)

// Translator is a pure function of (host type, pending set, suffix).
// It holds no mutable state and is safe for concurrent use.
type Translator struct {
	pending *hosttype.PendingSet
	suffix  string
}

// New returns a translator for one run.
func New(pending *hosttype.PendingSet, suffix string) *Translator {
	return &Translator{pending: pending, suffix: suffix}
}

// Suffix returns the namespace suffix applied to mirrored types.
func (tr *Translator) Suffix() string {
	return tr.suffix
}

// ClientNamespace applies the suffix rule to a host namespace.
func (tr *Translator) ClientNamespace(hostNamespace string) string {
	return hostNamespace + tr.suffix
}

// MirroredRef is the reference to the generated declaration of t,
// regardless of whether t is pending.
func (tr *Translator) MirroredRef(t *hosttype.Type) *codedom.TypeRef {
	return codedom.Mirrored(tr.ClientNamespace(t.Namespace), t.Name)
}

// Translate maps a host type to a client reference. The only error is an
// assertion failure for a tuple wrapper whose argument count does not match
// its arity; callers must discard the whole run when they see it.
func (tr *Translator) Translate(t *hosttype.Type) (*codedom.TypeRef, error) {
	if t == nil || t.Kind == hosttype.KindVoid {
		return nil, nil
	}

	if tr.pending.Contains(t) {
		return tr.MirroredRef(t), nil
	}

	if t.IsGeneric() {
		return tr.translateGeneric(t)
	}

	if t.IsArray() {
		elem, err := tr.Translate(t.Elem)
		if err != nil {
			return nil, err
		}
		return codedom.Array(elem, t.Rank), nil
	}

	fullName := t.FullName()
	if httpResultNames[fullName] {
		return codedom.Raw(hosttype.HTTPResponseMessageName), nil
	}
	if fullName == hosttype.ObjectName && t.Serializable {
		return codedom.Raw(hosttype.JObjectName), nil
	}

	if primitiveNames[fullName] {
		return codedom.Primitive(fullName), nil
	}

	switch t.Kind {
	case hosttype.KindClass, hosttype.KindValue, hosttype.KindEnum, hosttype.KindInterface, hosttype.KindGenericParam:
		logger.Debugw("passing host type through unchanged", logger.FieldType, fullName)
	default:
		logger.Warnw("unrecognized host type category, passing through unchanged",
			logger.FieldType, fullName,
			logger.FieldKind, t.Kind.String())
	}
	return codedom.Raw(fullName), nil
}

// translateGeneric handles generic instantiations, in priority order:
// nullable, async, sequence, tuple, dictionary, key/value pair, other.
func (tr *Translator) translateGeneric(t *hosttype.Type) (*codedom.TypeRef, error) {
	def := t.GenericDef
	defName := def.FullName()
	args := t.GenericArgs

	if defName == hosttype.NullableDef && len(args) == 1 {
		inner, err := tr.Translate(args[0])
		if err != nil {
			return nil, err
		}
		return codedom.Optional(inner), nil
	}

	if asyncDefs[defName] && len(args) == 1 {
		return tr.Translate(args[0])
	}

	if sequenceDefs[defName] && len(args) == 1 {
		elem, err := tr.Translate(args[0])
		if err != nil {
			return nil, err
		}
		return codedom.Array(elem, 1), nil
	}

	if arity, ok := tupleArity[defName]; ok {
		if len(args) != arity {
			return nil, errors.AssertionFailedf("tuple wrapper %s expects %d type arguments, got %d",
				defName, arity, len(args))
		}
		refs, err := tr.translateAll(args)
		if err != nil {
			return nil, err
		}
		return codedom.Tuple(refs...), nil
	}

	if len(args) == 2 {
		if defName == hosttype.IDictionaryDef || t.Implements(hosttype.IDictionaryDef) {
			refs, err := tr.translateAll(args)
			if err != nil {
				return nil, err
			}
			return codedom.Map(refs[0], refs[1]), nil
		}
		if defName == hosttype.KeyValuePairDef {
			refs, err := tr.translateAll(args)
			if err != nil {
				return nil, err
			}
			return codedom.Pair(refs[0], refs[1]), nil
		}
	}

	refs, err := tr.translateAll(args)
	if err != nil {
		return nil, err
	}
	return tr.genericRef(def, tr.pending.Contains(def), refs), nil
}

// TranslateBase maps the base class of a mirrored class. A base keeps its
// declared shape: a generic base is never folded into an array, map or
// optional, because the client class must still derive from a class.
// mirrored selects the generated declaration over the host one.
func (tr *Translator) TranslateBase(base *hosttype.Type, mirrored bool) (*codedom.TypeRef, error) {
	if base == nil {
		return nil, nil
	}
	if !base.IsGeneric() {
		if mirrored {
			return tr.MirroredRef(base), nil
		}
		return codedom.Raw(base.FullName()), nil
	}
	refs, err := tr.translateAll(base.GenericArgs)
	if err != nil {
		return nil, err
	}
	return tr.genericRef(base.GenericDef, mirrored, refs), nil
}

// genericRef names a generic instantiation: the suffixed client declaration
// when the definition is mirrored, otherwise the host name without the arity
// marker.
func (tr *Translator) genericRef(def *hosttype.Type, mirrored bool, refs []*codedom.TypeRef) *codedom.TypeRef {
	if mirrored {
		return codedom.MirroredGeneric(tr.ClientNamespace(def.Namespace), def.Name, refs...)
	}
	if def.Namespace == "" {
		return codedom.Generic(def.Name, refs...)
	}
	return codedom.Generic(def.Namespace+"."+def.Name, refs...)
}

func (tr *Translator) translateAll(types []*hosttype.Type) ([]*codedom.TypeRef, error) {
	refs := make([]*codedom.TypeRef, len(types))
	for i, a := range types {
		ref, err := tr.Translate(a)
		if err != nil {
			return nil, errors.Wrapf(err, "type argument %d", i)
		}
		refs[i] = ref
	}
	return refs, nil
}
