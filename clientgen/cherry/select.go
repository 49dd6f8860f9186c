package cherry

import (
	"github.com/developerxd/webapiclientgen/clientgen/hosttype"
)

// SelectTypes picks the declared types of a run. With All every public
// class, value type and enum is picked; otherwise a type must carry an
// attribute one of the enabled methods recognises. Enums are always picked
// when public, since they carry no member policy.
func SelectTypes(types []*hosttype.Type, methods Method) []*hosttype.Type {
	var out []*hosttype.Type
	for _, t := range types {
		if !t.Public {
			continue
		}
		switch t.Kind {
		case hosttype.KindClass, hosttype.KindValue:
			if typeSelected(t, methods) {
				out = append(out, t)
			}
		case hosttype.KindEnum:
			out = append(out, t)
		}
	}
	return out
}

func typeSelected(t *hosttype.Type, methods Method) bool {
	if methods == All {
		return true
	}
	attrs := t.Attributes
	if methods.Has(DataContract) && (hosttype.HasAttribute(attrs, "DataContract") || hosttype.HasAttribute(attrs, "Serializable")) {
		return true
	}
	if methods.Has(NewtonsoftJson) && hosttype.HasAttribute(attrs, "JsonObject") {
		return true
	}
	if methods.Has(Serializable) && (t.Serializable || hosttype.HasAttribute(attrs, "Serializable")) {
		return true
	}
	// AspNet and NetCore annotate members, not types.
	return methods.Has(AspNet) || methods.Has(NetCore)
}
