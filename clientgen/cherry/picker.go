package cherry

import (
	"strings"

	"github.com/developerxd/webapiclientgen/clientgen/hosttype"
)

// Picker classifies members from the attributes on them and on their
// declaring type. It is stateless and safe for concurrent use.
type Picker struct{}

// Classify returns the category of member m declared on t under methods.
// Any enabled method that hides the member wins; otherwise any method that
// requires it makes it BigCherry.
func (Picker) Classify(m *hosttype.Member, t *hosttype.Type, methods Method) Category {
	if methods == All {
		if hosttype.HasAttribute(m.Attributes, "Required") {
			return BigCherry
		}
		return Cherry
	}

	result := Cherry
	consider := func(c Category) bool {
		if c == None {
			result = None
			return false
		}
		if c > result {
			result = c
		}
		return true
	}

	if methods.Has(DataContract) && !consider(dataContract(m, t)) {
		return None
	}
	if methods.Has(NewtonsoftJson) && !consider(newtonsoft(m, t)) {
		return None
	}
	if methods.Has(Serializable) && !consider(serializable(m)) {
		return None
	}
	if methods.Has(AspNet) && !consider(aspNet(m)) {
		return None
	}
	if methods.Has(NetCore) && !consider(netCore(m)) {
		return None
	}
	return result
}

// dataContract: on a [DataContract] type only [DataMember] members count;
// other types fall back to opt-out with [IgnoreDataMember].
func dataContract(m *hosttype.Member, t *hosttype.Type) Category {
	if t != nil && hosttype.HasAttribute(t.Attributes, "DataContract") {
		dm, ok := hosttype.FindAttribute(m.Attributes, "DataMember")
		if !ok {
			return None
		}
		if v, ok := dm.Arg("IsRequired"); ok && isTrue(v) {
			return BigCherry
		}
		return Cherry
	}
	if hosttype.HasAttribute(m.Attributes, "IgnoreDataMember") {
		return None
	}
	return Cherry
}

// newtonsoft: [JsonIgnore] hides; [JsonProperty(Required = Always|AllowNull)]
// requires. [JsonObject(MemberSerialization.OptIn)] types expose only
// [JsonProperty] members.
func newtonsoft(m *hosttype.Member, t *hosttype.Type) Category {
	if hosttype.HasAttribute(m.Attributes, "JsonIgnore") {
		return None
	}
	jp, hasProperty := hosttype.FindAttribute(m.Attributes, "JsonProperty")
	if t != nil {
		if jo, ok := hosttype.FindAttribute(t.Attributes, "JsonObject"); ok && !hasProperty {
			if v, ok := jo.Arg("MemberSerialization"); ok && strings.HasSuffix(strings.ToLower(v), "optin") {
				return None
			}
		}
	}
	if hasProperty {
		if v, ok := jp.Arg("Required"); ok {
			switch strings.ToLower(lastSegment(v)) {
			case "always", "allownull":
				return BigCherry
			}
		}
	}
	return Cherry
}

func serializable(m *hosttype.Member) Category {
	if hosttype.HasAttribute(m.Attributes, "NonSerialized") {
		return None
	}
	return Cherry
}

func aspNet(m *hosttype.Member) Category {
	if hosttype.HasAttribute(m.Attributes, "Required") {
		return BigCherry
	}
	return Cherry
}

// netCore covers System.Text.Json: [JsonIgnore] hides, [JsonRequired] requires.
func netCore(m *hosttype.Member) Category {
	if hosttype.HasAttribute(m.Attributes, "JsonIgnore") {
		return None
	}
	if hosttype.HasAttribute(m.Attributes, "JsonRequired") || hosttype.HasAttribute(m.Attributes, "Required") {
		return BigCherry
	}
	return Cherry
}

func isTrue(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}

func lastSegment(v string) string {
	if i := strings.LastIndex(v, "."); i >= 0 {
		return v[i+1:]
	}
	return v
}
