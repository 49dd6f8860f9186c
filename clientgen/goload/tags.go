package goload

import (
	"reflect"
	"strings"

	"github.com/developerxd/webapiclientgen/clientgen/hosttype"
)

// JSONTagInfo holds parsed information from a json struct tag
type JSONTagInfo struct {
	Name string // Field name from json tag
	Skip bool   // Skip this field (json:"-")
}

// ParseJSONTag extracts json tag information from a raw struct tag.
// Returns nil if there's no json tag.
func ParseJSONTag(tag string) *JSONTagInfo {
	jsonTag, ok := reflect.StructTag(tag).Lookup("json")
	if !ok {
		return nil
	}

	name, _, hasOptions := strings.Cut(jsonTag, ",")
	return &JSONTagInfo{Name: name, Skip: name == "-" && !hasOptions}
}

// IsRequiredTag reports whether a validate tag carries the required
// constraint. Other constraints are ignored.
func IsRequiredTag(tag string) bool {
	for _, part := range strings.Split(reflect.StructTag(tag).Get("validate"), ",") {
		if strings.TrimSpace(part) == "required" {
			return true
		}
	}
	return false
}

// tagAttributes turns struct tags into the attributes member selection
// understands: json:"-" is JsonIgnore, a json name is JsonProperty and
// validate:"required" is Required.
func tagAttributes(tag string) []hosttype.Attribute {
	var attrs []hosttype.Attribute
	if j := ParseJSONTag(tag); j != nil {
		if j.Skip {
			attrs = append(attrs, hosttype.Attribute{Name: "JsonIgnore"})
		} else if j.Name != "" {
			attrs = append(attrs, hosttype.Attribute{
				Name: "JsonProperty",
				Args: map[string]string{"PropertyName": j.Name},
			})
		}
	}
	if IsRequiredTag(tag) {
		attrs = append(attrs, hosttype.Attribute{Name: "Required"})
	}
	return attrs
}
