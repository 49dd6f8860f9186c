// Package manifest loads host type declarations from YAML or TOML files.
//
// A manifest lists namespaces, their types and members. Member and base
// types are written as type expressions such as "List<Acme.Address>",
// "int?", "Acme.Point[,]" or "(int, string)"; see ParseExpr.
package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/developerxd/webapiclientgen/errors"
)

// File is one manifest document.
type File struct {
	Namespaces []Namespace `yaml:"namespaces" toml:"namespaces"`
}

type Namespace struct {
	Name  string     `yaml:"name" toml:"name"`
	Types []TypeDecl `yaml:"types" toml:"types"`
}

// TypeDecl declares a class, struct, enum or interface.
type TypeDecl struct {
	Name          string          `yaml:"name" toml:"name"`
	Kind          string          `yaml:"kind" toml:"kind"`
	Base          string          `yaml:"base" toml:"base"`
	Interfaces    []string        `yaml:"interfaces" toml:"interfaces"`
	GenericParams []string        `yaml:"generic_params" toml:"generic_params"`
	Serializable  bool            `yaml:"serializable" toml:"serializable"`
	Internal      bool            `yaml:"internal" toml:"internal"`
	Doc           string          `yaml:"doc" toml:"doc"`
	Attributes    []AttributeDecl `yaml:"attributes" toml:"attributes"`
	Properties    []MemberDecl    `yaml:"properties" toml:"properties"`
	Fields        []MemberDecl    `yaml:"fields" toml:"fields"`
	// Members lists enum constants in declared order.
	Members []EnumMemberDecl `yaml:"members" toml:"members"`
}

type MemberDecl struct {
	Name       string          `yaml:"name" toml:"name"`
	Type       string          `yaml:"type" toml:"type"`
	Doc        string          `yaml:"doc" toml:"doc"`
	Static     bool            `yaml:"static" toml:"static"`
	Private    bool            `yaml:"private" toml:"private"`
	Attributes []AttributeDecl `yaml:"attributes" toml:"attributes"`
}

// EnumMemberDecl is an enum constant. A missing value continues from the
// previous one, starting at zero.
type EnumMemberDecl struct {
	Name  string `yaml:"name" toml:"name"`
	Value *int64 `yaml:"value" toml:"value"`
	Doc   string `yaml:"doc" toml:"doc"`
}

// AttributeDecl is written either as a bare name ("DataContract") or as a
// table with name and args.
type AttributeDecl struct {
	Name string            `yaml:"name" toml:"name"`
	Args map[string]string `yaml:"args" toml:"args"`
}

// UnmarshalYAML accepts the bare-name shorthand.
func (a *AttributeDecl) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		a.Name = value.Value
		return nil
	}
	type plain AttributeDecl
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*a = AttributeDecl(p)
	return nil
}

// UnmarshalTOML accepts the bare-name shorthand.
func (a *AttributeDecl) UnmarshalTOML(v interface{}) error {
	switch val := v.(type) {
	case string:
		a.Name = val
		return nil
	case map[string]interface{}:
		name, _ := val["name"].(string)
		a.Name = name
		if args, ok := val["args"].(map[string]interface{}); ok {
			a.Args = make(map[string]string, len(args))
			for k, arg := range args {
				a.Args[k] = fmt.Sprint(arg)
			}
		}
		return nil
	}
	return errors.NewInvalidInputError("attribute must be a string or a table, got %T", v)
}
