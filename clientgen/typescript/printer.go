// Package typescript prints a compile unit as TypeScript declarations.
package typescript

import (
	"fmt"
	"strings"

	"github.com/developerxd/webapiclientgen/clientgen/codedom"
	"github.com/developerxd/webapiclientgen/errors"
)

// Namespace styles.
const (
	// StyleNamespace wraps declarations in "export namespace Ns { ... }" and
	// references mirrored types by qualified name.
	StyleNamespace = "namespace"
	// StyleFlat writes every declaration at top level and references
	// mirrored types by simple name.
	StyleFlat = "flat"
)

// TypeMapping defines how platform primitives map to TypeScript types
var TypeMapping = map[string]string{
	"System.Boolean":        "boolean",
	"System.Byte":           "number",
	"System.SByte":          "number",
	"System.Int16":          "number",
	"System.UInt16":         "number",
	"System.Int32":          "number",
	"System.UInt32":         "number",
	"System.Int64":          "number",
	"System.UInt64":         "number",
	"System.Single":         "number",
	"System.Double":         "number",
	"System.Decimal":        "number",
	"System.Char":           "string",
	"System.String":         "string",
	"System.Guid":           "string",
	"System.Uri":            "string",
	"System.TimeSpan":       "string",
	"System.DateTime":       "Date",
	"System.DateTimeOffset": "Date",
	"System.DateOnly":       "Date",
	"System.TimeOnly":       "string",
	"System.Object":         "any",
}

// rawMapping covers platform types passed through by name.
var rawMapping = map[string]string{
	"Newtonsoft.Json.Linq.JObject":        "any",
	"System.Net.Http.HttpResponseMessage": "Response",
}

// Printer implements clientgen.Printer for TypeScript.
type Printer struct {
	style string
}

// New returns a printer using style, StyleNamespace when empty.
func New(style string) (*Printer, error) {
	switch style {
	case "":
		style = StyleNamespace
	case StyleNamespace, StyleFlat:
	default:
		return nil, errors.WithHintf(
			errors.NewInvalidInputError("unknown TypeScript namespace style %q", style),
			"use %q or %q", StyleNamespace, StyleFlat)
	}
	return &Printer{style: style}, nil
}

func (p *Printer) Language() string {
	return "typescript"
}

func (p *Printer) FileExtension() string {
	return "ts"
}

// GenerateFile prints unit as one TypeScript module.
func (p *Printer) GenerateFile(unit *codedom.CompileUnit) string {
	var sb strings.Builder

	sb.WriteString("/* eslint-disable */\n")
	sb.WriteString("// Code generated by clientgen. DO NOT EDIT.\n")

	for _, ns := range unit.Namespaces {
		sb.WriteString("\n")
		in := ""
		if p.style == StyleNamespace {
			sb.WriteString(fmt.Sprintf("export namespace %s {\n", ns.Name))
			in = "\t"
		}
		for i, d := range ns.Declarations {
			if i > 0 {
				sb.WriteString("\n")
			}
			p.writeDeclaration(&sb, in, d)
		}
		if p.style == StyleNamespace {
			sb.WriteString("}\n")
		}
	}
	return sb.String()
}

func (p *Printer) writeDeclaration(sb *strings.Builder, in string, d *codedom.Declaration) {
	writeDoc(sb, in, d.Doc)

	if d.Kind == codedom.DeclEnum {
		parts := make([]string, len(d.Members))
		for i, m := range d.Members {
			if m.Value != nil {
				parts[i] = fmt.Sprintf("%s = %d", m.Name, *m.Value)
			} else {
				parts[i] = m.Name
			}
		}
		sb.WriteString(fmt.Sprintf("%sexport enum %s { %s }\n", in, d.Name, strings.Join(parts, ", ")))
		return
	}

	header := fmt.Sprintf("%sexport interface %s", in, d.Name)
	if len(d.TypeParams) > 0 {
		header += "<" + strings.Join(d.TypeParams, ", ") + ">"
	}
	if d.Base.IsMirrored() {
		header += " extends " + p.TypeName(d.Base)
	}
	sb.WriteString(header + " {\n")
	for _, m := range d.Members {
		writeDoc(sb, in+"\t", m.Doc)
		optionalMark := "?"
		if m.Required {
			optionalMark = ""
		}
		sb.WriteString(fmt.Sprintf("%s\t%s%s: %s;\n", in, m.Name, optionalMark, p.TypeName(m.Type)))
	}
	sb.WriteString(in + "}\n")
}

func writeDoc(sb *strings.Builder, in string, lines []string) {
	switch len(lines) {
	case 0:
		return
	case 1:
		sb.WriteString(fmt.Sprintf("%s/** %s */\n", in, lines[0]))
		return
	}
	sb.WriteString(in + "/**\n")
	for _, l := range lines {
		sb.WriteString(strings.TrimRight(fmt.Sprintf("%s * %s", in, l), " ") + "\n")
	}
	sb.WriteString(in + " */\n")
}

// TypeName spells ref in TypeScript. A nil reference is void.
func (p *Printer) TypeName(ref *codedom.TypeRef) string {
	if ref == nil {
		return "void"
	}
	switch ref.Kind {
	case codedom.RefMirrored:
		if p.style == StyleFlat {
			return ref.Name
		}
		return ref.QualifiedName()
	case codedom.RefPrimitive:
		if ts, ok := TypeMapping[ref.Name]; ok {
			return ts
		}
		return "any"
	case codedom.RefRaw:
		if ts, ok := rawMapping[ref.Name]; ok {
			return ts
		}
		// unqualified names are generic parameters
		if !strings.Contains(ref.Name, ".") {
			return ref.Name
		}
		return "any"
	case codedom.RefArray:
		// a rank-n array becomes n nested arrays
		return strings.Repeat("Array<", ref.Rank) + p.TypeName(ref.Elem) + strings.Repeat(">", ref.Rank)
	case codedom.RefOptional:
		return p.TypeName(ref.Inner()) + " | null"
	case codedom.RefTuple:
		return "[" + p.typeArgs(ref.Args) + "]"
	case codedom.RefMap:
		return fmt.Sprintf("{[id: %s]: %s}", p.TypeName(ref.Key()), p.TypeName(ref.Value()))
	case codedom.RefPair:
		return fmt.Sprintf("{key: %s; value: %s}", p.TypeName(ref.Key()), p.TypeName(ref.Value()))
	case codedom.RefGeneric:
		// host generics have no TypeScript declaration
		if !ref.IsMirrored() {
			return "any"
		}
		name := ref.QualifiedName()
		if p.style == StyleFlat {
			name = ref.Name
		}
		return name + "<" + p.typeArgs(ref.Args) + ">"
	}
	return "any"
}

func (p *Printer) typeArgs(args []*codedom.TypeRef) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = p.TypeName(a)
	}
	return strings.Join(parts, ", ")
}
