// Package csharp prints a compile unit as C# source.
//
// Auto-properties are written as "public T Name { get; set; }//;". The
// trailing "//;" is an artifact marker the output sink strips before the
// file is saved.
package csharp

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/developerxd/webapiclientgen/clientgen/codedom"
	"github.com/developerxd/webapiclientgen/errors"
)

// Marker is appended to every auto-property line.
const Marker = "//;"

// DefaultLangVersion is used when no language version is configured.
const DefaultLangVersion = "7.3"

const requiredAttribute = "[System.ComponentModel.DataAnnotations.RequiredAttribute()]"

const indent = "    "

// auto-implemented properties arrived in C# 3.0
var autoPropertyConstraint = mustConstraint(">= 3.0")

func mustConstraint(c string) *semver.Constraints {
	con, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return con
}

// Printer implements clientgen.Printer for C#.
type Printer struct {
	langVersion    *semver.Version
	autoProperties bool
}

// New returns a printer for the given C# language version, e.g. "7.3".
func New(langVersion string) (*Printer, error) {
	if langVersion == "" {
		langVersion = DefaultLangVersion
	}
	v, err := semver.NewVersion(langVersion)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrInvalidInput, "invalid C# language version %q: %v", langVersion, err),
			"use a version such as 7.3 or 12")
	}
	return &Printer{langVersion: v, autoProperties: autoPropertyConstraint.Check(v)}, nil
}

func (p *Printer) Language() string {
	return "csharp"
}

func (p *Printer) FileExtension() string {
	return "cs"
}

// LangVersion returns the configured language version.
func (p *Printer) LangVersion() string {
	return p.langVersion.Original()
}

// GenerateFile prints unit. Namespaces and declarations are printed in the
// order the unit holds them.
func (p *Printer) GenerateFile(unit *codedom.CompileUnit) string {
	var sb strings.Builder

	sb.WriteString("//------------------------------------------------------------------------------\n")
	sb.WriteString("// <auto-generated>\n")
	sb.WriteString("//     This code was generated by clientgen. DO NOT EDIT.\n")
	sb.WriteString("//     Changes to this file will be lost if the code is regenerated.\n")
	sb.WriteString("// </auto-generated>\n")
	sb.WriteString("//------------------------------------------------------------------------------\n")

	for _, ns := range unit.Namespaces {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("namespace %s\n{\n", ns.Name))
		for i, d := range ns.Declarations {
			if i > 0 {
				sb.WriteString("\n")
			}
			p.writeDeclaration(&sb, d)
		}
		sb.WriteString("}\n")
	}
	return sb.String()
}

func (p *Printer) writeDeclaration(sb *strings.Builder, d *codedom.Declaration) {
	writeDoc(sb, indent, d.Doc)

	switch d.Kind {
	case codedom.DeclEnum:
		sb.WriteString(fmt.Sprintf("%spublic enum %s\n%s{\n", indent, d.Name, indent))
		for _, m := range d.Members {
			writeDoc(sb, indent+indent, m.Doc)
			if m.Value != nil {
				sb.WriteString(fmt.Sprintf("%s%s%s = %d,\n", indent, indent, m.Name, *m.Value))
			} else {
				sb.WriteString(fmt.Sprintf("%s%s%s,\n", indent, indent, m.Name))
			}
		}
		sb.WriteString(indent + "}\n")
		return
	}

	keyword := "class"
	if d.Kind == codedom.DeclValue {
		keyword = "struct"
	}
	header := fmt.Sprintf("%spublic %s %s%s", indent, keyword, d.Name, typeParams(d.TypeParams))
	if d.Base != nil && !isObject(d.Base) {
		header += " : " + TypeName(d.Base)
	}
	sb.WriteString(header + "\n" + indent + "{\n")

	for i, m := range d.Members {
		if i > 0 {
			sb.WriteString("\n")
		}
		p.writeMember(sb, m)
	}
	sb.WriteString(indent + "}\n")
}

func (p *Printer) writeMember(sb *strings.Builder, m *codedom.Member) {
	in := indent + indent
	typ := TypeName(m.Type)
	writeDoc(sb, in, m.Doc)
	if m.Required {
		sb.WriteString(in + requiredAttribute + "\n")
	}

	switch {
	case m.Shape == codedom.ShapePlainField:
		sb.WriteString(fmt.Sprintf("%spublic %s %s;\n", in, typ, m.Name))
	case p.autoProperties:
		sb.WriteString(fmt.Sprintf("%spublic %s %s { get; set; }%s\n", in, typ, m.Name, Marker))
	default:
		backing := "_" + m.Name
		sb.WriteString(fmt.Sprintf("%spublic %s %s\n", in, typ, m.Name))
		sb.WriteString(in + "{\n")
		sb.WriteString(fmt.Sprintf("%s%sget { return %s; }\n", in, indent, backing))
		sb.WriteString(fmt.Sprintf("%s%sset { %s = value; }\n", in, indent, backing))
		sb.WriteString(in + "}\n")
		sb.WriteString(fmt.Sprintf("%sprivate %s %s;\n", in, typ, backing))
	}
}

func writeDoc(sb *strings.Builder, in string, lines []string) {
	if len(lines) == 0 {
		return
	}
	sb.WriteString(in + "/// <summary>\n")
	for _, l := range lines {
		sb.WriteString(strings.TrimRight(in+"/// "+l, " ") + "\n")
	}
	sb.WriteString(in + "/// </summary>\n")
}

func typeParams(params []string) string {
	if len(params) == 0 {
		return ""
	}
	return "<" + strings.Join(params, ", ") + ">"
}

func isObject(ref *codedom.TypeRef) bool {
	return (ref.Kind == codedom.RefRaw || ref.Kind == codedom.RefPrimitive) && ref.QualifiedName() == "System.Object"
}
