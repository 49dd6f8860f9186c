package csharp

import (
	"strings"

	"github.com/developerxd/webapiclientgen/clientgen/codedom"
)

// Keywords maps platform primitives to their C# keyword spelling.
var Keywords = map[string]string{
	"System.Boolean": "bool",
	"System.Byte":    "byte",
	"System.SByte":   "sbyte",
	"System.Char":    "char",
	"System.Int16":   "short",
	"System.UInt16":  "ushort",
	"System.Int32":   "int",
	"System.UInt32":  "uint",
	"System.Int64":   "long",
	"System.UInt64":  "ulong",
	"System.Single":  "float",
	"System.Double":  "double",
	"System.Decimal": "decimal",
	"System.String":  "string",
	"System.Object":  "object",
}

// TypeName spells ref in C#. A nil reference is void.
func TypeName(ref *codedom.TypeRef) string {
	if ref == nil {
		return "void"
	}
	switch ref.Kind {
	case codedom.RefMirrored, codedom.RefRaw:
		return ref.QualifiedName()
	case codedom.RefPrimitive:
		if kw, ok := Keywords[ref.QualifiedName()]; ok {
			return kw
		}
		return ref.QualifiedName()
	case codedom.RefArray:
		return TypeName(ref.Elem) + "[" + strings.Repeat(",", ref.Rank-1) + "]"
	case codedom.RefOptional:
		return TypeName(ref.Inner()) + "?"
	case codedom.RefTuple:
		return "System.Tuple<" + typeArgs(ref.Args) + ">"
	case codedom.RefMap:
		return "System.Collections.Generic.Dictionary<" + typeArgs(ref.Args) + ">"
	case codedom.RefPair:
		return "System.Collections.Generic.KeyValuePair<" + typeArgs(ref.Args) + ">"
	case codedom.RefGeneric:
		return ref.QualifiedName() + "<" + typeArgs(ref.Args) + ">"
	}
	return ref.QualifiedName()
}

func typeArgs(args []*codedom.TypeRef) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = TypeName(a)
	}
	return strings.Join(parts, ", ")
}
