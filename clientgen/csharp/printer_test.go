package csharp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/developerxd/webapiclientgen/clientgen/codedom"
	"github.com/developerxd/webapiclientgen/errors"
)

func sampleUnit() *codedom.CompileUnit {
	return &codedom.CompileUnit{Namespaces: []*codedom.Namespace{
		{
			Name: "Acme.Orders.Client",
			Declarations: []*codedom.Declaration{
				{
					Kind:      codedom.DeclClass,
					Name:      "Order",
					Namespace: "Acme.Orders.Client",
					Base:      codedom.Mirrored("Acme.Common.Client", "Entity"),
					Doc:       []string{"An order."},
					Members: []*codedom.Member{
						{Name: "Customer", Type: codedom.Primitive("System.String"), Required: true, Doc: []string{"Who ordered."}},
						{Name: "Total", Type: codedom.Optional(codedom.Primitive("System.Decimal"))},
					},
				},
				{
					Kind:      codedom.DeclEnum,
					Name:      "Status",
					Namespace: "Acme.Orders.Client",
					Members: []*codedom.Member{
						{Name: "A", Shape: codedom.ShapeEnumValue},
						{Name: "C", Shape: codedom.ShapeEnumValue, Value: codedom.Int64(5)},
					},
				},
			},
		},
		{
			Name: "Acme.Common.Client",
			Declarations: []*codedom.Declaration{
				{
					Kind:      codedom.DeclValue,
					Name:      "Point",
					Namespace: "Acme.Common.Client",
					Members: []*codedom.Member{
						{Name: "X", Type: codedom.Primitive("System.Int32"), Origin: codedom.OriginField, Shape: codedom.ShapePlainField},
					},
				},
			},
		},
	}}
}

const wantSample = `//------------------------------------------------------------------------------
// <auto-generated>
//     This code was generated by clientgen. DO NOT EDIT.
//     Changes to this file will be lost if the code is regenerated.
// </auto-generated>
//------------------------------------------------------------------------------

namespace Acme.Orders.Client
{
    /// <summary>
    /// An order.
    /// </summary>
    public class Order : Acme.Common.Client.Entity
    {
        /// <summary>
        /// Who ordered.
        /// </summary>
        [System.ComponentModel.DataAnnotations.RequiredAttribute()]
        public string Customer { get; set; }//;

        public decimal? Total { get; set; }//;
    }

    public enum Status
    {
        A,
        C = 5,
    }
}

namespace Acme.Common.Client
{
    public struct Point
    {
        public int X;
    }
}
`

func TestGenerateFile(t *testing.T) {
	p, err := New("7.3")
	require.NoError(t, err)
	assert.Equal(t, "csharp", p.Language())
	assert.Equal(t, "cs", p.FileExtension())
	assert.Equal(t, "7.3", p.LangVersion())

	assert.Equal(t, wantSample, p.GenerateFile(sampleUnit()))
}

func TestGenerateFile_LegacyLanguageVersion(t *testing.T) {
	p, err := New("2.0")
	require.NoError(t, err)

	out := p.GenerateFile(sampleUnit())
	assert.NotContains(t, out, Marker)
	assert.Contains(t, out, `        public string Customer
        {
            get { return _Customer; }
            set { _Customer = value; }
        }
        private string _Customer;
`)
	assert.Contains(t, out, "        public int X;\n", "plain fields are unaffected")
}

func TestNew(t *testing.T) {
	p, err := New("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLangVersion, p.LangVersion())

	_, err = New("latest-and-greatest")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInputError(err))
}

func TestGenericDeclaration(t *testing.T) {
	p, err := New("12")
	require.NoError(t, err)
	unit := &codedom.CompileUnit{Namespaces: []*codedom.Namespace{{
		Name: "Acme.Client",
		Declarations: []*codedom.Declaration{{
			Kind:       codedom.DeclClass,
			Name:       "Page",
			TypeParams: []string{"T", "TKey"},
			Base:       codedom.Raw("System.Object"),
			Members: []*codedom.Member{
				{Name: "Items", Type: codedom.Array(codedom.Raw("T"), 1)},
			},
		}},
	}}}
	out := p.GenerateFile(unit)
	assert.Contains(t, out, "    public class Page<T, TKey>\n")
	assert.Contains(t, out, "        public T[] Items { get; set; }//;\n")
}

const wantGenericBases = `
namespace Acme.Client
{
    public class Derived : Acme.Client.Base<int>
    {
    }

    public class Bag : System.Collections.Generic.List<int>
    {
    }

    public class Index : System.Collections.Generic.Dictionary<string, Acme.Client.Derived>
    {
    }
}
`

func TestGenerateFile_GenericBases(t *testing.T) {
	p, err := New("")
	require.NoError(t, err)
	i32 := codedom.Primitive("System.Int32")
	unit := &codedom.CompileUnit{Namespaces: []*codedom.Namespace{{
		Name: "Acme.Client",
		Declarations: []*codedom.Declaration{
			{Kind: codedom.DeclClass, Name: "Derived", Base: codedom.MirroredGeneric("Acme.Client", "Base", i32)},
			{Kind: codedom.DeclClass, Name: "Bag", Base: codedom.Generic("System.Collections.Generic.List", i32)},
			{Kind: codedom.DeclClass, Name: "Index", Base: codedom.Generic("System.Collections.Generic.Dictionary",
				codedom.Primitive("System.String"), codedom.Mirrored("Acme.Client", "Derived"))},
		},
	}}}

	out := p.GenerateFile(unit)
	header := wantSample[:strings.Index(wantSample, "\nnamespace ")]
	assert.Equal(t, header+wantGenericBases, out)
}

func TestTypeName(t *testing.T) {
	str := codedom.Primitive("System.String")
	i32 := codedom.Primitive("System.Int32")
	order := codedom.Mirrored("Acme.Client", "Order")

	tests := []struct {
		name string
		ref  *codedom.TypeRef
		want string
	}{
		{"void", nil, "void"},
		{"keyword", i32, "int"},
		{"non-keyword primitive", codedom.Primitive("System.DateTime"), "System.DateTime"},
		{"mirrored", order, "Acme.Client.Order"},
		{"raw", codedom.Raw("Newtonsoft.Json.Linq.JObject"), "Newtonsoft.Json.Linq.JObject"},
		{"array", codedom.Array(order, 1), "Acme.Client.Order[]"},
		{"rank 2", codedom.Array(i32, 2), "int[,]"},
		{"jagged", codedom.Array(codedom.Array(i32, 1), 1), "int[][]"},
		{"optional", codedom.Optional(i32), "int?"},
		{"tuple", codedom.Tuple(i32, str), "System.Tuple<int, string>"},
		{"map", codedom.Map(str, codedom.Array(order, 1)), "System.Collections.Generic.Dictionary<string, Acme.Client.Order[]>"},
		{"pair", codedom.Pair(str, i32), "System.Collections.Generic.KeyValuePair<string, int>"},
		{"mirrored generic", codedom.MirroredGeneric("Acme.Client", "Page", order), "Acme.Client.Page<Acme.Client.Order>"},
		{"host generic", codedom.Generic("System.Collections.Generic.IReadOnlyDictionary", str, i32),
			"System.Collections.Generic.IReadOnlyDictionary<string, int>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeName(tt.ref))
		})
	}
}
