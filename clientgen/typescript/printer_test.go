package typescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/developerxd/webapiclientgen/clientgen/codedom"
	"github.com/developerxd/webapiclientgen/errors"
)

func sampleUnit() *codedom.CompileUnit {
	return &codedom.CompileUnit{Namespaces: []*codedom.Namespace{{
		Name: "Acme.Orders.Client",
		Declarations: []*codedom.Declaration{
			{
				Kind:      codedom.DeclClass,
				Name:      "Order",
				Namespace: "Acme.Orders.Client",
				Base:      codedom.Mirrored("Acme.Common.Client", "Entity"),
				Doc:       []string{"An order.", "Kept for audits."},
				Members: []*codedom.Member{
					{Name: "Customer", Type: codedom.Primitive("System.String"), Required: true, Doc: []string{"Who ordered."}},
					{Name: "Lines", Type: codedom.Array(codedom.Mirrored("Acme.Orders.Client", "Line"), 1)},
				},
			},
			{
				Kind:      codedom.DeclEnum,
				Name:      "Status",
				Namespace: "Acme.Orders.Client",
				Members: []*codedom.Member{
					{Name: "A", Shape: codedom.ShapeEnumValue},
					{Name: "B", Shape: codedom.ShapeEnumValue},
					{Name: "C", Shape: codedom.ShapeEnumValue, Value: codedom.Int64(5)},
				},
			},
		},
	}}}
}

const wantNamespace = `/* eslint-disable */
// Code generated by clientgen. DO NOT EDIT.

export namespace Acme.Orders.Client {
	/**
	 * An order.
	 * Kept for audits.
	 */
	export interface Order extends Acme.Common.Client.Entity {
		/** Who ordered. */
		Customer: string;
		Lines?: Array<Acme.Orders.Client.Line>;
	}

	export enum Status { A, B, C = 5 }
}
`

func TestGenerateFile_Namespace(t *testing.T) {
	p, err := New("")
	require.NoError(t, err)
	assert.Equal(t, "typescript", p.Language())
	assert.Equal(t, "ts", p.FileExtension())
	assert.Equal(t, wantNamespace, p.GenerateFile(sampleUnit()))
}

func TestGenerateFile_Flat(t *testing.T) {
	p, err := New(StyleFlat)
	require.NoError(t, err)
	out := p.GenerateFile(sampleUnit())
	assert.NotContains(t, out, "export namespace")
	assert.Contains(t, out, "export interface Order extends Entity {\n")
	assert.Contains(t, out, "\tLines?: Array<Line>;\n")
}

func TestNew_UnknownStyle(t *testing.T) {
	_, err := New("modules")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInputError(err))
}

func TestTypeName(t *testing.T) {
	p, err := New(StyleNamespace)
	require.NoError(t, err)

	str := codedom.Primitive("System.String")
	i32 := codedom.Primitive("System.Int32")
	order := codedom.Mirrored("Acme.Client", "Order")

	tests := []struct {
		name string
		ref  *codedom.TypeRef
		want string
	}{
		{"void", nil, "void"},
		{"number", i32, "number"},
		{"date", codedom.Primitive("System.DateTime"), "Date"},
		{"unmapped primitive", codedom.Primitive("System.IntPtr"), "any"},
		{"mirrored", order, "Acme.Client.Order"},
		{"jobject", codedom.Raw("Newtonsoft.Json.Linq.JObject"), "any"},
		{"http response", codedom.Raw("System.Net.Http.HttpResponseMessage"), "Response"},
		{"generic param", codedom.Raw("T"), "T"},
		{"foreign type", codedom.Raw("Vendor.Thing"), "any"},
		{"array", codedom.Array(order, 1), "Array<Acme.Client.Order>"},
		{"rank 2", codedom.Array(i32, 2), "Array<Array<number>>"},
		{"optional", codedom.Optional(i32), "number | null"},
		{"array of optional", codedom.Array(codedom.Optional(i32), 1), "Array<number | null>"},
		{"tuple", codedom.Tuple(i32, str), "[number, string]"},
		{"map", codedom.Map(str, order), "{[id: string]: Acme.Client.Order}"},
		{"pair", codedom.Pair(str, i32), "{key: string; value: number}"},
		{"mirrored generic", codedom.MirroredGeneric("Acme.Client", "Page", order), "Acme.Client.Page<Acme.Client.Order>"},
		{"host generic", codedom.Generic("System.Collections.Generic.IReadOnlyDictionary", str, i32), "any"},
		{"foreign generic", codedom.Generic("Vendor.Wrapper", i32), "any"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.TypeName(tt.ref))
		})
	}
}

func TestGenerateFile_GenericBases(t *testing.T) {
	i32 := codedom.Primitive("System.Int32")
	unit := &codedom.CompileUnit{Namespaces: []*codedom.Namespace{{
		Name: "Acme.Client",
		Declarations: []*codedom.Declaration{
			{Kind: codedom.DeclClass, Name: "Derived", Base: codedom.MirroredGeneric("Acme.Client", "Base", i32)},
			{Kind: codedom.DeclClass, Name: "Bag", Base: codedom.Generic("System.Collections.Generic.List", i32)},
		},
	}}}

	tests := []struct {
		style string
		want  []string
	}{
		{StyleNamespace, []string{
			"\texport interface Derived extends Acme.Client.Base<number> {\n",
			"\texport interface Bag {\n",
		}},
		{StyleFlat, []string{
			"export interface Derived extends Base<number> {\n",
			"export interface Bag {\n",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			p, err := New(tt.style)
			require.NoError(t, err)
			out := p.GenerateFile(unit)
			for _, line := range tt.want {
				assert.Contains(t, out, line)
			}
			assert.NotContains(t, out, "System.Collections")
		})
	}
}
