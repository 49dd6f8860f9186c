package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/developerxd/webapiclientgen/clientgen/doccomment"
	"github.com/developerxd/webapiclientgen/clientgen/hosttype"
	"github.com/developerxd/webapiclientgen/errors"
)

const ordersYAML = `
namespaces:
  - name: Acme.Orders
    types:
      - name: Order
        base: Common.Entity
        doc: An order.
        attributes:
          - DataContract
        properties:
          - name: Customer
            type: string
            doc: Who ordered.
            attributes:
              - name: DataMember
                args: {IsRequired: "true"}
          - name: Lines
            type: List<Line>
          - name: Totals
            type: Dictionary<string, decimal?>
          - name: Shipping
            type: (int, string)
          - name: Internal
            type: int
            private: true
        fields:
          - name: Tag
            type: string
      - name: Line
        properties:
          - name: Sku
            type: string
      - name: Status
        kind: enum
        members:
          - name: Open
          - name: Held
          - name: Closed
            value: 5
            doc: Closed for good.
          - name: Archived
  - name: Acme.Common
    types:
      - name: Entity
        properties:
          - name: Id
            type: Guid
      - name: Page
        generic_params: [T]
        properties:
          - name: Items
            type: T[]
      - name: Point
        kind: struct
        fields:
          - name: X
            type: int
`

const ordersTOML = `
[[namespaces]]
name = "Acme.Orders"

[[namespaces.types]]
name = "Order"
base = "Common.Entity"
doc = "An order."
attributes = ["DataContract"]

[[namespaces.types.properties]]
name = "Customer"
type = "string"
doc = "Who ordered."
attributes = [{ name = "DataMember", args = { IsRequired = true } }]

[[namespaces.types.properties]]
name = "Lines"
type = "List<Line>"

[[namespaces.types.properties]]
name = "Totals"
type = "Dictionary<string, decimal?>"

[[namespaces.types.properties]]
name = "Shipping"
type = "(int, string)"

[[namespaces.types.properties]]
name = "Internal"
type = "int"
private = true

[[namespaces.types.fields]]
name = "Tag"
type = "string"

[[namespaces.types]]
name = "Line"

[[namespaces.types.properties]]
name = "Sku"
type = "string"

[[namespaces.types]]
name = "Status"
kind = "enum"
members = [
  { name = "Open" },
  { name = "Held" },
  { name = "Closed", value = 5, doc = "Closed for good." },
  { name = "Archived" },
]

[[namespaces]]
name = "Acme.Common"

[[namespaces.types]]
name = "Entity"

[[namespaces.types.properties]]
name = "Id"
type = "Guid"

[[namespaces.types]]
name = "Page"
generic_params = ["T"]

[[namespaces.types.properties]]
name = "Items"
type = "T[]"

[[namespaces.types]]
name = "Point"
kind = "struct"

[[namespaces.types.fields]]
name = "X"
type = "int"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func propertyType(t *testing.T, typ *hosttype.Type, name string) *hosttype.Type {
	t.Helper()
	for _, p := range typ.Properties {
		if p.Name == name {
			return p.Type
		}
	}
	t.Fatalf("property %s not found on %s", name, typ)
	return nil
}

func checkOrders(t *testing.T, res *Result) {
	u := res.Universe
	declared := u.Declared()
	require.Len(t, declared, 6)
	assert.Equal(t, []string{"Acme.Common", "Acme.Orders"}, u.Namespaces())

	order, ok := u.Lookup("Acme.Orders.Order", 0)
	require.True(t, ok)
	assert.Equal(t, hosttype.KindClass, order.Kind)
	assert.Equal(t, "Acme.Common.Entity", order.Base.FullName(), "relative base resolves through parent namespaces")
	assert.True(t, hosttype.HasAttribute(order.Attributes, "DataContract"))

	customer := order.Properties[0]
	dm, ok := hosttype.FindAttribute(customer.Attributes, "DataMember")
	require.True(t, ok)
	v, _ := dm.Arg("IsRequired")
	assert.Equal(t, "true", v)

	assert.Equal(t, "System.String", propertyType(t, order, "Customer").FullName())
	assert.Equal(t, "System.Collections.Generic.List`1[Acme.Orders.Line]", propertyType(t, order, "Lines").FullName())
	assert.Equal(t,
		"System.Collections.Generic.Dictionary`2[System.String,System.Nullable`1[System.Decimal]]",
		propertyType(t, order, "Totals").FullName())
	assert.Equal(t, "System.ValueTuple`2[System.Int32,System.String]", propertyType(t, order, "Shipping").FullName())
	assert.Len(t, order.PublicInstanceProperties(), 4, "private members are kept but not public")
	require.Len(t, order.Fields, 1)
	assert.Equal(t, hosttype.MemberField, order.Fields[0].Kind)

	status, ok := u.Lookup("Acme.Orders.Status", 0)
	require.True(t, ok)
	assert.Equal(t, []hosttype.EnumMember{
		{Name: "Open", Value: 0},
		{Name: "Held", Value: 1},
		{Name: "Closed", Value: 5},
		{Name: "Archived", Value: 6},
	}, status.EnumMembers)

	page, ok := u.Lookup("Acme.Common.Page", 1)
	require.True(t, ok)
	items := propertyType(t, page, "Items")
	assert.Equal(t, hosttype.KindArray, items.Kind)
	assert.Equal(t, hosttype.KindGenericParam, items.Elem.Kind)

	point, ok := u.Lookup("Acme.Common.Point", 0)
	require.True(t, ok)
	assert.Equal(t, hosttype.KindValue, point.Kind)
	assert.Nil(t, point.Base)

	entity, _ := u.Lookup("Acme.Common.Entity", 0)
	assert.Equal(t, hosttype.ObjectName, entity.Base.FullName(), "classes default to System.Object")

	d, ok := res.Docs.Lookup(doccomment.TypeKey("Acme.Orders.Order"))
	require.True(t, ok)
	assert.Equal(t, []string{"An order."}, d.Summary)
	_, ok = res.Docs.Lookup(doccomment.PropertyKey("Acme.Orders.Order", "Customer"))
	assert.True(t, ok)
	_, ok = res.Docs.Lookup(doccomment.FieldKey("Acme.Orders.Status", "Closed"))
	assert.True(t, ok)
}

func TestLoadFiles_YAML(t *testing.T) {
	res, err := LoadFiles(writeFile(t, "orders.yaml", ordersYAML))
	require.NoError(t, err)
	checkOrders(t, res)
}

func TestLoadFiles_TOML(t *testing.T) {
	res, err := LoadFiles(writeFile(t, "orders.toml", ordersTOML))
	require.NoError(t, err)
	checkOrders(t, res)
}

func TestLoadFiles_AcrossFiles(t *testing.T) {
	common := writeFile(t, "common.yml", `
namespaces:
  - name: Acme.Common
    types:
      - name: Address
        properties:
          - {name: City, type: string}
`)
	orders := writeFile(t, "orders.yml", `
namespaces:
  - name: Acme.Orders
    types:
      - name: Order
        properties:
          - {name: ShipTo, type: Acme.Common.Address}
`)
	res, err := LoadFiles(orders, common)
	require.NoError(t, err)
	order, ok := res.Universe.Lookup("Acme.Orders.Order", 0)
	require.True(t, ok)
	assert.Equal(t, "Acme.Common.Address", order.Properties[0].Type.FullName())
}

func TestLoadFiles_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		check   func(error) bool
		message string
	}{
		{"unknown type", "a.yaml", `
namespaces:
  - name: Acme
    types:
      - name: A
        properties:
          - {name: B, type: Missing}
`, errors.IsNotFoundError, "type Acme.A: property B: unknown type Missing"},
		{"bad kind", "a.yaml", `
namespaces:
  - name: Acme
    types:
      - {name: A, kind: delegate}
`, errors.IsInvalidInputError, `unknown kind "delegate"`},
		{"duplicate", "a.yaml", `
namespaces:
  - name: Acme
    types:
      - {name: A}
      - {name: A}
`, errors.IsInvalidInputError, "declared twice"},
		{"bad expression", "a.yaml", `
namespaces:
  - name: Acme
    types:
      - name: A
        properties:
          - {name: B, type: "List<int"}
`, errors.IsInvalidInputError, "type expression"},
		{"long tuple", "a.yaml", `
namespaces:
  - name: Acme
    types:
      - name: A
        properties:
          - {name: B, type: "(int, int, int, int, int, int, int, int)"}
`, errors.IsInvalidInputError, "more than 7 components"},
		{"unknown yaml field", "a.yaml", `
namespaces:
  - name: Acme
    typez: []
`, func(err error) bool { return err != nil }, "failed to decode YAML manifest"},
		{"unknown extension", "a.json", `{}`, errors.IsInvalidInputError, "unknown manifest format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFiles(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error kind: %v", err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadFiles_Missing(t *testing.T) {
	_, err := LoadFiles(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))

	_, err = LoadFiles()
	assert.True(t, errors.IsInvalidInputError(err))
}
