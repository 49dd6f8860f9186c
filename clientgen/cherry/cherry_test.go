package cherry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/developerxd/webapiclientgen/clientgen/hosttype"
	"github.com/developerxd/webapiclientgen/errors"
)

func attr(name string, args ...string) hosttype.Attribute {
	a := hosttype.Attribute{Name: name, Args: map[string]string{}}
	for i := 0; i+1 < len(args); i += 2 {
		a.Args[args[i]] = args[i+1]
	}
	return a
}

func member(attrs ...hosttype.Attribute) *hosttype.Member {
	return &hosttype.Member{Name: "M", Public: true, Attributes: attrs}
}

func TestParseMethods(t *testing.T) {
	tests := []struct {
		name  string
		in    []string
		want  Method
		isErr bool
	}{
		{"empty is all", nil, All, false},
		{"single", []string{"DataContract"}, DataContract, false},
		{"pipe list", []string{"datacontract|newtonsoftjson"}, DataContract | NewtonsoftJson, false},
		{"comma list and alias", []string{"JsonNet, aspnet"}, NewtonsoftJson | AspNet, false},
		{"all is neutral", []string{"all", "netcore"}, NetCore, false},
		{"unknown", []string{"protobuf"}, All, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMethods(tt.in)
			if tt.isErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidInputError(err))
				assert.Contains(t, errors.FlattenHints(err), "known methods")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "all", All.String())
	assert.Equal(t, "datacontract|serializable", (DataContract | Serializable).String())
	assert.False(t, All.Has(All))
}

func TestClassify(t *testing.T) {
	plain := &hosttype.Type{Namespace: "Acme", Name: "Plain"}
	contract := &hosttype.Type{Namespace: "Acme", Name: "Contract", Attributes: []hosttype.Attribute{attr("DataContract")}}
	optIn := &hosttype.Type{Namespace: "Acme", Name: "OptIn", Attributes: []hosttype.Attribute{
		attr("Newtonsoft.Json.JsonObjectAttribute", "MemberSerialization", "MemberSerialization.OptIn"),
	}}

	tests := []struct {
		name    string
		m       *hosttype.Member
		t       *hosttype.Type
		methods Method
		want    Category
	}{
		{"all exposes everything", member(), plain, All, Cherry},
		{"all honours Required", member(attr("System.ComponentModel.DataAnnotations.RequiredAttribute")), plain, All, BigCherry},

		{"data contract without DataMember hidden", member(), contract, DataContract, None},
		{"data contract member", member(attr("DataMember")), contract, DataContract, Cherry},
		{"data contract required", member(attr("DataMember", "IsRequired", "true")), contract, DataContract, BigCherry},
		{"plain type opt-out", member(attr("IgnoreDataMember")), plain, DataContract, None},
		{"plain type default", member(), plain, DataContract, Cherry},

		{"JsonIgnore", member(attr("JsonIgnore")), plain, NewtonsoftJson, None},
		{"JsonProperty Always", member(attr("JsonProperty", "Required", "Required.Always")), plain, NewtonsoftJson, BigCherry},
		{"JsonProperty AllowNull", member(attr("JsonProperty", "Required", "AllowNull")), plain, NewtonsoftJson, BigCherry},
		{"JsonProperty Default", member(attr("JsonProperty", "Required", "Default")), plain, NewtonsoftJson, Cherry},
		{"opt-in without JsonProperty", member(), optIn, NewtonsoftJson, None},
		{"opt-in with JsonProperty", member(attr("JsonProperty")), optIn, NewtonsoftJson, Cherry},

		{"NonSerialized", member(attr("NonSerialized")), plain, Serializable, None},
		{"aspnet Required", member(attr("Required")), plain, AspNet, BigCherry},
		{"netcore JsonRequired", member(attr("System.Text.Json.Serialization.JsonRequiredAttribute")), plain, NetCore, BigCherry},
		{"netcore JsonIgnore", member(attr("JsonIgnore")), plain, NetCore, None},

		{"any hide wins", member(attr("DataMember", "IsRequired", "true"), attr("JsonIgnore")), contract, DataContract | NewtonsoftJson, None},
		{"strongest tier wins", member(attr("DataMember"), attr("Required")), contract, DataContract | AspNet, BigCherry},
	}
	var p Picker
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Classify(tt.m, tt.t, tt.methods))
		})
	}
}

func TestSelectTypes(t *testing.T) {
	plain := &hosttype.Type{Name: "Plain", Kind: hosttype.KindClass, Public: true}
	contract := &hosttype.Type{Name: "Contract", Kind: hosttype.KindClass, Public: true,
		Attributes: []hosttype.Attribute{attr("DataContract")}}
	serial := &hosttype.Type{Name: "Serial", Kind: hosttype.KindValue, Public: true, Serializable: true}
	enum := &hosttype.Type{Name: "Color", Kind: hosttype.KindEnum, Public: true}
	hidden := &hosttype.Type{Name: "Hidden", Kind: hosttype.KindClass}
	iface := &hosttype.Type{Name: "IThing", Kind: hosttype.KindInterface, Public: true}
	all := []*hosttype.Type{plain, contract, serial, enum, hidden, iface}

	names := func(ts []*hosttype.Type) []string {
		var out []string
		for _, t := range ts {
			out = append(out, t.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Plain", "Contract", "Serial", "Color"}, names(SelectTypes(all, All)))
	assert.Equal(t, []string{"Contract", "Color"}, names(SelectTypes(all, DataContract)))
	assert.Equal(t, []string{"Serial", "Color"}, names(SelectTypes(all, Serializable)))
	assert.Equal(t, []string{"Plain", "Contract", "Serial", "Color"}, names(SelectTypes(all, AspNet)))
	assert.Empty(t, SelectTypes(nil, All))
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "cherry", Cherry.String())
	assert.Equal(t, "big-cherry", BigCherry.String())
}
