package hosttype

import "strconv"

// Well-known platform type identities the translator keys its rules on.
const (
	ObjectName              = "System.Object"
	VoidName                = "System.Void"
	StringName              = "System.String"
	NullableDef             = "System.Nullable`1"
	TaskDef                 = "System.Threading.Tasks.Task`1"
	ValueTaskDef            = "System.Threading.Tasks.ValueTask`1"
	IDictionaryDef          = "System.Collections.Generic.IDictionary`2"
	DictionaryDef           = "System.Collections.Generic.Dictionary`2"
	KeyValuePairDef         = "System.Collections.Generic.KeyValuePair`2"
	HTTPResponseMessageName = "System.Net.Http.HttpResponseMessage"
	JObjectName             = "Newtonsoft.Json.Linq.JObject"
)

// keyword aliases accepted by loaders, e.g. "int" for System.Int32.
var keywordAliases = map[string]string{
	"bool":           "System.Boolean",
	"byte":           "System.Byte",
	"sbyte":          "System.SByte",
	"char":           "System.Char",
	"short":          "System.Int16",
	"ushort":         "System.UInt16",
	"int":            "System.Int32",
	"uint":           "System.UInt32",
	"long":           "System.Int64",
	"ulong":          "System.UInt64",
	"float":          "System.Single",
	"double":         "System.Double",
	"decimal":        "System.Decimal",
	"string":         StringName,
	"object":         ObjectName,
	"void":           VoidName,
	"DateTime":       "System.DateTime",
	"DateTimeOffset": "System.DateTimeOffset",
	"DateOnly":       "System.DateOnly",
	"TimeOnly":       "System.TimeOnly",
	"TimeSpan":       "System.TimeSpan",
	"Guid":           "System.Guid",
	"Uri":            "System.Uri",
}

type catalogEntry struct {
	ns, name string
	kind     Kind
	params   []string
}

var valuePrimitives = []string{
	"Boolean", "Byte", "SByte", "Char", "Int16", "UInt16", "Int32", "UInt32",
	"Int64", "UInt64", "Single", "Double", "Decimal", "DateTime",
	"DateTimeOffset", "DateOnly", "TimeOnly", "TimeSpan", "Guid",
}

var genericCatalog = []catalogEntry{
	{"System", "Nullable", KindValue, []string{"T"}},
	{"System.Threading.Tasks", "Task", KindClass, []string{"TResult"}},
	{"System.Threading.Tasks", "ValueTask", KindValue, []string{"TResult"}},
	{"System.Collections.Generic", "IEnumerable", KindInterface, []string{"T"}},
	{"System.Collections.Generic", "ICollection", KindInterface, []string{"T"}},
	{"System.Collections.Generic", "IList", KindInterface, []string{"T"}},
	{"System.Collections.Generic", "IReadOnlyCollection", KindInterface, []string{"T"}},
	{"System.Collections.Generic", "IReadOnlyList", KindInterface, []string{"T"}},
	{"System.Collections.Generic", "ISet", KindInterface, []string{"T"}},
	{"System.Collections.Generic", "List", KindClass, []string{"T"}},
	{"System.Collections.Generic", "HashSet", KindClass, []string{"T"}},
	{"System.Collections.Generic", "LinkedList", KindClass, []string{"T"}},
	{"System.Collections.Generic", "Queue", KindClass, []string{"T"}},
	{"System.Collections.Generic", "Stack", KindClass, []string{"T"}},
	{"System.Collections.ObjectModel", "Collection", KindClass, []string{"T"}},
	{"System.Collections.ObjectModel", "ObservableCollection", KindClass, []string{"T"}},
	{"System.Collections.ObjectModel", "ReadOnlyCollection", KindClass, []string{"T"}},
	{"System.Linq", "IQueryable", KindInterface, []string{"T"}},
	{"System.Collections.Generic", "IDictionary", KindInterface, []string{"TKey", "TValue"}},
	{"System.Collections.Generic", "IReadOnlyDictionary", KindInterface, []string{"TKey", "TValue"}},
	{"System.Collections.Generic", "KeyValuePair", KindValue, []string{"TKey", "TValue"}},
}

// dictionaries implementing IDictionary<TKey, TValue>
var dictionaryCatalog = []catalogEntry{
	{"System.Collections.Generic", "Dictionary", KindClass, []string{"TKey", "TValue"}},
	{"System.Collections.Generic", "SortedDictionary", KindClass, []string{"TKey", "TValue"}},
	{"System.Collections.Generic", "SortedList", KindClass, []string{"TKey", "TValue"}},
	{"System.Collections.Concurrent", "ConcurrentDictionary", KindClass, []string{"TKey", "TValue"}},
}

var platformCatalog = []catalogEntry{
	{"System.Web.Http", "IHttpActionResult", KindInterface, nil},
	{"Microsoft.AspNetCore.Mvc", "IActionResult", KindInterface, nil},
	{"Microsoft.AspNetCore.Mvc", "ActionResult", KindClass, nil},
	{"System.Net.Http", "HttpResponseMessage", KindClass, nil},
	{"Newtonsoft.Json.Linq", "JObject", KindClass, nil},
}

func registerBuiltins(u *Universe) {
	object := &Type{Namespace: "System", Name: "Object", Kind: KindClass, Serializable: true, Public: true}
	mustAdd(u, object)
	mustAdd(u, &Type{Namespace: "System", Name: "Void", Kind: KindVoid, Public: true})
	mustAdd(u, &Type{Namespace: "System", Name: "String", Kind: KindClass, Base: object, Public: true})
	mustAdd(u, &Type{Namespace: "System", Name: "Uri", Kind: KindClass, Base: object, Public: true})
	for _, name := range valuePrimitives {
		mustAdd(u, &Type{Namespace: "System", Name: name, Kind: KindValue, Public: true})
	}
	for i := 1; i <= 8; i++ {
		params := make([]string, i)
		for j := range params {
			params[j] = "T" + string(rune('1'+j))
		}
		if i == 8 {
			params[7] = "TRest"
		}
		mustAdd(u, &Type{Namespace: "System", Name: "Tuple", Kind: KindClass, GenericParams: params, Base: object, Public: true})
		mustAdd(u, &Type{Namespace: "System", Name: "ValueTuple", Kind: KindValue, GenericParams: params, Public: true})
	}
	for _, e := range genericCatalog {
		mustAdd(u, catalogType(e, object))
	}
	idict := u.MustLookup(IDictionaryDef)
	for _, e := range dictionaryCatalog {
		d := catalogType(e, object)
		iface, err := u.Instantiate(idict, u.Param("TKey"), u.Param("TValue"))
		if err != nil {
			panic(err)
		}
		d.Interfaces = []*Type{iface}
		mustAdd(u, d)
	}
	for _, e := range platformCatalog {
		mustAdd(u, catalogType(e, object))
	}

	for kw, target := range keywordAliases {
		u.aliases[kw] = target
	}
	for _, e := range append(append([]catalogEntry{}, genericCatalog...), dictionaryCatalog...) {
		u.aliases[e.name+"`"+strconv.Itoa(len(e.params))] = e.ns + "." + e.name + "`" + strconv.Itoa(len(e.params))
	}
	for i := 1; i <= 8; i++ {
		u.aliases["Tuple`"+strconv.Itoa(i)] = "System.Tuple`" + strconv.Itoa(i)
		u.aliases["ValueTuple`"+strconv.Itoa(i)] = "System.ValueTuple`" + strconv.Itoa(i)
	}
	for _, e := range platformCatalog {
		u.aliases[e.name] = e.ns + "." + e.name
	}
}

func catalogType(e catalogEntry, object *Type) *Type {
	t := &Type{Namespace: e.ns, Name: e.name, Kind: e.kind, GenericParams: e.params, Public: true}
	if e.kind == KindClass {
		t.Base = object
	}
	return t
}

func mustAdd(u *Universe, t *Type) {
	if err := u.Add(t); err != nil {
		panic(err)
	}
}
