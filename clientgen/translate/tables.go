package translate

import "github.com/developerxd/webapiclientgen/clientgen/hosttype"

// sequenceDefs are single-argument generic wrappers that become arrays.
var sequenceDefs = setOf(
	"System.Collections.Generic.IEnumerable`1",
	"System.Collections.Generic.ICollection`1",
	"System.Collections.Generic.IList`1",
	"System.Collections.Generic.IReadOnlyCollection`1",
	"System.Collections.Generic.IReadOnlyList`1",
	"System.Collections.Generic.ISet`1",
	"System.Collections.Generic.List`1",
	"System.Collections.Generic.HashSet`1",
	"System.Collections.Generic.LinkedList`1",
	"System.Collections.Generic.Queue`1",
	"System.Collections.Generic.Stack`1",
	"System.Collections.ObjectModel.Collection`1",
	"System.Collections.ObjectModel.ObservableCollection`1",
	"System.Collections.ObjectModel.ReadOnlyCollection`1",
	"System.Linq.IQueryable`1",
)

// asyncDefs are erased: only the eventual value type survives.
var asyncDefs = setOf(hosttype.TaskDef, hosttype.ValueTaskDef)

// tupleArity maps each tuple wrapper identity to its arity.
var tupleArity = map[string]int{
	"System.Tuple`1": 1, "System.Tuple`2": 2, "System.Tuple`3": 3, "System.Tuple`4": 4,
	"System.Tuple`5": 5, "System.Tuple`6": 6, "System.Tuple`7": 7, "System.Tuple`8": 8,
	"System.ValueTuple`1": 1, "System.ValueTuple`2": 2, "System.ValueTuple`3": 3, "System.ValueTuple`4": 4,
	"System.ValueTuple`5": 5, "System.ValueTuple`6": 6, "System.ValueTuple`7": 7, "System.ValueTuple`8": 8,
}

// httpResultNames have no client mirror; the client has its own HTTP layer.
var httpResultNames = setOf(
	"System.Web.Http.IHttpActionResult",
	"Microsoft.AspNetCore.Mvc.IActionResult",
	"Microsoft.AspNetCore.Mvc.ActionResult",
	hosttype.HTTPResponseMessageName,
)

// primitiveNames are understood natively by the client platform.
var primitiveNames = setOf(
	"System.Boolean",
	"System.Byte",
	"System.SByte",
	"System.Char",
	"System.Int16",
	"System.UInt16",
	"System.Int32",
	"System.UInt32",
	"System.Int64",
	"System.UInt64",
	"System.Single",
	"System.Double",
	"System.Decimal",
	"System.String",
	"System.Object",
	"System.DateTime",
	"System.DateTimeOffset",
	"System.DateOnly",
	"System.TimeOnly",
	"System.TimeSpan",
	"System.Guid",
	"System.Uri",
)

// IsPrimitive reports whether fullName is a client-native primitive.
func IsPrimitive(fullName string) bool {
	return primitiveNames[fullName]
}

// TupleArity returns the arity of a tuple wrapper definition.
func TupleArity(defName string) (int, bool) {
	n, ok := tupleArity[defName]
	return n, ok
}

func setOf(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}
