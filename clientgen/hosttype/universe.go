package hosttype

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/developerxd/webapiclientgen/errors"
)

// Universe is the registry a loader fills: every named host type, looked up
// by DefinitionName, plus memoized generic instantiations and arrays so that
// structurally equal constructions share one *Type.
type Universe struct {
	mu        sync.Mutex
	named     map[string]*Type
	aliases   map[string]string
	construct map[string]*Type
	order     []*Type
	loading   bool // true while the platform catalog registers
}

// NewUniverse returns a universe pre-populated with the platform catalog.
func NewUniverse() *Universe {
	u := &Universe{
		named:     make(map[string]*Type),
		aliases:   make(map[string]string),
		construct: make(map[string]*Type),
	}
	u.loading = true
	registerBuiltins(u)
	u.loading = false
	return u
}

// Add registers a named type. Adding the same DefinitionName twice fails.
func (u *Universe) Add(t *Type) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	key := t.DefinitionName()
	if _, exists := u.named[key]; exists {
		return errors.NewInvalidInputError("host type %s declared twice", key)
	}
	u.named[key] = t
	if !u.loading {
		u.order = append(u.order, t)
	}
	return nil
}

// Alias makes alias resolve to the type registered as target.
func (u *Universe) Alias(alias, target string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.aliases[alias] = target
}

// Lookup finds a named type by DefinitionName or alias. A bare "Name`N"
// arity marker may be omitted when arity is given.
func (u *Universe) Lookup(name string, arity int) (*Type, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if target, ok := u.aliases[name]; ok {
		name = target
	}
	if arity > 0 && !strings.Contains(name, "`") {
		if t, ok := u.named[name+"`"+strconv.Itoa(arity)]; ok {
			return t, true
		}
		if target, ok := u.aliases[name+"`"+strconv.Itoa(arity)]; ok {
			name = target
		}
	}
	t, ok := u.named[name]
	return t, ok
}

// MustLookup is Lookup for catalog names that are known to exist.
func (u *Universe) MustLookup(name string) *Type {
	t, ok := u.Lookup(name, 0)
	if !ok {
		panic("hosttype: unknown catalog type " + name)
	}
	return t
}

// Declared returns the types added after the platform catalog, in the order
// they were added.
func (u *Universe) Declared() []*Type {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]*Type, len(u.order))
	copy(out, u.order)
	return out
}

// Namespaces returns the distinct namespaces of declared types, sorted.
func (u *Universe) Namespaces() []string {
	seen := make(map[string]bool)
	for _, t := range u.Declared() {
		seen[t.Namespace] = true
	}
	out := make([]string, 0, len(seen))
	for ns := range seen {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}

// Instantiate returns the instantiation def<args...>, creating it once.
func (u *Universe) Instantiate(def *Type, args ...*Type) (*Type, error) {
	if len(def.GenericParams) != len(args) {
		return nil, errors.NewInvalidInputError("%s takes %d type arguments, got %d",
			def.DefinitionName(), len(def.GenericParams), len(args))
	}
	t := &Type{
		Namespace:   def.Namespace,
		Name:        def.Name,
		Kind:        KindGeneric,
		GenericDef:  def,
		GenericArgs: args,
		Public:      def.Public,
	}
	return u.intern(t), nil
}

// ArrayOf returns the array type elem[rank], creating it once.
func (u *Universe) ArrayOf(elem *Type, rank int) *Type {
	if rank < 1 {
		rank = 1
	}
	t := &Type{
		Namespace: elem.Namespace,
		Name:      elem.Name + "[" + strings.Repeat(",", rank-1) + "]",
		Kind:      KindArray,
		Elem:      elem,
		Rank:      rank,
		Public:    true,
	}
	return u.intern(t)
}

// Param returns a generic parameter placeholder named name.
func (u *Universe) Param(name string) *Type {
	return u.intern(&Type{Name: name, Kind: KindGenericParam, Public: true})
}

func (u *Universe) intern(t *Type) *Type {
	key := t.Kind.String() + ":" + t.FullName()
	u.mu.Lock()
	defer u.mu.Unlock()
	if existing, ok := u.construct[key]; ok {
		return existing
	}
	u.construct[key] = t
	return t
}
