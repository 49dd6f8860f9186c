package hosttype

import "sort"

// PendingSet is the immutable batch of host types selected for mirroring in
// one run. Build it once with NewPendingSet and pass it explicitly; there is
// no way to add to it afterwards.
type PendingSet struct {
	byName     map[string]*Type
	namespaces map[string]bool
}

// NewPendingSet snapshots types. Duplicates (by FullName) collapse.
func NewPendingSet(types []*Type) *PendingSet {
	ps := &PendingSet{
		byName:     make(map[string]*Type, len(types)),
		namespaces: make(map[string]bool),
	}
	for _, t := range types {
		if t == nil {
			continue
		}
		ps.byName[t.FullName()] = t
		ps.namespaces[t.Namespace] = true
	}
	return ps
}

// Contains reports whether t is selected for mirroring.
func (ps *PendingSet) Contains(t *Type) bool {
	if ps == nil || t == nil {
		return false
	}
	_, ok := ps.byName[t.FullName()]
	return ok
}

// HasNamespace reports whether any pending type is declared in ns.
func (ps *PendingSet) HasNamespace(ns string) bool {
	return ps != nil && ps.namespaces[ns]
}

// Len returns the number of distinct pending types.
func (ps *PendingSet) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.byName)
}

// Types returns the pending types sorted by FullName.
func (ps *PendingSet) Types() []*Type {
	if ps == nil {
		return nil
	}
	names := make([]string, 0, len(ps.byName))
	for n := range ps.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]*Type, len(names))
	for i, n := range names {
		out[i] = ps.byName[n]
	}
	return out
}
