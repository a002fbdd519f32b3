package cmd

import (
	"errors"
	"sort"

	"github.com/fzft/go-genset/set"
)

var (
	ErrUnknownSet = errors.New("cmd: no such set")
	ErrSetExists  = errors.New("cmd: set already exists")
)

// shellSet is the mutable surface the shell drives. Both set variants
// satisfy it; variant-specific operations (Pop, order-sensitive Equal,
// enumerate) are reached through a type assertion at the command site.
type shellSet interface {
	set.Set[string]
	Insert(key string)
	TestAndInsert(key string) bool
	Remove(key string)
	TestAndRemove(key string) bool
	InsertAll(other set.Set[string])
	RemoveAll(other set.Set[string])
	Lookup(key string) (string, error)
	Clear()
	Reset()
	IsSubsetOf(other set.Set[string]) bool
	IsProperSubsetOf(other set.Set[string]) bool
	Disjoint(other set.Set[string]) bool
	Union(other set.Set[string]) *set.HashSet[string]
	Intersect(other set.Set[string]) *set.HashSet[string]
	Difference(other set.Set[string]) *set.HashSet[string]
	SymmetricDifference(other set.Set[string]) *set.HashSet[string]
}

var (
	_ shellSet = (*set.HashSet[string])(nil)
	_ shellSet = (*set.OrderedSet[string])(nil)
)

type storeEntry struct {
	s       shellSet
	ordered bool
}

// Store is the shell's registry of named sets.
type Store struct {
	entries map[string]storeEntry
}

func NewStore() *Store {
	return &Store{entries: make(map[string]storeEntry)}
}

// Create registers a fresh set under name.
func (st *Store) Create(name string, ordered bool) error {
	var s shellSet
	if ordered {
		s = set.NewOrdered[string]()
	} else {
		s = set.New[string]()
	}
	return st.Put(name, s, ordered)
}

// Put registers an existing set under name.
func (st *Store) Put(name string, s shellSet, ordered bool) error {
	if _, ok := st.entries[name]; ok {
		return ErrSetExists
	}
	st.entries[name] = storeEntry{s: s, ordered: ordered}
	return nil
}

// Drop removes the set registered under name.
func (st *Store) Drop(name string) error {
	if _, ok := st.entries[name]; !ok {
		return ErrUnknownSet
	}
	delete(st.entries, name)
	return nil
}

// Get returns the set registered under name and whether it is ordered.
func (st *Store) Get(name string) (shellSet, bool, error) {
	e, ok := st.entries[name]
	if !ok {
		return nil, false, ErrUnknownSet
	}
	return e.s, e.ordered, nil
}

// Names returns the registered names, sorted.
func (st *Store) Names() []string {
	names := make([]string, 0, len(st.entries))
	for name := range st.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
