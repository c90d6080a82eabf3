package state

import (
	"errors"
	"fmt"
	"maps"
	"sync"

	"github.com/signadot/uniutil/debug"
	"github.com/signadot/uniutil/ir"
	"github.com/signadot/uniutil/merge"
)

// SetMutation is the one mutation through which Accessor writes.
const SetMutation = "$state"

var ErrUnknownMutation = errors.New("unknown mutation")

type Payload struct {
	Property string
	Value    *ir.Node
}

// Store is a centralized state store.  All writes go through named
// mutations.
type Store interface {
	State(key string) (*ir.Node, bool)
	Commit(mutation string, payload Payload) error
}

// Accessor gives property style access to a Store.
type Accessor interface {
	Get(key string) *ir.Node
	Set(key string, v *ir.Node) error
}

// Bridge returns an Accessor which reads through s.State and writes
// through s.Commit(SetMutation, ...).
func Bridge(s Store) Accessor {
	return &bridge{store: s}
}

type bridge struct {
	store Store
}

func (b *bridge) Get(key string) *ir.Node {
	v, _ := b.store.State(key)
	return v
}

func (b *bridge) Set(key string, v *ir.Node) error {
	return b.store.Commit(SetMutation, Payload{Property: key, Value: v})
}

// Update deep merges patch into the value at key and writes the result
// back.  Neither the stored value nor patch is modified.
func Update(a Accessor, key string, patch *ir.Node) error {
	return a.Set(key, merge.Merge(a.Get(key), patch))
}

// Mutation changes state in place according to p.
type Mutation func(state map[string]*ir.Node, p Payload) error

// Mutations returns the mutations a Store needs to back a Bridge.
func Mutations() map[string]Mutation {
	return map[string]Mutation{SetMutation: setState}
}

func setState(state map[string]*ir.Node, p Payload) error {
	if p.Property != "" {
		state[p.Property] = p.Value
	}
	return nil
}

// MemStore is an in-memory Store.  Values are cloned on the way in and on
// the way out, so callers never share containers with the store.
type MemStore struct {
	mu        sync.RWMutex
	state     map[string]*ir.Node
	mutations map[string]Mutation
}

// NewMemStore creates a store holding the entries of initial, which may be
// nil.  muts are added to Mutations().
func NewMemStore(initial *ir.Node, muts map[string]Mutation) *MemStore {
	s := &MemStore{
		state:     map[string]*ir.Node{},
		mutations: Mutations(),
	}
	maps.Copy(s.mutations, muts)
	if initial != nil && initial.Type == ir.ObjectType {
		for k, v := range ir.ToMap(initial) {
			s.state[k] = ir.Clone(v)
		}
	}
	return s
}

func (s *MemStore) State(key string) (*ir.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.state[key]
	return ir.Clone(v), ok
}

func (s *MemStore) Commit(mutation string, p Payload) error {
	f := s.mutations[mutation]
	if f == nil {
		return fmt.Errorf("%w: %q", ErrUnknownMutation, mutation)
	}
	if debug.State() {
		debug.Logf("commit %s %s: %v", mutation, p.Property, p.Value)
	}
	p.Value = ir.Clone(p.Value)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := f(s.state, p); err != nil {
		return fmt.Errorf("mutation %s: %w", mutation, err)
	}
	return nil
}

// Snapshot returns the whole state as an object with sorted keys.
func (s *MemStore) Snapshot() *ir.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make(map[string]*ir.Node, len(s.state))
	for k, v := range s.state {
		res[k] = ir.Clone(v)
	}
	return ir.FromMap(res)
}
