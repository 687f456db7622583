// Package catalog registers the validated method signatures of the image
// and session APIs so that tools can look them up by name.
package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/cartavis/carta-go/core/signature"
)

// Group is the object a method belongs to.
type Group string

const (
	GroupSession Group = "session"
	GroupImage   Group = "image"
)

// Entry is a registered method.
type Entry struct {
	Group     Group
	Signature *signature.Signature
}

// Name returns the qualified name, for example image.set_channel.
func (e Entry) Name() string {
	return string(e.Group) + "." + e.Signature.Name()
}

// Registry holds method signatures keyed by qualified name.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds a signature under group. Registering the same qualified
// name twice is an error.
func (r *Registry) Register(group Group, sig *signature.Signature) error {
	e := Entry{Group: group, Signature: sig}
	name := e.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("method %s already registered", name)
	}
	r.entries[name] = e
	return nil
}

// Lookup returns the entry for a qualified name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// IsRegistered reports whether name is registered.
func (r *Registry) IsRegistered(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns every qualified name in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns every entry of group, sorted by name.
func (r *Registry) Entries(group Group) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Entry
	for _, e := range r.entries {
		if e.Group == group {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Signature.Name() < out[j].Signature.Name() })
	return out
}

// Suggest returns the registered name closest to name, or "".
func (r *Registry) Suggest(name string) string {
	ranks := fuzzy.RankFindFold(name, r.Names())
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

// Standard returns a registry populated with the image and session
// methods. opts are applied to every signature.
func Standard(opts ...signature.Option) *Registry {
	r := NewRegistry()
	for _, sig := range imageMethods(opts) {
		mustRegister(r, GroupImage, sig)
	}
	for _, sig := range sessionMethods(opts) {
		mustRegister(r, GroupSession, sig)
	}
	return r
}

func mustRegister(r *Registry, group Group, sig *signature.Signature) {
	if err := r.Register(group, sig); err != nil {
		panic(err)
	}
}

var global = sync.OnceValue(func() *Registry { return Standard() })

// Global returns the shared standard registry.
func Global() *Registry {
	return global()
}
