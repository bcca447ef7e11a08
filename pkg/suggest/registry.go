package suggest

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Registry holds named candidate sets for long-running use, one set
// per namespace of known identifiers (a schema's field names, a
// command table, etc).
//
// Each set keeps its names both in insertion order, which the
// selector's tie-break depends on, and in a patricia trie for cheap
// exact-membership checks: an input that is already a known name has
// no typo to correct, so Lookup can skip the distance scan entirely.
type Registry struct {
	sets map[string]*candidateSet
	mu   sync.RWMutex
}

type candidateSet struct {
	names []string
	trie  *patricia.Trie
}

// LookupResult reports the outcome of a registry lookup.
type LookupResult struct {
	// Known is true when the input is already a member of the set;
	// Match is empty in that case.
	Known bool
	Match Match
	Found bool
}

// NewRegistry creates an empty candidate set registry.
func NewRegistry() *Registry {
	return &Registry{
		sets: make(map[string]*candidateSet),
	}
}

// Add appends names to the given set, creating it if needed.
// Duplicates within a set are dropped, keeping the first occurrence
// so that list-order tie-breaks stay stable. Returns the number of
// names actually added.
func (r *Registry) Add(set string, names ...string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cs, ok := r.sets[set]
	if !ok {
		cs = &candidateSet{trie: patricia.NewTrie()}
		r.sets[set] = cs
		log.Debugf("Created candidate set %q", set)
	}

	added := 0
	for _, name := range names {
		if name == "" {
			continue
		}
		if cs.trie.Get(patricia.Prefix(name)) != nil {
			continue
		}
		cs.trie.Insert(patricia.Prefix(name), len(cs.names))
		cs.names = append(cs.names, name)
		added++
	}
	return added
}

// Lookup checks input against the named set. If the input is an
// exact member, the result is Known and no scan runs. Otherwise the
// set is scanned in insertion order for the closest candidate under
// the threshold. An unknown set behaves like an empty one.
func (r *Registry) Lookup(set, input string) LookupResult {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cs, ok := r.sets[set]
	if !ok {
		log.Debugf("Lookup against unknown set %q", set)
		return LookupResult{}
	}

	if input != "" && cs.trie.Get(patricia.Prefix(input)) != nil {
		return LookupResult{Known: true}
	}

	match, found := BestMatch(input, cs.names)
	return LookupResult{Match: match, Found: found}
}

// Contains reports whether name is an exact member of the set.
func (r *Registry) Contains(set, name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cs, ok := r.sets[set]
	if !ok || name == "" {
		return false
	}
	return cs.trie.Get(patricia.Prefix(name)) != nil
}

// Candidates returns the names of a set in insertion order. The
// returned slice is a copy and safe to hold across later Adds.
func (r *Registry) Candidates(set string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cs, ok := r.sets[set]
	if !ok {
		return nil
	}
	out := make([]string, len(cs.names))
	copy(out, cs.names)
	return out
}

// Sets returns the names of all registered sets.
func (r *Registry) Sets() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.sets))
	for name := range r.sets {
		out = append(out, name)
	}
	return out
}

// Len returns the number of names in a set, 0 for unknown sets.
func (r *Registry) Len(set string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cs, ok := r.sets[set]
	if !ok {
		return 0
	}
	return len(cs.names)
}

// Stats returns counters about the registry, keyed for the server's
// get_info action.
func (r *Registry) Stats() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, cs := range r.sets {
		total += len(cs.names)
	}
	return map[string]int{
		"sets":       len(r.sets),
		"totalNames": total,
	}
}
