package suggest

import "testing"

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	r.Add("fields", "vector", "id", "name", "column", "table")

	// Known names short-circuit, no suggestion needed.
	res := r.Lookup("fields", "vector")
	if !res.Known || res.Found {
		t.Errorf("Lookup(known name) = %+v, want Known", res)
	}

	// Typos get the closest candidate.
	res = r.Lookup("fields", "vacter")
	if res.Known || !res.Found || res.Match.Word != "vector" {
		t.Errorf("Lookup(typo) = %+v, want match on vector", res)
	}

	// Far-off input yields nothing.
	res = r.Lookup("fields", "hello")
	if res.Known || res.Found {
		t.Errorf("Lookup(unrelated) = %+v, want empty result", res)
	}

	// Unknown set behaves like an empty one.
	res = r.Lookup("nosuchset", "vacter")
	if res.Known || res.Found {
		t.Errorf("Lookup(unknown set) = %+v, want empty result", res)
	}

	// Empty input never suggests.
	res = r.Lookup("fields", "")
	if res.Known || res.Found {
		t.Errorf("Lookup(empty input) = %+v, want empty result", res)
	}
}

func TestRegistryAdd(t *testing.T) {
	r := NewRegistry()

	if added := r.Add("cmds", "status", "commit", "status", ""); added != 2 {
		t.Errorf("Add with duplicate and empty = %d, want 2", added)
	}
	if n := r.Len("cmds"); n != 2 {
		t.Errorf("Len = %d, want 2", n)
	}
	if !r.Contains("cmds", "commit") || r.Contains("cmds", "push") {
		t.Error("Contains gave wrong membership")
	}

	// Insertion order survives duplicate drops; tie-breaks depend on it.
	got := r.Candidates("cmds")
	want := []string{"status", "commit"}
	if len(got) != len(want) {
		t.Fatalf("Candidates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Candidates = %v, want %v", got, want)
		}
	}

	if r.Candidates("nosuchset") != nil {
		t.Error("Candidates for unknown set should be nil")
	}
	if r.Len("nosuchset") != 0 {
		t.Error("Len for unknown set should be 0")
	}
}

func TestRegistryStats(t *testing.T) {
	r := NewRegistry()
	r.Add("a", "one", "two")
	r.Add("b", "three")

	stats := r.Stats()
	if stats["sets"] != 2 || stats["totalNames"] != 3 {
		t.Errorf("Stats = %v, want 2 sets / 3 names", stats)
	}
	if len(r.Sets()) != 2 {
		t.Errorf("Sets = %v, want two entries", r.Sets())
	}
}
