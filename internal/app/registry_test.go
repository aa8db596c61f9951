package app

import (
	"math/rand"
	"sync"
	"testing"

	"flipseven/internal/domain"
)

func TestRegistryCreateLookupRemove(t *testing.T) {
	g := NewRegistry(rand.New(rand.NewSource(42)))

	h := g.create(&domain.Participant{ID: "p1", Name: "Ann"})
	code := h.room.Code
	if len(code) != 6 {
		t.Fatalf("code %q, want 6 characters", code)
	}
	if g.lookup(code) != h {
		t.Fatalf("lookup did not return the created room")
	}
	if got, ok := g.roomOf("p1"); !ok || got != code {
		t.Fatalf("roomOf(p1) = %q, %v", got, ok)
	}
	if g.Count() != 1 {
		t.Fatalf("count = %d, want 1", g.Count())
	}

	g.remove(code)
	if g.lookup(code) != nil {
		t.Fatalf("room still resolvable after removal")
	}
	if _, ok := g.roomOf("p1"); ok {
		t.Fatalf("membership survived room removal")
	}
}

func TestRegistryUniqueCodes(t *testing.T) {
	g := NewRegistry(rand.New(rand.NewSource(1)))
	codes := make(map[string]bool)
	for i := 0; i < 200; i++ {
		h := g.create(&domain.Participant{ID: "p", Name: "p"})
		if codes[h.room.Code] {
			t.Fatalf("duplicate room code %s", h.room.Code)
		}
		codes[h.room.Code] = true
	}
}

func TestRegistryConcurrentCreate(t *testing.T) {
	g := NewRegistry(rand.New(rand.NewSource(2)))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.create(&domain.Participant{ID: "p", Name: "p"})
		}()
	}
	wg.Wait()

	if g.Count() != 50 {
		t.Fatalf("count = %d, want 50", g.Count())
	}
}
