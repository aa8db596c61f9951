package app

import (
	"math/rand"
	"sync"

	"flipseven/internal/domain"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// roomHandle pairs a room with its serialization lock and its own rng. Every
// trigger for the room, including deferred continuations, runs to completion
// under mu; the room is in effect a single-writer actor. pending counts
// scheduled continuations that have not fired yet: while it is nonzero a
// trigger chain is mid-flight and new acting triggers are rejected.
type roomHandle struct {
	mu      sync.Mutex
	room    *domain.Room
	rng     *rand.Rand
	pending int
}

// Registry is the only structure shared across rooms: the code -> room map
// plus a participant -> room index used for disconnect routing. Creation and
// removal are atomic with respect to concurrent create/join/leave triggers.
type Registry struct {
	mu      sync.RWMutex
	rng     *rand.Rand
	rooms   map[string]*roomHandle
	members map[string]string
}

// NewRegistry builds an empty registry seeded from rng.
func NewRegistry(rng *rand.Rand) *Registry {
	return &Registry{
		rng:     rng,
		rooms:   make(map[string]*roomHandle),
		members: make(map[string]string),
	}
}

// create inserts a new room for the given host under a fresh unique code.
func (g *Registry) create(host *domain.Participant) *roomHandle {
	g.mu.Lock()
	defer g.mu.Unlock()

	code := g.newCode()
	for g.rooms[code] != nil {
		code = g.newCode()
	}
	h := &roomHandle{
		room: domain.NewRoom(code, host),
		rng:  rand.New(rand.NewSource(g.rng.Int63())),
	}
	g.rooms[code] = h
	g.members[host.ID] = code
	return h
}

// lookup returns the handle for a code, or nil.
func (g *Registry) lookup(code string) *roomHandle {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.rooms[code]
}

// roomOf resolves the room code a participant belongs to.
func (g *Registry) roomOf(participantID string) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	code, ok := g.members[participantID]
	return code, ok
}

// bind records a participant's room membership.
func (g *Registry) bind(participantID, code string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.members[participantID] = code
}

// unbind drops a participant's membership record.
func (g *Registry) unbind(participantID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.members, participantID)
}

// remove deletes a room and all of its membership records. Deferred
// callbacks re-resolve the handle through lookup, so removal is the
// existence check that abandons them.
func (g *Registry) remove(code string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	h := g.rooms[code]
	if h == nil {
		return
	}
	for _, p := range h.room.Participants {
		delete(g.members, p.ID)
	}
	delete(g.rooms, code)
}

// Count reports the number of live rooms.
func (g *Registry) Count() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.rooms)
}

func (g *Registry) newCode() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = codeAlphabet[g.rng.Intn(len(codeAlphabet))]
	}
	return string(b)
}
