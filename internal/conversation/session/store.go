package session

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"customer-support/internal/conversation"
)

// Defaults applied when Config leaves a field at zero.
const (
	DefaultMaxHistory  = 10
	DefaultMaxSessions = 10000
	DefaultTTL         = 30 * time.Minute
)

// Config controls history and session retention.
type Config struct {
	MaxHistory  int
	MaxSessions int
	TTL         time.Duration
}

// entry holds one session. mu is held for the whole duration of a turn.
// refs counts leases holding or waiting on mu and is guarded by Store.mu.
type entry struct {
	mu   sync.Mutex
	ctx  conversation.Context
	refs int
}

// Store is an in-memory ContextStore with per-session locking.
type Store struct {
	// mu only guards get-or-create of entries, never a whole turn.
	mu       sync.Mutex
	sessions *expirable.LRU[string, *entry]
	// leased keeps entries with outstanding leases reachable after the LRU
	// drops them, so a session never has two entries at once.
	leased     map[string]*entry
	maxHistory int
	now        func() time.Time
}

var _ conversation.ContextStore = (*Store)(nil)

// New creates a Store. Sessions idle for longer than cfg.TTL are dropped,
// and the least recently created session is evicted past cfg.MaxSessions.
func New(cfg Config) *Store {
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = DefaultMaxHistory
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	return &Store{
		sessions:   expirable.NewLRU[string, *entry](cfg.MaxSessions, nil, cfg.TTL),
		leased:     make(map[string]*entry),
		maxHistory: cfg.MaxHistory,
		now:        time.Now,
	}
}

// Acquire locks the session, creating an empty context on first access.
func (s *Store) Acquire(sessionID string) conversation.Lease {
	s.mu.Lock()
	e, ok := s.leased[sessionID]
	if !ok {
		if e, ok = s.sessions.Get(sessionID); !ok {
			e = &entry{ctx: conversation.Context{SessionID: sessionID}}
			s.sessions.Add(sessionID, e)
		}
		s.leased[sessionID] = e
	}
	e.refs++
	s.mu.Unlock()

	e.mu.Lock()
	return &lease{store: s, id: sessionID, e: e}
}

// Snapshot returns a copy of the session context without creating it.
func (s *Store) Snapshot(sessionID string) (conversation.Context, bool) {
	s.mu.Lock()
	e, ok := s.leased[sessionID]
	if !ok {
		e, ok = s.sessions.Peek(sessionID)
	}
	s.mu.Unlock()
	if !ok {
		return conversation.Context{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ctx.Clone(), true
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.sessions.Len()
}

// touch re-adds e so its expiry slides forward. e is the only entry for
// sessionID while a lease is out, so it also restores an entry the LRU
// dropped mid-turn.
func (s *Store) touch(sessionID string, e *entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Add(sessionID, e)
}

func (s *Store) unref(sessionID string, e *entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.refs--
	if e.refs == 0 && s.leased[sessionID] == e {
		delete(s.leased, sessionID)
	}
}

type lease struct {
	store    *Store
	id       string
	e        *entry
	released bool
}

func (l *lease) Context() conversation.Context {
	return l.e.ctx.Clone()
}

func (l *lease) Update(msg conversation.Message, reply conversation.Reply) {
	now := l.store.now()
	c := &l.e.ctx

	c.TurnCount++
	c.History = append(c.History, conversation.Turn{Message: msg, Reply: reply, At: now})
	if over := len(c.History) - l.store.maxHistory; over > 0 {
		c.History = append([]conversation.Turn(nil), c.History[over:]...)
	}

	c.LastResponderID = reply.RespondingAgentID
	if d := reply.DeclaredPendingSlot; d != nil {
		c.PendingSlot = &conversation.PendingSlot{
			Owner:          d.Owner,
			Name:           d.Name,
			PromptedAtTurn: c.TurnCount,
		}
	} else {
		c.PendingSlot = nil
	}
	c.UpdatedAt = now

	l.store.touch(l.id, l.e)
}

func (l *lease) Reset() {
	l.e.ctx = conversation.Context{SessionID: l.id, UpdatedAt: l.store.now()}
	l.store.touch(l.id, l.e)
}

func (l *lease) Release() {
	if l.released {
		return
	}
	l.released = true
	l.e.mu.Unlock()
	l.store.unref(l.id, l.e)
}
