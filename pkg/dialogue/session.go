package dialogue

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/autoflow/autoflow/pkg/domain"
)

// Step is the position of a session in the diagnostic conversation.
type Step string

const (
	StepInitial   Step = "initial"
	StepGetError  Step = "get_error"
	StepGetModule Step = "get_module"
	StepGetInput  Step = "get_input"
	StepAnalyze   Step = "analyze"
)

// Session is the accumulated state of one diagnostic conversation.
type Session struct {
	Platform      domain.Platform `json:"platform,omitempty"`
	ErrorMessage  string          `json:"error_message,omitempty"`
	FailingModule string          `json:"failing_module,omitempty"`
	InputData     string          `json:"input_data,omitempty"`
	BlueprintJSON json.RawMessage `json:"blueprint_json,omitempty"`
	Step          Step            `json:"step"`
}

// Store keeps per-session conversation state. Entries expire after the
// configured TTL so abandoned conversations do not accumulate.
type Store interface {
	Get(ctx context.Context, id string) (Session, bool, error)
	Put(ctx context.Context, id string, session Session) error
	Delete(ctx context.Context, id string) error
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// MemoryStore is the in-process Store with TTL eviction.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	stop    chan struct{}
	once    sync.Once
}

// NewMemoryStore creates a store whose entries expire after ttl. A background
// janitor sweeps expired entries until Stop is called.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		stop:    make(chan struct{}),
	}

	go s.janitor()

	return s
}

func (s *MemoryStore) janitor() {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(time.Now())
		case <-s.stop:
			return
		}
	}
}

func (s *MemoryStore) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}

// Stop terminates the janitor goroutine.
func (s *MemoryStore) Stop() {
	s.once.Do(func() { close(s.stop) })
}

func (s *MemoryStore) Get(_ context.Context, id string) (Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.entries, id)
		return Session{}, false, nil
	}
	return entry.session, true, nil
}

func (s *MemoryStore) Put(_ context.Context, id string, session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[id] = memoryEntry{
		session:   session,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	return nil
}
