package session

import (
	"errors"
	"log"
	"sync"
	"time"
)

// SlotKeyPrefix namespaces credential slots inside a shared storage
const SlotKeyPrefix = "authToken:"

// Storage is the key/value backend behind every Slot.
// Any fiber.Storage implementation satisfies it.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
	Delete(key string) error
}

// StorageSlot is a Slot kept under one key of a Storage
type StorageSlot struct {
	storage Storage
	key     string
	ttl     time.Duration
}

// NewStorageSlot returns the slot for browser session sid
func NewStorageSlot(storage Storage, sid string, ttl time.Duration) *StorageSlot {
	return &StorageSlot{storage: storage, key: SlotKeyPrefix + sid, ttl: ttl}
}

func (s *StorageSlot) Load() (string, error) {
	b, err := s.storage.Get(s.key)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *StorageSlot) Save(credential string) error {
	if credential == "" {
		return errors.New("refusing to store an empty credential")
	}
	return s.storage.Set(s.key, []byte(credential), s.ttl)
}

func (s *StorageSlot) Clear() error {
	return s.storage.Delete(s.key)
}

// Manager is the registry of live sessions keyed by browser session id
type Manager struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	storage   Storage
	ttl       time.Duration
	listeners []func(sid, credential string)
}

// NewManager creates a registry whose slots live in storage and expire after ttl (0 = never)
func NewManager(storage Storage, ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		storage:  storage,
		ttl:      ttl,
	}
}

// Acquire returns the live session for sid, creating one with an empty holder on a miss
func (m *Manager) Acquire(sid string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[sid]; ok {
		s.Touch()
		return s
	}
	s := New(sid, NewStorageSlot(m.storage, sid, m.ttl))
	for _, fn := range m.listeners {
		s.OnCredential(func(c string) { fn(sid, c) })
	}
	m.sessions[sid] = s
	return s
}

// OnCredential registers fn on every session acquired afterwards.
// fn sees an empty credential on logout.
func (m *Manager) OnCredential(fn func(sid, credential string)) {
	m.mu.Lock()
	m.listeners = append(m.listeners, fn)
	m.mu.Unlock()
}

// Sweep evicts sessions idle for longer than idle. Their slots survive,
// so the next request for the same sid re-primes from storage.
func (m *Manager) Sweep(idle time.Duration) int {
	cutoff := time.Now().Add(-idle)

	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for sid, s := range m.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(m.sessions, sid)
			evicted++
		}
	}
	if evicted > 0 {
		log.Printf("🧹 evicted %d idle sessions", evicted)
	}
	return evicted
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
