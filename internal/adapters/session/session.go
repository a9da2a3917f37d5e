// Package session keeps uploaded datasets in memory for the lifetime of an analysis.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/scout/internal/domain/dataset"
)

const defaultCapacity = 64

// ErrNotFound is returned for unknown or expired session ids.
var ErrNotFound = errors.New("session not found")

// Reason tells why a session left the store.
type Reason string

// Removal reasons.
const (
	ReasonEvicted Reason = "evicted"
	ReasonExpired Reason = "expired"
	ReasonDeleted Reason = "deleted"
)

// Session is one uploaded dataset.
type Session struct {
	ID         string
	Dataset    *dataset.Dataset
	CreatedAt  time.Time
	LastAccess time.Time
}

// Store holds sessions keyed by id.
type Store interface {
	// Create stores ds under a fresh id.
	Create(ctx context.Context, ds *dataset.Dataset) (Session, error)
	// Get returns a live session and refreshes its idle timer.
	Get(ctx context.Context, id string) (Session, error)
	// Delete removes a session. Deleting an unknown id returns ErrNotFound.
	Delete(ctx context.Context, id string) error
	// Sweep drops every expired session and returns how many were removed.
	Sweep(ctx context.Context) int
	Len() int
}

// node is an entry of the creation-ordered list; head is the newest session.
type node struct {
	sess Session
	next *node
}

type inMemoryStore struct {
	mu       sync.Mutex
	byID     map[string]*node
	head     *node
	capacity int
	ttl      time.Duration
	now      func() time.Time
	onRemove func(Session, Reason)
}

// NewInMemoryStore creates a bounded in-memory session store.
func NewInMemoryStore(opts ...Option) Store {
	s := &inMemoryStore{
		capacity: defaultCapacity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.byID = make(map[string]*node)
	return s
}

func (s *inMemoryStore) Create(ctx context.Context, ds *dataset.Dataset) (Session, error) {
	if ds == nil {
		return Session{}, errors.New("nil dataset")
	}
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}

	now := s.now()
	sess := Session{ID: uuid.NewString(), Dataset: ds, CreatedAt: now, LastAccess: now}

	var evicted []Session
	s.mu.Lock()
	for s.capacity > 0 && len(s.byID) >= s.capacity {
		old, ok := s.removeOldest()
		if !ok {
			break
		}
		evicted = append(evicted, old)
	}
	n := &node{sess: sess, next: s.head}
	s.head = n
	s.byID[sess.ID] = n
	s.mu.Unlock()

	s.notify(evicted, ReasonEvicted)
	return sess, nil
}

func (s *inMemoryStore) Get(_ context.Context, id string) (Session, error) {
	now := s.now()

	s.mu.Lock()
	n, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return Session{}, ErrNotFound
	}
	if s.expired(n.sess, now) {
		s.unlink(n)
		sess := n.sess
		s.mu.Unlock()
		s.notify([]Session{sess}, ReasonExpired)
		return Session{}, ErrNotFound
	}
	n.sess.LastAccess = now
	sess := n.sess
	s.mu.Unlock()
	return sess, nil
}

func (s *inMemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	n, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.unlink(n)
	s.mu.Unlock()

	s.notify([]Session{n.sess}, ReasonDeleted)
	return nil
}

func (s *inMemoryStore) Sweep(_ context.Context) int {
	if s.ttl <= 0 {
		return 0
	}
	now := s.now()

	var expired []Session
	s.mu.Lock()
	for n := s.head; n != nil; {
		next := n.next
		if s.expired(n.sess, now) {
			s.unlink(n)
			expired = append(expired, n.sess)
		}
		n = next
	}
	s.mu.Unlock()

	s.notify(expired, ReasonExpired)
	return len(expired)
}

func (s *inMemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

func (s *inMemoryStore) expired(sess Session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.LastAccess) >= s.ttl
}

// removeOldest unlinks the tail of the list. Must be called with s.mu held.
func (s *inMemoryStore) removeOldest() (Session, bool) {
	if s.head == nil {
		return Session{}, false
	}
	tail := s.head
	for tail.next != nil {
		tail = tail.next
	}
	s.unlink(tail)
	return tail.sess, true
}

// unlink removes n from the list and the index. Must be called with s.mu held.
func (s *inMemoryStore) unlink(n *node) {
	delete(s.byID, n.sess.ID)
	if s.head == n {
		s.head = n.next
		return
	}
	for cur := s.head; cur != nil; cur = cur.next {
		if cur.next == n {
			cur.next = n.next
			return
		}
	}
}

func (s *inMemoryStore) notify(sessions []Session, reason Reason) {
	if s.onRemove == nil {
		return
	}
	for _, sess := range sessions {
		s.onRemove(sess, reason)
	}
}
