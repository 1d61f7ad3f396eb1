package services

import (
	"sync"
	"time"

	"scholar-portal/pkg/models"

	"github.com/google/uuid"
)

type reviewView struct {
	owner    string
	state    *ReviewState
	lastSeen time.Time
}

// ViewStore keeps mounted review pages between requests. A view belongs to
// the coordinator it was mounted for and expires after ttl without use.
type ViewStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	views map[string]*reviewView
}

func NewViewStore(ttl time.Duration) *ViewStore {
	return &ViewStore{
		ttl:   ttl,
		now:   time.Now,
		views: make(map[string]*reviewView),
	}
}

// Create mounts a new view over pubs and returns its id.
func (s *ViewStore) Create(owner string, pubs []models.Publication) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	id := uuid.NewString()
	s.views[id] = &reviewView{
		owner:    owner,
		state:    &ReviewState{Publications: pubs},
		lastSeen: s.now(),
	}
	return id
}

// Update runs fn on the view's state under the store lock. It reports false
// when the view is unknown, expired or owned by someone else.
func (s *ViewStore) Update(id, owner string, fn func(*ReviewState)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.views[id]
	if !ok {
		return false
	}
	if s.expired(v) {
		delete(s.views, id)
		return false
	}
	if v.owner != owner {
		return false
	}
	v.lastSeen = s.now()
	if fn != nil {
		fn(v.state)
	}
	return true
}

// Exists is Update without a mutation.
func (s *ViewStore) Exists(id, owner string) bool {
	return s.Update(id, owner, nil)
}

// Sweep drops expired views and returns how many were removed.
func (s *ViewStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked()
}

func (s *ViewStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.views)
}

func (s *ViewStore) sweepLocked() int {
	n := 0
	for id, v := range s.views {
		if s.expired(v) {
			delete(s.views, id)
			n++
		}
	}
	return n
}

func (s *ViewStore) expired(v *reviewView) bool {
	return s.ttl > 0 && s.now().Sub(v.lastSeen) > s.ttl
}
