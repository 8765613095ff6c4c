package stubserver

import (
	"sort"
	"strings"
	"sync"
)

type userRecord struct {
	ID              int64
	Username        string
	Email           string
	PasswordHash    []byte
	Image           string
	ActivationToken string
	Active          bool
}

// userStore is the in-memory account table.
type userStore struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]*userRecord
}

func newUserStore() *userStore {
	return &userStore{nextID: 1, users: make(map[int64]*userRecord)}
}

func (s *userStore) create(u userRecord) *userRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextID
	s.nextID++
	s.users[u.ID] = &u
	return &u
}

func (s *userStore) byID(id int64) (userRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return userRecord{}, false
	}
	return *u, true
}

func (s *userStore) byEmail(email string) (userRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return *u, true
		}
	}
	return userRecord{}, false
}

func (s *userStore) byActivationToken(token string) (userRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ActivationToken != "" && u.ActivationToken == token {
			return *u, true
		}
	}
	return userRecord{}, false
}

func (s *userStore) activate(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		u.Active = true
		u.ActivationToken = ""
	}
}

func (s *userStore) rename(id int64, username string) (userRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return userRecord{}, false
	}
	u.Username = username
	return *u, true
}

func (s *userStore) remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

// page returns one page of activated users, excluding excludeID, ordered by
// id. totalPages reflects the filtered set.
func (s *userStore) page(page, size int, excludeID int64) (out []userRecord, totalPages int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var visible []userRecord
	for _, u := range s.users {
		if !u.Active || u.ID == excludeID {
			continue
		}
		visible = append(visible, *u)
	}
	sort.Slice(visible, func(i, j int) bool { return visible[i].ID < visible[j].ID })

	totalPages = (len(visible) + size - 1) / size
	start := page * size
	if start >= len(visible) {
		return nil, totalPages
	}
	end := min(start+size, len(visible))
	return visible[start:end], totalPages
}
