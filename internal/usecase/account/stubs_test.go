package account

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/pet-shop/internal/audit"
	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/domain/role"
	"github.com/BruksfildServices01/pet-shop/internal/worker"
)

// ------------------------------------------------------
// session store
// ------------------------------------------------------

type stubSessions struct {
	mu      sync.Mutex
	byToken map[string]string
	users   map[string]identity.SessionUser
	err     error
	updates int
}

func newStubSessions() *stubSessions {
	return &stubSessions{
		byToken: map[string]string{},
		users:   map[string]identity.SessionUser{},
	}
}

func (s *stubSessions) add(token string, u identity.SessionUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byToken[token] = u.ID
	s.users[u.ID] = u
}

func (s *stubSessions) get(id string) identity.SessionUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[id]
}

func (s *stubSessions) GetSessionUser(_ context.Context, token string) (*identity.SessionUser, error) {
	if strings.Count(token, ".") != 2 {
		return nil, identity.ErrMalformedToken
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	id, ok := s.byToken[token]
	if !ok {
		return nil, nil
	}
	u := s.users[id]
	return &u, nil
}

func (s *stubSessions) UpdateSessionMetadata(_ context.Context, id string, patch identity.MetadataPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return identity.ErrUserNotFound
	}
	if patch.Role != nil {
		u.Metadata.Role = string(*patch.Role)
	}
	if patch.IsActive != nil {
		v := *patch.IsActive
		u.Metadata.IsActive = &v
	}
	if patch.FullName != nil {
		u.Metadata.FullName = *patch.FullName
	}
	s.users[id] = u
	s.updates++
	return nil
}

func (s *stubSessions) FindByEmail(_ context.Context, email string) (*identity.SessionUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, identity.ErrUserNotFound
}

func (s *stubSessions) updateCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updates
}

// ------------------------------------------------------
// relational users
// ------------------------------------------------------

type stubUsers struct {
	mu       sync.Mutex
	rows     map[string]identity.UserRecord
	readErr  error
	roleSets int
}

func newStubUsers(rows ...identity.UserRecord) *stubUsers {
	s := &stubUsers{rows: map[string]identity.UserRecord{}}
	for _, r := range rows {
		s.rows[r.ID] = r
	}
	return s
}

func (s *stubUsers) FindByID(_ context.Context, id string) (*identity.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, s.readErr
	}
	r, ok := s.rows[id]
	if !ok {
		return nil, identity.ErrUserNotFound
	}
	return &r, nil
}

func (s *stubUsers) FindByEmail(_ context.Context, email string) (*identity.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, s.readErr
	}
	for _, r := range s.rows {
		if r.Email == email {
			found := r
			return &found, nil
		}
	}
	return nil, identity.ErrUserNotFound
}

func (s *stubUsers) CreateIfAbsent(_ context.Context, rec identity.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rows {
		if r.ID == rec.ID || r.Email == rec.Email {
			return nil
		}
	}
	s.rows[rec.ID] = rec
	return nil
}

func (s *stubUsers) UpdateRole(_ context.Context, id string, r role.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return identity.ErrUserNotFound
	}
	row.Role = string(r)
	s.rows[id] = row
	s.roleSets++
	return nil
}

func (s *stubUsers) List(_ context.Context, page, limit int) ([]identity.UserRecord, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]identity.UserRecord, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (s *stubUsers) row(id string) (identity.UserRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	return r, ok
}

func (s *stubUsers) setReadErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readErr = err
}

// ------------------------------------------------------
// audit
// ------------------------------------------------------

type memAudit struct {
	mu     sync.Mutex
	events []audit.Event
}

func (m *memAudit) Write(_ context.Context, ev audit.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return nil
}

func newRunner(t *testing.T) *worker.Runner {
	t.Helper()
	r := worker.NewRunner(zerolog.Nop(), worker.Options{})
	t.Cleanup(func() { _ = r.Close(context.Background()) })
	return r
}

var errStoreDown = errors.New("connection refused")

func boolPtr(v bool) *bool { return &v }
