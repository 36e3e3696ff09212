package quote

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"feed-catalog/internal/apperr"
	"feed-catalog/internal/auth"
)

var (
	errNoSession  = apperr.New(apperr.CodeUnauthorized, "quote session token required")
	errBadSession = apperr.New(apperr.CodeUnauthorized, "invalid quote session token")
	errDraftGone  = apperr.New(apperr.CodeNotFound, "quote draft not found")
)

// Sessions binds drafts to bearer tokens.
type Sessions struct {
	store  DraftStore
	tokens *auth.Tokens
	locks  *draftLocks
	now    func() time.Time
}

func NewSessions(store DraftStore, tokens *auth.Tokens) *Sessions {
	return &Sessions{store: store, tokens: tokens, locks: newDraftLocks(), now: time.Now}
}

// Start persists a fresh draft and returns it with its session token.
func (s *Sessions) Start(ctx context.Context) (*Draft, string, error) {
	d := NewDraft(uuid.NewString(), s.now())
	token, err := s.tokens.Issue(d.ID)
	if err != nil {
		return nil, "", err
	}
	if err := s.store.Save(ctx, d); err != nil {
		return nil, "", err
	}
	return d, token, nil
}

// Current loads the draft named by the request's bearer token.
func (s *Sessions) Current(r *http.Request) (*Draft, error) {
	id, err := s.draftID(r)
	if err != nil {
		return nil, err
	}
	return s.load(r.Context(), id)
}

// Update applies fn to the caller's draft and saves the result. Updates to
// one draft are serialized within the process; nothing is saved when fn fails.
func (s *Sessions) Update(r *http.Request, fn func(*Draft) error) (*Draft, error) {
	id, err := s.draftID(r)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(id)
	defer unlock()

	d, err := s.load(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if err := fn(d); err != nil {
		return nil, err
	}
	d.UpdatedAt = s.now()
	if err := s.store.Save(r.Context(), d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Sessions) draftID(r *http.Request) (string, error) {
	raw := auth.GetBearerToken(r)
	if raw == "" {
		return "", errNoSession
	}
	claims, err := s.tokens.ParseToken(raw)
	if err != nil {
		return "", apperr.Wrap(apperr.CodeUnauthorized, err, errBadSession.Message())
	}
	return claims.Subject, nil
}

func (s *Sessions) load(ctx context.Context, id string) (*Draft, error) {
	d, err := s.store.Get(ctx, id)
	if errors.Is(err, ErrDraftNotFound) {
		return nil, errDraftGone
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Sessions) Save(ctx context.Context, d *Draft) error {
	return s.store.Save(ctx, d)
}

// draftLocks hands out one mutex per draft id and forgets it once the last
// holder releases it.
type draftLocks struct {
	mu   sync.Mutex
	byID map[string]*draftLock
}

type draftLock struct {
	sync.Mutex
	refs int
}

func newDraftLocks() *draftLocks {
	return &draftLocks{byID: make(map[string]*draftLock)}
}

func (l *draftLocks) lock(id string) func() {
	l.mu.Lock()
	dl, ok := l.byID[id]
	if !ok {
		dl = &draftLock{}
		l.byID[id] = dl
	}
	dl.refs++
	l.mu.Unlock()

	dl.Lock()
	return func() {
		dl.Unlock()
		l.mu.Lock()
		dl.refs--
		if dl.refs == 0 {
			delete(l.byID, id)
		}
		l.mu.Unlock()
	}
}
