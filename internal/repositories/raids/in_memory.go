package raids

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/raid-bot-discord/internal/domain/raid"
	apperr "github.com/KirkDiggler/raid-bot-discord/internal/errors"
)

type inMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*raid.Session
}

// NewInMemoryRepository creates the raid session registry
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		sessions: make(map[string]*raid.Session),
	}
}

func (r *inMemoryRepository) Create(ctx context.Context, session *raid.Session) error {
	if session == nil {
		return apperr.InvalidArgument("session cannot be nil")
	}
	if session.ID == "" {
		return apperr.InvalidArgument("session ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return apperr.AlreadyExistsf("raid '%s' already exists", session.ID)
	}
	r.sessions[session.ID] = session
	return nil
}

func (r *inMemoryRepository) Get(ctx context.Context, id string) (*raid.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[id]
	if !exists {
		return nil, apperr.NotFoundf("raid '%s' not found", id).WithMeta("raid_id", id)
	}
	return session, nil
}

func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

func (r *inMemoryRepository) ListByGuild(ctx context.Context, guildID string) ([]*raid.Session, error) {
	r.mu.RLock()
	var out []*raid.Session
	for _, s := range r.sessions {
		if s.GuildID == guildID {
			out = append(out, s)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
