package store

import (
	"context"
	"sync"

	"github.com/MTahaFarrukh/PortBuilder/internal/domain/portfolio"
	"github.com/MTahaFarrukh/PortBuilder/pkg/identifier"
	"github.com/MTahaFarrukh/PortBuilder/pkg/logger"
)

// Manager hands out one ProfileStore per user id. Each user's document is
// independent; there is no shared mutable state between stores.
type Manager struct {
	mu     sync.Mutex
	stores map[string]*ProfileStore

	repo portfolio.Repository
	ids  identifier.Generator
	log  logger.Logger
	opts []Option
}

func NewManager(repo portfolio.Repository, ids identifier.Generator, log logger.Logger, opts ...Option) *Manager {
	return &Manager{
		stores: make(map[string]*ProfileStore),
		repo:   repo,
		ids:    ids,
		log:    log,
		opts:   opts,
	}
}

// For returns the store for userID, creating it and loading the user's
// document on first access.
func (m *Manager) For(ctx context.Context, userID string) *ProfileStore {
	m.mu.Lock()
	s, ok := m.stores[userID]
	if !ok {
		s = New(m.repo, m.ids, m.log, m.opts...)
		m.stores[userID] = s
	}
	m.mu.Unlock()

	if !ok {
		s.LoadProfile(ctx, userID)
	}
	return s
}
