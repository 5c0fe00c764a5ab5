package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"bark-advisor/internal/domain/dogprofiles"
)

type dogProfileRepo struct {
	mu   sync.RWMutex
	byID map[string]dogprofiles.DogProfile
}

func NewDogProfileRepo() dogprofiles.Repository {
	return &dogProfileRepo{
		byID: make(map[string]dogprofiles.DogProfile),
	}
}

func (r *dogProfileRepo) Create(_ context.Context, p dogprofiles.DogProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("dog profile id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("dog profile already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *dogProfileRepo) Update(_ context.Context, p dogprofiles.DogProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return dogprofiles.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *dogProfileRepo) GetByID(_ context.Context, id string) (dogprofiles.DogProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return dogprofiles.DogProfile{}, dogprofiles.ErrNotFound
	}
	return p, nil
}

func (r *dogProfileRepo) ListByOwner(_ context.Context, ownerUserID string) ([]dogprofiles.DogProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dogprofiles.DogProfile, 0)
	for _, p := range r.byID {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}

	// created_at asc; a igual timestamp desempata por id para que "el primero" sea estable
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}
