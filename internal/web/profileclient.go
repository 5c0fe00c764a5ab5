package web

import (
	"context"
	"errors"

	"bark-advisor/internal/domain/dogprofiles"
	"bark-advisor/internal/middleware"
)

var ErrNoUser = errors.New("no user in context")

// ProfileClient es el acceso a datos del formulario. Lo implementan
// LocalProfiles (in-process) y profileapi.Client (HTTP).
type ProfileClient interface {
	ListMine(ctx context.Context) ([]dogprofiles.DogProfile, error)
	Create(ctx context.Context, in dogprofiles.Input) (dogprofiles.DogProfile, error)
	Update(ctx context.Context, id string, in dogprofiles.Input) (dogprofiles.DogProfile, error)
}

// LocalProfiles usa el service en el mismo proceso; el usuario sale del contexto.
type LocalProfiles struct {
	svc *dogprofiles.Service
}

func NewLocalProfiles(svc *dogprofiles.Service) *LocalProfiles {
	return &LocalProfiles{svc: svc}
}

func (l *LocalProfiles) ListMine(ctx context.Context) ([]dogprofiles.DogProfile, error) {
	claims, ok := middleware.GetClaims(ctx)
	if !ok {
		return nil, ErrNoUser
	}
	return l.svc.ListByOwner(ctx, claims.UserID)
}

func (l *LocalProfiles) Create(ctx context.Context, in dogprofiles.Input) (dogprofiles.DogProfile, error) {
	claims, ok := middleware.GetClaims(ctx)
	if !ok {
		return dogprofiles.DogProfile{}, ErrNoUser
	}
	return l.svc.Create(ctx, claims.UserID, in)
}

func (l *LocalProfiles) Update(ctx context.Context, id string, in dogprofiles.Input) (dogprofiles.DogProfile, error) {
	claims, ok := middleware.GetClaims(ctx)
	if !ok {
		return dogprofiles.DogProfile{}, ErrNoUser
	}
	return l.svc.Update(ctx, id, claims.UserID, in)
}
