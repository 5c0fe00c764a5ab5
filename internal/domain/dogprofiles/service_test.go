package dogprofiles

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID      map[string]DogProfile
	failWrite error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]DogProfile{}}
}

func (r *testRepo) Create(_ context.Context, p DogProfile) error {
	if r.failWrite != nil {
		return r.failWrite
	}
	if _, ok := r.byID[p.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(_ context.Context, p DogProfile) error {
	if r.failWrite != nil {
		return r.failWrite
	}
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (DogProfile, error) {
	p, ok := r.byID[id]
	if !ok {
		return DogProfile{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) ListByOwner(_ context.Context, owner string) ([]DogProfile, error) {
	out := make([]DogProfile, 0)
	for _, p := range r.byID {
		if p.OwnerUserID == owner {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func newTestService(repo Repository, now time.Time) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return now }
	n := 0
	svc.newID = func() string {
		n++
		return "dog-" + string(rune('0'+n))
	}
	return svc
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_TrimsAndStamps(t *testing.T) {
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc := newTestService(newTestRepo(), now)

	p, err := svc.Create(context.Background(), "user-1", Input{
		Name:      "  Milo ",
		Breed:     "beagle",
		Weight:    24,
		VetIssues: "  hip dysplasia  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "dog-1", p.ID)
	assert.Equal(t, "user-1", p.OwnerUserID)
	assert.Equal(t, "Milo", p.Name)
	assert.Equal(t, "hip dysplasia", p.VetIssues)
	assert.Empty(t, p.DietaryRestrictions)
	assert.Equal(t, now, p.CreatedAt)
	assert.Equal(t, now, p.UpdatedAt)
}

func TestService_Create_Validation(t *testing.T) {
	svc := newTestService(newTestRepo(), time.Now())
	ctx := context.Background()

	cases := map[string]struct {
		owner string
		in    Input
		msg   string
	}{
		"missing owner":   {owner: " ", in: Input{Name: "Milo", Breed: "beagle"}},
		"missing name":    {owner: "u", in: Input{Name: "  ", Breed: "beagle"}, msg: "name is required"},
		"missing breed":   {owner: "u", in: Input{Name: "Milo"}, msg: "breed is required"},
		"negative weight": {owner: "u", in: Input{Name: "Milo", Breed: "beagle", Weight: -1}, msg: "weight must be between 0 and 400"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.owner, tc.in)
			require.ErrorIs(t, err, ErrInvalidInput)
			if tc.msg != "" {
				assert.Contains(t, err.Error(), tc.msg)
			}
		})
	}
}

func TestService_Update_OwnerOnly(t *testing.T) {
	now1 := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	now2 := now1.Add(time.Hour)
	svc := newTestService(newTestRepo(), now1)
	ctx := context.Background()

	p, err := svc.Create(ctx, "owner-1", Input{Name: "Milo", Breed: "beagle", Weight: 20})
	require.NoError(t, err)

	_, err = svc.Update(ctx, p.ID, "someone-else", Input{Name: "Rex", Breed: "pug"})
	assert.ErrorIs(t, err, ErrForbidden)

	svc.now = func() time.Time { return now2 }
	updated, err := svc.Update(ctx, p.ID, "owner-1", Input{Name: "Milo", Breed: "beagle", Weight: 22, DietaryRestrictions: "grain free"})
	require.NoError(t, err)
	assert.Equal(t, 22.0, updated.Weight)
	assert.Equal(t, "grain free", updated.DietaryRestrictions)
	assert.Equal(t, now1, updated.CreatedAt)
	assert.Equal(t, now2, updated.UpdatedAt)
}

func TestService_Update_NotFound(t *testing.T) {
	svc := newTestService(newTestRepo(), time.Now())

	_, err := svc.Update(context.Background(), "missing", "owner-1", Input{Name: "Milo", Breed: "beagle"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetByID(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Create_WrapsRepoError(t *testing.T) {
	repo := newTestRepo()
	repo.failWrite = errors.New("db down")
	svc := newTestService(repo, time.Now())

	_, err := svc.Create(context.Background(), "u", Input{Name: "Milo", Breed: "beagle"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "db down")
}

func TestService_ListByOwner_OldestFirst(t *testing.T) {
	repo := newTestRepo()
	base := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc := newTestService(repo, base.Add(time.Hour))
	ctx := context.Background()

	_, err := svc.Create(ctx, "u", Input{Name: "Second", Breed: "pug"})
	require.NoError(t, err)
	svc.now = func() time.Time { return base }
	_, err = svc.Create(ctx, "u", Input{Name: "First", Breed: "pug"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "other", Input{Name: "Nope", Breed: "pug"})
	require.NoError(t, err)

	items, err := svc.ListByOwner(ctx, "u")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "First", items[0].Name)
}
