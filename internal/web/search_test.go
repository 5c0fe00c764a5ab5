package web

import (
	"context"
	"errors"
	"testing"

	"bark-advisor/internal/adapters/recommender"
	"bark-advisor/internal/domain/dogprofiles"
	"bark-advisor/internal/platform/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecommender struct {
	calls []recommender.Request
	out   []recommender.Product
	err   error
}

func (f *fakeRecommender) Recommend(_ context.Context, req recommender.Request) ([]recommender.Product, error) {
	f.calls = append(f.calls, req)
	return f.out, f.err
}

func TestProductSearch_TailorsWithFirstProfileAndTagsLinks(t *testing.T) {
	rec := &fakeRecommender{out: []recommender.Product{{Name: "Kibble", SearchTerm: "grain free kibble"}}}
	s := NewProductSearch(SearchOptions{
		Recommender:  rec,
		Profiles:     &fakeProfiles{items: []dogprofiles.DogProfile{existingMilo()}},
		AffiliateTag: "bark-20",
	})

	st := s.Search(userCtx(), "  food ")

	require.Len(t, rec.calls, 1)
	assert.Equal(t, "food", rec.calls[0].Query)
	assert.Equal(t, "beagle", rec.calls[0].Breed)
	assert.Equal(t, "no chicken", rec.calls[0].DietaryRestrictions)
	assert.Equal(t, "Milo", st.TailoredTo)
	require.Len(t, st.Results, 1)
	assert.Equal(t, "https://www.amazon.com/s?k=grain+free+kibble&tag=bark-20", st.Results[0].URL)
	assert.Empty(t, st.Error)
}

func TestProductSearch_EmptyQueryDoesNothing(t *testing.T) {
	rec := &fakeRecommender{}
	st := NewProductSearch(SearchOptions{Recommender: rec}).Search(context.Background(), " ")

	assert.False(t, st.Searched)
	assert.Empty(t, rec.calls)
}

func TestProductSearch_Errors(t *testing.T) {
	st := NewProductSearch(SearchOptions{Recommender: &fakeRecommender{err: errors.New("boom")}}).
		Search(context.Background(), "toys")
	assert.Equal(t, MsgSearchFailed, st.Error)
	assert.Empty(t, st.Results)

	st = NewProductSearch(SearchOptions{Recommender: &fakeRecommender{err: recommender.ErrNotConfigured}}).
		Search(context.Background(), "toys")
	assert.Equal(t, MsgSearchNotConfigured, st.Error)

	st = NewProductSearch(SearchOptions{}).Search(context.Background(), "toys")
	assert.Equal(t, MsgSearchNotConfigured, st.Error)
}

func TestProductSearch_ProfileLookupFailureStillSearches(t *testing.T) {
	rec := &fakeRecommender{out: []recommender.Product{{Name: "Leash", SearchTerm: "leash"}}}
	st := NewProductSearch(SearchOptions{
		Recommender: rec,
		Profiles:    &fakeProfiles{listErr: errors.New("down")},
	}).Search(userCtx(), "leash")

	require.Len(t, rec.calls, 1)
	assert.Empty(t, rec.calls[0].Breed)
	assert.Empty(t, st.TailoredTo)
	assert.Len(t, st.Results, 1)
}

func TestProductSearch_CachesResults(t *testing.T) {
	rec := &fakeRecommender{out: []recommender.Product{{Name: "Leash", SearchTerm: "leash"}}}
	s := NewProductSearch(SearchOptions{Recommender: rec, Cache: cache.NewMemory()})

	first := s.Search(context.Background(), "Leash")
	second := s.Search(context.Background(), "leash")

	assert.Len(t, rec.calls, 1)
	assert.Equal(t, first.Results, second.Results)
}

func TestAffiliateURL_WithoutTag(t *testing.T) {
	assert.Equal(t, "https://www.amazon.com/s?k=chew+toy", AffiliateURL(" chew toy ", ""))
}
