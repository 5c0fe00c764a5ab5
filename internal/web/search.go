package web

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"bark-advisor/internal/adapters/recommender"
	"bark-advisor/internal/domain/dogprofiles"
	"bark-advisor/internal/platform/cache"
	"bark-advisor/internal/platform/logger"
)

const (
	MsgSearchFailed        = "Failed to fetch product recommendations"
	MsgSearchNotConfigured = "Product recommendations are not available right now"
)

// Recommender lo implementa recommender.OpenAI.
type Recommender interface {
	Recommend(ctx context.Context, req recommender.Request) ([]recommender.Product, error)
}

// ProductResult es un producto con su link de afiliado ya armado.
type ProductResult struct {
	Name        string
	Description string
	URL         string
}

type SearchState struct {
	Query      string
	TailoredTo string // nombre del perro usado para afinar, si hubo
	Results    []ProductResult
	Error      string
	Searched   bool
}

// ProductSearch busca recomendaciones, afinadas con el primer perfil del usuario.
type ProductSearch struct {
	rec          Recommender
	profiles     ProfileClient
	cache        cache.Cache
	cacheTTL     time.Duration
	affiliateTag string
	log          logger.Logger
}

type SearchOptions struct {
	Recommender  Recommender
	Profiles     ProfileClient
	Cache        cache.Cache // opcional
	CacheTTL     time.Duration
	AffiliateTag string
	Log          logger.Logger
}

func NewProductSearch(opts SearchOptions) *ProductSearch {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	return &ProductSearch{
		rec:          opts.Recommender,
		profiles:     opts.Profiles,
		cache:        opts.Cache,
		cacheTTL:     opts.CacheTTL,
		affiliateTag: strings.TrimSpace(opts.AffiliateTag),
		log:          log,
	}
}

func (s *ProductSearch) Search(ctx context.Context, query string) SearchState {
	st := SearchState{Query: strings.TrimSpace(query)}
	if st.Query == "" {
		return st
	}
	st.Searched = true

	req := recommender.Request{Query: st.Query}
	if p := s.firstProfile(ctx); p != nil {
		st.TailoredTo = p.Name
		req.Breed = p.Breed
		req.Weight = p.Weight
		req.VetIssues = p.VetIssues
		req.DietaryRestrictions = p.DietaryRestrictions
	}

	products, err := s.recommend(ctx, req)
	if err != nil {
		if errors.Is(err, recommender.ErrNotConfigured) {
			st.Error = MsgSearchNotConfigured
			return st
		}
		s.log.Error("error fetching recommendations", map[string]any{"err": err, "query": st.Query})
		st.Error = MsgSearchFailed
		return st
	}

	st.Results = make([]ProductResult, 0, len(products))
	for _, p := range products {
		st.Results = append(st.Results, ProductResult{
			Name:        p.Name,
			Description: p.Description,
			URL:         AffiliateURL(p.SearchTerm, s.affiliateTag),
		})
	}
	return st
}

func (s *ProductSearch) recommend(ctx context.Context, req recommender.Request) ([]recommender.Product, error) {
	if s.rec == nil {
		return nil, recommender.ErrNotConfigured
	}
	if s.cache == nil {
		return s.rec.Recommend(ctx, req)
	}

	key := searchCacheKey(req)
	var cached []recommender.Product
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		s.log.Warn("search cache get failed", map[string]any{"err": err})
	}

	products, err := s.rec.Recommend(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, products, s.cacheTTL); err != nil {
		s.log.Warn("search cache set failed", map[string]any{"err": err})
	}
	return products, nil
}

// firstProfile es best-effort: sin sesión o con error se busca sin afinar.
func (s *ProductSearch) firstProfile(ctx context.Context) *dogprofiles.DogProfile {
	if s.profiles == nil {
		return nil
	}
	items, err := s.profiles.ListMine(ctx)
	if err != nil || len(items) == 0 {
		if err != nil && !errors.Is(err, ErrNoUser) {
			s.log.Warn("search: profile lookup failed", map[string]any{"err": err})
		}
		return nil
	}
	p := items[0]
	return &p
}

// AffiliateURL arma el link de búsqueda de Amazon con el tag de afiliado (si hay).
func AffiliateURL(term, tag string) string {
	q := url.Values{}
	q.Set("k", strings.TrimSpace(term))
	if tag = strings.TrimSpace(tag); tag != "" {
		q.Set("tag", tag)
	}
	return "https://www.amazon.com/s?" + q.Encode()
}

func searchCacheKey(req recommender.Request) string {
	raw := fmt.Sprintf("%s|%s|%g|%s|%s",
		strings.ToLower(req.Query), strings.ToLower(req.Breed), req.Weight, req.VetIssues, req.DietaryRestrictions)
	sum := sha256.Sum256([]byte(raw))
	return "search:" + hex.EncodeToString(sum[:])
}
