package profileapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"bark-advisor/internal/domain/dogprofiles"
	"bark-advisor/internal/middleware"
	"bark-advisor/internal/platform/httpclient"
)

var ErrUnauthenticated = errors.New("profile api: no user in context")

// Client habla con la API de perfiles (/api/dog-profiles) en nombre del usuario
// del request: reenvía su token, o el user id de debug en modo dev.
type Client struct {
	http *httpclient.Client
}

func New(baseURL string, timeout time.Duration, tr http.RoundTripper) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("profile api: base url required")
	}
	hc, err := httpclient.New(baseURL, timeout, tr)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

func (c *Client) ListMine(ctx context.Context) ([]dogprofiles.DogProfile, error) {
	headers, err := credentials(ctx)
	if err != nil {
		return nil, err
	}

	var out []dogprofiles.ProfileResponse
	if err := c.http.DoJSON(ctx, http.MethodGet, "/api/dog-profiles", headers, nil, &out); err != nil {
		return nil, fmt.Errorf("list dog profiles: %w", err)
	}

	items := make([]dogprofiles.DogProfile, 0, len(out))
	for _, r := range out {
		items = append(items, dogprofiles.FromResponse(r))
	}
	return items, nil
}

func (c *Client) Create(ctx context.Context, in dogprofiles.Input) (dogprofiles.DogProfile, error) {
	headers, err := credentials(ctx)
	if err != nil {
		return dogprofiles.DogProfile{}, err
	}

	var out dogprofiles.ProfileResponse
	if err := c.http.DoJSON(ctx, http.MethodPost, "/api/dog-profiles", headers, dogprofiles.NewRequest(in), &out); err != nil {
		return dogprofiles.DogProfile{}, fmt.Errorf("create dog profile: %w", err)
	}
	return dogprofiles.FromResponse(out), nil
}

func (c *Client) Update(ctx context.Context, id string, in dogprofiles.Input) (dogprofiles.DogProfile, error) {
	headers, err := credentials(ctx)
	if err != nil {
		return dogprofiles.DogProfile{}, err
	}

	var out dogprofiles.ProfileResponse
	path := "/api/dog-profiles/" + url.PathEscape(id)
	if err := c.http.DoJSON(ctx, http.MethodPut, path, headers, dogprofiles.NewRequest(in), &out); err != nil {
		return dogprofiles.DogProfile{}, fmt.Errorf("update dog profile: %w", err)
	}
	return dogprofiles.FromResponse(out), nil
}

func credentials(ctx context.Context) (map[string]string, error) {
	if tok := middleware.GetToken(ctx); tok != "" {
		return map[string]string{"Authorization": "Bearer " + tok}, nil
	}
	if claims, ok := middleware.GetClaims(ctx); ok {
		return map[string]string{middleware.DebugUserHeader: claims.UserID}, nil
	}
	return nil, ErrUnauthenticated
}
