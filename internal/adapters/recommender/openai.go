package recommender

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bark-advisor/internal/platform/httpclient"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

const (
	maxProducts = 8

	systemPrompt = `You are Bark Advisor, a pet product expert. Recommend dog products for the user's search.
Answer ONLY with a JSON object: {"products":[{"name":"...","description":"...","search_term":"..."}]}.
search_term must be a short Amazon search query for the product. Return at most 8 products.`
)

type Config struct {
	BaseURL           string // p.ej. https://api.openai.com
	APIKey            string
	Model             string
	RequestsPerSecond float64
	Timeout           time.Duration
	Transport         http.RoundTripper
}

// OpenAI pide recomendaciones a un endpoint compatible con chat completions.
type OpenAI struct {
	http    *httpclient.Client
	apiKey  string
	model   string
	limiter *rate.Limiter
}

func NewOpenAI(cfg Config) (*OpenAI, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	hc, err := httpclient.New(cfg.BaseURL, timeout, cfg.Transport)
	if err != nil {
		return nil, err
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAI{
		http:    hc,
		apiKey:  strings.TrimSpace(cfg.APIKey),
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}, nil
}

func (o *OpenAI) IsConfigured() bool {
	return o != nil && o.apiKey != "" && o.http.BaseURL != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	Temperature    float64           `json:"temperature"`
	ResponseFormat map[string]string `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (o *OpenAI) Recommend(ctx context.Context, req Request) ([]Product, error) {
	if !o.IsConfigured() {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(req.Query) == "" {
		return nil, nil
	}

	if err := o.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("recommender: rate limit: %w", err)
	}

	body := chatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(req)},
		},
		Temperature:    0.3,
		ResponseFormat: map[string]string{"type": "json_object"},
	}

	var out chatResponse
	err := o.http.DoJSON(ctx, http.MethodPost, "/v1/chat/completions",
		map[string]string{"Authorization": "Bearer " + o.apiKey}, body, &out)
	if err != nil {
		return nil, fmt.Errorf("recommender: %w", err)
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("recommender: empty response")
	}

	return parseProducts(out.Choices[0].Message.Content)
}

func userPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Search: %s\n", strings.TrimSpace(req.Query))
	if req.Breed != "" {
		fmt.Fprintf(&b, "Dog breed: %s\n", req.Breed)
	}
	if req.Weight > 0 {
		fmt.Fprintf(&b, "Dog weight: %g lbs\n", req.Weight)
	}
	if req.VetIssues != "" {
		fmt.Fprintf(&b, "Veterinary issues: %s\n", req.VetIssues)
	}
	if req.DietaryRestrictions != "" {
		fmt.Fprintf(&b, "Dietary restrictions: %s\n", req.DietaryRestrictions)
	}
	return b.String()
}

// parseProducts tolera que el modelo envuelva el JSON en un bloque ```json.
func parseProducts(content string) ([]Product, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var payload struct {
		Products []Product `json:"products"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &payload); err != nil {
		return nil, fmt.Errorf("recommender: invalid products json: %w", err)
	}

	out := make([]Product, 0, len(payload.Products))
	for _, p := range payload.Products {
		p.Name = strings.TrimSpace(p.Name)
		p.SearchTerm = strings.TrimSpace(p.SearchTerm)
		if p.Name == "" {
			continue
		}
		if p.SearchTerm == "" {
			p.SearchTerm = p.Name
		}
		p.Description = strings.TrimSpace(p.Description)
		out = append(out, p)
		if len(out) == maxProducts {
			break
		}
	}
	return out, nil
}
