package recommender

import "errors"

var ErrNotConfigured = errors.New("recommender not configured")

// Request describe la búsqueda; los campos del perro son opcionales y solo
// sirven para afinar la recomendación.
type Request struct {
	Query string

	Breed               string
	Weight              float64
	VetIssues           string
	DietaryRestrictions string
}

// Product es una recomendación; SearchTerm se usa para armar el link de afiliado.
type Product struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SearchTerm  string `json:"search_term"`
}
