package dogprofiles

import (
	"errors"
	"net/http"
	"time"

	"bark-advisor/internal/middleware"
	"bark-advisor/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/api/dog-profiles", func(pr chi.Router) {
		pr.Get("/", listMineHandler(svc, log))
		pr.Post("/", createHandler(svc, log))
		pr.Get("/{profileID}", getHandler(svc, log))
		pr.Put("/{profileID}", updateHandler(svc, log))
	})
}

// ProfileRequest es el body de POST y PUT.
type ProfileRequest struct {
	Name                string  `json:"name" example:"Milo"`
	Breed               string  `json:"breed" example:"beagle"`
	Weight              float64 `json:"weight" example:"24"`
	VetIssues           string  `json:"vet_issues,omitempty" example:"seasonal allergies"`
	DietaryRestrictions string  `json:"dietary_restrictions,omitempty" example:"no chicken"`
}

// ProfileResponse es la representación pública de un DogProfile.
type ProfileResponse struct {
	ID                  string    `json:"id"`
	OwnerUserID         string    `json:"owner_user_id"`
	Name                string    `json:"name"`
	Breed               string    `json:"breed"`
	Weight              float64   `json:"weight"`
	VetIssues           string    `json:"vet_issues,omitempty"`
	DietaryRestrictions string    `json:"dietary_restrictions,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// listMineHandler godoc
// @Summary  List the caller's dog profiles
// @Tags     dog-profiles
// @Produce  json
// @Success  200 {array}  ProfileResponse
// @Failure  401 {string} string "unauthorized"
// @Router   /api/dog-profiles [get]
func listMineHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			log.Error("list dog profiles", map[string]any{"err": err, "user_id": claims.UserID})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]ProfileResponse, 0, len(items))
		for _, p := range items {
			out = append(out, ToResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createHandler godoc
// @Summary  Create a dog profile owned by the caller
// @Tags     dog-profiles
// @Accept   json
// @Produce  json
// @Param    body body     ProfileRequest true "profile"
// @Success  201  {object} ProfileResponse
// @Failure  400  {string} string "invalid input"
// @Failure  401  {string} string "unauthorized"
// @Router   /api/dog-profiles [post]
func createHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req ProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), claims.UserID, req.toInput())
		if err != nil {
			writeServiceError(w, log, err)
			return
		}

		log.Info("dog profile created", map[string]any{"profile_id": p.ID, "user_id": claims.UserID})
		writeJSON(w, http.StatusCreated, ToResponse(p))
	}
}

// getHandler godoc
// @Summary  Get one of the caller's dog profiles
// @Tags     dog-profiles
// @Produce  json
// @Param    profileID path     string true "profile id"
// @Success  200       {object} ProfileResponse
// @Failure  403       {string} string "forbidden"
// @Failure  404       {string} string "dog profile not found"
// @Router   /api/dog-profiles/{profileID} [get]
func getHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "profileID"))
		if err != nil {
			writeServiceError(w, log, err)
			return
		}
		if p.OwnerUserID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		writeJSON(w, http.StatusOK, ToResponse(p))
	}
}

// updateHandler godoc
// @Summary  Replace the editable fields of a dog profile
// @Tags     dog-profiles
// @Accept   json
// @Produce  json
// @Param    profileID path     string         true "profile id"
// @Param    body      body     ProfileRequest true "profile"
// @Success  200       {object} ProfileResponse
// @Failure  400       {string} string "invalid input"
// @Failure  403       {string} string "forbidden"
// @Failure  404       {string} string "dog profile not found"
// @Router   /api/dog-profiles/{profileID} [put]
func updateHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req ProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "profileID"), claims.UserID, req.toInput())
		if err != nil {
			writeServiceError(w, log, err)
			return
		}

		log.Info("dog profile updated", map[string]any{"profile_id": p.ID, "user_id": claims.UserID})
		writeJSON(w, http.StatusOK, ToResponse(p))
	}
}

func (req ProfileRequest) toInput() Input {
	return Input{
		Name:                req.Name,
		Breed:               req.Breed,
		Weight:              req.Weight,
		VetIssues:           req.VetIssues,
		DietaryRestrictions: req.DietaryRestrictions,
	}
}

func ToResponse(p DogProfile) ProfileResponse {
	return ProfileResponse{
		ID:                  p.ID,
		OwnerUserID:         p.OwnerUserID,
		Name:                p.Name,
		Breed:               p.Breed,
		Weight:              p.Weight,
		VetIssues:           p.VetIssues,
		DietaryRestrictions: p.DietaryRestrictions,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// FromResponse es la inversa de ToResponse; la usa el cliente remoto.
func FromResponse(r ProfileResponse) DogProfile {
	return DogProfile{
		ID:                  r.ID,
		OwnerUserID:         r.OwnerUserID,
		Name:                r.Name,
		Breed:               r.Breed,
		Weight:              r.Weight,
		VetIssues:           r.VetIssues,
		DietaryRestrictions: r.DietaryRestrictions,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

// NewRequest arma el body de POST/PUT a partir de un Input.
func NewRequest(in Input) ProfileRequest {
	return ProfileRequest{
		Name:                in.Name,
		Breed:               in.Breed,
		Weight:              in.Weight,
		VetIssues:           in.VetIssues,
		DietaryRestrictions: in.DietaryRestrictions,
	}
}

func writeServiceError(w http.ResponseWriter, log logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "dog profile not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		log.Error("dog profile request failed", map[string]any{"err": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
