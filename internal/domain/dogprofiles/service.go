package dogprofiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
)

// Input son los campos editables de un perfil (create y update completos).
type Input struct {
	Name                string  `validate:"required,max=100"`
	Breed               string  `validate:"required,max=100"`
	Weight              float64 `validate:"gte=0,lte=400"`
	VetIssues           string  `validate:"max=2000"`
	DietaryRestrictions string  `validate:"max=2000"`
}

type Service struct {
	repo     Repository
	validate *validator.Validate
	now      func() time.Time
	newID    func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in Input) (DogProfile, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return DogProfile{}, ErrInvalidInput
	}
	in, err := s.normalize(in)
	if err != nil {
		return DogProfile{}, err
	}

	now := s.now()
	p := DogProfile{
		ID:                  s.newID(),
		OwnerUserID:         ownerUserID,
		Name:                in.Name,
		Breed:               in.Breed,
		Weight:              in.Weight,
		VetIssues:           in.VetIssues,
		DietaryRestrictions: in.DietaryRestrictions,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return DogProfile{}, fmt.Errorf("create dog profile: %w", err)
	}
	return p, nil
}

// Update reemplaza los campos editables. Solo el dueño puede editar.
func (s *Service) Update(ctx context.Context, id, actorUserID string, in Input) (DogProfile, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return DogProfile{}, err
	}
	if current.OwnerUserID != strings.TrimSpace(actorUserID) {
		return DogProfile{}, ErrForbidden
	}

	in, err = s.normalize(in)
	if err != nil {
		return DogProfile{}, err
	}

	current.Name = in.Name
	current.Breed = in.Breed
	current.Weight = in.Weight
	current.VetIssues = in.VetIssues
	current.DietaryRestrictions = in.DietaryRestrictions
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		if errors.Is(err, ErrNotFound) {
			return DogProfile{}, ErrNotFound
		}
		return DogProfile{}, fmt.Errorf("update dog profile: %w", err)
	}
	return current, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (DogProfile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return DogProfile{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]DogProfile, error) {
	return s.repo.ListByOwner(ctx, strings.TrimSpace(ownerUserID))
}

func (s *Service) normalize(in Input) (Input, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Breed = strings.TrimSpace(in.Breed)
	in.VetIssues = strings.TrimSpace(in.VetIssues)
	in.DietaryRestrictions = strings.TrimSpace(in.DietaryRestrictions)

	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return Input{}, fmt.Errorf("%w: %s", ErrInvalidInput, describe(verrs[0]))
		}
		return Input{}, ErrInvalidInput
	}
	return in, nil
}

func describe(fe validator.FieldError) string {
	field := fieldNames[fe.Field()]
	if field == "" {
		field = strings.ToLower(fe.Field())
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gte", "lte":
		return fmt.Sprintf("%s must be between 0 and 400", field)
	default:
		return field + " is invalid"
	}
}

var fieldNames = map[string]string{
	"Name":                "name",
	"Breed":               "breed",
	"Weight":              "weight",
	"VetIssues":           "vet_issues",
	"DietaryRestrictions": "dietary_restrictions",
}
