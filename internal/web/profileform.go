package web

import (
	"context"
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"

	"bark-advisor/internal/domain/dogprofiles"
	"bark-advisor/internal/middleware"
	"bark-advisor/internal/platform/logger"
	"bark-advisor/internal/ports/auth"
)

const (
	MsgLoadFailed = "Failed to load your dog profile"
	MsgSaveFailed = "Failed to save your dog profile"
	MsgCreated    = "Dog profile created successfully!"
	MsgUpdated    = "Dog profile updated successfully!"
)

// Values son los campos controlados del formulario.
type Values struct {
	Name                string
	Breed               string
	Weight              float64
	VetIssues           string
	DietaryRestrictions string

	// rawWeight es el texto tal cual llegó en el POST.
	rawWeight string
}

// WeightInput es el valor que se pinta en el input numérico.
func (v Values) WeightInput() string { return FormatWeight(v.Weight) }

func (v Values) toInput() dogprofiles.Input {
	return dogprofiles.Input{
		Name:                v.Name,
		Breed:               v.Breed,
		Weight:              v.Weight,
		VetIssues:           v.VetIssues,
		DietaryRestrictions: v.DietaryRestrictions,
	}
}

func valuesFrom(p dogprofiles.DogProfile) Values {
	return Values{
		Name:                p.Name,
		Breed:               p.Breed,
		Weight:              p.Weight,
		VetIssues:           p.VetIssues,
		DietaryRestrictions: p.DietaryRestrictions,
	}
}

// ParseValues lee un POST urlencoded con los nombres de campo del formulario.
func ParseValues(form url.Values) Values {
	return Values{
		Name:                form.Get("name"),
		Breed:               form.Get("breed"),
		Weight:              float64(ParseWeight(form.Get("weight"))),
		VetIssues:           form.Get("vet_issues"),
		DietaryRestrictions: form.Get("dietary_restrictions"),
		rawWeight:           form.Get("weight"),
	}
}

// FormatWeight imprime el peso sin ceros de más ("24.9", "24").
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

// ParseWeight toma el prefijo entero del texto ("12.7" => 12, "40lbs" => 40);
// si no hay dígitos devuelve 0. Fuera de rango se satura para que la
// validación lo rechace.
func ParseWeight(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) {
		if s[0] == '-' {
			return math.MinInt
		}
		return math.MaxInt
	}
	if err != nil {
		return 0
	}
	return n
}

// FormState es lo que se renderiza. Error y Success nunca van juntos.
type FormState struct {
	Values   Values
	Existing *dogprofiles.DogProfile

	Error   string
	Success string
}

func (s FormState) IsUpdate() bool { return s.Existing != nil }

func (s FormState) Title() string {
	if s.IsUpdate() {
		return "Update Your Dog Profile"
	}
	return "Create Your Dog Profile"
}

func (s FormState) SubmitLabel() string {
	if s.IsUpdate() {
		return "Update Profile"
	}
	return "Create Profile"
}

// ProfileForm concilia el formulario con el perfil guardado: un solo perfil
// (el primero del usuario) por formulario.
type ProfileForm struct {
	profiles    ProfileClient
	currentUser func(context.Context) (auth.Claims, bool)
	log         logger.Logger
}

func NewProfileForm(profiles ProfileClient, log logger.Logger) *ProfileForm {
	if log == nil {
		log = logger.Nop()
	}
	return &ProfileForm{
		profiles:    profiles,
		currentUser: middleware.GetClaims,
		log:         log,
	}
}

// Load: sin usuario => valores por defecto; con usuario => pre-llena con su
// primer perfil si existe.
func (f *ProfileForm) Load(ctx context.Context) FormState {
	var st FormState

	if _, ok := f.currentUser(ctx); !ok {
		return st
	}

	existing, err := f.first(ctx)
	if err != nil {
		f.log.Error("error fetching dog profile", map[string]any{"err": err})
		st.Error = MsgLoadFailed
		return st
	}
	if existing != nil {
		st.Existing = existing
		st.Values = valuesFrom(*existing)
	}
	return st
}

// Submit vuelve a buscar el perfil existente y decide create vs update.
// Ante cualquier error conserva los valores enviados para que el usuario reintente.
func (f *ProfileForm) Submit(ctx context.Context, v Values) FormState {
	st := FormState{Values: v}

	if _, ok := f.currentUser(ctx); !ok {
		f.log.Warn("dog profile submit without session", nil)
		st.Error = MsgSaveFailed
		return st
	}

	existing, err := f.first(ctx)
	if err != nil {
		f.log.Error("error saving dog profile", map[string]any{"err": err, "stage": "lookup"})
		st.Error = MsgSaveFailed
		return st
	}
	st.Existing = existing

	if existing != nil {
		// Peso sin tocar: se guarda el valor almacenado, no el prefijo entero.
		if v.rawWeight != "" && strings.TrimSpace(v.rawWeight) == FormatWeight(existing.Weight) {
			v.Weight = existing.Weight
			st.Values.Weight = existing.Weight
		}
		saved, err := f.profiles.Update(ctx, existing.ID, v.toInput())
		if err != nil {
			f.log.Error("error saving dog profile", map[string]any{"err": err, "profile_id": existing.ID})
			st.Error = MsgSaveFailed
			return st
		}
		st.Existing = &saved
		st.Success = MsgUpdated
		return st
	}

	saved, err := f.profiles.Create(ctx, v.toInput())
	if err != nil {
		f.log.Error("error saving dog profile", map[string]any{"err": err})
		st.Error = MsgSaveFailed
		return st
	}
	st.Existing = &saved
	st.Success = MsgCreated
	return st
}

func (f *ProfileForm) first(ctx context.Context) (*dogprofiles.DogProfile, error) {
	items, err := f.profiles.ListMine(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	p := items[0]
	return &p, nil
}
