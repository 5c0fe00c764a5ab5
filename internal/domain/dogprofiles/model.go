package dogprofiles

import "time"

// DogProfile es el perfil del perro de un usuario. El formulario del dashboard
// edita el primero (más antiguo) de la lista del usuario.
type DogProfile struct {
	ID          string
	OwnerUserID string

	Name   string
	Breed  string
	Weight float64 // libras

	VetIssues           string // opcional
	DietaryRestrictions string // opcional

	CreatedAt time.Time
	UpdatedAt time.Time
}
