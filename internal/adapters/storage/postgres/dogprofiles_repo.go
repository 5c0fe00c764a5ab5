package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"bark-advisor/internal/domain/dogprofiles"
)

type DogProfilesRepo struct {
	db *sql.DB
}

func NewDogProfilesRepo(db *sql.DB) *DogProfilesRepo {
	return &DogProfilesRepo{db: db}
}

const dogProfileColumns = `
	id, owner_user_id,
	name, breed, weight,
	vet_issues, dietary_restrictions,
	created_at, updated_at`

func (r *DogProfilesRepo) Create(ctx context.Context, p dogprofiles.DogProfile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO dog_profiles (`+dogProfileColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID,
		p.OwnerUserID,
		p.Name,
		p.Breed,
		p.Weight,
		p.VetIssues,
		p.DietaryRestrictions,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *DogProfilesRepo) Update(ctx context.Context, p dogprofiles.DogProfile) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE dog_profiles
		SET
			name = $2,
			breed = $3,
			weight = $4,
			vet_issues = $5,
			dietary_restrictions = $6,
			updated_at = $7
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Breed,
		p.Weight,
		p.VetIssues,
		p.DietaryRestrictions,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return dogprofiles.ErrNotFound
	}
	return nil
}

func (r *DogProfilesRepo) GetByID(ctx context.Context, id string) (dogprofiles.DogProfile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return dogprofiles.DogProfile{}, dogprofiles.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+dogProfileColumns+`
		FROM dog_profiles
		WHERE id::text = $1
	`, id)

	p, err := scanDogProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return dogprofiles.DogProfile{}, dogprofiles.ErrNotFound
	}
	return p, err
}

func (r *DogProfilesRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]dogprofiles.DogProfile, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+dogProfileColumns+`
		FROM dog_profiles
		WHERE owner_user_id = $1
		ORDER BY created_at ASC, id ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dogprofiles.DogProfile, 0)
	for rows.Next() {
		p, err := scanDogProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDogProfile(s scanner) (dogprofiles.DogProfile, error) {
	var p dogprofiles.DogProfile
	err := s.Scan(
		&p.ID,
		&p.OwnerUserID,
		&p.Name,
		&p.Breed,
		&p.Weight,
		&p.VetIssues,
		&p.DietaryRestrictions,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
