package postgres

import (
	"context"
	"errors"

	"go-mentorship-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `
	id, user_id, first_name, last_name, role, COALESCE(title, ''),
	department, skills, COALESCE(availability, ''), COALESCE(bio, ''),
	COALESCE(company, ''), achievements, rating, session_count,
	created_at, updated_at`

func (r *profileRepository) ListByRole(ctx context.Context, role string) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE role = $1 ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

	p, err := scanProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles SET
			first_name=$1, last_name=$2, title=$3, department=$4, skills=$5,
			availability=$6, bio=$7, company=$8, achievements=$9, updated_at=NOW()
		WHERE user_id=$10`
	_, err := r.db.Exec(ctx, query,
		profile.FirstName, profile.LastName, profile.Title, profile.Department,
		pq.Array(profile.Skills), profile.Availability, profile.Bio,
		profile.Company, pq.Array(profile.Achievements), profile.UserID,
	)
	return err
}

func (r *profileRepository) UpdateAvatar(ctx context.Context, userID string, png []byte) error {
	query := `UPDATE profiles SET avatar_png=$1, updated_at=NOW() WHERE user_id=$2`
	_, err := r.db.Exec(ctx, query, png, userID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	var skills, achievements []string

	err := row.Scan(
		&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Role, &p.Title,
		&p.Department, pq.Array(&skills), &p.Availability, &p.Bio,
		&p.Company, pq.Array(&achievements), &p.Rating, &p.SessionCount,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Skills = skills
	p.Achievements = achievements
	return &p, nil
}
