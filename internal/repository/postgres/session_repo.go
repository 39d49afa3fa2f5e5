package postgres

import (
	"context"
	"errors"

	"go-mentorship-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type sessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) domain.SessionRepository {
	return &sessionRepository{db: db}
}

const sessionColumns = `
	id, request_id, mentor_id, mentee_id, scheduled_date, time_slot,
	topic, status, created_at, updated_at`

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO sessions
			(id, request_id, mentor_id, mentee_id, scheduled_date, time_slot,
			 topic, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		session.ID, session.RequestID, session.MentorID, session.MenteeID,
		session.Date, session.TimeSlot, session.Topic, session.Status,
		session.CreatedAt, session.UpdatedAt,
	)
	return err
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`
	return r.get(ctx, query, id)
}

func (r *sessionRepository) GetByRequestID(ctx context.Context, requestID string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE request_id = $1`
	return r.get(ctx, query, requestID)
}

func (r *sessionRepository) ListByUser(ctx context.Context, userID string) ([]domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE mentor_id = $1 OR mentee_id = $1
		ORDER BY scheduled_date, time_slot`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var s domain.Session
		err := rows.Scan(
			&s.ID, &s.RequestID, &s.MentorID, &s.MenteeID, &s.Date, &s.TimeSlot,
			&s.Topic, &s.Status, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *sessionRepository) Update(ctx context.Context, session *domain.Session) error {
	query := `UPDATE sessions SET scheduled_date=$1, time_slot=$2, status=$3, updated_at=NOW() WHERE id=$4`
	_, err := r.db.Exec(ctx, query, session.Date, session.TimeSlot, session.Status, session.ID)
	return err
}

func (r *sessionRepository) get(ctx context.Context, query string, arg any) (*domain.Session, error) {
	var s domain.Session
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&s.ID, &s.RequestID, &s.MentorID, &s.MenteeID, &s.Date, &s.TimeSlot,
		&s.Topic, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
