package postgres

import (
	"context"
	"errors"
	"time"

	"go-mentorship-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type requestRepository struct {
	db *pgxpool.Pool
}

func NewRequestRepository(db *pgxpool.Pool) domain.RequestRepository {
	return &requestRepository{db: db}
}

const requestColumns = `
	id, requester_id, mentor_id, subject, session_type, message,
	requested_date, time_slot, status, created_at, updated_at`

func (r *requestRepository) Create(ctx context.Context, req *domain.MentorshipRequest) error {
	query := `
		INSERT INTO mentorship_requests
			(id, requester_id, mentor_id, subject, session_type, message,
			 requested_date, time_slot, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		req.ID, req.RequesterID, req.MentorID, req.Subject, req.SessionType,
		req.Message, req.Date, req.TimeSlot, req.Status, req.CreatedAt, req.UpdatedAt,
	)
	return err
}

func (r *requestRepository) GetByID(ctx context.Context, id string) (*domain.MentorshipRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM mentorship_requests WHERE id = $1`

	var req domain.MentorshipRequest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.RequesterID, &req.MentorID, &req.Subject, &req.SessionType,
		&req.Message, &req.Date, &req.TimeSlot, &req.Status, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *requestRepository) ListByMentor(ctx context.Context, mentorID string) ([]domain.MentorshipRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM mentorship_requests WHERE mentor_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, mentorID)
}

func (r *requestRepository) ListByRequester(ctx context.Context, requesterID string) ([]domain.MentorshipRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM mentorship_requests WHERE requester_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, requesterID)
}

func (r *requestRepository) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]domain.MentorshipRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM mentorship_requests WHERE status = $1 AND created_at < $2 ORDER BY created_at`
	return r.list(ctx, query, domain.RequestStatusPending, cutoff)
}

func (r *requestRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE mentorship_requests SET status=$1, updated_at=NOW() WHERE id=$2`
	_, err := r.db.Exec(ctx, query, status, id)
	return err
}

func (r *requestRepository) list(ctx context.Context, query string, args ...any) ([]domain.MentorshipRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.MentorshipRequest
	for rows.Next() {
		var req domain.MentorshipRequest
		err := rows.Scan(
			&req.ID, &req.RequesterID, &req.MentorID, &req.Subject, &req.SessionType,
			&req.Message, &req.Date, &req.TimeSlot, &req.Status, &req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
