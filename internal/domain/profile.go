package domain

import (
	"context"
	"strings"
	"time"
)

// Profile roles
const (
	RoleMentor = "mentor"
	RoleMentee = "mentee"
)

// Profile represents a mentor or mentee profile.
// Profiles are owned by the profile store; the matching core only reads them.
type Profile struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id" validate:"required"`
	FirstName    string    `json:"first_name" validate:"required,max=100"`
	LastName     string    `json:"last_name" validate:"required,max=100"`
	Role         string    `json:"role" validate:"required,oneof=mentor mentee"`
	Title        string    `json:"title" validate:"max=100"`
	Department   string    `json:"department" validate:"required,department"`
	Skills       []string  `json:"skills"`
	Availability string    `json:"availability" validate:"omitempty,availability"`
	Bio          string    `json:"bio" validate:"max=500"`
	Company      string    `json:"company,omitempty" validate:"max=100"`
	Achievements []string  `json:"achievements,omitempty"`
	Rating       float64   `json:"rating" validate:"min=0,max=5"`
	SessionCount int       `json:"session_count" validate:"min=0"`
	AvatarPNG    []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FullName returns "First Last" for display and text matching.
func (p *Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Departments is the closed set of departments a profile may belong to.
var Departments = []string{
	"Computer Science",
	"Engineering",
	"Business",
	"Marketing",
	"Design",
	"Data Science",
	"Product Management",
	"Sales",
	"Finance",
	"Operations",
}

// AvailabilityOptions is the closed set of availability descriptors.
var AvailabilityOptions = []string{
	"Weekday Mornings",
	"Weekday Afternoons",
	"Weekday Evenings",
	"Weekend Mornings",
	"Weekend Afternoons",
	"Weekend Evenings",
	"Flexible",
}

// ValidDepartment reports whether d is one of the known departments.
func ValidDepartment(d string) bool {
	for _, dept := range Departments {
		if dept == d {
			return true
		}
	}
	return false
}

// ValidAvailability reports whether a is one of the known availability options.
func ValidAvailability(a string) bool {
	for _, opt := range AvailabilityOptions {
		if opt == a {
			return true
		}
	}
	return false
}

// NormalizeSkills trims entries and drops case-insensitive duplicates,
// preserving the first spelling and the original relative order.
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

// ProfileRepository is the profile store contract. The matching core treats
// it as read-only; writes happen only through profile-update operations.
type ProfileRepository interface {
	ListByRole(ctx context.Context, role string) ([]Profile, error)
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
	UpdateAvatar(ctx context.Context, userID string, png []byte) error
}

// ProfileUsecase defines profile self-service operations.
type ProfileUsecase interface {
	GetMyProfile(ctx context.Context, userID string) (*Profile, error)
	UpdateMyProfile(ctx context.Context, profile *Profile) (*Profile, error)
	UpdateAvatar(ctx context.Context, userID string, image []byte) error
}
