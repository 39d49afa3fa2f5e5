package usecase

import (
	"bytes"
	"context"
	"image"
	_ "image/jpeg"
	"image/png"
	"strings"

	"go-mentorship-backend/internal/domain"
	"go-mentorship-backend/pkg/apperror"
	"go-mentorship-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"golang.org/x/image/draw"
)

// Avatars are normalized to a small square PNG before storage.
const avatarSize = 256

type profileUsecase struct {
	repo     domain.ProfileRepository
	validate *validator.Validate
}

func NewProfileUsecase(repo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (uc *profileUsecase) GetMyProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	// Ownership check: the caller can only read their own profile
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only view your own profile")
	}

	profile, err := uc.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return profile, nil
}

func (uc *profileUsecase) UpdateMyProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	// Force the UserID to the authenticated user so nobody can update
	// another profile through the payload
	profile.UserID = ctxUserID

	// Skills are deduplicated case-insensitively at write time, keeping the
	// first spelling
	profile.Skills = domain.NormalizeSkills(profile.Skills)

	if err := uc.validate.Struct(profile); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	if err := uc.repo.Update(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// UpdateAvatar decodes an uploaded PNG or JPEG, scales it down to a square
// thumbnail and stores the result on the profile.
func (uc *profileUsecase) UpdateAvatar(ctx context.Context, userID string, img []byte) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" || ctxUserID != userID {
		return apperror.Unauthorized("User not authenticated")
	}

	decoded, _, err := image.Decode(bytes.NewReader(img))
	if err != nil {
		return apperror.BadRequest("Avatar must be a valid PNG or JPEG image")
	}

	thumb := image.NewRGBA(image.Rect(0, 0, avatarSize, avatarSize))
	draw.CatmullRom.Scale(thumb, thumb.Bounds(), decoded, decoded.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return apperror.Internal(err)
	}

	if err := uc.repo.UpdateAvatar(ctx, userID, buf.Bytes()); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
