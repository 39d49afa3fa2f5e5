package usecase_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"testing"

	"go-mentorship-backend/internal/domain"
	"go-mentorship-backend/internal/repository/memory"
	"go-mentorship-backend/internal/usecase"
	"go-mentorship-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func identityCtx(userID string) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserID, userID)
}

func newProfileFixture() (domain.ProfileUsecase, domain.ProfileRepository) {
	repo := memory.NewProfileRepository()
	repo.Seed(mentorProfile(), menteeProfile())

	validate := validator.New()
	validation.RegisterValidators(validate)
	return usecase.NewProfileUsecase(repo, validate), repo
}

func TestGetMyProfile(t *testing.T) {
	t.Run("Owner reads their profile", func(t *testing.T) {
		uc, _ := newProfileFixture()

		profile, err := uc.GetMyProfile(identityCtx(mentorID), mentorID)
		assert.NoError(t, err)
		assert.Equal(t, "Sarah Chen", profile.FullName())
	})

	t.Run("Reading someone else's profile is forbidden", func(t *testing.T) {
		uc, _ := newProfileFixture()

		_, err := uc.GetMyProfile(identityCtx(menteeID), mentorID)
		assertAppError(t, err, http.StatusForbidden)
	})

	t.Run("Unauthenticated context is rejected", func(t *testing.T) {
		uc, _ := newProfileFixture()

		_, err := uc.GetMyProfile(context.Background(), mentorID)
		assertAppError(t, err, http.StatusUnauthorized)
	})
}

func TestUpdateMyProfile(t *testing.T) {
	t.Run("Payload user id is overridden by the authenticated identity", func(t *testing.T) {
		uc, repo := newProfileFixture()

		update := mentorProfile()
		update.UserID = menteeID // spoof attempt
		update.Bio = "15 years building distributed systems"

		got, err := uc.UpdateMyProfile(identityCtx(mentorID), &update)
		assert.NoError(t, err)
		assert.Equal(t, mentorID, got.UserID)

		stored, err := repo.GetByUserID(context.Background(), mentorID)
		assert.NoError(t, err)
		assert.Equal(t, "15 years building distributed systems", stored.Bio)
	})

	t.Run("Skills are deduplicated case-insensitively keeping the first spelling", func(t *testing.T) {
		uc, _ := newProfileFixture()

		update := mentorProfile()
		update.Skills = []string{"React", " react ", "Python", "REACT", "SQL"}

		got, err := uc.UpdateMyProfile(identityCtx(mentorID), &update)
		assert.NoError(t, err)
		assert.Equal(t, []string{"React", "Python", "SQL"}, got.Skills)
	})

	t.Run("Unknown department fails validation with the field label", func(t *testing.T) {
		uc, _ := newProfileFixture()

		update := mentorProfile()
		update.Department = "Astrology"

		_, err := uc.UpdateMyProfile(identityCtx(mentorID), &update)
		appErr := assertAppError(t, err, http.StatusBadRequest)
		assert.Contains(t, appErr.Message, "Department")
	})

	t.Run("Missing required fields fail validation", func(t *testing.T) {
		uc, _ := newProfileFixture()

		update := mentorProfile()
		update.FirstName = ""

		_, err := uc.UpdateMyProfile(identityCtx(mentorID), &update)
		appErr := assertAppError(t, err, http.StatusBadRequest)
		assert.Contains(t, appErr.Message, "First Name")
	})
}

func TestUpdateAvatar(t *testing.T) {
	encodePNG := func(t *testing.T, w, h int) []byte {
		t.Helper()
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		for x := 0; x < w; x++ {
			for y := 0; y < h; y++ {
				img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
			}
		}
		var buf bytes.Buffer
		assert.NoError(t, png.Encode(&buf, img))
		return buf.Bytes()
	}

	t.Run("Uploads are normalized to a square PNG thumbnail", func(t *testing.T) {
		uc, repo := newProfileFixture()

		err := uc.UpdateAvatar(identityCtx(mentorID), mentorID, encodePNG(t, 800, 600))
		assert.NoError(t, err)

		stored, err := repo.GetByUserID(context.Background(), mentorID)
		assert.NoError(t, err)
		decoded, format, err := image.Decode(bytes.NewReader(stored.AvatarPNG))
		assert.NoError(t, err)
		assert.Equal(t, "png", format)
		assert.Equal(t, 256, decoded.Bounds().Dx())
		assert.Equal(t, 256, decoded.Bounds().Dy())
	})

	t.Run("Non-image payloads are rejected", func(t *testing.T) {
		uc, _ := newProfileFixture()

		err := uc.UpdateAvatar(identityCtx(mentorID), mentorID, []byte("not an image"))
		assertAppError(t, err, http.StatusBadRequest)
	})

	t.Run("Updating another user's avatar is rejected", func(t *testing.T) {
		uc, _ := newProfileFixture()

		err := uc.UpdateAvatar(identityCtx(menteeID), mentorID, encodePNG(t, 64, 64))
		assertAppError(t, err, http.StatusUnauthorized)
	})
}
