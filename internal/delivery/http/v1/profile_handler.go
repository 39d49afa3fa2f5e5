package v1

import (
	"io"
	"net/http"

	"go-mentorship-backend/internal/delivery/http/response"
	"go-mentorship-backend/internal/domain"
	"go-mentorship-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// Avatar uploads above this size are rejected before decoding.
const maxAvatarBytes = 5 << 20

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

// NewProfileHandler registers profile self-service routes.
func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profiles := r.Group("/profiles")
	{
		profiles.GET("/me", handler.GetMyProfile)
		profiles.PUT("/me", handler.UpdateMyProfile)
		profiles.POST("/me/avatar", handler.UploadAvatar)
	}
}

// UpdateProfileRequest is the payload for profile updates.
type UpdateProfileRequest struct {
	FirstName    string   `json:"first_name" binding:"required"`
	LastName     string   `json:"last_name" binding:"required"`
	Title        string   `json:"title"`
	Department   string   `json:"department" binding:"required"`
	Skills       []string `json:"skills"`
	Availability string   `json:"availability"`
	Bio          string   `json:"bio"`
	Company      string   `json:"company"`
	Achievements []string `json:"achievements"`
}

// GetMyProfile godoc
// @Summary      Get own profile
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      404  {object}  response.Response
// @Router       /profiles/me [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.profileUC.GetMyProfile(contextWithIdentity(c), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateMyProfile godoc
// @Summary      Update own profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body  body  UpdateProfileRequest  true  "Profile fields"
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      400  {object}  response.Response
// @Router       /profiles/me [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := &domain.Profile{
		UserID:       userID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		Title:        req.Title,
		Department:   req.Department,
		Skills:       req.Skills,
		Availability: req.Availability,
		Bio:          req.Bio,
		Company:      req.Company,
		Achievements: req.Achievements,
	}

	updated, err := h.profileUC.UpdateMyProfile(contextWithIdentity(c), profile)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", updated)
}

// UploadAvatar godoc
// @Summary      Upload a profile photo
// @Description  Accepts a PNG or JPEG body, resized server-side
// @Tags         profiles
// @Accept       octet-stream
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profiles/me/avatar [post]
// @Security     BearerAuth
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxAvatarBytes+1))
	if err != nil {
		c.Error(apperror.BadRequest("Could not read upload"))
		return
	}
	if len(body) > maxAvatarBytes {
		c.Error(apperror.BadRequest("Avatar must be smaller than 5 MB"))
		return
	}

	if err := h.profileUC.UpdateAvatar(contextWithIdentity(c), userID, body); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Avatar updated", nil)
}
