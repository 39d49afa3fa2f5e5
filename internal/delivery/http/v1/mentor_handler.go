package v1

import (
	"net/http"

	"go-mentorship-backend/internal/delivery/http/response"
	"go-mentorship-backend/internal/domain"
	"go-mentorship-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MentorHandler struct {
	searchUC domain.SearchUsecase
}

// NewMentorHandler registers the mentor directory routes.
func NewMentorHandler(r *gin.RouterGroup, searchUC domain.SearchUsecase) {
	handler := &MentorHandler{searchUC: searchUC}

	mentors := r.Group("/mentors")
	{
		mentors.GET("", handler.SearchMentors)
		mentors.GET("/skills", handler.ListSkills)
		mentors.GET("/departments", handler.ListDepartments)
	}
}

// SearchMentors godoc
// @Summary      Search the mentor directory
// @Description  Filter mentors by free text, department and skill; optionally sorted
// @Tags         mentors
// @Produce      json
// @Param        search      query  string  false  "Free-text term matched against name and skills"
// @Param        department  query  string  false  "Department filter ('all' for no constraint)"
// @Param        skill       query  string  false  "Skill filter ('all' for no constraint)"
// @Param        sort        query  string  false  "Sort key: rating, sessions or name"
// @Success      200  {object}  response.Response{data=[]domain.Profile}
// @Router       /mentors [get]
// @Security     BearerAuth
func (h *MentorHandler) SearchMentors(c *gin.Context) {
	var q domain.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	mentors, err := h.searchUC.SearchMentors(c.Request.Context(), q)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Mentors retrieved", mentors)
}

// ListSkills godoc
// @Summary      List filterable skills
// @Description  Union of all mentors' skills, for the skill filter dropdown
// @Tags         mentors
// @Produce      json
// @Success      200  {object}  response.Response{data=[]string}
// @Router       /mentors/skills [get]
// @Security     BearerAuth
func (h *MentorHandler) ListSkills(c *gin.Context) {
	skills, err := h.searchUC.AvailableSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills retrieved", skills)
}

// ListDepartments godoc
// @Summary      List departments
// @Tags         mentors
// @Produce      json
// @Success      200  {object}  response.Response{data=[]string}
// @Router       /mentors/departments [get]
// @Security     BearerAuth
func (h *MentorHandler) ListDepartments(c *gin.Context) {
	response.Success(c, http.StatusOK, "Departments retrieved", domain.Departments)
}
