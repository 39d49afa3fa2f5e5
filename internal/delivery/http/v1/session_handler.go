package v1

import (
	"net/http"

	"go-mentorship-backend/internal/delivery/http/response"
	"go-mentorship-backend/internal/domain"
	"go-mentorship-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionUC domain.SessionUsecase
}

// NewSessionHandler registers session scheduling routes.
func NewSessionHandler(r *gin.RouterGroup, sessionUC domain.SessionUsecase) {
	handler := &SessionHandler{sessionUC: sessionUC}

	sessions := r.Group("/sessions")
	{
		sessions.GET("", handler.ListMine)
		sessions.PATCH("/:id", handler.Transition)
	}
}

// SessionActionRequest is the payload for session transitions.
type SessionActionRequest struct {
	Action   string `json:"action" binding:"required,oneof=confirm cancel complete reschedule"`
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
}

// ListMine godoc
// @Summary      List own sessions
// @Description  Sessions where the caller is mentor or mentee, ordered by schedule
// @Tags         sessions
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Session}
// @Router       /sessions [get]
// @Security     BearerAuth
func (h *SessionHandler) ListMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	sessions, err := h.sessionUC.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Sessions retrieved", sessions)
}

// Transition godoc
// @Summary      Confirm, cancel, complete or reschedule a session
// @Description  Either party may act; reschedule requires date and time_slot
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "Session ID"
// @Param        body  body  SessionActionRequest  true  "Action"
// @Success      200  {object}  response.Response{data=domain.Session}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /sessions/{id} [patch]
// @Security     BearerAuth
func (h *SessionHandler) Transition(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	sessionID := c.Param("id")

	var req SessionActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	var (
		session *domain.Session
		err     error
	)
	switch req.Action {
	case "confirm":
		session, err = h.sessionUC.Confirm(c.Request.Context(), sessionID, userID)
	case "cancel":
		session, err = h.sessionUC.Cancel(c.Request.Context(), sessionID, userID)
	case "complete":
		session, err = h.sessionUC.Complete(c.Request.Context(), sessionID, userID)
	case "reschedule":
		session, err = h.sessionUC.Reschedule(c.Request.Context(), sessionID, userID, req.Date, req.TimeSlot)
	}
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Session "+session.Status, session)
}
