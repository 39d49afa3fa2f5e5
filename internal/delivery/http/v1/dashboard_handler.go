package v1

import (
	"net/http"

	"go-mentorship-backend/internal/delivery/http/response"
	"go-mentorship-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	requestUC domain.RequestUsecase
	sessionUC domain.SessionUsecase
}

// NewDashboardHandler registers the dashboard summary route.
func NewDashboardHandler(r *gin.RouterGroup, requestUC domain.RequestUsecase, sessionUC domain.SessionUsecase) {
	handler := &DashboardHandler{requestUC: requestUC, sessionUC: sessionUC}
	r.GET("/dashboard", handler.Summary)
}

// DashboardSummary aggregates what the dashboard screen shows in one call.
type DashboardSummary struct {
	PendingRequests  []domain.MentorshipRequest `json:"pending_requests"`
	UpcomingSessions []domain.Session           `json:"upcoming_sessions"`
	SessionsTotal    int                        `json:"sessions_total"`
}

// Summary godoc
// @Summary      Dashboard overview
// @Description  Pending requests addressed to (mentor) or sent by (mentee) the caller, plus upcoming sessions
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=DashboardSummary}
// @Router       /dashboard [get]
// @Security     BearerAuth
func (h *DashboardHandler) Summary(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	var (
		requests []domain.MentorshipRequest
		err      error
	)
	if role == domain.RoleMentor {
		requests, err = h.requestUC.ListInbox(c.Request.Context(), userID)
	} else {
		requests, err = h.requestUC.ListOutbox(c.Request.Context(), userID)
	}
	if err != nil {
		c.Error(err)
		return
	}

	pending := requests[:0:0]
	for _, req := range requests {
		if req.Status == domain.RequestStatusPending {
			pending = append(pending, req)
		}
	}

	sessions, err := h.sessionUC.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	upcoming := sessions[:0:0]
	for _, s := range sessions {
		if s.Status == domain.SessionStatusPending || s.Status == domain.SessionStatusConfirmed {
			upcoming = append(upcoming, s)
		}
	}

	response.Success(c, http.StatusOK, "Dashboard retrieved", DashboardSummary{
		PendingRequests:  pending,
		UpcomingSessions: upcoming,
		SessionsTotal:    len(sessions),
	})
}
