package v1

import (
	"net/http"

	"go-mentorship-backend/internal/delivery/http/response"
	"go-mentorship-backend/internal/domain"
	"go-mentorship-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requestUC domain.RequestUsecase
}

// NewRequestHandler registers mentorship request routes.
func NewRequestHandler(r *gin.RouterGroup, requestUC domain.RequestUsecase) {
	handler := &RequestHandler{requestUC: requestUC}

	requests := r.Group("/requests")
	{
		requests.POST("", handler.Submit)
		requests.GET("", handler.List)
		requests.PATCH("/:id", handler.Respond)
	}
}

// RespondRequest is the payload for answering a mentorship request.
type RespondRequest struct {
	Action string `json:"action" binding:"required,oneof=accept decline"`
}

// Submit godoc
// @Summary      Send a mentorship request
// @Description  Creates a pending request addressed to a mentor
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body  domain.SubmitRequestInput  true  "Request fields"
// @Success      201  {object}  response.Response{data=domain.MentorshipRequest}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /requests [post]
// @Security     BearerAuth
func (h *RequestHandler) Submit(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var in domain.SubmitRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	req, err := h.requestUC.Submit(c.Request.Context(), userID, in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Mentorship request sent", req)
}

// List godoc
// @Summary      List own mentorship requests
// @Description  box=inbox returns requests addressed to the caller (mentor view); box=outbox returns requests the caller sent
// @Tags         requests
// @Produce      json
// @Param        box  query  string  false  "inbox or outbox"  default(outbox)
// @Success      200  {object}  response.Response{data=[]domain.MentorshipRequest}
// @Router       /requests [get]
// @Security     BearerAuth
func (h *RequestHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var (
		requests []domain.MentorshipRequest
		err      error
	)
	switch c.DefaultQuery("box", "outbox") {
	case "inbox":
		requests, err = h.requestUC.ListInbox(c.Request.Context(), userID)
	case "outbox":
		requests, err = h.requestUC.ListOutbox(c.Request.Context(), userID)
	default:
		c.Error(apperror.BadRequest("box must be inbox or outbox"))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Requests retrieved", requests)
}

// Respond godoc
// @Summary      Accept or decline a mentorship request
// @Description  Only the requested mentor may respond; accepting schedules a session
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id    path  string          true  "Request ID"
// @Param        body  body  RespondRequest  true  "accept or decline"
// @Success      200  {object}  response.Response{data=domain.MentorshipRequest}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /requests/{id} [patch]
// @Security     BearerAuth
func (h *RequestHandler) Respond(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	requestID := c.Param("id")

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	var (
		updated *domain.MentorshipRequest
		err     error
	)
	if req.Action == "accept" {
		updated, err = h.requestUC.Accept(c.Request.Context(), requestID, userID)
	} else {
		updated, err = h.requestUC.Decline(c.Request.Context(), requestID, userID)
	}
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Request "+updated.Status, updated)
}
