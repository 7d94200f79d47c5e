package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anvaya/crm-backend/internal/api/metrics"
	"github.com/anvaya/crm-backend/internal/core/ports"
)

// CommentHandler handles comments scoped to a lead.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create handles POST /leads/:id/comments. Any author in the body is ignored.
//
// @Summary      Comment on a lead
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Lead id"
// @Param        body  body      createCommentRequest  true  "Comment"
// @Success      201   {object}  commentResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /leads/{id}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	comment, err := h.service.AddComment(c.Request().Context(), c.Param("id"), req.CommentText)
	if err != nil {
		return Failure("Failed to create a comment.", err)
	}

	metrics.CommentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// List handles GET /leads/:id/comments.
//
// @Summary      List a lead's comments
// @Tags         comments
// @Produce      json
// @Param        id   path      string  true  "Lead id"
// @Success      200  {array}   commentResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /leads/{id}/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.service.ListComments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return Failure("Failed to fetch comments", err)
	}

	resp := make([]commentResponse, 0, len(comments))
	for _, cm := range comments {
		resp = append(resp, toCommentResponse(cm))
	}
	return c.JSON(http.StatusOK, resp)
}
