package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anvaya/crm-backend/internal/api/metrics"
	"github.com/anvaya/crm-backend/internal/core/ports"
)

type TagHandler struct {
	service ports.TagService
}

func NewTagHandler(service ports.TagService) *TagHandler {
	return &TagHandler{service: service}
}

// Create handles POST /tags.
//
// @Summary      Create a tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        body  body      createTagRequest  true  "Tag"
// @Success      201   {object}  domain.Tag
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /tags [post]
func (h *TagHandler) Create(c echo.Context) error {
	var req createTagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tag, err := h.service.CreateTag(c.Request().Context(), req.Name)
	if err != nil {
		return Failure("Failed to create tags.", err)
	}

	metrics.TagsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, tag)
}

// List handles GET /tags.
//
// @Summary      List tags
// @Tags         tags
// @Produce      json
// @Success      200  {array}   domain.Tag
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /tags [get]
func (h *TagHandler) List(c echo.Context) error {
	tags, err := h.service.ListTags(c.Request().Context())
	if err != nil {
		return Failure("Failed to fetch tags.", err)
	}
	return c.JSON(http.StatusOK, tags)
}
