package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anvaya/crm-backend/internal/api/metrics"
	"github.com/anvaya/crm-backend/internal/core/ports"
)

// LeadHandler handles HTTP requests for leads.
type LeadHandler struct {
	service ports.LeadService
}

func NewLeadHandler(service ports.LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

// bindLead binds and validates the shared create/update payload.
func bindLead(c echo.Context) (leadRequest, error) {
	var req leadRequest
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}

// Create handles POST /leads.
//
// @Summary      Create a lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      leadRequest  true  "Lead details"
// @Success      201   {object}  leadResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /leads [post]
func (h *LeadHandler) Create(c echo.Context) error {
	req, err := bindLead(c)
	if err != nil {
		return err
	}

	lead, err := h.service.CreateLead(c.Request().Context(), toSaveLeadInput(req))
	if err != nil {
		return Failure("Failed to create lead", err)
	}

	metrics.LeadsCreatedTotal.WithLabelValues(lead.Source).Inc()
	return c.JSON(http.StatusCreated, toLeadResponse(lead))
}

// List handles GET /leads.
//
// @Summary      List leads
// @Tags         leads
// @Produce      json
// @Param        salesAgent  query     string  false  "Agent name"
// @Param        status      query     string  false  "Lead status"
// @Param        source      query     string  false  "Lead source"
// @Param        tags        query     string  false  "Comma-separated tags; all must match"
// @Success      200         {array}   leadResponse
// @Failure      400         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Failure      500         {object}  errorResponse
// @Router       /leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	leads, err := h.service.ListLeads(c.Request().Context(), ports.ListLeadsInput{
		SalesAgentName: c.QueryParam("salesAgent"),
		Status:         c.QueryParam("status"),
		Source:         c.QueryParam("source"),
		Tags:           c.QueryParam("tags"),
	})
	if err != nil {
		return Failure("Failed to fetch leads.", err)
	}
	return c.JSON(http.StatusOK, toLeadResponses(leads))
}

// Get handles GET /lead/:id.
//
// @Summary      Get a lead by id
// @Tags         leads
// @Produce      json
// @Param        id   path      string  true  "Lead id"
// @Success      200  {object}  leadResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /lead/{id} [get]
func (h *LeadHandler) Get(c echo.Context) error {
	lead, err := h.service.GetLead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return Failure("Failed to fetch lead details", err)
	}
	return c.JSON(http.StatusOK, toLeadResponse(lead))
}

// Update handles PUT /leads/:id. All required fields must be supplied.
//
// @Summary      Replace a lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Lead id"
// @Param        body  body      leadRequest  true  "Lead details"
// @Success      200   {object}  leadResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /leads/{id} [put]
func (h *LeadHandler) Update(c echo.Context) error {
	req, err := bindLead(c)
	if err != nil {
		return err
	}

	lead, err := h.service.UpdateLead(c.Request().Context(), c.Param("id"), toSaveLeadInput(req))
	if err != nil {
		return Failure("Failed to update the lead.", err)
	}

	metrics.LeadsUpdatedTotal.WithLabelValues(lead.Status).Inc()
	return c.JSON(http.StatusOK, toLeadResponse(lead))
}

// Delete handles DELETE /leads/:id.
//
// @Summary      Delete a lead
// @Tags         leads
// @Produce      json
// @Param        id   path      string  true  "Lead id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /leads/{id} [delete]
func (h *LeadHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteLead(c.Request().Context(), c.Param("id")); err != nil {
		return Failure("Failed to delete a lead.", err)
	}

	metrics.LeadsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Lead deleted successfully."})
}
