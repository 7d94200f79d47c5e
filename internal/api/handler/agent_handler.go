package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anvaya/crm-backend/internal/api/metrics"
	"github.com/anvaya/crm-backend/internal/core/ports"
)

// AgentHandler handles HTTP requests for sales agents.
type AgentHandler struct {
	service ports.AgentService
}

func NewAgentHandler(service ports.AgentService) *AgentHandler {
	return &AgentHandler{service: service}
}

// Create handles POST /agents.
//
// @Summary      Create a sales agent
// @Tags         agents
// @Accept       json
// @Produce      json
// @Param        body  body      createAgentRequest  true  "Agent details"
// @Success      201   {object}  domain.SalesAgent
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /agents [post]
func (h *AgentHandler) Create(c echo.Context) error {
	var req createAgentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	agent, err := h.service.CreateAgent(c.Request().Context(), ports.CreateAgentInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return Failure("Failed to create sales agent", err)
	}

	metrics.AgentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, agent)
}

// List handles GET /agents.
//
// @Summary      List sales agents
// @Tags         agents
// @Produce      json
// @Success      200  {array}   domain.SalesAgent
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /agents [get]
func (h *AgentHandler) List(c echo.Context) error {
	agents, err := h.service.ListAgents(c.Request().Context())
	if err != nil {
		return Failure("Failed to fetch sales agents.", err)
	}
	return c.JSON(http.StatusOK, agents)
}
