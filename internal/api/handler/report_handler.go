package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anvaya/crm-backend/internal/api/metrics"
	"github.com/anvaya/crm-backend/internal/core/ports"
)

// ReportHandler serves the read-only lead reports.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// LastWeek handles GET /report/last-week. It returns every closed lead;
// no date window is applied.
//
// @Summary      Closed leads
// @Tags         reports
// @Produce      json
// @Success      200  {array}   closedLeadResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /report/last-week [get]
func (h *ReportHandler) LastWeek(c echo.Context) error {
	items, err := h.service.ClosedLeads(c.Request().Context())
	if err != nil {
		return Failure("Failed to fetch closed leads.", err)
	}

	resp := make([]closedLeadResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, toClosedLeadResponse(it))
	}
	return c.JSON(http.StatusOK, resp)
}

// Pipeline handles GET /report/pipeline.
//
// @Summary      Open lead count
// @Tags         reports
// @Produce      json
// @Success      200  {object}  pipelineResponse
// @Failure      500  {object}  errorResponse
// @Router       /report/pipeline [get]
func (h *ReportHandler) Pipeline(c echo.Context) error {
	n, err := h.service.PipelineCount(c.Request().Context())
	if err != nil {
		return Failure("Failed to fetch the pipeline leads.", err)
	}

	metrics.PipelineLeads.Set(float64(n))
	return c.JSON(http.StatusOK, pipelineResponse{TotalLeadsInPipeline: n})
}

// ClosedByAgent handles GET /report/closed-by-agent.
//
// @Summary      Closed leads per agent
// @Tags         reports
// @Produce      json
// @Success      200  {array}   agentClosedCountResponse
// @Failure      500  {object}  errorResponse
// @Router       /report/closed-by-agent [get]
func (h *ReportHandler) ClosedByAgent(c echo.Context) error {
	counts, err := h.service.ClosedByAgent(c.Request().Context())
	if err != nil {
		return Failure("Failed to fetch leads closed by agent.", err)
	}

	resp := make([]agentClosedCountResponse, 0, len(counts))
	for _, ac := range counts {
		resp = append(resp, agentClosedCountResponse{AgentName: ac.AgentName, Count: ac.Count})
	}
	return c.JSON(http.StatusOK, resp)
}
