package http

import (
	"net/http"

	"golang-trade-pilot/internal/dto"
	"golang-trade-pilot/internal/entity"
	"golang-trade-pilot/internal/service"
	"golang-trade-pilot/pkg/logger"

	"github.com/labstack/echo/v4"
)

// TradePlanHandler handles HTTP requests for trade plans and monitoring.
type TradePlanHandler struct {
	tradePlanService service.TradePlanService
	monitorService   service.MonitorService
	logger           *logger.Logger
}

// NewTradePlanHandler creates a new TradePlanHandler.
func NewTradePlanHandler(tradePlanService service.TradePlanService, monitorService service.MonitorService, logger *logger.Logger) *TradePlanHandler {
	return &TradePlanHandler{tradePlanService: tradePlanService, monitorService: monitorService, logger: logger}
}

// RegisterRoutes registers the trade plan routes to the Echo group.
func (h *TradePlanHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/evaluate/:code", h.Evaluate)
	g.GET("/monitor", h.MonitorActive)
	g.GET("", h.ListPlans)
	g.POST("", h.CreatePlan)
	g.GET("/:id", h.GetPlan)
	g.POST("/:id/activate", h.Activate)
	g.POST("/:id/close", h.Close)
	g.DELETE("/:id", h.Delete)
	g.GET("/:id/monitor", h.Monitor)
}

// Evaluate godoc
// @Summary Evaluate a stock
// @Description Passes through the external evaluation used to seed a plan
// @Tags trade-plans
// @Produce json
// @Param code path string true "Stock code"
// @Success 200 {object} dto.EvaluationResult
// @Failure 503 {object} dto.ErrorResponse
// @Router /trade-plans/evaluate/{code} [get]
func (h *TradePlanHandler) Evaluate(c echo.Context) error {
	result, err := h.tradePlanService.EvaluateStock(c.Request().Context(), c.Param("code"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, result)
}

// ListPlans godoc
// @Summary List trade plans, newest first
// @Tags trade-plans
// @Produce json
// @Param status query string false "planning, active, completed or cancelled"
// @Success 200 {array} dto.TradePlanResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /trade-plans [get]
func (h *TradePlanHandler) ListPlans(c echo.Context) error {
	var status *entity.PlanStatus
	if s := c.QueryParam("status"); s != "" {
		ps := entity.PlanStatus(s)
		status = &ps
	}
	plans, err := h.tradePlanService.ListPlans(c.Request().Context(), status)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	out := make([]dto.TradePlanResponse, 0, len(plans))
	for i := range plans {
		out = append(out, dto.NewTradePlanResponse(&plans[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// CreatePlan godoc
// @Summary Create a trade plan
// @Description Evaluates the stock and stores a plan in planning
// @Tags trade-plans
// @Accept json
// @Produce json
// @Param plan body dto.CreatePlanRequest true "Plan overrides"
// @Success 201 {object} dto.CreatePlanResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /trade-plans [post]
func (h *TradePlanHandler) CreatePlan(c echo.Context) error {
	var req dto.CreatePlanRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}
	plan, evaluation, err := h.tradePlanService.CreatePlan(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, dto.CreatePlanResult{
		Plan:       dto.NewTradePlanResponse(plan),
		Evaluation: *evaluation,
	})
}

// GetPlan godoc
// @Summary Get a trade plan
// @Tags trade-plans
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} dto.TradePlanResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /trade-plans/{id} [get]
func (h *TradePlanHandler) GetPlan(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid plan ID")
	}
	plan, err := h.tradePlanService.GetPlan(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, dto.NewTradePlanResponse(plan))
}

// Activate godoc
// @Summary Activate a plan
// @Description Records the actual entry. Only plans in planning can be activated.
// @Tags trade-plans
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Param entry body dto.ActivatePlanRequest true "Entry fill"
// @Success 200 {object} dto.TradePlanResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /trade-plans/{id}/activate [post]
func (h *TradePlanHandler) Activate(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid plan ID")
	}
	var req dto.ActivatePlanRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}
	plan, err := h.tradePlanService.Activate(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, dto.NewTradePlanResponse(plan))
}

// Close godoc
// @Summary Close a plan
// @Tags trade-plans
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Param outcome body dto.ClosePlanRequest true "completed or cancelled"
// @Success 200 {object} dto.TradePlanResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /trade-plans/{id}/close [post]
func (h *TradePlanHandler) Close(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid plan ID")
	}
	var req dto.ClosePlanRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}
	plan, err := h.tradePlanService.Close(c.Request().Context(), id, req.Outcome)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, dto.NewTradePlanResponse(plan))
}

// Delete godoc
// @Summary Delete a plan
// @Tags trade-plans
// @Param id path int true "Plan ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /trade-plans/{id} [delete]
func (h *TradePlanHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid plan ID")
	}
	if err := h.tradePlanService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Monitor godoc
// @Summary Monitor an active plan
// @Description Advisory only. The plan status is never changed.
// @Tags trade-plans
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} dto.MonitorResult
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /trade-plans/{id}/monitor [get]
func (h *TradePlanHandler) Monitor(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid plan ID")
	}
	result, err := h.monitorService.Monitor(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, result)
}

// MonitorActive godoc
// @Summary Monitor every active plan
// @Tags trade-plans
// @Produce json
// @Success 200 {array} dto.MonitorBatchItem
// @Router /trade-plans/monitor [get]
func (h *TradePlanHandler) MonitorActive(c echo.Context) error {
	items, err := h.monitorService.MonitorActive(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, items)
}
