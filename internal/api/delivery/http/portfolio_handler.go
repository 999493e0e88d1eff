package http

import (
	"net/http"

	"golang-trade-pilot/internal/dto"
	"golang-trade-pilot/internal/entity"
	"golang-trade-pilot/internal/service"
	"golang-trade-pilot/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PortfolioHandler handles HTTP requests for positions and trades.
type PortfolioHandler struct {
	portfolioService service.PortfolioService
	logger           *logger.Logger
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService service.PortfolioService, logger *logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService, logger: logger}
}

// RegisterRoutes registers the portfolio routes to the Echo group.
func (h *PortfolioHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/positions", h.ListPositions)
	g.POST("/positions", h.AddPosition)
	g.GET("/positions/:id", h.GetPosition)
	g.GET("/positions/:id/pnl", h.GetPositionPnL)
	g.POST("/positions/:id/sell", h.RecordSale)
	g.GET("/trades", h.ListTrades)
	g.GET("/summary", h.Summary)
}

// ListPositions godoc
// @Summary List positions
// @Tags portfolio
// @Produce json
// @Param status query string false "open or closed"
// @Success 200 {array} entity.Position
// @Failure 400 {object} dto.ErrorResponse
// @Router /portfolio/positions [get]
func (h *PortfolioHandler) ListPositions(c echo.Context) error {
	var status *entity.PositionStatus
	if s := c.QueryParam("status"); s != "" {
		ps := entity.PositionStatus(s)
		status = &ps
	}
	positions, err := h.portfolioService.ListPositions(c.Request().Context(), status)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, positions)
}

// AddPosition godoc
// @Summary Open a position
// @Description Opens a position and records the buy trade
// @Tags portfolio
// @Accept json
// @Produce json
// @Param position body dto.CreatePositionRequest true "Position to open"
// @Success 201 {object} dto.CreatePositionResult
// @Failure 400 {object} dto.ErrorResponse
// @Router /portfolio/positions [post]
func (h *PortfolioHandler) AddPosition(c echo.Context) error {
	var req dto.CreatePositionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}
	res, err := h.portfolioService.AddPosition(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, res)
}

// GetPosition godoc
// @Summary Get a position
// @Tags portfolio
// @Produce json
// @Param id path int true "Position ID"
// @Success 200 {object} entity.Position
// @Failure 404 {object} dto.ErrorResponse
// @Router /portfolio/positions/{id} [get]
func (h *PortfolioHandler) GetPosition(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid position ID")
	}
	position, err := h.portfolioService.GetPosition(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, position)
}

// GetPositionPnL godoc
// @Summary Unrealized P&L of an open position
// @Description pnl is null and status is unknown when no price is available
// @Tags portfolio
// @Produce json
// @Param id path int true "Position ID"
// @Success 200 {object} dto.PositionPnL
// @Failure 404 {object} dto.ErrorResponse
// @Router /portfolio/positions/{id}/pnl [get]
func (h *PortfolioHandler) GetPositionPnL(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid position ID")
	}
	view, err := h.portfolioService.PositionPnL(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, view)
}

// RecordSale godoc
// @Summary Sell from a position
// @Tags portfolio
// @Accept json
// @Produce json
// @Param id path int true "Position ID"
// @Param sale body dto.RecordSaleRequest true "Sale"
// @Success 201 {object} dto.SaleResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /portfolio/positions/{id}/sell [post]
func (h *PortfolioHandler) RecordSale(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid position ID")
	}
	var req dto.RecordSaleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}
	res, err := h.portfolioService.RecordSale(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, res)
}

// ListTrades godoc
// @Summary List the trade log
// @Tags portfolio
// @Produce json
// @Param stock_code query string false "Filter by stock code"
// @Success 200 {array} entity.Trade
// @Router /portfolio/trades [get]
func (h *PortfolioHandler) ListTrades(c echo.Context) error {
	trades, err := h.portfolioService.ListTrades(c.Request().Context(), c.QueryParam("stock_code"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, trades)
}

// Summary godoc
// @Summary Portfolio P&L summary
// @Tags portfolio
// @Produce json
// @Success 200 {object} dto.PortfolioSummary
// @Router /portfolio/summary [get]
func (h *PortfolioHandler) Summary(c echo.Context) error {
	summary, err := h.portfolioService.Summary(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, summary)
}
