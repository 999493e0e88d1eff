package http

import (
	"net/http"
	"time"

	"golang-trade-pilot/internal/dto"
	"golang-trade-pilot/internal/repository"
	"golang-trade-pilot/pkg/logger"
	"golang-trade-pilot/pkg/utils"

	"github.com/labstack/echo/v4"
)

// MarketHandler exposes the price feed read only.
type MarketHandler struct {
	marketData repository.MarketDataRepository
	logger     *logger.Logger
}

func NewMarketHandler(marketData repository.MarketDataRepository, logger *logger.Logger) *MarketHandler {
	return &MarketHandler{marketData: marketData, logger: logger}
}

func (h *MarketHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/quote/:code", h.Quote)
	g.GET("/history/:code", h.History)
	g.GET("/sentiment", h.Sentiment)
}

// Quote godoc
// @Summary Latest price
// @Tags market
// @Produce json
// @Param code path string true "Stock code"
// @Success 200 {object} dto.Quote
// @Failure 503 {object} dto.ErrorResponse
// @Router /market/quote/{code} [get]
func (h *MarketHandler) Quote(c echo.Context) error {
	quote, err := h.marketData.GetLatestPrice(c.Request().Context(), c.Param("code"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, quote)
}

// History godoc
// @Summary Daily close history, oldest first
// @Tags market
// @Produce json
// @Param code path string true "Stock code"
// @Param start query string false "YYYY-MM-DD"
// @Param end query string false "YYYY-MM-DD"
// @Success 200 {array} dto.PriceBar
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /market/history/{code} [get]
func (h *MarketHandler) History(c echo.Context) error {
	param := dto.GetPriceHistoryParam{StockCode: c.Param("code")}
	var err error
	if param.Start, err = optionalDate(c.QueryParam("start")); err != nil {
		return badRequest(c, "Invalid start date")
	}
	if param.End, err = optionalDate(c.QueryParam("end")); err != nil {
		return badRequest(c, "Invalid end date")
	}

	bars, err := h.marketData.GetPriceHistory(c.Request().Context(), param)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, bars)
}

// Sentiment godoc
// @Summary Market sentiment and fund flows
// @Tags market
// @Produce json
// @Success 200 {object} dto.MarketSentiment
// @Failure 503 {object} dto.ErrorResponse
// @Router /market/sentiment [get]
func (h *MarketHandler) Sentiment(c echo.Context) error {
	sentiment, err := h.marketData.GetMarketSentiment(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, sentiment)
}

func optionalDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return utils.ParseDate(value)
}
