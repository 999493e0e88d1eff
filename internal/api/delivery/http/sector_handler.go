package http

import (
	"net/http"

	"golang-trade-pilot/internal/service"
	"golang-trade-pilot/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SectorHandler serves sector ranking and rotation.
type SectorHandler struct {
	sectorService service.SectorService
	logger        *logger.Logger
}

func NewSectorHandler(sectorService service.SectorService, logger *logger.Logger) *SectorHandler {
	return &SectorHandler{sectorService: sectorService, logger: logger}
}

func (h *SectorHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/ranking", h.Ranking)
	g.GET("/rotation", h.Rotation)
}

// Ranking godoc
// @Summary Rank sectors by return
// @Tags sectors
// @Produce json
// @Param period query string false "5d, 20d or 60d"
// @Success 200 {array} dto.RankedSector
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /sectors/ranking [get]
func (h *SectorHandler) Ranking(c echo.Context) error {
	ranked, err := h.sectorService.Ranking(c.Request().Context(), c.QueryParam("period"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, ranked)
}

// Rotation godoc
// @Summary Sector rotation report
// @Tags sectors
// @Produce json
// @Param period query string false "5d, 20d or 60d"
// @Success 200 {object} dto.RotationReport
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /sectors/rotation [get]
func (h *SectorHandler) Rotation(c echo.Context) error {
	report, err := h.sectorService.RotationReport(c.Request().Context(), c.QueryParam("period"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, report)
}
