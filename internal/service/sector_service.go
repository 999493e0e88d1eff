package service

import (
	"context"
	"time"

	"golang-trade-pilot/internal/dto"
	"golang-trade-pilot/internal/repository"
	"golang-trade-pilot/pkg/config"
	"golang-trade-pilot/pkg/logger"
	"golang-trade-pilot/pkg/utils"

	"golang.org/x/sync/errgroup"
)

// SectorService ranks sectors from the price feed snapshots.
type SectorService interface {
	Ranking(ctx context.Context, period string) ([]dto.RankedSector, error)
	RotationReport(ctx context.Context, period string) (*dto.RotationReport, error)
}

type sectorService struct {
	cfg        config.SectorRotation
	log        *logger.Logger
	marketData repository.MarketDataRepository
	now        func() time.Time
}

func NewSectorService(cfg config.SectorRotation, log *logger.Logger, marketData repository.MarketDataRepository) SectorService {
	return &sectorService{cfg: cfg, log: log, marketData: marketData, now: utils.TimeNowCST}
}

func (s *sectorService) defaultPeriod() dto.SectorPeriod {
	if p := dto.SectorPeriod(s.cfg.Period); p.Days() > 0 {
		return p
	}
	return dto.SectorPeriod60D
}

func (s *sectorService) Ranking(ctx context.Context, period string) ([]dto.RankedSector, error) {
	p, err := ParseSectorPeriod(period, s.defaultPeriod())
	if err != nil {
		return nil, err
	}
	sectors, err := s.snapshots(ctx, p)
	if err != nil {
		return nil, err
	}
	return Rank(sectors, p)
}

// snapshots fetches the sector snapshots with returns filled for every given period.
func (s *sectorService) snapshots(ctx context.Context, periods ...dto.SectorPeriod) ([]dto.SectorSnapshot, error) {
	sectors, err := s.marketData.GetSectorSnapshots(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to get sector snapshots", logger.ErrorField(err))
		return nil, err
	}
	for _, p := range periods {
		if err := s.fillMissingReturns(ctx, sectors, p); err != nil {
			return nil, err
		}
	}
	return sectors, nil
}

// fillMissingReturns derives the period return from index history for snapshots that carry an
// index code but no return. A flat sector recomputes to the same zero.
func (s *sectorService) fillMissingReturns(ctx context.Context, sectors []dto.SectorSnapshot, p dto.SectorPeriod) error {
	// calendar window wide enough to hold p.Days() trading sessions
	end := s.now()
	start := end.AddDate(0, 0, -(p.Days()*2 + 14))

	g, gctx := errgroup.WithContext(ctx)
	for i := range sectors {
		if sectors[i].IndexCode == "" || p.Return(sectors[i]) != 0 {
			continue
		}
		sector := &sectors[i]
		g.Go(func() error {
			bars, err := s.marketData.GetPriceHistory(gctx, dto.GetPriceHistoryParam{
				StockCode: sector.IndexCode,
				Start:     start,
				End:       end,
			})
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				s.log.WarnContext(gctx, "Sector history unavailable, keeping feed return",
					logger.StringField("sector", sector.Sector), logger.StringField("index_code", sector.IndexCode), logger.ErrorField(err))
				return nil
			}
			closes := make([]float64, len(bars))
			for j, bar := range bars {
				closes[j] = bar.Close
			}
			if r, ok := SectorReturn(closes, p.Days()); ok {
				p.SetReturn(sector, r)
			}
			return nil
		})
	}
	return g.Wait()
}

// RotationReport ranks sectors by the requested period. High and low classification always uses
// the configured long horizon, which the thresholds are calibrated for.
func (s *sectorService) RotationReport(ctx context.Context, period string) (*dto.RotationReport, error) {
	p, err := ParseSectorPeriod(period, s.defaultPeriod())
	if err != nil {
		return nil, err
	}
	horizon := s.defaultPeriod()

	sectors, err := s.snapshots(ctx, p, horizon)
	if err != nil {
		return nil, err
	}
	ranked, err := Rank(sectors, p)
	if err != nil {
		return nil, err
	}
	byHorizon := ranked
	if horizon != p {
		if byHorizon, err = Rank(sectors, horizon); err != nil {
			return nil, err
		}
	}

	highs, lows := Classify(byHorizon, s.cfg.HighThreshold, s.cfg.LowThreshold)
	return &dto.RotationReport{
		Period:           p,
		ClassifyPeriod:   horizon,
		HighThreshold:    s.cfg.HighThreshold,
		LowThreshold:     s.cfg.LowThreshold,
		Ranking:          ranked,
		HighPositions:    highs,
		LowOpportunities: lows,
		Suggestions:      SwitchSuggestions(highs, lows, s.cfg.MaxSuggestions),
	}, nil
}
