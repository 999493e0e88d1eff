package service

import (
	"fmt"
	"sort"

	"golang-trade-pilot/internal/dto"
	"golang-trade-pilot/pkg/apperror"

	"github.com/shopspring/decimal"
)

// ParseSectorPeriod validates a period string. Empty means fallback.
func ParseSectorPeriod(value string, fallback dto.SectorPeriod) (dto.SectorPeriod, error) {
	if value == "" {
		value = string(fallback)
	}
	period := dto.SectorPeriod(value)
	if period.Days() == 0 {
		return "", apperror.Validation("unknown period %q, expected 5d, 20d or 60d", value)
	}
	return period, nil
}

// Rank orders sectors by their return over period, highest first. Equal returns are ordered by
// sector name so the ranking is a total order.
func Rank(sectors []dto.SectorSnapshot, period dto.SectorPeriod) ([]dto.RankedSector, error) {
	if period.Days() == 0 {
		return nil, apperror.Validation("unknown period %q", period)
	}

	ranked := make([]dto.RankedSector, 0, len(sectors))
	for _, s := range sectors {
		ranked = append(ranked, dto.RankedSector{Return: period.Return(s), SectorSnapshot: s})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranksAbove(ranked[i], ranked[j]) })
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked, nil
}

// Classify splits a ranking into sectors above highThreshold and below lowThreshold.
// Both outputs keep ranking order.
func Classify(ranked []dto.RankedSector, highThreshold, lowThreshold float64) (highs, lows []dto.RankedSector) {
	highs = []dto.RankedSector{}
	lows = []dto.RankedSector{}
	for _, r := range ranked {
		switch {
		case r.Return > highThreshold:
			highs = append(highs, r)
		case r.Return < lowThreshold:
			lows = append(lows, r)
		}
	}
	return highs, lows
}

// SwitchSuggestions pairs each high sector, in rank order, with the lowest ranked low sector not
// yet paired. Inputs need not be sorted. maxSuggestions <= 0 means no limit.
func SwitchSuggestions(highs, lows []dto.RankedSector, maxSuggestions int) []dto.SwitchSuggestion {
	suggestions := []dto.SwitchSuggestion{}
	if len(highs) == 0 || len(lows) == 0 {
		return suggestions
	}

	orderedHighs := append([]dto.RankedSector(nil), highs...)
	sort.SliceStable(orderedHighs, func(i, j int) bool { return ranksAbove(orderedHighs[i], orderedHighs[j]) })
	weakestFirst := append([]dto.RankedSector(nil), lows...)
	sort.SliceStable(weakestFirst, func(i, j int) bool { return ranksAbove(weakestFirst[j], weakestFirst[i]) })

	for i, h := range orderedHighs {
		if i >= len(weakestFirst) || (maxSuggestions > 0 && len(suggestions) >= maxSuggestions) {
			break
		}
		l := weakestFirst[i]
		suggestions = append(suggestions, dto.SwitchSuggestion{
			FromSector: h.Sector,
			ToSector:   l.Sector,
			Reason: fmt.Sprintf("%s %+.1f%% PB %.1f -> %s %+.1f%% PB %.1f",
				h.Sector, h.Return, h.AvgPB, l.Sector, l.Return, l.AvgPB),
		})
	}
	return suggestions
}

func ranksAbove(a, b dto.RankedSector) bool {
	if a.Return != b.Return {
		return a.Return > b.Return
	}
	return a.Sector < b.Sector
}

// SectorReturn is the percent change of the last close over the close horizon bars earlier.
// ok is false when the series is too short or the base close is not positive.
func SectorReturn(closes []float64, horizon int) (float64, bool) {
	if horizon <= 0 || len(closes) <= horizon {
		return 0, false
	}
	base := closes[len(closes)-1-horizon]
	if base <= 0 {
		return 0, false
	}
	last := decimal.NewFromFloat(closes[len(closes)-1])
	b := decimal.NewFromFloat(base)
	return round2(last.Sub(b).Div(b).Mul(hundred)), true
}
