package dto

type SectorPeriod string

const (
	SectorPeriod5D  SectorPeriod = "5d"
	SectorPeriod20D SectorPeriod = "20d"
	SectorPeriod60D SectorPeriod = "60d"
)

// Days returns the trading day horizon of the period.
func (p SectorPeriod) Days() int {
	switch p {
	case SectorPeriod5D:
		return 5
	case SectorPeriod20D:
		return 20
	case SectorPeriod60D:
		return 60
	}
	return 0
}

// Return picks the snapshot return matching the period.
func (p SectorPeriod) Return(s SectorSnapshot) float64 {
	switch p {
	case SectorPeriod5D:
		return s.Change5D
	case SectorPeriod20D:
		return s.Change20D
	default:
		return s.Change60D
	}
}

// SetReturn stores r as the snapshot return for the period.
func (p SectorPeriod) SetReturn(s *SectorSnapshot, r float64) {
	switch p {
	case SectorPeriod5D:
		s.Change5D = r
	case SectorPeriod20D:
		s.Change20D = r
	default:
		s.Change60D = r
	}
}

// RankedSector is a snapshot with its 1-based rank for the requested period.
type RankedSector struct {
	Rank   int     `json:"rank"`
	Return float64 `json:"return"`
	SectorSnapshot
}

// SwitchSuggestion proposes rotating out of an overheated sector into a low one.
type SwitchSuggestion struct {
	FromSector string `json:"from_sector"`
	ToSector   string `json:"to_sector"`
	Reason     string `json:"reason"`
}

// RotationReport bundles the ranking for Period with the high/low classification and switch
// suggestions computed on ClassifyPeriod returns.
type RotationReport struct {
	Period           SectorPeriod       `json:"period"`
	ClassifyPeriod   SectorPeriod       `json:"classify_period"`
	HighThreshold    float64            `json:"high_threshold"`
	LowThreshold     float64            `json:"low_threshold"`
	Ranking          []RankedSector     `json:"ranking"`
	HighPositions    []RankedSector     `json:"high_positions"`
	LowOpportunities []RankedSector     `json:"low_opportunities"`
	Suggestions      []SwitchSuggestion `json:"switch_suggestions"`
}
