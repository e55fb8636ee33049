package dataset

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mountainpath/nifty-dashboard/pkg/constants"
)

// Bundle is the complete dataset the dashboard serves. It is assembled once
// at startup and treated as read-only afterwards, so handlers share it
// without locking.
type Bundle struct {
	FiveYear    []FiveYearRow  `json:"five_year"`
	Quarterly   []QuarterRow   `json:"quarterly"`
	Sectors     []SectorRow    `json:"sectors"`
	Downgrades  []DowngradeRow `json:"downgrades"`
	Scenarios   []Scenario     `json:"scenarios"`
	Sources     []Source       `json:"sources"`
	DataUpdated string         `json:"data_updated"`
}

// Load assembles the bundle from the hard-coded tables and runs the
// integrity checks before handing it out.
func Load(logger *zap.Logger) (*Bundle, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	bundle := &Bundle{
		FiveYear:    FiveYear(),
		Quarterly:   Quarterly(),
		Sectors:     Sectors(),
		Downgrades:  Downgrades(),
		Scenarios:   Scenarios(),
		Sources:     Sources(),
		DataUpdated: constants.DataUpdated,
	}
	if err := NewDataValidator(logger).ValidateBundle(bundle); err != nil {
		return nil, fmt.Errorf("dataset integrity check failed: %w", err)
	}
	logger.Debug("datasets loaded",
		zap.String("op", "dataset.Load"),
		zap.Int("fiveYearRows", len(bundle.FiveYear)),
		zap.Int("quarterlyRows", len(bundle.Quarterly)),
		zap.Int("sectors", len(bundle.Sectors)),
		zap.Int("downgradePoints", len(bundle.Downgrades)),
		zap.Int("scenarios", len(bundle.Scenarios)),
		zap.String("dataUpdated", bundle.DataUpdated),
	)
	return bundle, nil
}
