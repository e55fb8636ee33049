package dataset

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/mountainpath/nifty-dashboard/pkg/constants"
	"github.com/mountainpath/nifty-dashboard/pkg/fiscal"
	"github.com/mountainpath/nifty-dashboard/pkg/mathutil"
)

// Expected table shapes. A release that changes a table must update these.
const (
	expectedFiveYearRows  = 5
	expectedQuarterlyRows = 3
	expectedSectorRows    = 10
	expectedDowngradeRows = 6
	expectedScenarios     = 3
)

var knownStatuses = map[Status]bool{
	StatusSlowing:     true,
	StatusCrisis:      true,
	StatusStabilizing: true,
	StatusStrong:      true,
	StatusMixed:       true,
	StatusWeakening:   true,
	StatusDeclining:   true,
	StatusExceptional: true,
}

// DataValidator runs the load-time integrity checks over the hard-coded
// tables: struct-tag bounds plus the cross-row checks the tags cannot express.
type DataValidator struct {
	validate *validator.Validate
	logger   *zap.Logger
}

// NewDataValidator creates a validator for the dataset bundle.
func NewDataValidator(logger *zap.Logger) *DataValidator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DataValidator{
		validate: validator.New(),
		logger:   logger,
	}
}

// ValidateBundle checks every table in the bundle and returns the first
// failure found.
func (v *DataValidator) ValidateBundle(b *Bundle) error {
	if err := v.validateFiveYear(b.FiveYear); err != nil {
		return fmt.Errorf("five-year table: %w", err)
	}
	if err := v.validateQuarterly(b.Quarterly); err != nil {
		return fmt.Errorf("quarterly table: %w", err)
	}
	if err := v.validateSectors(b.Sectors); err != nil {
		return fmt.Errorf("sector table: %w", err)
	}
	if err := v.validateDowngrades(b.Downgrades); err != nil {
		return fmt.Errorf("downgrade table: %w", err)
	}
	if err := v.validateScenarios(b.Scenarios); err != nil {
		return fmt.Errorf("scenario set: %w", err)
	}
	if err := v.validateSources(b.Sources); err != nil {
		return fmt.Errorf("source registry: %w", err)
	}
	v.logger.Debug("dataset integrity checks passed",
		zap.String("op", "dataset.ValidateBundle"),
	)
	return nil
}

func (v *DataValidator) validateFiveYear(rows []FiveYearRow) error {
	if len(rows) != expectedFiveYearRows {
		return fmt.Errorf("%w: got %d, expected %d", ErrRowCount, len(rows), expectedFiveYearRows)
	}
	for _, row := range rows {
		if err := v.validate.Struct(row); err != nil {
			return fmt.Errorf("row %s: %w", row.FiscalYear, err)
		}
	}
	return nil
}

func (v *DataValidator) validateQuarterly(rows []QuarterRow) error {
	if len(rows) != expectedQuarterlyRows {
		return fmt.Errorf("%w: got %d, expected %d", ErrRowCount, len(rows), expectedQuarterlyRows)
	}
	prev := 0
	for _, row := range rows {
		if err := v.validate.Struct(row); err != nil {
			return fmt.Errorf("row %s: %w", row.Quarter, err)
		}
		quarter, _, err := fiscal.ParseQuarterLabel(row.Quarter)
		if err != nil {
			return err
		}
		if quarter <= prev {
			return fmt.Errorf("%w: %s follows Q%d", ErrQuarterOrder, row.Quarter, prev)
		}
		prev = quarter
	}
	return nil
}

func (v *DataValidator) validateSectors(rows []SectorRow) error {
	if len(rows) != expectedSectorRows {
		return fmt.Errorf("%w: got %d, expected %d", ErrRowCount, len(rows), expectedSectorRows)
	}
	totalWeight := 0.0
	for _, row := range rows {
		if err := v.validate.Struct(row); err != nil {
			return fmt.Errorf("sector %s: %w", row.Name, err)
		}
		if !knownStatuses[row.Status] {
			return fmt.Errorf("%w: sector %s has status %q", ErrUnknownStatus, row.Name, row.Status)
		}
		totalWeight += row.Weight
	}
	if !mathutil.WithinTolerance(totalWeight, 100, constants.WeightTolerance) {
		return fmt.Errorf("%w: got %.2f", ErrWeightSum, totalWeight)
	}
	return nil
}

func (v *DataValidator) validateDowngrades(rows []DowngradeRow) error {
	if len(rows) != expectedDowngradeRows {
		return fmt.Errorf("%w: got %d, expected %d", ErrRowCount, len(rows), expectedDowngradeRows)
	}
	var prevDate time.Time
	for _, row := range rows {
		if err := v.validate.Struct(row); err != nil {
			return fmt.Errorf("row %s: %w", row.Period, err)
		}
		period, err := fiscal.PeriodFromDate(row.Date)
		if err != nil {
			return err
		}
		if period != row.Period {
			return fmt.Errorf("%w: %s carries period %s", ErrPeriodMismatch, row.Date, row.Period)
		}
		date, err := time.Parse(constants.DateLayout, row.Date)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", row.Date, err)
		}
		if !prevDate.IsZero() && !date.After(prevDate) {
			return fmt.Errorf("%w: %s does not follow %s", ErrDateOrder, row.Date, prevDate.Format(constants.DateLayout))
		}
		prevDate = date
	}
	return nil
}

func (v *DataValidator) validateScenarios(scenarios []Scenario) error {
	if len(scenarios) != expectedScenarios {
		return fmt.Errorf("%w: got %d, expected %d", ErrRowCount, len(scenarios), expectedScenarios)
	}
	totalProbability := 0.0
	for _, scenario := range scenarios {
		if err := v.validate.Struct(scenario); err != nil {
			return fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
		totalProbability += scenario.Probability
	}
	if !mathutil.WithinTolerance(totalProbability, 1.0, constants.ProbabilityTolerance) {
		return fmt.Errorf("%w: got %v", ErrProbabilitySum, totalProbability)
	}
	return nil
}

func (v *DataValidator) validateSources(sources []Source) error {
	for _, source := range sources {
		if err := v.validate.Struct(source); err != nil {
			return fmt.Errorf("source %s: %w", source.Key, err)
		}
	}
	return nil
}
