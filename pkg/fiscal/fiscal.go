// Package fiscal provides Indian fiscal-year and quarter labeling helpers.
// Indian fiscal years run April through March, so FY2025 ends March 31, 2025.
package fiscal

import (
	"fmt"
	"time"

	"github.com/mountainpath/nifty-dashboard/pkg/constants"
)

// PeriodLayout is the format of downgrade-trajectory period labels, e.g. "Sep-24".
const PeriodLayout = "Jan-06"

// YearLabel returns the long label for a fiscal year, e.g. "FY2025".
func YearLabel(year int) string {
	return fmt.Sprintf("FY%d", year)
}

// ShortYearLabel returns the two-digit label for a fiscal year, e.g. "FY25".
func ShortYearLabel(year int) string {
	return fmt.Sprintf("FY%02d", year%100)
}

// ForwardShortLabels returns the n fiscal-year labels following base, in the
// short form used by scenario tables. Base 2024 with n 3 yields FY25, FY26, FY27.
func ForwardShortLabels(base, n int) []string {
	labels := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		labels = append(labels, ShortYearLabel(base+i))
	}
	return labels
}

// QuarterLabel returns the label for a fiscal quarter, e.g. "Q3FY25".
func QuarterLabel(quarter, year int) string {
	return fmt.Sprintf("Q%d%s", quarter, ShortYearLabel(year))
}

// ParseQuarterLabel parses a label like "Q3FY25" into its quarter and fiscal year.
func ParseQuarterLabel(label string) (quarter, year int, err error) {
	var yy int
	if _, err := fmt.Sscanf(label, "Q%1dFY%2d", &quarter, &yy); err != nil {
		return 0, 0, fmt.Errorf("invalid quarter label %q: %w", label, err)
	}
	if quarter < 1 || quarter > 4 {
		return 0, 0, fmt.Errorf("invalid quarter label %q: quarter %d out of range", label, quarter)
	}
	return quarter, 2000 + yy, nil
}

// PeriodFromDate converts a dataset date like "Sep 30, 2024" into the
// month-period label used by the downgrade trajectory, "Sep-24".
func PeriodFromDate(date string) (string, error) {
	t, err := time.Parse(constants.DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t.Format(PeriodLayout), nil
}
