package dataset

import (
	"fmt"
	"strconv"

	"github.com/mountainpath/nifty-dashboard/pkg/constants"
)

// Table is the generic tabular form of a dataset, shared by the CSV exports,
// the workbook sheets, and the terminal output. Cell values are rendered
// with minimal digits so a serialize/parse round trip is exact.
type Table struct {
	Name     string
	Title    string
	Filename string
	Columns  []string
	Rows     [][]string
}

func cell(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// FiveYearTable renders the five-year dataset in tabular form.
func (b *Bundle) FiveYearTable() Table {
	rows := make([][]string, 0, len(b.FiveYear))
	for _, r := range b.FiveYear {
		rows = append(rows, []string{
			r.FiscalYear,
			cell(r.RevenueGrowth), cell(r.EBITDAGrowth), cell(r.PATGrowth),
			cell(r.EBITDAMargin), cell(r.PATMargin),
		})
	}
	return Table{
		Name:     constants.DatasetFiveYear,
		Title:    "Nifty 50 5-Year Growth Trend",
		Filename: constants.ExportFileFiveYear,
		Columns:  append([]string(nil), FiveYearColumns...),
		Rows:     rows,
	}
}

// QuarterlyTable renders the quarterly dataset in tabular form.
func (b *Bundle) QuarterlyTable() Table {
	rows := make([][]string, 0, len(b.Quarterly))
	for _, r := range b.Quarterly {
		rows = append(rows, []string{
			r.Quarter,
			cell(r.RevenueGrowth), cell(r.EBITDAGrowth), cell(r.PATGrowth),
		})
	}
	return Table{
		Name:     constants.DatasetQuarterly,
		Title:    "FY2025 Quarterly Trend",
		Filename: constants.ExportFileQuarterly,
		Columns:  append([]string(nil), QuarterlyColumns...),
		Rows:     rows,
	}
}

// SectorTable renders the sector dataset in tabular form.
func (b *Bundle) SectorTable() Table {
	rows := make([][]string, 0, len(b.Sectors))
	for _, r := range b.Sectors {
		rows = append(rows, []string{
			r.Name,
			cell(r.RevenueGrowth), cell(r.ProfitGrowth), cell(r.Weight),
			string(r.Status),
		})
	}
	return Table{
		Name:     constants.DatasetSectors,
		Title:    "Sector Performance (Q3 FY25)",
		Filename: constants.ExportFileSectors,
		Columns:  append([]string(nil), SectorColumns...),
		Rows:     rows,
	}
}

// DowngradeTable renders the downgrade trajectory in tabular form.
func (b *Bundle) DowngradeTable() Table {
	rows := make([][]string, 0, len(b.Downgrades))
	for _, r := range b.Downgrades {
		rows = append(rows, []string{r.Date, r.Period, cell(r.Estimate)})
	}
	return Table{
		Name:     constants.DatasetDowngrades,
		Title:    "FY25 EPS Downgrade Trajectory",
		Filename: constants.ExportFileDowngrades,
		Columns:  append([]string(nil), DowngradeColumns...),
		Rows:     rows,
	}
}

// AllTables returns every exportable dataset in display order.
func (b *Bundle) AllTables() []Table {
	return []Table{
		b.FiveYearTable(),
		b.QuarterlyTable(),
		b.SectorTable(),
		b.DowngradeTable(),
	}
}

// TableByName resolves a dataset name from the CLI or an export route.
func (b *Bundle) TableByName(name string) (Table, error) {
	switch name {
	case constants.DatasetFiveYear:
		return b.FiveYearTable(), nil
	case constants.DatasetQuarterly:
		return b.QuarterlyTable(), nil
	case constants.DatasetSectors:
		return b.SectorTable(), nil
	case constants.DatasetDowngrades:
		return b.DowngradeTable(), nil
	default:
		return Table{}, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}
}
