package analytics

import (
	"github.com/mountainpath/nifty-dashboard/internal/dataset"
)

// Summary condenses the bundle into the counts and findings shown on the
// overview panel.
type Summary struct {
	PeriodsAnalyzed     int     `json:"periods_analyzed"`
	QuartersAnalyzed    int     `json:"quarters_analyzed"`
	SectorsAnalyzed     int     `json:"sectors_analyzed"`
	ScenariosModeled    int     `json:"scenarios_modeled"`
	LatestRevenueGrowth float64 `json:"latest_revenue_growth"`
	LatestPATGrowth     float64 `json:"latest_pat_growth"`
	BestSector          string  `json:"best_sector"`
	WorstSector         string  `json:"worst_sector"`
	TotalWeight         float64 `json:"total_weight"`
	DataUpdated         string  `json:"data_updated"`
}

// Summarize computes the overview statistics for the loaded bundle.
func Summarize(bundle *dataset.Bundle) Summary {
	summary := Summary{
		PeriodsAnalyzed:  len(bundle.FiveYear),
		QuartersAnalyzed: len(bundle.Quarterly),
		SectorsAnalyzed:  len(bundle.Sectors),
		ScenariosModeled: len(bundle.Scenarios),
		DataUpdated:      bundle.DataUpdated,
	}

	if len(bundle.Quarterly) > 0 {
		current := bundle.Quarterly[len(bundle.Quarterly)-1]
		summary.LatestRevenueGrowth = current.RevenueGrowth
		summary.LatestPATGrowth = current.PATGrowth
	}

	if len(bundle.Sectors) > 0 {
		best := bundle.Sectors[0]
		worst := bundle.Sectors[0]
		for _, sector := range bundle.Sectors {
			summary.TotalWeight += sector.Weight
			if sector.ProfitGrowth > best.ProfitGrowth {
				best = sector
			}
			if sector.ProfitGrowth < worst.ProfitGrowth {
				worst = sector
			}
		}
		summary.BestSector = best.Name
		summary.WorstSector = worst.Name
	}

	return summary
}
