package analytics

import (
	"testing"

	"github.com/mountainpath/nifty-dashboard/internal/dataset"
	"github.com/mountainpath/nifty-dashboard/pkg/constants"
)

func TestSummarize(t *testing.T) {
	summary := Summarize(loadBundle(t))

	if summary.PeriodsAnalyzed != 5 {
		t.Errorf("PeriodsAnalyzed = %d, expected 5", summary.PeriodsAnalyzed)
	}
	if summary.QuartersAnalyzed != 3 {
		t.Errorf("QuartersAnalyzed = %d, expected 3", summary.QuartersAnalyzed)
	}
	if summary.SectorsAnalyzed != 10 {
		t.Errorf("SectorsAnalyzed = %d, expected 10", summary.SectorsAnalyzed)
	}
	if summary.ScenariosModeled != 3 {
		t.Errorf("ScenariosModeled = %d, expected 3", summary.ScenariosModeled)
	}

	if summary.LatestRevenueGrowth != 4.5 {
		t.Errorf("LatestRevenueGrowth = %v, expected 4.5", summary.LatestRevenueGrowth)
	}
	if summary.LatestPATGrowth != 9.5 {
		t.Errorf("LatestPATGrowth = %v, expected 9.5", summary.LatestPATGrowth)
	}

	if summary.BestSector != "Telecom" {
		t.Errorf("BestSector = %s, expected Telecom", summary.BestSector)
	}
	if summary.WorstSector != "Energy" {
		t.Errorf("WorstSector = %s, expected Energy", summary.WorstSector)
	}
	if summary.TotalWeight != 100 {
		t.Errorf("TotalWeight = %v, expected 100", summary.TotalWeight)
	}
	if summary.DataUpdated != constants.DataUpdated {
		t.Errorf("DataUpdated = %s, expected %s", summary.DataUpdated, constants.DataUpdated)
	}
}

func TestSummarizeEmptyBundle(t *testing.T) {
	summary := Summarize(&dataset.Bundle{})

	if summary.PeriodsAnalyzed != 0 || summary.SectorsAnalyzed != 0 {
		t.Errorf("empty bundle should produce zero counts, got %+v", summary)
	}
	if summary.BestSector != "" || summary.WorstSector != "" {
		t.Errorf("empty bundle should not name sectors, got %s / %s", summary.BestSector, summary.WorstSector)
	}
}
