// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/mountainpath/nifty-dashboard/internal/analytics"
	"github.com/mountainpath/nifty-dashboard/internal/dataset"
)

// FindProjection finds a scenario projection by scenario name.
// Returns a pointer to the projection if found, nil otherwise.
func FindProjection(projections []analytics.ScenarioProjection, name string) *analytics.ScenarioProjection {
	for i := range projections {
		if projections[i].Scenario.Name == name {
			return &projections[i]
		}
	}
	return nil
}

// FindTable finds a dataset table by name.
// Returns a pointer to the table if found, nil otherwise.
func FindTable(tables []dataset.Table, name string) *dataset.Table {
	for i := range tables {
		if tables[i].Name == name {
			return &tables[i]
		}
	}
	return nil
}
