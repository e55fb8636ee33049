// Package validation provides common validation utilities for CLI arguments.
package validation

import (
	"fmt"

	"github.com/mountainpath/nifty-dashboard/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateDatasetName checks if the dataset name refers to an exportable
// dataset or the whole collection.
func ValidateDatasetName(name string) error {
	switch name {
	case constants.DatasetAll, constants.DatasetFiveYear, constants.DatasetQuarterly,
		constants.DatasetSectors, constants.DatasetDowngrades:
		return nil
	}
	return fmt.Errorf("expected dataset of %s, %s, %s, %s, or %s, got %s",
		constants.DatasetAll, constants.DatasetFiveYear, constants.DatasetQuarterly,
		constants.DatasetSectors, constants.DatasetDowngrades, name)
}
