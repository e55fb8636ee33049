package validation

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{
			name:      "Valid pretty format",
			format:    "pretty",
			expectErr: false,
		},
		{
			name:      "Valid csv format",
			format:    "csv",
			expectErr: false,
		},
		{
			name:      "Invalid format",
			format:    "json",
			expectErr: true,
		},
		{
			name:      "Empty format",
			format:    "",
			expectErr: true,
		},
		{
			name:      "Case sensitive - uppercase",
			format:    "PRETTY",
			expectErr: true,
		},
		{
			name:      "Leading/trailing spaces",
			format:    " pretty ",
			expectErr: true,
		},
		{
			name:      "Similar but incorrect format",
			format:    "prettyprint",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)

			if tt.expectErr {
				if err == nil {
					t.Errorf("ValidateOutputFormat(%s) expected error but got none", tt.format)
				}
			} else {
				if err != nil {
					t.Errorf("ValidateOutputFormat(%s) unexpected error = %v", tt.format, err)
				}
			}
		})
	}
}

func TestValidateDatasetName(t *testing.T) {
	tests := []struct {
		name      string
		dataset   string
		expectErr bool
	}{
		{
			name:      "All datasets",
			dataset:   "all",
			expectErr: false,
		},
		{
			name:      "Five-year dataset",
			dataset:   "five-year",
			expectErr: false,
		},
		{
			name:      "Quarterly dataset",
			dataset:   "quarterly",
			expectErr: false,
		},
		{
			name:      "Sectors dataset",
			dataset:   "sectors",
			expectErr: false,
		},
		{
			name:      "Downgrades dataset",
			dataset:   "downgrades",
			expectErr: false,
		},
		{
			name:      "Unknown dataset",
			dataset:   "holdings",
			expectErr: true,
		},
		{
			name:      "Empty dataset",
			dataset:   "",
			expectErr: true,
		},
		{
			name:      "Case sensitive",
			dataset:   "Sectors",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatasetName(tt.dataset)

			if tt.expectErr {
				if err == nil {
					t.Errorf("ValidateDatasetName(%s) expected error but got none", tt.dataset)
				}
			} else {
				if err != nil {
					t.Errorf("ValidateDatasetName(%s) unexpected error = %v", tt.dataset, err)
				}
			}
		})
	}
}

func TestValidationErrorMessagesNameTheInput(t *testing.T) {
	if err := ValidateOutputFormat("yaml"); err == nil || !strings.Contains(err.Error(), "yaml") {
		t.Errorf("ValidateOutputFormat error should name the rejected format, got %v", err)
	}
	if err := ValidateDatasetName("holdings"); err == nil || !strings.Contains(err.Error(), "holdings") {
		t.Errorf("ValidateDatasetName error should name the rejected dataset, got %v", err)
	}
}
