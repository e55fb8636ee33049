package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBundle(t *testing.T) *Bundle {
	t.Helper()
	bundle, err := Load(nil)
	require.NoError(t, err)
	return bundle
}

func TestValidateBundlePasses(t *testing.T) {
	bundle := validBundle(t)
	assert.NoError(t, NewDataValidator(nil).ValidateBundle(bundle))
}

func TestValidateRowCounts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Bundle)
	}{
		{"Five-year row dropped", func(b *Bundle) { b.FiveYear = b.FiveYear[:4] }},
		{"Quarter dropped", func(b *Bundle) { b.Quarterly = b.Quarterly[:2] }},
		{"Sector dropped", func(b *Bundle) { b.Sectors = b.Sectors[:9] }},
		{"Downgrade point dropped", func(b *Bundle) { b.Downgrades = b.Downgrades[:5] }},
		{"Scenario dropped", func(b *Bundle) { b.Scenarios = b.Scenarios[:2] }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle := validBundle(t)
			tt.mutate(bundle)
			err := NewDataValidator(nil).ValidateBundle(bundle)
			assert.ErrorIs(t, err, ErrRowCount)
		})
	}
}

func TestValidateWeightSum(t *testing.T) {
	bundle := validBundle(t)
	bundle.Sectors[0].Weight += 5

	err := NewDataValidator(nil).ValidateBundle(bundle)
	assert.ErrorIs(t, err, ErrWeightSum)
}

func TestValidateProbabilitySum(t *testing.T) {
	bundle := validBundle(t)
	bundle.Scenarios[0].Probability = 0.60

	err := NewDataValidator(nil).ValidateBundle(bundle)
	assert.ErrorIs(t, err, ErrProbabilitySum)
}

func TestValidateUnknownStatus(t *testing.T) {
	bundle := validBundle(t)
	bundle.Sectors[2].Status = "🚀 MOONING"

	err := NewDataValidator(nil).ValidateBundle(bundle)
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestValidateQuarterOrder(t *testing.T) {
	bundle := validBundle(t)
	bundle.Quarterly[1].Quarter, bundle.Quarterly[2].Quarter =
		bundle.Quarterly[2].Quarter, bundle.Quarterly[1].Quarter

	err := NewDataValidator(nil).ValidateBundle(bundle)
	assert.ErrorIs(t, err, ErrQuarterOrder)
}

func TestValidatePeriodMismatch(t *testing.T) {
	bundle := validBundle(t)
	bundle.Downgrades[0].Period = "Aug-24"

	err := NewDataValidator(nil).ValidateBundle(bundle)
	assert.ErrorIs(t, err, ErrPeriodMismatch)
}

func TestValidateDateOrder(t *testing.T) {
	bundle := validBundle(t)
	bundle.Downgrades[4].Date = "Sep 15, 2024"
	bundle.Downgrades[4].Period = "Sep-24"

	err := NewDataValidator(nil).ValidateBundle(bundle)
	assert.ErrorIs(t, err, ErrDateOrder)
}

func TestValidateStructTags(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Bundle)
	}{
		{"Growth beyond bound", func(b *Bundle) { b.FiveYear[0].RevenueGrowth = 150 }},
		{"Margin not positive", func(b *Bundle) { b.FiveYear[1].EBITDAMargin = 0 }},
		{"Empty sector name", func(b *Bundle) { b.Sectors[0].Name = "" }},
		{"Zero sector weight", func(b *Bundle) { b.Sectors[3].Weight = 0 }},
		{"Non-positive multiple", func(b *Bundle) { b.Scenarios[0].PERatio[1] = 0 }},
		{"Probability above one", func(b *Bundle) { b.Scenarios[1].Probability = 1.5 }},
		{"Bad scenario color", func(b *Bundle) { b.Scenarios[2].Color = "green" }},
		{"Bad source URL", func(b *Bundle) { b.Sources[0].URL = "not a url" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle := validBundle(t)
			tt.mutate(bundle)
			assert.Error(t, NewDataValidator(nil).ValidateBundle(bundle))
		})
	}
}
