package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mountainpath/nifty-dashboard/internal/dataset"
)

func loadBundle(t *testing.T) *dataset.Bundle {
	t.Helper()
	bundle, err := dataset.Load(zap.NewNop())
	require.NoError(t, err)
	return bundle
}

func TestCSVFiveYear(t *testing.T) {
	bundle := loadBundle(t)

	out, err := CSV(bundle.FiveYearTable())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Fiscal Year,Revenue Growth (%),EBITDA Growth (%),PAT Growth (%),EBITDA Margin (%),PAT Margin (%)", lines[0])
	assert.Equal(t, "FY2021,10.5,11.2,8.3,32.1,9.8", lines[1])
	assert.Equal(t, "FY2025 YTD,6.9,2.6,4.6,33.1,10.7", lines[5])
}

func TestCSVQuotesEmbeddedCommas(t *testing.T) {
	bundle := loadBundle(t)

	out, err := CSV(bundle.DowngradeTable())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, `"Sep 30, 2024",Sep-24,9.8`, lines[1])
	assert.Equal(t, `"Feb 21, 2025",Feb-25,3.2`, lines[6])
}

func TestCSVRoundTrip(t *testing.T) {
	bundle := loadBundle(t)

	for _, table := range bundle.AllTables() {
		t.Run(table.Name, func(t *testing.T) {
			out, err := CSV(table)
			require.NoError(t, err)

			records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
			require.NoError(t, err)
			require.Len(t, records, len(table.Rows)+1)
			assert.Equal(t, table.Columns, records[0])
			assert.Equal(t, table.Rows, records[1:])
		})
	}
}

func TestCSVDeterministic(t *testing.T) {
	bundle := loadBundle(t)

	for _, table := range bundle.AllTables() {
		first, err := CSV(table)
		require.NoError(t, err)
		second, err := CSV(table)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(first, second), "encoding %s twice produced different bytes", table.Name)
	}
}
