package leadgen_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/fwojciec/leadgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeCSVField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"=SUM(A1:A9)", " =SUM(A1:A9)"},
		{"+1 512 555 0123", " +1 512 555 0123"},
		{"-discount", " -discount"},
		{"@handle", " @handle"},
		{"Acme Dental", "Acme Dental"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, leadgen.SanitizeCSVField(tt.input))
		})
	}
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	t.Run("stable header and field order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := leadgen.WriteCSV(&buf, []*leadgen.Lead{
			{
				Name:          "Acme Dental",
				Phone:         "(512) 555-0123",
				Website:       "https://acmedental.com",
				Email:         "info@acmedental.com",
				Address:       "123 Main St, Austin",
				LeadType:      "Premium Lead",
				PriorityScore: 8,
				Facebook:      "https://www.facebook.com/acmedental",
				Source:        "bing_enhanced",
			},
		})
		require.NoError(t, err)

		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, leadgen.CSVFields, records[0])
		assert.Equal(t, "Acme Dental", records[1][0])
		assert.Equal(t, "8", records[1][6])
		assert.Equal(t, "bing_enhanced", records[1][11])
	})

	t.Run("injects leading space for formula values", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := leadgen.WriteCSV(&buf, []*leadgen.Lead{
			{Name: "=SUM(A1:A9)"},
		})
		require.NoError(t, err)

		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, " =SUM(A1:A9)", records[1][0])
	})
}
