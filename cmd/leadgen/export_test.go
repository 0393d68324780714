package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/leadgen"
	main "github.com/fwojciec/leadgen/cmd/leadgen"
	"github.com/fwojciec/leadgen/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	store := &mock.LeadStore{
		LoadFn: func(_ context.Context, ownerKey string) ([]*leadgen.Lead, error) {
			return []*leadgen.Lead{
				{Name: "Acme Dental", Phone: "(512) 555-0123", LeadType: "Prospect Lead", PriorityScore: 3, Source: "bing_enhanced"},
			}, nil
		},
	}

	t.Run("writes CSV to stdout", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Store: store}

		cmd := &main.ExportCmd{Owner: "default"}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "name,phone,website,email,address,lead_type,priority_score")
		assert.Contains(t, output, "Acme Dental,(512) 555-0123")
	})

	t.Run("writes CSV to file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "leads.csv")
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Store: store}

		cmd := &main.ExportCmd{Owner: "default", Out: path}
		require.NoError(t, cmd.Run(deps))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Acme Dental")
		assert.Contains(t, stdout.String(), "Exported 1 leads")
	})
}
