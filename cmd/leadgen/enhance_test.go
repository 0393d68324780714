package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/fwojciec/leadgen"
	main "github.com/fwojciec/leadgen/cmd/leadgen"
	"github.com/fwojciec/leadgen/mock"
	"github.com/fwojciec/leadgen/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnhanceCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports enhancement counts", func(t *testing.T) {
		t.Parallel()

		enhancer := &search.Enhancer{
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
			Store: &mock.LeadStore{
				LoadFn: func(_ context.Context, ownerKey string) ([]*leadgen.Lead, error) {
					return []*leadgen.Lead{{Name: "Acme Dental", Website: "https://acmedental.com"}}, nil
				},
				SaveFn: func(_ context.Context, ownerKey string, leads []*leadgen.Lead) error { return nil },
			},
			Extractor: &mock.ContactExtractor{
				ExtractFn: func(_ context.Context, websiteURL string) (*leadgen.ContactInfo, error) {
					return &leadgen.ContactInfo{Email: "info@acmedental.com", EmailOrigin: leadgen.EmailOriginScraped}, nil
				},
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Enhancer: enhancer}

		cmd := &main.EnhanceCmd{Owner: "default"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "Processed 1 leads, 1 gained an email")
	})

	t.Run("reports nothing to do", func(t *testing.T) {
		t.Parallel()

		enhancer := &search.Enhancer{
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
			Store: &mock.LeadStore{
				LoadFn: func(_ context.Context, ownerKey string) ([]*leadgen.Lead, error) { return nil, nil },
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Enhancer: enhancer}

		cmd := &main.EnhanceCmd{Owner: "default"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "No leads need enhancement")
	})
}
