package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/leadgen"
	"github.com/fwojciec/leadgen/mock"
	leadslog "github.com/fwojciec/leadgen/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs status, bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*leadgen.FetchResult, error) {
				return &leadgen.FetchResult{StatusCode: 200, Body: "<html>content</html>"}, nil
			},
		}

		fetcher := leadslog.NewLoggingFetcher(inner, logger)
		res, err := fetcher.Fetch(context.Background(), "https://acmedental.com")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", res.Body)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://acmedental.com")
		assert.Contains(t, output, "status=200")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*leadgen.FetchResult, error) {
				return nil, errors.New("network error")
			},
		}

		fetcher := leadslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://acmedental.com")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "err=\"network error\"")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	closeCalled := false
	inner := &mock.Fetcher{
		CloseFn: func() error {
			closeCalled = true
			return nil
		},
	}

	fetcher := leadslog.NewLoggingFetcher(inner, logger)
	require.NoError(t, fetcher.Close())
	assert.True(t, closeCalled)
}

func TestLoggingResolver_Resolve(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Resolver{
		ResolveFn: func(ctx context.Context, rawURL string) (string, error) {
			return "https://acmedental.com", nil
		},
	}

	resolver := leadslog.NewLoggingResolver(inner, logger)
	resolved, err := resolver.Resolve(context.Background(), "https://www.bing.com/ck/a?u=x")

	require.NoError(t, err)
	assert.Equal(t, "https://acmedental.com", resolved)
	assert.Contains(t, buf.String(), "resolved=https://acmedental.com")
}

func TestLoggingContactExtractor_Extract(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.ContactExtractor{
		ExtractFn: func(ctx context.Context, websiteURL string) (*leadgen.ContactInfo, error) {
			return &leadgen.ContactInfo{
				Email:  "info@acmedental.com",
				Social: map[string]string{"facebook": "https://www.facebook.com/acmedental"},
			}, nil
		},
	}

	extractor := leadslog.NewLoggingContactExtractor(inner, logger)
	info, err := extractor.Extract(context.Background(), "https://acmedental.com")

	require.NoError(t, err)
	assert.Equal(t, "info@acmedental.com", info.Email)
	output := buf.String()
	assert.Contains(t, output, "extract contacts")
	assert.Contains(t, output, "email=info@acmedental.com")
	assert.Contains(t, output, "socials=1")
}
