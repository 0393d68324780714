package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/leadgen"
	leadgenhttp "github.com/fwojciec/leadgen/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body and status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>hello</html>"))
		}))
		defer srv.Close()

		f := leadgenhttp.NewFetcher()
		defer f.Close()

		res, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, 200, res.StatusCode)
		assert.Equal(t, "<html>hello</html>", res.Body)
	})

	t.Run("non-200 status is not an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		f := leadgenhttp.NewFetcher()
		defer f.Close()

		res, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, 403, res.StatusCode)
	})

	t.Run("records the final URL after redirects", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/final", http.StatusFound)
		})
		mux.HandleFunc("/final", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("done"))
		})

		f := leadgenhttp.NewFetcher()
		defer f.Close()

		res, err := f.Fetch(context.Background(), srv.URL+"/start")
		require.NoError(t, err)
		assert.Equal(t, srv.URL+"/final", res.FinalURL)
	})

	t.Run("sends the configured user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.UserAgent()
		}))
		defer srv.Close()

		f := leadgenhttp.NewFetcher(leadgenhttp.WithUserAgent("leadgen-test/1.0"))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "leadgen-test/1.0", gotUA)
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		f := leadgenhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), "http://127.0.0.1:1")
		assert.Equal(t, leadgen.EUNAVAILABLE, leadgen.ErrorCode(err))
	})
}

func TestFetcher_Probe(t *testing.T) {
	t.Parallel()

	var method string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := leadgenhttp.NewFetcher()
	defer f.Close()

	status, err := f.Probe(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 200, status)
	assert.Equal(t, http.MethodHead, method)
}
