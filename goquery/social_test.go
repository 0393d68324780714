package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	gq "github.com/fwojciec/leadgen/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_Social(t *testing.T) {
	t.Parallel()

	t.Run("finds profiles and normalizes URLs", func(t *testing.T) {
		t.Parallel()

		page, err := gq.ParsePage(`<html><body>
			<a href="https://www.facebook.com/acmedental/?ref=footer">Facebook</a>
			<a href="//www.instagram.com/acmedental/">Instagram</a>
			<a href="https://x.com/acmedental">Twitter</a>
		</body></html>`)
		require.NoError(t, err)

		social := page.Social()
		assert.Equal(t, "https://www.facebook.com/acmedental", social["facebook"])
		assert.Equal(t, "https://www.instagram.com/acmedental", social["instagram"])
		assert.Equal(t, "https://x.com/acmedental", social["twitter"])
	})

	t.Run("rejects share and oauth links", func(t *testing.T) {
		t.Parallel()

		page, err := gq.ParsePage(`<html><body>
			<a href="https://www.facebook.com/sharer/sharer.php?u=x">Share</a>
			<a href="https://www.linkedin.com/sharing/share-offsite/?url=x">Share</a>
			<a href="https://twitter.com/intent/tweet?text=x">Tweet</a>
		</body></html>`)
		require.NoError(t, err)

		assert.Empty(t, page.Social())
	})

	t.Run("youtube requires a channel path", func(t *testing.T) {
		t.Parallel()

		page, err := gq.ParsePage(`<html><body>
			<a href="https://www.youtube.com/watch?v=abc123">Video</a>
			<a href="https://www.youtube.com/channel/UCacme">Channel</a>
		</body></html>`)
		require.NoError(t, err)

		assert.Equal(t, "https://www.youtube.com/channel/UCacme", page.Social()["youtube"])
	})

	t.Run("first profile per platform wins", func(t *testing.T) {
		t.Parallel()

		page, err := gq.ParsePage(`<html><body>
			<a href="https://www.facebook.com/first">One</a>
			<a href="https://www.facebook.com/second">Two</a>
		</body></html>`)
		require.NoError(t, err)

		assert.Equal(t, "https://www.facebook.com/first", page.Social()["facebook"])
	})

	t.Run("relative links are skipped", func(t *testing.T) {
		t.Parallel()

		page, err := gq.ParsePage(`<html><body>
			<a href="/facebook">Not social</a>
		</body></html>`)
		require.NoError(t, err)

		assert.Empty(t, page.Social())
	})

	t.Run("scan is bounded", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		b.WriteString("<html><body>")
		for i := 0; i < 60; i++ {
			fmt.Fprintf(&b, `<a href="https://acmedental.com/page%d">p</a>`, i)
		}
		b.WriteString(`<a href="https://www.facebook.com/acmedental">fb</a></body></html>`)

		page, err := gq.ParsePage(b.String())
		require.NoError(t, err)

		// The profile anchor sits past the scan cap.
		assert.Empty(t, page.Social()["facebook"])
	})
}
