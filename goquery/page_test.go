package goquery_test

import (
	"testing"

	gq "github.com/fwojciec/leadgen/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_Emails(t *testing.T) {
	t.Parallel()

	t.Run("mailto link", func(t *testing.T) {
		t.Parallel()

		page, err := gq.ParsePage(`<html><body>
			<a href="mailto:Info@AcmeDental.com?subject=Hi">Email us</a>
		</body></html>`)
		require.NoError(t, err)

		assert.Equal(t, []string{"info@acmedental.com"}, page.Emails())
	})

	t.Run("labeled text", func(t *testing.T) {
		t.Parallel()

		page, err := gq.ParsePage(`<html><body>
			<p>Contact: sales@acmedental.com or call us.</p>
		</body></html>`)
		require.NoError(t, err)

		assert.Equal(t, []string{"sales@acmedental.com"}, page.Emails())
	})

	t.Run("input placeholder and data attribute", func(t *testing.T) {
		t.Parallel()

		page, err := gq.ParsePage(`<html><body>
			<input type="email" placeholder="hello@acmedental.com">
			<div data-email="owner@acmedental.com"></div>
		</body></html>`)
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{"hello@acmedental.com", "owner@acmedental.com"}, page.Emails())
	})

	t.Run("rejects placeholder and automated addresses", func(t *testing.T) {
		t.Parallel()

		page, err := gq.ParsePage(`<html><body>
			<a href="mailto:info@example.com">placeholder</a>
			<p>noreply@acmedental.com</p>
		</body></html>`)
		require.NoError(t, err)

		assert.Empty(t, page.Emails())
	})

	t.Run("deduplicates across sources", func(t *testing.T) {
		t.Parallel()

		page, err := gq.ParsePage(`<html><body>
			<a href="mailto:info@acmedental.com">Email</a>
			<p>Email: info@acmedental.com</p>
		</body></html>`)
		require.NoError(t, err)

		assert.Equal(t, []string{"info@acmedental.com"}, page.Emails())
	})
}

func TestPage_Phones(t *testing.T) {
	t.Parallel()

	page, err := gq.ParsePage(`<html><body>
		<p>Call (512) 555-0123 or 512.555.0123 today. Fax: 512-555-9999</p>
	</body></html>`)
	require.NoError(t, err)

	assert.Equal(t, []string{"(512) 555-0123", "(512) 555-9999"}, page.Phones())
}

func TestPage_HasContactForm(t *testing.T) {
	t.Parallel()

	t.Run("by class", func(t *testing.T) {
		t.Parallel()

		page, err := gq.ParsePage(`<html><body><form class="contact-form"></form></body></html>`)
		require.NoError(t, err)
		assert.True(t, page.HasContactForm())
	})

	t.Run("by id", func(t *testing.T) {
		t.Parallel()

		page, err := gq.ParsePage(`<html><body><form id="ContactUs"></form></body></html>`)
		require.NoError(t, err)
		assert.True(t, page.HasContactForm())
	})

	t.Run("unrelated form", func(t *testing.T) {
		t.Parallel()

		page, err := gq.ParsePage(`<html><body><form class="search"></form></body></html>`)
		require.NoError(t, err)
		assert.False(t, page.HasContactForm())
	})
}

func TestPage_FallbackEmail(t *testing.T) {
	t.Parallel()

	t.Run("synthesized from domain when form present", func(t *testing.T) {
		t.Parallel()

		page, err := gq.ParsePage(`<html><body><form class="contact-form"></form></body></html>`)
		require.NoError(t, err)

		assert.Equal(t, "info@acmedental.com", page.FallbackEmail("https://www.acmedental.com"))
	})

	t.Run("empty without form", func(t *testing.T) {
		t.Parallel()

		page, err := gq.ParsePage(`<html><body><p>hours</p></body></html>`)
		require.NoError(t, err)

		assert.Empty(t, page.FallbackEmail("https://www.acmedental.com"))
	})
}
