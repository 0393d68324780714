package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/leadgen"
	main "github.com/fwojciec/leadgen/cmd/leadgen"
	"github.com/fwojciec/leadgen/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires force", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Store: &mock.LeadStore{
				SaveFn: func(_ context.Context, ownerKey string, leads []*leadgen.Lead) error {
					t.Fatal("save should not be called without --force")
					return nil
				},
			},
		}

		cmd := &main.ClearCmd{Owner: "default"}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, leadgen.EINVALID, leadgen.ErrorCode(err))
	})

	t.Run("clears with force", func(t *testing.T) {
		t.Parallel()

		var savedOwner string
		var savedLeads []*leadgen.Lead
		saveCalled := false

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Store: &mock.LeadStore{
				SaveFn: func(_ context.Context, ownerKey string, leads []*leadgen.Lead) error {
					saveCalled = true
					savedOwner = ownerKey
					savedLeads = leads
					return nil
				},
			},
		}

		cmd := &main.ClearCmd{Owner: "default", Force: true}
		require.NoError(t, cmd.Run(deps))

		assert.True(t, saveCalled)
		assert.Equal(t, "default", savedOwner)
		assert.Empty(t, savedLeads)
		assert.Contains(t, stdout.String(), "Cleared")
	})
}
