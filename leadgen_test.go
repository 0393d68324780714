package leadgen_test

import (
	"testing"

	"github.com/fwojciec/leadgen"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := leadgen.Errorf(leadgen.EINVALID, "count %d out of range", 99)

	assert.Equal(t, leadgen.EINVALID, leadgen.ErrorCode(err))
	assert.Equal(t, "count 99 out of range", leadgen.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, leadgen.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, leadgen.ErrorMessage(nil))
}
