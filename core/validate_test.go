package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/dynaforest/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEndpoints_OK(t *testing.T) {
	require.NoError(t, core.ValidateEndpoints(5, 0, 4))
	require.NoError(t, core.ValidateEndpoints(5, 2, 1))
}

func TestValidateEndpoints_OutOfRange(t *testing.T) {
	err := core.ValidateEndpoints(5, -1, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
	assert.ErrorIs(t, err, core.ErrPreconditionViolated)

	err = core.ValidateEndpoints(5, 2, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrOutOfRange))
}

func TestValidateEndpoints_SameVertex(t *testing.T) {
	err := core.ValidateEndpoints(5, 3, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrSameVertex)
	assert.ErrorIs(t, err, core.ErrPreconditionViolated)
}
