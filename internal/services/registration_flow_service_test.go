package services

import (
	"testing"

	"framework4future/portal/internal/common"
	"framework4future/portal/internal/models/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationFlowService_RecordAndGet(t *testing.T) {
	flow := NewRegistrationFlowService(common.NewCacheService(300, 600))

	flow.Record("m-1", entities.StepPayment, false)
	flow.Record("m-1", entities.StepPayment.Next(), true)

	progress, err := flow.Get("m-1")
	require.NoError(t, err)
	assert.Equal(t, entities.StepConfirmation, progress.Step)
	assert.True(t, progress.Completed)
	assert.Equal(t, "m-1", progress.MemberID)

	flow.Clear("m-1")
	_, err = flow.Get("m-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistrationFlowService_NilIsSafe(t *testing.T) {
	var flow *RegistrationFlowService

	assert.NotPanics(t, func() { flow.Record("m-1", entities.StepRegister, false) })
	_, err := flow.Get("m-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
