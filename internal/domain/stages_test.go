package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jewelflow/workshop-service/internal/domain"
)

func TestStages_Ordering(t *testing.T) {
	require.Equal(t, "Hand Designing", domain.Stages[0])
	require.Equal(t, domain.StageCompleted, domain.Stages[len(domain.Stages)-1])

	// Every stage except the last has exactly one successor.
	for i, stage := range domain.Stages {
		next, ok := domain.NextStage(stage)
		if i == len(domain.Stages)-1 {
			assert.False(t, ok)
			continue
		}
		require.True(t, ok, "stage %q should have a successor", stage)
		assert.Equal(t, domain.Stages[i+1], next)
	}
}

func TestStageIndex_UnknownStage(t *testing.T) {
	assert.Equal(t, -1, domain.StageIndex("Engraving"))
	assert.False(t, domain.IsValidStage("Engraving"))

	_, ok := domain.NextStage("Engraving")
	assert.False(t, ok)
}

func TestIsTerminalStage(t *testing.T) {
	assert.True(t, domain.IsTerminalStage("Completed"))
	assert.False(t, domain.IsTerminalStage("Kundan Ghat"))
}

func TestWorkableStages_ExcludesTerminal(t *testing.T) {
	workable := domain.WorkableStages()
	require.Len(t, workable, len(domain.Stages)-1)
	assert.NotContains(t, workable, domain.StageCompleted)
}
