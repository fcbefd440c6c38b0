package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderSteps_SortsByRankStable(t *testing.T) {
	steps := []string{"Auth", "RAG", "Inferencia", "Auditoría"}

	got, err := OrderSteps(steps, []int{2, 1, 2, 0})

	require.NoError(t, err)
	assert.Equal(t, []string{"Auditoría", "RAG", "Auth", "Inferencia"}, got)
	assert.Equal(t, []string{"Auth", "RAG", "Inferencia", "Auditoría"}, steps, "input must not be mutated")
}

func TestOrderSteps_NoRanks_KeepsDeclaredOrder(t *testing.T) {
	got, err := OrderSteps([]string{"RAG", "Auth"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"RAG", "Auth"}, got)
}

func TestOrderSteps_RankCountMismatch_ReturnsError(t *testing.T) {
	_, err := OrderSteps([]string{"RAG", "Auth"}, []int{1})
	require.Error(t, err)
}

func TestWarnings_FlagMissingHITLAndAudit(t *testing.T) {
	st := DefaultState()
	st.Pipeline = []string{StepAuth, StepRAG}

	w := st.Warnings()

	require.Len(t, w, 2)
	assert.Contains(t, w[0], "Human-in-the-loop")
	assert.Contains(t, w[1], "Auditoría")

	st.Pipeline = Catalog
	assert.Empty(t, st.Warnings())
}

func TestInCatalog(t *testing.T) {
	assert.True(t, InCatalog("Filtro PII"))
	assert.False(t, InCatalog("filtro pii"))
}
