package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai-product-ops/productops/design"
)

func TestInitState_WritesDefaultAndRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sdd.yaml")

	require.NoError(t, initState(path, false))
	st, err := design.LoadState(path)
	require.NoError(t, err)
	assert.Equal(t, design.DefaultState(), *st)

	err = initState(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	require.NoError(t, initState(path, true))
}

func TestSetPipeline_OrdersByRank(t *testing.T) {
	st := design.DefaultState()

	err := setPipeline(&st, []string{"Auditoría", "Auth", "Filtro PII"}, []int{3, 1, 2})

	require.NoError(t, err)
	assert.Equal(t, []string{"Auth", "Filtro PII", "Auditoría"}, st.Pipeline)
}

func TestSetPipeline_RankMismatch_LeavesStateUntouched(t *testing.T) {
	st := design.DefaultState()
	before := append([]string(nil), st.Pipeline...)

	err := setPipeline(&st, []string{"Auth", "RAG"}, []int{1})

	require.Error(t, err)
	assert.Equal(t, before, st.Pipeline)
}
