package adapter

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "completest.dev/pkg/completest/internal/model"
)

func TestJSONSummaryStore_SaveSummary_UsesContractKeys(t *testing.T) {
	store := NewSummaryStore()
	path := filepath.Join(t.TempDir(), "result.json")

	summary := m.SummaryRecord{
		ProjectName:     m.ProjectName,
		ElapsedSeconds:  1.5,
		LineCount:       42,
		TestMarkerCount: 7,
	}

	require.NoError(t, store.SaveSummary(context.Background(), m.Path(path), summary))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "CompleTest", raw["nome_projeto"])
	assert.Equal(t, 1.5, raw["tempo_execucao"])
	assert.Equal(t, float64(42), raw["qtd_linhas"])
	assert.Equal(t, float64(7), raw["qtd_testes"])
	assert.Len(t, raw, 4)
	assert.Contains(t, string(data), "\n  \"nome_projeto\"")

	loaded, err := store.LoadSummary(context.Background(), m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, summary, loaded)
}

func TestJSONSummaryStore_LoadSummary_MissingFile(t *testing.T) {
	store := NewSummaryStore()

	_, err := store.LoadSummary(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing.json")))
	require.Error(t, err)
}
