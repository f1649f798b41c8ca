package output_test

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textdigest/internal/domain"
	"textdigest/internal/output"
)

func TestWrite_CreatesDirAndFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	report := domain.Report{
		Source:        "in/sample.txt",
		WordCount:     12,
		SentenceCount: 3,
		Summary:       "A <b> & c.",
		KeyInsights:   []string{"First, with comma.", `Quoted "word".`},
		TopKeywords:   []string{"first"},
		Links:         []string{"https://go.dev"},
		Engine:        domain.EngineExtractive,
	}

	paths, err := output.Write(dir, "sample", report)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sample_summary.json"), paths.JSON)
	assert.Equal(t, filepath.Join(dir, "sample_insights.csv"), paths.CSV)

	raw, err := os.ReadFile(paths.JSON)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"summary": "A <b> & c."`)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "in/sample.txt", decoded["source"])
	assert.EqualValues(t, 12, decoded["word_count"])
	assert.EqualValues(t, 3, decoded["sentence_count"])
	assert.Equal(t, "extractive", decoded["engine"])

	f, err := os.Open(paths.CSV)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"insight"},
		{"First, with comma."},
		{`Quoted "word".`},
	}, rows)
}

func TestWrite_EmptyReport(t *testing.T) {
	dir := t.TempDir()

	paths, err := output.Write(dir, "empty", domain.Report{Source: "empty.txt"})
	require.NoError(t, err)

	raw, err := os.ReadFile(paths.JSON)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, []any{}, decoded["key_insights"])
	assert.Equal(t, []any{}, decoded["top_keywords"])
	assert.Equal(t, []any{}, decoded["links"])

	csvRaw, err := os.ReadFile(paths.CSV)
	require.NoError(t, err)
	assert.Equal(t, "insight\n", string(csvRaw))
}

func TestWrite_FailsWhenDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	_, err := output.Write(file, "x", domain.Report{})
	assert.Error(t, err)
}
