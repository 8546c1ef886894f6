package match

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultVocabulary(t *testing.T) {
	vocab, err := LoadDefaultVocabulary()
	require.NoError(t, err)

	assert.Contains(t, vocab.Synonyms, "cloud computing")
	assert.Contains(t, vocab.Synonyms["cloud computing"], "aws")
	assert.GreaterOrEqual(t, len(vocab.SoftSkills), 20)
	assert.GreaterOrEqual(t, len(vocab.IndustryTerms), 40)
}

func TestLoad(t *testing.T) {
	embedded, err := Load("")
	require.NoError(t, err)
	assert.Contains(t, embedded.Synonyms, "cloud computing")

	path := filepath.Join(t.TempDir(), "vocab.json")
	content := `{
		"synonyms": {},
		"softSkills": ["patience"],
		"industryTerms": ["grpc"]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	external, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"patience"}, external.SoftSkills)
}

func TestLoadVocabularyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	content := `{
		"synonyms": {"observability": ["monitoring", "telemetry"]},
		"softSkills": ["curiosity"],
		"industryTerms": ["opentelemetry"]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	vocab, err := LoadVocabularyFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"monitoring", "telemetry"}, vocab.Synonyms["observability"])
	assert.Equal(t, []string{"curiosity"}, vocab.SoftSkills)
}

func TestLoadVocabularyFile_NotFound(t *testing.T) {
	_, err := LoadVocabularyFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadVocabularyFile_SchemaViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	// industryTerms missing entirely.
	content := `{"synonyms": {}, "softSkills": ["curiosity"]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadVocabularyFile(path)
	require.Error(t, err)

	var vocabErr *VocabularyError
	assert.ErrorAs(t, err, &vocabErr)
	assert.NotEmpty(t, vocabErr.Fields)
}

func TestLoadVocabularyFile_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := LoadVocabularyFile(path)
	assert.Error(t, err)
}
