package match

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed vocabulary.json
var defaultVocabularyJSON []byte

//go:embed vocabulary.schema.json
var vocabularySchemaJSON string

// Vocabulary is the fixed matching configuration: a canonical-term to
// synonym-phrase table plus the soft-skills and industry-terms lists.
// It is loaded once at process start and shared read-only by reference,
// which keeps the matching pipeline pure and trivially parallelizable.
type Vocabulary struct {
	Synonyms      map[string][]string `json:"synonyms"`
	SoftSkills    []string            `json:"softSkills"`
	IndustryTerms []string            `json:"industryTerms"`
}

// VocabularyError represents a vocabulary file that failed schema validation.
type VocabularyError struct {
	Source string
	Fields []string
}

func (e *VocabularyError) Error() string {
	return fmt.Sprintf("invalid vocabulary %s: %s", e.Source, strings.Join(e.Fields, "; "))
}

// Load returns the vocabulary at path, or the embedded default when path
// is empty.
func Load(path string) (*Vocabulary, error) {
	if path == "" {
		return LoadDefaultVocabulary()
	}
	return LoadVocabularyFile(path)
}

// LoadDefaultVocabulary returns the vocabulary embedded in the binary.
func LoadDefaultVocabulary() (*Vocabulary, error) {
	return parseVocabulary(defaultVocabularyJSON, "(embedded)")
}

// LoadVocabularyFile loads and validates a vocabulary from an external
// JSON file, letting operators extend the tables without touching matcher
// code.
func LoadVocabularyFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}
	return parseVocabulary(data, path)
}

// parseVocabulary validates raw JSON against the embedded schema before
// unmarshalling, so malformed vocabulary data fails loudly at startup
// instead of silently producing zero matches.
func parseVocabulary(data []byte, source string) (*Vocabulary, error) {
	schemaLoader := gojsonschema.NewStringLoader(vocabularySchemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("failed to validate vocabulary %s: %w", source, err)
	}
	if !result.Valid() {
		vocabErr := &VocabularyError{Source: source}
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			vocabErr.Fields = append(vocabErr.Fields, field+": "+desc.Description())
		}
		return nil, vocabErr
	}

	var vocab Vocabulary
	if err := json.Unmarshal(data, &vocab); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary %s: %w", source, err)
	}
	return &vocab, nil
}
