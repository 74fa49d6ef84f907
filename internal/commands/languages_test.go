package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLanguagesFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseLanguagesFileJSONList(t *testing.T) {
	path := writeLanguagesFile(t, "languages.json", `["Java", "Python", "Go"]`)

	languages, err := ParseLanguagesFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Java", "Python", "Go"}, languages)
}

func TestParseLanguagesFileJSONDocument(t *testing.T) {
	path := writeLanguagesFile(t, "languages.json", `{"languages": ["TypeScript", "Kotlin"]}`)

	languages, err := ParseLanguagesFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"TypeScript", "Kotlin"}, languages)
}

func TestParseLanguagesFileYAMLList(t *testing.T) {
	path := writeLanguagesFile(t, "languages.yaml", "- Java\n- Ruby\n")

	languages, err := ParseLanguagesFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Java", "Ruby"}, languages)
}

func TestParseLanguagesFileYAMLDocument(t *testing.T) {
	path := writeLanguagesFile(t, "languages.yaml", "languages:\n  - Scala\n  - Swift\n")

	languages, err := ParseLanguagesFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Scala", "Swift"}, languages)
}

func TestParseLanguagesFileNormalizesCasing(t *testing.T) {
	path := writeLanguagesFile(t, "languages.json", `["java", "PYTHON", "csharp"]`)

	languages, err := ParseLanguagesFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Java", "Python", "CSharp"}, languages)
}

func TestParseLanguagesFileRejectsUnknownLanguages(t *testing.T) {
	path := writeLanguagesFile(t, "languages.json", `["Java", "Klingon", "Elvish"]`)

	_, err := ParseLanguagesFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Klingon")
	assert.Contains(t, err.Error(), "Elvish")
}

func TestParseLanguagesFileRejectsEmptyList(t *testing.T) {
	path := writeLanguagesFile(t, "languages.json", `[]`)

	_, err := ParseLanguagesFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no languages")
}

func TestParseLanguagesFileRejectsGarbage(t *testing.T) {
	path := writeLanguagesFile(t, "languages.txt", "::: not a list :::")

	_, err := ParseLanguagesFile(path)
	require.Error(t, err)
}

func TestParseLanguagesFileMissingFile(t *testing.T) {
	_, err := ParseLanguagesFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}
