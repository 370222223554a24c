package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CTAG07/Glossolalia/pkg/markov"
)

// execute runs the CLI with args against a config file in dir and returns
// what it printed to stdout and stderr.
func execute(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", filepath.Join(dir, "config.json")}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// runCmd is execute for tests that only look at stdout.
func runCmd(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	out, _, err := execute(t, dir, args...)
	return out, err
}

// writeWords writes a word list into dir and returns its path.
func writeWords(t *testing.T, dir string, words ...string) string {
	t.Helper()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0o644))
	return path
}

func TestLoadConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)

	data, err := os.ReadFile(path)
	require.NoError(t, err, "default config should have been written")
	var written Config
	require.NoError(t, json.Unmarshal(data, &written))
	assert.Equal(t, *DefaultConfig(), written)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"count": 7, "top_k": 3, "log_level": "debug"}`), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7, config.Count)
	assert.Equal(t, 3, config.TopK)
	assert.Equal(t, "debug", config.LogLevel)
	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultConfig().MaxSteps, config.MaxSteps)
	assert.Equal(t, DefaultConfig().Vowels, config.Vowels)
}

func TestLoadConfigSeed(t *testing.T) {
	assert.Nil(t, DefaultConfig().Seed, "no seed by default")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"seed": 0}`), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, config.Seed, "an explicit zero seed is still a seed")
	assert.Equal(t, uint64(0), *config.Seed)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("nonsense"))
}

func TestIsDatabasePath(t *testing.T) {
	assert.True(t, isDatabasePath("words.db"))
	assert.True(t, isDatabasePath("/tmp/WORDS.SQLITE"))
	assert.True(t, isDatabasePath("words.sqlite3"))
	assert.False(t, isDatabasePath("words.txt"))
	assert.False(t, isDatabasePath("-"))
}

func TestVersionCmd(t *testing.T) {
	dir := t.TempDir()
	out, err := runCmd(t, dir, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "glossolalia "+Version)

	_, err = os.Stat(filepath.Join(dir, "config.json"))
	assert.ErrorIs(t, err, os.ErrNotExist, "version must not touch the config file")
}

func TestSegmentCmd(t *testing.T) {
	out, err := runCmd(t, t.TempDir(), "segment", "banana", "x-ray")
	require.NoError(t, err)

	expected := `"banana"
CONSONANT	"b"
VOWEL	"a"
CONSONANT	"n"
VOWEL	"a"
CONSONANT	"n"
VOWEL	"a"

"x-ray"
CONSONANT	"x"
PUNCTUATION	"-"
CONSONANT	"r"
VOWEL	"a"
CONSONANT	"y"
`
	assert.Equal(t, expected, out)
}

func TestSegmentCmdRequiresArgs(t *testing.T) {
	_, err := runCmd(t, t.TempDir(), "segment")
	assert.Error(t, err)
}

func TestGenerateCmdSeeded(t *testing.T) {
	dir := t.TempDir()
	source := writeWords(t, dir, "banana", "bandana", "cabana", "savanna", "anaconda")
	args := []string{"generate", "--source", source, "--seed", "42", "-n", "25"}

	first, err := runCmd(t, dir, args...)
	require.NoError(t, err)
	second, err := runCmd(t, dir, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second, "the same seed must produce the same words")

	lines := strings.Split(strings.TrimSuffix(first, "\n"), "\n")
	assert.Len(t, lines, 25)

	// Every generated word is made only of pieces the corpus contains.
	table := markov.Build([]string{"banana", "bandana", "cabana", "savanna", "anaconda"})
	for _, word := range lines {
		for _, piece := range markov.Split(word) {
			assert.NotZero(t, countInto(table, piece), "piece %q of %q is not in the model", piece, word)
		}
	}
}

func TestGenerateCmdSeedZero(t *testing.T) {
	dir := t.TempDir()
	source := writeWords(t, dir, "banana", "bandana", "cabana", "savanna", "anaconda")
	args := []string{"generate", "--source", source, "--seed", "0", "-n", "25"}

	first, err := runCmd(t, dir, args...)
	require.NoError(t, err)
	second, err := runCmd(t, dir, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second, "seed 0 must be as reproducible as any other seed")
}

func TestGenerateCmdLogsTraining(t *testing.T) {
	dir := t.TempDir()
	source := writeWords(t, dir, "banana", "bob")

	_, logs, err := execute(t, dir, "generate", "--source", source, "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, logs, `msg="Training completed"`)
	assert.Contains(t, logs, "words_processed=2")
	assert.Contains(t, logs, "states=5")
}

// countInto sums how often piece is reached from any state.
func countInto(table *markov.Table, piece string) int {
	total := 0
	for _, from := range table.States() {
		total += table.Count(from, markov.PieceState(piece))
	}
	return total
}

func TestGenerateCmdDeterministicSingleWord(t *testing.T) {
	dir := t.TempDir()
	source := writeWords(t, dir, "strength")

	out, err := runCmd(t, dir, "generate", "--source", source, "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, "strength\nstrength\nstrength\n", out)
}

func TestGenerateCmdOutputFile(t *testing.T) {
	dir := t.TempDir()
	source := writeWords(t, dir, "queue")
	output := filepath.Join(dir, "out.txt")

	out, err := runCmd(t, dir, "generate", "--source", source, "-n", "2", "--output", output)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "queue\nqueue\n", string(data))
}

func TestGenerateCmdEmptyCorpus(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(source, nil, 0o644))

	_, err := runCmd(t, dir, "generate", "--source", source, "-n", "1")
	assert.ErrorIs(t, err, markov.ErrEmptyModel)
}

func TestGenerateCmdMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := runCmd(t, dir, "generate", "--source", filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerateCmdUsesConfig(t *testing.T) {
	dir := t.TempDir()
	source := writeWords(t, dir, "ok")
	config := map[string]any{"word_source": source, "count": 4}
	data, err := json.Marshal(config)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), data, 0o644))

	out, err := runCmd(t, dir, "generate")
	require.NoError(t, err)
	assert.Equal(t, "ok\nok\nok\nok\n", out)
}

func TestImportAndGenerateFromDatabase(t *testing.T) {
	dir := t.TempDir()
	source := writeWords(t, dir, "sprout", "sprout")
	dbPath := filepath.Join(dir, "words.db")

	out, err := runCmd(t, dir, "import", "--db", dbPath, source)
	require.NoError(t, err)
	assert.Equal(t, "imported 2 words, 2 in store\n", out)

	out, err = runCmd(t, dir, "import", "--db", dbPath, source)
	require.NoError(t, err)
	assert.Equal(t, "imported 2 words, 4 in store\n", out)

	out, err = runCmd(t, dir, "import", "--db", dbPath, "--replace", source)
	require.NoError(t, err)
	assert.Equal(t, "imported 2 words, 2 in store\n", out)

	out, err = runCmd(t, dir, "generate", "--source", dbPath, "-n", "2")
	require.NoError(t, err)
	assert.Equal(t, "sprout\nsprout\n", out)
}

func TestStatsCmd(t *testing.T) {
	dir := t.TempDir()
	source := writeWords(t, dir, "banana", "bob")

	out, err := runCmd(t, dir, "stats", "--source", source)
	require.NoError(t, err)
	assert.Contains(t, out, "words:           2\n")
	assert.Contains(t, out, "states:          5\n")
	assert.Contains(t, out, "chains:          8\n")
	assert.Contains(t, out, "total frequency: 11\n")
	assert.Contains(t, out, "starting pieces: 1\n")
}
