package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	envFile := filepath.Join(t.TempDir(), "none.env")
	cmd.SetArgs(append([]string{"--env-file", envFile, "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeChapter(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func TestGenerateWritesJSON(t *testing.T) {
	dir := t.TempDir()
	ch1 := writeChapter(t, dir, "ch1.txt", "The cat sat on the mat.")
	ch2 := writeChapter(t, dir, "ch2.txt", "The dog sat on the rug.")
	outfile := filepath.Join(dir, "data", "out.json")

	_, err := runCLI(t, "generate", "--outfile", outfile, "--words", "5", ch1, ch2)
	require.NoError(t, err)

	data, err := os.ReadFile(outfile)
	require.NoError(t, err)

	var chapters [][]map[string]any
	require.NoError(t, json.Unmarshal(data, &chapters))
	require.Len(t, chapters, 2)
	require.Len(t, chapters[0], 3)
	assert.Equal(t, "cat", chapters[0][0]["word"])
	assert.Equal(t, "dog", chapters[1][0]["word"])
}

func TestGenerateSummary(t *testing.T) {
	dir := t.TempDir()
	ch1 := writeChapter(t, dir, "ch1.txt", "The Wart climbed the tall tree.")

	out, err := runCLI(t, "generate", "--summary", "-o", filepath.Join(dir, "out.json"), ch1)
	require.NoError(t, err)
	assert.Contains(t, out, "ch1.txt")
	assert.Contains(t, out, "wart")
}

func TestGenerateRequiresChapters(t *testing.T) {
	_, err := runCLI(t, "generate")
	assert.Error(t, err)
}

func TestGenerateMissingChapter(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, "generate", "-o", filepath.Join(dir, "out.json"), filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestGenerateInvalidWords(t *testing.T) {
	dir := t.TempDir()
	ch1 := writeChapter(t, dir, "ch1.txt", "cat")
	_, err := runCLI(t, "generate", "--words", "0", "-o", filepath.Join(dir, "out.json"), ch1)
	assert.Error(t, err)
}

func TestGenerateConfigFile(t *testing.T) {
	dir := t.TempDir()
	ch1 := writeChapter(t, dir, "ch1.txt", "alpha beta gamma delta epsilon")
	outfile := filepath.Join(dir, "vis.json")
	cfgPath := filepath.Join(dir, "lexivis.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("word_count = 2\noutfile = \""+outfile+"\"\n"), 0644))

	_, err := runCLI(t, "--config", cfgPath, "generate", ch1)
	require.NoError(t, err)

	data, err := os.ReadFile(outfile)
	require.NoError(t, err)
	var chapters [][]map[string]any
	require.NoError(t, json.Unmarshal(data, &chapters))
	require.Len(t, chapters[0], 2)
}

func TestStopwordsCommand(t *testing.T) {
	out, err := runCLI(t, "stopwords")
	require.NoError(t, err)

	assert.Contains(t, out, "\"said\"\tpolicy")
	assert.Contains(t, out, "\"the\"\tbase")
	assert.Equal(t, 181, strings.Count(out, "\n"))
}

func TestStopwordsSnowball(t *testing.T) {
	out, err := runCLI(t, "--snowball", "stopwords")
	require.NoError(t, err)
	assert.Contains(t, out, "snowball")
}
