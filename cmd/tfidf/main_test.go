package main

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const termConfig = `
scheme: ntn
stats:
  collection_size: 1000
  term_freq: 10
  wqf: 1
  wdf_max: 3
  doc_length_min: 5
  doc_length_max: 50
  average_length: 20
postings:
  - doc: d1
    wdf: 3
    doc_length: 10
    unique_terms: 5
  - doc: d2
    wdf: 1
    doc_length: 40
    unique_terms: 30
`

func runWith(t *testing.T, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "term.yaml")
	require.NoError(t, os.WriteFile(path, []byte(termConfig), 0o600))
	var stdout, stderr bytes.Buffer
	err := run(append([]string{"--config", path}, args...), &stdout, &stderr)
	return stdout.String(), err
}

func TestRunScores(t *testing.T) {
	out, err := runWith(t)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], fmt.Sprintf("%.6f", 3*math.Log(100)))
	assert.Contains(t, lines[2], fmt.Sprintf("%.6f", math.Log(100)))
	assert.True(t, strings.HasPrefix(lines[3], "max"))
	assert.Contains(t, lines[3], fmt.Sprintf("%.6f", 3*math.Log(100)))
}

func TestRunSchemeFlagOverridesFile(t *testing.T) {
	out, err := runWith(t, "--scheme", "bnn")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines[1], "1.000000")
	assert.Contains(t, lines[2], "1.000000")
}

func TestRunExplainAndEnvelope(t *testing.T) {
	out, err := runWith(t, "-e", "--envelope", "--scheme", "Ptn")
	require.NoError(t, err)
	assert.Contains(t, out, "TfIdfWeight(Ptn")
	assert.Contains(t, out, "fingerprint ")
	assert.Contains(t, out, "envelope ")
}

func TestRunInvalidScheme(t *testing.T) {
	_, err := runWith(t, "--scheme", "xx")
	assert.Error(t, err)

	_, err = runWith(t, "--slope", "0")
	assert.Error(t, err)
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"--help"}, &stdout, &stderr)
	assert.Equal(t, pflag.ErrHelp, err)
	assert.Contains(t, stderr.String(), "--scheme")
}

func TestRunWithoutLengthStatistics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "term.yaml")
	body := `
stats:
  collection_size: 100
  term_freq: 10
  wdf_max: 2
postings:
  - doc: d1
    wdf: 2
    doc_length: 70
    unique_terms: 40
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"--config", path}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), fmt.Sprintf("%.6f", 2*math.Log(10)))

	err := run([]string{"--config", path, "--scheme", "Ltn"}, &stdout, &stderr)
	assert.ErrorContains(t, err, "doc_length_max")
}
