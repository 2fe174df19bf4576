package cmd

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/adamsitnik/ClonePlayground/internal/harness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "clone")
	assert.Contains(t, out, "clone-modify")
	assert.Contains(t, out, "handle-clone-modify")
}

func TestRunRejectsInvalidSize(t *testing.T) {
	_, err := execute(t, "run", "--size", "0", "--reps", "1")
	assert.Error(t, err)
}

func TestRunRejectsMultiCharRepeatChar(t *testing.T) {
	_, err := execute(t, "run", "--size", "64", "--repeat-char", "AB", "--reps", "1")
	assert.Error(t, err)
}

func TestRunRejectsUnknownGroup(t *testing.T) {
	_, err := execute(t, "run", "bogus", "--size", "64", "--repeat-char", "A", "--reps", "1")
	assert.Error(t, err)
}

func TestRunCloneGroupJSON(t *testing.T) {
	if testing.Short() {
		t.Skip("runs real timing loops")
	}
	out, err := execute(t, "run", "clone",
		"--size", "1024", "--repeat-char", "A",
		"--reps", "1", "--warmup", "0", "--format", "json")
	require.NoError(t, err)

	var results []harness.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "string-clone", results[0].Variant)
	assert.Equal(t, "handle-clone", results[1].Variant)
	for _, r := range results {
		assert.Equal(t, "clone", r.Group)
		assert.Greater(t, r.Mean, time.Duration(0))
	}
}
