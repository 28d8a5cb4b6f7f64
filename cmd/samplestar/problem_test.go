package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempPack(t *testing.T, yaml string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "problems.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func TestLoadProblemsParsesPack(t *testing.T) {
	path := writeTempPack(t, `
problems:
  - name: basic
    map_path: testdata/maps/basic.map
    start_x: 0
    start_y: 4
    goal_x: 4
    goal_y: 2
`)
	problems, err := LoadProblems(path)
	require.NoError(t, err)
	require.Len(t, problems, 1)
	assert.Equal(t, "basic", problems[0].Name)
	assert.Equal(t, 4, problems[0].GoalX)
}

func TestFindProblemReturnsErrorWhenMissing(t *testing.T) {
	_, err := FindProblem(nil, "nonexistent")
	var notFound *ErrProblemNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestApplyDefaultsFillsZeroValues(t *testing.T) {
	p := Problem{}.applyDefaults()
	assert.Equal(t, 32, p.Epoch)
	assert.Equal(t, 3, p.Kernel)
	assert.Equal(t, 1.0, p.Sigma)
	assert.Equal(t, 500, p.MaxSteps)
	assert.Equal(t, 3, p.UpdateKernel)
	assert.Equal(t, 1.0, p.UpdateSigma)
}

func TestApplyDefaultsPreservesNonZeroValues(t *testing.T) {
	p := Problem{Epoch: 5, Kernel: 7, Sigma: 2.0, MaxSteps: 10}.applyDefaults()
	assert.Equal(t, 5, p.Epoch)
	assert.Equal(t, 7, p.Kernel)
	assert.Equal(t, 2.0, p.Sigma)
	assert.Equal(t, 10, p.MaxSteps)
}

func TestApplyDefaultsUpdateKernelDefaultsToBlurKernel(t *testing.T) {
	p := Problem{Epoch: 5, Kernel: 7, Sigma: 2.0, MaxSteps: 10}.applyDefaults()
	assert.Equal(t, 7, p.UpdateKernel)
	assert.Equal(t, 2.0, p.UpdateSigma)
}

func TestApplyDefaultsPreservesExplicitUpdateKernel(t *testing.T) {
	p := Problem{
		Epoch: 5, Kernel: 7, Sigma: 2.0, MaxSteps: 10,
		UpdateKernel: 5, UpdateSigma: 1.5,
	}.applyDefaults()
	assert.Equal(t, 5, p.UpdateKernel)
	assert.Equal(t, 1.5, p.UpdateSigma)
}
