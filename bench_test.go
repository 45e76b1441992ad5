package reloadbench_test

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/extkit/reloadbench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var iterationLine = regexp.MustCompile(`(?m)^Iteration (\d+): (\d+\.\d{2})ms$`)

var averageLine = regexp.MustCompile(`(?m)^Average time: (\d+\.\d{2})ms$`)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	out := &bytes.Buffer{}

	res, err := reloadbench.New().
		Page(genPage(t, dir, 255)).
		Mock(genMock(t, dir)).
		Output(out).
		Run()
	require.NoError(t, err)

	require.Len(t, res.Samples, reloadbench.DefaultIterations)
	sum := 0.0
	for _, s := range res.Samples {
		assert.GreaterOrEqual(t, s, 0.0)
		sum += s
	}
	assert.InDelta(t, sum/float64(len(res.Samples)), res.Average(), 1e-9)

	text := out.String()
	assert.Contains(t, text, "Warming up...")
	assert.Contains(t, text, "Running 10 iterations...")

	lines := iterationLine.FindAllStringSubmatch(text, -1)
	require.Len(t, lines, 10)
	mean := 0.0
	for i, m := range lines {
		assert.Equal(t, strconv.Itoa(i+1), m[1])
		v, err := strconv.ParseFloat(m[2], 64)
		require.NoError(t, err)
		mean += v
	}
	mean /= float64(len(lines))

	avg := averageLine.FindStringSubmatch(text)
	require.NotNil(t, avg, "missing average line in output:\n%s", text)
	printed, err := strconv.ParseFloat(avg[1], 64)
	require.NoError(t, err)

	// printed values are rounded to two decimals, so the mean of the
	// printed samples can drift from the printed average slightly
	assert.InDelta(t, mean, printed, 0.02)
}

func TestRunFewIterations(t *testing.T) {
	dir := t.TempDir()
	out := &bytes.Buffer{}

	res, err := reloadbench.New().
		Page(genPage(t, dir, 3)).
		Mock(genMock(t, dir)).
		Selector("tr:nth-child(3)").
		Iterations(2).
		Output(out).
		Run()
	require.NoError(t, err)

	assert.Len(t, res.Samples, 2)
	assert.Contains(t, out.String(), "Running 2 iterations...")
}

func TestRunMissingMockScript(t *testing.T) {
	dir := t.TempDir()

	// no browser should be launched, so this must fail fast
	start := time.Now()
	res, err := reloadbench.New().
		Page(genPage(t, dir, 255)).
		Mock(filepath.Join(dir, "missing.js")).
		Output(&bytes.Buffer{}).
		Run()

	require.ErrorIs(t, err, reloadbench.ErrMockScript)
	assert.Nil(t, res)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRunSelectorNeverMatches(t *testing.T) {
	dir := t.TempDir()

	res, err := reloadbench.New().
		Page(genPage(t, dir, 255)).
		Mock(genMock(t, dir)).
		Selector("#does-not-exist").
		Timeout(3 * time.Second).
		Output(&bytes.Buffer{}).
		Run()

	require.Error(t, err)
	assert.Nil(t, res)
}

func TestRunRejectsZeroIterations(t *testing.T) {
	res, err := reloadbench.New().Iterations(0).Run()

	require.ErrorIs(t, err, reloadbench.ErrIterations)
	assert.Nil(t, res)
}

func TestMustRunPanicsOnFailure(t *testing.T) {
	assert.Panics(t, func() {
		reloadbench.New().Iterations(-1).MustRun()
	})
}
