package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFile = "../../factory/testdata/input.json"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runSplit(t, args...)
	return out, err
}

func runSplit(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := newApp(&out, &errOut).Run(append([]string{"robopay"}, args...))
	return out.String(), errOut.String(), err
}

func TestPay_Sample(t *testing.T) {
	// GIVEN: The sample input document
	// WHEN: Running `robopay pay`
	// THEN: The JSON result is printed
	out, err := run(t, "pay", "--input", sampleFile)

	require.NoError(t, err)
	assert.JSONEq(t, `{"value": 13725}`, out)
}

func TestApp_SeparatesResultsFromDiagnostics(t *testing.T) {
	var out, errOut bytes.Buffer
	app := newApp(&out, &errOut)
	assert.Same(t, &out, app.Writer)
	assert.Same(t, &errOut, app.ErrWriter)

	stdout, stderr, err := runSplit(t, "pay", "--input", sampleFile)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value": 13725}`, stdout)
	assert.Empty(t, stderr)
}

func TestPay_MinuteSweepStrategy(t *testing.T) {
	out, err := run(t, "--strategy", "minute_sweep", "pay", "-i", sampleFile)

	require.NoError(t, err)
	assert.JSONEq(t, `{"value": 13725}`, out)
}

func TestPay_Breakdown(t *testing.T) {
	out, err := run(t, "pay", "--input", sampleFile, "--breakdown")

	require.NoError(t, err)
	assert.Contains(t, out, "extraNight")
	assert.Contains(t, out, "8925")
	assert.Contains(t, out, "13725")
}

func TestPay_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "pay", "--input", "testdata/does-not-exist.json")
		assert.ErrorContains(t, err, "failed to open input")
	})

	t.Run("unknown strategy", func(t *testing.T) {
		_, err := run(t, "--strategy", "hourly", "pay", "--input", sampleFile)
		assert.Error(t, err)
	})
}

func TestSegments(t *testing.T) {
	out, err := run(t, "segments", "--input", sampleFile)

	require.NoError(t, err)
	assert.Contains(t, out, "standardDay")
	assert.Contains(t, out, "standardNight")
	assert.Contains(t, out, "extraNight")
}

func TestScenarios(t *testing.T) {
	out, err := run(t, "scenarios")
	require.NoError(t, err)
	assert.Contains(t, out, "friday-night")
	assert.Contains(t, out, "weekend-marathon")

	out, err = run(t, "scenarios", "run", "sunday-into-monday")
	require.NoError(t, err)
	assert.JSONEq(t, `{"value": 6900}`, out)

	_, err = run(t, "scenarios", "run", "night-owl")
	assert.Error(t, err)

	_, err = run(t, "scenarios", "run")
	assert.ErrorContains(t, err, "expected one scenario id")
}

func TestScenarioRun_BreakdownListsBreaks(t *testing.T) {
	out, err := run(t, "scenarios", "run", "long-haul", "--breakdown")

	require.NoError(t, err)
	// First break after 8h from 06:00, second after another 9h cycle.
	assert.Contains(t, out, "2025-03-10T14:00:00")
	assert.Contains(t, out, "2025-03-10T23:00:00")
}
