package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/rmsecurve-go/pkg/rmsecurve"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, dir, sheet string, tests int) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName(f.GetSheetName(0), sheet))

	cfg := rmsecurve.DefaultConfig()
	cfg.Tests = tests
	ref := cfg.Reference
	for _, tc := range cfg.TestCases() {
		for row := range ref.OL {
			require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("%s%d", tc.Ranges.OL.Start, row+1), ref.OL[row]))
			require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("%s%d", tc.Ranges.OT.Start, row+1), ref.OT[row]))
		}
	}
	path := filepath.Join(dir, "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd(t *testing.T) {
	dir := t.TempDir()
	input := writeWorkbook(t, dir, "rmse1", 3)

	stdout, _, err := execute(t, input, "--tests", "3", "--output-dir", dir, "--script-name", "run")
	require.NoError(t, err)

	outPath := filepath.Join(dir, "run_rmse1_result111315.xlsx")
	assert.Contains(t, stdout, "RMSE values for sheet")
	assert.Contains(t, stdout, "rmse1")
	assert.Contains(t, stdout, outPath)
	assert.Equal(t, 1, strings.Count(stdout, "\n"))

	_, err = os.Stat(outPath)
	assert.NoError(t, err)
}

func TestRootCmd_JSON(t *testing.T) {
	dir := t.TempDir()
	input := writeWorkbook(t, dir, "rmse1", 2)

	stdout, _, err := execute(t, input, "--tests", "2", "-o", dir, "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"sheet_name":"rmse1"`)
	assert.Contains(t, stdout, `"test_name":"test2"`)
}

func TestRootCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := writeWorkbook(t, dir, "custom", 1)

	configPath := filepath.Join(dir, "rmsecurve.yaml")
	content := fmt.Sprintf("file_path: %q\nsheet_names: [custom]\ntests: 1\noutput_dir: %q\n", input, dir)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	stdout, _, err := execute(t, "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(dir, "rmsecurve_custom_result111315.xlsx"))
}

func TestRootCmd_MissingInput(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, filepath.Join(dir, "missing.xlsx"), "-o", dir)
	assert.ErrorIs(t, err, rmsecurve.ErrFileNotFound)
}

func TestRootCmd_BadLogLevel(t *testing.T) {
	_, _, err := execute(t, "--log-level", "loud")
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := parseLogLevel(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, tt.input)
	}
}

func TestRootCmd_ConfirmsWrittenSheetsBeforeFailure(t *testing.T) {
	dir := t.TempDir()
	input := writeWorkbook(t, dir, "rmse1", 1)

	stdout, _, err := execute(t, input, "--tests", "1", "-o", dir, "--sheet", "rmse1", "--sheet", "absent")
	assert.ErrorIs(t, err, rmsecurve.ErrSheetNotFound)
	assert.Contains(t, stdout, filepath.Join(dir, "rmsecurve_rmse1_result111315.xlsx"))
	assert.Equal(t, 1, strings.Count(stdout, "\n"))
}
