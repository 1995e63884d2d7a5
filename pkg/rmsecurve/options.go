// Package rmsecurve compares simulated curves stored in a workbook against
// experimental reference curves and summarises the RMSE per test.
package rmsecurve

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/ukaji3/rmsecurve-go/pkg/rmsecurve/models"
	"github.com/ukaji3/rmsecurve-go/pkg/rmsecurve/parser"
	"gopkg.in/yaml.v2"
)

const (
	// DefaultFilePath is the workbook read when none is given.
	DefaultFilePath = "sample.xlsx"
	// DefaultScriptName prefixes output file names.
	DefaultScriptName = "rmsecurve"
	// DefaultOutputSuffix is appended to the sheet name in output file names.
	DefaultOutputSuffix = "_result111315"
	// DefaultTests is the number of tests in a sheet.
	DefaultTests = 36
	// DefaultRows is the number of data rows per test.
	DefaultRows = 8
)

// Config configures a run.
type Config struct {
	// FilePath is the input workbook.
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
	// SheetNames lists the sheets to process, in order.
	SheetNames []string `yaml:"sheet_names" envconfig:"SHEET_NAMES"`
	// Tests is the number of tests per sheet.
	Tests int `yaml:"tests" envconfig:"TESTS"`
	// Rows is the number of data rows read for each test.
	Rows int `yaml:"rows" envconfig:"ROWS"`
	// FirstColumn is the 1-based column of test1's OL data.
	FirstColumn int `yaml:"first_column" envconfig:"FIRST_COLUMN"`
	// ChannelGap is the column distance from OL to OT within a test.
	ChannelGap int `yaml:"channel_gap" envconfig:"CHANNEL_GAP"`
	// Stride is the column distance between consecutive tests.
	Stride int `yaml:"stride" envconfig:"STRIDE"`
	// Lengths are the truncation lengths, in output order.
	Lengths []int `yaml:"lengths" envconfig:"LENGTHS"`
	// Reference is the experimental curve.
	Reference models.Reference `yaml:"reference" ignored:"true"`
	// ScriptName prefixes output file names.
	ScriptName string `yaml:"script_name" envconfig:"SCRIPT_NAME"`
	// OutputSuffix follows the sheet name in output file names.
	OutputSuffix string `yaml:"output_suffix" envconfig:"OUTPUT_SUFFIX"`
	// OutputDir is where result workbooks are written.
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
}

// DefaultReference returns the measured OL/OT curves of the reference experiment.
func DefaultReference() models.Reference {
	return models.Reference{
		OL: []float64{0.1234, 0.6543, 0.9876, 1.6789, 2.4567, 3.1234, 4.4567, 4.9876},
		OT: []float64{0.1234, 0.4567, 0.8765, 1.3456, 1.9876, 2.8765, 3.9876, 5.1234},
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	layout := parser.DefaultTestLayout()
	return Config{
		FilePath:     DefaultFilePath,
		SheetNames:   []string{"rmse1"},
		Tests:        DefaultTests,
		Rows:         DefaultRows,
		FirstColumn:  layout.FirstColumn,
		ChannelGap:   layout.ChannelGap,
		Stride:       layout.Stride,
		Lengths:      []int{6, 7, 8},
		Reference:    DefaultReference(),
		ScriptName:   DefaultScriptName,
		OutputSuffix: DefaultOutputSuffix,
		OutputDir:    ".",
	}
}

// Layout returns the column layout of the tests.
func (c Config) Layout() parser.TestLayout {
	return parser.TestLayout{
		FirstColumn: c.FirstColumn,
		ChannelGap:  c.ChannelGap,
		Stride:      c.Stride,
	}
}

// TestCases returns the tests to extract from each sheet.
func (c Config) TestCases() []models.TestCase {
	return parser.TestRanges(c.Tests, c.Layout())
}

// Validate checks the configuration for values the run cannot work with.
func (c Config) Validate() error {
	switch {
	case c.FilePath == "":
		return fmt.Errorf("%w: file path is empty", ErrInvalidConfig)
	case len(c.SheetNames) == 0:
		return fmt.Errorf("%w: no sheets to process", ErrInvalidConfig)
	case c.Tests < 1:
		return fmt.Errorf("%w: tests must be positive, got %d", ErrInvalidConfig, c.Tests)
	case c.Rows < 1:
		return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidConfig, c.Rows)
	case c.FirstColumn < 1:
		return fmt.Errorf("%w: first column must be positive, got %d", ErrInvalidConfig, c.FirstColumn)
	case c.Stride < 1:
		return fmt.Errorf("%w: stride must be positive, got %d", ErrInvalidConfig, c.Stride)
	case c.ChannelGap < 0:
		return fmt.Errorf("%w: channel gap must not be negative, got %d", ErrInvalidConfig, c.ChannelGap)
	case len(c.Lengths) == 0:
		return fmt.Errorf("%w: no truncation lengths", ErrInvalidConfig)
	case c.ScriptName == "":
		return fmt.Errorf("%w: script name is empty", ErrInvalidConfig)
	}

	for _, l := range c.Lengths {
		if l < 1 {
			return fmt.Errorf("%w: length must be positive, got %d", ErrInvalidConfig, l)
		}
		if l > len(c.Reference.OL) || l > len(c.Reference.OT) {
			return fmt.Errorf("%w: length %d exceeds reference (OL %d, OT %d points)",
				ErrInvalidConfig, l, len(c.Reference.OL), len(c.Reference.OT))
		}
		if l > c.Rows {
			return fmt.Errorf("%w: length %d exceeds rows read (%d)", ErrInvalidConfig, l, c.Rows)
		}
	}
	return nil
}

// LoadConfig builds a configuration from the defaults, the YAML file at path
// (skipped when path is empty) and RMSECURVE_* environment variables, in that
// order of precedence, lowest first.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := envconfig.Process("RMSECURVE", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config from env: %w", err)
	}

	return cfg, nil
}
