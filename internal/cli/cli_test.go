package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geekmdtravis/geekmd-calc/internal/calculator"
	"github.com/geekmdtravis/geekmd-calc/internal/model"
	"github.com/geekmdtravis/geekmd-calc/internal/report"
)

// execute runs the root command with an absent config file so only
// defaults and the given flags apply.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml")}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestHomaIRCommand(t *testing.T) {
	out, err := execute(t, "homa-ir", "--insulin", "15", "--glucose", "85", "--fasting", "--decimal-places", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "HOMA-IR: 3.15 (significant insulin resistance)")
	assert.Contains(t, out, "Warnings: none")
}

func TestHomaIRCommand_JSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "homa-ir", "--insulin", "8", "--glucose", "110", "--fasting")
	require.NoError(t, err)

	var got struct {
		Result struct {
			Interpretation string   `json:"interpretation"`
			Warnings       []string `json:"warnings"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "significant insulin resistance", got.Result.Interpretation)
	assert.Equal(t, []string{calculator.WarnGlucoseImpaired}, got.Result.Warnings)
}

func TestHomaIRCommand_NotFasting(t *testing.T) {
	_, err := execute(t, "homa-ir", "--insulin", "10", "--glucose", "100")
	require.Error(t, err)
	assert.Equal(t, "HOMA-IR is only valid for fasting insulin and glucose", err.Error())
	assert.True(t, calculator.IsDomainError(err))
	assert.Equal(t, ExitRejected, GetExitCode(err))
}

func TestHomaIRCommand_MissingFlag(t *testing.T) {
	_, err := execute(t, "homa-ir", "--insulin", "10")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestHomaIRCommand_ConfigDecimalPlaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("homa_ir:\n  decimal_places: 1\n"), 0644))

	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--config", path, "homa-ir", "--insulin", "15", "--glucose", "85", "--fasting"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "HOMA-IR: 3.1 (")
}

func TestAscvdCommand(t *testing.T) {
	out, err := execute(t, "ascvd", "--method", "points", "--age", "55", "--total-chol", "213", "--hdl", "50", "--sbp", "120", "--male")
	require.NoError(t, err)
	assert.Contains(t, out, "ASCVD 10-year risk (by framingham (points)): 8% [intermediate]")
	assert.Contains(t, out, "Total: 11 points")
}

func TestAscvdCommand_DefaultMethod(t *testing.T) {
	out, err := execute(t, "ascvd", "--age", "55", "--total-chol", "213", "--hdl", "50", "--sbp", "120", "--male")
	require.NoError(t, err)
	assert.Contains(t, out, "ASCVD 10-year risk (by pooled cohort 2013): 5.4% [borderline]")
}

func TestAscvdCommand_All(t *testing.T) {
	out, err := execute(t, "ascvd", "--all", "--age", "55", "--total-chol", "213", "--hdl", "50", "--sbp", "120")
	require.NoError(t, err)
	assert.Contains(t, out, "(by framingham (points))")
	assert.Contains(t, out, "(by framingham (cox regression))")
	assert.Contains(t, out, "(by pooled cohort 2013)")
}

func TestAscvdCommand_UnknownMethod(t *testing.T) {
	_, err := execute(t, "ascvd", "--method", "tarot", "--age", "55", "--total-chol", "213", "--hdl", "50", "--sbp", "120")
	require.Error(t, err)
	assert.True(t, calculator.IsUnknownMethodError(err))
	assert.Equal(t, "Unknown method: tarot", err.Error())
	assert.Equal(t, ExitRejected, GetExitCode(err))
}

func TestAscvdCommand_NaNAge(t *testing.T) {
	var out string
	var err error
	require.NotPanics(t, func() {
		out, err = execute(t, "ascvd", "--method", "points", "--age", "NaN", "--total-chol", "213", "--hdl", "50", "--sbp", "120", "--male")
	})
	require.NoError(t, err)
	assert.Contains(t, out, "(by framingham (points)): 12% [intermediate]")
	assert.Contains(t, out, "Total: 13 points")
}

func TestAscvdCommand_NonFiniteRisk(t *testing.T) {
	for _, format := range []string{"text", "json"} {
		t.Run(format, func(t *testing.T) {
			out, err := execute(t, "--format", format, "ascvd", "--method", "pce", "--age", "55", "--total-chol", "213", "--hdl=-50", "--sbp", "120")
			require.Error(t, err)
			assert.Empty(t, out)
			assert.ErrorIs(t, err, report.ErrNonFiniteRisk)
			assert.Equal(t, ExitRejected, GetExitCode(err))
		})
	}
}

func TestHomaIRCommand_ConfigDecimalPlacesTooMany(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("homa_ir:\n  decimal_places: 101\n"), 0644))

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "homa-ir", "--insulin", "15", "--glucose", "85", "--fasting"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "homa_ir.decimal_places must not exceed 100")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	_, err := execute(t, "--format", "xml", "homa-ir", "--insulin", "15", "--glucose", "85", "--fasting")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCaseCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.yaml")
	content := `
patient: jane-doe
homa_ir:
  insulin: 15
  glucose: 85
  fasting: true
  decimal_places: 2
ascvd:
  methods: [pce, cox]
  age: 55
  is_genetic_male: true
  cholesterol_total: 213
  cholesterol_hdl: 50
  systolic_blood_pressure: 120
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, err := execute(t, "case", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Patient: jane-doe")
	assert.Contains(t, out, "HOMA-IR: 3.15 (significant insulin resistance)")
	assert.Contains(t, out, "(by pooled cohort 2013): 5.4% [borderline]")
	assert.Contains(t, out, "(by framingham (cox regression)): 10.2% [intermediate]")
}

func TestCaseCommand_RejectedInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.yaml")
	require.NoError(t, os.WriteFile(path, []byte("homa_ir:\n  insulin: 0\n  glucose: 85\n  fasting: true\n"), 0644))

	out, err := execute(t, "case", path)
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "Insulin must be a value greater than zero.", err.Error())
	assert.Equal(t, ExitRejected, GetExitCode(err))
}

func TestCaseCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "case", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitCommandError, GetExitCode(errors.New("boom")))
	assert.Equal(t, ExitRejected, GetExitCode(NewExitError(ExitRejected, "no")))

	_, calcErr := calculator.HomaIR(model.HomaIrInput{Insulin: 10, Glucose: 100})
	assert.Equal(t, ExitRejected, GetExitCode(calcErr))

	wrapped := WrapExitError(ExitCommandError, "load config", errors.New("denied"))
	assert.Equal(t, "load config: denied", wrapped.Error())
}
