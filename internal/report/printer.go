package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/geekmdtravis/geekmd-calc/internal/model"
)

// ErrNonFiniteRisk is returned when an ASCVD risk cannot be reported
// because its inputs put it outside the real numbers.
var ErrNonFiniteRisk = errors.New("10-year risk is not a finite number; cholesterol, HDL and systolic blood pressure must be positive")

// HomaIrReport pairs a HOMA-IR input with its result.
type HomaIrReport struct {
	Input  model.HomaIrInput   `json:"input"`
	Result *model.HomaIrResult `json:"result"`
}

// AscvdReport pairs ASCVD inputs with the result of one method.
type AscvdReport struct {
	Input  model.AscvdData    `json:"input"`
	Result *model.AscvdResult `json:"result"`
}

// CaseReport holds everything computed for one case file.
type CaseReport struct {
	Patient string               `json:"patient,omitempty"`
	HomaIR  *HomaIrReport        `json:"homa_ir,omitempty"`
	Input   *model.AscvdData     `json:"ascvd_input,omitempty"`
	Ascvd   []*model.AscvdResult `json:"ascvd,omitempty"`
}

// Printer writes reports to W as "text" or "json".
type Printer struct {
	Format string
	W      io.Writer
}

// NewPrinter creates a Printer.
func NewPrinter(format string, w io.Writer) *Printer {
	return &Printer{Format: format, W: w}
}

// HomaIR writes a HOMA-IR report.
func (p *Printer) HomaIR(in model.HomaIrInput, res *model.HomaIrResult) error {
	if p.Format == "json" {
		return p.writeJSON(HomaIrReport{Input: in, Result: res})
	}
	_, err := io.WriteString(p.W, FormatHomaIR(in, res))
	return err
}

// Ascvd writes an ASCVD report.
func (p *Printer) Ascvd(data model.AscvdData, res *model.AscvdResult) error {
	if err := checkFinite(res); err != nil {
		return err
	}
	if p.Format == "json" {
		return p.writeJSON(AscvdReport{Input: data, Result: res})
	}
	_, err := io.WriteString(p.W, FormatAscvd(res))
	return err
}

// Case writes a case report.
func (p *Printer) Case(c *CaseReport) error {
	for _, res := range c.Ascvd {
		if err := checkFinite(res); err != nil {
			return err
		}
	}
	if p.Format == "json" {
		return p.writeJSON(c)
	}
	_, err := io.WriteString(p.W, FormatCase(c))
	return err
}

// checkFinite rejects NaN and infinite risks so text and json fail alike.
func checkFinite(res *model.AscvdResult) error {
	if math.IsNaN(res.TenYrRisk) || math.IsInf(res.TenYrRisk, 0) {
		return fmt.Errorf("%s: %w", res.Method, ErrNonFiniteRisk)
	}
	return nil
}

func (p *Printer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	_, err = p.W.Write(data)
	return err
}
