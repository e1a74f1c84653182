package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/geekmdtravis/geekmd-calc/internal/model"
	"github.com/geekmdtravis/geekmd-calc/internal/strategy"
)

// FormatHomaIR formats a HOMA-IR result as plain text.
func FormatHomaIR(in model.HomaIrInput, res *model.HomaIrResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("HOMA-IR: %s (%s)\n", formatNumber(res.Value), res.Interpretation))
	b.WriteString(fmt.Sprintf("  Insulin: %s uIU/mL\n", formatNumber(in.Insulin)))
	b.WriteString(fmt.Sprintf("  Glucose: %s mg/dL\n", formatNumber(in.Glucose)))

	if len(res.Warnings) == 0 {
		b.WriteString("  Warnings: none\n")
		return b.String()
	}
	b.WriteString("  Warnings:\n")
	for _, w := range res.Warnings {
		b.WriteString(fmt.Sprintf("    - %s\n", w))
	}
	return b.String()
}

// FormatAscvd formats an ASCVD result as plain text, including the point
// breakdown when present.
func FormatAscvd(res *model.AscvdResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("ASCVD 10-year risk (%s): %s", res.Method, FormatRisk(res)))
	if res.Category != "" {
		b.WriteString(fmt.Sprintf(" [%s]", res.Category))
	}
	b.WriteString("\n")

	if len(res.Factors) > 0 {
		for _, f := range res.Factors {
			b.WriteString(fmt.Sprintf("  %s: %+d (%s)\n", f.Name, f.Points, f.Commentary))
		}
		b.WriteString("  ─────────────────\n")
		b.WriteString(fmt.Sprintf("  Total: %d points\n", res.Points))
	}
	return b.String()
}

// FormatRisk renders the 10-year risk as a percentage. Point-based results
// are whole percentages and keep their table-bound qualifier.
func FormatRisk(res *model.AscvdResult) string {
	if res.Method == model.MethodFraminghamPoints {
		return fmt.Sprintf("%s%.0f%%", res.Qualifier, res.TenYrRisk)
	}
	return fmt.Sprintf("%.1f%%", strategy.Probability(res)*100)
}

// FormatCase formats every result computed for one case file.
func FormatCase(c *CaseReport) string {
	var b strings.Builder
	if c.Patient != "" {
		b.WriteString(fmt.Sprintf("Patient: %s\n", c.Patient))
	}
	if c.HomaIR != nil {
		b.WriteString("\n")
		b.WriteString(FormatHomaIR(c.HomaIR.Input, c.HomaIR.Result))
	}
	for _, res := range c.Ascvd {
		b.WriteString("\n")
		b.WriteString(FormatAscvd(res))
	}
	return b.String()
}

// formatNumber prints the shortest representation that round-trips.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
