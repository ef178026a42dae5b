// Package diag validates the client generation settings at startup and
// reports coded diagnostics. It is the pre-flight gate: the host decides
// from its findings whether to wire the generation hook at all.
package diag

import (
	"fmt"
	"strings"

	"github.com/apibridge/tsgen/internal/config"
)

// Severity classifies a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is one startup configuration finding.
type Diagnostic struct {
	ID       string
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s (%s): %s", d.ID, d.Severity, d.Message)
}

// Diagnostic IDs. The numbering is historical; the gaps covered settings
// states a typed configuration cannot represent (non-string values,
// non-numeric debounce).
const (
	ErrLocatorBlank            = "tsgen.E002"
	ErrOutputDirWithoutLocator = "tsgen.E003"
	ErrLocatorWithoutOutputDir = "tsgen.E006"
	ErrNegativeDebounce        = "tsgen.E008"
	ErrInvalidFormat           = "tsgen.E011"
	WarnLocatorNoDots          = "tsgen.W001"
)

// CheckConfig runs the pre-flight configuration gate. No generation settings
// at all means generation is simply off and yields no findings; an
// error-severity finding means generation should stay disabled.
func CheckConfig(cfg *config.Config) []Diagnostic {
	hasLocator := cfg.APILocator != ""
	hasOutput := cfg.OutputDir != ""
	if !hasLocator && !hasOutput {
		return nil
	}

	var out []Diagnostic

	locator := strings.TrimSpace(cfg.APILocator)
	if hasLocator {
		switch {
		case locator == "":
			out = append(out, Diagnostic{
				ID:       ErrLocatorBlank,
				Severity: SeverityError,
				Message:  "TSGEN_API must not be blank",
			})
		case !strings.Contains(locator, "."):
			out = append(out, Diagnostic{
				ID:       WarnLocatorNoDots,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("TSGEN_API %q does not look like a dotted locator", locator),
			})
		}
	}

	if hasOutput && !hasLocator {
		out = append(out, Diagnostic{
			ID:       ErrOutputDirWithoutLocator,
			Severity: SeverityError,
			Message:  "TSGEN_OUTPUT_DIR is set but TSGEN_API is not; client generation stays disabled",
		})
	}
	if hasLocator && !hasOutput {
		out = append(out, Diagnostic{
			ID:       ErrLocatorWithoutOutputDir,
			Severity: SeverityError,
			Message:  "TSGEN_API is set but TSGEN_OUTPUT_DIR is not; client generation stays disabled",
		})
	}

	if cfg.DebounceSeconds < 0 {
		out = append(out, Diagnostic{
			ID:       ErrNegativeDebounce,
			Severity: SeverityError,
			Message:  fmt.Sprintf("TSGEN_DEBOUNCE_SECONDS must be non-negative, got %g", cfg.DebounceSeconds),
		})
	}

	if cfg.Format != "" && !cfg.Format.Valid() {
		out = append(out, Diagnostic{
			ID:       ErrInvalidFormat,
			Severity: SeverityError,
			Message: fmt.Sprintf("TSGEN_FORMAT must be one of %s, %s, %s; got %q",
				config.FormatFetch, config.FormatAxios, config.FormatAngular, cfg.Format),
		})
	}

	return out
}

// HasErrors reports whether any finding carries error severity.
func HasErrors(findings []Diagnostic) bool {
	for _, d := range findings {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
