package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cartavis/carta-go/core/signature"
)

// errReported marks a failure whose details were already written.
var errReported = errors.New("validation failed")

// CLIError represents a formatted CLI error with context
type CLIError struct {
	Type    string // "lookup", "parse", "input"
	Message string
	Details string
	Hint    string // How to fix it
}

// Error implements the error interface
func (e *CLIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Details != "" {
		b.WriteString("\n")
		b.WriteString(e.Details)
	}
	if e.Hint != "" {
		b.WriteString("\n")
		b.WriteString(e.Hint)
	}
	return b.String()
}

// FormatError formats an error for CLI output with colors
func FormatError(w io.Writer, err error, useColor bool) {
	if err == nil {
		return
	}

	var cliErr *CLIError
	var failed *signature.ValidationFailed
	switch {
	case errors.As(err, &cliErr):
		formatCLIError(w, cliErr, useColor)
	case errors.As(err, &failed):
		formatValidationFailed(w, failed, useColor)
	default:
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), err.Error())
	}
}

func formatCLIError(w io.Writer, err *CLIError, useColor bool) {
	_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), err.Message)

	if err.Details != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", err.Details)
	}

	if err.Hint != "" {
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Hint: ", ColorYellow, useColor), err.Hint)
	}
}

// formatValidationFailed prints the failure with the parameter's
// documentation as context.
func formatValidationFailed(w io.Writer, err *signature.ValidationFailed, useColor bool) {
	_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), err.Error())
	if err.Kind == signature.FailureUnexpected && err.Suggestion != "" {
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Hint: ", ColorYellow, useColor),
			fmt.Sprintf("rename %s to %s", err.Parameter, err.Suggestion))
	}
}
