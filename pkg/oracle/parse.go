// Package oracle extracts the JSON object embedded in a free-text model answer.
package oracle

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"paie-detect-be/pkg/reconcile"
)

// ErrOracleFormat matches every answer that carries no usable JSON object.
// Callers should treat it as retryable.
var ErrOracleFormat = errors.New("oracle answer has no parseable JSON object")

// FormatError keeps the raw answer for diagnostics. It must not be shown to
// end users.
type FormatError struct {
	RawText string
	Reason  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s", ErrOracleFormat.Error(), e.Reason)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrOracleFormat
}

// Outcome is either ParsedCandidate or ExtractionFailed.
type Outcome interface {
	outcome()
}

// ParsedCandidate holds the decoded object, still untrusted.
type ParsedCandidate struct {
	Candidate reconcile.Candidate
}

// ExtractionFailed holds the answer that could not be decoded.
type ExtractionFailed struct {
	RawText string
	Reason  string
}

func (ParsedCandidate) outcome()  {}
func (ExtractionFailed) outcome() {}

// Err converts the failure into an error matching ErrOracleFormat.
func (f ExtractionFailed) Err() error {
	return &FormatError{RawText: f.RawText, Reason: f.Reason}
}

// Parse decodes the span between the first '{' and the last '}' of text.
func Parse(text string) Outcome {
	var candidate map[string]any
	if err := ParseInto(text, &candidate); err != nil {
		var fe *FormatError
		errors.As(err, &fe)
		return ExtractionFailed{RawText: text, Reason: fe.Reason}
	}
	return ParsedCandidate{Candidate: reconcile.Candidate(candidate)}
}

// ParseInto applies the same extraction as Parse and decodes into v. Errors
// are always *FormatError.
func ParseInto(text string, v any) error {
	span, ok := extractObject(text)
	if !ok {
		return &FormatError{RawText: text, Reason: "no JSON object found"}
	}
	if err := json.Unmarshal([]byte(span), v); err != nil {
		return &FormatError{RawText: text, Reason: err.Error()}
	}
	return nil
}

func extractObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}
