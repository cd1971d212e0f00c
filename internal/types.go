// Package internal holds the shared domain types of sareview.
package internal

import (
	"errors"
	"fmt"
	"time"
)

// Status is the outcome assigned to a practical assessment.
type Status string

const (
	StatusPassed   Status = "Passed"
	StatusCleared  Status = "Cleared"
	StatusResubmit Status = "Resubmit"
)

// Statuses lists the valid assessment outcomes in display order.
var Statuses = []Status{StatusPassed, StatusCleared, StatusResubmit}

// ValidStatus reports whether s is one of the known assessment outcomes.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if string(v) == s {
			return true
		}
	}
	return false
}

// Language is a translation target for a generated review.
type Language string

const (
	LanguageFrench Language = "French"
	LanguageDutch  Language = "Dutch"
)

// SupportedLanguages lists the translation targets the tool knows how to
// instruct. Any other value is passed through untranslated.
var SupportedLanguages = []Language{LanguageFrench, LanguageDutch}

// Supported reports whether l is a recognized translation target.
func (l Language) Supported() bool {
	for _, v := range SupportedLanguages {
		if v == l {
			return true
		}
	}
	return false
}

// AssessmentMeta carries the form fields that describe one practical
// assessment. It is fixed once generation starts and is consumed by the
// document assembler; only StudentName is required.
type AssessmentMeta struct {
	StudentName  string `json:"student_name"`
	ClientName   string `json:"client_name"`
	DogName      string `json:"dog_name"`
	ReviewDate   string `json:"review_date"`
	ReviewerName string `json:"reviewer_name"`
	Status       Status `json:"status"`
}

// ReviewRecord is one persisted generation cycle: the raw notes that went in
// and the draft that came out, plus the meta snapshot it was generated for.
type ReviewRecord struct {
	ID           string    `json:"id"`
	StudentName  string    `json:"student_name"`
	ClientName   string    `json:"client_name"`
	DogName      string    `json:"dog_name"`
	ReviewDate   string    `json:"review_date"`
	ReviewerName string    `json:"reviewer_name"`
	Status       Status    `json:"status"`
	RawNotes     string    `json:"raw_notes"`
	DraftText    string    `json:"draft_text"`
	Language     string    `json:"language"`
	CreatedAt    time.Time `json:"created_at"`
}

// ErrAPIKeyMissing is returned before any generative call is attempted when
// no service credential is configured.
var ErrAPIKeyMissing = errors.New("API key not configured")

// ValidationError reports a required form field that was empty or invalid at
// generation time. No external call is made when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError builds a field-specific validation failure.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
