package dto

import (
	"strings"

	"github.com/jsamuelsen11/teamforge-tracker/internal/domain"
)

const msgRequired = domain.MsgRequired

// AppendDescriptionRequest represents the JSON body for appending text to an
// issue description. Empty text is accepted and changes nothing.
type AppendDescriptionRequest struct {
	Text string `json:"text"`
}

// Validate is a no-op; any text, including none, is acceptable.
func (r *AppendDescriptionRequest) Validate() error {
	return nil
}

// ChangeStatusRequest represents the JSON body for moving an issue to another
// tracker status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks that a status name is present.
// Returns a *domain.ValidationError if any checks fail.
func (r *ChangeStatusRequest) Validate() error {
	if strings.TrimSpace(r.Status) == "" {
		return &domain.ValidationError{Fields: map[string]string{"body.status": msgRequired}}
	}
	return nil
}
