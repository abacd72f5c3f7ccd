package statemachine

import (
	"errors"
	"strings"

	"business-service/models"
)

// ErrInvalidStatus is returned for any status outside the admin lifecycle
var ErrInvalidStatus = errors.New("invalid status value")

// Stage describes one lifecycle status and what it means to the platform
type Stage struct {
	Status      models.BusinessStatus `json:"status"`
	Description string                `json:"description"`
	Initial     bool                  `json:"initial"`
}

// stages is the authoritative list of admin statuses. Admins may move a
// business between any two of them; there are no forbidden transitions.
var stages = []Stage{
	{Status: models.StatusPending, Description: "registered, awaiting admin review", Initial: true},
	{Status: models.StatusApproved, Description: "visible to customers"},
	{Status: models.StatusRejected, Description: "declined by an admin"},
}

var stageSet = func() map[models.BusinessStatus]bool {
	m := make(map[models.BusinessStatus]bool, len(stages))
	for _, s := range stages {
		m[s.Status] = true
	}
	return m
}()

// IsValid reports whether status is one of pending, approved, rejected
func IsValid(status models.BusinessStatus) bool {
	return stageSet[status]
}

// Validate returns ErrInvalidStatus naming the allowed values
func Validate(status models.BusinessStatus) error {
	if IsValid(status) {
		return nil
	}
	return errors.Join(ErrInvalidStatus, errors.New("must be one of: "+describeAll()))
}

// InitialStatus is the status assigned at registration
func InitialStatus() models.BusinessStatus {
	for _, s := range stages {
		if s.Initial {
			return s.Status
		}
	}
	return models.StatusPending
}

// AllStages returns the lifecycle table for documentation endpoints
func AllStages() []Stage {
	return stages
}

func describeAll() string {
	names := make([]string, 0, len(stages))
	for _, s := range stages {
		names = append(names, string(s.Status))
	}
	return strings.Join(names, ", ")
}
