package statemachine

import (
	"errors"
	"testing"

	"business-service/models"
)

func TestIsValid(t *testing.T) {
	cases := map[models.BusinessStatus]bool{
		models.StatusPending:  true,
		models.StatusApproved: true,
		models.StatusRejected: true,
		"Approved":            false,
		"deleted":             false,
		"":                    false,
	}
	for status, want := range cases {
		if got := IsValid(status); got != want {
			t.Errorf("IsValid(%q) = %v, want %v", status, got, want)
		}
	}
}

func TestValidateWrapsSentinel(t *testing.T) {
	err := Validate("archived")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if Validate(models.StatusApproved) != nil {
		t.Fatal("approved should be valid")
	}
}

func TestInitialStatusIsPending(t *testing.T) {
	if got := InitialStatus(); got != models.StatusPending {
		t.Fatalf("InitialStatus() = %q", got)
	}
}
