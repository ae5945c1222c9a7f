package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/medilinkhq/telehealth-backend/internal/apperr"
	"github.com/medilinkhq/telehealth-backend/internal/models"
)

func TestDuplicateKeyOutcome(t *testing.T) {
	t.Run("existing row under the key replays", func(t *testing.T) {
		existing := &models.Appointment{ID: uuid.New(), IdempotencyKey: "key-1"}

		appt, replayed, err := duplicateKeyOutcome(existing, true)
		if err != nil {
			t.Fatalf("err = %v, want nil", err)
		}
		if !replayed {
			t.Error("replayed = false, want true")
		}
		if appt != existing {
			t.Error("did not return the existing appointment")
		}
	})

	t.Run("no row under the key is a slot conflict", func(t *testing.T) {
		appt, replayed, err := duplicateKeyOutcome(&models.Appointment{}, false)
		if appt != nil || replayed {
			t.Errorf("appt = %v, replayed = %v, want nil/false", appt, replayed)
		}
		if !errors.Is(err, apperr.ErrConflict) {
			t.Errorf("err = %v, want conflict", err)
		}
	})
}
