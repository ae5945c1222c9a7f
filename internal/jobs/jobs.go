package jobs

import (
	"log/slog"
	"time"

	"github.com/medilinkhq/telehealth-backend/internal/config"
	"github.com/medilinkhq/telehealth-backend/internal/models"
	"github.com/medilinkhq/telehealth-backend/internal/services"
	"gorm.io/gorm"
)

// StartNoShowSweep transitions stale confirmed appointments to no_show
// once a minute.
func StartNoShowSweep(appointments *services.AppointmentService, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				n, err := appointments.MarkNoShows()
				if err != nil {
					slog.Error("no-show sweep failed", "error", err)
				} else if n > 0 {
					slog.Info("no-show sweep completed", "updated", n)
				}
			case <-done:
				return
			}
		}
	}()
}

// StartAuditCleanup purges audit rows past the retention window, daily.
func StartAuditCleanup(db *gorm.DB, cfg *config.Config, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().Add(-cfg.AuditRetention)
				result := db.Where("created_at < ?", cutoff).Delete(&models.AuditLog{})
				if result.Error != nil {
					slog.Error("audit cleanup failed", "error", result.Error)
				} else if result.RowsAffected > 0 {
					slog.Info("audit cleanup completed", "deleted", result.RowsAffected)
				}
			case <-done:
				return
			}
		}
	}()
}

// StartDataRetention hard-deletes soft-deleted rows past their retention
// windows, daily: appointments after two years, users after thirty days.
func StartDataRetention(db *gorm.DB, cfg *config.Config, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				apptCutoff := time.Now().Add(-cfg.DeletedApptRetention)
				if err := db.Unscoped().
					Where("deleted_at IS NOT NULL AND deleted_at < ?", apptCutoff).
					Delete(&models.Appointment{}).Error; err != nil {
					slog.Error("appointment retention cleanup failed", "error", err)
				}

				userCutoff := time.Now().Add(-cfg.DeletedUserRetention)
				if err := db.Unscoped().
					Where("deleted_at IS NOT NULL AND deleted_at < ?", userCutoff).
					Delete(&models.User{}).Error; err != nil {
					slog.Error("user retention cleanup failed", "error", err)
				}
			case <-done:
				return
			}
		}
	}()
}
