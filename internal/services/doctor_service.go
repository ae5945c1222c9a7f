package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/medilinkhq/telehealth-backend/internal/apperr"
	"github.com/medilinkhq/telehealth-backend/internal/cache"
	"github.com/medilinkhq/telehealth-backend/internal/models"
	"gorm.io/gorm"
)

const searchCacheTTL = 2 * time.Minute

type DoctorService struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewDoctorService(db *gorm.DB, c *cache.Cache) *DoctorService {
	return &DoctorService{db: db, cache: c}
}

// DoctorSearchResult is one ranked search hit.
type DoctorSearchResult struct {
	UserID          uuid.UUID `json:"user_id"`
	Name            string    `json:"name"`
	Specialty       string    `json:"specialty"`
	ExperienceYears int       `json:"experience_years"`
	IsVerified      bool      `json:"is_verified"`
	AvailableSlots  int64     `json:"available_slots"`
	RankScore       int       `json:"rank_score"`
}

// CreateAvailability adds a slot after checking it does not overlap an
// existing one for the doctor on that date.
func (s *DoctorService) CreateAvailability(doctorID uuid.UUID, date, start, end time.Time) (*models.DoctorAvailability, error) {
	var existing []models.DoctorAvailability
	err := s.db.Where("doctor_id = ? AND date = ?", doctorID, date).Find(&existing).Error
	if err != nil {
		return nil, err
	}

	for _, slot := range existing {
		if overlaps(start, end, slot.StartTime, slot.EndTime) {
			return nil, apperr.Conflict("Availability overlaps an existing slot")
		}
	}

	slot := models.DoctorAvailability{
		ID:        uuid.New(),
		DoctorID:  doctorID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}
	if err := s.db.Create(&slot).Error; err != nil {
		return nil, fmt.Errorf("failed to create availability: %w", err)
	}
	return &slot, nil
}

// overlaps reports whether [startA, endA) and [startB, endB) intersect.
func overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && endA.After(startB)
}

// Search returns doctors matching the specialty filter, ranked by
// experience, verification and open slots. Results are memoized per
// query string for a short window.
func (s *DoctorService) Search(specialty string) ([]DoctorSearchResult, error) {
	cacheKey := "doctor_search:" + specialty
	if v := s.cache.Get(cacheKey); v != nil {
		if results, ok := v.([]DoctorSearchResult); ok {
			return results, nil
		}
	}

	query := s.db.Model(&models.DoctorProfile{}).Preload("User")
	if specialty != "" {
		query = query.Where("specialty ILIKE ?", "%"+specialty+"%")
	}

	var profiles []models.DoctorProfile
	if err := query.Find(&profiles).Error; err != nil {
		return nil, err
	}

	results := make([]DoctorSearchResult, 0, len(profiles))
	for _, p := range profiles {
		var freeSlots int64
		s.db.Model(&models.DoctorAvailability{}).
			Where("doctor_id = ? AND is_booked = false", p.UserID).
			Count(&freeSlots)

		rank := p.ExperienceYears * 2
		if p.IsVerified {
			rank += 20
		}
		if freeSlots > 0 {
			rank += 10
		}

		results = append(results, DoctorSearchResult{
			UserID:          p.UserID,
			Name:            p.User.Name,
			Specialty:       p.Specialty,
			ExperienceYears: p.ExperienceYears,
			IsVerified:      p.IsVerified,
			AvailableSlots:  freeSlots,
			RankScore:       rank,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RankScore > results[j].RankScore
	})

	s.cache.Set(cacheKey, results, searchCacheTTL)
	return results, nil
}
