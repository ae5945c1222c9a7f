package models

import (
	"time"

	"github.com/google/uuid"
)

// DoctorProfile carries the searchable attributes of a doctor account.
type DoctorProfile struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Specialty       string    `gorm:"size:100;index" json:"specialty"`
	ExperienceYears int       `gorm:"not null;default:0" json:"experience_years"`
	IsVerified      bool      `gorm:"not null;default:false" json:"is_verified"`
	Bio             string    `gorm:"type:text" json:"bio"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	User            User      `gorm:"foreignKey:UserID" json:"-"`
}
