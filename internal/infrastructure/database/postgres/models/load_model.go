package models

import (
	"time"

	"github.com/google/uuid"
)

// LoadModel represents the database model for Loads
type LoadModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	LoadNumber     string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	Origin         string     `gorm:"type:text;not null"`
	Destination    string     `gorm:"type:text;not null"`
	CargoType      string     `gorm:"type:varchar(64);not null;index"`
	Status         string     `gorm:"type:varchar(20);not null;default:'scheduled';index"`
	LoadingDate    time.Time  `gorm:"type:date;not null;index"`
	OffloadingDate *time.Time `gorm:"type:date"`
	TimeWindow     string     `gorm:"column:time_window_label;type:text"`
	Times          string     `gorm:"column:time_window;type:text"`
	DriverName     *string    `gorm:"type:varchar(255)"`

	ActualLoadingArrival         *time.Time `gorm:"type:timestamptz"`
	ActualLoadingArrivalSource   string     `gorm:"type:varchar(10)"`
	ActualLoadingArrivalVerified bool       `gorm:"not null;default:false"`

	ActualLoadingDeparture         *time.Time `gorm:"type:timestamptz"`
	ActualLoadingDepartureSource   string     `gorm:"type:varchar(10)"`
	ActualLoadingDepartureVerified bool       `gorm:"not null;default:false"`

	ActualOffloadingArrival         *time.Time `gorm:"type:timestamptz"`
	ActualOffloadingArrivalSource   string     `gorm:"type:varchar(10)"`
	ActualOffloadingArrivalVerified bool       `gorm:"not null;default:false"`

	ActualOffloadingDeparture         *time.Time `gorm:"type:timestamptz"`
	ActualOffloadingDepartureSource   string     `gorm:"type:varchar(10)"`
	ActualOffloadingDepartureVerified bool       `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null;index"`
}

func (LoadModel) TableName() string {
	return "loads"
}
