package load

import (
	"time"

	"github.com/google/uuid"

	"load-analytics/internal/analytics"
	domainLoad "load-analytics/internal/domain/load"
)

// Request DTOs

// ActualTimeInput alters one actual time. A nil Time leaves the value as is,
// an empty Time clears it.
type ActualTimeInput struct {
	Time     *string `json:"time" validate:"omitempty,load_time"`
	Verified *bool   `json:"verified"`
}

type UpdateActualTimesRequest struct {
	LoadingArrival      *ActualTimeInput `json:"actual_loading_arrival"`
	LoadingDeparture    *ActualTimeInput `json:"actual_loading_departure"`
	OffloadingArrival   *ActualTimeInput `json:"actual_offloading_arrival"`
	OffloadingDeparture *ActualTimeInput `json:"actual_offloading_departure"`
}

// Response DTOs
type ActualTimeResponse struct {
	Time     *time.Time `json:"time"`
	Source   string     `json:"source,omitempty"`
	Verified bool       `json:"verified"`
}

type LoadResponse struct {
	ID                 uuid.UUID               `json:"id"`
	LoadNumber         string                  `json:"load_number"`
	Origin             string                  `json:"origin"`
	Destination        string                  `json:"destination"`
	CargoType          string                  `json:"cargo_type"`
	Status             domainLoad.Status       `json:"status"`
	LoadingDate        string                  `json:"loading_date"`
	OffloadingDate     string                  `json:"offloading_date,omitempty"`
	TimeWindow         string                  `json:"time_window"`
	TimeWindowCategory string                  `json:"time_window_category"`
	DriverName         *string                 `json:"driver_name,omitempty"`
	Times              *analytics.TimeWindow   `json:"times"`
	Backload           *analytics.BackloadInfo `json:"backload,omitempty"`

	ActualLoadingArrival      ActualTimeResponse `json:"actual_loading_arrival"`
	ActualLoadingDeparture    ActualTimeResponse `json:"actual_loading_departure"`
	ActualOffloadingArrival   ActualTimeResponse `json:"actual_offloading_arrival"`
	ActualOffloadingDeparture ActualTimeResponse `json:"actual_offloading_departure"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToLoadResponse(l *domainLoad.Load) *LoadResponse {
	return &LoadResponse{
		ID:                 l.ID,
		LoadNumber:         l.LoadNumber,
		Origin:             l.Origin,
		Destination:        l.Destination,
		CargoType:          l.CargoType,
		Status:             l.Status,
		LoadingDate:        l.LoadingDate,
		OffloadingDate:     l.OffloadingDate,
		TimeWindow:         l.TimeWindow,
		TimeWindowCategory: analytics.CategorizeTimeWindow(l.TimeWindow),
		DriverName:         l.DriverName,
		Times:              analytics.DecodeTimeWindow(l.Times),
		Backload:           analytics.DecodeBackload(l.Times),

		ActualLoadingArrival:      toActualTimeResponse(l.LoadingArrival),
		ActualLoadingDeparture:    toActualTimeResponse(l.LoadingDeparture),
		ActualOffloadingArrival:   toActualTimeResponse(l.OffloadingArrival),
		ActualOffloadingDeparture: toActualTimeResponse(l.OffloadingDeparture),

		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func toActualTimeResponse(a domainLoad.ActualTime) ActualTimeResponse {
	return ActualTimeResponse{
		Time:     a.At,
		Source:   string(a.Source),
		Verified: a.Verified,
	}
}
