package analytics

import (
	"fmt"

	"github.com/google/uuid"

	"load-analytics/internal/domain/load"
)

type loadOption func(*load.Load)

func newTestLoad(opts ...loadOption) *load.Load {
	l := &load.Load{
		ID:          uuid.New(),
		LoadNumber:  "LD-2026-0001",
		Origin:      "Farm A",
		Destination: "Depot B",
		CargoType:   "Retail",
		Status:      load.StatusScheduled,
		LoadingDate: "2026-03-10",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func withRoute(origin, destination string) loadOption {
	return func(l *load.Load) {
		l.Origin = origin
		l.Destination = destination
	}
}

func withStatus(s load.Status) loadOption {
	return func(l *load.Load) { l.Status = s }
}

func withCargo(cargo string) loadOption {
	return func(l *load.Load) { l.CargoType = cargo }
}

func withLoadingDate(date string) loadOption {
	return func(l *load.Load) { l.LoadingDate = date }
}

func withTimes(raw string) loadOption {
	return func(l *load.Load) { l.Times = raw }
}

func withWindowLabel(label string) loadOption {
	return func(l *load.Load) { l.TimeWindow = label }
}

func withDriver(name string) loadOption {
	return func(l *load.Load) { l.DriverName = &name }
}

// destinationArrival builds a payload with only the destination arrival pair set.
func destinationArrival(planned, actual string) string {
	return fmt.Sprintf(`{"origin":{},"destination":{"plannedArrival":%q,"actualArrival":%q}}`, planned, actual)
}
