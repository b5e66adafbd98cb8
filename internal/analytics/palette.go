package analytics

import (
	"strings"

	"load-analytics/internal/domain/load"
)

// FallbackColor is used for any key missing from a palette.
const FallbackColor = "#64748b"

var cargoColors = map[string]string{
	"VanSalesRetail": "#6366f1",
	"Retail":         "#8b5cf6",
	"Vendor":         "#a855f7",
	"RetailVendor":   "#d946ef",
	"Fertilizer":     "#22c55e",
	"Export":         "#ec4899",
	"BV":             "#f97316",
	"CBC":            "#eab308",
	"Packaging":      "#06b6d4",
}

var backloadDestinationColors = map[string]string{
	"BV":         "#f97316",
	"CBC":        "#eab308",
	"Packaging":  "#06b6d4",
	"Fertilizer": "#22c55e",
	"Other":      "#64748b",
}

var packagingColors = map[string]string{
	PackagingBins:    "#8b5cf6",
	PackagingCrates:  "#06b6d4",
	PackagingPallets: "#f59e0b",
}

var statusColors = map[load.Status]string{
	load.StatusScheduled: "#3b82f6",
	load.StatusInTransit: "#f59e0b",
	load.StatusDelivered: "#22c55e",
	load.StatusPending:   "#ef4444",
}

var categoryColors = map[PunctualityCategory]string{
	CategoryOnTime:       "#22c55e",
	CategoryEarly:        "#3b82f6",
	CategorySlightlyLate: "#f59e0b",
	CategoryLate:         "#ef4444",
}

func colorOf[K comparable](palette map[K]string, key K) string {
	if c, ok := palette[key]; ok {
		return c
	}
	return FallbackColor
}

// StatusDisplayName renders a status for report labels ("in-transit" -> "In Transit").
func StatusDisplayName(status load.Status) string {
	if status == load.StatusInTransit {
		return "In Transit"
	}
	s := string(status)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
