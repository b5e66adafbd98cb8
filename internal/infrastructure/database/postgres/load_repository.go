package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"load-analytics/internal/domain/load"
	"load-analytics/internal/infrastructure/database/postgres/models"
)

const dateLayout = "2006-01-02"

type LoadRepository struct {
	db *DB
}

func NewLoadRepository(db *DB) *LoadRepository {
	return &LoadRepository{db: db}
}

func (r *LoadRepository) GetByID(ctx context.Context, loadID uuid.UUID) (*load.Load, error) {
	var dbModel models.LoadModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", loadID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, load.ErrLoadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get load: %w", err)
	}

	return toLoadEntity(&dbModel), nil
}

func (r *LoadRepository) ListByLoadingDate(ctx context.Context, from, to time.Time) ([]*load.Load, error) {
	var dbModels []models.LoadModel
	err := r.db.DB.WithContext(ctx).
		Where("loading_date BETWEEN ? AND ?", from.Format(dateLayout), to.Format(dateLayout)).
		Order("loading_date ASC, created_at ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list loads: %w", err)
	}

	loads := make([]*load.Load, len(dbModels))
	for i := range dbModels {
		loads[i] = toLoadEntity(&dbModels[i])
	}

	return loads, nil
}

func (r *LoadRepository) ModifyActualTimes(ctx context.Context, loadID uuid.UUID, fn func(*load.Load) (bool, error)) (*load.Load, error) {
	var modified *load.Load

	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dbModel models.LoadModel
		err := lockLoad(tx, loadID).First(&dbModel).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return load.ErrLoadNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock load: %w", err)
		}

		l := toLoadEntity(&dbModel)
		changed, err := fn(l)
		if err != nil {
			return err
		}
		modified = l
		if !changed {
			return nil
		}

		l.UpdatedAt = time.Now()
		result := tx.Model(&models.LoadModel{}).
			Where("id = ?", l.ID).
			Updates(actualTimeUpdates(l))
		if result.Error != nil {
			return fmt.Errorf("failed to update actual times: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return load.ErrLoadNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return modified, nil
}

// lockLoad scopes tx to one load row held with SELECT ... FOR UPDATE
func lockLoad(tx *gorm.DB, loadID uuid.UUID) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", loadID)
}

// SnapshotVersion combines the row count with the latest update time, so any
// insert, update or delete yields a new version.
func (r *LoadRepository) SnapshotVersion(ctx context.Context) (string, error) {
	var row struct {
		Total  int64
		Latest *time.Time
	}
	err := r.db.DB.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS total, MAX(updated_at) AS latest
		FROM loads
	`).Scan(&row).Error
	if err != nil {
		return "", fmt.Errorf("failed to get snapshot version: %w", err)
	}

	return snapshotVersion(row.Total, row.Latest), nil
}

func snapshotVersion(total int64, latest *time.Time) string {
	var stamp int64
	if latest != nil {
		stamp = latest.UnixMicro()
	}
	return fmt.Sprintf("%d-%d", total, stamp)
}

// Helper functions to convert between domain entities and database models
func actualTimeUpdates(l *load.Load) map[string]interface{} {
	return map[string]interface{}{
		"actual_loading_arrival":               l.LoadingArrival.At,
		"actual_loading_arrival_source":        string(l.LoadingArrival.Source),
		"actual_loading_arrival_verified":      l.LoadingArrival.Verified,
		"actual_loading_departure":             l.LoadingDeparture.At,
		"actual_loading_departure_source":      string(l.LoadingDeparture.Source),
		"actual_loading_departure_verified":    l.LoadingDeparture.Verified,
		"actual_offloading_arrival":            l.OffloadingArrival.At,
		"actual_offloading_arrival_source":     string(l.OffloadingArrival.Source),
		"actual_offloading_arrival_verified":   l.OffloadingArrival.Verified,
		"actual_offloading_departure":          l.OffloadingDeparture.At,
		"actual_offloading_departure_source":   string(l.OffloadingDeparture.Source),
		"actual_offloading_departure_verified": l.OffloadingDeparture.Verified,
		"time_window":                          l.Times,
		"updated_at":                           l.UpdatedAt,
	}
}

func toLoadEntity(m *models.LoadModel) *load.Load {
	l := &load.Load{
		ID:          m.ID,
		LoadNumber:  m.LoadNumber,
		Origin:      m.Origin,
		Destination: m.Destination,
		CargoType:   m.CargoType,
		Status:      load.Status(m.Status),
		LoadingDate: m.LoadingDate.Format(dateLayout),
		TimeWindow:  m.TimeWindow,
		Times:       m.Times,
		DriverName:  m.DriverName,

		LoadingArrival:      actualTime(m.ActualLoadingArrival, m.ActualLoadingArrivalSource, m.ActualLoadingArrivalVerified),
		LoadingDeparture:    actualTime(m.ActualLoadingDeparture, m.ActualLoadingDepartureSource, m.ActualLoadingDepartureVerified),
		OffloadingArrival:   actualTime(m.ActualOffloadingArrival, m.ActualOffloadingArrivalSource, m.ActualOffloadingArrivalVerified),
		OffloadingDeparture: actualTime(m.ActualOffloadingDeparture, m.ActualOffloadingDepartureSource, m.ActualOffloadingDepartureVerified),

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.OffloadingDate != nil {
		l.OffloadingDate = m.OffloadingDate.Format(dateLayout)
	}
	return l
}

func actualTime(at *time.Time, source string, verified bool) load.ActualTime {
	return load.ActualTime{At: at, Source: load.TimeSource(source), Verified: verified}
}
