package survey

import (
	"sync"
	"time"

	"github.com/AkshayV29/rssi-heatmap-tracker/pkg/models"
)

// RawPoint is an unvalidated (x, y, rssi) tuple, as entered by an
// operator or parsed from a CSV import.
type RawPoint struct {
	X    float64
	Y    float64
	RSSI int
}

// Store holds the measurement points of one survey session in insertion
// order. The session model is single-writer, but the HTTP layer may
// deliver concurrent requests for the same survey, so access is
// serialized internally.
type Store struct {
	mu     sync.RWMutex
	points []models.MeasurementPoint
}

// NewStore creates an empty measurement store.
func NewStore() *Store {
	return &Store{}
}

// Add validates and appends one measurement, deriving its quality band
// and stamping the capture time. Out-of-range RSSI is rejected with a
// ValidationError and leaves the store unchanged.
func (s *Store) Add(x, y float64, rssi int) (models.MeasurementPoint, error) {
	if err := ValidateRSSI(rssi); err != nil {
		return models.MeasurementPoint{}, err
	}

	point := models.MeasurementPoint{
		X:         x,
		Y:         y,
		RSSI:      rssi,
		Quality:   Classify(rssi),
		Timestamp: time.Now(),
	}

	s.mu.Lock()
	s.points = append(s.points, point)
	s.mu.Unlock()

	return point, nil
}

// Clear discards all points. Idempotent.
func (s *Store) Clear() {
	s.mu.Lock()
	s.points = nil
	s.mu.Unlock()
}

// Replace atomically swaps the store contents for the given raw tuples,
// applying the same per-point validation as Add. On the first invalid
// tuple the whole operation fails and the store is left untouched.
func (s *Store) Replace(rows []RawPoint) error {
	points := make([]models.MeasurementPoint, 0, len(rows))
	now := time.Now()
	for _, row := range rows {
		if err := ValidateRSSI(row.RSSI); err != nil {
			return err
		}
		points = append(points, models.MeasurementPoint{
			X:         row.X,
			Y:         row.Y,
			RSSI:      row.RSSI,
			Quality:   Classify(row.RSSI),
			Timestamp: now,
		})
	}

	s.mu.Lock()
	s.points = points
	s.mu.Unlock()

	return nil
}

// All returns a copy of the points in insertion order.
func (s *Store) All() []models.MeasurementPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.MeasurementPoint, len(s.points))
	copy(out, s.points)
	return out
}

// Count returns the number of points currently held.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.points)
}
