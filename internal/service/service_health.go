package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/store"
)

// healthService reports storage reachability by pinging the live database
// handle.
type healthService struct {
	db     *store.DB
	logger *logger.Logger
}

func NewHealthService(db *store.DB, logger *logger.Logger) HealthService {
	return &healthService{
		db:     db,
		logger: logger,
	}
}

// Ping checks the database connection.
func (s *healthService) Ping(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := s.db.PingContext(ctx); err != nil {
		log.Err(err).Msg("database ping failed")
		return fmt.Errorf("database ping failed: %w", store.ErrStorageUnavailable)
	}

	return nil
}
