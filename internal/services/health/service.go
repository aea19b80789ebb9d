package health

import (
	"context"
	"database/sql"
	"time"
)

const pingTimeout = 2 * time.Second

// Status is the payload served by the health endpoint.
type Status struct {
	OK      bool   `json:"ok"`
	History string `json:"history"`
}

// Service reports process and conversion-history health.
type Service struct {
	DB *sql.DB
}

// NewService constructs a new health service. A nil db means history is kept in memory.
func NewService(db *sql.DB) *Service {
	return &Service{DB: db}
}

// Status pings the database when one is configured.
func (s *Service) Status(ctx context.Context) Status {
	if s == nil || s.DB == nil {
		return Status{OK: true, History: "memory"}
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.DB.PingContext(ctx); err != nil {
		return Status{OK: false, History: "postgres_unreachable"}
	}
	return Status{OK: true, History: "postgres"}
}
