package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/droplaunch/waitlist/internal/models"
	"github.com/droplaunch/waitlist/internal/repository"
	"github.com/droplaunch/waitlist/internal/telemetry"
	"github.com/droplaunch/waitlist/pkg/config"
	appErr "github.com/droplaunch/waitlist/pkg/errors"
	"github.com/droplaunch/waitlist/pkg/logger"
)

// TimestampLayout renders created_at in exports. It round-trips through
// time.Parse.
const TimestampLayout = time.RFC3339Nano

const csvHeader = "email,created_at"

// Stats summarizes the stored registrations.
type Stats struct {
	Total int64 `json:"total"`
}

type ExportService interface {
	List(ctx context.Context) ([]models.Registration, error)
	ExportJSON(ctx context.Context) ([]byte, error)
	ExportCSV(ctx context.Context) ([]byte, error)
	Stats(ctx context.Context) (Stats, error)
}

type exportService struct {
	repo        repository.RegistrationRepository
	persistence config.Persistence
}

func NewExportService(repo repository.RegistrationRepository, persistence config.Persistence) ExportService {
	return &exportService{repo: repo, persistence: persistence}
}

func (s *exportService) store() (repository.RegistrationRepository, error) {
	if s.persistence == config.PersistenceDisabled || s.repo == nil {
		return nil, appErr.StorageUnavailable()
	}
	return s.repo, nil
}

func (s *exportService) list(ctx context.Context) ([]models.Registration, error) {
	repo, err := s.store()
	if err != nil {
		return nil, err
	}
	items, err := repo.List(ctx)
	if err != nil {
		logger.L().Error("list registrations failed", zap.Error(err))
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	for i := range items {
		items[i].CreatedAt = items[i].CreatedAt.UTC()
	}
	return items, nil
}

func (s *exportService) List(ctx context.Context) ([]models.Registration, error) {
	items, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	telemetry.ExportsTotal.WithLabelValues("list").Inc()
	return items, nil
}

func (s *exportService) ExportJSON(ctx context.Context) ([]byte, error) {
	items, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(items)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "encode export failed")
	}
	telemetry.ExportsTotal.WithLabelValues("json").Inc()
	return out, nil
}

func (s *exportService) ExportCSV(ctx context.Context) ([]byte, error) {
	items, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(csvHeader)
	buf.WriteString("\r\n")
	for _, it := range items {
		buf.WriteString(quoteCSV(it.Email))
		buf.WriteByte(',')
		buf.WriteString(quoteCSV(it.CreatedAt.Format(TimestampLayout)))
		buf.WriteString("\r\n")
	}
	telemetry.ExportsTotal.WithLabelValues("csv").Inc()
	return buf.Bytes(), nil
}

func (s *exportService) Stats(ctx context.Context) (Stats, error) {
	repo, err := s.store()
	if err != nil {
		return Stats{}, err
	}
	n, err := repo.Count(ctx)
	if err != nil {
		logger.L().Error("count registrations failed", zap.Error(err))
		return Stats{}, fmt.Errorf("count registrations: %w", err)
	}
	return Stats{Total: n}, nil
}

// quoteCSV always quotes, doubling embedded quotes (RFC 4180).
func quoteCSV(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
