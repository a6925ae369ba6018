package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/droplaunch/waitlist/internal/repository"
	"github.com/droplaunch/waitlist/internal/telemetry"
	"github.com/droplaunch/waitlist/pkg/config"
	appErr "github.com/droplaunch/waitlist/pkg/errors"
	"github.com/droplaunch/waitlist/pkg/logger"
)

type RegistrationService interface {
	// Register validates email and records it. The returned message is the
	// same whether the address was new or already registered.
	Register(ctx context.Context, email string) (string, error)
}

type registrationService struct {
	repo        repository.RegistrationRepository
	persistence config.Persistence
}

// NewRegistrationService builds the service. repo may be nil when persistence
// is disabled.
func NewRegistrationService(repo repository.RegistrationRepository, persistence config.Persistence) RegistrationService {
	return &registrationService{repo: repo, persistence: persistence}
}

func confirmation(email string) string {
	return fmt.Sprintf("Grazie! Sei registrato con %s", email)
}

func (s *registrationService) Register(ctx context.Context, email string) (string, error) {
	if err := ValidateEmail(email); err != nil {
		telemetry.RegistrationsTotal.WithLabelValues(telemetry.OutcomeInvalid).Inc()
		return "", err
	}

	if s.persistence == config.PersistenceDisabled {
		logger.L().Warn("persistence disabled, registration not recorded")
		telemetry.RegistrationsTotal.WithLabelValues(telemetry.OutcomeUnpersisted).Inc()
		return confirmation(email), nil
	}
	if s.repo == nil {
		telemetry.RegistrationsTotal.WithLabelValues(telemetry.OutcomeFailed).Inc()
		return "", appErr.StorageUnavailable()
	}

	created, err := s.repo.Insert(ctx, email)
	if err != nil {
		logger.L().Error("store registration failed", zap.Error(err))
		telemetry.RegistrationsTotal.WithLabelValues(telemetry.OutcomeFailed).Inc()
		return "", fmt.Errorf("register: %w", err)
	}

	if created {
		telemetry.RegistrationsTotal.WithLabelValues(telemetry.OutcomeCreated).Inc()
	} else {
		logger.L().Debug("duplicate registration absorbed")
		telemetry.RegistrationsTotal.WithLabelValues(telemetry.OutcomeDuplicate).Inc()
	}
	return confirmation(email), nil
}
