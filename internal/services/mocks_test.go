package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/droplaunch/waitlist/internal/models"
)

type mockRegistrationRepo struct {
	mock.Mock
}

func (m *mockRegistrationRepo) Insert(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockRegistrationRepo) List(ctx context.Context) ([]models.Registration, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Registration), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRegistrationRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
