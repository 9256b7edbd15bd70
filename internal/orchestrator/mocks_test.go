// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package orchestrator

import (
	"context"

	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/portalapi"
	"github.com/stretchr/testify/mock"
)

// MockPortalAPI is a shared mock implementation of PortalAPI.
type MockPortalAPI struct {
	mock.Mock
}

func (m *MockPortalAPI) SetToken(token string) {
	m.Called(token)
}

func (m *MockPortalAPI) Token() string {
	return m.Called().String(0)
}

func (m *MockPortalAPI) Login(ctx context.Context, req portalapi.LoginRequest) (*portalapi.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portalapi.LoginResponse), args.Error(1)
}

func (m *MockPortalAPI) GetUser(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockPortalAPI) Logout(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockPortalAPI) ListApplications(ctx context.Context, view models.ViewKind) ([]models.Application, error) {
	args := m.Called(ctx, view)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Application), args.Error(1)
}

func (m *MockPortalAPI) DeleteApplication(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

// MockCredentialStore is a mock implementation of CredentialStore.
type MockCredentialStore struct {
	mock.Mock
}

func (m *MockCredentialStore) Load() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockCredentialStore) Save(token string) error {
	return m.Called(token).Error(0)
}

func (m *MockCredentialStore) Clear() error {
	return m.Called().Error(0)
}
