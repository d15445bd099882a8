package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"goldloan-portal/internal/core/domain"
	"goldloan-portal/internal/core/services"
	"goldloan-portal/internal/core/services/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProfileService_CachesCustomerProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := services.NewProfileService(backend)
	sess := customer(t)

	backend.EXPECT().CustomerProfile(gomock.Any()).
		Return(&domain.CustomerProfile{Name: "Asha", KycStatus: true}, nil).
		Times(1)

	for range 3 {
		p, err := svc.CustomerProfile(context.Background(), sess)
		require.NoError(t, err)
		assert.Equal(t, "Asha", p.Name)
	}
}

func TestProfileService_InvalidateRefetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := services.NewProfileService(backend)
	sess := customer(t)

	gomock.InOrder(
		backend.EXPECT().CustomerProfile(gomock.Any()).Return(&domain.CustomerProfile{KycStatus: false}, nil),
		backend.EXPECT().CustomerProfile(gomock.Any()).Return(&domain.CustomerProfile{KycStatus: true}, nil),
	)

	p, err := svc.CustomerProfile(context.Background(), sess)
	require.NoError(t, err)
	assert.False(t, p.KycStatus)

	svc.Invalidate(sess)
	p, err = svc.CustomerProfile(context.Background(), sess)
	require.NoError(t, err)
	assert.True(t, p.KycStatus)
}

func TestProfileService_ConcurrentMissesShareOneFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := services.NewProfileService(backend)
	sess := staff(t)

	backend.EXPECT().EmployeeProfile(gomock.Any()).
		DoAndReturn(func(context.Context) (*domain.EmployeeProfile, error) {
			time.Sleep(50 * time.Millisecond)
			return &domain.EmployeeProfile{Username: "ravi", Role: domain.FineRoleStaff}, nil
		}).
		Times(1)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := svc.EmployeeProfile(context.Background(), sess)
			assert.NoError(t, err)
			assert.Equal(t, "ravi", p.Username)
		}()
	}
	wg.Wait()
}

func TestProfileService_LogoutDuringFetchSkipsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := services.NewProfileService(backend)
	sess := customer(t)

	backend.EXPECT().CustomerProfile(gomock.Any()).DoAndReturn(func(context.Context) (*domain.CustomerProfile, error) {
		sess.Logout()
		return &domain.CustomerProfile{Name: "Old User"}, nil
	})

	_, err := svc.CustomerProfile(context.Background(), sess)
	assert.ErrorIs(t, err, services.ErrSessionChanged)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Empty(t, sess.Credential())
	_, cached := sess.Profile()
	assert.False(t, cached)
}

func TestProfileService_CredentialSwitchDuringFetchSkipsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := services.NewProfileService(backend)
	sess := staff(t)
	next := signed(t, map[string]any{"sub": "other", "role": "BANK_ADMIN", "exp": time.Now().Add(time.Hour).Unix()})

	backend.EXPECT().EmployeeProfile(gomock.Any()).DoAndReturn(func(context.Context) (*domain.EmployeeProfile, error) {
		require.NoError(t, sess.Store(next))
		return &domain.EmployeeProfile{Username: "previous", Role: domain.FineRoleStaff}, nil
	})

	_, err := svc.EmployeeProfile(context.Background(), sess)
	assert.ErrorIs(t, err, services.ErrSessionChanged)
	assert.Equal(t, next, sess.Credential())
	_, cached := sess.Profile()
	assert.False(t, cached)
}

func TestProfileService_FineRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := services.NewProfileService(backend)

	role, err := svc.FineRole(context.Background(), customer(t))
	require.NoError(t, err)
	assert.Empty(t, role)

	backend.EXPECT().EmployeeProfile(gomock.Any()).Return(&domain.EmployeeProfile{Role: domain.FineRoleAdmin}, nil)
	role, err = svc.FineRole(context.Background(), loggedIn(t, "BANK_ADMIN"))
	require.NoError(t, err)
	assert.Equal(t, domain.FineRoleAdmin, role)
}

func TestProfileService_UnauthorizedLogsOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := services.NewProfileService(backend)
	sess := customer(t)

	backend.EXPECT().CustomerProfile(gomock.Any()).Return(nil, &domain.APIError{Status: 401, Message: "expired"})

	_, err := svc.CustomerProfile(context.Background(), sess)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Empty(t, sess.Credential())
	_, cached := sess.Profile()
	assert.False(t, cached)
}

func TestProfileService_ForbiddenKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := services.NewProfileService(backend)
	sess := customer(t)

	backend.EXPECT().CustomerDetails(gomock.Any()).Return(nil, &domain.APIError{Status: 403})

	_, err := svc.CustomerDetails(context.Background(), sess)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.NotEmpty(t, sess.Credential())
}
