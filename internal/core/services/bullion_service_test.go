package services_test

import (
	"context"
	"errors"
	"testing"

	"goldloan-portal/internal/core/domain"
	"goldloan-portal/internal/core/services"
	"goldloan-portal/internal/core/services/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func liveRates() []domain.GoldRate {
	return []domain.GoldRate{
		{Karat: "24 Karat", RatePerGram: 7180},
		{Karat: "22 Karat", RatePerGram: 6580.4},
		{Karat: "8 Karat", RatePerGram: 2400},
	}
}

func TestBullionService_RatesHideEightKarat(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := services.NewBullionService(backend)

	backend.EXPECT().GoldRates(gomock.Any()).Return(liveRates(), nil).Times(1)

	rates, err := svc.Rates(context.Background())
	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, "24K", rates[0].Karat)
	assert.Equal(t, "₹ 7,180 /gm", rates[0].Price)
	assert.Equal(t, "₹ 6,580 /gm", rates[1].Price)
	assert.False(t, svc.FetchedAt().IsZero())

	// served from cache
	_, err = svc.Rates(context.Background())
	require.NoError(t, err)
}

func TestBullionService_RefreshFailureKeepsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := services.NewBullionService(backend)

	gomock.InOrder(
		backend.EXPECT().GoldRates(gomock.Any()).Return(liveRates(), nil),
		backend.EXPECT().GoldRates(gomock.Any()).Return(nil, domain.ErrTransport),
	)

	require.NoError(t, svc.Refresh(context.Background()))
	assert.ErrorIs(t, svc.Refresh(context.Background()), domain.ErrTransport)

	rates, err := svc.Rates(context.Background())
	require.NoError(t, err)
	assert.Len(t, rates, 2)
}

func TestBullionService_EstimateLive(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := services.NewBullionService(backend)

	backend.EXPECT().GoldRates(gomock.Any()).Return(liveRates(), nil)

	est, err := svc.Estimate(context.Background(), "24k", 10)
	require.NoError(t, err)
	assert.True(t, est.Live)
	assert.Equal(t, "24K", est.Purity)
	assert.Equal(t, 7180.0, est.RatePerGram)
	assert.InDelta(t, 53850.0, est.Value, 0.001)

	// hidden on the dashboard but still priced
	est, err = svc.Estimate(context.Background(), "8K", 1)
	require.NoError(t, err)
	assert.InDelta(t, 1800.0, est.Value, 0.001)
}

func TestBullionService_EstimateFallsBackToStaticTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := services.NewBullionService(backend)

	backend.EXPECT().GoldRates(gomock.Any()).Return(nil, errors.New("connection refused")).AnyTimes()

	est, err := svc.Estimate(context.Background(), "22K", 10)
	require.NoError(t, err)
	assert.False(t, est.Live)
	assert.Equal(t, 6560.0, est.RatePerGram)
	assert.InDelta(t, 49200.0, est.Value, 0.001)
}

func TestBullionService_EstimateRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := services.NewBullionService(backend)

	_, err := svc.Estimate(context.Background(), "22K", 0.05)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	backend.EXPECT().GoldRates(gomock.Any()).Return(liveRates(), nil)
	_, err = svc.Estimate(context.Background(), "14K", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNormalizeKarat(t *testing.T) {
	tests := map[string]string{
		"24 Karat": "24K",
		"22 karat": "22K",
		"18k":      "18K",
		" 16K ":    "16K",
		"24 carat": "24 CARAT",
	}
	for in, want := range tests {
		assert.Equal(t, want, services.NormalizeKarat(in), in)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "₹ 7,180 /gm", services.FormatPrice(7180))
	assert.Equal(t, "₹ 1,234,568 /gm", services.FormatPrice(1234567.6))
	assert.Equal(t, "₹ 950 /gm", services.FormatPrice(949.5))
}
