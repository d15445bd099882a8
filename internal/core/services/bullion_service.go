package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"goldloan-portal/internal/core/domain"

	"github.com/dustin/go-humanize"
)

// Static per-gram rates used when live rates have never been fetched
var fallbackRates = map[string]float64{
	"8K":  2385,
	"16K": 4771,
	"18K": 5367,
	"22K": 6560,
	"24K": 7157,
}

// hiddenKarat is fetched for estimates but not listed on the dashboard
const hiddenKarat = "8K"

// Estimate is the loan a customer could get for some gold
type Estimate struct {
	Purity      string  `json:"purity"`
	Weight      float64 `json:"weight"`
	RatePerGram float64 `json:"ratePerGram"`
	LTV         float64 `json:"ltv"`
	Value       float64 `json:"estimatedValue"`
	Live        bool    `json:"live"`
}

// BullionService caches live gold rates
type BullionService struct {
	backend Backend

	mu        sync.RWMutex
	rates     []domain.GoldRate
	byKarat   map[string]float64
	fetchedAt time.Time
}

// NewBullionService creates a new bullion service
func NewBullionService(backend Backend) *BullionService {
	return &BullionService{backend: backend}
}

// Refresh fetches live rates and replaces the cache. The old cache is kept on failure.
func (s *BullionService) Refresh(ctx context.Context) error {
	rates, err := s.backend.GoldRates(ctx)
	if err != nil {
		return fmt.Errorf("refresh gold rates: %w", err)
	}

	byKarat := make(map[string]float64, len(rates))
	display := make([]domain.GoldRate, 0, len(rates))
	for _, r := range rates {
		karat := NormalizeKarat(r.Karat)
		byKarat[karat] = r.RatePerGram
		r.Karat = karat
		r.Price = FormatPrice(r.RatePerGram)
		display = append(display, r)
	}

	s.mu.Lock()
	s.rates = display
	s.byKarat = byKarat
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	log.Printf("✅ gold rates refreshed (%d karats)", len(rates))
	return nil
}

// Rates returns the dashboard list, fetching once when the cache is empty
func (s *BullionService) Rates(ctx context.Context) ([]domain.GoldRate, error) {
	if !s.loaded() {
		if err := s.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.GoldRate, 0, len(s.rates))
	for _, r := range s.rates {
		if r.Karat != hiddenKarat {
			out = append(out, r)
		}
	}
	return out, nil
}

// Estimate values weight grams of purity gold at the loan-to-value ratio.
// Live rates are used when present, otherwise the static table.
func (s *BullionService) Estimate(ctx context.Context, purity string, weight float64) (*Estimate, error) {
	if weight < domain.MinNetWeight {
		return nil, domain.Invalid("weight", "must be at least 0.1")
	}
	karat := NormalizeKarat(purity)

	if !s.loaded() {
		if err := s.Refresh(ctx); err != nil {
			log.Printf("⚠️ live gold rates unavailable, using static table: %v", err)
		}
	}

	s.mu.RLock()
	rate, live := s.byKarat[karat]
	s.mu.RUnlock()
	if !live {
		var ok bool
		if rate, ok = fallbackRates[karat]; !ok {
			return nil, domain.Invalid("purity", "unknown purity "+purity)
		}
	}

	value := rate * weight * domain.LTVRatio
	return &Estimate{
		Purity:      karat,
		Weight:      weight,
		RatePerGram: rate,
		LTV:         domain.LTVRatio,
		Value:       math.Round(value*100) / 100,
		Live:        live,
	}, nil
}

// FetchedAt is the time of the last successful refresh
func (s *BullionService) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}

func (s *BullionService) loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byKarat != nil
}

// NormalizeKarat maps "24 Karat" and "24k" to "24K"
func NormalizeKarat(label string) string {
	label = strings.TrimSpace(label)
	if fields := strings.Fields(label); len(fields) == 2 && strings.EqualFold(fields[1], "karat") {
		return fields[0] + "K"
	}
	return strings.ToUpper(label)
}

// FormatPrice renders a per-gram rate as "₹ 7,180 /gm"
func FormatPrice(ratePerGram float64) string {
	return "₹ " + humanize.Comma(int64(math.Round(ratePerGram))) + " /gm"
}
