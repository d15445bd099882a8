package services

import (
	"context"
	"log"
	"time"

	"goldloan-portal/internal/core/session"

	"github.com/robfig/cron/v3"
)

// RefreshRecorder counts scheduled gold-rate refreshes
type RefreshRecorder interface {
	RateRefresh(err error)
}

// SlotPurger is a session storage that keeps expired slots until told to drop them
type SlotPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// CronService runs the background jobs: gold-rate refresh, idle-session
// eviction and, for SQL storage, expired slot cleanup
type CronService struct {
	cron        *cron.Cron
	bullion     *BullionService
	sessions    *session.Manager
	rateSpec    string
	idleTimeout time.Duration
	recorder    RefreshRecorder
	purger      SlotPurger
}

// NewCronService creates a new cron service. rateSpec is a cron spec such as "@every 15m".
func NewCronService(bullion *BullionService, sessions *session.Manager, rateSpec string, idleTimeout time.Duration) *CronService {
	return &CronService{
		cron:        cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
		bullion:     bullion,
		sessions:    sessions,
		rateSpec:    rateSpec,
		idleTimeout: idleTimeout,
	}
}

// WithRecorder sets the refresh recorder
func (s *CronService) WithRecorder(r RefreshRecorder) *CronService {
	s.recorder = r
	return s
}

// WithPurger enables the hourly expired slot cleanup
func (s *CronService) WithPurger(p SlotPurger) *CronService {
	s.purger = p
	return s
}

// Register adds the jobs without starting the scheduler
func (s *CronService) Register() error {
	if s.rateSpec != "" {
		if _, err := s.cron.AddFunc(s.rateSpec, s.RefreshRates); err != nil {
			return err
		}
	}
	if s.idleTimeout > 0 {
		if _, err := s.cron.AddFunc("@every 1m", s.SweepSessions); err != nil {
			return err
		}
	}
	if s.purger != nil {
		if _, err := s.cron.AddFunc("@hourly", s.PurgeSlots); err != nil {
			return err
		}
	}
	return nil
}

// Start launches the scheduler
func (s *CronService) Start() {
	s.cron.Start()
	log.Printf("🚀 CronService started (%d jobs)", len(s.cron.Entries()))
}

// Stop waits for running jobs and stops the scheduler
func (s *CronService) Stop() {
	<-s.cron.Stop().Done()
	log.Println("🛑 CronService stopped")
}

// RefreshRates reloads the gold rate cache
func (s *CronService) RefreshRates() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err := s.bullion.Refresh(ctx)
	if err != nil {
		log.Printf("❌ scheduled gold rate refresh failed: %v", err)
	}
	if s.recorder != nil {
		s.recorder.RateRefresh(err)
	}
}

// SweepSessions evicts idle sessions from memory
func (s *CronService) SweepSessions() {
	s.sessions.Sweep(s.idleTimeout)
}

// PurgeSlots deletes expired credential slots from SQL storage
func (s *CronService) PurgeSlots() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	n, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		log.Printf("❌ expired slot purge failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("🧹 purged %d expired session slots", n)
	}
}
