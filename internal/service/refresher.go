package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	defaultInitialLoadDelay = 1 * time.Second
	defaultRefreshInterval  = 30 * time.Second
)

// RefresherService performs the initial default-tenant selection after a
// short delay, then regenerates analytics on a fixed interval while a tenant
// is active.
type RefresherService struct {
	tenants       *TenantService
	defaultTenant string
	logger        *zap.Logger

	initialDelay time.Duration
	interval     time.Duration
	stopCh       chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup
}

func NewRefresherService(tenants *TenantService, defaultTenant string, logger *zap.Logger) *RefresherService {
	return &RefresherService{
		tenants:       tenants,
		defaultTenant: defaultTenant,
		logger:        logger,
		initialDelay:  defaultInitialLoadDelay,
		interval:      defaultRefreshInterval,
		stopCh:        make(chan struct{}),
	}
}

// SetInterval changes the refresh period. Non-positive values are ignored.
func (s *RefresherService) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	s.interval = d
}

func (s *RefresherService) SetInitialDelay(d time.Duration) {
	s.initialDelay = d
}

// Start runs the refresher in a background goroutine.
func (s *RefresherService) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.logger.Info("analytics refresher started",
			zap.Duration("initial_delay", s.initialDelay),
			zap.Duration("interval", s.interval))

		initial := time.NewTimer(s.initialDelay)
		defer initial.Stop()

		select {
		case <-initial.C:
			s.loadDefault()
		case <-s.stopCh:
			s.logger.Info("analytics refresher stopped")
			return
		}

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if s.tenants.Loading() {
					continue
				}
				s.tenants.RefreshAnalytics(context.Background())
			case <-s.stopCh:
				s.logger.Info("analytics refresher stopped")
				return
			}
		}
	}()
}

// Stop cancels the refresher and waits for it to exit. It is safe to call
// more than once.
func (s *RefresherService) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *RefresherService) loadDefault() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	selected, err := s.tenants.SelectTenantIfLoading(ctx, s.defaultTenant)
	if err != nil {
		s.logger.Error("initial tenant selection failed",
			zap.String("tenant_id", s.defaultTenant),
			zap.Error(err))
		return
	}
	if !selected {
		// A sign-in picked a tenant first.
		s.logger.Info("initial tenant selection skipped",
			zap.String("active_tenant_id", s.tenants.ActiveTenantID()))
	}
}
