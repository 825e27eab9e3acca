// Package journal implements the health journal operations on top of the
// local store: entries, goals, habits, meals, water intake, reports and
// batch analytics.
package journal

import (
	"errors"
	"sync"
	"time"

	"github.com/gupta19esha/HealthScribeGPT/pkg/analyzer"
	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
	"github.com/gupta19esha/HealthScribeGPT/pkg/store"
)

var (
	ErrEmptyContent    = errors.New("content must not be empty")
	ErrGoalNotFound    = errors.New("goal not found")
	ErrHabitNotFound   = errors.New("habit not found")
	ErrInvalidMealType = errors.New("invalid meal type: must be one of breakfast, lunch, dinner, snack")
	ErrInvalidDate     = errors.New("invalid date: expected YYYY-MM-DD")
)

// Service runs journal operations against a Store. It is safe for
// concurrent use: every read-modify-write of a collection happens under mu.
type Service struct {
	mu     sync.Mutex
	lastID int64

	store    *store.Store
	analyzer *analyzer.Analyzer
	batch    analyzer.BatchOptions
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithAnalyzer enables model-backed analysis.
func WithAnalyzer(a *analyzer.Analyzer) Option {
	return func(s *Service) { s.analyzer = a }
}

// WithBatchOptions bounds batch analytics.
func WithBatchOptions(opts analyzer.BatchOptions) Option {
	return func(s *Service) { s.batch = opts }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService returns a Service over st.
func NewService(st *store.Store, opts ...Option) *Service {
	s := &Service{
		store:    st,
		analyzer: analyzer.New(nil),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newID derives an id from now, bumped past the last one issued so records
// created within the same millisecond stay distinct. Callers hold mu.
func (s *Service) newID(now time.Time) int64 {
	id := health.NewID(now)
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Store returns the underlying store.
func (s *Service) Store() *store.Store {
	return s.store
}

// Now returns the service clock's current time.
func (s *Service) Now() time.Time {
	return s.now()
}
