// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the agent tools.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/scout/internal/adapters/scheduler"
	"github.com/okian/scout/internal/adapters/session"
	"github.com/okian/scout/internal/domain/analysis"
	"github.com/okian/scout/internal/domain/catalog"
	"github.com/okian/scout/internal/domain/dataset"
	"github.com/okian/scout/internal/domain/filter"
	"github.com/okian/scout/internal/domain/scoring"
	"github.com/okian/scout/pkg/logger"
	"github.com/okian/scout/pkg/metrics"
)

// Defaults of a new Service.
const (
	defaultSessionTTL      = time.Hour
	defaultSessionCapacity = 64
	defaultSweepSchedule   = "@every 1m"
	defaultMaxRows         = 100_000
	defaultTopN            = 10
	defaultMaxTopN         = 100
	compareMaxPlayers      = 5
	stopTimeout            = 5 * time.Second
)

// Service implements the API dependencies for the scouting system.
type Service struct {
	mu sync.RWMutex

	// Core components
	catalog   *catalog.Catalog
	engine    *scoring.Engine
	sessions  session.Store
	scheduler *scheduler.Scheduler

	// Configuration
	minMetrics      int
	sessionTTL      time.Duration
	sessionCapacity int
	sweepSchedule   string
	maxRows         int
	defaultTopN     int
	maxTopN         int

	// State
	started        bool
	datasetsLoaded atomic.Int64
	scoringRuns    atomic.Int64

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCatalog replaces the built-in profile catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithMinMetrics sets how many profile metrics a dataset must carry to be scored.
func WithMinMetrics(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.minMetrics = n
		}
	}
}

// WithSessionTTL sets the idle lifetime of an uploaded dataset.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.sessionTTL = ttl
	}
}

// WithSessionCapacity bounds the number of datasets held in memory.
func WithSessionCapacity(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.sessionCapacity = n
		}
	}
}

// WithSweepSchedule sets the cron schedule of the expired-session sweep.
func WithSweepSchedule(schedule string) Option {
	return func(s *Service) {
		if schedule != "" {
			s.sweepSchedule = schedule
		}
	}
}

// WithMaxRows caps the rows of an uploaded dataset.
func WithMaxRows(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxRows = n
		}
	}
}

// WithTopN sets the default and maximum ranking sizes.
func WithTopN(def, limit int) Option {
	return func(s *Service) {
		if def > 0 && limit >= def {
			s.defaultTopN = def
			s.maxTopN = limit
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		catalog:         catalog.Default(),
		minMetrics:      scoring.DefaultMinMetrics,
		sessionTTL:      defaultSessionTTL,
		sessionCapacity: defaultSessionCapacity,
		sweepSchedule:   defaultSweepSchedule,
		maxRows:         defaultMaxRows,
		defaultTopN:     defaultTopN,
		maxTopN:         defaultMaxTopN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the engine, the session store and the sweep job.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting scouting service...")

	s.engine = scoring.NewEngine(s.catalog,
		scoring.WithMinMetrics(s.minMetrics),
		scoring.WithLogger(s.logger.Named("scoring")),
	)

	s.sessions = session.NewInMemoryStore(
		session.WithCapacity(s.sessionCapacity),
		session.WithTTL(s.sessionTTL),
		session.WithOnRemove(s.onSessionRemoved),
	)

	s.scheduler = scheduler.New(s.logger)
	sweep := scheduler.JobFunc{JobName: "session-sweep", Fn: s.sweepSessions}
	if err := s.scheduler.AddJob(s.sweepSchedule, sweep); err != nil {
		return err
	}
	s.scheduler.Start()

	s.started = true
	s.logger.Info(ctx, "scouting service started",
		logger.Int("positions", len(s.catalog.Positions())),
		logger.Int("profiles", len(s.catalog.Profiles())),
		logger.Int("minMetrics", s.minMetrics),
		logger.Int("sessionCapacity", s.sessionCapacity),
		logger.Duration("sessionTTL", s.sessionTTL),
	)
	return nil
}

// Stop halts the sweep job. Held sessions are dropped.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	sched := s.scheduler
	s.sessions = nil
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()

	s.logger.Info(ctx, "stopping scouting service...")
	if err := sched.Stop(ctx); err != nil {
		s.logger.Warn(ctx, "scheduler did not stop cleanly", logger.Error(err))
	}
	metrics.UpdateActiveSessions(0)
	s.logger.Info(ctx, "scouting service stopped")
}

// Catalog returns the profile catalog in use.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// DatasetInfo describes an uploaded dataset.
type DatasetInfo struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Rows      int            `json:"rows"`
	Columns   []string       `json:"columns"`
	Positions map[string]int `json:"positions"`
	CreatedAt time.Time      `json:"createdAt"`
}

// LoadDataset parses an upload, validates its schema and opens a session for it.
func (s *Service) LoadDataset(ctx context.Context, name string, r io.Reader) (DatasetInfo, error) {
	store, err := s.store()
	if err != nil {
		return DatasetInfo{}, err
	}

	ds, err := dataset.Load(ctx, name, r, dataset.WithMaxRows(s.maxRows))
	if err != nil {
		metrics.RecordDatasetLoadFailure("parse")
		return DatasetInfo{}, err
	}
	if err := ds.Validate(dataset.DefaultSchema()); err != nil {
		metrics.RecordDatasetLoadFailure("missing_column")
		return DatasetInfo{}, err
	}

	sess, err := store.Create(ctx, ds)
	if err != nil {
		return DatasetInfo{}, fmt.Errorf("store dataset %q: %w", name, err)
	}

	s.datasetsLoaded.Add(1)
	metrics.RecordDatasetLoaded(format(name), ds.Len())
	metrics.UpdateActiveSessions(store.Len())
	s.logger.Info(ctx, "dataset loaded",
		logger.String("session", sess.ID),
		logger.String("name", name),
		logger.Int("rows", ds.Len()),
		logger.Int("columns", len(ds.Columns())),
	)
	return s.describe(sess), nil
}

// DatasetInfo returns the description of a live dataset.
func (s *Service) DatasetInfo(ctx context.Context, id string) (DatasetInfo, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return DatasetInfo{}, err
	}
	return s.describe(sess), nil
}

// DeleteDataset discards a dataset before its session expires.
func (s *Service) DeleteDataset(ctx context.Context, id string) error {
	store, err := s.store()
	if err != nil {
		return err
	}
	if err := store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "dataset deleted", logger.String("session", id))
	return nil
}

// AnalysisRequest selects the pool and profile of one analysis.
type AnalysisRequest struct {
	DatasetID string
	Position  string
	// Profile defaults to the first profile the position offers.
	Profile string
	// TopN defaults to the configured size and is capped by the configured maximum.
	TopN     int
	Criteria filter.Criteria
}

// Analysis is the outcome of one filter and score run.
type Analysis struct {
	DatasetID   string                 `json:"datasetId"`
	Position    string                 `json:"position"`
	Profile     string                 `json:"profile"`
	Description string                 `json:"description,omitempty"`
	PoolSize    int                    `json:"poolSize"`
	NoPlayers   bool                   `json:"noPlayers"`
	Players     []scoring.ScoredPlayer `json:"players"`
	Available   []catalog.MetricSpec   `json:"available"`
	Missing     []catalog.MetricSpec   `json:"missing"`
	Primary     []catalog.MetricSpec   `json:"primary"`
	Categories  []analysis.Group       `json:"categories"`
	Summaries   []analysis.Summary     `json:"summaries"`
	Comparison  analysis.Comparison    `json:"comparison"`

	// ranked holds the whole scored pool; Players is its top-N prefix.
	ranked []scoring.ScoredPlayer
}

// Analyze filters the dataset, scores the pool under the profile and builds the report.
// An empty pool is not an error: the result has NoPlayers set.
func (s *Service) Analyze(ctx context.Context, req AnalysisRequest) (*Analysis, error) {
	start := time.Now()
	out, err := s.analyze(ctx, req)

	profile := req.Profile
	if out != nil {
		profile = out.Profile
	}
	outcome := outcomeOf(out, err)
	metrics.RecordScoringRun(profile, outcome, float64(time.Since(start).Microseconds())/1000)
	s.scoringRuns.Add(1)

	if err != nil {
		s.logger.Warn(ctx, "analysis failed",
			logger.String("position", req.Position),
			logger.String("profile", profile),
			logger.String("outcome", outcome),
			logger.Error(err))
		return nil, err
	}
	metrics.RecordPlayersScored(len(out.ranked))
	metrics.RecordMissingMetrics(out.Profile, len(out.Missing))
	return out, nil
}

func (s *Service) analyze(ctx context.Context, req AnalysisRequest) (*Analysis, error) {
	if req.DatasetID == "" || req.Position == "" {
		return nil, fmt.Errorf("%w: dataset and position are required", ErrInvalidRequest)
	}
	if req.TopN < 0 {
		return nil, fmt.Errorf("%w: top must not be negative", ErrInvalidRequest)
	}

	sess, err := s.session(ctx, req.DatasetID)
	if err != nil {
		return nil, err
	}
	pos, err := s.catalog.Position(req.Position)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileFor(pos, req.Profile)
	if err != nil {
		return nil, err
	}

	pool := filter.ByPosition(req.Criteria.Apply(sess.Dataset), pos)
	out := &Analysis{
		DatasetID: sess.ID,
		Position:  pos.Name,
		Profile:   profile,
		PoolSize:  pool.Len(),
	}
	out.Description, _ = s.catalog.DescriptionFor(profile)

	if pool.Len() == 0 {
		specs, err := s.catalog.MetricsFor(profile)
		if err != nil {
			return nil, err
		}
		res := scoring.Resolve(pool, specs)
		out.Available, out.Missing = res.Available, res.Missing
		out.NoPlayers = true
		out.Players = []scoring.ScoredPlayer{}
		return out, nil
	}

	res, err := s.engine.Score(ctx, pool, profile)
	if err != nil {
		return nil, err
	}
	out.Available, out.Missing = res.Available, res.Missing
	out.Primary = analysis.PrimaryMetrics(res.Available, analysis.DefaultPrimaryMetrics)
	out.Categories = analysis.Categorize(res.Available)

	out.ranked = res.Players
	out.Players = scoring.TopN(res.Players, s.topN(req.TopN))
	out.Summaries = analysis.Summaries(res.Players, res.Available)
	out.Comparison = analysis.Compare(
		scoring.TopN(out.Players, compareMaxPlayers), res.Available, analysis.DefaultCompareMetrics)
	return out, nil
}

// Correlate runs the analysis and correlates two of its metrics over the returned players.
func (s *Service) Correlate(ctx context.Context, req AnalysisRequest, x, y string) (*analysis.Correlation, error) {
	if x == "" || y == "" {
		return nil, fmt.Errorf("%w: both metrics are required", ErrInvalidRequest)
	}
	out, err := s.Analyze(ctx, req)
	if err != nil {
		return nil, err
	}
	return analysis.Correlate(out.Players, x, y)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":         s.started,
		"positions":       len(s.catalog.Positions()),
		"profiles":        len(s.catalog.Profiles()),
		"minMetrics":      s.minMetrics,
		"sessionCapacity": s.sessionCapacity,
		"sessionTTL":      s.sessionTTL.String(),
		"datasetsLoaded":  s.datasetsLoaded.Load(),
		"scoringRuns":     s.scoringRuns.Load(),
	}
	if s.started {
		n := s.sessions.Len()
		stats["activeSessions"] = n
		metrics.UpdateActiveSessions(n)
	}
	return stats
}

func (s *Service) store() (session.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.sessions, nil
}

func (s *Service) session(ctx context.Context, id string) (session.Session, error) {
	store, err := s.store()
	if err != nil {
		return session.Session{}, err
	}
	return store.Get(ctx, id)
}

func (s *Service) profileFor(pos catalog.Position, requested string) (string, error) {
	offered, err := s.catalog.ProfilesFor(pos.Name)
	if err != nil {
		return "", err
	}
	if requested == "" {
		return offered[0], nil
	}
	for _, p := range offered {
		if p == requested {
			return p, nil
		}
	}
	if _, err := s.catalog.Profile(requested); err != nil {
		return "", err
	}
	return "", fmt.Errorf("%w: %q is not a %s profile", ErrProfileNotOffered, requested, pos.Name)
}

func (s *Service) topN(n int) int {
	if n == 0 {
		return s.defaultTopN
	}
	return min(n, s.maxTopN)
}

func (s *Service) describe(sess session.Session) DatasetInfo {
	positions := make(map[string]int)
	for _, p := range s.catalog.Positions() {
		positions[p.Name] = filter.ByPosition(sess.Dataset, p).Len()
	}
	return DatasetInfo{
		ID:        sess.ID,
		Name:      sess.Dataset.Name(),
		Rows:      sess.Dataset.Len(),
		Columns:   sess.Dataset.Columns(),
		Positions: positions,
		CreatedAt: sess.CreatedAt,
	}
}

func (s *Service) sweepSessions(ctx context.Context) error {
	store, err := s.store()
	if err != nil {
		return nil //nolint:nilerr // nothing to sweep once stopped
	}
	if n := store.Sweep(ctx); n > 0 {
		s.logger.Info(ctx, "expired sessions swept", logger.Int("removed", n))
	}
	return nil
}

func (s *Service) onSessionRemoved(sess session.Session, reason session.Reason) {
	metrics.RecordSessionRemoved(string(reason))
	s.logger.Debug(context.Background(), "session removed",
		logger.String("session", sess.ID),
		logger.String("reason", string(reason)))
}

func outcomeOf(out *Analysis, err error) string {
	var ime *scoring.InsufficientMetricsError
	switch {
	case err == nil && out.NoPlayers:
		return metrics.OutcomeNoPlayers
	case err == nil:
		return metrics.OutcomeOK
	case errors.As(err, &ime):
		return metrics.OutcomeInsufficientMetrics
	case errors.Is(err, catalog.ErrConfigNotFound), errors.Is(err, ErrSessionNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}

func format(name string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if ext == "" {
		return "unknown"
	}
	return ext
}
