// Package upload turns a one-shot resume / job-description submission into
// an analysis session, tolerating the long first-request latency of a
// cold backend.
package upload

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/talentrag/talentrag-cli/internal/talentrag"

	"go.uber.org/zap"
)

const (
	// DefaultDeadline bounds the whole upload; an idle backend instance can
	// take most of a minute to spin up before it answers.
	DefaultDeadline = 90 * time.Second
	// DefaultWarmupAfter is how long to wait before telling the caller the
	// backend is probably warming up. Informational only.
	DefaultWarmupAfter = 5 * time.Second
)

// ErrUploadInFlight rejects a second Submit while one is pending.
var ErrUploadInFlight = errors.New("an upload is already in flight")

// API is the slice of the backend client the orchestrator needs.
type API interface {
	Upload(ctx context.Context, resume, jobDescription talentrag.FilePart) (*talentrag.UploadResult, error)
}

type Orchestrator struct {
	api    API
	logger *zap.Logger

	Deadline    time.Duration
	WarmupAfter time.Duration

	inFlight atomic.Bool
}

func New(api API, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		api:         api,
		logger:      logger,
		Deadline:    DefaultDeadline,
		WarmupAfter: DefaultWarmupAfter,
	}
}

// Submit uploads both documents and returns the new session identifier with
// its analysis. If no response has arrived by WarmupAfter, onWarmup is
// called once; the advisory timer is disarmed as soon as the request
// settles. Expiry of the deadline cancels the request and yields a timeout
// error naming cold start as the likely cause. There is no automatic retry.
func (o *Orchestrator) Submit(ctx context.Context, resume, jobDescription talentrag.FilePart, onWarmup func()) (string, *talentrag.MatchAnalysis, error) {
	if !o.inFlight.CompareAndSwap(false, true) {
		return "", nil, ErrUploadInFlight
	}
	defer o.inFlight.Store(false)

	ctx, cancel := context.WithTimeout(ctx, o.Deadline)
	defer cancel()

	warmup := time.AfterFunc(o.WarmupAfter, func() {
		o.logger.Info("no response yet, backend may be warming up",
			zap.Duration("waited", o.WarmupAfter),
		)
		if onWarmup != nil {
			onWarmup()
		}
	})
	defer warmup.Stop()

	result, err := o.api.Upload(ctx, resume, jobDescription)
	if err != nil {
		if errors.Is(err, talentrag.ErrTimeout) {
			return "", nil, fmt.Errorf(
				"no response within %s, the backend may be cold-starting (first request can take 50-60 seconds), resubmit in a moment: %w",
				o.Deadline, err,
			)
		}
		return "", nil, err
	}

	o.logger.Info("analysis session created",
		zap.String("session", result.Session),
		zap.Int("match_score", result.Analysis.MatchScore),
	)

	return result.Session, &result.Analysis, nil
}
