package resolver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/time/rate"

	"github.com/jtreveset/arrlist/internal/config"
	"github.com/jtreveset/arrlist/internal/http"
	"github.com/jtreveset/arrlist/internal/model"
	"github.com/jtreveset/arrlist/internal/musicbrainz"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a resolution progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Lookup resolves one artist name against a metadata service.
//
// musicbrainz.Client is the production implementation; tests substitute
// a fake to script failures without touching the network.
type Lookup interface {
	SearchArtist(ctx context.Context, name string) (model.Artist, error)
}

// Resolver turns an ordered list of artist names into an ordered list of
// resolutions, one request in flight at a time.
//
// The resolver owns the two time-related policies of a run:
//   - pacing: consecutive requests toward the service are never closer
//     than the configured delay (a hard requirement of MusicBrainz,
//     enforced with a rate limiter in front of every attempt)
//   - retries: transient failures are retried with exponential backoff,
//     honoring a server-provided Retry-After when it is longer
//
// A definitive "no such artist" answer is never retried.
type Resolver struct {
	settings *config.Settings
	lookup   Lookup
	limiter  *rate.Limiter

	resolved int32
	failed   int32
	total    int32

	onProgress func(ProgressEvent)
}

// New creates a Resolver.
//
// onProgress may be nil; when set it receives human-readable updates as
// the batch advances, suitable for a CLI log or a TUI.
func New(settings *config.Settings, lookup Lookup, onProgress func(ProgressEvent)) *Resolver {
	limit := rate.Inf
	if delay := settings.Delay(); delay > 0 {
		limit = rate.Every(delay)
	}

	return &Resolver{
		settings:   settings,
		lookup:     lookup,
		limiter:    rate.NewLimiter(limit, 1),
		onProgress: onProgress,
	}
}

// Resolve looks up every name in order and returns one Resolution per
// name, in input order.
//
// Unresolved names are reported in the result slice with their error;
// Resolve itself only fails when:
//   - the context is cancelled (the batch is abandoned), or
//   - strict mode is on and at least one name stayed unresolved, in
//     which case the returned error aggregates every failed name.
//
// In non-strict mode the returned error is always nil and the caller
// decides what to do with unresolved entries (the CLI omits them).
func (r *Resolver) Resolve(ctx context.Context, names []string) ([]model.Resolution, error) {
	atomic.StoreInt32(&r.resolved, 0)
	atomic.StoreInt32(&r.failed, 0)
	atomic.StoreInt32(&r.total, int32(len(names)))

	results := make([]model.Resolution, 0, len(names))
	for _, name := range names {
		artist, err := r.resolveOne(ctx, name)
		if err != nil && ctx.Err() != nil {
			return results, ctx.Err()
		}

		if err != nil {
			atomic.AddInt32(&r.failed, 1)
			results = append(results, model.Resolution{Name: name, Err: err})
			r.progress(ProgressEvent{
				Message: fmt.Sprintf("No MusicBrainz ID found for %q: %v", name, err),
				Level:   LevelWarning,
			})
			continue
		}

		atomic.AddInt32(&r.resolved, 1)
		results = append(results, model.Resolution{Name: name, MBID: artist.MBID})

		msg := fmt.Sprintf("Resolved %q -> %s", name, artist.MBID)
		if artist.Disambiguation != "" {
			msg += fmt.Sprintf(" (%s)", artist.Disambiguation)
		}
		r.progress(ProgressEvent{Message: msg, Level: LevelVerbose})
	}

	if r.settings.Strict {
		if err := strictError(results); err != nil {
			return results, err
		}
	}
	return results, nil
}

// Progress returns current resolution progress.
func (r *Resolver) Progress() (resolved, failed, total int32) {
	return atomic.LoadInt32(&r.resolved), atomic.LoadInt32(&r.failed), atomic.LoadInt32(&r.total)
}

// resolveOne performs the lookup for a single name, retrying transient
// failures up to the configured bound.
func (r *Resolver) resolveOne(ctx context.Context, name string) (model.Artist, error) {
	var lastErr error

	for attempt := 0; attempt <= r.settings.MaxRetries; attempt++ {
		// Pacing applies to every attempt, retries included.
		if err := r.limiter.Wait(ctx); err != nil {
			return model.Artist{}, err
		}

		artist, err := r.lookup.SearchArtist(ctx, name)
		if err == nil {
			return artist, nil
		}

		if errors.Is(err, musicbrainz.ErrNoMatch) {
			// Definitive answer. Retrying would only burn quota.
			return model.Artist{}, err
		}

		var retryAfter time.Duration
		var se *http.StatusError
		if errors.As(err, &se) {
			if !se.Transient() {
				return model.Artist{}, err
			}
			retryAfter = se.RetryAfter
		}

		lastErr = err
		if attempt == r.settings.MaxRetries {
			break
		}

		r.progress(ProgressEvent{
			Message: fmt.Sprintf("Retry %d/%d for %q: %v", attempt+1, r.settings.MaxRetries, name, err),
			Level:   LevelVerbose,
		})
		if err := r.waitForRetry(ctx, attempt, retryAfter); err != nil {
			return model.Artist{}, err
		}
	}

	return model.Artist{}, fmt.Errorf("retries exhausted: %w", lastErr)
}

// waitForRetry sleeps out the backoff before the next attempt.
//
// The wait is cooldown * exponent^attempt, or the server's Retry-After
// when that is longer.
func (r *Resolver) waitForRetry(ctx context.Context, attempt int, retryAfter time.Duration) error {
	cooldown := r.settings.RetryCooldown * math.Pow(r.settings.RetryExponent, float64(attempt))
	wait := time.Duration(cooldown * float64(time.Second))
	if retryAfter > wait {
		wait = retryAfter
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}

func (r *Resolver) progress(event ProgressEvent) {
	if r.onProgress != nil {
		r.onProgress(event)
	}
}

// strictError builds the aggregate strict-mode error, one entry per
// unresolved name. Returns nil when everything resolved.
func strictError(results []model.Resolution) error {
	var merr *multierror.Error
	for _, res := range results {
		if !res.Resolved() {
			merr = multierror.Append(merr, fmt.Errorf("unresolved artist %q: %w", res.Name, res.Err))
		}
	}
	return merr.ErrorOrNil()
}
