package guide

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/neexbeast/tourguide/internal/observability"
)

var errRemotePanic = errors.New("remote generator panicked")

// Provider serves guides from a remote Generator and falls back to the
// local generator whenever the remote one is absent or fails.
type Provider struct {
	remote   Generator
	fallback *FallbackGenerator
	timeout  time.Duration
	metrics  *observability.Metrics
	log      *slog.Logger
}

// NewProvider constructs a Provider. A nil remote puts the provider in
// fallback-only mode for its whole lifetime. metrics may be nil.
func NewProvider(remote Generator, fallback *FallbackGenerator, metrics *observability.Metrics, log *slog.Logger) *Provider {
	if fallback == nil {
		fallback = NewFallbackGenerator()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Provider{
		remote:   remote,
		fallback: fallback,
		timeout:  RemoteTimeout,
		metrics:  metrics,
		log:      log,
	}
}

// NewProviderWithTimeout is NewProvider with a custom remote timeout (used in tests).
func NewProviderWithTimeout(remote Generator, fallback *FallbackGenerator, timeout time.Duration, metrics *observability.Metrics, log *slog.Logger) *Provider {
	p := NewProvider(remote, fallback, metrics, log)
	p.timeout = timeout
	return p
}

// Ready reports whether a remote generator is configured.
func (p *Provider) Ready() bool {
	return p.remote != nil
}

// Mode reports which generator new requests are routed to first.
func (p *Provider) Mode() Mode {
	if p.Ready() {
		return ModeRemote
	}
	return ModeFallback
}

// ObtainItinerary returns a JSON guide for destination. It never fails:
// remote errors, timeouts and panics all yield the fallback document.
func (p *Provider) ObtainItinerary(ctx context.Context, destination string, count int) string {
	n := ClampCount(count)

	if !p.Ready() {
		return p.serveFallback(destination, n)
	}

	out, err := p.callRemote(ctx, destination, n)
	if err != nil {
		p.log.Warn("remote guide generation failed, using fallback", "destination", destination, "err", err.Error())
		p.log.Debug("remote guide generation error detail", "destination", destination, "count", n, "err", err)
		return p.serveFallback(destination, n)
	}

	p.metrics.ObserveGuide(string(ModeRemote))
	return out
}

type remoteResult struct {
	out string
	err error
}

// callRemote runs the remote generator under the provider timeout. The
// call happens on its own goroutine so a generator that ignores its
// context still cannot hold the request past the deadline.
func (p *Provider) callRemote(ctx context.Context, destination string, n int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	done := make(chan remoteResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.log.Error("remote guide generation panicked", "recover", r)
				done <- remoteResult{err: fmt.Errorf("%w: %v", errRemotePanic, r)}
			}
		}()
		out, err := p.remote.GenerateGuide(ctx, destination, n)
		done <- remoteResult{out: out, err: err}
	}()

	var res remoteResult
	select {
	case res = <-done:
	case <-ctx.Done():
		res = remoteResult{err: ctx.Err()}
	}
	p.metrics.ObserveRemote(remoteOutcome(res.err), time.Since(start))

	if res.err != nil {
		return "", fmt.Errorf("generating guide for %s: %w", destination, res.err)
	}
	return res.out, nil
}

func (p *Provider) serveFallback(destination string, n int) string {
	p.metrics.ObserveGuide(string(ModeFallback))
	return p.fallback.Render(destination, n)
}

func remoteOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, errRemotePanic):
		return "panic"
	default:
		return "error"
	}
}
