package storage

import (
	"context"
	"log/slog"

	"github.com/Abhithakur7080/your-video/config"
	"github.com/Abhithakur7080/your-video/internal/errors"
	"github.com/Abhithakur7080/your-video/internal/infra/metrics"

	"github.com/sony/gobreaker/v2"
)

const defaultFailureThreshold = 5

// breaker guards blob store calls. Calls report how many bytes they wrote.
type breaker struct {
	cb *gobreaker.CircuitBreaker[int64]
}

func newBreaker(name string, cfg config.BreakerConfig, logger *slog.Logger) *breaker {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = defaultFailureThreshold
	}

	metrics.SetCircuitBreakerState(name, stateValue(gobreaker.StateClosed))

	return &breaker{cb: gobreaker.NewCircuitBreaker[int64](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			metrics.SetCircuitBreakerState(name, stateValue(to))
		},
		// A caller giving up is not a sign the store is down.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})}
}

func (b *breaker) run(fn func() (int64, error)) (int64, error) {
	return b.cb.Execute(fn)
}

func resultOf(err error) string {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "rejected"
	}

	return "failure"
}

func stateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
