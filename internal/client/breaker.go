package client

import (
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vyrodovalexey/avshopgw/internal/rpc"
)

// Breaker wraps gobreaker.CircuitBreaker for upstream calls. An open
// circuit is surfaced as a remote Unavailable error so handlers map it to
// 503 like any other outage.
type Breaker struct {
	cb *gobreaker.CircuitBreaker
}

// BreakerConfig holds circuit breaker settings.
type BreakerConfig struct {
	// Threshold is the minimum number of requests in a sampling window
	// before the failure ratio can trip the circuit.
	Threshold uint32

	// Timeout is how long the circuit stays open before probing.
	Timeout time.Duration

	// Logger for state change events.
	Logger *zap.Logger
}

// DefaultBreakerConfig returns a BreakerConfig with default values.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Threshold: 5,
		Timeout:   30 * time.Second,
	}
}

// NewBreaker creates a circuit breaker for the named upstream service.
func NewBreaker(name string, cfg BreakerConfig) *Breaker {
	if cfg.Threshold == 0 {
		cfg.Threshold = DefaultBreakerConfig().Threshold
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultBreakerConfig().Timeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.Threshold,
		Interval:    cfg.Timeout,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.Threshold && failureRatio >= 0.5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("circuit breaker state change",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			// Application-level rejections are not transport failures.
			switch status.Code(err) {
			case codes.OK, codes.Canceled, codes.InvalidArgument,
				codes.NotFound, codes.AlreadyExists, codes.PermissionDenied,
				codes.Unauthenticated, codes.FailedPrecondition, codes.OutOfRange:
				return true
			default:
				return false
			}
		},
	}

	return &Breaker{cb: gobreaker.NewCircuitBreaker(settings)}
}

// Execute runs fn through the circuit breaker.
func (b *Breaker) Execute(fn func() error) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, fn()
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return rpc.NewError(codes.Unavailable, "service temporarily unavailable")
	}
	return err
}

// State returns the current breaker state.
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}
