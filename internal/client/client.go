// Package client provides typed adapters over the gateway's upstream gRPC
// services. Each adapter method issues exactly one outbound call; failures
// are normalized into rpc.Error at this boundary so transport internals
// never leak to handlers.
package client

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"

	"github.com/vyrodovalexey/avshopgw/internal/observability"
	"github.com/vyrodovalexey/avshopgw/internal/rpc"
)

// Invoker issues unary RPC calls. *grpc.ClientConn satisfies it; tests
// substitute fakes.
type Invoker interface {
	Invoke(ctx context.Context, method string, args, reply interface{}, opts ...grpc.CallOption) error
}

// caller holds the shared call path for all adapters.
type caller struct {
	service string
	invoker Invoker
	breaker *Breaker
	logger  *zap.Logger
	metrics *observability.Metrics
}

// Option configures an adapter.
type Option func(*caller)

// WithLogger sets the adapter logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *caller) {
		c.logger = logger
	}
}

// WithBreaker sets a circuit breaker for the adapter's calls.
func WithBreaker(breaker *Breaker) Option {
	return func(c *caller) {
		c.breaker = breaker
	}
}

// WithMetrics sets the metrics sink for the adapter's calls.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(c *caller) {
		c.metrics = metrics
	}
}

func newCaller(service string, invoker Invoker, opts ...Option) caller {
	c := caller{
		service: service,
		invoker: invoker,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// call issues a single unary call. No retries: one call in, one result or
// normalized rpc.Error out.
func (c *caller) call(ctx context.Context, method string, in, out interface{}) error {
	do := func() error {
		return c.invoker.Invoke(ctx, method, in, out)
	}

	var err error
	if c.breaker != nil {
		err = c.breaker.Execute(do)
	} else {
		err = do()
	}

	if err != nil {
		re := rpc.FromError(err)
		c.observe(method, re.Code)
		c.logger.Debug("upstream call failed",
			zap.String("service", c.service),
			zap.String("method", method),
			zap.String("code", re.Code.String()),
			zap.String("message", re.Message),
		)
		return re
	}

	c.observe(method, codes.OK)
	return nil
}

func (c *caller) observe(method string, code codes.Code) {
	if c.metrics != nil {
		c.metrics.IncUpstreamCall(c.service, method, code.String())
	}
}
