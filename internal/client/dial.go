package client

import (
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"github.com/vyrodovalexey/avshopgw/internal/rpc"
)

// Dial creates a client connection to an upstream service. The connection
// is lazy: grpc.NewClient does not block on the initial transport handshake.
func Dial(target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	dialOpts := append(defaultDialOptions(), opts...)

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client for %s: %w", target, err)
	}
	return conn, nil
}

// defaultDialOptions returns the default gRPC dial options for upstream
// connections.
func defaultDialOptions() []grpc.DialOption {
	return []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.CallContentSubtype(rpc.CodecName),
		),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                30 * time.Second,
			Timeout:             10 * time.Second,
			PermitWithoutStream: true,
		}),
	}
}
