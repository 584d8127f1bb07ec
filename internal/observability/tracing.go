package observability

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/driftlab/snowflaked/internal/common/logging"
)

// RequestIDInterceptor attaches a request id to the context and to the
// request-scoped logger. Incoming x-request-id metadata is honored so IDs
// propagate across the fleet during peer sanity checks.
func RequestIDInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		requestID := extractRequestID(ctx)

		enriched := logger.With(
			zap.String("request_id", requestID),
			zap.String("method", info.FullMethod),
		)
		ctx = logging.WithLogger(ctx, enriched)

		return handler(ctx, req)
	}
}

func extractRequestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get("x-request-id"); len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}
	return uuid.New().String()
}
