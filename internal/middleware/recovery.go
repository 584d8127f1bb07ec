package middleware

import (
	"context"
	"runtime/debug"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Peer sanity probes are frequent and boring; keep them out of info logs.
var quietMethods = map[string]bool{
	"/snowflake.v1.SnowflakeService/GetWorkerId":  true,
	"/snowflake.v1.SnowflakeService/GetTimestamp": true,
}

func RecoveryInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("method", info.FullMethod),
					zap.String("stack", string(debug.Stack())),
				)
				err = status.Errorf(codes.Internal, "internal server error")
			}
		}()

		if quietMethods[info.FullMethod] {
			logger.Debug("handling request", zap.String("method", info.FullMethod))
		}

		return handler(ctx, req)
	}
}
