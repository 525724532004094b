package otellib

import (
	"context"

	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type loggerCtxKey struct{}

const (
	traceIDField    = "trace.id"
	spanIDField     = "span.id"
	traceFlagsField = "trace.flags"

	// RequestIDField is the log field of the http request id
	RequestIDField = "request.id"
)

func spanFields(sc trace.SpanContext) []zap.Field {
	return []zap.Field{
		zap.String(traceIDField, sc.TraceID().String()),
		zap.String(spanIDField, sc.SpanID().String()),
		zap.String(traceFlagsField, sc.TraceFlags().String()),
	}
}

// SetTraceInfoInterceptor tags the grpc_zap request log with the span of the call
// and makes logger available to Extract
func SetTraceInfoInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context, req interface{}, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler,
	) (interface{}, error) {
		sc := trace.SpanContextFromContext(ctx)
		grpc_ctxtags.Extract(ctx).
			Set(traceIDField, sc.TraceID().String()).
			Set(spanIDField, sc.SpanID().String()).
			Set(traceFlagsField, sc.TraceFlags().String())

		return handler(ToContext(ctx, logger), req)
	}
}

// ToContext ...
func ToContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}

// WithRequestID stores logger with the request id attached
func WithRequestID(ctx context.Context, logger *zap.Logger, requestID string) context.Context {
	return ToContext(ctx, logger.With(zap.String(RequestIDField, requestID)))
}

// Extract returns the logger stored in ctx with the current span fields, a nop logger when there is none
func Extract(ctx context.Context) *zap.Logger {
	l, ok := ctx.Value(loggerCtxKey{}).(*zap.Logger)
	if !ok {
		return zap.NewNop()
	}
	return l.With(spanFields(trace.SpanContextFromContext(ctx))...)
}

// WrapError logs an unexpected error, the caller reported is the one of the failed handler
func WrapError(ctx context.Context, err error) {
	Extract(ctx).WithOptions(zap.AddCallerSkip(2)).
		Error("unexpected error", zap.Error(err))
}
