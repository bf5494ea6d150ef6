package log

import (
	"context"
	"vehicle-booking-service/internal/pkg/metadata"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(ctx context.Context, msg string, keysAndValues ...interface{})
	Info(ctx context.Context, msg string, keysAndValues ...interface{})
	Warn(ctx context.Context, msg string, keysAndValues ...interface{})
	Error(ctx context.Context, msg string, keysAndValues ...interface{})
}

type logger struct {
	sugar *otelzap.SugaredLogger
}

// SetupLogger builds the process-wide JSON logger.
func SetupLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	z, err := cfg.Build()
	if err != nil {
		return zap.NewExample()
	}
	return z
}

// New wraps z so that every record is also attached to the span in ctx and
// carries the request metadata stored in ctx.
func New(z *zap.Logger) Logger {
	return &logger{
		sugar: otelzap.New(z, otelzap.WithMinLevel(zapcore.InfoLevel), otelzap.WithTraceIDField(true)).Sugar(),
	}
}

// Nop discards everything, used by tests.
func Nop() Logger {
	return New(zap.NewNop())
}

func (l *logger) Debug(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.sugar.Ctx(ctx).Debugw(msg, withMetadata(ctx, keysAndValues)...)
}

func (l *logger) Info(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.sugar.Ctx(ctx).Infow(msg, withMetadata(ctx, keysAndValues)...)
}

func (l *logger) Warn(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.sugar.Ctx(ctx).Warnw(msg, withMetadata(ctx, keysAndValues)...)
}

func (l *logger) Error(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.sugar.Ctx(ctx).Errorw(msg, withMetadata(ctx, keysAndValues)...)
}

func withMetadata(ctx context.Context, keysAndValues []interface{}) []interface{} {
	md, ok := metadata.FromContext(ctx)
	if !ok {
		return keysAndValues
	}
	return append(md.KeysAndValues(), keysAndValues...)
}
