package logger

import (
	"context"
	"time"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// log is the process-wide logger, set once by Initialize
	log *zap.Logger
	// sentryClient forwards error events when a DSN is configured
	sentryClient *sentry.Client
)

// Config holds logger configuration shared by the minter, reconciler, and
// ops API binaries
type Config struct {
	// Debug switches to the development encoder and enables debug level
	Debug bool
	// SentryDSN enables error forwarding to Sentry when non-empty
	SentryDSN string
	// BreadcrumbLevel is the minimum level recorded as a Sentry breadcrumb,
	// defaulting to info
	BreadcrumbLevel zapcore.Level
	// Tags are attached to every Sentry event (e.g. the service name)
	Tags map[string]string
}

// Initialize builds the global logger, attaching a Sentry core when a DSN
// is configured
func Initialize(cfg Config) error {
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if cfg.Debug {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	baseLogger, err := zapConfig.Build()
	if err != nil {
		return err
	}

	if cfg.SentryDSN == "" {
		log = baseLogger
		return nil
	}

	sentryClient, err = sentry.NewClient(sentry.ClientOptions{
		Dsn:   cfg.SentryDSN,
		Debug: cfg.Debug,
	})
	if err != nil {
		return err
	}

	breadcrumbLevel := cfg.BreadcrumbLevel
	if breadcrumbLevel == zapcore.InvalidLevel {
		breadcrumbLevel = zapcore.InfoLevel
	}

	core, err := zapsentry.NewCore(zapsentry.Configuration{
		Level:             zapcore.ErrorLevel,
		EnableBreadcrumbs: true,
		BreadcrumbLevel:   breadcrumbLevel,
		Tags:              cfg.Tags,
	}, zapsentry.NewSentryClientFromClient(sentryClient))
	if err != nil {
		return err
	}

	log = zapsentry.AttachCoreToLogger(core, baseLogger)
	return nil
}

// Flush drains buffered Sentry events, bounded by timeout
func Flush(timeout time.Duration) {
	if sentryClient != nil {
		sentryClient.Flush(timeout)
	}
}

// fromContext returns the logger scoped to the Sentry hub carried by ctx,
// so breadcrumbs and events group per pipeline run or request
func fromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return log
	}
	return log.With(zapsentry.Context(ctx))
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	log.Info(msg, fields...)
}

// InfoCtx logs an info message scoped to ctx
func InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	fromContext(ctx).Info(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	log.Warn(msg, fields...)
}

// WarnCtx logs a warning message scoped to ctx
func WarnCtx(ctx context.Context, msg string, fields ...zap.Field) {
	fromContext(ctx).Warn(msg, fields...)
}

// DebugCtx logs a debug message scoped to ctx
func DebugCtx(ctx context.Context, msg string, fields ...zap.Field) {
	fromContext(ctx).Debug(msg, fields...)
}

// Error logs an error
func Error(err error, fields ...zap.Field) {
	log.Error(errMessage(err), fields...)
}

// ErrorCtx logs an error scoped to ctx
func ErrorCtx(ctx context.Context, err error, fields ...zap.Field) {
	fromContext(ctx).Error(errMessage(err), fields...)
}

// FatalCtx logs a fatal message scoped to ctx and exits
func FatalCtx(ctx context.Context, msg string, fields ...zap.Field) {
	fromContext(ctx).Fatal(msg, fields...)
}

func errMessage(err error) string {
	if err == nil {
		return "error occurred"
	}
	return err.Error()
}
