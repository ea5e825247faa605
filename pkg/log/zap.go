package log

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ModeProduction  = "production"
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

var _ Logger = (*zapLogger)(nil)

// Init builds a Logger from cfg. Unknown levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level := zap.NewAtomicLevelAt(parseLevel(cfg.Level))

	encCfg := zap.NewDevelopmentEncoderConfig()
	if cfg.Mode == ModeProduction {
		encCfg = zap.NewProductionEncoderConfig()
	}
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != EncodingJSON {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

// NewNop returns a Logger that discards everything. Handy in tests.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "dpanic":
		return zapcore.DPanicLevel
	case "panic":
		return zapcore.PanicLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	s := l.sugar
	if id := RequestIDFrom(ctx); id != "" {
		s = s.With("request_id", id)
	}
	if id := UserIDFrom(ctx); id != "" {
		s = s.With("user_id", id)
	}
	return s
}

// Info and friends accept either plain values or a message followed by
// key/value pairs, e.g. Info(ctx, "generation done", "provider", "local").
func (l *zapLogger) Debug(ctx context.Context, arg ...any) { logw(l.with(ctx).Debugw, l.with(ctx).Debug, arg) }
func (l *zapLogger) Info(ctx context.Context, arg ...any) { logw(l.with(ctx).Infow, l.with(ctx).Info, arg) }
func (l *zapLogger) Warn(ctx context.Context, arg ...any) { logw(l.with(ctx).Warnw, l.with(ctx).Warn, arg) }
func (l *zapLogger) Error(ctx context.Context, arg ...any) { logw(l.with(ctx).Errorw, l.with(ctx).Error, arg) }
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) {
	logw(l.with(ctx).DPanicw, l.with(ctx).DPanic, arg)
}
func (l *zapLogger) Panic(ctx context.Context, arg ...any) { logw(l.with(ctx).Panicw, l.with(ctx).Panic, arg) }
func (l *zapLogger) Fatal(ctx context.Context, arg ...any) { logw(l.with(ctx).Fatalw, l.with(ctx).Fatal, arg) }

func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Debugf(template, arg...)
}
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Infof(template, arg...)
}
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Warnf(template, arg...)
}
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Errorf(template, arg...)
}
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).DPanicf(template, arg...)
}
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Panicf(template, arg...)
}
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Fatalf(template, arg...)
}

// logw routes "msg, k1, v1, ..." calls to the structured variant and
// everything else to the plain variant.
func logw(w func(string, ...any), plain func(...any), arg []any) {
	if len(arg) > 1 && len(arg)%2 == 1 {
		if msg, ok := arg[0].(string); ok {
			if _, ok := arg[1].(string); ok {
				w(msg, arg[1:]...)
				return
			}
		}
	}
	plain(arg...)
}
