package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

var logger Logger

func SetupLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.InitialFields = map[string]interface{}{"app": "railway-booking"}
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapLogger, err := config.Build(zap.AddCallerSkip(2))
	if err != nil {
		panic(err)
	}

	return zapLogger
}

func Init(zapLogger *zap.Logger) {
	logger = &zapLoggerAdapter{zapLogger: zapLogger}
}

func GetLogger() Logger {
	if logger == nil {
		Init(SetupLogger())
	}
	return logger
}

type zapLoggerAdapter struct {
	zapLogger *zap.Logger
}

func (l *zapLoggerAdapter) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, zapcore.DebugLevel, msg, args...)
}

func (l *zapLoggerAdapter) Info(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, zapcore.InfoLevel, msg, args...)
}

func (l *zapLoggerAdapter) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, zapcore.WarnLevel, msg, args...)
}

func (l *zapLoggerAdapter) Error(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, zapcore.ErrorLevel, msg, args...)
}

func (l *zapLoggerAdapter) write(ctx context.Context, level zapcore.Level, msg string, args ...interface{}) {
	fields := make([]zap.Field, 0, len(args)+1)
	if requestID, ok := ctx.Value("request_id").(string); ok {
		fields = append(fields, zap.String("request_id", requestID))
	}
	for _, arg := range args {
		fields = append(fields, zap.Any("detail", arg))
	}

	if ce := l.zapLogger.Check(level, msg); ce != nil {
		ce.Write(fields...)
	}
}
