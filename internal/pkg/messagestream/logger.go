package messagestream

import (
	"context"
	"fmt"

	"railway-booking/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
)

// watermillLogger bridges watermill's LoggerAdapter onto the service logger.
type watermillLogger struct {
	logger log.Logger
	fields watermill.LogFields
}

func NewWatermillLogger() watermill.LoggerAdapter {
	return &watermillLogger{logger: log.GetLogger()}
}

func (l *watermillLogger) Error(msg string, err error, fields watermill.LogFields) {
	l.logger.Error(context.Background(), l.format(msg, fields), err)
}

func (l *watermillLogger) Info(msg string, fields watermill.LogFields) {
	l.logger.Info(context.Background(), l.format(msg, fields))
}

func (l *watermillLogger) Debug(msg string, fields watermill.LogFields) {
	l.logger.Debug(context.Background(), l.format(msg, fields))
}

func (l *watermillLogger) Trace(msg string, fields watermill.LogFields) {
	l.logger.Debug(context.Background(), l.format(msg, fields))
}

func (l *watermillLogger) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &watermillLogger{logger: l.logger, fields: l.fields.Add(fields)}
}

func (l *watermillLogger) format(msg string, fields watermill.LogFields) string {
	merged := l.fields.Add(fields)
	if len(merged) == 0 {
		return msg
	}
	return fmt.Sprintf("%s %v", msg, map[string]interface{}(merged))
}
