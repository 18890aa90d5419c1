package logger

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger forwards gorm traces to a Logger. Only failed and slow queries are written
// unless the level is Info.
type GormLogger struct {
	logger        Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func NewGormLogger(l Logger, slowThreshold time.Duration) *GormLogger {
	return &GormLogger{logger: l, level: gormlogger.Warn, slowThreshold: slowThreshold}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *GormLogger) Info(_ context.Context, msg string, a ...any) {
	if l.level >= gormlogger.Info {
		l.logger.Infof(msg, a...)
	}
}

func (l *GormLogger) Warn(_ context.Context, msg string, a ...any) {
	if l.level >= gormlogger.Warn {
		l.logger.Warnf(msg, a...)
	}
}

func (l *GormLogger) Error(_ context.Context, msg string, a ...any) {
	if l.level >= gormlogger.Error {
		l.logger.Errorf(msg, a...)
	}
}

func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		l.logger.Errorf("%s | %v | rows=%d | %s", sql, err, rows, elapsed)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		l.logger.Warnf("slow query | %s | rows=%d | %s", sql, rows, elapsed)
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		l.logger.Debugf("%s | rows=%d | %s", sql, rows, elapsed)
	}
}
