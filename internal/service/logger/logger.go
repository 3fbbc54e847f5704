package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	AccessLogger *zap.Logger
	DBLogger     *zap.Logger
)

func newLogger(path string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{
		path,
	}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return config.Build()
}

func InitLoggers() error {
	var err error
	AccessLogger, err = newLogger("access.log")
	if err != nil {
		return err
	}

	DBLogger, err = newLogger("db.log")
	if err != nil {
		return err
	}

	return nil
}

func SyncLoggers() error {
	if err := AccessLogger.Sync(); err != nil {
		return err
	}
	return DBLogger.Sync()
}
