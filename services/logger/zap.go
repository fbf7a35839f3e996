package logsvc

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Luna-Breeze/question-answer-system/core"
)

type ZapLogger struct {
	sugar *zap.SugaredLogger
}

var _ core.Logger = (*ZapLogger)(nil)

// NewZapLogger builds a logger writing to stderr: production JSON in PROD,
// colored development output otherwise.
func NewZapLogger(conf *core.Config) (*ZapLogger, error) {
	var zconf zap.Config
	if conf.Env == "PROD" {
		zconf = zap.NewProductionConfig()
	} else {
		zconf = zap.NewDevelopmentConfig()
		zconf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		if !conf.Debug {
			zconf.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		}
	}
	zconf.OutputPaths = []string{"stderr"}

	logger, err := zconf.Build()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: logger.Sugar().Named(conf.AppName)}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *ZapLogger {
	return &ZapLogger{sugar: zap.NewNop().Sugar()}
}

// Wrap adapts an existing zap logger, eg. one built with zaptest/observer.
func Wrap(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: logger.Sugar()}
}

func (l ZapLogger) Debug(msg string, args ...interface{}) { l.sugar.Debugw(msg, args...) }
func (l ZapLogger) Info(msg string, args ...interface{})  { l.sugar.Infow(msg, args...) }
func (l ZapLogger) Warn(msg string, args ...interface{})  { l.sugar.Warnw(msg, args...) }
func (l ZapLogger) Error(msg string, args ...interface{}) { l.sugar.Errorw(msg, args...) }
func (l ZapLogger) Fatal(msg string, args ...interface{}) { l.sugar.Fatalw(msg, args...) }

// Sync flushes buffered entries.
func (l ZapLogger) Sync() error { return l.sugar.Sync() }
