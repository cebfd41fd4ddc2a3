package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pkgsmith/debversion/internal/format"
)

var levelToColor = map[zapcore.Level]format.Color{
	zapcore.DebugLevel:  format.Magenta,
	zapcore.InfoLevel:   format.Blue,
	zapcore.WarnLevel:   format.Yellow,
	zapcore.ErrorLevel:  format.Red,
	zapcore.DPanicLevel: format.Red,
	zapcore.PanicLevel:  format.Red,
	zapcore.FatalLevel:  format.Red,
}

// ZapConfig controls the destination and format of a ZapLogger.
type ZapConfig struct {
	EnableConsole bool
	EnableFile    bool
	Structured    bool
	Level         zapcore.Level
	FileLocation  string
}

// ZapLogger adapts a zap sugared logger to the Logger interface.
type ZapLogger struct {
	Config ZapConfig
	Logger *zap.SugaredLogger
}

// NewZapLogger builds a logger from the given config, panicking if a
// requested log file cannot be opened. With neither console nor file enabled
// all output is discarded.
func NewZapLogger(cfg ZapConfig) *ZapLogger {
	zl := ZapLogger{
		Config: cfg,
	}
	var cores []zapcore.Core

	if cfg.EnableConsole {
		writer := zapcore.Lock(os.Stderr)
		cores = append(cores, zapcore.NewCore(zl.consoleEncoder(cfg), writer, cfg.Level))
	}

	if cfg.EnableFile {
		writer := zapcore.AddSync(zl.logFileWriter(cfg.FileLocation))
		cores = append(cores, zapcore.NewCore(zl.fileEncoder(cfg), writer, cfg.Level))
	}

	// AddCallerSkip(2) steps over the adapter methods below so the reported
	// caller is the line that invoked the library logger
	zl.Logger = zap.New(
		zapcore.NewTee(cores...),
		zap.AddCallerSkip(2),
		zap.AddCaller(),
	).Sugar()

	return &zl
}

// GetNamedLogger returns a child logger annotated with the given name.
func (l *ZapLogger) GetNamedLogger(name string) *ZapLogger {
	return &ZapLogger{
		Config: l.Config,
		Logger: l.Logger.Named(name),
	}
}

func (l *ZapLogger) consoleEncoder(cfg ZapConfig) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	if cfg.Structured {
		encoderConfig.EncodeName = zapcore.FullNameEncoder
		encoderConfig.EncodeCaller = zapcore.FullCallerEncoder
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	encoderConfig.EncodeTime = nil
	encoderConfig.EncodeCaller = nil
	encoderConfig.EncodeLevel = l.consoleLevelEncoder
	encoderConfig.EncodeName = l.nameEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func (l *ZapLogger) nameEncoder(loggerName string, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + loggerName + "]")
}

func (l *ZapLogger) consoleLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	if level != zapcore.InfoLevel || l.Config.Level == zapcore.DebugLevel {
		color, ok := levelToColor[level]
		if !ok {
			enc.AppendString("[" + level.CapitalString() + "]")
		} else {
			enc.AppendString("[" + color.Format(level.CapitalString()) + "]")
		}
	}
}

func (l *ZapLogger) fileEncoder(cfg ZapConfig) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeName = zapcore.FullNameEncoder
	encoderConfig.EncodeCaller = zapcore.FullCallerEncoder
	if cfg.Structured {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func (l *ZapLogger) logFileWriter(location string) zapcore.WriteSyncer {
	file, err := os.OpenFile(location, os.O_WRONLY|os.O_CREATE|os.O_APPEND, defaultLogFilePermissions)
	if err != nil {
		panic(fmt.Errorf("unable to setup log file: %w", err))
	}
	return zapcore.AddSync(file)
}

func (l *ZapLogger) Debugf(format string, args ...interface{}) {
	l.Logger.Debugf(format, args...)
}

func (l *ZapLogger) Infof(format string, args ...interface{}) {
	l.Logger.Infof(format, args...)
}

func (l *ZapLogger) Warnf(format string, args ...interface{}) {
	l.Logger.Warnf(format, args...)
}

func (l *ZapLogger) Errorf(format string, args ...interface{}) {
	l.Logger.Errorf(format, args...)
}

func (l *ZapLogger) Debug(args ...interface{}) {
	l.Logger.Debug(args...)
}

func (l *ZapLogger) Info(args ...interface{}) {
	l.Logger.Info(args...)
}

func (l *ZapLogger) Warn(args ...interface{}) {
	l.Logger.Warn(args...)
}

func (l *ZapLogger) Error(args ...interface{}) {
	l.Logger.Error(args...)
}
