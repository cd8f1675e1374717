package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the service logger: JSON-encoded, written to stdout and to a
// rotated ./logs/app.log. Upstream and provider error detail goes through
// this logger only and is never echoed to HTTP clients.
func New() *zap.Logger {
	if err := os.MkdirAll("./logs", 0o755); err != nil {
		panic("create logs directory: " + err.Error())
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	fileCore := zapcore.NewCore(encoder,
		zapcore.AddSync(&lumberjack.Logger{
			Filename: "./logs/app.log", MaxSize: 100, MaxAge: 28, Compress: true,
		}),
		zap.InfoLevel,
	)
	stdoutCore := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zap.InfoLevel)

	return zap.New(zapcore.NewTee(fileCore, stdoutCore))
}
