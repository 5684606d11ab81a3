// Package logging 构建服务使用的 zap 日志器
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New 生产模式输出 JSON；开发模式输出可读格式并开启 debug 级别
func New(dev bool) (*zap.Logger, error) {
	if dev {
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		return config.Build()
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return config.Build()
}
