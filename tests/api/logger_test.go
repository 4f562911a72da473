package api_test

import (
	"os"
	"testing"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/api"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLoggerFromConfig 测试按配置创建日志记录器
func TestNewLoggerFromConfig(t *testing.T) {
	logger, err := api.NewLoggerFromConfig(&config.LogConfig{
		Level:  "debug",
		Format: "json",
		Output: "stdout",
	})
	require.NoError(t, err)

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

// TestNewLoggerFromConfig_InvalidLevel 测试非法级别回落到 Info
func TestNewLoggerFromConfig_InvalidLevel(t *testing.T) {
	logger, err := api.NewLoggerFromConfig(&config.LogConfig{
		Level:  "loud",
		Format: "text",
		Output: "stdout",
	})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

// TestNewLoggerFromConfig_FileOpenFailure 测试日志目录不可创建时返回错误
func TestNewLoggerFromConfig_FileOpenFailure(t *testing.T) {
	dir := t.TempDir()
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(oldWD) }()

	// 占住 logs 路径,目录创建必然失败
	require.NoError(t, os.WriteFile("logs", []byte("not a dir"), 0o644))

	_, err = api.NewLoggerFromConfig(&config.LogConfig{
		Level:  "info",
		Format: "text",
		Output: "file",
	})
	assert.Error(t, err)
}
