package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// LoggerTestSuite defines the test suite for the logger package
type LoggerTestSuite struct {
	suite.Suite
	originalLogger *zap.Logger
	observedCore   zapcore.Core
	observedLogs   *observer.ObservedLogs
}

func (suite *LoggerTestSuite) SetupSuite() {
	suite.originalLogger = zap.L()
}

func (suite *LoggerTestSuite) TearDownSuite() {
	zap.ReplaceGlobals(suite.originalLogger)
}

func (suite *LoggerTestSuite) SetupTest() {
	suite.observedCore, suite.observedLogs = observer.New(zap.DebugLevel)
	zap.ReplaceGlobals(zap.New(suite.observedCore))
}

func (suite *LoggerTestSuite) TearDownTest() {
	suite.observedLogs.TakeAll()
}

func (suite *LoggerTestSuite) TestGetLogLevelFromString() {
	testCases := []struct {
		name     string
		input    string
		expected zapcore.Level
	}{
		{"debug lowercase", "debug", zapcore.DebugLevel},
		{"info lowercase", "info", zapcore.InfoLevel},
		{"warn lowercase", "warn", zapcore.WarnLevel},
		{"warning alias", "warning", zapcore.WarnLevel},
		{"error lowercase", "error", zapcore.ErrorLevel},
		{"err alias", "err", zapcore.ErrorLevel},
		{"mixed case", "InFo", zapcore.InfoLevel},
		{"padded", "  debug  ", zapcore.DebugLevel},
		{"unknown defaults to info", "verbose", zapcore.InfoLevel},
		{"empty defaults to info", "", zapcore.InfoLevel},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			assert.Equal(suite.T(), tc.expected, getLogLevelFromString(tc.input))
		})
	}
}

func (suite *LoggerTestSuite) TestLogInfo() {
	LogInfo("course list loaded", zap.Int("count", 3))

	logs := suite.observedLogs.All()
	suite.Require().Len(logs, 1)
	assert.Equal(suite.T(), "course list loaded", logs[0].Message)
	assert.Equal(suite.T(), zapcore.InfoLevel, logs[0].Level)
	assert.Equal(suite.T(), int64(3), logs[0].ContextMap()["count"])
}

func (suite *LoggerTestSuite) TestLogErrorfFormats() {
	LogErrorf("refresh failed after %d attempts", 1)

	logs := suite.observedLogs.All()
	suite.Require().Len(logs, 1)
	assert.Equal(suite.T(), "refresh failed after 1 attempts", logs[0].Message)
	assert.Equal(suite.T(), zapcore.ErrorLevel, logs[0].Level)
}

func (suite *LoggerTestSuite) TestLogDebugfWithoutArgs() {
	LogDebugf("plain message")

	logs := suite.observedLogs.All()
	suite.Require().Len(logs, 1)
	assert.Equal(suite.T(), "plain message", logs[0].Message)
}

func TestLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}
