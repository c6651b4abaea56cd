package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logDir           = "logs"
	fileBufferSize   = 32 * 1024
	fileQueueSize    = 1000
	defaultComponent = "trustpost"
)

type Options struct {
	Component string
	Level     string
	// ToFile enables the buffered file writer under logs/.
	ToFile bool
}

// NewLogger builds the JSON logger used by every component. Output goes to
// logs/<component>.log through an async writer and is mirrored on stdout.
func NewLogger(opts Options) (*logrus.Logger, func(), error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(parseLevel(opts.Level))

	if !opts.ToFile {
		logger.SetOutput(os.Stdout)
		return logger, func() {}, nil
	}

	component := opts.Component
	if component == "" {
		component = defaultComponent
	}
	logFile := filepath.Clean(filepath.Join(logDir, component+".log"))
	if !strings.HasPrefix(logFile, logDir+string(filepath.Separator)) {
		return nil, nil, fmt.Errorf("invalid log file path %q: must be in %s directory", logFile, logDir)
	}
	if err := os.MkdirAll(logDir, 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	writer, err := NewAsyncFileWriter(logFile, fileBufferSize, fileQueueSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize async log writer: %w", err)
	}
	logger.SetOutput(writer)
	logger.AddHook(NewConsoleHook(os.Stdout))

	return logger, writer.Close, nil
}

func parseLevel(level string) logrus.Level {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
