// Package log creates the logger of ghannotate.
package log

import (
	"fmt"
	"log/slog"

	sloglogrus "github.com/samber/slog-logrus"
	"github.com/sirupsen/logrus"
	logrusutil "github.com/suzuki-shunsuke/logrus-util/log"
)

func New(version string) *logrus.Entry {
	return logrusutil.New("ghannotate", version)
}

// Set sets the log level and the log color.
// Empty values keep the current settings.
func Set(logE *logrus.Entry, level, color string) error {
	if err := logrusutil.Set(logE, level, color); err != nil {
		return fmt.Errorf("configure the logger: %w", err)
	}
	return nil
}

// NewSlog returns a slog.Logger writing to the logger of logE.
// The fields of logE are kept, and the level is filtered by logrus.
func NewSlog(logE *logrus.Entry) *slog.Logger {
	logger := slog.New(sloglogrus.Option{
		Level:  slog.LevelDebug,
		Logger: logE.Logger,
	}.NewLogrusHandler())
	args := make([]any, 0, len(logE.Data)*2) //nolint:mnd
	for k, v := range logE.Data {
		args = append(args, k, v)
	}
	return logger.With(args...)
}
