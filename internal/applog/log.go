// internal/applog/log.go
package applog

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New builds the process logger used by the CLI glue. Logs go to w (the
// process stderr); stdout stays reserved for island output.
func New(w io.Writer, verbose, quiet bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	switch {
	case quiet:
		log.SetLevel(logrus.ErrorLevel)
	case verbose:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
