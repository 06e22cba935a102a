package service

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger is the shared structured logger every service entry point uses,
// following the teacher's internal/middleware.Logger convention of
// .With(key, value, ...) field chaining.
var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

func opLogger(op, careerID string) *log.Logger {
	return logger.With("op", op, "career_id", careerID)
}
