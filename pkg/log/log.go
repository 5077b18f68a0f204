package log

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"
	"sync"
	"time"

	formatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logDir = "./storage/logs"

var (
	logger *logrus.Logger
	once   sync.Once
)

type Fields = logrus.Fields

// NewLogger returns the process-wide logger. Output goes to stderr and, outside
// APP_ENV=test, to a daily file rotated by lumberjack.
func NewLogger() *logrus.Logger {
	once.Do(func() {
		logger = logrus.New()
		logger.SetLevel(levelFromEnv())
		logger.SetFormatter(newFormatter())
		logger.SetOutput(io.MultiWriter(outputs(os.Getenv("APP_ENV"), time.Now())...))
		logger.SetReportCaller(true)
	})

	return logger
}

func newFormatter() *formatter.Formatter {
	return &formatter.Formatter{
		TimestampFormat:       "02 Jan 06 - 15:04",
		CallerFirst:           true,
		CustomCallerFormatter: callerLabel,
	}
}

// callerLabel prints "[file.go:42][Func()]" in blue.
func callerLabel(f *runtime.Frame) string {
	fn := f.Function
	if i := strings.LastIndex(fn, "."); i >= 0 {
		fn = fn[i+1:]
	}
	return fmt.Sprintf(" \x1b[34m[%s:%d][%s()]", path.Base(f.File), f.Line, fn)
}

func outputs(appEnv string, now time.Time) []io.Writer {
	writers := []io.Writer{os.Stderr}
	if appEnv == "test" {
		return writers
	}

	return append(writers, &lumberjack.Logger{
		Filename:   fmt.Sprintf("%s/app-%s.log", logDir, now.Format("2006-01-02")),
		LocalTime:  true,
		Compress:   true,
		MaxSize:    100,
		MaxAge:     7,
		MaxBackups: 3,
	})
}

func levelFromEnv() logrus.Level {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return logrus.DebugLevel
	}
	return level
}

// ErrorWithTraceID logs msg at error level tagged with a trace id and returns
// it so the caller can hand it to the client. The request id doubles as the
// trace id when present.
func ErrorWithTraceID(l logrus.FieldLogger, fields Fields, msg string) string {
	if fields == nil {
		fields = Fields{}
	}

	traceID, _ := fields["request_id"].(string)
	if traceID == "" {
		id, err := uuid.NewRandom()
		if err != nil {
			traceID = "unknown"
		} else {
			traceID = id.String()
		}
	}

	fields["trace_id"] = traceID
	l.WithFields(fields).Error(msg)

	return traceID
}
