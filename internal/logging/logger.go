package logging

import (
	"io"
	"os"
	"strings"

	"github.com/2beens/fitplan/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	rotateMaxSizeMB  = 20
	rotateMaxBackups = 5
	rotateMaxAgeDays = 30
)

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	ServiceName      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the global logrus logger: format, level, output and hooks.
func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.ServiceName != "" || params.Environment != "" {
		logrus.AddHook(NewStaticFieldsHook(logrus.Fields{
			"service": params.ServiceName,
			"env":     params.Environment,
		}))
	}

	if params.SentryEnabled {
		setupSentry(params)
	}

	out, desc := output(params)
	logrus.SetOutput(out)
	logrus.Infof("writing logs to %s", desc)
}

func setupSentry(params LoggerSetupParams) {
	if err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		ServerName:       params.SentryServerName,
		TracesSampleRate: 0.2,
	}); err != nil {
		logrus.Errorf("sentry init: %s", err)
		return
	}
	tags := map[string]string{}
	if params.ServiceName != "" {
		tags["service"] = params.ServiceName
	}
	logrus.AddHook(NewSentryHook(sentry.CurrentHub().Client(), tags))
	logrus.Debugln("sentry hook added")
}

func output(params LoggerSetupParams) (io.Writer, string) {
	if params.LogFileName == "" {
		return os.Stdout, "stdout"
	}

	fileName := params.LogFileName
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}
	rotated := &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    rotateMaxSizeMB,
		MaxBackups: rotateMaxBackups,
		MaxAge:     rotateMaxAgeDays,
		Compress:   true,
	}

	if params.LogToStdout {
		return pkg.NewCombinedWriter(os.Stdout, rotated), fileName + " and stdout"
	}
	return rotated, fileName
}

// GetLevel parses a level name, falling back to trace for anything unknown.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.TraceLevel
	}
	return parsed
}

// StaticFieldsHook stamps the same fields on every entry, unless the entry already sets them.
type StaticFieldsHook struct {
	fields logrus.Fields
}

func NewStaticFieldsHook(fields logrus.Fields) *StaticFieldsHook {
	return &StaticFieldsHook{fields: fields}
}

func (h *StaticFieldsHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *StaticFieldsHook) Fire(entry *logrus.Entry) error {
	for k, v := range h.fields {
		if v == "" {
			continue
		}
		if _, ok := entry.Data[k]; !ok {
			entry.Data[k] = v
		}
	}
	return nil
}
