package logging

import (
	"github.com/getsentry/sentry-go"
	sentrylogrus "github.com/getsentry/sentry-go/logrus"
	"github.com/sirupsen/logrus"
)

var sentryLevels = []logrus.Level{
	logrus.PanicLevel,
	logrus.FatalLevel,
	logrus.ErrorLevel,
}

// NewSentryHook sends panic, fatal and error entries to sentry through the given client.
// Events dropped by sampling or BeforeSend are not reported to logrus as hook failures.
func NewSentryHook(client *sentry.Client, tags map[string]string) *sentrylogrus.Hook {
	hook := sentrylogrus.NewFromClient(sentryLevels, client)
	hook.SetFallback(func(*logrus.Entry) error {
		return nil
	})
	if len(tags) > 0 {
		hook.AddTags(tags)
	}
	return hook
}
