package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// AppName добавляется в каждую запись лога
const AppName = "resqnet"

type appHook struct{}

func (appHook) Levels() []logrus.Level { return logrus.AllLevels }

func (appHook) Fire(entry *logrus.Entry) error {
	if _, ok := entry.Data["app"]; !ok {
		entry.Data["app"] = AppName
	}
	return nil
}

func New(logLevel string) *logrus.Logger {
	return NewWithOutput(logLevel, os.Stdout)
}

// NewWithOutput - то же, что New, но с произвольным приемником
func NewWithOutput(logLevel string, out io.Writer) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(out)
	log.AddHook(appHook{})

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
