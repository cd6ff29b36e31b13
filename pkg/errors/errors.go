package errors

import (
	"fmt"
	"runtime"
	"time"

	"github.com/brevdev/kusto-init/pkg/cmd/version"
	"github.com/brevdev/kusto-init/pkg/config"
	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

type BrevError interface {
	// Error returns a user-facing string explaining the error
	Error() string

	// Directive returns a user-facing string explaining how to overcome the error
	Directive() string
}

type ErrorReporter interface {
	Setup() func()
	Flush()
	ReportError(error) string
	AddTag(key string, value string)
}

func GetDefaultErrorReporter() ErrorReporter {
	return SentryErrorReporter{dsn: config.GlobalConfig.GetSentryDSN()}
}

// SentryErrorReporter stays silent until a DSN is configured.
type SentryErrorReporter struct {
	dsn string
}

var _ ErrorReporter = SentryErrorReporter{}

func (s SentryErrorReporter) Setup() func() {
	if s.dsn != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:     s.dsn,
			Release: version.Version,
		})
		if err != nil {
			fmt.Println(err)
		}
	}
	return func() {
		err := recover()
		if err != nil {
			sentry.CurrentHub().Recover(err)
			sentry.Flush(time.Second * 5)
			panic(err)
		}
		sentry.Flush(2 * time.Second)
	}
}

func (s SentryErrorReporter) Flush() {
	sentry.Flush(time.Second * 2)
}

func (s SentryErrorReporter) ReportError(e error) string {
	event := sentry.CaptureException(e)
	if event != nil {
		return string(*event)
	}
	return ""
}

func (s SentryErrorReporter) AddTag(key string, value string) {
	scope := sentry.CurrentHub().Scope()
	scope.SetTag(key, value)
}

type ValidationError struct {
	Message string
}

func NewValidationError(message string) ValidationError {
	return ValidationError{Message: message}
}

var _ error = ValidationError{}

func (v ValidationError) Error() string {
	return v.Message
}

type MissingDatabricksHostError struct{}

func (e *MissingDatabricksHostError) Error() string { return "databricks host not configured" }
func (e *MissingDatabricksHostError) Directive() string {
	return "set DATABRICKS_HOST (and DATABRICKS_TOKEN) to put scripts on dbfs:/"
}

type MissingStorageAccountError struct{}

func (e *MissingStorageAccountError) Error() string { return "azure storage account url not configured" }
func (e *MissingStorageAccountError) Directive() string {
	return "set AZURE_STORAGE_ACCOUNT_URL to put scripts on az://"
}

func WrapAndTrace(err error, messages ...string) error {
	message := ""
	for _, m := range messages {
		message += fmt.Sprintf(" %s", m)
	}
	return errors.Wrap(err, MakeErrorMessage(message))
}

func MakeErrorMessage(message string) string {
	_, fn, line, _ := runtime.Caller(2)
	return fmt.Sprintf("[error] %s:%d %s\n\t", fn, line, message)
}

var NetworkErrorMessage = "possible internet connection problem"
