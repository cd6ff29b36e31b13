package initscript

import (
	"github.com/brevdev/kusto-init/pkg/config"
)

// Params are the five values the Kusto appender needs. They are passed through
// unvalidated and unescaped.
type Params struct {
	IngestURL string
	AppID     string
	AppKey    string
	TenantID  string
	DBName    string
}

// AppenderSettings are the KustoStrategy attributes the notebook hard-coded.
type AppenderSettings struct {
	TableName        string
	MappingName      string
	MappingType      string
	FlushImmediately bool
}

func DefaultAppenderSettings() AppenderSettings {
	return AppenderSettings{
		TableName:   "log4jTest",
		MappingName: "log4jCsvTestMapping",
		MappingType: "csv",
	}
}

// Layout is where things live on a cluster node.
type Layout struct {
	SparkHome string
	JarURL    string
	JarPath   string
	TempPath  string
}

type FailurePolicy string

const (
	// BestEffort attempts every step and only records failures, like the
	// original script without error trapping.
	BestEffort FailurePolicy = "best-effort"
	// FailFast stops at the first failing step.
	FailFast FailurePolicy = "fail-fast"
)

func PolicyFor(failFast bool) FailurePolicy {
	if failFast {
		return FailFast
	}
	return BestEffort
}

// FromSettings splits loaded settings into the generator's inputs.
func FromSettings(s config.Settings) (Params, Generator) {
	p := Params{
		IngestURL: s.IngestURL,
		AppID:     s.AppID,
		AppKey:    s.AppKey,
		TenantID:  s.TenantID,
		DBName:    s.DBName,
	}
	g := NewGenerator(
		Layout{
			SparkHome: s.SparkHome,
			JarURL:    s.JarURL,
			JarPath:   s.JarPath,
			TempPath:  s.TempPath,
		},
		AppenderSettings{
			TableName:        s.TableName,
			MappingName:      s.MappingName,
			MappingType:      s.MappingType,
			FlushImmediately: s.FlushImmediately,
		},
		PolicyFor(s.FailFast),
	)
	return p, g
}
