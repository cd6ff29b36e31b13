package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/brevdev/kusto-init/pkg/files"
)

const envPrefix = "kusto_init"

// Setting keys. Flags use the same names with dashes.
const (
	KeyIngestURL        = "ingest_url"
	KeyAppID            = "app_id"
	KeyAppKey           = "app_key"
	KeyTenantID         = "tenant_id"
	KeyDBName           = "db_name"
	KeyTableName        = "table_name"
	KeyMappingName      = "mapping_name"
	KeyMappingType      = "mapping_type"
	KeyFlushImmediately = "flush_immediately"
	KeySparkHome        = "spark_home"
	KeyJarURL           = "jar_url"
	KeyJarPath          = "jar_path"
	KeyTempPath         = "temp_path"
	KeyFailFast         = "fail_fast"
)

// the appender reads these same names at runtime
var paramEnvVars = map[string]string{
	KeyIngestURL: "LOG4J2_ADX_INGEST_CLUSTER_URL",
	KeyAppID:     "LOG4J2_ADX_APP_ID",
	KeyAppKey:    "LOG4J2_ADX_APP_KEY",
	KeyTenantID:  "LOG4J2_ADX_TENANT_ID",
	KeyDBName:    "LOG4J2_ADX_DB_NAME",
}

// Settings is everything needed to render and apply an init script.
type Settings struct {
	IngestURL string
	AppID     string
	AppKey    string
	TenantID  string
	DBName    string

	TableName        string
	MappingName      string
	MappingType      string
	FlushImmediately bool

	SparkHome string
	JarURL    string
	JarPath   string
	TempPath  string

	FailFast bool
}

// Load merges, lowest precedence first: defaults, the optional yaml file at
// path, environment, and any flags that were explicitly set.
func Load(path string, flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()

	v.SetDefault(KeyIngestURL, "https://ingest-<>.kusto.windows.net")
	v.SetDefault(KeyAppID, "App Id")
	v.SetDefault(KeyAppKey, "App Key")
	v.SetDefault(KeyTenantID, "Tenant")
	v.SetDefault(KeyDBName, "DB")
	v.SetDefault(KeyTableName, "log4jTest")
	v.SetDefault(KeyMappingName, "log4jCsvTestMapping")
	v.SetDefault(KeyMappingType, "csv")
	v.SetDefault(KeyFlushImmediately, false)
	v.SetDefault(KeySparkHome, files.GetSparkHome())
	v.SetDefault(KeyJarURL, files.GetKustoAppenderJarURL(GlobalConfig.GetMavenRepoURL()))
	v.SetDefault(KeyJarPath, files.GetKustoAppenderJarPath())
	v.SetDefault(KeyTempPath, files.GetTempPropertiesPath())
	v.SetDefault(KeyFailFast, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for key, env := range paramEnvVars {
		if err := v.BindEnv(key, env); err != nil {
			return Settings{}, errors.WithStack(err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, errors.Wrapf(err, "reading config %s", path)
		}
	}

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if f.Changed {
				if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
					bindErr = err
				}
			}
		})
		if bindErr != nil {
			return Settings{}, errors.WithStack(bindErr)
		}
	}

	return Settings{
		IngestURL:        v.GetString(KeyIngestURL),
		AppID:            v.GetString(KeyAppID),
		AppKey:           v.GetString(KeyAppKey),
		TenantID:         v.GetString(KeyTenantID),
		DBName:           v.GetString(KeyDBName),
		TableName:        v.GetString(KeyTableName),
		MappingName:      v.GetString(KeyMappingName),
		MappingType:      v.GetString(KeyMappingType),
		FlushImmediately: v.GetBool(KeyFlushImmediately),
		SparkHome:        v.GetString(KeySparkHome),
		JarURL:           v.GetString(KeyJarURL),
		JarPath:          v.GetString(KeyJarPath),
		TempPath:         v.GetString(KeyTempPath),
		FailFast:         v.GetBool(KeyFailFast),
	}, nil
}
