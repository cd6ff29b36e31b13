package config

import (
	"strings"

	"github.com/spf13/pflag"
)

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// AddSettingsFlags registers one flag per setting. Defaults live in Load, so
// only flags the user actually sets take effect.
func AddSettingsFlags(fs *pflag.FlagSet) {
	fs.String(flagName(KeyIngestURL), "", "kusto ingest cluster url (LOG4J2_ADX_INGEST_CLUSTER_URL)")
	fs.String(flagName(KeyAppID), "", "aad application id (LOG4J2_ADX_APP_ID)")
	fs.String(flagName(KeyAppKey), "", "aad application key (LOG4J2_ADX_APP_KEY)")
	fs.String(flagName(KeyTenantID), "", "aad tenant id (LOG4J2_ADX_TENANT_ID)")
	fs.String(flagName(KeyDBName), "", "kusto database name (LOG4J2_ADX_DB_NAME)")

	fs.String(flagName(KeyTableName), "", "kusto table the appender ingests into")
	fs.String(flagName(KeyMappingName), "", "kusto ingestion mapping name")
	fs.String(flagName(KeyMappingType), "", "kusto ingestion mapping type")
	fs.Bool(flagName(KeyFlushImmediately), false, "flush every log event to kusto")

	fs.String(flagName(KeySparkHome), "", "spark home on the cluster node")
	fs.String(flagName(KeyJarURL), "", "url of the kusto log4j appender jar")
	fs.String(flagName(KeyJarPath), "", "where the appender jar is installed")
	fs.String(flagName(KeyTempPath), "", "temp path the properties are rendered to")

	fs.Bool(flagName(KeyFailFast), false, "stop at the first failing step instead of continuing")
}
