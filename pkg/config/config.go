package config

import (
	"os"
)

type EnvVarName string // should be caps with underscore

const (
	databricksHost        EnvVarName = "DATABRICKS_HOST"
	databricksToken       EnvVarName = "DATABRICKS_TOKEN" //nolint:gosec // env var name, not a secret
	azureStorageAccount   EnvVarName = "AZURE_STORAGE_ACCOUNT_URL"
	sentryDSN             EnvVarName = "KUSTO_INIT_SENTRY_DSN"
	debugHTTP             EnvVarName = "KUSTO_INIT_DEBUG_HTTP"
	defaultMavenRepoURL   EnvVarName = "KUSTO_INIT_MAVEN_REPO_URL"
	defaultDatabricksHost            = ""
)

type ConstantsConfig struct{}

func NewConstants() *ConstantsConfig {
	return &ConstantsConfig{}
}

func (c ConstantsConfig) GetDatabricksHost() string {
	return getEnvOrDefault(databricksHost, defaultDatabricksHost)
}

func (c ConstantsConfig) GetDatabricksToken() string {
	return getEnvOrDefault(databricksToken, "")
}

// GetAzureStorageAccountURL is the blob service url, e.g. https://<account>.blob.core.windows.net
func (c ConstantsConfig) GetAzureStorageAccountURL() string {
	return getEnvOrDefault(azureStorageAccount, "")
}

func (c ConstantsConfig) GetSentryDSN() string {
	return getEnvOrDefault(sentryDSN, "")
}

func (c ConstantsConfig) GetMavenRepoURL() string {
	return getEnvOrDefault(defaultMavenRepoURL, "https://repo1.maven.org/maven2")
}

func (c ConstantsConfig) GetDebugHTTP() bool {
	return getEnvOrDefault(debugHTTP, "") != ""
}

func getEnvOrDefault(envVarName EnvVarName, defaultVal string) string {
	val := os.Getenv(string(envVarName))
	if val == "" {
		return defaultVal
	}
	return val
}

var GlobalConfig = NewConstants()
