package files

import (
	"fmt"
	"path/filepath"
)

const (
	databricksHome = "/databricks"
	sparkDirectory = "spark"
	scriptsDir     = "scripts"
	initScriptName = "init-log4j-kusto-logging.sh"
	// driver daemon picks up every jar in this directory on start
	driverJarsDirectory = "/mnt/driver-daemon/jars"
	log4jConfigDir      = "dbconf/log4j"
	log4jConfigFileName = "log4j2.properties"
	tempPropertiesPath  = "/tmp/log4j2.properties"

	kustoAppenderGroupPath = "com/microsoft/azure/kusto/kusto-log4j-appender"
	kustoAppenderVersion   = "1.0.1"
)

func GetSparkHome() string {
	return filepath.Join(databricksHome, sparkDirectory)
}

// GetDefaultInitScriptDestination is where the notebook used to put the script.
func GetDefaultInitScriptDestination() string {
	return "dbfs:" + filepath.Join(databricksHome, scriptsDir, initScriptName)
}

func GetKustoAppenderJarURL(mavenRepoURL string) string {
	return fmt.Sprintf("%s/%s/%s/kusto-log4j-appender-%s-jar-with-dependencies.jar",
		mavenRepoURL, kustoAppenderGroupPath, kustoAppenderVersion, kustoAppenderVersion)
}

func GetKustoAppenderJarPath() string {
	return fmt.Sprintf("%s/azure-kusto-log4j-%s-jar-with-dependencies.jar", driverJarsDirectory, kustoAppenderVersion)
}

func GetTempPropertiesPath() string {
	return tempPropertiesPath
}

// GetLog4jConfigPath returns <sparkHome>/dbconf/log4j/<role>/log4j2.properties
func GetLog4jConfigPath(sparkHome, role string) string {
	return fmt.Sprintf("%s/%s/%s/%s", sparkHome, log4jConfigDir, role, log4jConfigFileName)
}
