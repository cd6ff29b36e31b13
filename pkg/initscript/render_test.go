package initscript

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brevdev/kusto-init/pkg/files"
)

var fooParams = Params{
	IngestURL: "https://ingest-foo.kusto.windows.net",
	AppID:     "app1",
	AppKey:    "secret1",
	TenantID:  "tenant1",
	DBName:    "dbX",
}

func makeTestGenerator(policy FailurePolicy) Generator {
	return NewGenerator(Layout{
		SparkHome: files.GetSparkHome(),
		JarURL:    files.GetKustoAppenderJarURL("https://repo1.maven.org/maven2"),
		JarPath:   files.GetKustoAppenderJarPath(),
		TempPath:  files.GetTempPropertiesPath(),
	}, DefaultAppenderSettings(), policy)
}

func TestRenderProperties_Golden(t *testing.T) {
	g := goldie.New(t)
	got, err := makeTestGenerator(BestEffort).RenderProperties(fooParams)
	require.NoError(t, err)
	g.Assert(t, "properties", []byte(got))
}

func TestRenderScript_Golden(t *testing.T) {
	g := goldie.New(t)
	got, err := makeTestGenerator(BestEffort).RenderScript(fooParams)
	require.NoError(t, err)
	g.Assert(t, "init_script", []byte(got))
}

func TestRenderProperties_ValuesVerbatim(t *testing.T) {
	got, err := makeTestGenerator(BestEffort).RenderProperties(fooParams)
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	for _, want := range []string{
		"appender.rolling.strategy.clusterIngestUrl=https://ingest-foo.kusto.windows.net",
		"appender.rolling.strategy.appId=app1",
		"appender.rolling.strategy.appKey=secret1",
		"appender.rolling.strategy.appTenant=tenant1",
		"appender.rolling.strategy.dbName=dbX",
	} {
		assert.Contains(t, lines, want)
	}
}

func TestRenderProperties_NoEscaping(t *testing.T) {
	p := Params{
		IngestURL: "https://ingest-x.kusto.windows.net/?a=1&b=<2>",
		AppID:     `"quoted" 'single'`,
		AppKey:    `k$ey\with%d{chars}`,
		TenantID:  "tenant with spaces",
		DBName:    "db=name",
	}
	got, err := makeTestGenerator(BestEffort).RenderProperties(p)
	require.NoError(t, err)

	assert.Contains(t, got, "appender.rolling.strategy.clusterIngestUrl=https://ingest-x.kusto.windows.net/?a=1&b=<2>\n")
	assert.Contains(t, got, "appender.rolling.strategy.appId=\"quoted\" 'single'\n")
	assert.Contains(t, got, "appender.rolling.strategy.appKey=k$ey\\with%d{chars}\n")
	assert.Contains(t, got, "appender.rolling.strategy.appTenant=tenant with spaces\n")
	assert.Contains(t, got, "appender.rolling.strategy.dbName=db=name\n")
}

func TestRenderProperties_EmptyParams(t *testing.T) {
	got, err := makeTestGenerator(BestEffort).RenderProperties(Params{})
	require.NoError(t, err)

	for _, key := range []string{"clusterIngestUrl", "appId", "appKey", "appTenant", "dbName"} {
		assert.Contains(t, got, "appender.rolling.strategy."+key+"=\n")
	}
}

func TestRender_Idempotent(t *testing.T) {
	gen := makeTestGenerator(BestEffort)
	a, err := gen.RenderScript(fooParams)
	require.NoError(t, err)
	b, err := gen.RenderScript(fooParams)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	pa, err := gen.RenderProperties(fooParams)
	require.NoError(t, err)
	pb, err := gen.RenderProperties(fooParams)
	require.NoError(t, err)
	assert.Equal(t, pa, pb)
}

func TestRenderScript_ShellQuotesValues(t *testing.T) {
	p := fooParams
	p.AppKey = "it's $secret"
	p.TenantID = ""
	got, err := makeTestGenerator(BestEffort).RenderScript(p)
	require.NoError(t, err)

	assert.Contains(t, got, "\nLOG4J2_ADX_APP_KEY='it'\"'\"'s $secret'\n")
	assert.Contains(t, got, "\nLOG4J2_ADX_TENANT_ID=''\n")
	// the heredoc only references the variables
	assert.NotContains(t, got, "appKey=it")
	assert.Contains(t, got, "appender.rolling.strategy.appKey=$LOG4J2_ADX_APP_KEY\n")
}

func TestRenderScript_FailFast(t *testing.T) {
	got, err := makeTestGenerator(FailFast).RenderScript(fooParams)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "#!/bin/bash\nset -euo pipefail\nSPARK_HOME="))

	got, err = makeTestGenerator(BestEffort).RenderScript(fooParams)
	require.NoError(t, err)
	assert.NotContains(t, got, "set -e")
}

func TestRenderScript_AppenderSettings(t *testing.T) {
	gen := NewGenerator(makeTestGenerator(BestEffort).Layout(), AppenderSettings{
		TableName:        "SparkLogs",
		MappingName:      "SparkLogsCsv",
		MappingType:      "csv",
		FlushImmediately: true,
	}, BestEffort)
	got, err := gen.RenderScript(fooParams)
	require.NoError(t, err)
	assert.Contains(t, got, "\nLOG4J2_ADX_TABLE_NAME=SparkLogs\n")
	assert.Contains(t, got, "\nLOG4J2_ADX_MAPPING_NAME=SparkLogsCsv\n")
	assert.Contains(t, got, "appender.rolling.strategy.tableName=$LOG4J2_ADX_TABLE_NAME\n")
	assert.Contains(t, got, "appender.rolling.strategy.logTableMapping=$LOG4J2_ADX_MAPPING_NAME\n")
	assert.Contains(t, got, "appender.rolling.strategy.flushImmediately=true\n")
}

func TestRenderScript_QuotesAppenderSettings(t *testing.T) {
	gen := NewGenerator(makeTestGenerator(BestEffort).Layout(), AppenderSettings{
		TableName:   "logs$(echo INJECTED)",
		MappingName: "m`echo X`",
		MappingType: "csv",
	}, BestEffort)
	got, err := gen.RenderScript(fooParams)
	require.NoError(t, err)

	assert.Contains(t, got, "\nLOG4J2_ADX_TABLE_NAME='logs$(echo INJECTED)'\n")
	assert.Contains(t, got, "\nLOG4J2_ADX_MAPPING_NAME='m`echo X`'\n")
	assert.NotContains(t, got, "tableName=logs")
	assert.NotContains(t, got, "logTableMapping=m`")
}
