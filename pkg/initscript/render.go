package initscript

import (
	"bytes"
	"embed"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/alessio/shellescape"

	breverrors "github.com/brevdev/kusto-init/pkg/errors"
)

type templateName string

const (
	tplProperties templateName = "log4j2.properties.tmpl"
	tplInitScript templateName = "init-log4j-kusto-logging.sh.tmpl"
)

//go:embed templates/*.tmpl
var tplFS embed.FS

var tplCache = sync.Map{}

func funcMap() template.FuncMap {
	fm := sprig.TxtFuncMap()
	fm["shellquote"] = shellescape.Quote
	return fm
}

func loadTemplate(name templateName) (*template.Template, error) {
	if t, ok := tplCache.Load(name); ok {
		return t.(*template.Template), nil
	}
	t, err := template.New(string(name)).
		Funcs(funcMap()).
		Option("missingkey=error").
		ParseFS(tplFS, "templates/"+string(name))
	if err != nil {
		return nil, breverrors.WrapAndTrace(err, "parsing", string(name))
	}
	actual, _ := tplCache.LoadOrStore(name, t)
	return actual.(*template.Template), nil
}

func render(name templateName, data any) (string, error) {
	t, err := loadTemplate(name)
	if err != nil {
		return "", breverrors.WrapAndTrace(err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", breverrors.WrapAndTrace(err, "executing", string(name))
	}
	return buf.String(), nil
}

type propertiesData struct {
	Params   Params
	Appender AppenderSettings
}

type scriptData struct {
	Params     Params
	Appender   AppenderSettings
	Layout     Layout
	Properties string
	Roles      []Role
	FailFast   bool
}

// Generator renders the log4j2 properties and the init script that installs them.
type Generator struct {
	layout   Layout
	appender AppenderSettings
	policy   FailurePolicy
}

func NewGenerator(layout Layout, appender AppenderSettings, policy FailurePolicy) Generator {
	return Generator{layout: layout, appender: appender, policy: policy}
}

func (g Generator) Layout() Layout {
	return g.layout
}

func (g Generator) Policy() FailurePolicy {
	return g.policy
}

// Targets always returns the three role config paths, in copy order.
func (g Generator) Targets() []Target {
	return targetsFor(g.layout.SparkHome)
}

// RenderProperties renders the properties document with p inserted verbatim.
func (g Generator) RenderProperties(p Params) (string, error) {
	out, err := render(tplProperties, propertiesData{Params: p, Appender: g.appender})
	if err != nil {
		return "", breverrors.WrapAndTrace(err)
	}
	return out, nil
}

// The heredoc only references the script's variables. The shell expands each
// once and does not rescan the result, so values reach the file verbatim.
var shellParams = Params{
	IngestURL: "$LOG4J2_ADX_INGEST_CLUSTER_URL",
	AppID:     "$LOG4J2_ADX_APP_ID",
	AppKey:    "$LOG4J2_ADX_APP_KEY",
	TenantID:  "$LOG4J2_ADX_TENANT_ID",
	DBName:    "$LOG4J2_ADX_DB_NAME",
}

func shellAppender(a AppenderSettings) AppenderSettings {
	return AppenderSettings{
		TableName:        "$LOG4J2_ADX_TABLE_NAME",
		MappingName:      "$LOG4J2_ADX_MAPPING_NAME",
		MappingType:      "$LOG4J2_ADX_MAPPING_TYPE",
		FlushImmediately: a.FlushImmediately,
	}
}

// RenderScript renders the cluster-init bash script.
func (g Generator) RenderScript(p Params) (string, error) {
	props, err := render(tplProperties, propertiesData{Params: shellParams, Appender: shellAppender(g.appender)})
	if err != nil {
		return "", breverrors.WrapAndTrace(err)
	}
	out, err := render(tplInitScript, scriptData{
		Params:     p,
		Appender:   g.appender,
		Layout:     g.layout,
		Properties: props,
		Roles:      Roles,
		FailFast:   g.policy == FailFast,
	})
	if err != nil {
		return "", breverrors.WrapAndTrace(err)
	}
	return out, nil
}
