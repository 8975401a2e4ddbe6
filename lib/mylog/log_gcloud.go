package mylog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/MarcGrol/storyfunnel/lib/mycontext"
)

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
		New = newGloudLogger
		// Prefix text prevents the message from being parsed as JSON.
		log.SetFlags(0)
	}
}

type structuredLogger struct {
	componentName string
	minimum       Severity
}

func newGloudLogger(componentName string) Logger {
	return structuredLogger{
		componentName: componentName,
		minimum:       minimumSeverity(),
	}
}

func (l structuredLogger) Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...interface{}) {
	if !enabled(l.minimum, severity) {
		return
	}
	log.Println(entry{
		Component: l.componentName,
		Labels:    map[string]string{"attempt": traceLabel},
		Trace:     mycontext.TraceFromContext(ctx),
		Severity:  string(severity),
		Message:   l.componentName + ":" + fmt.Sprintf(format, a...),
	}.String())
}

type entry struct {
	Component string            `json:"component,omitempty"`
	Labels    map[string]string `json:"labels,omitempty"`
	Trace     string            `json:"logging.googleapis.com/trace,omitempty"`
	Severity  string            `json:"severity,omitempty"`
	Message   string            `json:"message"`
}

func (e entry) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		log.Printf("error marshalling log record: %v", err)
	}

	return string(out)
}
