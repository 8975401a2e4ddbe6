package mylog

import (
	"context"
	"os"
	"strings"
)

type Severity string

const (
	SeverityDebug Severity = "DEBUG"
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

var New func(name string) Logger

type Logger interface {
	Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any)
}

var severityRank = map[Severity]int{
	SeverityDebug: 0,
	SeverityInfo:  1,
	SeverityWarn:  2,
	SeverityError: 3,
}

// minimumSeverity is taken from LOG_LEVEL; unknown or empty values log everything.
func minimumSeverity() Severity {
	level := Severity(strings.ToUpper(os.Getenv("LOG_LEVEL")))
	if _, found := severityRank[level]; !found {
		return SeverityDebug
	}
	return level
}

func enabled(minimum Severity, severity Severity) bool {
	return severityRank[severity] >= severityRank[minimum]
}
