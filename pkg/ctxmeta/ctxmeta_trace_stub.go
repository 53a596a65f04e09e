//go:build !otel || gopls

package ctxmeta

import "context"

// Сборка без тега `otel`: trace/span недоступны, логи идут без них.
func TraceIDFromContext(context.Context) (string, bool) { return "", false }
func SpanIDFromContext(context.Context) (string, bool)  { return "", false }
