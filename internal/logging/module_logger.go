package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-agency-site/pkg/interfaces"
)

const (
	rootModule     = "site"
	contentModule  = "site.content"
	estimateModule = "site.estimate"
	contactModule  = "site.contact"
	httpModule     = "site.http"
	commandsModule = "site.commands"
)

const (
	fieldContentKind   = "kind"
	fieldContentLocale = "locale"
	fieldContentSlug   = "slug"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field so entries can be filtered per module.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ContentLogger returns the logger namespace reserved for the content store.
func ContentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contentModule)
}

// EstimateLogger returns the logger namespace reserved for the estimate service.
func EstimateLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, estimateModule)
}

// ContactLogger returns the logger namespace reserved for contact submissions.
func ContactLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contactModule)
}

// HTTPLogger returns the logger namespace reserved for the HTTP adapter.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// CommandsLogger returns the logger namespace reserved for command handlers.
func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandsModule)
}

// WithContentContext enriches the logger with the content kind, locale and
// slug of the item being processed. Empty values are ignored.
func WithContentContext(logger interfaces.Logger, kind, locale, slug string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(kind); trimmed != "" {
		fields[fieldContentKind] = trimmed
	}
	if trimmed := strings.TrimSpace(locale); trimmed != "" {
		fields[fieldContentLocale] = trimmed
	}
	if trimmed := strings.TrimSpace(slug); trimmed != "" {
		fields[fieldContentSlug] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
