package logging

import (
	"context"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

type Environment string

const (
	EnvDev     Environment = "dev"
	EnvStaging Environment = "staging"
	EnvProd    Environment = "prod"
)

// Module names the component a log line came from.
type Module string

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type contextKey int

const (
	requestIDKey contextKey = iota
	moduleKey
)

const maxRequestIDLength = 128

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

func ModuleFromContext(ctx context.Context) (Module, bool) {
	m, ok := ctx.Value(moduleKey).(Module)
	return m, ok
}

// ValidateAndExtractRequestID returns id when it is safe to propagate,
// otherwise a freshly generated one.
func ValidateAndExtractRequestID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > maxRequestIDLength {
		return uuid.NewString()
	}
	for _, r := range id {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.') {
			return uuid.NewString()
		}
	}
	return id
}
