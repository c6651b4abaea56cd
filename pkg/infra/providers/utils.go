package providers

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type requestIDKey struct{}

// WithRequestID tags ctx so provider responses without a vendor id can be
// correlated with the submission that triggered them.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// ResponseID returns a response id for providers that do not return one.
func ResponseID(ctx context.Context, provider string) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return fmt.Sprintf("%s-%s", provider, id)
	}
	return fmt.Sprintf("%s-%d", provider, time.Now().UnixNano())
}

func FormatInstructions(instr []string) string {
	if len(instr) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("[Instructions]\n")
	for _, rule := range instr {
		if strings.TrimSpace(rule) == "" {
			continue
		}
		b.WriteString("- ")
		b.WriteString(rule)
		b.WriteByte('\n')
	}
	return b.String()
}
