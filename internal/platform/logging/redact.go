package logging

import (
	"log/slog"

	"github.com/m-mizutani/masq"
)

// DefaultRedactOptions returns the masq options for secret redaction.
// The only real secret this service handles is the picture provider's
// API key, but the generic names are cheap to keep covered.
func DefaultRedactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("apiKey"),
		masq.WithFieldName("apikey"),
		masq.WithFieldName("api_key"),
		masq.WithFieldName("APIKey"),
		masq.WithFieldName("authorization"),

		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),
	}
}

// NewReplaceAttr creates a ReplaceAttr function for slog.HandlerOptions
// that redacts sensitive data.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	allOpts := append(DefaultRedactOptions(), opts...)
	return masq.New(allOpts...)
}
