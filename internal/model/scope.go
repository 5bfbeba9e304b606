package model

// Scope identifies who triggered a use case call.
type Scope struct {
	UserID   string
	Username string
	// Source names the delivery channel, e.g. "http", "telegram", "nats".
	Source string
}

const (
	SourceHTTP     = "http"
	SourceTelegram = "telegram"
	SourceNATS     = "nats"
)
