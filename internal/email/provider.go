package email

// Provider sends notification emails. Sending is fire-and-forget from the
// caller's perspective: a failed notification is logged, never surfaced to
// the API client.
type Provider interface {
	Send(to []string, subject, htmlBody string) error
}

// NoopProvider drops every message. Used when email is disabled in config
// and in tests.
type NoopProvider struct{}

func (NoopProvider) Send(to []string, subject, htmlBody string) error {
	return nil
}
