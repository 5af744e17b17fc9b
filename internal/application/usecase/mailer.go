package usecase

// Mailer is the outbound-mail port used by the send-email routes.
type Mailer interface {
	Send(from, to, subject, body string) error
}
