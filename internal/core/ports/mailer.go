package ports

// Mailer is the outbound mail transport. Send blocks until the message is
// accepted by the server or delivery fails.
type Mailer interface {
	Send(to []string, subject, body string) error
}
