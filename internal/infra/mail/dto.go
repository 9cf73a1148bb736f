package mail

// SMTPSender delivers campaign messages over SMTP, rendering the body from
// an HTML template with the per-recipient context.
type SMTPSender struct {
	Host         string
	Port         int
	User         string
	Password     string
	From         string
	TemplatePath string
}
