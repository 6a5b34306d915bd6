package services

import "github.com/bargaoui/rideaux/pkg/mail"

// SMTPMailer sends through the SMTP server configured in the environment.
type SMTPMailer struct{}

func (SMTPMailer) Send(to, subject, htmlBody string) error {
	return mail.To(to).Subject(subject).Body(htmlBody).Send()
}
