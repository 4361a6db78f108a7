package contracts

type MailerService interface {
	SendEmail(to, subject, body string) error
}
