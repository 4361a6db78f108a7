package mailer

import (
	"barbero-service/internal/app/contracts"
	"barbero-service/internal/app/drivers/mailer"
	"barbero-service/internal/pkg/constvars"
	"barbero-service/internal/pkg/exceptions"
	"fmt"
	"net/smtp"
)

type mailerService struct {
	Client *mailer.SMTPClient
}

func NewMailerService(client *mailer.SMTPClient) contracts.MailerService {
	return &mailerService{Client: client}
}

func (svc *mailerService) SendEmail(to, subject, body string) error {
	msg := []byte(fmt.Sprintf(constvars.EmailSendBasicEmailFormat, to, subject, body))
	addr := fmt.Sprintf("%s:%d", svc.Client.Host, svc.Client.Port)
	err := smtp.SendMail(addr, svc.Client.Auth, svc.Client.EmailSender, []string{to}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}
	return nil
}
