package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds SMTP delivery settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	// BaseURL is the public application URL used to build invite links,
	// e.g. https://app.example.com -> {BaseURL}/invite/{token}.
	BaseURL string
}

// SMTPMailer sends invitation notices over SMTP.
type SMTPMailer struct {
	cfg  SMTPConfig
	tmpl *template.Template
}

const invitationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>You're invited to {{.WorkspaceName}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { color: #2c3e50; border-bottom: 1px solid #eee; padding-bottom: 10px; }
        .content { margin: 20px 0; }
        .button { display: inline-block; padding: 10px 20px; background-color: #3498db; color: white; text-decoration: none; border-radius: 4px; }
        .footer { margin-top: 30px; font-size: 12px; color: #7f8c8d; text-align: center; }
    </style>
</head>
<body>
    <div class="header">
        <h2>You're invited to join {{.WorkspaceName}}</h2>
    </div>

    <div class="content">
        <p>Hello,</p>
        <p>{{.InviterName}} has invited you to join the <strong>{{.WorkspaceName}}</strong> workspace as a <strong>{{.Role}}</strong>.</p>

        <p><a class="button" href="{{.InviteLink}}">Accept invitation</a></p>

        <p>This invitation expires in 7 days. If the button doesn't work, copy this link into your browser:</p>
        <p>{{.InviteLink}}</p>
    </div>

    <div class="footer">
        <p>If you weren't expecting this invitation, you can safely ignore this email.</p>
    </div>
</body>
</html>`

func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	tmpl, err := template.New("invitation").Parse(invitationTemplate)
	if err != nil {
		return nil, fmt.Errorf("mail: parse invitation template: %w", err)
	}
	return &SMTPMailer{cfg: cfg, tmpl: tmpl}, nil
}

func (m *SMTPMailer) SendInvitation(ctx context.Context, inv Invitation) error {
	var body bytes.Buffer
	err := m.tmpl.Execute(&body, struct {
		WorkspaceName string
		InviterName   string
		Role          string
		InviteLink    string
	}{
		WorkspaceName: inv.WorkspaceName,
		InviterName:   inv.InviterName,
		Role:          string(inv.Role),
		InviteLink:    fmt.Sprintf("%s/invite/%s", m.cfg.BaseURL, inv.Token),
	})
	if err != nil {
		return fmt.Errorf("mail: render invitation email: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.FromEmail, m.cfg.FromName)
	msg.SetHeader("To", inv.To)
	msg.SetHeader("Subject", fmt.Sprintf("%s invited you to %s", inv.InviterName, inv.WorkspaceName))
	msg.SetBody("text/html", body.String())

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)

	// gomail has no context support; honour cancellation before dialing.
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail: send invitation to %s: %w", inv.To, err)
	}
	return nil
}
