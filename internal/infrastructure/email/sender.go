package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type EmailSender struct {
	apiKey      string
	senderEmail string
	senderName  string
	frontend    string
}

func NewEmailSender(apiKey, senderEmail, frontend string) *EmailSender {
	return &EmailSender{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  "ShikkhaBazar",
		frontend:    frontend,
	}
}

// SendGrid request format
type sgEmail struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
type sgRequest struct {
	Personalizations []struct {
		To []sgEmail `json:"to"`
	} `json:"personalizations"`
	From    sgEmail     `json:"from"`
	Subject string      `json:"subject"`
	Content []sgContent `json:"content"`
}

// Send отправляет одно HTML-письмо через SendGrid
func (s *EmailSender) Send(toEmail, subject, html string) error {
	body := sgRequest{
		Personalizations: []struct {
			To []sgEmail `json:"to"`
		}{
			{To: []sgEmail{{Email: toEmail}}},
		},
		From: sgEmail{
			Email: s.senderEmail,
			Name:  s.senderName,
		},
		Subject: subject,
		Content: []sgContent{
			{Type: "text/html", Value: html},
		},
	}

	bodyBytes, _ := json.Marshal(body)

	req, err := http.NewRequest(
		"POST",
		"https://api.sendgrid.com/v3/mail/send",
		bytes.NewBuffer(bodyBytes),
	)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// SendGrid возвращает 202 при успехе
	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sendgrid error: status=%d body=%s", resp.StatusCode, respBody)
	}

	return nil
}

// Письмо студенту после зачисления на курс
func (s *EmailSender) SendEnrollmentEmail(toEmail, fullName, courseTitle string) error {
	html := fmt.Sprintf(`
	<html>
	<body style="font-family: Arial, sans-serif; background-color: #f4f6f8; margin: 0; padding: 0;">
		<div style="max-width: 600px; margin: 40px auto; background: #ffffff; padding: 30px; border-radius: 10px;">
			<h2 style="color: #1a7f4b;">Welcome aboard, %s!</h2>
			<p>Your enrollment in <b>%s</b> is confirmed. The course is now available on your dashboard.</p>
			<a href="%s/dashboard" style="display:inline-block;margin:20px 0;padding:12px 26px;background:#1a7f4b;color:#ffffff;text-decoration:none;border-radius:6px;">Go to my courses</a>
			<p style="font-size:12px;color:#888;">If you did not expect this email, please contact support.</p>
		</div>
	</body>
	</html>`, fullName, courseTitle, s.frontend)

	return s.Send(toEmail, "Enrollment confirmed: "+courseTitle, html)
}
