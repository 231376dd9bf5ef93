package services

import (
	"fmt"
	"log"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Notifier delivers confirmations and reminders to the patient.
// SendEmail errors are returned to the caller; SendSMS and Speak are
// fire-and-forget from the dialogue's point of view.
type Notifier interface {
	SendEmail(to, subject, body string) error
	SendSMS(to, body string) error
	Speak(text string) error
}

// NotifierService sends email via SendGrid and SMS/voice via Twilio
type NotifierService struct {
	sendgridClient *sendgrid.Client
	twilioClient   *twilio.RestClient
	fromEmail      string
	fromName       string
	fromPhone      string
}

// NewNotifierService creates a notifier from environment credentials
func NewNotifierService() (*NotifierService, error) {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	fromPhone := os.Getenv("TWILIO_PHONE_NUMBER")

	if accountSid == "" || authToken == "" || fromPhone == "" {
		return nil, fmt.Errorf("missing Twilio credentials in environment variables")
	}

	twilioClient := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	sendgridKey := os.Getenv("SENDGRID_API_KEY")
	var sendgridClient *sendgrid.Client
	if sendgridKey != "" {
		sendgridClient = sendgrid.NewSendClient(sendgridKey)
	}

	fromEmail := os.Getenv("NOTIFY_FROM_EMAIL")
	fromName := os.Getenv("NOTIFY_FROM_NAME")
	if fromName == "" {
		fromName = "Grace Hospital"
	}

	return &NotifierService{
		sendgridClient: sendgridClient,
		twilioClient:   twilioClient,
		fromEmail:      fromEmail,
		fromName:       fromName,
		fromPhone:      fromPhone,
	}, nil
}

// SendEmail sends a plain-text email via SendGrid
func (n *NotifierService) SendEmail(to, subject, body string) error {
	if n.sendgridClient == nil {
		return fmt.Errorf("sendgrid client not configured")
	}

	from := mail.NewEmail(n.fromName, n.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, body, body)

	resp, err := n.sendgridClient.Send(message)
	if err != nil {
		log.Printf("❌ Failed to send email to %s: %v", to, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("❌ SendGrid returned %d for email to %s", resp.StatusCode, to)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}

	log.Printf("✅ Email sent to %s: %s", to, subject)
	return nil
}

// SendSMS sends a text message via Twilio
func (n *NotifierService) SendSMS(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(n.fromPhone)
	params.SetTo(to)
	params.SetBody(body)

	resp, err := n.twilioClient.Api.CreateMessage(params)
	if err != nil {
		log.Printf("❌ Failed to send SMS: %v", err)
		return err
	}

	log.Printf("✅ SMS sent! SID: %s", *resp.Sid)
	return nil
}

// Speak places a voice call that reads the text aloud via TwiML
func (n *NotifierService) Speak(text string) error {
	to := os.Getenv("NOTIFY_VOICE_TO")
	if to == "" {
		log.Println("⚠️  NOTIFY_VOICE_TO not set - skipping voice reminder")
		return nil
	}

	params := &twilioApi.CreateCallParams{}
	params.SetFrom(n.fromPhone)
	params.SetTo(to)
	params.SetTwiml(fmt.Sprintf("<Response><Say>%s</Say></Response>", text))

	resp, err := n.twilioClient.Api.CreateCall(params)
	if err != nil {
		log.Printf("❌ Failed to place voice call: %v", err)
		return err
	}

	log.Printf("✅ Voice reminder placed! SID: %s", *resp.Sid)
	return nil
}
