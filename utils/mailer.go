package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

func init() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("load AWS config for SES: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
}

func sendEmail(to, subject, body string) error {
	_, err := sesClient.SendEmail(context.TODO(), &ses.SendEmailInput{
		Source:      aws.String(os.Getenv("SES_EMAIL")),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body:    &types.Body{Text: &types.Content{Data: aws.String(body)}},
		},
	})
	if err != nil {
		log.Printf("ses send to %s: %v", to, err)
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// SendMFAEmail mails the 6-digit sign-in code.
func SendMFAEmail(to, code string) error {
	body := fmt.Sprintf(
		"Your Calo sign-in code is %s.\n\nEnter it in the app to finish logging in.",
		code)
	return sendEmail(to, "Your Calo sign-in code", body)
}

// SendResetEmail mails the password reset code.
func SendResetEmail(to, code string) error {
	body := fmt.Sprintf(
		"Your Calo password reset code is %s.\n\nIt is valid for 15 minutes. If you didn't ask for a reset, you can ignore this email.",
		code)
	return sendEmail(to, "Reset your Calo password", body)
}
