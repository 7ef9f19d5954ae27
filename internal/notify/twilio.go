package notify

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type Twilio struct {
	client *twilio.RestClient
	from   string
}

func NewTwilio(accountSID, authToken, fromNumber string) *Twilio {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   accountSID,
		Password:   authToken,
		AccountSid: accountSID,
	})

	return &Twilio{
		client: client,
		from:   fromNumber,
	}
}

// SendSMS ignores ctx; the Twilio client has no context-aware call.
func (t *Twilio) SendSMS(_ context.Context, toNumber, body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(t.from)
	params.SetBody(body)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio: %w", err)
	}

	if resp == nil || resp.Sid == nil {
		return fmt.Errorf("twilio: message accepted without sid")
	}

	return nil
}
