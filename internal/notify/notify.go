package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
	"sync"
	"time"

	"carRental/internal/checkout"
	"carRental/internal/lib/logger/sl"
	"carRental/internal/models"
)

const sendTimeout = 15 * time.Second

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EmailSender
type EmailSender interface {
	SendEmail(ctx context.Context, toEmail, toName, subject, plain, html string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SMSSender
type SMSSender interface {
	SendSMS(ctx context.Context, toNumber, body string) error
}

// Notifier tells the customer that a booking went through. Both channels
// are optional and delivery never affects the booking.
type Notifier struct {
	log   *slog.Logger
	email EmailSender
	sms   SMSSender

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// New accepts nil for a channel that is not configured.
func New(log *slog.Logger, email EmailSender, sms SMSSender) *Notifier {
	return &Notifier{
		log:   log,
		email: email,
		sms:   sms,
	}
}

// BookingConfirmed sends the confirmation in the background.
func (n *Notifier) BookingConfirmed(ctx context.Context, booking models.Booking, user models.User, billing checkout.BillingInfo) {
	const op = "notify.BookingConfirmed"

	log := n.log.With(
		slog.String("op", op),
		slog.String("booking_id", booking.ID.String()),
	)

	ctx = context.WithoutCancel(ctx)
	msg := newConfirmation(booking, user, billing)

	if n.email != nil && user.Email != "" {
		n.spawn(log, func() {
			ctx, cancel := context.WithTimeout(ctx, sendTimeout)
			defer cancel()

			html, err := msg.html()
			if err != nil {
				log.Error("failed to render confirmation e-mail", sl.Err(err))
				return
			}

			if err := n.email.SendEmail(ctx, user.Email, msg.name, msg.subject(), msg.plain(), html); err != nil {
				log.Error("failed to send confirmation e-mail", sl.Err(err))
				return
			}

			log.Info("confirmation e-mail sent")
		})
	}

	phone := msg.phone
	if n.sms != nil && phone != "" {
		if !strings.HasPrefix(phone, "+") {
			log.Warn("phone number is not in E.164 format", slog.String("phone", phone))
		}

		n.spawn(log, func() {
			ctx, cancel := context.WithTimeout(ctx, sendTimeout)
			defer cancel()

			if err := n.sms.SendSMS(ctx, phone, msg.sms()); err != nil {
				log.Error("failed to send confirmation sms", sl.Err(err))
				return
			}

			log.Info("confirmation sms sent")
		})
	}
}

// Wait stops accepting confirmations and blocks until every one in flight
// has been attempted.
func (n *Notifier) Wait() {
	n.mu.Lock()
	n.closed = true
	n.mu.Unlock()

	n.wg.Wait()
}

func (n *Notifier) spawn(log *slog.Logger, send func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		log.Warn("notifier is closed, confirmation dropped")
		return
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		send()
	}()
}

type confirmation struct {
	BookingID string
	Name      string
	Car       string
	PickUp    string
	DropOff   string
	From      string
	To        string
	Total     string

	name  string
	phone string
}

func newConfirmation(b models.Booking, u models.User, billing checkout.BillingInfo) confirmation {
	name := billing.FullName()
	if name == "" {
		name = u.FullName()
	}

	phone := billing.PhoneNumber
	if phone == "" {
		phone = u.PhoneNumber
	}
	if phone == "" {
		phone = b.PhoneNumber
	}

	car := "your car"
	if b.Rentable != nil && b.Rentable.Car.Name != "" {
		car = b.Rentable.Car.Name
	}

	return confirmation{
		BookingID: b.ID.String(),
		Name:      name,
		Car:       car,
		PickUp:    strings.TrimSpace(b.PickUpDate.Format("02 Jan 2006") + " " + b.PickUpTime),
		DropOff:   strings.TrimSpace(b.DropOffDate.Format("02 Jan 2006") + " " + b.DropOffTime),
		From:      b.PickUpLocation,
		To:        b.DropOffLocation,
		Total:     fmt.Sprintf("%.2f", b.TotalPrice),
		name:      name,
		phone:     phone,
	}
}

func (c confirmation) subject() string {
	return fmt.Sprintf("Your booking %s is confirmed", c.BookingID)
}

func (c confirmation) plain() string {
	return fmt.Sprintf(
		"Hello %s,\n\nYour booking %s for %s is confirmed.\n\n"+
			"Pick-up: %s at %s\n"+
			"Drop-off: %s at %s\n"+
			"Total paid: %s\n\n"+
			"You can review it in your dashboard.",
		c.Name, c.BookingID, c.Car, c.PickUp, c.From, c.DropOff, c.To, c.Total,
	)
}

func (c confirmation) sms() string {
	return fmt.Sprintf("Booking %s confirmed: %s, pick-up %s at %s.", c.BookingID, c.Car, c.PickUp, c.From)
}

var emailTemplate = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<body>
<p>Hello {{.Name}},</p>
<p>Your booking <strong>{{.BookingID}}</strong> for {{.Car}} is confirmed.</p>
<table>
<tr><td>Pick-up</td><td>{{.PickUp}} at {{.From}}</td></tr>
<tr><td>Drop-off</td><td>{{.DropOff}} at {{.To}}</td></tr>
<tr><td>Total paid</td><td>{{.Total}}</td></tr>
</table>
</body>
</html>`))

func (c confirmation) html() (string, error) {
	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, c); err != nil {
		return "", err
	}
	return buf.String(), nil
}
