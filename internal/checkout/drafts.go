package checkout

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"carRental/internal/models"
	"carRental/internal/session"

	"github.com/go-playground/validator/v10"
)

type draftKey struct {
	sessionID  string
	rentableID models.ID
}

// PaymentWindow is how long a draft stays locked after a payment order was
// created for it.
const PaymentWindow = 30 * time.Minute

// Drafts holds one in-memory draft per session and listing.
type Drafts struct {
	mu       sync.Mutex
	drafts   map[draftKey]*Draft
	validate *validator.Validate
	window   time.Duration
	now      func() time.Time
}

func NewDrafts() *Drafts {
	return &Drafts{
		drafts:   make(map[draftKey]*Draft),
		validate: validator.New(),
		window:   PaymentWindow,
		now:      time.Now,
	}
}

// Update applies a sub-form payload, creating the draft on first use, and
// returns a copy of the draft as it stands afterwards. A draft with an open
// payment order is not changed and ErrPaymentPending is returned.
func (d *Drafts) Update(sessionID string, rentableID models.ID, section Section, data json.RawMessage) (Draft, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	draft := d.lookup(sessionID, rentableID)

	if p := draft.pending; p != nil {
		if d.now().Before(p.Expires) {
			return *draft, ErrPaymentPending
		}
		draft.pending = nil
	}

	err := draft.Apply(d.validate, section, data)

	return *draft, err
}

// Freeze locks the draft against edits and records the booking the payment
// order was created for. A later Freeze replaces the earlier order.
func (d *Drafts) Freeze(sessionID string, rentableID models.ID, p PendingPayment) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	draft, ok := d.drafts[draftKey{sessionID: sessionID, rentableID: rentableID}]
	if !ok {
		return fmt.Errorf("%w: %s", ErrDraftNotFound, rentableID)
	}

	p.Expires = d.now().Add(d.window)
	draft.pending = &p

	return nil
}

// Release unlocks the draft if its pending payment is for orderID.
func (d *Drafts) Release(sessionID string, rentableID models.ID, orderID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	draft, ok := d.drafts[draftKey{sessionID: sessionID, rentableID: rentableID}]
	if !ok || draft.pending == nil || draft.pending.OrderID != orderID {
		return
	}

	draft.pending = nil
}

// Get returns a copy of the draft, creating an empty one if needed. When
// prefill is not nil it seeds an untouched billing section.
func (d *Drafts) Get(sessionID string, rentableID models.ID, prefill *models.User) Draft {
	d.mu.Lock()
	defer d.mu.Unlock()

	draft := d.lookup(sessionID, rentableID)
	if prefill != nil {
		draft.PrefillBilling(d.validate, *prefill)
	}

	return *draft
}

// Peek returns a copy of an existing draft without creating one.
func (d *Drafts) Peek(sessionID string, rentableID models.ID) (Draft, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	draft, ok := d.drafts[draftKey{sessionID: sessionID, rentableID: rentableID}]
	if !ok {
		return Draft{}, false
	}

	return *draft, true
}

func (d *Drafts) Discard(sessionID string, rentableID models.ID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.drafts, draftKey{sessionID: sessionID, rentableID: rentableID})
}

// DiscardSession drops every draft that belongs to the session.
func (d *Drafts) DiscardSession(sessionID string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := 0
	for key := range d.drafts {
		if key.sessionID == sessionID {
			delete(d.drafts, key)
			n++
		}
	}

	return n
}

func (d *Drafts) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.drafts)
}

// OnSessionEvent is meant to be passed to session.Store.Subscribe.
func (d *Drafts) OnSessionEvent(ev session.Event) {
	if ev.Kind == session.EventEnded {
		d.DiscardSession(ev.Session.ID)
	}
}

func (d *Drafts) lookup(sessionID string, rentableID models.ID) *Draft {
	key := draftKey{sessionID: sessionID, rentableID: rentableID}

	draft, ok := d.drafts[key]
	if !ok {
		draft = NewDraft(rentableID)
		d.drafts[key] = draft
	}

	return draft
}
