package amqp

import (
	"encoding/json"
	"time"
)

// DueReminderMessage tells a notification consumer that a subscription
// bills on DueDate. Amount is the decimal price as a string, in the
// subscription's own billing cadence.
type DueReminderMessage struct {
	SubscriptionID string    `json:"subscription_id"`
	Name           string    `json:"name"`
	Amount         string    `json:"amount"`
	BillingCycle   string    `json:"billing_cycle"`
	DueDate        string    `json:"due_date"` // YYYY-MM-DD
	Timestamp      time.Time `json:"timestamp"`
}

// NewDueReminderMessage stamps a reminder with the current time.
func NewDueReminderMessage(id, name, amount, cycle, dueDate string) *DueReminderMessage {
	return &DueReminderMessage{
		SubscriptionID: id,
		Name:           name,
		Amount:         amount,
		BillingCycle:   cycle,
		DueDate:        dueDate,
		Timestamp:      time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *DueReminderMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// DueReminderMessageFromJSON creates a message from JSON bytes.
func DueReminderMessageFromJSON(data []byte) (*DueReminderMessage, error) {
	var msg DueReminderMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
