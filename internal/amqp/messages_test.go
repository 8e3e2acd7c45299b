package amqp

import "testing"

func TestDueReminderMessageRoundTrip(t *testing.T) {
	msg := NewDueReminderMessage("sub-1", "Netflix", "15.99", "monthly", "2024-03-10")

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error: %v", err)
	}

	got, err := DueReminderMessageFromJSON(data)
	if err != nil {
		t.Fatalf("DueReminderMessageFromJSON() error: %v", err)
	}

	if got.SubscriptionID != "sub-1" || got.Name != "Netflix" {
		t.Errorf("identity fields = %q/%q", got.SubscriptionID, got.Name)
	}
	if got.Amount != "15.99" || got.BillingCycle != "monthly" || got.DueDate != "2024-03-10" {
		t.Errorf("payload fields = %q/%q/%q", got.Amount, got.BillingCycle, got.DueDate)
	}
	if got.Timestamp.IsZero() {
		t.Error("timestamp not stamped")
	}
}

func TestDueReminderMessageFromJSONInvalid(t *testing.T) {
	if _, err := DueReminderMessageFromJSON([]byte("not json")); err == nil {
		t.Error("expected error for malformed payload")
	}
}
