package log

// Common field names for structured logging.
const (
	FieldComponent      = "component"
	FieldRequestID      = "request_id"
	FieldClientIP       = "client_ip"
	FieldMethod         = "method"
	FieldPath           = "path"
	FieldStatusCode     = "status_code"
	FieldDuration       = "duration_ms"
	FieldError          = "error"
	FieldYear           = "year"
	FieldMonth          = "month"
	FieldSubscriptionID = "subscription_id"
	FieldSubscription   = "subscription_name"
	FieldCycle          = "billing_cycle"
	FieldAmount         = "amount"
	FieldDueDate        = "due_date"
	FieldQueue          = "queue"
	FieldBackend        = "backend"
)

// Standard component names.
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentStorage   = "storage"
	ComponentAMQP      = "amqp"
	ComponentReminder  = "reminder"
	ComponentAnalytics = "analytics"
)
