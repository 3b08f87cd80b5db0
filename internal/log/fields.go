package log

// Common field names for structured logging
const (
	FieldComponent      = "component"
	FieldError          = "error"
	FieldUserID         = "user_id"
	FieldRecordID       = "record_id"
	FieldDate           = "date"
	FieldHours          = "hours_worked"
	FieldRate           = "hourly_rate"
	FieldEarnings       = "earnings"
	FieldAverage        = "average"
	FieldClassification = "classification"
	FieldBackend        = "backend"
	FieldQueue          = "queue"
	FieldExchange       = "exchange"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentEntry   = "entry"
	ComponentStorage = "storage"
	ComponentAMQP    = "amqp"
	ComponentWorker  = "worker"
	ComponentExport  = "export"
)
