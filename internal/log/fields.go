package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldBackend   = "backend"
	FieldPath      = "path"
	FieldURL       = "url"
	FieldStatus    = "status_code"
	FieldRecords   = "records"
	FieldExcluded  = "excluded"
	FieldMonth     = "month"
	FieldGender    = "gender"
	FieldChart     = "chart"
	FieldDuration  = "duration_ms"
	FieldExchange  = "exchange"
	FieldQueue     = "queue"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentDataset   = "dataset"
	ComponentDownload  = "download"
	ComponentStorage   = "storage"
	ComponentSheets    = "sheets"
	ComponentBackend   = "backend"
	ComponentTransform = "transform"
	ComponentChart     = "chart"
	ComponentReport    = "report"
	ComponentAMQP      = "amqp"
	ComponentMetrics   = "metrics"
)

// Operations defines standard operation names
const (
	OpRead    = "read"
	OpImport  = "import"
	OpFetch   = "fetch"
	OpRender  = "render"
	OpPublish = "publish"
	OpPush    = "push"
	OpSummary = "summary"
	OpFilter  = "filter"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

func (f LogFields) WithRunID(id string) LogFields {
	f[FieldRunID] = id
	return f
}

// WithError adds the error text; nil errors are ignored.
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithDataset records where records came from and how many were read.
func (f LogFields) WithDataset(backend, location string, records int) LogFields {
	f[FieldBackend] = backend
	f[FieldPath] = location
	f[FieldRecords] = records
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
