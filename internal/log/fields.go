package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldFile      = "file"
	FieldLine      = "line"
	FieldKey       = "key"
	FieldNamespace = "namespace"
	FieldLocale    = "locale"
	FieldCount     = "count"
	FieldPath      = "path"
	FieldReason    = "reason"
	FieldError     = "error"
	FieldOperation = "operation"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentValidate = "validate"
	ComponentExtract  = "extract"
)

// Operations defines standard operation names
const (
	OpScan     = "scan"
	OpValidate = "validate"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithOperation adds the operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithFile adds the file field
func (f LogFields) WithFile(file string) LogFields {
	f[FieldFile] = file
	return f
}

// WithLine adds the line field
func (f LogFields) WithLine(line int) LogFields {
	f[FieldLine] = line
	return f
}

// WithKey adds namespace and key fields
func (f LogFields) WithKey(namespace, key string) LogFields {
	f[FieldNamespace] = namespace
	f[FieldKey] = key
	return f
}

// WithReason adds the reason field
func (f LogFields) WithReason(reason string) LogFields {
	f[FieldReason] = reason
	return f
}

// WithError adds the error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
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
