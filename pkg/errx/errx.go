package errx

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// Type classifies an error independently of its code
type Type string

const (
	TypeValidation    Type = "VALIDATION"
	TypeNotFound      Type = "NOT_FOUND"
	TypeConflict      Type = "CONFLICT"
	TypeBusiness      Type = "BUSINESS"
	TypeAuthorization Type = "AUTHORIZATION"
	TypeUnavailable   Type = "UNAVAILABLE"
	TypeExternal      Type = "EXTERNAL"
	TypeInternal      Type = "INTERNAL"
)

// defaultStatus maps a Type to the HTTP status used when nothing else is known
func (t Type) defaultStatus() int {
	switch t {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeBusiness:
		return http.StatusUnprocessableEntity
	case TypeAuthorization:
		return http.StatusUnauthorized
	case TypeUnavailable:
		return http.StatusServiceUnavailable
	case TypeExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error is the application error carried across layers
type Error struct {
	Code       string         `json:"code"`
	Type       Type           `json:"type"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Cause      error          `json:"-"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors by code so registry errors compare equal across instances
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// WithDetail returns the same error with one more detail attached
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails merges details into the error
func (e *Error) WithDetails(details map[string]any) *Error {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// WithMessage overrides the user facing message
func (e *Error) WithMessage(msg string) *Error {
	e.Message = msg
	return e
}

// WithCause attaches the underlying error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// ToHTTPResponse renders the error as the JSON body returned to clients
func (e *Error) ToHTTPResponse() map[string]any {
	body := map[string]any{
		"code": e.Code,
		"type": e.Type,
	}
	if len(e.Details) > 0 {
		body["details"] = e.Details
	}
	return map[string]any{
		"success": false,
		"message": e.Message,
		"error":   body,
	}
}

// New creates an ad-hoc error outside of any registry
func New(message string, t Type) *Error {
	return &Error{
		Code:       string(t),
		Type:       t,
		Message:    message,
		HTTPStatus: t.defaultStatus(),
	}
}

// Wrap turns any error into an *Error. Errors that already are *Error keep their code.
func Wrap(err error, message string, t Type) *Error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		return existing
	}
	e := New(message, t)
	e.Cause = err
	return e
}

// As extracts an *Error from the chain
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsType reports whether err is an *Error of the given type
func IsType(err error, t Type) bool {
	e, ok := As(err)
	return ok && e.Type == t
}

// ============================================================================
// Registry
// ============================================================================

type definition struct {
	code       string
	errType    Type
	httpStatus int
	message    string
}

// Registry scopes error codes under a prefix, e.g. USER.NOT_FOUND
type Registry struct {
	prefix string
	mu     sync.RWMutex
	defs   map[string]definition
}

func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		defs:   make(map[string]definition),
	}
}

// Register declares a code and returns its fully qualified name
func (r *Registry) Register(code string, t Type, httpStatus int, message string) string {
	full := r.prefix + "." + code
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.defs[full]; exists {
		panic("errx: duplicate error code " + full)
	}
	r.defs[full] = definition{
		code:       full,
		errType:    t,
		httpStatus: httpStatus,
		message:    message,
	}
	return full
}

// New builds a fresh error for a registered code
func (r *Registry) New(code string) *Error {
	r.mu.RLock()
	def, ok := r.defs[code]
	r.mu.RUnlock()
	if !ok {
		return &Error{
			Code:       code,
			Type:       TypeInternal,
			Message:    "unregistered error code",
			HTTPStatus: http.StatusInternalServerError,
		}
	}
	return &Error{
		Code:       def.code,
		Type:       def.errType,
		Message:    def.message,
		HTTPStatus: def.httpStatus,
	}
}

// NewWithCause builds an error for a registered code with the underlying cause attached
func (r *Registry) NewWithCause(code string, cause error) *Error {
	return r.New(code).WithCause(cause)
}
