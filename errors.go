package xmlavro

import "github.com/avroxsd/xmlavro/internal/converr"

// Reason is the sub-kind of a ConverterError. It is encoded in the error's
// message (for diagnostics) but, per spec.md §7, all converter failures
// share the single ConverterError type — Reason exists for callers that
// want to branch on failure category without string matching.
type Reason = converr.Reason

const (
	ReasonMissingNamespace          = converr.ReasonMissingNamespace
	ReasonUnsupportedXSDConstruct   = converr.ReasonUnsupportedXSDConstruct
	ReasonSchemaValidation          = converr.ReasonSchemaValidation
	ReasonXMLParse                  = converr.ReasonXMLParse
	ReasonDatumParse                = converr.ReasonDatumParse
	ReasonNameCollisionUnresolvable = converr.ReasonNameCollisionUnresolvable
)

// ConverterError is the one error family this package returns. Every
// translation or datum-build failure is fatal to the in-progress
// conversion and leaves no partial schema or datum behind.
type ConverterError = converr.Error

// NewConverterError builds a ConverterError from a reason and a
// printf-style message.
func NewConverterError(reason Reason, format string, args ...any) *ConverterError {
	return converr.New(reason, format, args...)
}

// WrapConverterError is like NewConverterError but records cause as the
// underlying error, reachable through Unwrap.
func WrapConverterError(reason Reason, cause error, format string, args ...any) *ConverterError {
	return converr.Wrap(reason, cause, format, args...)
}

// AsConverterError extracts a *ConverterError from err, unwrapping through
// any Unwrap() error chain.
func AsConverterError(err error) (*ConverterError, bool) {
	return converr.As(err)
}
