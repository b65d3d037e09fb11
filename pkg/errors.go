package pkg

import "fmt"

// FieldDetail points at a single offending input field.
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is the error envelope returned by HTTP handlers.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Fields     []FieldDetail
	Err        error
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Fields  []FieldDetail `json:"fields,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithFields returns a copy of e carrying per-field details.
func (e *AppError) WithFields(fields ...FieldDetail) *AppError {
	cp := *e
	cp.Fields = append([]FieldDetail(nil), fields...)
	return &cp
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Fields: e.Fields}
}
