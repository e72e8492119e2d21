package pith

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownKind is returned when an encoded node has an unrecognized kind.
	ErrUnknownKind = errors.New("unknown node kind")

	// ErrMissingField is returned when an encoded node lacks a required field.
	ErrMissingField = errors.New("missing required field")

	// ErrIllegalCallee is returned when an encoded call's function is neither
	// an identifier nor a function literal.
	ErrIllegalCallee = errors.New("callee must be an identifier or a function")

	// ErrUnexpectedField is returned when an encoded node sets a field that
	// its kind does not have.
	ErrUnexpectedField = errors.New("field not allowed for this kind")

	// ErrWrongKind is returned when an encoded node appears where its kind is
	// not allowed, e.g. a statement in expression position.
	ErrWrongKind = errors.New("node kind not allowed here")
)

// DecodeError reports where in an encoded tree decoding failed.
type DecodeError struct {
	// Path locates the failing node, e.g. "/statements/0/value/left".
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %s", displayPath(e.Path), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeErr(path string, err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}
	return &DecodeError{Path: path, Err: err}
}

// EncodeError reports which node of a tree could not be encoded. Path uses
// the same syntax as DecodeError.Path.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%s: %s", displayPath(e.Path), e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

func encodeErr(path string, err error) error {
	var ee *EncodeError
	if errors.As(err, &ee) {
		return err
	}
	return &EncodeError{Path: path, Err: err}
}

func displayPath(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
