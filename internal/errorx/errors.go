// Package errorx maps gallery API failures to HTTP responses. Logic functions
// return a CodeError (usually via one of the domain constructors below) and
// the global handler turns it into the right status code and JSON body.
package errorx

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// CodeError is a typed error carrying the HTTP status code to respond with.
type CodeError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func (e *CodeError) Error() string {
	return e.Msg
}

// ErrTemplateNotFound reports a dataset index with no template behind it.
// Covers both out-of-range indices and indices from a stale listing.
func ErrTemplateNotFound(index int) error {
	return &CodeError{
		Code: http.StatusNotFound,
		Msg:  fmt.Sprintf("template not found: %d", index),
	}
}

// ErrShareNotFound reports an unknown share ID.
func ErrShareNotFound(id string) error {
	return &CodeError{
		Code: http.StatusNotFound,
		Msg:  "share not found: " + id,
	}
}

// ErrInvalidRecipient rejects a share request whose recipient address failed
// validation.
func ErrInvalidRecipient(err error) error {
	return &CodeError{Code: http.StatusBadRequest, Msg: err.Error()}
}

// ErrBadRequest returns a 400 error.
func ErrBadRequest(msg string) error {
	return &CodeError{Code: http.StatusBadRequest, Msg: msg}
}

// ErrInternal returns a 500 error.
func ErrInternal(msg string) error {
	return &CodeError{Code: http.StatusInternalServerError, Msg: msg}
}

// RegisterErrorHandler installs the global httpx error handler. CodeErrors
// keep their status; anything untyped is logged and becomes an opaque 500 so
// internal details never reach API clients.
func RegisterErrorHandler() {
	httpx.SetErrorHandlerCtx(func(ctx context.Context, err error) (int, any) {
		switch e := err.(type) {
		case *CodeError:
			return e.Code, &CodeError{Code: e.Code, Msg: e.Msg}
		default:
			logx.WithContext(ctx).Errorf("unexpected error: %v", err)
			return http.StatusInternalServerError, &CodeError{
				Code: http.StatusInternalServerError,
				Msg:  "internal server error",
			}
		}
	})
}
