package errorx

import (
	"errors"
	"net/http"
	"testing"
)

func TestDomainConstructors(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{ErrTemplateNotFound(7), http.StatusNotFound, "template not found: 7"},
		{ErrShareNotFound("abc"), http.StatusNotFound, "share not found: abc"},
		{ErrInvalidRecipient(errors.New("invalid recipient address \"x\"")), http.StatusBadRequest, "invalid recipient address \"x\""},
		{ErrBadRequest("bad"), http.StatusBadRequest, "bad"},
		{ErrInternal("boom"), http.StatusInternalServerError, "boom"},
	}

	for _, c := range cases {
		ce, ok := c.err.(*CodeError)
		if !ok {
			t.Fatalf("%v is not a *CodeError", c.err)
		}
		if ce.Code != c.wantCode {
			t.Errorf("%q: code = %d, want %d", ce.Msg, ce.Code, c.wantCode)
		}
		if ce.Error() != c.wantMsg {
			t.Errorf("message = %q, want %q", ce.Error(), c.wantMsg)
		}
	}
}
