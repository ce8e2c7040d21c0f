package threecommas

import (
	"context"
	"fmt"
	"net/http"
)

// UsersService talks to /public/api/ver1/users.
type UsersService struct {
	*Service
}

// Trading modes accepted by ChangeMode.
const (
	ModePaper = "paper"
	ModeReal  = "real"
)

// ChangeMode switches the account between paper and real trading.
func (s *UsersService) ChangeMode(ctx context.Context, mode string) error {
	if mode != ModePaper && mode != ModeReal {
		return &EncodingError{Key: "mode", Err: fmt.Errorf("%w: mode %q", ErrUnsupportedValue, mode)}
	}
	return s.send(ctx, http.MethodPost, "/change_mode", Params{}.Add("mode", mode), nil)
}
