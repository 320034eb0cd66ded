package auth

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/matryer/is"
)

func TestStaticTokenAlwaysReturnsSameValue(t *testing.T) {
	is := is.New(t)

	supplier := NewStaticToken("abc123")

	token, err := supplier.GetToken(context.Background())
	is.NoErr(err)
	is.Equal(token, "abc123")

	token, err = supplier.GetToken(context.Background())
	is.NoErr(err)
	is.Equal(token, "abc123")
}

func TestCallbackTokenInvokesCallbackEveryCall(t *testing.T) {
	is := is.New(t)

	var calls atomic.Int32
	supplier := NewCallbackToken(func(ctx context.Context) (string, error) {
		n := calls.Add(1)
		return "token-" + string(rune('0'+n)), nil
	})

	first, err := supplier.GetToken(context.Background())
	is.NoErr(err)
	is.Equal(first, "token-1")

	second, err := supplier.GetToken(context.Background())
	is.NoErr(err)
	is.Equal(second, "token-2")
}

func TestCallbackTokenWrapsFailure(t *testing.T) {
	is := is.New(t)

	boom := errors.New("upstream refresh failed")
	supplier := NewCallbackToken(func(ctx context.Context) (string, error) {
		return "", boom
	})

	_, err := supplier.GetToken(context.Background())
	is.True(err != nil)

	var authErr *AuthError
	is.True(errors.As(err, &authErr))
	is.Equal(authErr.Kind, ErrorKindSilentRefreshFailed)
	is.True(errors.Is(err, boom))
}
