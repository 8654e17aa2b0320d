package dispatch

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"CartDesk/internal/cart"
	"CartDesk/internal/directory"
	"CartDesk/internal/session"
)

type brokenCarts struct {
	cart.Store
	panicOnItems bool
}

func (b brokenCarts) Items(user string) ([]directory.Product, error) {
	if b.panicOnItems {
		panic("boom")
	}
	return nil, cart.ErrNoCart
}

func TestRun_RecoversHandlerPanic(t *testing.T) {
	d := New(Deps{Log: zap.NewNop(), Carts: brokenCarts{Store: cart.NewStore(), panicOnItems: true}})

	tok := d.Query("", FuncLogin, map[string]any{"userName": "Bob"})[KeyContextID].(string)

	resp := d.Query(tok, FuncGetCartDetails, nil)
	require.False(t, resp.OK())
	assert.Equal(t, string(KindInternal), resp.ErrorType())
	assert.Equal(t, "Internal error", resp[KeyErrorMessage])
}

func TestRun_StoreErrorIsInternal(t *testing.T) {
	d := New(Deps{Log: zap.NewNop(), Carts: brokenCarts{Store: cart.NewStore()}})

	tok := d.Query("", FuncLogin, map[string]any{"userName": "Bob"})[KeyContextID].(string)

	resp := d.Query(tok, FuncGetCartDetails, nil)
	assert.Equal(t, string(KindInternal), resp.ErrorType())
}

func TestClassify_Wrapped(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorKind
	}{
		{fmt.Errorf("login: %w", session.ErrMaxLogins), KindSessionLimitReached},
		{fmt.Errorf("add: %w", ErrInvalidProduct), KindInvalidProduct},
		{errors.New("disk on fire"), KindInternal},
	}
	for _, tc := range cases {
		got, _ := classify(tc.err)
		assert.Equal(t, tc.want, got, tc.err.Error())
	}
}

func TestDecodeRequest(t *testing.T) {
	req, err := decodeRequest(FuncAdminSettings, map[string]any{"gst": false})
	require.NoError(t, err)
	as, ok := req.(AdminSettingsRequest)
	require.True(t, ok)
	require.NotNil(t, as.GST)
	assert.False(t, *as.GST)

	req, err = decodeRequest(FuncAdminSettings, map[string]any{"gst": "false"})
	require.NoError(t, err)
	assert.Nil(t, req.(AdminSettingsRequest).GST)

	req, err = decodeRequest(FuncLogout, nil)
	require.NoError(t, err)
	assert.Equal(t, FuncLogout, req.Function())

	_, err = decodeRequest("nope", map[string]any{})
	assert.ErrorIs(t, err, ErrUnknownFunction)
}

func TestShortToken(t *testing.T) {
	assert.Equal(t, "abc", shortToken("abc"))
	assert.Equal(t, "01234567", shortToken("0123456789abcdef"))
}
