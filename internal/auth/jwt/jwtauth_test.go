package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
)

func TestShopToken(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)

	tok, err := NewShopToken(jwtAuth, time.Hour, 123456)
	assert.NoError(t, err)

	shopID, err := VerifyShopToken(jwtAuth, tok)
	assert.NoError(t, err)
	assert.Equal(t, int64(123456), shopID)
}

func TestShopTokenExpired(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)

	tok, err := NewShopToken(jwtAuth, -time.Hour, 123456)
	assert.NoError(t, err)

	_, err = VerifyShopToken(jwtAuth, tok)
	assert.Error(t, err)
}
