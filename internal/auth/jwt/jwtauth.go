package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

// VerifyShopToken validates a token and returns the shop id it was
// issued for.
func VerifyShopToken(jwtAuth *jwtauth.JWTAuth, token string) (int64, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return 0, err
	}
	shopID, err := strconv.ParseInt(t.Subject(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token subject is not a shop id: %w", err)
	}
	return shopID, nil
}

// NewShopToken creates a JWT whose subject is the shop id the holder
// may query reports for.
func NewShopToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, shopID int64) (string, error) {
	claims := map[string]interface{}{
		"exp": time.Now().Add(ttl).Unix(),
		"sub": strconv.FormatInt(shopID, 10),
	}
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return ts, err
	}
	return ts, nil
}
