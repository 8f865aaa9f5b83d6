package session

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/spf13/cast"
)

// DecodeExpiry extracts the exp claim (unix seconds) from a bearer token
// without verifying the signature. It returns false for anything malformed:
// wrong segment count, broken base64url, unparseable payload JSON or a
// missing/non-numeric exp. It is safe to call on possibly stale storage
// contents.
func DecodeExpiry(token string) (int64, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return 0, false
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	raw, ok := claims["exp"]
	if !ok {
		return 0, false
	}
	exp, err := cast.ToInt64E(raw)
	if err != nil {
		return 0, false
	}
	return exp, true
}

// IsExpiredAt reports whether the token is expired at the given instant.
// A token that cannot be decoded counts as expired (fail closed), and a
// token whose exp equals the instant is already expired.
func IsExpiredAt(token string, now time.Time) bool {
	exp, ok := DecodeExpiry(token)
	if !ok {
		return true
	}
	return exp <= now.Unix()
}

// IsExpired reports whether the token is expired right now.
func IsExpired(token string) bool {
	return IsExpiredAt(token, time.Now())
}
