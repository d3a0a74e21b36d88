package auth

import (
	"github.com/dgrijalva/jwt-go"
)

// Claims holds the token claims the client cares about. The backend signs
// the token; the client only reads it, so no signature verification
// happens here.
type Claims struct {
	Role string
	Exp  int64 // unix seconds, 0 if absent
}

// DecodeClaims extracts claims from the payload segment of a JWT without
// verifying the signature. Any decode failure yields empty claims: a
// token we cannot read is treated as having no expiry rather than
// blocking access on that basis alone.
func DecodeClaims(token string) Claims {
	parser := new(jwt.Parser)
	mapClaims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, mapClaims); err != nil {
		return Claims{}
	}

	var c Claims
	if role, ok := mapClaims["role"].(string); ok {
		c.Role = role
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		c.Exp = int64(exp)
	}
	return c
}
