package jwt

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of a session credential
type Claims = jwt.MapClaims

// now is swapped in tests
var now = time.Now

// The client never holds the signing key, so only the payload segment is read.
// The header and signature are ignored.
var toURLAlphabet = strings.NewReplacer("+", "-", "/", "_", "=", "")

// Decode reads the payload of a header.payload.signature credential.
// It returns nil for anything malformed and never panics.
func Decode(credential string) Claims {
	if credential == "" {
		return nil
	}
	parts := strings.Split(credential, ".")
	if len(parts) != 3 {
		log.Printf("⚠️ credential decode failed: %d segments", len(parts))
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(toURLAlphabet.Replace(parts[1]))
	if err != nil {
		log.Printf("⚠️ credential decode failed: %v", err)
		return nil
	}
	var claims Claims
	if err := json.Unmarshal(raw, &claims); err != nil || claims == nil {
		log.Printf("⚠️ credential decode failed: payload is not a JSON object")
		return nil
	}
	return claims
}

// ExpiresAt returns the exp claim. ok is false when the claim is missing or not numeric.
func ExpiresAt(credential string) (t time.Time, ok bool) {
	claims := Decode(credential)
	if claims == nil {
		return time.Time{}, false
	}
	var secs float64
	switch v := claims["exp"].(type) {
	case float64:
		secs = v
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return time.Time{}, false
		}
		secs = f
	default:
		return time.Time{}, false
	}
	return time.UnixMilli(int64(secs * 1000)), true
}

// IsExpired is permissive: no claims or no numeric exp means not expired
func IsExpired(credential string) bool {
	exp, ok := ExpiresAt(credential)
	if !ok {
		return false
	}
	return !now().Before(exp)
}

// RoleOf reads the role claim, falling back to the first authority.
// Spring-style {"authority": "..."} entries are unwrapped. Returns "" when absent.
func RoleOf(credential string) string {
	claims := Decode(credential)
	if claims == nil {
		return ""
	}
	if role := roleValue(claims["role"]); role != "" {
		return role
	}
	if authorities, ok := claims["authorities"].([]any); ok && len(authorities) > 0 {
		return roleValue(authorities[0])
	}
	return ""
}

// Subject returns the sub claim
func Subject(credential string) string {
	claims := Decode(credential)
	if claims == nil {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}

func roleValue(v any) string {
	switch r := v.(type) {
	case string:
		return r
	case map[string]any:
		authority, _ := r["authority"].(string)
		return authority
	case []any:
		if len(r) > 0 {
			return roleValue(r[0])
		}
	}
	return ""
}
