package entity

import "github.com/golang-jwt/jwt/v5"

// Claims are the token claims this service consumes from the auth subsystem:
// the subject user and the permission snapshot minted at login time.
type Claims struct {
	UserID      string   `json:"user_id"`
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// Actor converts the claims into the per-request identity snapshot.
func (c *Claims) Actor() Actor {
	return Actor{UserID: c.UserID, Permissions: c.Permissions}
}
