package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"flowrelay.ai/flow-api-gateway/config/environment_variables"
)

const ContextUserClaim = "context_user_claim"

// UserClaim binds a login to a browser session. SessionID scopes the relay
// server selection: one session, one active relay.
type UserClaim struct {
	PublicID  string `json:"uid"`
	SessionID string `json:"sid"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

func CreateJwtSignedString(u UserClaim) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, u)
	return token.SignedString(environment_variables.EnvironmentVariables.JWT_SECRET)
}

func ParseJwtSignedString(raw string) (*UserClaim, error) {
	claim := &UserClaim{}
	_, err := jwt.ParseWithClaims(raw, claim, func(token *jwt.Token) (interface{}, error) {
		return environment_variables.EnvironmentVariables.JWT_SECRET, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claim, nil
}
