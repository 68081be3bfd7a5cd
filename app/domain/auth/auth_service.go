package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"flowrelay.ai/flow-api-gateway/app/domain/user"
	"flowrelay.ai/flow-api-gateway/app/interfaces/http/responses"
)

const sessionTokenTTL = 24 * time.Hour

type AuthService struct {
	userService *user.UserService
}

func NewAuthService(userService *user.UserService) *AuthService {
	return &AuthService{
		userService: userService,
	}
}

// Login verifies credentials and issues a session token carrying a fresh
// session ID.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *user.User, error) {
	u, err := s.userService.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, fmt.Errorf("invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid username or password")
	}

	claim := UserClaim{
		PublicID:  u.PublicID,
		SessionID: uuid.New().String(),
		Role:      u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.PublicID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := CreateJwtSignedString(claim)
	if err != nil {
		return "", nil, err
	}
	return signed, u, nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (s *AuthService) JWTAuthMiddleware() gin.HandlerFunc {
	return func(reqCtx *gin.Context) {
		header := reqCtx.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code: "6f2a91b4-8c3d-4e57-9a10-fb2d64c08e73",
			})
			return
		}
		claim, err := ParseJwtSignedString(raw)
		if err != nil {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code:  "a1c5e830-7d29-4b6f-8e44-90cd12f7b3a5",
				Error: err.Error(),
			})
			return
		}
		reqCtx.Set(ContextUserClaim, claim)
		reqCtx.Next()
	}
}

type UserContextKey string

const UserContextKeyEntity UserContextKey = "UserContextKeyEntity"

// RegisteredUserMiddleware loads the profile snapshot for the claim and
// stashes it on the request context.
func (s *AuthService) RegisteredUserMiddleware() gin.HandlerFunc {
	return func(reqCtx *gin.Context) {
		ctx := reqCtx.Request.Context()
		claim, ok := GetUserClaimFromContext(reqCtx)
		if !ok {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code: "3e84b7f0-52c6-4d1a-b9e8-07a3c59f2d61",
			})
			return
		}
		u, err := s.userService.FindByPublicIDCached(ctx, claim.PublicID)
		if err != nil {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code:  "9b07d2c4-e1f8-4a36-8c55-62d90ab4e817",
				Error: err.Error(),
			})
			return
		}
		reqCtx.Set(string(UserContextKeyEntity), u)
		reqCtx.Next()
	}
}

func (s *AuthService) AdminUserMiddleware() gin.HandlerFunc {
	return func(reqCtx *gin.Context) {
		claim, ok := GetUserClaimFromContext(reqCtx)
		if !ok || claim.Role != user.RoleAdmin {
			reqCtx.AbortWithStatusJSON(http.StatusForbidden, responses.ErrorResponse{
				Code: "c7d30a92-65f1-4b8e-a2d4-1f09e83c5b76",
			})
			return
		}
		reqCtx.Next()
	}
}

func GetUserClaimFromContext(reqCtx *gin.Context) (*UserClaim, bool) {
	value, ok := reqCtx.Get(ContextUserClaim)
	if !ok {
		return nil, false
	}
	claim, ok := value.(*UserClaim)
	return claim, ok
}

func GetUserFromContext(reqCtx *gin.Context) (*user.User, bool) {
	value, ok := reqCtx.Get(string(UserContextKeyEntity))
	if !ok {
		return nil, false
	}
	u, ok := value.(*user.User)
	return u, ok
}
