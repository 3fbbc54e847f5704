package middleware

import (
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt"
)

// JwtTokenService verifies the trust signal presented by callers. Validation
// establishes who is asking and nothing else; it never touches persistence.
type JwtTokenService interface {
	Create(uid string, tokenExpTime int64) (string, error)
	Validate(tokenString string) (*IdentityClaims, error)
	ParseSecretGetter(token *jwt.Token) (interface{}, error)
}

type JwtToken struct {
	Secret []byte
}

func NewJwtToken(secret string) (JwtTokenService, error) {
	return &JwtToken{
		Secret: []byte(secret),
	}, nil
}

// IdentityClaims carry the external identity this service trusts. Uid is the
// owner identity of the caller, minted by the authentication boundary.
type IdentityClaims struct {
	Uid string `json:"uid"`
	jwt.StandardClaims
}

func (tk *JwtToken) Create(uid string, tokenExpTime int64) (string, error) {
	data := IdentityClaims{
		Uid: uid,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: tokenExpTime,
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, data)
	return token.SignedString(tk.Secret)
}

func (tk *JwtToken) Validate(tokenString string) (*IdentityClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &IdentityClaims{}, tk.ParseSecretGetter)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*IdentityClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims.ExpiresAt < time.Now().Unix() {
		return nil, fmt.Errorf("token has expired")
	}

	return claims, nil
}

func (tk *JwtToken) ParseSecretGetter(token *jwt.Token) (interface{}, error) {
	method, ok := token.Method.(*jwt.SigningMethodHMAC)
	if !ok || method.Alg() != "HS256" {
		return nil, fmt.Errorf("bad sign method")
	}
	return tk.Secret, nil
}
