package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidAccessKey   = errors.New("access key is invalid")
	ErrAccessTokenInvalid = errors.New("invalid access token")
)

// Device describes the client that requested a token, parsed from its
// User-Agent. Logged for audit, never stored.
type Device struct {
	Browser   string
	OS        string
	IPAddress string
	Model     string
}

// Authorizer exchanges the configured access key for short-lived JWTs.
// There are no user accounts: a single key protects the whole API surface.
type Authorizer struct {
	AccessKeyHash string
	Secret        string
	TokenTTL      time.Duration
}

// Authorize compares the presented key against the configured bcrypt hash.
func (a *Authorizer) Authorize(accessKey string) error {
	hashBytes, err := hex.DecodeString(a.AccessKeyHash)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword(hashBytes, []byte(accessKey)); err != nil {
		return ErrInvalidAccessKey
	}
	return nil
}

func (a *Authorizer) GenerateAccessToken() (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"jti": a.generateIdentifier(),
		"exp": now.Add(a.TokenTTL).Unix(),
		"iat": now.Unix(),
	})
	return token.SignedString([]byte(a.Secret))
}

type AccessTokenData struct {
	TokenID string
}

func (a *Authorizer) ValidateAccessToken(accessToken string) (*AccessTokenData, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(a.Secret), nil
	})
	if err != nil {
		return nil, ErrAccessTokenInvalid
	}

	tokenID, ok := claims["jti"].(string)
	if !ok {
		return nil, ErrAccessTokenInvalid
	}

	return &AccessTokenData{TokenID: tokenID}, nil
}

func (a *Authorizer) generateIdentifier() string {
	var bytes [16]byte
	if n, err := rand.Read(bytes[:]); n != len(bytes) || err != nil {
		panic("failed to generate identifier")
	}

	return hex.EncodeToString(bytes[:])
}

// HashAccessKey produces the hex-encoded bcrypt hash expected in config.
func HashAccessKey(accessKey string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(accessKey), cost)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(hash), nil
}
