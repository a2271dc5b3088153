package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AlibekovAA/secure-notes/internal/common/clock"
	commoncrypto "github.com/AlibekovAA/secure-notes/internal/common/crypto"
	commonerrors "github.com/AlibekovAA/secure-notes/internal/common/errors"
	"github.com/AlibekovAA/secure-notes/internal/common/jwtverify"
	userdomain "github.com/AlibekovAA/secure-notes/internal/user/domain"
)

type Claims struct {
	Username string `json:"usr"`
	jwt.RegisteredClaims
}

type TokenIssuer interface {
	Issue(user userdomain.User) (string, error)
}

// TokenService signs and verifies access tokens with a key fixed for the
// lifetime of the process. Verification never touches the store.
type TokenService struct {
	secret      []byte
	ttl         time.Duration
	idGenerator commoncrypto.IDGenerator
	clock       clock.Clock
}

func NewTokenService(
	secret string,
	ttl time.Duration,
	idGenerator commoncrypto.IDGenerator,
	clock clock.Clock,
) *TokenService {
	return &TokenService{
		secret:      []byte(secret),
		ttl:         ttl,
		idGenerator: idGenerator,
		clock:       clock,
	}
}

func (ts *TokenService) Issue(user userdomain.User) (string, error) {
	jti, err := ts.idGenerator.NewID()
	if err != nil {
		return "", err
	}

	now := ts.clock.Now()
	claims := Claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
			ID:        jti,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
	if err != nil {
		return "", err
	}

	incrementAccessTokensIssued()
	return signed, nil
}

// Verify fails with ErrInvalidToken when the signature, the payload or
// the expiry does not check out. A token stops being valid at the second
// its expiry is reached.
func (ts *TokenService) Verify(tokenString string) (jwtverify.Identity, error) {
	identity, err := ts.parse(tokenString)
	recordTokenValidation(err)
	if err != nil {
		return jwtverify.Identity{}, commonerrors.ErrInvalidToken.WithCause(err)
	}
	return identity, nil
}

func (ts *TokenService) parse(tokenString string) (jwtverify.Identity, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errUnexpectedSigningMethod
			}
			return ts.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(ts.clock.Now),
	)
	if err != nil {
		return jwtverify.Identity{}, err
	}

	if claims.Subject == "" || claims.Username == "" {
		return jwtverify.Identity{}, errMissingIdentityClaims
	}

	return jwtverify.Identity{
		UserID:   claims.Subject,
		Username: claims.Username,
	}, nil
}

func tokenFailureReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "signature"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, errMissingIdentityClaims):
		return "claims"
	default:
		return "other"
	}
}
