package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
)

const issuer = "nyayasetu"

// Claims wraps the flat identity record in a signed token.
type Claims struct {
	User json.RawMessage `json:"user"`
	jwt.RegisteredClaims
}

// JWT signs the identity record with HS256 so a tampered slot is detected
// on restore. Tokens carry no expiry; the record lives until logout.
type JWT struct {
	secret []byte
	now    func() time.Time
}

func NewJWT(secret string) *JWT {
	return &JWT{secret: []byte(secret), now: time.Now}
}

func (c *JWT) Encode(id domain.Identity) ([]byte, error) {
	user, err := json.Marshal(id)
	if err != nil {
		return nil, fmt.Errorf("encode identity: %w", err)
	}

	claims := Claims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  id.ID,
			IssuedAt: jwt.NewNumericDate(c.now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}
	return []byte(signed), nil
}

func (c *JWT) Decode(payload []byte) (domain.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(string(payload), claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return domain.Identity{}, fmt.Errorf("%w: invalid session token: %w", domain.ErrMalformedRecord, errOrInvalid(err))
	}

	var id domain.Identity
	if err := json.Unmarshal(claims.User, &id); err != nil {
		if errors.Is(err, domain.ErrMalformedRecord) {
			return domain.Identity{}, err
		}
		return domain.Identity{}, fmt.Errorf("%w: %w", domain.ErrMalformedRecord, err)
	}
	return id, nil
}

var errInvalidToken = errors.New("token not valid")

func errOrInvalid(err error) error {
	if err != nil {
		return err
	}
	return errInvalidToken
}
