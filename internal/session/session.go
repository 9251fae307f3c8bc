package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/StayEscrow/internal/domain"
)

const issuer = "stay-escrow"

var ErrInvalidToken = errors.New("invalid session token")

type Claims struct {
	Address string `json:"addr"`
	Human   bool   `json:"human,omitempty"`
	jwt.RegisteredClaims
}

// Issuer signs and parses HS256 session tokens bound to a wallet address.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (i *Issuer) TTL() time.Duration { return i.ttl }

func (i *Issuer) Issue(s domain.Session) (string, error) {
	now := i.now()
	claims := &Claims{
		Address: s.Address.Hex(),
		Human:   s.Human,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   s.Address.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return token, nil
}

func (i *Issuer) Parse(token string) (domain.Session, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !parsed.Valid {
		return domain.Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !common.IsHexAddress(claims.Address) {
		return domain.Session{}, fmt.Errorf("%w: bad address claim", ErrInvalidToken)
	}

	return domain.Session{
		Address: common.HexToAddress(claims.Address),
		Human:   claims.Human,
	}, nil
}
