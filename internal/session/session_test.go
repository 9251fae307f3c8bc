package session

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wallet = common.HexToAddress("0x1111111111111111111111111111111111111111")

func TestIssuer_RoundTrip(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)

	token, err := iss.Issue(domain.Session{Address: wallet, Human: true})
	require.NoError(t, err)

	s, err := iss.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, wallet, s.Address)
	assert.True(t, s.Human)
}

func TestIssuer_Parse_WrongSecret(t *testing.T) {
	token, err := NewIssuer("secret", time.Hour).Issue(domain.Session{Address: wallet})
	require.NoError(t, err)

	_, err = NewIssuer("other", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_Parse_Expired(t *testing.T) {
	iss := NewIssuer("secret", time.Minute)
	iss.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := iss.Issue(domain.Session{Address: wallet})
	require.NoError(t, err)

	_, err = NewIssuer("secret", time.Minute).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_Parse_RejectsNoneAlg(t *testing.T) {
	claims := &Claims{
		Address:          wallet.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{Issuer: issuer},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewIssuer("secret", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
