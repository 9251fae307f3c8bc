package domain

import (
	"math/big"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteStay_ThreeNights(t *testing.T) {
	checkIn := time.Date(2026, 5, 1, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(3 * 24 * time.Hour)

	q, err := QuoteStay(big.NewInt(100), checkIn, checkOut)

	require.NoError(t, err)
	assert.Equal(t, int64(3), q.Nights)
	assert.Equal(t, "300", q.TotalAmount.String())
	assert.Equal(t, "9", q.PlatformFee.String())
	assert.Equal(t, "291", q.HostAmount.String())
}

func TestQuoteStay_CheckOutNotAfterCheckIn(t *testing.T) {
	checkIn := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := QuoteStay(big.NewInt(100), checkIn, checkIn)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = QuoteStay(big.NewInt(100), checkIn, checkIn.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestQuoteStay_NonPositivePrice(t *testing.T) {
	checkIn := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := QuoteStay(big.NewInt(0), checkIn, checkIn.Add(24*time.Hour))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = QuoteStay(nil, checkIn, checkIn.Add(24*time.Hour))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNights_PartialNightRoundsUp(t *testing.T) {
	checkIn := time.Date(2026, 5, 1, 15, 0, 0, 0, time.UTC)

	n, err := Nights(checkIn, checkIn.Add(25*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = Nights(checkIn, checkIn.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSplitFee_Rounding(t *testing.T) {
	cases := []struct {
		total, fee string
	}{
		{"0", "0"},
		{"1", "0"},
		{"17", "1"}, // 0.51
		{"50", "2"}, // 1.5 rounds half away from zero
		{"49", "1"}, // 1.47
		{"100", "3"},
		{"300000000000000000000", "9000000000000000000"},
	}
	for _, c := range cases {
		total, _ := new(big.Int).SetString(c.total, 10)
		fee, host := SplitFee(total)
		assert.Equal(t, c.fee, fee.String(), "total=%s", c.total)
		assert.Equal(t, 0, new(big.Int).Add(fee, host).Cmp(total), "total=%s", c.total)
	}
}

func TestSplitFee_SumInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		total := new(big.Int).Rand(r, new(big.Int).Lsh(big.NewInt(1), 96))

		fee, host := SplitFee(total)

		require.Equal(t, 0, new(big.Int).Add(fee, host).Cmp(total))
		// |fee*100 - total*3| <= 50, i.e. fee is total*0.03 rounded to an integer
		diff := new(big.Int).Sub(new(big.Int).Mul(fee, big.NewInt(100)), new(big.Int).Mul(total, big.NewInt(3)))
		require.LessOrEqual(t, diff.CmpAbs(big.NewInt(50)), 0, "total=%s fee=%s", total, fee)
	}
}

func TestParseTokenAmount(t *testing.T) {
	v, err := ParseTokenAmount("0.1")
	require.NoError(t, err)
	assert.Equal(t, 0, v.Cmp(StakeAmount))

	v, err = ParseTokenAmount("100")
	require.NoError(t, err)
	assert.Equal(t, "100000000000000000000", v.String())
	assert.Equal(t, "100", FormatTokenAmount(v))

	_, err = ParseTokenAmount("abc")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseTokenAmount("-1")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseTokenAmount("0.0000000000000000001")
	assert.ErrorIs(t, err, ErrValidation)
}
