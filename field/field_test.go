package field_test

import (
	"testing"

	"github.com/AntoineCyr/merkle-sum-proof/field"
	"github.com/stretchr/testify/require"
)

func TestZero(t *testing.T) {
	require.True(t, field.Zero().IsZero())
}

func TestFromDecimalStringRoundTrip(t *testing.T) {
	f, err := field.FromDecimalString("10566265")
	require.NoError(t, err)
	require.Equal(t, "10566265", f.String())
}

func TestFromDecimalStringRejectsNonDigits(t *testing.T) {
	_, err := field.FromDecimalString("-1")
	require.Error(t, err)

	_, err = field.FromDecimalString("12a")
	require.Error(t, err)

	_, err = field.FromDecimalString("")
	require.Error(t, err)
}

func TestFromDecimalStringReducesModP(t *testing.T) {
	f, err := field.FromDecimalString(field.Modulus.String())
	require.NoError(t, err)
	require.True(t, f.IsZero())
}

func TestAddAssign(t *testing.T) {
	a, _ := field.FromDecimalString("2")
	b, _ := field.FromDecimalString("3")
	a.AddAssign(b)
	require.Equal(t, "5", a.String())
}

func TestAddAssignWrapsModulus(t *testing.T) {
	one := field.FromUint128(0, 1)
	mMinusOne, err := field.FromDecimalString(subtractOne(field.Modulus.String()))
	require.NoError(t, err)
	mMinusOne.AddAssign(one)
	require.True(t, mMinusOne.IsZero())
}

func TestPow(t *testing.T) {
	a, _ := field.FromDecimalString("2")
	require.Equal(t, "32", a.Pow(5).String())
}

func TestFromUint128(t *testing.T) {
	f := field.FromUint128(0, 42)
	require.Equal(t, "42", f.String())
}

func TestFromInt32Negative(t *testing.T) {
	neg := field.FromInt32(-1)
	one, _ := field.FromDecimalString("1")
	neg.AddAssign(one)
	require.True(t, neg.IsZero())
}

func TestFromInt32Positive(t *testing.T) {
	f := field.FromInt32(7)
	require.Equal(t, "7", f.String())
}

func TestEqual(t *testing.T) {
	a := field.FromInt32(5)
	b := field.FromInt32(5)
	c := field.FromInt32(6)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

// subtractOne returns the decimal string for n-1 without pulling in
// math/big in the test itself, since the package under test already owns
// that concern.
func subtractOne(n string) string {
	digits := []byte(n)
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] == '0' {
			digits[i] = '9'
			continue
		}
		digits[i]--
		break
	}
	return string(digits)
}
