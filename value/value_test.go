package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloatStringIntegerValued(t *testing.T) {
	require.Equal(t, "3", Float{Value: 3}.String())
	require.Equal(t, "-2", Float{Value: -2}.String())
	require.Equal(t, "3.5", Float{Value: 3.5}.String())
}

func TestFloatEqualsNaN(t *testing.T) {
	nan := Float{Value: math.NaN()}
	require.False(t, nan.Equals(nan))
}

func TestFloatEqualsReflexive(t *testing.T) {
	f := Float{Value: 42}
	require.True(t, f.Equals(f))
}

func TestNilSingletonEquality(t *testing.T) {
	require.True(t, NilValue.Equals(Nil{}))
}

func TestIsTruthy(t *testing.T) {
	require.False(t, IsTruthy(NilValue))
	require.False(t, IsTruthy(Boolean{Value: false}))
	require.True(t, IsTruthy(Boolean{Value: true}))
	require.True(t, IsTruthy(Float{Value: 0}))
	require.True(t, IsTruthy(String{Value: ""}))
}

func TestConcatCoercesNumber(t *testing.T) {
	got := Concat(String{Value: "Hi "}, Float{Value: 42})
	require.Equal(t, "Hi 42", got.String())
}

func TestDivisionByZeroIsInfNotError(t *testing.T) {
	var zero float64
	require.Equal(t, "inf", Float{Value: 1.0 / zero}.String())
	require.Equal(t, "-inf", Float{Value: -1.0 / zero}.String())
	require.Equal(t, "NaN", Float{Value: zero / zero}.String())
}
