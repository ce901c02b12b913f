package edudata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFiltersEncode(t *testing.T) {
	filters := Filters{
		"fips":        Int(11),
		"charter":     Int(1),
		"latitude":    Float(38.9),
		"state_leaid": String("GA-601"),
	}
	// keys are ordered lexicographically so the query is reproducible
	require.Equal(
		t,
		"charter=1&fips=11&latitude=38.9&state_leaid=GA-601",
		filters.Encode(),
	)
}

func TestFiltersEncodeEmpty(t *testing.T) {
	require.Equal(t, "", Filters{}.Encode())
	require.Equal(t, "", Filters(nil).Encode())
}

func TestFilterValueFormatting(t *testing.T) {
	require.Equal(t, "-3", Int(-3).String())
	require.Equal(t, "0.25", Float(0.25).String())
	require.Equal(t, "3", Float(3).String())
	require.Equal(t, "99", String("99").String())
}
