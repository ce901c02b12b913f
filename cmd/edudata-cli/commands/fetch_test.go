package commands

import (
	"os"
	"path/filepath"
	"testing"

	"edudata-client/lib/edudata"

	"github.com/stretchr/testify/require"
)

func TestParseFilters(t *testing.T) {
	filters, err := parseFilters([]string{
		"fips=11",
		"suspensions_instances=2.5",
		"state_leaid=GA-601",
	})
	require.NoError(t, err)
	require.Equal(t, edudata.Filters{
		"fips":                  edudata.Int(11),
		"suspensions_instances": edudata.Float(2.5),
		"state_leaid":           edudata.String("GA-601"),
	}, filters)
}

func TestParseFiltersEmpty(t *testing.T) {
	filters, err := parseFilters(nil)
	require.NoError(t, err)
	require.Nil(t, filters)
}

func TestParseFiltersMalformed(t *testing.T) {
	_, err := parseFilters([]string{"fips"})
	require.Error(t, err)

	_, err = parseFilters([]string{"=1"})
	require.Error(t, err)
}

func TestEmitWritesTimestampedFile(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(cwd)

	emit(map[string]any{"count": float64(1)}, true)

	entries, err := os.ReadDir("json")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	name := entries[0].Name()
	require.Regexp(t, `^response_\d{8}_\d{6}\.json$`, name)

	contents, err := os.ReadFile(filepath.Join("json", name))
	require.NoError(t, err)
	require.Equal(t, "{\n    \"count\": 1\n}", string(contents))
}
