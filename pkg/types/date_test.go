package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katzedaze/portfolio/pkg/types"
)

func strPtr(s string) *string { return &s }

func TestParseDate_NilAndEmptyYieldNil(t *testing.T) {
	got, err := types.ParseDate(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = types.ParseDate(strPtr("  "))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseDate_ISODate(t *testing.T) {
	got, err := types.ParseDate(strPtr("2024-06-30"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), *got)
}

func TestParseDate_TimestampTruncatesToDate(t *testing.T) {
	got, err := types.ParseDate(strPtr("2024-06-30T15:04:05Z"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), *got)
}

func TestParseDate_Malformed(t *testing.T) {
	_, err := types.ParseDate(strPtr("30/06/2024"))
	assert.Error(t, err)
}

func TestFormatDate_RoundTrip(t *testing.T) {
	in := strPtr("2024-06-30")
	parsed, err := types.ParseDate(in)
	require.NoError(t, err)
	out := types.FormatDate(parsed)
	require.NotNil(t, out)
	assert.Equal(t, *in, *out)

	assert.Nil(t, types.FormatDate(nil))
}
