package viewmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/govilvipul/HealthcareCM/internal/viewmodel"
)

func TestFormatTimestamp_EpochZero(t *testing.T) {
	assert.Equal(t, "1970-01-01 00:00:00", viewmodel.FormatTimestamp(int64(0)))
}

func TestFormatTimestamp_NumericEpoch(t *testing.T) {
	// 2024-01-15T10:30:00Z
	assert.Equal(t, "2024-01-15 10:30:00", viewmodel.FormatTimestamp(int64(1705314600)))
	assert.Equal(t, "2024-01-15 10:30:00", viewmodel.FormatTimestamp(float64(1705314600)))
	assert.Equal(t, "2024-01-15 10:30:00", viewmodel.FormatTimestamp(1705314600))
}

func TestFormatTimestamp_ISOWithZ(t *testing.T) {
	assert.Equal(t, "2024-01-15 10:30:00", viewmodel.FormatTimestamp("2024-01-15T10:30:00Z"))
}

func TestFormatTimestamp_ISOWithoutZone(t *testing.T) {
	assert.Equal(t, "2024-01-15 10:30:00", viewmodel.FormatTimestamp("2024-01-15T10:30:00"))
}

func TestFormatTimestamp_DateOnly(t *testing.T) {
	assert.Equal(t, "2024-01-15 00:00:00", viewmodel.FormatTimestamp("2024-01-15"))
}

func TestFormatTimestamp_MalformedStringReturnedUnchanged(t *testing.T) {
	assert.Equal(t, "not-a-date", viewmodel.FormatTimestamp("not-a-date"))
}

func TestFormatTimestamp_NilIsEmpty(t *testing.T) {
	assert.Equal(t, "", viewmodel.FormatTimestamp(nil))
}

func TestFormatDate_KeepsDatePortion(t *testing.T) {
	assert.Equal(t, "2024-01-15", viewmodel.FormatDate("2024-01-15T10:30:00Z"))
	assert.Equal(t, "1970-01-01", viewmodel.FormatDate(int64(0)))
	assert.Equal(t, "not-a-date", viewmodel.FormatDate("not-a-date"))
}
