package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty("  x  "))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("0042"))
	assert.True(t, IsNumeric("2026"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("42a"))
	assert.False(t, IsNumeric("-42"))
	assert.False(t, IsNumeric("4 2"))
}

func TestIsValidDate(t *testing.T) {
	parsed, ok := IsValidDate("2026-09-01")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), parsed)

	_, ok = IsValidDate("01-09-2026")
	assert.False(t, ok)

	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidEmployeeSerial(t *testing.T) {
	assert.True(t, IsValidEmployeeSerial("EMP-0042"))
	assert.True(t, IsValidEmployeeSerial("0042"))
	assert.True(t, IsValidEmployeeSerial("1234567890"))
	assert.False(t, IsValidEmployeeSerial("EMP-"))
	assert.False(t, IsValidEmployeeSerial("EMP-42"))
	assert.False(t, IsValidEmployeeSerial("abc-0042"))
	assert.False(t, IsValidEmployeeSerial(""))
}

func TestIsInSlice(t *testing.T) {
	types := []string{"CASUAL", "SICK", "PAID", "UNPAID"}
	assert.True(t, IsInSlice("SICK", types))
	assert.False(t, IsInSlice("VACATION", types))
	assert.False(t, IsInSlice("sick", types))
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "Start date must be in YYYY-MM-DD format"},
		{Field: "leave_type", Message: "Leave type must be one of CASUAL, SICK, PAID, UNPAID"},
	}

	assert.Contains(t, errs.Error(), "start_date")
	assert.Contains(t, errs.Error(), "leave_type")

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "Start date must be in YYYY-MM-DD format", m["start_date"])
}
