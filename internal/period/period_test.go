package period

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Jan", MonthLabel(1))
	assert.Equal(t, "Jun", MonthLabel(6))
	assert.Equal(t, "Dec", MonthLabel(12))
	assert.Equal(t, "13", MonthLabel(13))
	assert.Equal(t, "0", MonthLabel(0))
}
