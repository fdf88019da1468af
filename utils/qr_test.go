package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingQR(t *testing.T) {
	img, err := BookingQR("BK-2024-0001", 0)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, []byte("\x89PNG")))

	_, err = BookingQR("", 128)
	assert.ErrorIs(t, err, ErrEmptyBookingRef)
}
