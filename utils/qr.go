package utils

import (
	"bytes"
	"errors"
	"image/png"

	"github.com/skip2/go-qrcode"
)

var ErrEmptyBookingRef = errors.New("empty booking reference")

// BookingQR renders a booking reference as PNG bytes.
func BookingQR(ref string, size int) ([]byte, error) {
	if ref == "" {
		return nil, ErrEmptyBookingRef
	}
	if size <= 0 {
		size = 256
	}
	qr, err := qrcode.New(ref, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, qr.Image(size)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
