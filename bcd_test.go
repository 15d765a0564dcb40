package dvbsi

import (
	"bytes"
	"testing"
	"time"

	"github.com/asticode/go-astikit"
	"github.com/stretchr/testify/assert"
)

func TestBCD(t *testing.T) {
	assert.Equal(t, uint32(23), BCD(0x23))
	assert.Equal(t, uint32(99), BCD(0x99))
	assert.Equal(t, uint32(12345678), BCD(0x12345678))
	assert.Equal(t, uint32(0), BCD(0x0))
	// An out-of-range nibble carries into the next digit instead of failing
	assert.Equal(t, uint32(103), BCD(0xa3))
}

func TestBCDDurationByte(t *testing.T) {
	assert.Equal(t, time.Duration(0), bcdDurationByte(0x00))
	assert.Equal(t, time.Duration(45), bcdDurationByte(0x45))
	assert.Equal(t, uint8(0x45), bcdByteRepresentation(45))
}

func TestParseBCDTime(t *testing.T) {
	// Annex C example: MJD 0xc079 is 1993-10-13
	i := astikit.NewBytesIterator([]byte{0xc0, 0x79, 0x12, 0x45, 0x00})
	ti, err := parseBCDTime(i)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(1993, time.October, 13, 12, 45, 0, 0, time.UTC), ti)
}

func TestWriteBCDTime(t *testing.T) {
	buf := &bytes.Buffer{}
	w := astikit.NewBitsWriter(astikit.BitsWriterOptions{Writer: buf})
	n, err := writeBCDTime(w, time.Date(1993, time.October, 13, 12, 45, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte{0xc0, 0x79, 0x12, 0x45, 0x00}, buf.Bytes())
}

func TestParseBCDDurationMinutes(t *testing.T) {
	i := astikit.NewBytesIterator([]byte{0x02, 0x30})
	d, err := parseBCDDurationMinutes(i)
	assert.NoError(t, err)
	assert.Equal(t, 2*time.Hour+30*time.Minute, d)
}
