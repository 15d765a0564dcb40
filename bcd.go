package dvbsi

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/asticode/go-astikit"
)

// BCD converts a binary coded decimal to its integer value, most significant
// nibble first, e.g. 0x23 yields 23. Broadcast BCD fields occasionally carry
// noise; a nibble above 9 is tolerated and simply carries into the next digit
// instead of failing the whole decode.
func BCD(bcd uint32) (r uint32) {
	for shift := 28; shift >= 0; shift -= 4 {
		r = r*10 + bcd>>uint(shift)&0xf
	}
	return
}

// bcdDurationByte converts a 2-digit BCD byte to a duration unit count
func bcdDurationByte(i byte) time.Duration {
	return time.Duration(i>>4*10 + i&0xf)
}

func bcdByteRepresentation(n uint8) uint8 {
	return (n/10)<<4 | n%10
}

// parseBCDTime parses a DVB-SI time field: 16 bits with the 16 LSBs of the
// Modified Julian Date followed by 6 digits of 4-bit BCD (hh mm ss). An
// undefined time has all bits set to 1.
// Page: 160 | Annex C | Link: https://www.dvb.org/resources/public/standards/a38_dvb-si_specification.pdf
func parseBCDTime(i *astikit.BytesIterator) (t time.Time, err error) {
	var bs []byte
	if bs, err = i.NextBytesNoCopy(2); err != nil || len(bs) < 2 {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}

	// The MJD to y/m/d conversion below is the one given in Annex C
	mjd := float64(binary.BigEndian.Uint16(bs))
	ytf := math.Floor((mjd - 15078.2) / 365.25)
	mtf := math.Floor((mjd - 14956.1 - math.Floor(ytf*365.25)) / 30.6001)
	mt := int(mtf)
	d := int(mjd - 14956 - math.Floor(ytf*365.25) - math.Floor(mtf*30.6001))

	k := int(b2u(mt>>1 == 7))
	y := int(ytf) + k
	m := mt - 1 - k*12

	if bs, err = i.NextBytesNoCopy(3); err != nil || len(bs) < 3 {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}
	t = time.Date(1900+y, time.Month(m), d,
		int(bcdDurationByte(bs[0])),
		int(bcdDurationByte(bs[1])),
		int(bcdDurationByte(bs[2])),
		0, time.UTC)
	return
}

// parseBCDDurationMinutes parses a 16 bit offset coded as 4 digits of 4-bit BCD (hh mm)
func parseBCDDurationMinutes(i *astikit.BytesIterator) (d time.Duration, err error) {
	var bs []byte
	if bs, err = i.NextBytesNoCopy(2); err != nil || len(bs) < 2 {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}
	d = bcdDurationByte(bs[0])*time.Hour + bcdDurationByte(bs[1])*time.Minute
	return
}

func writeBCDTime(w *astikit.BitsWriter, t time.Time) (int, error) {
	year := t.Year() - 1900
	month := t.Month()
	day := t.Day()

	l := 0
	if month <= time.February {
		l = 1
	}

	mjd := 14956 + day + int(float64(year-l)*365.25) + int(float64(int(month)+1+l*12)*30.6001)

	d := t.Sub(t.Truncate(24 * time.Hour))

	b := astikit.NewBitsWriterBatch(w)

	b.Write(uint16(mjd))
	b.Write(bcdByteRepresentation(uint8(d.Hours())))
	b.Write(bcdByteRepresentation(uint8(int(d.Minutes()) % 60)))
	b.Write(bcdByteRepresentation(uint8(int(d.Seconds()) % 60)))

	return 5, b.Err()
}

func writeBCDDurationMinutes(w *astikit.BitsWriter, d time.Duration) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	b.Write(bcdByteRepresentation(uint8(d.Hours())))
	b.Write(bcdByteRepresentation(uint8(int(d.Minutes()) % 60)))

	return 2, b.Err()
}

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
