package dvbsi

import (
	"fmt"

	"github.com/asticode/go-astikit"
)

// Cue stream types
// Chapter: 8.2 | SCTE 35 2004
const (
	CueStreamTypeSpliceInsertNullSchedule = 0x00
	CueStreamTypeAllCommands              = 0x01
	CueStreamTypeSegmentation             = 0x02
	CueStreamTypeTieredSplicing           = 0x03
	CueStreamTypeTieredSegmentation       = 0x04
)

// DescriptorCUEIdentifier represents a CUE identifier descriptor, labeling a
// PMT elementary stream as carrying SCTE 35 splice information
// Chapter: 8.2 | SCTE 35 2004
type DescriptorCUEIdentifier struct {
	DescriptorHeader
	CueStreamType uint8
}

func newDescriptorCUEIdentifier(i *astikit.BytesIterator, h DescriptorHeader, _ int) (dd Descriptor, err error) {
	var b byte
	if b, err = i.NextByte(); err != nil {
		err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
		return
	}
	dd = &DescriptorCUEIdentifier{
		DescriptorHeader: h,
		CueStreamType:    b,
	}
	return
}

func (*DescriptorCUEIdentifier) length() uint8 {
	return 1
}

func (d *DescriptorCUEIdentifier) print(l astikit.CompleteLogger) {
	l.Debugf("dvbsi:   cue stream type: %d", d.CueStreamType)
}

func (d *DescriptorCUEIdentifier) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	b.Write(d.CueStreamType)

	return int(length) + 2, b.Err()
}
