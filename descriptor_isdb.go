package dvbsi

import (
	"encoding/binary"
	"fmt"

	"github.com/asticode/go-astikit"
)

// DescriptorISDBPartialReception represents an ISDB partial reception
// descriptor, listing the services of the one-seg partial reception layer
// Chapter: 8.3.26 | ABNT NBR 15603-1 2007
type DescriptorISDBPartialReception struct {
	DescriptorHeader
	ServiceIDs []uint16
}

func newDescriptorISDBPartialReception(i *astikit.BytesIterator, h DescriptorHeader, offsetEnd int) (dd Descriptor, err error) {
	d := &DescriptorISDBPartialReception{
		DescriptorHeader: h,
		ServiceIDs:       make([]uint16, (offsetEnd-i.Offset())/2),
	}
	dd = d

	for idx := range d.ServiceIDs {
		var bs []byte
		if bs, err = i.NextBytesNoCopy(2); err != nil || len(bs) < 2 {
			err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
			return
		}
		d.ServiceIDs[idx] = binary.BigEndian.Uint16(bs)
	}
	return
}

func (d *DescriptorISDBPartialReception) length() uint8 {
	return uint8(2 * len(d.ServiceIDs))
}

func (d *DescriptorISDBPartialReception) print(l astikit.CompleteLogger) {
	for _, id := range d.ServiceIDs {
		l.Debugf("dvbsi:   service id: %d", id)
	}
}

func (d *DescriptorISDBPartialReception) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	for _, id := range d.ServiceIDs {
		b.Write(id)
	}

	return int(length) + 2, b.Err()
}

// DescriptorISDBDataComponent represents an ISDB data component descriptor
// Chapter: 8.3.10 | ABNT NBR 15603-1 2007
type DescriptorISDBDataComponent struct {
	DescriptorHeader
	AdditionalInfo  []byte
	DataComponentID uint16
}

func newDescriptorISDBDataComponent(i *astikit.BytesIterator, h DescriptorHeader, offsetEnd int) (dd Descriptor, err error) {
	var bs []byte
	if bs, err = i.NextBytesNoCopy(2); err != nil || len(bs) < 2 {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}

	d := &DescriptorISDBDataComponent{
		DescriptorHeader: h,
		DataComponentID:  binary.BigEndian.Uint16(bs),
	}
	dd = d

	if i.Offset() < offsetEnd {
		if d.AdditionalInfo, err = i.NextBytes(offsetEnd - i.Offset()); err != nil {
			err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
			return
		}
	}
	return
}

func (d *DescriptorISDBDataComponent) length() uint8 {
	return uint8(2 + len(d.AdditionalInfo))
}

func (d *DescriptorISDBDataComponent) print(l astikit.CompleteLogger) {
	l.Debugf("dvbsi:   data component id: %04x", d.DataComponentID)
}

func (d *DescriptorISDBDataComponent) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	b.Write(d.DataComponentID)
	b.Write(d.AdditionalInfo)

	return int(length) + 2, b.Err()
}
