package dvbsi

import (
	"encoding/binary"
	"fmt"

	"github.com/asticode/go-astikit"
)

// DescriptorATSCServiceLocation represents an ATSC service location descriptor
// Chapter: 6.9.5 | Link: https://www.atsc.org/wp-content/uploads/2015/03/Program-System-Information-Protocol-for-Terrestrial-Broadcast-and-Cable.pdf
type DescriptorATSCServiceLocation struct {
	DescriptorHeader
	Elements []DescriptorATSCServiceLocationElement
	PCRPID   uint16
}

// DescriptorATSCServiceLocationElement represents one elementary stream entry
type DescriptorATSCServiceLocationElement struct {
	ISO639LanguageCode [3]byte
	ElementaryPID      uint16
	StreamType         uint8
}

func newDescriptorATSCServiceLocation(i *astikit.BytesIterator, h DescriptorHeader, _ int) (dd Descriptor, err error) {
	var bs []byte
	if bs, err = i.NextBytesNoCopy(3); err != nil || len(bs) < 3 {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}

	d := &DescriptorATSCServiceLocation{
		DescriptorHeader: h,
		PCRPID:           binary.BigEndian.Uint16(bs) & 0x1fff,
		Elements:         make([]DescriptorATSCServiceLocationElement, bs[2]),
	}
	dd = d

	for idx := range d.Elements {
		if bs, err = i.NextBytesNoCopy(6); err != nil || len(bs) < 6 {
			err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
			return
		}
		d.Elements[idx].StreamType = bs[0]
		d.Elements[idx].ElementaryPID = binary.BigEndian.Uint16(bs[1:]) & 0x1fff
		copy(d.Elements[idx].ISO639LanguageCode[:], bs[3:])
	}
	return
}

func (d *DescriptorATSCServiceLocation) length() uint8 {
	return uint8(3 + 6*len(d.Elements))
}

func (d *DescriptorATSCServiceLocation) print(l astikit.CompleteLogger) {
	l.Debugf("dvbsi:   pcr pid: %d", d.PCRPID)
	for _, e := range d.Elements {
		l.Debugf("dvbsi:   stream type: %d | pid: %d | language: %s", e.StreamType, e.ElementaryPID, e.ISO639LanguageCode[:])
	}
}

func (d *DescriptorATSCServiceLocation) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	b.WriteN(uint8(0xff), 3)
	b.WriteN(d.PCRPID, 13)
	b.Write(uint8(len(d.Elements)))

	for _, e := range d.Elements {
		b.Write(e.StreamType)
		b.WriteN(uint8(0xff), 3)
		b.WriteN(e.ElementaryPID, 13)
		b.Write(e.ISO639LanguageCode[:])
	}

	return int(length) + 2, b.Err()
}

// DescriptorATSCExtendedChannelName represents an ATSC extended channel name
// descriptor. The name is a multiple string structure which is kept raw, its
// decompression is up to the caller.
// Chapter: 6.9.4 | Link: https://www.atsc.org/wp-content/uploads/2015/03/Program-System-Information-Protocol-for-Terrestrial-Broadcast-and-Cable.pdf
type DescriptorATSCExtendedChannelName struct {
	DescriptorHeader
	LongChannelName []byte
}

func newDescriptorATSCExtendedChannelName(i *astikit.BytesIterator, h DescriptorHeader, offsetEnd int) (dd Descriptor, err error) {
	d := &DescriptorATSCExtendedChannelName{
		DescriptorHeader: h,
	}
	dd = d

	if i.Offset() < offsetEnd {
		if d.LongChannelName, err = i.NextBytes(offsetEnd - i.Offset()); err != nil {
			err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
			return
		}
	}
	return
}

func (d *DescriptorATSCExtendedChannelName) length() uint8 {
	return uint8(len(d.LongChannelName))
}

func (d *DescriptorATSCExtendedChannelName) print(l astikit.CompleteLogger) {
	l.Debugf("dvbsi:   long channel name: %x", d.LongChannelName)
}

func (d *DescriptorATSCExtendedChannelName) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	b.Write(d.LongChannelName)

	return int(length) + 2, b.Err()
}

// DescriptorATSCCaptionService represents an ATSC caption service descriptor
// Chapter: 6.9.2 | Link: https://www.atsc.org/wp-content/uploads/2015/03/Program-System-Information-Protocol-for-Terrestrial-Broadcast-and-Cable.pdf
type DescriptorATSCCaptionService struct {
	DescriptorHeader
	Services []DescriptorATSCCaptionServiceItem
}

// DescriptorATSCCaptionServiceItem represents one caption service
type DescriptorATSCCaptionServiceItem struct {
	Language             [3]byte
	CaptionServiceNumber uint8
	IsDigital            bool
	EasyReader           bool
	WideAspectRatio      bool
}

func newDescriptorATSCCaptionService(i *astikit.BytesIterator, h DescriptorHeader, _ int) (dd Descriptor, err error) {
	var b byte
	if b, err = i.NextByte(); err != nil {
		err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
		return
	}

	d := &DescriptorATSCCaptionService{
		DescriptorHeader: h,
		Services:         make([]DescriptorATSCCaptionServiceItem, b&0x1f),
	}
	dd = d

	for idx := range d.Services {
		var bs []byte
		if bs, err = i.NextBytesNoCopy(6); err != nil || len(bs) < 6 {
			err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
			return
		}
		copy(d.Services[idx].Language[:], bs)
		d.Services[idx].IsDigital = bs[3]&0x80 > 0
		d.Services[idx].CaptionServiceNumber = bs[3] & 0x3f
		d.Services[idx].EasyReader = bs[4]&0x80 > 0
		d.Services[idx].WideAspectRatio = bs[4]&0x40 > 0
	}
	return
}

func (d *DescriptorATSCCaptionService) length() uint8 {
	return uint8(1 + 6*len(d.Services))
}

func (d *DescriptorATSCCaptionService) print(l astikit.CompleteLogger) {
	for _, s := range d.Services {
		l.Debugf("dvbsi:   language: %s | digital: %v | service number: %d", s.Language[:], s.IsDigital, s.CaptionServiceNumber)
	}
}

func (d *DescriptorATSCCaptionService) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	b.WriteN(uint8(0xff), 3)
	b.WriteN(uint8(len(d.Services)), 5)

	for _, s := range d.Services {
		b.Write(s.Language[:])
		b.Write(s.IsDigital)
		b.WriteN(uint8(0xff), 1)
		b.WriteN(s.CaptionServiceNumber, 6)
		b.Write(s.EasyReader)
		b.Write(s.WideAspectRatio)
		b.WriteN(uint16(0xffff), 14)
	}

	return int(length) + 2, b.Err()
}
