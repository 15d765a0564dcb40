package dvbsi

import (
	"encoding/binary"
	"fmt"

	"github.com/asticode/go-astikit"
)

// Audio types
// Page: 683 | https://books.google.fr/books?id=6dgWB3-rChYC&printsec=frontcover&hl=fr
const (
	AudioTypeCleanEffects             = 0x1
	AudioTypeHearingImpaired          = 0x2
	AudioTypeVisualImpairedCommentary = 0x3
)

// Data stream alignments
// Page: 85 | Chapter: 2.6.11 | Link: http://ecee.colorado.edu/~ecen5653/ecen5653/papers/iso13818-1.pdf
const (
	DataStreamAligmentAudioSyncWord          = 0x1
	DataStreamAligmentVideoSliceOrAccessUnit = 0x1
	DataStreamAligmentVideoAccessUnit        = 0x2
	DataStreamAligmentVideoGOPOrSEQ          = 0x3
	DataStreamAligmentVideoSEQ               = 0x4
)

// DescriptorRegistration represents a registration descriptor
// Page: 84 | http://ecee.colorado.edu/~ecen5653/ecen5653/papers/iso13818-1.pdf
type DescriptorRegistration struct {
	DescriptorHeader
	AdditionalIdentificationInfo []byte
	FormatIdentifier             uint32
}

func newDescriptorRegistration(i *astikit.BytesIterator, h DescriptorHeader, offsetEnd int) (dd Descriptor, err error) {
	var bs []byte
	if bs, err = i.NextBytesNoCopy(4); err != nil || len(bs) < 4 {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}

	d := &DescriptorRegistration{
		DescriptorHeader: h,
		FormatIdentifier: binary.BigEndian.Uint32(bs),
	}
	dd = d

	if i.Offset() < offsetEnd {
		if d.AdditionalIdentificationInfo, err = i.NextBytes(offsetEnd - i.Offset()); err != nil {
			err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
			return
		}
	}
	return
}

func (d *DescriptorRegistration) length() uint8 {
	return uint8(4 + len(d.AdditionalIdentificationInfo))
}

func (d *DescriptorRegistration) print(l astikit.CompleteLogger) {
	l.Debugf("dvbsi:   format identifier: %08x", d.FormatIdentifier)
}

func (d *DescriptorRegistration) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	b.Write(d.FormatIdentifier)
	b.Write(d.AdditionalIdentificationInfo)

	return int(length) + 2, b.Err()
}

// DescriptorDataStreamAlignment represents a data stream alignment descriptor
type DescriptorDataStreamAlignment struct {
	DescriptorHeader
	Type uint8
}

func newDescriptorDataStreamAlignment(i *astikit.BytesIterator, h DescriptorHeader, _ int) (dd Descriptor, err error) {
	var b byte
	if b, err = i.NextByte(); err != nil {
		err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
		return
	}
	dd = &DescriptorDataStreamAlignment{
		DescriptorHeader: h,
		Type:             b,
	}
	return
}

func (*DescriptorDataStreamAlignment) length() uint8 {
	return 1
}

func (d *DescriptorDataStreamAlignment) print(l astikit.CompleteLogger) {
	l.Debugf("dvbsi:   alignment type: %d", d.Type)
}

func (d *DescriptorDataStreamAlignment) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	b.Write(d.Type)

	return int(length) + 2, b.Err()
}

// DescriptorISO639LanguageAndAudioType represents an ISO639 language descriptor
// Page: 86 | Chapter: 2.6.18 | Link: http://ecee.colorado.edu/~ecen5653/ecen5653/papers/iso13818-1.pdf
type DescriptorISO639LanguageAndAudioType struct {
	DescriptorHeader
	Language [3]byte
	Type     uint8
}

// In some actual streams the length is 3 and the language is described in only 2 bytes
func newDescriptorISO639LanguageAndAudioType(i *astikit.BytesIterator, h DescriptorHeader, offsetEnd int) (dd Descriptor, err error) {
	var bs []byte
	if bs, err = i.NextBytesNoCopy(offsetEnd - i.Offset()); err != nil || len(bs) < 1 {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}

	d := &DescriptorISO639LanguageAndAudioType{
		DescriptorHeader: h,
		Type:             bs[len(bs)-1],
	}
	copy(d.Language[:], bs)
	dd = d
	return
}

func (*DescriptorISO639LanguageAndAudioType) length() uint8 {
	return 3 + 1 // language code + type
}

func (d *DescriptorISO639LanguageAndAudioType) print(l astikit.CompleteLogger) {
	l.Debugf("dvbsi:   language: %s | audio type: %d", d.Language[:], d.Type)
}

func (d *DescriptorISO639LanguageAndAudioType) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	b.Write(d.Language[:])
	b.Write(d.Type)

	return int(length) + 2, b.Err()
}

// DescriptorMaximumBitrate represents a maximum bitrate descriptor
type DescriptorMaximumBitrate struct {
	DescriptorHeader
	Bitrate uint32 // In bytes/second
}

func newDescriptorMaximumBitrate(i *astikit.BytesIterator, h DescriptorHeader, _ int) (dd Descriptor, err error) {
	var bs []byte
	if bs, err = i.NextBytesNoCopy(3); err != nil || len(bs) < 3 {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}

	dd = &DescriptorMaximumBitrate{
		DescriptorHeader: h,
		Bitrate:          (uint32(bs[0]&0x3f)<<16 | uint32(bs[1])<<8 | uint32(bs[2])) * 50,
	}
	return
}

func (*DescriptorMaximumBitrate) length() uint8 {
	return 3
}

func (d *DescriptorMaximumBitrate) print(l astikit.CompleteLogger) {
	l.Debugf("dvbsi:   maximum bitrate: %d bytes/s", d.Bitrate)
}

func (d *DescriptorMaximumBitrate) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	b.WriteN(uint8(0xff), 2)
	b.WriteN(d.Bitrate/50, 22)

	return int(length) + 2, b.Err()
}

// DescriptorPrivateDataIndicator represents a private data indicator descriptor
type DescriptorPrivateDataIndicator struct {
	DescriptorHeader
	Indicator uint32
}

func newDescriptorPrivateDataIndicator(i *astikit.BytesIterator, h DescriptorHeader, _ int) (dd Descriptor, err error) {
	var bs []byte
	if bs, err = i.NextBytesNoCopy(4); err != nil || len(bs) < 4 {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}

	dd = &DescriptorPrivateDataIndicator{
		DescriptorHeader: h,
		Indicator:        binary.BigEndian.Uint32(bs),
	}
	return
}

func (*DescriptorPrivateDataIndicator) length() uint8 {
	return 4
}

func (d *DescriptorPrivateDataIndicator) print(l astikit.CompleteLogger) {
	l.Debugf("dvbsi:   indicator: %08x", d.Indicator)
}

func (d *DescriptorPrivateDataIndicator) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	b.Write(d.Indicator)

	return int(length) + 2, b.Err()
}

// DescriptorAVCVideo represents an AVC video descriptor
// No doc found unfortunately, basing the implementation on https://github.com/gfto/bitstream/blob/master/mpeg/psi/desc_28.h
type DescriptorAVCVideo struct {
	DescriptorHeader
	AVC24HourPictureFlag bool
	AVCStillPresent      bool
	CompatibleFlags      uint8
	ConstraintSet0Flag   bool
	ConstraintSet1Flag   bool
	ConstraintSet2Flag   bool
	LevelIDC             uint8
	ProfileIDC           uint8
}

func newDescriptorAVCVideo(i *astikit.BytesIterator, h DescriptorHeader, _ int) (dd Descriptor, err error) {
	d := &DescriptorAVCVideo{
		DescriptorHeader: h,
	}
	dd = d

	var bs []byte
	if bs, err = i.NextBytesNoCopy(4); err != nil || len(bs) < 4 {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}

	d.ProfileIDC = bs[0]

	d.ConstraintSet0Flag = bs[1]&0x80 > 0
	d.ConstraintSet1Flag = bs[1]&0x40 > 0
	d.ConstraintSet2Flag = bs[1]&0x20 > 0
	d.CompatibleFlags = bs[1] & 0x1f

	d.LevelIDC = bs[2]

	d.AVCStillPresent = bs[3]&0x80 > 0
	d.AVC24HourPictureFlag = bs[3]&0x40 > 0
	return
}

func (*DescriptorAVCVideo) length() uint8 {
	return 4
}

func (d *DescriptorAVCVideo) print(l astikit.CompleteLogger) {
	l.Debugf("dvbsi:   profile idc: %d | level idc: %d", d.ProfileIDC, d.LevelIDC)
}

func (d *DescriptorAVCVideo) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	b.Write(d.ProfileIDC)

	b.Write(d.ConstraintSet0Flag)
	b.Write(d.ConstraintSet1Flag)
	b.Write(d.ConstraintSet2Flag)
	b.WriteN(d.CompatibleFlags, 5)

	b.Write(d.LevelIDC)

	b.Write(d.AVCStillPresent)
	b.Write(d.AVC24HourPictureFlag)
	b.WriteN(uint8(0xff), 6)

	return int(length) + 2, b.Err()
}
