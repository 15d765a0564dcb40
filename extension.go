package dvbsi

import (
	"encoding/hex"
	"fmt"

	"github.com/asticode/go-astikit"
)

// ExtensionDescriptorParser parses the bytes following the extension tag byte
type ExtensionDescriptorParser func(i *astikit.BytesIterator, offsetEnd int) (ExtensionDescriptor, error)

// ExtensionDescriptor represents the typed payload of an extension descriptor
type ExtensionDescriptor interface {
	length() uint8
	print(l astikit.CompleteLogger)
	write(w *astikit.BitsWriter) error
}

type extensionEntry struct {
	name   string
	parser ExtensionDescriptorParser
}

// extensionTable is the second-level tag space reached through
// DescriptorTagExtension, filled at init and never mutated afterwards. Only one
// level of extension is defined by EN 300 468.
var extensionTable [256]extensionEntry

func init() {
	extensionTable[DescriptorTagExtensionImageIcon] = extensionEntry{name: "image_icon_descriptor"}
	extensionTable[DescriptorTagExtensionT2DeliverySystem] = extensionEntry{name: "t2_delivery_system_descriptor"}
	extensionTable[DescriptorTagExtensionSupplementaryAudio] = extensionEntry{
		name:   "supplementary_audio_descriptor",
		parser: newDescriptorExtensionSupplementaryAudio,
	}
	extensionTable[DescriptorTagExtensionNetworkChangeNotify] = extensionEntry{name: "network_change_notify_descriptor"}
	extensionTable[DescriptorTagExtensionMessage] = extensionEntry{
		name:   "message_descriptor",
		parser: newDescriptorExtensionMessage,
	}
	extensionTable[DescriptorTagExtensionTargetRegion] = extensionEntry{name: "target_region_descriptor"}
	extensionTable[DescriptorTagExtensionServiceRelocated] = extensionEntry{name: "service_relocated_descriptor"}
}

func extensionName(t DescriptorExtensionTag) string {
	if n := extensionTable[t].name; n != "" {
		return n
	}
	return "unknown_descriptor"
}

// DescriptorExtension represents an extension descriptor
// Chapter: 6.2.16 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type DescriptorExtension struct {
	DescriptorHeader
	ExtensionTag DescriptorExtensionTag
	Extended     ExtensionDescriptor // typed payload, when the extension tag has a registered parser
	Unknown      []byte              // raw payload otherwise
}

func newDescriptorExtension(i *astikit.BytesIterator, h DescriptorHeader, offsetEnd int) (dd Descriptor, err error) {
	var b byte
	if b, err = i.NextByte(); err != nil {
		err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
		return
	}

	d := &DescriptorExtension{
		DescriptorHeader: h,
		ExtensionTag:     DescriptorExtensionTag(b),
	}
	dd = d

	if p := extensionTable[d.ExtensionTag].parser; p != nil {
		if d.Extended, err = p(i, offsetEnd); err != nil {
			err = fmt.Errorf("dvbsi: parsing extension descriptor 0x%02x failed: %w", uint8(d.ExtensionTag), err)
			return
		}
	} else if i.Offset() < offsetEnd {
		if d.Unknown, err = i.NextBytes(offsetEnd - i.Offset()); err != nil {
			err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
			return
		}
	}
	return
}

func (d *DescriptorExtension) length() uint8 {
	ret := 1 // extension tag
	if d.Extended != nil {
		ret += int(d.Extended.length())
	} else {
		ret += len(d.Unknown)
	}
	return uint8(ret)
}

func (d *DescriptorExtension) print(l astikit.CompleteLogger) {
	l.Debugf("dvbsi:   extension tag: 0x%02x (%s)", uint8(d.ExtensionTag), extensionName(d.ExtensionTag))
	if d.Extended != nil {
		d.Extended.print(l)
	} else if len(d.Unknown) > 0 {
		l.Debugf("dvbsi:   payload:\n%s", hex.Dump(d.Unknown))
	}
}

func (d *DescriptorExtension) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	b.Write(uint8(d.ExtensionTag))

	if err := b.Err(); err != nil {
		return 0, err
	}

	if d.Extended != nil {
		if err := d.Extended.write(w); err != nil {
			return 0, err
		}
	} else {
		b.Write(d.Unknown)
	}

	return int(length) + 2, b.Err()
}

// DescriptorExtensionSupplementaryAudio represents a supplementary audio extension descriptor
// Chapter: 6.4.10 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type DescriptorExtensionSupplementaryAudio struct {
	LanguageCode            [3]byte
	PrivateData             []byte
	EditorialClassification uint8
	HasLanguageCode         bool
	MixType                 bool
}

func newDescriptorExtensionSupplementaryAudio(i *astikit.BytesIterator, offsetEnd int) (ed ExtensionDescriptor, err error) {
	var b byte
	if b, err = i.NextByte(); err != nil {
		err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
		return
	}

	d := &DescriptorExtensionSupplementaryAudio{
		EditorialClassification: b >> 2 & 0x1f,
		HasLanguageCode:         b&0x1 > 0,
		MixType:                 b&0x80 > 0,
	}
	ed = d

	if d.HasLanguageCode {
		var bs []byte
		if bs, err = i.NextBytesNoCopy(3); err != nil || len(bs) < 3 {
			err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
			return
		}
		copy(d.LanguageCode[:], bs)
	}

	if i.Offset() < offsetEnd {
		if d.PrivateData, err = i.NextBytes(offsetEnd - i.Offset()); err != nil {
			err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
			return
		}
	}
	return
}

func (d *DescriptorExtensionSupplementaryAudio) length() uint8 {
	ret := 1
	ret += 3 * int(b2u(d.HasLanguageCode))
	ret += len(d.PrivateData)
	return uint8(ret)
}

func (d *DescriptorExtensionSupplementaryAudio) print(l astikit.CompleteLogger) {
	l.Debugf("dvbsi:   mix type: %v | editorial classification: %d | language: %s", d.MixType, d.EditorialClassification, d.LanguageCode[:])
}

func (d *DescriptorExtensionSupplementaryAudio) write(w *astikit.BitsWriter) error {
	b := astikit.NewBitsWriterBatch(w)

	b.Write(d.MixType)
	b.WriteN(d.EditorialClassification, 5)
	b.Write(true) // reserved
	b.Write(d.HasLanguageCode)

	if d.HasLanguageCode {
		b.Write(d.LanguageCode[:])
	}

	b.Write(d.PrivateData)

	return b.Err()
}

// DescriptorExtensionMessage represents a message extension descriptor
// Chapter: 6.4.7 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type DescriptorExtensionMessage struct {
	ISO639LanguageCode [3]byte
	Message            []byte
	MessageID          uint8
}

func newDescriptorExtensionMessage(i *astikit.BytesIterator, offsetEnd int) (ed ExtensionDescriptor, err error) {
	d := &DescriptorExtensionMessage{}
	ed = d

	if d.MessageID, err = i.NextByte(); err != nil {
		err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
		return
	}

	var bs []byte
	if bs, err = i.NextBytesNoCopy(3); err != nil || len(bs) < 3 {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}
	copy(d.ISO639LanguageCode[:], bs)

	if i.Offset() < offsetEnd {
		if d.Message, err = i.NextBytes(offsetEnd - i.Offset()); err != nil {
			err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
			return
		}
	}
	return
}

func (d *DescriptorExtensionMessage) length() uint8 {
	return uint8(4 + len(d.Message))
}

func (d *DescriptorExtensionMessage) print(l astikit.CompleteLogger) {
	l.Debugf("dvbsi:   message id: %d | language: %s | message: %s", d.MessageID, d.ISO639LanguageCode[:], d.Message)
}

func (d *DescriptorExtensionMessage) write(w *astikit.BitsWriter) error {
	b := astikit.NewBitsWriterBatch(w)

	b.Write(d.MessageID)
	b.Write(d.ISO639LanguageCode[:])
	b.Write(d.Message)

	return b.Err()
}
