package dvbsi

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/asticode/go-astikit"
)

// Errors
var (
	// ErrDescriptorHeaderTruncated is returned when a single byte remains where a
	// tag+length pair was expected. The buffer is desynchronized beyond recovery
	// so the whole parse attempt fails.
	ErrDescriptorHeaderTruncated = errors.New("dvbsi: descriptor header truncated")
	// ErrDescriptorPayloadTruncated is returned when a descriptor declares more
	// payload bytes than remain in the buffer.
	ErrDescriptorPayloadTruncated = errors.New("dvbsi: descriptor payload truncated")

	errDescriptorOverrun = errors.New("dvbsi: descriptor decode overran its declared length")
)

// DescriptorParser parses the payload of one descriptor. The iterator is
// positioned on the first payload byte and offsetEnd is the offset right past
// the declared payload.
type DescriptorParser func(i *astikit.BytesIterator, h DescriptorHeader, offsetEnd int) (Descriptor, error)

// Descriptor represents one decoded descriptor record
type Descriptor interface {
	header() DescriptorHeader
	length() uint8
	print(l astikit.CompleteLogger)
	write(w *astikit.BitsWriter) (int, error)
}

// DescriptorHeader is the 2-byte header shared by all descriptors. Length is
// the number of payload bytes on the wire, the header itself excluded.
type DescriptorHeader struct {
	Tag    DescriptorTag // the tag defines the structure of the contained data following the descriptor length.
	Length uint8
}

func (dh DescriptorHeader) header() DescriptorHeader { return dh }

// Descriptors is an ordered chain of descriptors parsed from one buffer. Order
// is wire order.
type Descriptors []Descriptor

type closer interface {
	close()
}

// Close releases pooled payloads held by generic descriptors back to the pool.
// A nil or empty chain is a no-op. The chain must not be used after Close.
func (ds Descriptors) Close() {
	for _, d := range ds {
		if c, ok := d.(closer); ok {
			c.close()
		}
	}
}

// Write serializes the chain, headers included
func (ds Descriptors) Write(w *astikit.BitsWriter) (int, error) {
	written := 0

	for _, d := range ds {
		n, err := d.write(w)
		if err != nil {
			return 0, err
		}
		written += n
	}

	return written, nil
}

func calcDescriptorsLength(ds Descriptors) (length uint16) {
	for _, d := range ds {
		length += 2 // tag and length
		length += uint16(d.length())
	}
	return
}

// Parse walks a descriptor loop and returns the descriptor chain in wire order.
// The buffer must cover the bare descriptor-loop region: section headers and the
// trailing CRC32 are the caller's business, before Parse is invoked.
//
// Truncation makes the whole call fail. A single descriptor whose payload its
// registered parser rejects is skipped and parsing continues with its siblings,
// since malformed individual descriptors are common in the wild. Descriptors
// with tags the registry doesn't know come back as *DescriptorGeneric.
func (r *Registry) Parse(bs []byte) (Descriptors, error) {
	return parseDescriptors(astikit.NewBytesIterator(bs), len(bs), r)
}

// parseDescriptors parses descriptors between the iterator offset and offsetEnd
func parseDescriptors(i *astikit.BytesIterator, offsetEnd int, r *Registry) (o Descriptors, err error) {
	for i.Offset() < offsetEnd {
		// Header
		if offsetEnd-i.Offset() < 2 {
			o.Close()
			return nil, fmt.Errorf("dvbsi: parsing header at offset %d failed: %w", i.Offset(), ErrDescriptorHeaderTruncated)
		}
		var bs []byte
		if bs, err = i.NextBytesNoCopy(2); err != nil || len(bs) < 2 {
			o.Close()
			return nil, fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		}

		h := DescriptorHeader{
			Tag:    DescriptorTag(bs[0]),
			Length: bs[1],
		}

		// Never read past the supplied buffer end, whatever the descriptor declares
		if int(h.Length) > offsetEnd-i.Offset() {
			o.Close()
			return nil, fmt.Errorf("dvbsi: descriptor 0x%02x at offset %d declares %d bytes: %w", uint8(h.Tag), i.Offset()-2, h.Length, ErrDescriptorPayloadTruncated)
		}
		offsetDescriptorEnd := i.Offset() + int(h.Length)

		var d Descriptor
		if p := r.parser(h.Tag); p != nil {
			// There's no way to be sure the real descriptor length matches the one
			// declared, therefore parsers fetch bytes themselves and the cursor is
			// resynced below
			if d, err = p(i, h, offsetDescriptorEnd); err == nil && i.Offset() > offsetDescriptorEnd {
				err = errDescriptorOverrun
			}
			if err != nil {
				// A malformed descriptor must not block its siblings: consume its
				// declared bytes and keep walking
				r.l.Debugf("dvbsi: skipping descriptor 0x%02x (%s): %s", uint8(h.Tag), r.Name(h.Tag), err)
				d, err = nil, nil
			}
		} else {
			if d, err = newDescriptorGeneric(i, h, offsetDescriptorEnd); err != nil {
				o.Close()
				return nil, fmt.Errorf("dvbsi: parsing generic descriptor 0x%02x failed: %w", uint8(h.Tag), err)
			}
		}
		if d != nil {
			o = append(o, d)
		}

		i.Seek(offsetDescriptorEnd)
	}
	return
}

// DescriptorGeneric carries the payload of a descriptor whose tag the active
// registry doesn't know, verbatim. The chain always reflects every on-wire
// descriptor, including tags defined after this software was built.
type DescriptorGeneric struct {
	DescriptorHeader
	payload *payloadBuffer
}

func newDescriptorGeneric(i *astikit.BytesIterator, h DescriptorHeader, offsetEnd int) (Descriptor, error) {
	d := &DescriptorGeneric{
		DescriptorHeader: h,
		payload:          poolOfPayload.get(offsetEnd - i.Offset()),
	}
	if h.Length > 0 {
		bs, err := i.NextBytesNoCopy(offsetEnd - i.Offset())
		if err != nil {
			d.close()
			return nil, fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		}
		copy(d.payload.s, bs)
	}
	return d, nil
}

// Data returns the raw payload bytes. The slice is owned by the chain and is
// only valid until Close.
func (d *DescriptorGeneric) Data() []byte {
	if d.payload == nil {
		return nil
	}
	return d.payload.s
}

func (d *DescriptorGeneric) close() {
	if d.payload != nil {
		poolOfPayload.put(d.payload)
		d.payload = nil
	}
}

func (d *DescriptorGeneric) length() uint8 {
	return uint8(len(d.Data()))
}

func (d *DescriptorGeneric) print(l astikit.CompleteLogger) {
	if len(d.Data()) > 0 {
		l.Debugf("dvbsi:   payload:\n%s", hex.Dump(d.Data()))
	}
}

func (d *DescriptorGeneric) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)
	b.Write(d.Data())

	return int(length) + 2, b.Err()
}

// DescriptorUserDefined covers the user/private half of the DVB tag space
type DescriptorUserDefined struct {
	DescriptorHeader
	Data []byte
}

func newDescriptorUserDefined(i *astikit.BytesIterator, h DescriptorHeader, _ int) (dd Descriptor, err error) {
	d := &DescriptorUserDefined{
		DescriptorHeader: h,
	}
	dd = d
	d.Data, err = i.NextBytes(int(h.Length))
	return
}

func (d *DescriptorUserDefined) length() uint8 {
	return uint8(len(d.Data))
}

func (d *DescriptorUserDefined) print(l astikit.CompleteLogger) {
	if len(d.Data) > 0 {
		l.Debugf("dvbsi:   payload:\n%s", hex.Dump(d.Data))
	}
}

func (d *DescriptorUserDefined) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)
	b.Write(d.Data)

	return int(length) + 2, b.Err()
}
