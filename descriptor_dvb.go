package dvbsi

import (
	"fmt"
	"time"

	"github.com/asticode/go-astikit"
)

// Service types
// Chapter: 6.2.33 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
const (
	ServiceTypeDigitalTelevisionService = 0x1
)

// Teletext types
// Chapter: 6.2.43 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
const (
	TeletextTypeInitialTeletextPage                          = 0x1
	TeletextTypeTeletextSubtitlePage                         = 0x2
	TeletextTypeAdditionalInformationPage                    = 0x3
	TeletextTypeProgramSchedulePage                          = 0x4
	TeletextTypeTeletextSubtitlePageForHearingImpairedPeople = 0x5
)

// DescriptorNetworkName represents a network name descriptor
// Chapter: 6.2.27 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type DescriptorNetworkName struct {
	DescriptorHeader
	Name []byte
}

func newDescriptorNetworkName(i *astikit.BytesIterator, h DescriptorHeader, offsetEnd int) (dd Descriptor, err error) {
	d := &DescriptorNetworkName{
		DescriptorHeader: h,
	}
	dd = d

	if d.Name, err = i.NextBytes(offsetEnd - i.Offset()); err != nil {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}
	return
}

func (d *DescriptorNetworkName) length() uint8 {
	return uint8(len(d.Name))
}

func (d *DescriptorNetworkName) print(l astikit.CompleteLogger) {
	l.Debugf("dvbsi:   network name: %s", d.Name)
}

func (d *DescriptorNetworkName) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	b.Write(d.Name)

	return int(length) + 2, b.Err()
}

// DescriptorService represents a service descriptor
// Chapter: 6.2.33 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type DescriptorService struct {
	DescriptorHeader
	Name     []byte
	Provider []byte
	Type     uint8
}

func newDescriptorService(i *astikit.BytesIterator, h DescriptorHeader, _ int) (dd Descriptor, err error) {
	var b byte
	if b, err = i.NextByte(); err != nil {
		err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
		return
	}

	d := &DescriptorService{
		DescriptorHeader: h,
		Type:             b,
	}
	dd = d

	// Provider
	if b, err = i.NextByte(); err != nil {
		err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
		return
	}
	if d.Provider, err = i.NextBytes(int(b)); err != nil {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}

	// Name
	if b, err = i.NextByte(); err != nil {
		err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
		return
	}
	if d.Name, err = i.NextBytes(int(b)); err != nil {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}
	return
}

func (d *DescriptorService) length() uint8 {
	return uint8(3 + len(d.Provider) + len(d.Name))
}

func (d *DescriptorService) print(l astikit.CompleteLogger) {
	l.Debugf("dvbsi:   service type: %d | provider: %s | name: %s", d.Type, d.Provider, d.Name)
}

func (d *DescriptorService) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	b.Write(d.Type)
	b.Write(uint8(len(d.Provider)))
	b.Write(d.Provider)
	b.Write(uint8(len(d.Name)))
	b.Write(d.Name)

	return int(length) + 2, b.Err()
}

// DescriptorShortEvent represents a short event descriptor
// Chapter: 6.2.37 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type DescriptorShortEvent struct {
	DescriptorHeader
	EventName          []byte
	Text               []byte
	ISO639LanguageCode [3]byte
}

func newDescriptorShortEvent(i *astikit.BytesIterator, h DescriptorHeader, _ int) (dd Descriptor, err error) {
	d := &DescriptorShortEvent{
		DescriptorHeader: h,
	}
	dd = d

	var bs []byte
	if bs, err = i.NextBytesNoCopy(3); err != nil || len(bs) < 3 {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}
	copy(d.ISO639LanguageCode[:], bs)

	var b byte
	if b, err = i.NextByte(); err != nil {
		err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
		return
	}
	if d.EventName, err = i.NextBytes(int(b)); err != nil {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}

	if b, err = i.NextByte(); err != nil {
		err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
		return
	}
	if d.Text, err = i.NextBytes(int(b)); err != nil {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}
	return
}

func (d *DescriptorShortEvent) length() uint8 {
	return uint8(5 + len(d.EventName) + len(d.Text))
}

func (d *DescriptorShortEvent) print(l astikit.CompleteLogger) {
	l.Debugf("dvbsi:   language: %s | event name: %s | text: %s", d.ISO639LanguageCode[:], d.EventName, d.Text)
}

func (d *DescriptorShortEvent) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	b.Write(d.ISO639LanguageCode[:])
	b.Write(uint8(len(d.EventName)))
	b.Write(d.EventName)
	b.Write(uint8(len(d.Text)))
	b.Write(d.Text)

	return int(length) + 2, b.Err()
}

// DescriptorExtendedEvent represents an extended event descriptor
// Chapter: 6.2.15 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type DescriptorExtendedEvent struct {
	DescriptorHeader
	Text                 []byte
	Items                []DescriptorExtendedEventItem
	ISO639LanguageCode   [3]byte
	LastDescriptorNumber uint8
	Number               uint8
}

// DescriptorExtendedEventItem represents an extended event item
type DescriptorExtendedEventItem struct {
	Content     []byte
	Description []byte
}

func newDescriptorExtendedEvent(i *astikit.BytesIterator, h DescriptorHeader, _ int) (dd Descriptor, err error) {
	d := &DescriptorExtendedEvent{
		DescriptorHeader: h,
	}
	dd = d

	var b byte
	if b, err = i.NextByte(); err != nil {
		err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
		return
	}
	d.Number = b >> 4
	d.LastDescriptorNumber = b & 0xf

	var bs []byte
	if bs, err = i.NextBytesNoCopy(3); err != nil || len(bs) < 3 {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}
	copy(d.ISO639LanguageCode[:], bs)

	// Items
	if b, err = i.NextByte(); err != nil {
		err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
		return
	}
	offsetEnd := i.Offset() + int(b)
	for i.Offset() < offsetEnd {
		var item DescriptorExtendedEventItem
		if item, err = newDescriptorExtendedEventItem(i); err != nil {
			err = fmt.Errorf("dvbsi: creating extended event item failed: %w", err)
			return
		}
		d.Items = append(d.Items, item)
	}

	// Text
	if b, err = i.NextByte(); err != nil {
		err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
		return
	}
	if d.Text, err = i.NextBytes(int(b)); err != nil {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}
	return
}

func newDescriptorExtendedEventItem(i *astikit.BytesIterator) (d DescriptorExtendedEventItem, err error) {
	var b byte
	if b, err = i.NextByte(); err != nil {
		err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
		return
	}
	if d.Description, err = i.NextBytes(int(b)); err != nil {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}

	if b, err = i.NextByte(); err != nil {
		err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
		return
	}
	if d.Content, err = i.NextBytes(int(b)); err != nil {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}
	return
}

func (d *DescriptorExtendedEvent) length() uint8 {
	ret := 1 + 3 + 1 // numbers, language and items length
	for _, item := range d.Items {
		ret += 2 + len(item.Description) + len(item.Content)
	}
	ret += 1 + len(d.Text)
	return uint8(ret)
}

func (d *DescriptorExtendedEvent) print(l astikit.CompleteLogger) {
	l.Debugf("dvbsi:   language: %s | number: %d/%d | text: %s", d.ISO639LanguageCode[:], d.Number, d.LastDescriptorNumber, d.Text)
	for _, item := range d.Items {
		l.Debugf("dvbsi:   item: %s: %s", item.Description, item.Content)
	}
}

func (d *DescriptorExtendedEvent) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	var lengthOfItems int
	for _, item := range d.Items {
		lengthOfItems += 2 + len(item.Description) + len(item.Content)
	}

	b.WriteN(d.Number, 4)
	b.WriteN(d.LastDescriptorNumber, 4)

	b.Write(d.ISO639LanguageCode[:])

	b.Write(uint8(lengthOfItems))
	for _, item := range d.Items {
		b.Write(uint8(len(item.Description)))
		b.Write(item.Description)
		b.Write(uint8(len(item.Content)))
		b.Write(item.Content)
	}

	b.Write(uint8(len(d.Text)))
	b.Write(d.Text)

	return int(length) + 2, b.Err()
}

// DescriptorComponent represents a component descriptor
// Chapter: 6.2.8 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type DescriptorComponent struct {
	DescriptorHeader
	ISO639LanguageCode [3]byte
	Text               []byte
	ComponentTag       uint8
	ComponentType      uint8
	StreamContent      uint8
	StreamContentExt   uint8
}

func newDescriptorComponent(i *astikit.BytesIterator, h DescriptorHeader, offsetEnd int) (dd Descriptor, err error) {
	d := &DescriptorComponent{
		DescriptorHeader: h,
	}
	dd = d

	var bs []byte
	if bs, err = i.NextBytesNoCopy(3); err != nil || len(bs) < 3 {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}

	d.StreamContentExt = bs[0] >> 4
	d.StreamContent = bs[0] & 0xf
	d.ComponentType = bs[1]
	d.ComponentTag = bs[2]

	if bs, err = i.NextBytesNoCopy(3); err != nil || len(bs) < 3 {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}
	copy(d.ISO639LanguageCode[:], bs)

	if i.Offset() < offsetEnd {
		if d.Text, err = i.NextBytes(offsetEnd - i.Offset()); err != nil {
			err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
			return
		}
	}
	return
}

func (d *DescriptorComponent) length() uint8 {
	return uint8(6 + len(d.Text))
}

func (d *DescriptorComponent) print(l astikit.CompleteLogger) {
	l.Debugf("dvbsi:   stream content: %d.%d | component type: %d | tag: %d | language: %s | text: %s",
		d.StreamContent, d.StreamContentExt, d.ComponentType, d.ComponentTag, d.ISO639LanguageCode[:], d.Text)
}

func (d *DescriptorComponent) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	b.WriteN(d.StreamContentExt, 4)
	b.WriteN(d.StreamContent, 4)

	b.Write(d.ComponentType)
	b.Write(d.ComponentTag)

	b.Write(d.ISO639LanguageCode[:])

	b.Write(d.Text)

	return int(length) + 2, b.Err()
}

// DescriptorStreamIdentifier represents a stream identifier descriptor
// Chapter: 6.2.39 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type DescriptorStreamIdentifier struct {
	DescriptorHeader
	ComponentTag uint8
}

func newDescriptorStreamIdentifier(i *astikit.BytesIterator, h DescriptorHeader, _ int) (dd Descriptor, err error) {
	var b byte
	if b, err = i.NextByte(); err != nil {
		err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
		return
	}
	dd = &DescriptorStreamIdentifier{
		DescriptorHeader: h,
		ComponentTag:     b,
	}
	return
}

func (*DescriptorStreamIdentifier) length() uint8 {
	return 1
}

func (d *DescriptorStreamIdentifier) print(l astikit.CompleteLogger) {
	l.Debugf("dvbsi:   component tag: %d", d.ComponentTag)
}

func (d *DescriptorStreamIdentifier) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	b.Write(d.ComponentTag)

	return int(length) + 2, b.Err()
}

// DescriptorContent represents a content descriptor
// Chapter: 6.2.9 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type DescriptorContent struct {
	DescriptorHeader
	Items []DescriptorContentItem
}

// DescriptorContentItem represents a content item
type DescriptorContentItem struct {
	ContentNibbleLevel1 uint8
	ContentNibbleLevel2 uint8
	UserByte            uint8
}

func newDescriptorContent(i *astikit.BytesIterator, h DescriptorHeader, offsetEnd int) (dd Descriptor, err error) {
	d := &DescriptorContent{
		DescriptorHeader: h,
	}
	dd = d

	for i.Offset() < offsetEnd {
		var bs []byte
		if bs, err = i.NextBytesNoCopy(2); err != nil || len(bs) < 2 {
			err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
			return
		}
		d.Items = append(d.Items, DescriptorContentItem{
			ContentNibbleLevel1: bs[0] >> 4,
			ContentNibbleLevel2: bs[0] & 0xf,
			UserByte:            bs[1],
		})
	}
	return
}

func (d *DescriptorContent) length() uint8 {
	return uint8(2 * len(d.Items))
}

func (d *DescriptorContent) print(l astikit.CompleteLogger) {
	for _, item := range d.Items {
		l.Debugf("dvbsi:   content: %d.%d | user byte: %d", item.ContentNibbleLevel1, item.ContentNibbleLevel2, item.UserByte)
	}
}

func (d *DescriptorContent) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	for _, item := range d.Items {
		b.WriteN(item.ContentNibbleLevel1, 4)
		b.WriteN(item.ContentNibbleLevel2, 4)
		b.Write(item.UserByte)
	}

	return int(length) + 2, b.Err()
}

// DescriptorParentalRating represents a parental rating descriptor
// Chapter: 6.2.28 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type DescriptorParentalRating struct {
	DescriptorHeader
	Items []DescriptorParentalRatingItem
}

// DescriptorParentalRatingItem represents a parental rating item
type DescriptorParentalRatingItem struct {
	CountryCode [3]byte
	Rating      uint8
}

// MinimumAge returns the minimum age for the parental rating
func (d DescriptorParentalRatingItem) MinimumAge() int {
	// Undefined or user defined ratings
	if d.Rating == 0 || d.Rating > 0x10 {
		return 0
	}
	return int(d.Rating) + 3
}

func newDescriptorParentalRating(i *astikit.BytesIterator, h DescriptorHeader, offsetEnd int) (dd Descriptor, err error) {
	d := &DescriptorParentalRating{
		DescriptorHeader: h,
		Items:            make([]DescriptorParentalRatingItem, (offsetEnd-i.Offset())/4),
	}
	dd = d

	for idx := range d.Items {
		var bs []byte
		if bs, err = i.NextBytesNoCopy(4); err != nil || len(bs) < 4 {
			err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
			return
		}
		d.Items[idx].Rating = bs[3]
		copy(d.Items[idx].CountryCode[:], bs)
	}
	return
}

func (d *DescriptorParentalRating) length() uint8 {
	return uint8(4 * len(d.Items))
}

func (d *DescriptorParentalRating) print(l astikit.CompleteLogger) {
	for _, item := range d.Items {
		l.Debugf("dvbsi:   country: %s | minimum age: %d", item.CountryCode[:], item.MinimumAge())
	}
}

func (d *DescriptorParentalRating) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	for _, item := range d.Items {
		b.Write(item.CountryCode[:])
		b.Write(item.Rating)
	}

	return int(length) + 2, b.Err()
}

// DescriptorTeletext represents a teletext descriptor, also used for the VBI
// teletext tag whose payload is identical
// Chapter: 6.2.43 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type DescriptorTeletext struct {
	DescriptorHeader
	Items []DescriptorTeletextItem
}

// DescriptorTeletextItem represents a teletext item
type DescriptorTeletextItem struct {
	Language [3]byte
	Magazine uint8
	Page     uint8
	Type     uint8
}

func newDescriptorTeletext(i *astikit.BytesIterator, h DescriptorHeader, offsetEnd int) (dd Descriptor, err error) {
	d := &DescriptorTeletext{
		DescriptorHeader: h,
		Items:            make([]DescriptorTeletextItem, (offsetEnd-i.Offset())/5),
	}
	dd = d

	for idx := range d.Items {
		var bs []byte
		if bs, err = i.NextBytesNoCopy(5); err != nil || len(bs) < 5 {
			err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
			return
		}
		copy(d.Items[idx].Language[:], bs)
		d.Items[idx].Type = bs[3] >> 3
		d.Items[idx].Magazine = bs[3] & 0x7
		d.Items[idx].Page = bs[4]>>4*10 + bs[4]&0xf
	}
	return
}

func (d *DescriptorTeletext) length() uint8 {
	return uint8(5 * len(d.Items))
}

func (d *DescriptorTeletext) print(l astikit.CompleteLogger) {
	for _, item := range d.Items {
		l.Debugf("dvbsi:   language: %s | type: %d | page: %d%02d", item.Language[:], item.Type, item.Magazine, item.Page)
	}
}

func (d *DescriptorTeletext) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	for _, item := range d.Items {
		b.Write(item.Language[:])
		b.WriteN(item.Type, 5)
		b.WriteN(item.Magazine, 3)
		b.Write(bcdByteRepresentation(item.Page))
	}

	return int(length) + 2, b.Err()
}

// DescriptorLocalTimeOffset represents a local time offset descriptor
// Chapter: 6.2.20 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type DescriptorLocalTimeOffset struct {
	DescriptorHeader
	Items []DescriptorLocalTimeOffsetItem
}

// DescriptorLocalTimeOffsetItem represents a local time offset item
type DescriptorLocalTimeOffsetItem struct {
	LocalTimeOffset         time.Duration
	NextTimeOffset          time.Duration
	TimeOfChange            time.Time
	CountryCode             [3]byte
	CountryRegionID         uint8
	LocalTimeOffsetPolarity bool
}

func newDescriptorLocalTimeOffset(i *astikit.BytesIterator, h DescriptorHeader, offsetEnd int) (dd Descriptor, err error) {
	d := &DescriptorLocalTimeOffset{
		DescriptorHeader: h,
		Items:            make([]DescriptorLocalTimeOffsetItem, (offsetEnd-i.Offset())/13),
	}
	dd = d

	for idx := range d.Items {
		var bs []byte
		if bs, err = i.NextBytesNoCopy(3); err != nil || len(bs) < 3 {
			err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
			return
		}
		copy(d.Items[idx].CountryCode[:], bs)

		var b byte
		if b, err = i.NextByte(); err != nil {
			err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
			return
		}
		d.Items[idx].CountryRegionID = b >> 2
		d.Items[idx].LocalTimeOffsetPolarity = b&0x1 > 0

		if d.Items[idx].LocalTimeOffset, err = parseBCDDurationMinutes(i); err != nil {
			err = fmt.Errorf("dvbsi: parsing BCD duration failed: %w", err)
			return
		}
		if d.Items[idx].TimeOfChange, err = parseBCDTime(i); err != nil {
			err = fmt.Errorf("dvbsi: parsing BCD time failed: %w", err)
			return
		}
		if d.Items[idx].NextTimeOffset, err = parseBCDDurationMinutes(i); err != nil {
			err = fmt.Errorf("dvbsi: parsing BCD duration failed: %w", err)
			return
		}
	}
	return
}

func (d *DescriptorLocalTimeOffset) length() uint8 {
	return uint8(13 * len(d.Items))
}

func (d *DescriptorLocalTimeOffset) print(l astikit.CompleteLogger) {
	for _, item := range d.Items {
		l.Debugf("dvbsi:   country: %s | offset: %s | time of change: %s", item.CountryCode[:], item.LocalTimeOffset, item.TimeOfChange)
	}
}

func (d *DescriptorLocalTimeOffset) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	for _, item := range d.Items {
		b.Write(item.CountryCode[:])

		b.WriteN(item.CountryRegionID, 6)
		b.WriteN(uint8(0xff), 1)
		b.Write(item.LocalTimeOffsetPolarity)

		if _, err := writeBCDDurationMinutes(w, item.LocalTimeOffset); err != nil {
			return 0, err
		}
		if _, err := writeBCDTime(w, item.TimeOfChange); err != nil {
			return 0, err
		}
		if _, err := writeBCDDurationMinutes(w, item.NextTimeOffset); err != nil {
			return 0, err
		}
	}

	return int(length) + 2, b.Err()
}

// DescriptorSubtitling represents a subtitling descriptor
// Chapter: 6.2.41 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type DescriptorSubtitling struct {
	DescriptorHeader
	Items []DescriptorSubtitlingItem
}

// DescriptorSubtitlingItem represents a subtitling item
type DescriptorSubtitlingItem struct {
	Language          [3]byte
	Type              uint8
	CompositionPageID uint16
	AncillaryPageID   uint16
}

func newDescriptorSubtitling(i *astikit.BytesIterator, h DescriptorHeader, offsetEnd int) (dd Descriptor, err error) {
	d := &DescriptorSubtitling{
		DescriptorHeader: h,
		Items:            make([]DescriptorSubtitlingItem, (offsetEnd-i.Offset())/8),
	}
	dd = d

	for idx := range d.Items {
		var bs []byte
		if bs, err = i.NextBytesNoCopy(8); err != nil || len(bs) < 8 {
			err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
			return
		}
		copy(d.Items[idx].Language[:], bs)
		d.Items[idx].Type = bs[3]
		d.Items[idx].CompositionPageID = uint16(bs[4])<<8 | uint16(bs[5])
		d.Items[idx].AncillaryPageID = uint16(bs[6])<<8 | uint16(bs[7])
	}
	return
}

func (d *DescriptorSubtitling) length() uint8 {
	return uint8(8 * len(d.Items))
}

func (d *DescriptorSubtitling) print(l astikit.CompleteLogger) {
	for _, item := range d.Items {
		l.Debugf("dvbsi:   language: %s | type: %d | composition page: %d | ancillary page: %d",
			item.Language[:], item.Type, item.CompositionPageID, item.AncillaryPageID)
	}
}

func (d *DescriptorSubtitling) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	for _, item := range d.Items {
		b.Write(item.Language[:])
		b.Write(item.Type)
		b.Write(item.CompositionPageID)
		b.Write(item.AncillaryPageID)
	}

	return int(length) + 2, b.Err()
}

// DescriptorPrivateDataSpecifier represents a private data specifier descriptor
type DescriptorPrivateDataSpecifier struct {
	DescriptorHeader
	Specifier uint32
}

func newDescriptorPrivateDataSpecifier(i *astikit.BytesIterator, h DescriptorHeader, _ int) (dd Descriptor, err error) {
	var bs []byte
	if bs, err = i.NextBytesNoCopy(4); err != nil || len(bs) < 4 {
		err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
		return
	}

	dd = &DescriptorPrivateDataSpecifier{
		DescriptorHeader: h,
		Specifier:        uint32(bs[0])<<24 | uint32(bs[1])<<16 | uint32(bs[2])<<8 | uint32(bs[3]),
	}
	return
}

func (*DescriptorPrivateDataSpecifier) length() uint8 {
	return 4
}

func (d *DescriptorPrivateDataSpecifier) print(l astikit.CompleteLogger) {
	l.Debugf("dvbsi:   specifier: %08x", d.Specifier)
}

func (d *DescriptorPrivateDataSpecifier) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	b.Write(d.Specifier)

	return int(length) + 2, b.Err()
}

// DescriptorAC3 represents an AC3 descriptor
// Chapter: Annex D | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type DescriptorAC3 struct {
	DescriptorHeader
	AdditionalInfo   []byte
	ASVC             uint8
	BSID             uint8
	ComponentType    uint8
	HasASVC          bool
	HasBSID          bool
	HasComponentType bool
	HasMainID        bool
	MainID           uint8
}

func newDescriptorAC3(i *astikit.BytesIterator, h DescriptorHeader, offsetEnd int) (dd Descriptor, err error) {
	var b byte
	if b, err = i.NextByte(); err != nil {
		err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
		return
	}

	d := &DescriptorAC3{
		DescriptorHeader: h,
		HasASVC:          b&0x10 > 0,
		HasBSID:          b&0x40 > 0,
		HasComponentType: b&0x80 > 0,
		HasMainID:        b&0x20 > 0,
	}
	dd = d

	if d.HasComponentType {
		if d.ComponentType, err = i.NextByte(); err != nil {
			err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
			return
		}
	}
	if d.HasBSID {
		if d.BSID, err = i.NextByte(); err != nil {
			err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
			return
		}
	}
	if d.HasMainID {
		if d.MainID, err = i.NextByte(); err != nil {
			err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
			return
		}
	}
	if d.HasASVC {
		if d.ASVC, err = i.NextByte(); err != nil {
			err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
			return
		}
	}

	if i.Offset() < offsetEnd {
		if d.AdditionalInfo, err = i.NextBytes(offsetEnd - i.Offset()); err != nil {
			err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
			return
		}
	}
	return
}

func (d *DescriptorAC3) length() (ret uint8) {
	ret = 1 // flags
	ret += b2u(d.HasComponentType)
	ret += b2u(d.HasBSID)
	ret += b2u(d.HasMainID)
	ret += b2u(d.HasASVC)
	ret += uint8(len(d.AdditionalInfo))
	return
}

func (d *DescriptorAC3) print(l astikit.CompleteLogger) {
	l.Debugf("dvbsi:   component type: %d (%v) | bsid: %d (%v) | main id: %d (%v) | asvc: %d (%v)",
		d.ComponentType, d.HasComponentType, d.BSID, d.HasBSID, d.MainID, d.HasMainID, d.ASVC, d.HasASVC)
}

func (d *DescriptorAC3) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	b.Write(d.HasComponentType)
	b.Write(d.HasBSID)
	b.Write(d.HasMainID)
	b.Write(d.HasASVC)
	b.WriteN(uint8(0xff), 4)

	if d.HasComponentType {
		b.Write(d.ComponentType)
	}
	if d.HasBSID {
		b.Write(d.BSID)
	}
	if d.HasMainID {
		b.Write(d.MainID)
	}
	if d.HasASVC {
		b.Write(d.ASVC)
	}
	b.Write(d.AdditionalInfo)

	return int(length) + 2, b.Err()
}

// DescriptorEnhancedAC3 represents an enhanced AC3 descriptor
// Chapter: Annex D | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
type DescriptorEnhancedAC3 struct {
	DescriptorHeader
	AdditionalInfo   []byte
	ASVC             uint8
	BSID             uint8
	ComponentType    uint8
	HasASVC          bool
	HasBSID          bool
	HasComponentType bool
	HasMainID        bool
	HasSubStream1    bool
	HasSubStream2    bool
	HasSubStream3    bool
	MainID           uint8
	MixInfoExists    bool
	SubStream1       uint8
	SubStream2       uint8
	SubStream3       uint8
}

func newDescriptorEnhancedAC3(i *astikit.BytesIterator, h DescriptorHeader, offsetEnd int) (dd Descriptor, err error) {
	var b byte
	if b, err = i.NextByte(); err != nil {
		err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
		return
	}

	d := &DescriptorEnhancedAC3{
		DescriptorHeader: h,
		HasASVC:          b&0x10 > 0,
		HasBSID:          b&0x40 > 0,
		HasComponentType: b&0x80 > 0,
		HasMainID:        b&0x20 > 0,
		HasSubStream1:    b&0x4 > 0,
		HasSubStream2:    b&0x2 > 0,
		HasSubStream3:    b&0x1 > 0,
		MixInfoExists:    b&0x8 > 0,
	}
	dd = d

	for _, f := range []struct {
		has bool
		dst *uint8
	}{
		{d.HasComponentType, &d.ComponentType},
		{d.HasBSID, &d.BSID},
		{d.HasMainID, &d.MainID},
		{d.HasASVC, &d.ASVC},
		{d.HasSubStream1, &d.SubStream1},
		{d.HasSubStream2, &d.SubStream2},
		{d.HasSubStream3, &d.SubStream3},
	} {
		if !f.has {
			continue
		}
		if *f.dst, err = i.NextByte(); err != nil {
			err = fmt.Errorf("dvbsi: fetching next byte failed: %w", err)
			return
		}
	}

	if i.Offset() < offsetEnd {
		if d.AdditionalInfo, err = i.NextBytes(offsetEnd - i.Offset()); err != nil {
			err = fmt.Errorf("dvbsi: fetching next bytes failed: %w", err)
			return
		}
	}
	return
}

func (d *DescriptorEnhancedAC3) length() (ret uint8) {
	ret = 1 // flags
	ret += b2u(d.HasComponentType)
	ret += b2u(d.HasBSID)
	ret += b2u(d.HasMainID)
	ret += b2u(d.HasASVC)
	ret += b2u(d.HasSubStream1)
	ret += b2u(d.HasSubStream2)
	ret += b2u(d.HasSubStream3)
	ret += uint8(len(d.AdditionalInfo))
	return
}

func (d *DescriptorEnhancedAC3) print(l astikit.CompleteLogger) {
	l.Debugf("dvbsi:   component type: %d (%v) | bsid: %d (%v) | main id: %d (%v) | asvc: %d (%v) | substreams: %d/%d/%d",
		d.ComponentType, d.HasComponentType, d.BSID, d.HasBSID, d.MainID, d.HasMainID, d.ASVC, d.HasASVC,
		d.SubStream1, d.SubStream2, d.SubStream3)
}

func (d *DescriptorEnhancedAC3) write(w *astikit.BitsWriter) (int, error) {
	b := astikit.NewBitsWriterBatch(w)

	length := d.length()
	b.Write(uint8(d.Tag))
	b.Write(length)

	b.Write(d.HasComponentType)
	b.Write(d.HasBSID)
	b.Write(d.HasMainID)
	b.Write(d.HasASVC)
	b.Write(d.MixInfoExists)
	b.Write(d.HasSubStream1)
	b.Write(d.HasSubStream2)
	b.Write(d.HasSubStream3)

	if d.HasComponentType {
		b.Write(d.ComponentType)
	}
	if d.HasBSID {
		b.Write(d.BSID)
	}
	if d.HasMainID {
		b.Write(d.MainID)
	}
	if d.HasASVC {
		b.Write(d.ASVC)
	}
	if d.HasSubStream1 {
		b.Write(d.SubStream1)
	}
	if d.HasSubStream2 {
		b.Write(d.SubStream2)
	}
	if d.HasSubStream3 {
		b.Write(d.SubStream3)
	}

	b.Write(d.AdditionalInfo)

	return int(length) + 2, b.Err()
}
