package dvbsi

import (
	"bytes"
	"testing"
	"time"

	"github.com/asticode/go-astikit"
	"github.com/stretchr/testify/assert"
)

var (
	dvbReg  = NewRegistry(StandardDVB)
	atscReg = NewRegistry(StandardATSC)
	isdbReg = NewRegistry(StandardISDB)
)

// assertDescriptorRoundTrip parses bs, compares the single resulting descriptor
// with expected and serializes it back to make sure the original bytes come out
func assertDescriptorRoundTrip(t *testing.T, r *Registry, bs []byte, expected Descriptor) {
	t.Helper()

	ds, err := r.Parse(bs)
	assert.NoError(t, err)
	if !assert.Len(t, ds, 1) {
		return
	}
	assert.Equal(t, expected, ds[0])

	buf := &bytes.Buffer{}
	w := astikit.NewBitsWriter(astikit.BitsWriterOptions{Writer: buf})
	n, err := ds.Write(w)
	assert.NoError(t, err)
	assert.Equal(t, len(bs), n)
	assert.Equal(t, bs, buf.Bytes())
}

func TestParseDescriptorsEmpty(t *testing.T) {
	ds, err := dvbReg.Parse(nil)
	assert.NoError(t, err)
	assert.Empty(t, ds)

	ds, err = dvbReg.Parse([]byte{})
	assert.NoError(t, err)
	assert.Empty(t, ds)
}

func TestParseDescriptorsTruncatedHeader(t *testing.T) {
	ds, err := dvbReg.Parse([]byte{uint8(DescriptorTagService)})
	assert.ErrorIs(t, err, ErrDescriptorHeaderTruncated)
	assert.Nil(t, ds)
}

func TestParseDescriptorsTruncatedPayload(t *testing.T) {
	// 10 bytes declared, 5 available
	ds, err := dvbReg.Parse([]byte{0x3c, 10, 1, 2, 3, 4, 5})
	assert.ErrorIs(t, err, ErrDescriptorPayloadTruncated)
	assert.Nil(t, ds)
}

func TestParseDescriptorsTruncatedAtEveryOffset(t *testing.T) {
	bs := []byte{
		uint8(DescriptorTagStreamIdentifier), 1, 7,
		uint8(DescriptorTagRegistration), 4, 'C', 'U', 'E', 'I',
		0x90, 2, 1, 2,
	}
	boundaries := map[int]int{0: 0, 3: 1, 9: 2, 13: 3}

	for cut := 0; cut <= len(bs); cut++ {
		ds, err := dvbReg.Parse(bs[:cut])
		if count, ok := boundaries[cut]; ok {
			assert.NoError(t, err, "cut %d", cut)
			assert.Len(t, ds, count, "cut %d", cut)
			ds.Close()
		} else {
			assert.Error(t, err, "cut %d", cut)
			assert.Nil(t, ds, "cut %d", cut)
		}
	}
}

func TestParseDescriptorsWireOrder(t *testing.T) {
	bs := []byte{
		uint8(DescriptorTagService), 8, ServiceTypeDigitalTelevisionService, 2, 'p', '1', 3, 's', 'v', 'c',
		0x3c, 3, 1, 2, 3,
	}
	ds, err := dvbReg.Parse(bs)
	assert.NoError(t, err)
	defer ds.Close()
	if !assert.Len(t, ds, 2) {
		return
	}

	s, ok := ds[0].(*DescriptorService)
	if assert.True(t, ok) {
		assert.Equal(t, []byte("p1"), s.Provider)
		assert.Equal(t, []byte("svc"), s.Name)
	}
	g, ok := ds[1].(*DescriptorGeneric)
	if assert.True(t, ok) {
		assert.Equal(t, DescriptorTag(0x3c), g.Tag)
		assert.Equal(t, []byte{1, 2, 3}, g.Data())
	}
	assert.Equal(t, uint16(len(bs)), calcDescriptorsLength(ds))
}

func TestParseDescriptorsSkipsMalformed(t *testing.T) {
	// The middle descriptor declares a 200 byte provider inside a 3 byte payload
	bs := []byte{
		uint8(DescriptorTagStreamIdentifier), 1, 7,
		uint8(DescriptorTagService), 3, 1, 200, 0,
		uint8(DescriptorTagStreamIdentifier), 1, 9,
	}
	ds, err := dvbReg.Parse(bs)
	assert.NoError(t, err)
	if !assert.Len(t, ds, 2) {
		return
	}
	assert.Equal(t, uint8(7), ds[0].(*DescriptorStreamIdentifier).ComponentTag)
	assert.Equal(t, uint8(9), ds[1].(*DescriptorStreamIdentifier).ComponentTag)
}

func TestParseDescriptorsSkipsOverrun(t *testing.T) {
	// The first descriptor decodes without error but consumes bytes of the
	// second one, so it must be dropped and the second one parsed cleanly
	bs := []byte{
		uint8(DescriptorTagService), 3, 1, 2, 0,
		uint8(DescriptorTagStreamIdentifier), 1, 9,
	}
	ds, err := dvbReg.Parse(bs)
	assert.NoError(t, err)
	if !assert.Len(t, ds, 1) {
		return
	}
	assert.Equal(t, uint8(9), ds[0].(*DescriptorStreamIdentifier).ComponentTag)
}

func TestDescriptorsClose(t *testing.T) {
	ds, err := dvbReg.Parse([]byte{0x3c, 2, 1, 2})
	assert.NoError(t, err)
	if !assert.Len(t, ds, 1) {
		return
	}
	g := ds[0].(*DescriptorGeneric)
	assert.Equal(t, []byte{1, 2}, g.Data())

	ds.Close()
	assert.Nil(t, g.Data())
	// Closing twice must be harmless
	ds.Close()

	var empty Descriptors
	empty.Close()
}

func TestDescriptorRegistration(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagRegistration), 6, 'C', 'U', 'E', 'I', 1, 2},
		&DescriptorRegistration{
			DescriptorHeader:             DescriptorHeader{Tag: DescriptorTagRegistration, Length: 6},
			AdditionalIdentificationInfo: []byte{1, 2},
			FormatIdentifier:             0x43554549,
		})
}

func TestDescriptorDataStreamAlignment(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagDataStreamAlignment), 1, DataStreamAligmentVideoAccessUnit},
		&DescriptorDataStreamAlignment{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagDataStreamAlignment, Length: 1},
			Type:             DataStreamAligmentVideoAccessUnit,
		})
}

func TestDescriptorISO639LanguageAndAudioType(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagISO639LanguageAndAudioType), 4, 'e', 'n', 'g', AudioTypeCleanEffects},
		&DescriptorISO639LanguageAndAudioType{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagISO639LanguageAndAudioType, Length: 4},
			Language:         [3]byte{'e', 'n', 'g'},
			Type:             AudioTypeCleanEffects,
		})
}

func TestDescriptorMaximumBitrate(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagMaximumBitrate), 3, 0xc0, 0x4e, 0x20},
		&DescriptorMaximumBitrate{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagMaximumBitrate, Length: 3},
			Bitrate:          1000000,
		})
}

func TestDescriptorPrivateDataIndicator(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagPrivateDataIndicator), 4, 0xde, 0xad, 0xbe, 0xef},
		&DescriptorPrivateDataIndicator{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagPrivateDataIndicator, Length: 4},
			Indicator:        0xdeadbeef,
		})
}

func TestDescriptorAVCVideo(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagAVCVideo), 4, 0x64, 0x80, 0x28, 0xbf},
		&DescriptorAVCVideo{
			DescriptorHeader:   DescriptorHeader{Tag: DescriptorTagAVCVideo, Length: 4},
			ConstraintSet0Flag: true,
			LevelIDC:           0x28,
			ProfileIDC:         0x64,
			AVCStillPresent:    true,
		})
}

func TestDescriptorNetworkName(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		append([]byte{uint8(DescriptorTagNetworkName), 7}, []byte("Network")...),
		&DescriptorNetworkName{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagNetworkName, Length: 7},
			Name:             []byte("Network"),
		})
}

func TestDescriptorService(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagService), 10, ServiceTypeDigitalTelevisionService, 4, 'p', 'r', 'o', 'v', 3, 's', 'v', 'c'},
		&DescriptorService{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagService, Length: 10},
			Name:             []byte("svc"),
			Provider:         []byte("prov"),
			Type:             ServiceTypeDigitalTelevisionService,
		})
}

func TestDescriptorShortEvent(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagShortEvent), 14, 'e', 'n', 'g', 5, 'E', 'v', 'e', 'n', 't', 4, 'T', 'e', 'x', 't'},
		&DescriptorShortEvent{
			DescriptorHeader:   DescriptorHeader{Tag: DescriptorTagShortEvent, Length: 14},
			EventName:          []byte("Event"),
			Text:               []byte("Text"),
			ISO639LanguageCode: [3]byte{'e', 'n', 'g'},
		})
}

func TestDescriptorExtendedEvent(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagExtendedEvent), 18, 0x12, 'e', 'n', 'g',
			9, 3, 'D', 'i', 'r', 4, 'J', 'o', 'h', 'n',
			3, 'E', 'x', 't'},
		&DescriptorExtendedEvent{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagExtendedEvent, Length: 18},
			Text:             []byte("Ext"),
			Items: []DescriptorExtendedEventItem{{
				Content:     []byte("John"),
				Description: []byte("Dir"),
			}},
			ISO639LanguageCode:   [3]byte{'e', 'n', 'g'},
			LastDescriptorNumber: 2,
			Number:               1,
		})
}

func TestDescriptorComponent(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagComponent), 10, 0x21, 3, 7, 'e', 'n', 'g', 'T', 'e', 'x', 't'},
		&DescriptorComponent{
			DescriptorHeader:   DescriptorHeader{Tag: DescriptorTagComponent, Length: 10},
			ISO639LanguageCode: [3]byte{'e', 'n', 'g'},
			Text:               []byte("Text"),
			ComponentTag:       7,
			ComponentType:      3,
			StreamContent:      1,
			StreamContentExt:   2,
		})
}

func TestDescriptorStreamIdentifier(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagStreamIdentifier), 1, 7},
		&DescriptorStreamIdentifier{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagStreamIdentifier, Length: 1},
			ComponentTag:     7,
		})
}

func TestDescriptorContent(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagContent), 2, 0x23, 4},
		&DescriptorContent{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagContent, Length: 2},
			Items: []DescriptorContentItem{{
				ContentNibbleLevel1: 2,
				ContentNibbleLevel2: 3,
				UserByte:            4,
			}},
		})
}

func TestDescriptorParentalRating(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagParentalRating), 4, 'F', 'R', 'A', 10},
		&DescriptorParentalRating{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagParentalRating, Length: 4},
			Items: []DescriptorParentalRatingItem{{
				CountryCode: [3]byte{'F', 'R', 'A'},
				Rating:      10,
			}},
		})
}

func TestDescriptorParentalRatingMinimumAge(t *testing.T) {
	assert.Equal(t, 13, DescriptorParentalRatingItem{Rating: 10}.MinimumAge())
	assert.Equal(t, 0, DescriptorParentalRatingItem{Rating: 0}.MinimumAge())
	assert.Equal(t, 0, DescriptorParentalRatingItem{Rating: 0x11}.MinimumAge())
}

func TestDescriptorTeletext(t *testing.T) {
	expected := &DescriptorTeletext{
		DescriptorHeader: DescriptorHeader{Tag: DescriptorTagTeletext, Length: 5},
		Items: []DescriptorTeletextItem{{
			Language: [3]byte{'e', 'n', 'g'},
			Magazine: 1,
			Page:     55,
			Type:     TeletextTypeTeletextSubtitlePage,
		}},
	}
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagTeletext), 5, 'e', 'n', 'g', 0x11, 0x55}, expected)

	// The VBI teletext payload is identical, only the tag differs
	vbi := *expected
	vbi.DescriptorHeader = DescriptorHeader{Tag: DescriptorTagVBITeletext, Length: 5}
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagVBITeletext), 5, 'e', 'n', 'g', 0x11, 0x55}, &vbi)
}

func TestDescriptorLocalTimeOffset(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagLocalTimeOffset), 13, 'F', 'R', 'A', 0x06,
			0x02, 0x00, 0xc0, 0x79, 0x12, 0x45, 0x00, 0x01, 0x00},
		&DescriptorLocalTimeOffset{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagLocalTimeOffset, Length: 13},
			Items: []DescriptorLocalTimeOffsetItem{{
				LocalTimeOffset: 2 * time.Hour,
				NextTimeOffset:  time.Hour,
				TimeOfChange:    time.Date(1993, time.October, 13, 12, 45, 0, 0, time.UTC),
				CountryCode:     [3]byte{'F', 'R', 'A'},
				CountryRegionID: 1,
			}},
		})
}

func TestDescriptorSubtitling(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagSubtitling), 8, 'e', 'n', 'g', 16, 0x00, 0x01, 0x00, 0x02},
		&DescriptorSubtitling{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagSubtitling, Length: 8},
			Items: []DescriptorSubtitlingItem{{
				Language:          [3]byte{'e', 'n', 'g'},
				Type:              16,
				CompositionPageID: 1,
				AncillaryPageID:   2,
			}},
		})
}

func TestDescriptorPrivateDataSpecifier(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagPrivateDataSpecifier), 4, 0x00, 0x00, 0x00, 0x28},
		&DescriptorPrivateDataSpecifier{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagPrivateDataSpecifier, Length: 4},
			Specifier:        0x28,
		})
}

func TestDescriptorAC3(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagAC3), 2, 0x8f, 10},
		&DescriptorAC3{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagAC3, Length: 2},
			ComponentType:    10,
			HasComponentType: true,
		})
}

func TestDescriptorEnhancedAC3(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagEnhancedAC3), 3, 0x4c, 8, 3},
		&DescriptorEnhancedAC3{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagEnhancedAC3, Length: 3},
			BSID:             8,
			HasBSID:          true,
			HasSubStream1:    true,
			MixInfoExists:    true,
			SubStream1:       3,
		})
}

func TestDescriptorExtensionSupplementaryAudio(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagExtension), 5, uint8(DescriptorTagExtensionSupplementaryAudio), 0x87, 'e', 'n', 'g'},
		&DescriptorExtension{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagExtension, Length: 5},
			ExtensionTag:     DescriptorTagExtensionSupplementaryAudio,
			Extended: &DescriptorExtensionSupplementaryAudio{
				LanguageCode:            [3]byte{'e', 'n', 'g'},
				EditorialClassification: 1,
				HasLanguageCode:         true,
				MixType:                 true,
			},
		})
}

func TestDescriptorExtensionMessage(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagExtension), 10, uint8(DescriptorTagExtensionMessage), 1, 'e', 'n', 'g', 'h', 'e', 'l', 'l', 'o'},
		&DescriptorExtension{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagExtension, Length: 10},
			ExtensionTag:     DescriptorTagExtensionMessage,
			Extended: &DescriptorExtensionMessage{
				ISO639LanguageCode: [3]byte{'e', 'n', 'g'},
				Message:            []byte("hello"),
				MessageID:          1,
			},
		})
}

func TestDescriptorExtensionUnknown(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{uint8(DescriptorTagExtension), 4, 0x30, 1, 2, 3},
		&DescriptorExtension{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagExtension, Length: 4},
			ExtensionTag:     0x30,
			Unknown:          []byte{1, 2, 3},
		})
}

func TestDescriptorCUEIdentifier(t *testing.T) {
	expected := &DescriptorCUEIdentifier{
		DescriptorHeader: DescriptorHeader{Tag: DescriptorTagCUEIdentifier, Length: 1},
		CueStreamType:    CueStreamTypeAllCommands,
	}
	bs := []byte{uint8(DescriptorTagCUEIdentifier), 1, CueStreamTypeAllCommands}
	assertDescriptorRoundTrip(t, dvbReg, bs, expected)
	assertDescriptorRoundTrip(t, atscReg, bs, expected)
}

func TestDescriptorUserDefined(t *testing.T) {
	assertDescriptorRoundTrip(t, dvbReg,
		[]byte{0x90, 3, 1, 2, 3},
		&DescriptorUserDefined{
			DescriptorHeader: DescriptorHeader{Tag: 0x90, Length: 3},
			Data:             []byte{1, 2, 3},
		})
}

func TestDescriptorATSCServiceLocation(t *testing.T) {
	assertDescriptorRoundTrip(t, atscReg,
		[]byte{uint8(DescriptorTagATSCServiceLocation), 9, 0xe1, 0xe4, 1, 0x02, 0xe0, 0x31, 'e', 'n', 'g'},
		&DescriptorATSCServiceLocation{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagATSCServiceLocation, Length: 9},
			Elements: []DescriptorATSCServiceLocationElement{{
				ISO639LanguageCode: [3]byte{'e', 'n', 'g'},
				ElementaryPID:      0x31,
				StreamType:         0x02,
			}},
			PCRPID: 0x1e4,
		})
}

func TestDescriptorATSCExtendedChannelName(t *testing.T) {
	assertDescriptorRoundTrip(t, atscReg,
		[]byte{uint8(DescriptorTagATSCExtendedChannelName), 3, 1, 2, 3},
		&DescriptorATSCExtendedChannelName{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagATSCExtendedChannelName, Length: 3},
			LongChannelName:  []byte{1, 2, 3},
		})
}

func TestDescriptorATSCCaptionService(t *testing.T) {
	assertDescriptorRoundTrip(t, atscReg,
		[]byte{uint8(DescriptorTagATSCCaptionService), 7, 0xe1, 'e', 'n', 'g', 0xc2, 0x7f, 0xff},
		&DescriptorATSCCaptionService{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagATSCCaptionService, Length: 7},
			Services: []DescriptorATSCCaptionServiceItem{{
				Language:             [3]byte{'e', 'n', 'g'},
				CaptionServiceNumber: 2,
				IsDigital:            true,
				WideAspectRatio:      true,
			}},
		})
}

func TestDescriptorISDBPartialReception(t *testing.T) {
	assertDescriptorRoundTrip(t, isdbReg,
		[]byte{uint8(DescriptorTagISDBPartialReception), 4, 0x04, 0x00, 0x04, 0x08},
		&DescriptorISDBPartialReception{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagISDBPartialReception, Length: 4},
			ServiceIDs:       []uint16{0x400, 0x408},
		})
}

func TestDescriptorISDBDataComponent(t *testing.T) {
	assertDescriptorRoundTrip(t, isdbReg,
		[]byte{uint8(DescriptorTagISDBDataComponent), 4, 0x00, 0x08, 0x3d, 0x00},
		&DescriptorISDBDataComponent{
			DescriptorHeader: DescriptorHeader{Tag: DescriptorTagISDBDataComponent, Length: 4},
			AdditionalInfo:   []byte{0x3d, 0x00},
			DataComponentID:  0x08,
		})
}
