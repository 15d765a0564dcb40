package dvbsi

import (
	"github.com/asticode/go-astikit"
)

// Standard selects the tag space a registry dispatches with. Numeric tag values
// above 0x7f are reused across standards with incompatible meanings, so the
// caller picks the standard of the stream it is parsing and the engine never
// has to guess.
type Standard int

const (
	StandardDVB Standard = iota
	StandardATSC
	StandardISDB
)

type descriptorEntry struct {
	name   string
	parser DescriptorParser
}

// Registry maps a descriptor tag to its parse behavior. It is immutable after
// NewRegistry returns and safe for concurrent use by any number of Parse calls,
// each call operating on its own buffer and producing its own chain.
type Registry struct {
	entries *[256]descriptorEntry
	l       astikit.CompleteLogger
}

// NewRegistry returns the registry for one standard. Adding support for a new
// tag means adding one row to the standard's table, nothing else changes.
func NewRegistry(s Standard, opts ...func(*Registry)) (r *Registry) {
	r = &Registry{
		l: astikit.AdaptStdLogger(nil),
	}
	switch s {
	case StandardATSC:
		r.entries = &atscTable
	case StandardISDB:
		r.entries = &isdbTable
	default:
		r.entries = &dvbTable
	}

	for _, opt := range opts {
		opt(r)
	}
	return
}

// RegistryOptLogger returns the option to set the diagnostics logger, used by
// Print and to surface descriptors skipped during Parse
func RegistryOptLogger(l astikit.StdLogger) func(*Registry) {
	return func(r *Registry) {
		r.l = astikit.AdaptStdLogger(l)
	}
}

func (r *Registry) parser(t DescriptorTag) DescriptorParser {
	return r.entries[t].parser
}

// Name returns the standard's name for a tag, or "unknown_descriptor"
func (r *Registry) Name(t DescriptorTag) string {
	if n := r.entries[t].name; n != "" {
		return n
	}
	return "unknown_descriptor"
}

// ExtensionName returns the name of an extension descriptor tag, or
// "unknown_descriptor"
func (r *Registry) ExtensionName(t DescriptorExtensionTag) string {
	return extensionName(t)
}

// Print writes a human readable dump of the chain to l, one header line per
// descriptor plus the fields of the types the registry decodes. It never
// mutates the chain.
func (r *Registry) Print(ds Descriptors) {
	for _, d := range ds {
		h := d.header()
		r.l.Infof("dvbsi: 0x%02x %s (%d bytes)", uint8(h.Tag), r.Name(h.Tag), h.Length)
		d.print(r.l)
	}
}

// Tables are filled at init and never mutated afterwards
var (
	dvbTable  [256]descriptorEntry
	atscTable [256]descriptorEntry
	isdbTable [256]descriptorEntry
)

func register(tbl *[256]descriptorEntry, t DescriptorTag, name string, p DescriptorParser) {
	tbl[t] = descriptorEntry{name: name, parser: p}
}

// registerMPEG fills the ISO/IEC 13818-1 base shared by every standard
func registerMPEG(tbl *[256]descriptorEntry) {
	register(tbl, DescriptorTagRegistration, "registration_descriptor", newDescriptorRegistration)
	register(tbl, DescriptorTagDataStreamAlignment, "data_stream_alignment_descriptor", newDescriptorDataStreamAlignment)
	register(tbl, DescriptorTagISO639LanguageAndAudioType, "iso639_language_descriptor", newDescriptorISO639LanguageAndAudioType)
	register(tbl, DescriptorTagMaximumBitrate, "maximum_bitrate_descriptor", newDescriptorMaximumBitrate)
	register(tbl, DescriptorTagPrivateDataIndicator, "private_data_indicator_descriptor", newDescriptorPrivateDataIndicator)
	register(tbl, DescriptorTagAVCVideo, "avc_video_descriptor", newDescriptorAVCVideo)
}

// registerDVB fills the ETSI EN 300 468 tag space
func registerDVB(tbl *[256]descriptorEntry) {
	register(tbl, DescriptorTagNetworkName, "network_name_descriptor", newDescriptorNetworkName)
	register(tbl, DescriptorTagVBITeletext, "vbi_teletext_descriptor", newDescriptorTeletext)
	register(tbl, DescriptorTagService, "service_descriptor", newDescriptorService)
	register(tbl, DescriptorTagShortEvent, "short_event_descriptor", newDescriptorShortEvent)
	register(tbl, DescriptorTagExtendedEvent, "extended_event_descriptor", newDescriptorExtendedEvent)
	register(tbl, DescriptorTagComponent, "component_descriptor", newDescriptorComponent)
	register(tbl, DescriptorTagStreamIdentifier, "stream_identifier_descriptor", newDescriptorStreamIdentifier)
	register(tbl, DescriptorTagContent, "content_descriptor", newDescriptorContent)
	register(tbl, DescriptorTagParentalRating, "parental_rating_descriptor", newDescriptorParentalRating)
	register(tbl, DescriptorTagTeletext, "teletext_descriptor", newDescriptorTeletext)
	register(tbl, DescriptorTagLocalTimeOffset, "local_time_offset_descriptor", newDescriptorLocalTimeOffset)
	register(tbl, DescriptorTagSubtitling, "subtitling_descriptor", newDescriptorSubtitling)
	register(tbl, DescriptorTagPrivateDataSpecifier, "private_data_specifier_descriptor", newDescriptorPrivateDataSpecifier)
	register(tbl, DescriptorTagAC3, "ac3_descriptor", newDescriptorAC3)
	register(tbl, DescriptorTagEnhancedAC3, "enhanced_ac3_descriptor", newDescriptorEnhancedAC3)
	register(tbl, DescriptorTagExtension, "extension_descriptor", newDescriptorExtension)
}

func init() {
	registerMPEG(&dvbTable)
	registerDVB(&dvbTable)
	register(&dvbTable, DescriptorTagCUEIdentifier, "cue_identifier_descriptor", newDescriptorCUEIdentifier)
	// 0x80..0xfe is the DVB user defined space
	for t := 0x80; t < 0xff; t++ {
		if dvbTable[t].parser == nil {
			register(&dvbTable, DescriptorTag(t), "user_defined_descriptor", newDescriptorUserDefined)
		}
	}

	registerMPEG(&atscTable)
	register(&atscTable, DescriptorTagCUEIdentifier, "cue_identifier_descriptor", newDescriptorCUEIdentifier)
	register(&atscTable, DescriptorTagATSCAC3Audio, "atsc_ac3_audio_descriptor", nil)
	register(&atscTable, DescriptorTagATSCCaptionService, "atsc_caption_service_descriptor", newDescriptorATSCCaptionService)
	register(&atscTable, DescriptorTagATSCExtendedChannelName, "atsc_extended_channel_name_descriptor", newDescriptorATSCExtendedChannelName)
	register(&atscTable, DescriptorTagATSCServiceLocation, "atsc_service_location_descriptor", newDescriptorATSCServiceLocation)
	register(&atscTable, DescriptorTagATSCComponentName, "atsc_component_name_descriptor", nil)

	registerMPEG(&isdbTable)
	registerDVB(&isdbTable)
	register(&isdbTable, DescriptorTagISDBPartialReception, "partial_reception_descriptor", newDescriptorISDBPartialReception)
	register(&isdbTable, DescriptorTagISDBDataComponent, "data_component_descriptor", newDescriptorISDBDataComponent)
	register(&isdbTable, DescriptorTagISDBDigitalCopyControl, "digital_copy_control_descriptor", nil)
}
