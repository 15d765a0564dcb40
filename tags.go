package dvbsi

type DescriptorTag uint8

// Descriptor tags defined by ISO/IEC 13818-1
// Page: 81 | Chapter: 2.6 | Link: http://ecee.colorado.edu/~ecen5653/ecen5653/papers/iso13818-1.pdf
const (
	DescriptorTagVideoStream                DescriptorTag = 0x02
	DescriptorTagAudioStream                DescriptorTag = 0x03
	DescriptorTagHierarchy                  DescriptorTag = 0x04
	DescriptorTagRegistration               DescriptorTag = 0x05
	DescriptorTagDataStreamAlignment        DescriptorTag = 0x06
	DescriptorTagTargetBackgroundGrid       DescriptorTag = 0x07
	DescriptorTagVideoWindow                DescriptorTag = 0x08
	DescriptorTagConditionalAccess          DescriptorTag = 0x09
	DescriptorTagISO639LanguageAndAudioType DescriptorTag = 0x0a
	DescriptorTagSystemClock                DescriptorTag = 0x0b
	DescriptorTagMultiplexBufferUtilization DescriptorTag = 0x0c
	DescriptorTagCopyright                  DescriptorTag = 0x0d
	DescriptorTagMaximumBitrate             DescriptorTag = 0x0e
	DescriptorTagPrivateDataIndicator       DescriptorTag = 0x0f
	DescriptorTagSmoothingBuffer            DescriptorTag = 0x10
	DescriptorTagSTD                        DescriptorTag = 0x11
	DescriptorTagIBP                        DescriptorTag = 0x12
	DescriptorTagMPEG4Video                 DescriptorTag = 0x1b
	DescriptorTagMPEG4Audio                 DescriptorTag = 0x1c
	DescriptorTagIOD                        DescriptorTag = 0x1d
	DescriptorTagSL                         DescriptorTag = 0x1e
	DescriptorTagFMC                        DescriptorTag = 0x1f
	DescriptorTagExternalESID               DescriptorTag = 0x20
	DescriptorTagMuxCode                    DescriptorTag = 0x21
	DescriptorTagFmxBufferSize              DescriptorTag = 0x22
	DescriptorTagMultiplexBuffer            DescriptorTag = 0x23
	DescriptorTagContentLabeling            DescriptorTag = 0x24
	DescriptorTagMetadataPointer            DescriptorTag = 0x25
	DescriptorTagMetadata                   DescriptorTag = 0x26
	DescriptorTagMetadataSTD                DescriptorTag = 0x27
	DescriptorTagAVCVideo                   DescriptorTag = 0x28
	DescriptorTagIPMP                       DescriptorTag = 0x29
	DescriptorTagAVCTimingAndHRD            DescriptorTag = 0x2a
	DescriptorTagMPEG2AACAudio              DescriptorTag = 0x2b
	DescriptorTagFlexMuxTiming              DescriptorTag = 0x2c
)

// Descriptor tags defined by ETSI EN 300 468
// Chapter: 6.1 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
const (
	DescriptorTagNetworkName               DescriptorTag = 0x40
	DescriptorTagServiceList               DescriptorTag = 0x41
	DescriptorTagStuffing                  DescriptorTag = 0x42
	DescriptorTagSatelliteDeliverySystem   DescriptorTag = 0x43
	DescriptorTagCableDeliverySystem       DescriptorTag = 0x44
	DescriptorTagVBIData                   DescriptorTag = 0x45
	DescriptorTagVBITeletext               DescriptorTag = 0x46
	DescriptorTagBouquetName               DescriptorTag = 0x47
	DescriptorTagService                   DescriptorTag = 0x48
	DescriptorTagCountryAvailability       DescriptorTag = 0x49
	DescriptorTagLinkage                   DescriptorTag = 0x4a
	DescriptorTagNVODReference             DescriptorTag = 0x4b
	DescriptorTagTimeShiftedService        DescriptorTag = 0x4c
	DescriptorTagShortEvent                DescriptorTag = 0x4d
	DescriptorTagExtendedEvent             DescriptorTag = 0x4e
	DescriptorTagTimeShiftedEvent          DescriptorTag = 0x4f
	DescriptorTagComponent                 DescriptorTag = 0x50
	DescriptorTagMosaic                    DescriptorTag = 0x51
	DescriptorTagStreamIdentifier          DescriptorTag = 0x52
	DescriptorTagCAIdentifier              DescriptorTag = 0x53
	DescriptorTagContent                   DescriptorTag = 0x54
	DescriptorTagParentalRating            DescriptorTag = 0x55
	DescriptorTagTeletext                  DescriptorTag = 0x56
	DescriptorTagTelephone                 DescriptorTag = 0x57
	DescriptorTagLocalTimeOffset           DescriptorTag = 0x58
	DescriptorTagSubtitling                DescriptorTag = 0x59
	DescriptorTagTerrestrialDeliverySystem DescriptorTag = 0x5a
	DescriptorTagMultilingualNetworkName   DescriptorTag = 0x5b
	DescriptorTagMultilingualBouquetName   DescriptorTag = 0x5c
	DescriptorTagMultilingualServiceName   DescriptorTag = 0x5d
	DescriptorTagMultilingualComponent     DescriptorTag = 0x5e
	DescriptorTagPrivateDataSpecifier      DescriptorTag = 0x5f
	DescriptorTagServiceMove               DescriptorTag = 0x60
	DescriptorTagShortSmoothingBuffer      DescriptorTag = 0x61
	DescriptorTagFrequencyList             DescriptorTag = 0x62
	DescriptorTagPartialTransportStream    DescriptorTag = 0x63
	DescriptorTagDataBroadcast             DescriptorTag = 0x64
	DescriptorTagScrambling                DescriptorTag = 0x65
	DescriptorTagDataBroadcastID           DescriptorTag = 0x66
	DescriptorTagTransportStream           DescriptorTag = 0x67
	DescriptorTagDSNG                      DescriptorTag = 0x68
	DescriptorTagPDC                       DescriptorTag = 0x69
	DescriptorTagAC3                       DescriptorTag = 0x6a
	DescriptorTagAncillaryData             DescriptorTag = 0x6b
	DescriptorTagCellList                  DescriptorTag = 0x6c
	DescriptorTagCellFrequencyLink         DescriptorTag = 0x6d
	DescriptorTagAnnouncementSupport       DescriptorTag = 0x6e
	DescriptorTagApplicationSignalling     DescriptorTag = 0x6f
	DescriptorTagAdaptationFieldData       DescriptorTag = 0x70
	DescriptorTagServiceIdentifier         DescriptorTag = 0x71
	DescriptorTagServiceAvailability       DescriptorTag = 0x72
	DescriptorTagDefaultAuthority          DescriptorTag = 0x73
	DescriptorTagRelatedContent            DescriptorTag = 0x74
	DescriptorTagTVAID                     DescriptorTag = 0x75
	DescriptorTagContentIdentifier         DescriptorTag = 0x76
	DescriptorTagTimeSliceFECIdentifier    DescriptorTag = 0x77
	DescriptorTagECMRepetitionRate         DescriptorTag = 0x78
	DescriptorTagS2SatelliteDeliverySystem DescriptorTag = 0x79
	DescriptorTagEnhancedAC3               DescriptorTag = 0x7a
	DescriptorTagDTS                       DescriptorTag = 0x7b
	DescriptorTagAAC                       DescriptorTag = 0x7c
	DescriptorTagXAITLocation              DescriptorTag = 0x7d
	DescriptorTagFTAContentManagement      DescriptorTag = 0x7e
	DescriptorTagExtension                 DescriptorTag = 0x7f
	DescriptorTagLogicalChannelNumber      DescriptorTag = 0x83
)

// Descriptor tags defined by SCTE 35 2004
const (
	DescriptorTagCUEIdentifier DescriptorTag = 0x8a
)

// Descriptor tags defined by ATSC A/65:2009
// These reuse numeric values of the DVB and ISDB tag spaces, dispatch is decided
// by the registry the caller selected
const (
	DescriptorTagATSCStuffing            DescriptorTag = 0x80
	DescriptorTagATSCAC3Audio            DescriptorTag = 0x81
	DescriptorTagATSCCaptionService      DescriptorTag = 0x86
	DescriptorTagATSCContentAdvisory     DescriptorTag = 0x87
	DescriptorTagATSCExtendedChannelName DescriptorTag = 0xa0
	DescriptorTagATSCServiceLocation     DescriptorTag = 0xa1
	DescriptorTagATSCTimeShiftedService  DescriptorTag = 0xa2
	DescriptorTagATSCComponentName       DescriptorTag = 0xa3
	DescriptorTagATSCDCCDepartingRequest DescriptorTag = 0xa8
	DescriptorTagATSCDCCArrivingRequest  DescriptorTag = 0xa9
	DescriptorTagATSCRedistributionCtrl  DescriptorTag = 0xaa
	DescriptorTagATSCGenre               DescriptorTag = 0xab
	DescriptorTagATSCPrivateInformation  DescriptorTag = 0xad
)

// Descriptor tags defined by ISDB, ABNT NBR 15603-1 2007
const (
	DescriptorTagISDBCarouselID                  DescriptorTag = 0x13
	DescriptorTagISDBAssociationTag              DescriptorTag = 0x14
	DescriptorTagISDBDeferredAssociationTags     DescriptorTag = 0x15
	DescriptorTagISDBHierarchicalTransmission    DescriptorTag = 0xc0
	DescriptorTagISDBDigitalCopyControl          DescriptorTag = 0xc1
	DescriptorTagISDBNetworkIdentifier           DescriptorTag = 0xc2
	DescriptorTagISDBPartialTransportStreamTime  DescriptorTag = 0xc3
	DescriptorTagISDBAudioComponent              DescriptorTag = 0xc4
	DescriptorTagISDBHyperlink                   DescriptorTag = 0xc5
	DescriptorTagISDBTargetArea                  DescriptorTag = 0xc6
	DescriptorTagISDBDataContents                DescriptorTag = 0xc7
	DescriptorTagISDBVideoDecodeControl          DescriptorTag = 0xc8
	DescriptorTagISDBDownloadContent             DescriptorTag = 0xc9
	DescriptorTagISDBCAEMMTS                     DescriptorTag = 0xca
	DescriptorTagISDBCAContractInformation       DescriptorTag = 0xcb
	DescriptorTagISDBCAService                   DescriptorTag = 0xcc
	DescriptorTagISDBTSInformation               DescriptorTag = 0xcd
	DescriptorTagISDBExtendedBroadcaster         DescriptorTag = 0xce
	DescriptorTagISDBLogoTransmission            DescriptorTag = 0xcf
	DescriptorTagISDBBasicLocalEvent             DescriptorTag = 0xd0
	DescriptorTagISDBReference                   DescriptorTag = 0xd1
	DescriptorTagISDBNodeRelation                DescriptorTag = 0xd2
	DescriptorTagISDBShortNodeInformation        DescriptorTag = 0xd3
	DescriptorTagISDBSTCReference                DescriptorTag = 0xd4
	DescriptorTagISDBSeries                      DescriptorTag = 0xd5
	DescriptorTagISDBEventGroup                  DescriptorTag = 0xd6
	DescriptorTagISDBSIParameter                 DescriptorTag = 0xd7
	DescriptorTagISDBBroadcasterName             DescriptorTag = 0xd8
	DescriptorTagISDBComponentGroup              DescriptorTag = 0xd9
	DescriptorTagISDBSIPrimeTS                   DescriptorTag = 0xda
	DescriptorTagISDBBoardInformation            DescriptorTag = 0xdb
	DescriptorTagISDBLDTLinkage                  DescriptorTag = 0xdc
	DescriptorTagISDBConnectedTransmission       DescriptorTag = 0xdd
	DescriptorTagISDBContentAvailability         DescriptorTag = 0xde
	DescriptorTagISDBServiceGroup                DescriptorTag = 0xe0
	DescriptorTagISDBCarouselCompatibleComposite DescriptorTag = 0xf7
	DescriptorTagISDBConditionalPlayback         DescriptorTag = 0xf8
	DescriptorTagISDBTDeliverySystem             DescriptorTag = 0xfa
	DescriptorTagISDBPartialReception            DescriptorTag = 0xfb
	DescriptorTagISDBEmergencyInformation        DescriptorTag = 0xfc
	DescriptorTagISDBDataComponent               DescriptorTag = 0xfd
	DescriptorTagISDBSystemManagement            DescriptorTag = 0xfe
)

type DescriptorExtensionTag uint8

// Extension descriptor tags, reached through DescriptorTagExtension
// Chapter: 6.3 | Link: https://www.etsi.org/deliver/etsi_en/300400_300499/300468/01.15.01_60/en_300468v011501p.pdf
const (
	DescriptorTagExtensionImageIcon           DescriptorExtensionTag = 0x00
	DescriptorTagExtensionCPCMDelivery        DescriptorExtensionTag = 0x01
	DescriptorTagExtensionCP                  DescriptorExtensionTag = 0x02
	DescriptorTagExtensionCPIdentifier        DescriptorExtensionTag = 0x03
	DescriptorTagExtensionT2DeliverySystem    DescriptorExtensionTag = 0x04
	DescriptorTagExtensionSHDeliverySystem    DescriptorExtensionTag = 0x05
	DescriptorTagExtensionSupplementaryAudio  DescriptorExtensionTag = 0x06
	DescriptorTagExtensionNetworkChangeNotify DescriptorExtensionTag = 0x07
	DescriptorTagExtensionMessage             DescriptorExtensionTag = 0x08
	DescriptorTagExtensionTargetRegion        DescriptorExtensionTag = 0x09
	DescriptorTagExtensionTargetRegionName    DescriptorExtensionTag = 0x0a
	DescriptorTagExtensionServiceRelocated    DescriptorExtensionTag = 0x0b
)
