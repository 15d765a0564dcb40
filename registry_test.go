package dvbsi

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 0xa1 is an ATSC service location descriptor but plain user defined data in
// the DVB tag space, the active registry decides
func TestRegistryTagSpaces(t *testing.T) {
	bs := []byte{0xa1, 9, 0xe1, 0xe4, 1, 0x02, 0xe0, 0x31, 'e', 'n', 'g'}

	ds, err := dvbReg.Parse(bs)
	assert.NoError(t, err)
	if assert.Len(t, ds, 1) {
		d, ok := ds[0].(*DescriptorUserDefined)
		if assert.True(t, ok) {
			assert.Equal(t, bs[2:], d.Data)
		}
	}

	ds, err = atscReg.Parse(bs)
	assert.NoError(t, err)
	if assert.Len(t, ds, 1) {
		d, ok := ds[0].(*DescriptorATSCServiceLocation)
		if assert.True(t, ok) {
			assert.Equal(t, uint16(0x1e4), d.PCRPID)
		}
	}
}

// Tags the ATSC tables name without decoding must still come back raw
func TestRegistryNameOnlyEntry(t *testing.T) {
	bs := []byte{uint8(DescriptorTagATSCAC3Audio), 2, 1, 2}
	ds, err := atscReg.Parse(bs)
	assert.NoError(t, err)
	defer ds.Close()
	if assert.Len(t, ds, 1) {
		d, ok := ds[0].(*DescriptorGeneric)
		if assert.True(t, ok) {
			assert.Equal(t, []byte{1, 2}, d.Data())
		}
	}
	assert.Equal(t, "atsc_ac3_audio_descriptor", atscReg.Name(DescriptorTagATSCAC3Audio))
}

func TestRegistryName(t *testing.T) {
	assert.Equal(t, "service_descriptor", dvbReg.Name(DescriptorTagService))
	assert.Equal(t, "user_defined_descriptor", dvbReg.Name(0xa1))
	assert.Equal(t, "atsc_service_location_descriptor", atscReg.Name(DescriptorTagATSCServiceLocation))
	assert.Equal(t, "partial_reception_descriptor", isdbReg.Name(DescriptorTagISDBPartialReception))
	assert.Equal(t, "unknown_descriptor", dvbReg.Name(0x3c))
	assert.Equal(t, "unknown_descriptor", atscReg.Name(DescriptorTagNetworkName))
}

func TestRegistryExtensionName(t *testing.T) {
	assert.Equal(t, "supplementary_audio_descriptor", dvbReg.ExtensionName(DescriptorTagExtensionSupplementaryAudio))
	assert.Equal(t, "unknown_descriptor", dvbReg.ExtensionName(0x30))
}

// The ISDB space keeps the whole DVB base
func TestRegistryISDBInheritsDVB(t *testing.T) {
	bs := []byte{uint8(DescriptorTagService), 8, 1, 2, 'p', '1', 3, 's', 'v', 'c'}
	ds, err := isdbReg.Parse(bs)
	assert.NoError(t, err)
	if assert.Len(t, ds, 1) {
		_, ok := ds[0].(*DescriptorService)
		assert.True(t, ok)
	}
}

func TestRegistryPrint(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewRegistry(StandardDVB, RegistryOptLogger(log.New(buf, "", 0)))

	ds, err := r.Parse([]byte{uint8(DescriptorTagService), 8, 1, 2, 'p', '1', 3, 's', 'v', 'c'})
	assert.NoError(t, err)

	r.Print(ds)
	assert.Contains(t, buf.String(), "service_descriptor")
	assert.Contains(t, buf.String(), "svc")
}

// Unknown extension tags print with the same name fallback the registry reports
func TestRegistryPrintUnknownExtension(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewRegistry(StandardDVB, RegistryOptLogger(log.New(buf, "", 0)))

	ds, err := r.Parse([]byte{uint8(DescriptorTagExtension), 4, 0x30, 1, 2, 3})
	assert.NoError(t, err)

	r.Print(ds)
	assert.Contains(t, buf.String(), "unknown_descriptor")
}

// Parse must be safe to call concurrently on a shared registry
func TestRegistryConcurrentParse(t *testing.T) {
	bs := []byte{uint8(DescriptorTagStreamIdentifier), 1, 7, 0x3c, 2, 1, 2}

	done := make(chan struct{})
	for j := 0; j < 4; j++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for k := 0; k < 100; k++ {
				ds, err := dvbReg.Parse(bs)
				assert.NoError(t, err)
				assert.Len(t, ds, 2)
				ds.Close()
			}
		}()
	}
	for j := 0; j < 4; j++ {
		<-done
	}
}
