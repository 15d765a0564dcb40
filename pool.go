package dvbsi

import "sync"

// poolOfPayload keeps payload buffers for generic descriptors. A descriptor
// payload is at most 255 bytes so pooled buffers never grow past that.
var poolOfPayload = &payloadPool{
	sp: sync.Pool{
		New: func() interface{} {
			return &payloadBuffer{s: make([]byte, 0, 256)}
		},
	},
}

// payloadBuffer is an object containing a payload slice
type payloadBuffer struct {
	s []byte
}

type payloadPool struct {
	sp sync.Pool
}

// get returns a payloadBuffer with a byte slice of a 'size' length
func (pp *payloadPool) get(size int) (b *payloadBuffer) {
	b, _ = pp.sp.Get().(*payloadBuffer)
	if cap(b.s) >= size {
		b.s = b.s[:size]
	} else {
		b.s = make([]byte, size)
	}
	return
}

// put returns the buffer back to the pool
// Don't use the buffer after a call to put
func (pp *payloadPool) put(b *payloadBuffer) {
	pp.sp.Put(b)
}
