package dvbsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayloadPool(t *testing.T) {
	b := poolOfPayload.get(10)
	assert.Len(t, b.s, 10)
	poolOfPayload.put(b)

	b = poolOfPayload.get(0)
	assert.Len(t, b.s, 0)
	poolOfPayload.put(b)

	b = poolOfPayload.get(255)
	assert.Len(t, b.s, 255)
	poolOfPayload.put(b)
}
