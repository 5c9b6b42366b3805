package bim

import (
	"bytes"
	"context"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRuntimeRoundTrip(t *testing.T) {
	buffer := triangleBuffer(1, 2)
	data := Encode(buffer, []PropertyRecord{
		{ID: 1, TypeCode: 1, Name: "North wall"},
		{ID: 2, TypeCode: 4},
	})

	runtime := NewFileRuntime()
	decoded, handle, err := runtime.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, len(buffer.Vertices), len(decoded.Vertices))
	assert.Equal(t, buffer.IDs, decoded.IDs)
	assert.Equal(t, buffer.Indices, decoded.Indices)
	require.NoError(t, decoded.Validate())

	props, err := runtime.ItemProperties(handle, 1)
	require.NoError(t, err)
	name, ok := props.Name()
	require.True(t, ok)
	assert.Equal(t, "North wall", name)
	code, ok := props.TypeCode()
	require.True(t, ok)
	assert.Equal(t, int32(1), code)

	// Record without a name still carries its type
	props, err = runtime.ItemProperties(handle, 2)
	require.NoError(t, err)
	_, ok = props.Name()
	assert.False(t, ok)
	code, ok = props.TypeCode()
	require.True(t, ok)
	assert.Equal(t, int32(4), code)

	// Missing record is a lookup failure
	_, err = runtime.ItemProperties(handle, 99)
	assert.Error(t, err)
}

func TestFileRuntimeRejectsGarbage(t *testing.T) {
	runtime := NewFileRuntime()

	_, _, err := runtime.Decode([]byte("definitely not a model"))
	assert.Error(t, err)

	_, _, err = runtime.Decode(nil)
	assert.Error(t, err)
}

func TestFileRuntimeRejectsTruncated(t *testing.T) {
	buffer := triangleBuffer(1)
	data := Encode(buffer, []PropertyRecord{{ID: 1, TypeCode: 1}})

	runtime := NewFileRuntime()
	_, _, err := runtime.Decode(data[:len(data)-6])
	assert.Error(t, err)
}

// headerOnly builds a stream that is nothing but the magic and the three
// declared counts, with no record bytes behind them.
func headerOnly(vertexCount, indexCount, propCount uint32) []byte {
	var data bytes.Buffer
	data.Write(gbmMagic[:])
	binary.Write(&data, binary.LittleEndian, vertexCount)
	binary.Write(&data, binary.LittleEndian, indexCount)
	binary.Write(&data, binary.LittleEndian, propCount)
	return data.Bytes()
}

func TestFileRuntimeRejectsOverstatedCounts(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"vertices", headerOnly(math.MaxInt32, 0, 0)},
		{"indices", headerOnly(0, math.MaxInt32, 0)},
		{"properties", headerOnly(0, 0, math.MaxInt32)},
	}

	runtime := NewFileRuntime()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := runtime.Decode(tc.data)
			assert.Error(t, err)
		})
	}
}

func TestDecodeOverstatedCountsIsParseError(t *testing.T) {
	decoder := NewDecoder(NewFileRuntime(), nil, nil)
	_, _, err := decoder.Decode(context.Background(), headerOnly(math.MaxInt32, 0, 0), nil)

	var parse *ParseError
	require.ErrorAs(t, err, &parse)
}

func TestFileRuntimeUnknownHandle(t *testing.T) {
	runtime := NewFileRuntime()
	_, err := runtime.ItemProperties(42, 1)
	assert.Error(t, err)
}

func TestFileRuntimeRelease(t *testing.T) {
	buffer := triangleBuffer(1)
	data := Encode(buffer, []PropertyRecord{{ID: 1, TypeCode: 1}})

	runtime := NewFileRuntime()
	_, handle, err := runtime.Decode(data)
	require.NoError(t, err)

	runtime.Release(handle)
	_, err = runtime.ItemProperties(handle, 1)
	assert.Error(t, err)
}
