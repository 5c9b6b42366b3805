package bim

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/philipparndt/gobim/pkg/geometry"
)

// The .gbm container is the reference on-disk format understood by the
// built-in FileRuntime. Little endian throughout:
//
//	magic   [4]byte  "GBM1"
//	counts  3×uint32 vertex, index, property-record count
//	vertex  vertexCount × (3×float32 position, int32 entity id)
//	index   indexCount × uint32
//	prop    propCount × (int32 id, int32 type code, uint16 len, name bytes)

var gbmMagic = [4]byte{'G', 'B', 'M', '1'}

// PropertyRecord is one entry of a model's embedded property table
type PropertyRecord struct {
	ID       int32
	TypeCode int32
	Name     string
}

// FileRuntime is the built-in Runtime for .gbm model files. It keeps the
// property table of every model it has decoded, keyed by model handle.
type FileRuntime struct {
	nextHandle int32
	properties map[int32]map[int32]Properties
}

// NewFileRuntime creates an empty runtime
func NewFileRuntime() *FileRuntime {
	return &FileRuntime{properties: make(map[int32]map[int32]Properties)}
}

// Decode parses a .gbm byte stream
func (r *FileRuntime) Decode(data []byte) (*GeometryBuffer, int32, error) {
	reader := bytes.NewReader(data)

	var magic [4]byte
	if _, err := io.ReadFull(reader, magic[:]); err != nil {
		return nil, 0, fmt.Errorf("failed to read header: %w", err)
	}
	if magic != gbmMagic {
		return nil, 0, fmt.Errorf("not a gbm model (magic %q)", magic)
	}

	var vertexCount, indexCount, propCount uint32
	for _, field := range []*uint32{&vertexCount, &indexCount, &propCount} {
		if err := binary.Read(reader, binary.LittleEndian, field); err != nil {
			return nil, 0, fmt.Errorf("failed to read counts: %w", err)
		}
	}

	// The counts come from an untrusted header. Bound them against the
	// bytes actually present before allocating anything: a vertex record
	// is 16 bytes, an index 4, a property record at least 10.
	const vertexRecordSize = 3*4 + 4
	const propRecordMinSize = 4 + 4 + 2
	declared := int64(vertexCount)*vertexRecordSize + int64(indexCount)*4 + int64(propCount)*propRecordMinSize
	if declared > int64(reader.Len()) {
		return nil, 0, fmt.Errorf("header declares %d bytes of records but only %d remain", declared, reader.Len())
	}

	buffer := &GeometryBuffer{
		Vertices: make([]geometry.Vector3, 0, vertexCount),
		IDs:      make([]int32, 0, vertexCount),
		Indices:  make([]uint32, 0, indexCount),
	}

	for i := uint32(0); i < vertexCount; i++ {
		var pos [3]float32
		var id int32
		if err := binary.Read(reader, binary.LittleEndian, &pos); err != nil {
			return nil, 0, fmt.Errorf("failed to read vertex %d: %w", i, err)
		}
		if err := binary.Read(reader, binary.LittleEndian, &id); err != nil {
			return nil, 0, fmt.Errorf("failed to read vertex id %d: %w", i, err)
		}
		buffer.Vertices = append(buffer.Vertices, geometry.NewVector3(float64(pos[0]), float64(pos[1]), float64(pos[2])))
		buffer.IDs = append(buffer.IDs, id)
	}

	for i := uint32(0); i < indexCount; i++ {
		var idx uint32
		if err := binary.Read(reader, binary.LittleEndian, &idx); err != nil {
			return nil, 0, fmt.Errorf("failed to read index %d: %w", i, err)
		}
		buffer.Indices = append(buffer.Indices, idx)
	}

	props := make(map[int32]Properties, propCount)
	for i := uint32(0); i < propCount; i++ {
		var id, typeCode int32
		var nameLen uint16
		if err := binary.Read(reader, binary.LittleEndian, &id); err != nil {
			return nil, 0, fmt.Errorf("failed to read property record %d: %w", i, err)
		}
		if err := binary.Read(reader, binary.LittleEndian, &typeCode); err != nil {
			return nil, 0, fmt.Errorf("failed to read property record %d: %w", i, err)
		}
		if err := binary.Read(reader, binary.LittleEndian, &nameLen); err != nil {
			return nil, 0, fmt.Errorf("failed to read property record %d: %w", i, err)
		}
		name := make([]byte, nameLen)
		if _, err := io.ReadFull(reader, name); err != nil {
			return nil, 0, fmt.Errorf("failed to read property name %d: %w", i, err)
		}
		record := Properties{"type": typeCode}
		if len(name) > 0 {
			record["Name"] = string(name)
		}
		props[id] = record
	}

	r.nextHandle++
	handle := r.nextHandle
	r.properties[handle] = props
	return buffer, handle, nil
}

// ItemProperties answers property queries for a decoded model. An id
// without a property-table entry is a lookup failure, not an empty
// result; the decoder treats it as a skippable per-id error.
func (r *FileRuntime) ItemProperties(modelHandle, id int32) (Properties, error) {
	model, ok := r.properties[modelHandle]
	if !ok {
		return nil, fmt.Errorf("unknown model handle %d", modelHandle)
	}
	props, ok := model[id]
	if !ok {
		return nil, fmt.Errorf("no property record for id %d", id)
	}
	return props, nil
}

// Release drops the property table of a decoded model
func (r *FileRuntime) Release(modelHandle int32) {
	delete(r.properties, modelHandle)
}

// Encode writes a geometry buffer and property table as a .gbm byte
// stream. Used by fixture tooling and tests.
func Encode(buffer *GeometryBuffer, records []PropertyRecord) []byte {
	var out bytes.Buffer
	out.Write(gbmMagic[:])
	binary.Write(&out, binary.LittleEndian, uint32(len(buffer.Vertices)))
	binary.Write(&out, binary.LittleEndian, uint32(len(buffer.Indices)))
	binary.Write(&out, binary.LittleEndian, uint32(len(records)))

	for i, v := range buffer.Vertices {
		binary.Write(&out, binary.LittleEndian, [3]float32{float32(v.X), float32(v.Y), float32(v.Z)})
		binary.Write(&out, binary.LittleEndian, buffer.IDs[i])
	}
	for _, idx := range buffer.Indices {
		binary.Write(&out, binary.LittleEndian, idx)
	}
	for _, record := range records {
		binary.Write(&out, binary.LittleEndian, record.ID)
		binary.Write(&out, binary.LittleEndian, record.TypeCode)
		binary.Write(&out, binary.LittleEndian, uint16(len(record.Name)))
		out.WriteString(record.Name)
	}
	return out.Bytes()
}
