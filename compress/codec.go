package compress

import (
	"fmt"
)

// Type identifies a sink-level compression algorithm applied around an
// encoded payload. It is independent of the wire format itself: a decoder
// does not need to know which Type produced a payload unless the caller
// records it out of band.
type Type uint8

const (
	// None applies no compression; Compress is the identity function.
	None Type = 0x1
	// Zstd applies Zstandard compression.
	Zstd Type = 0x2
	// S2 applies S2 (a Snappy-compatible, faster-decompressing format).
	S2 Type = 0x3
	// LZ4 applies LZ4 compression.
	LZ4 Type = 0x4
)

func (t Type) String() string {
	switch t {
	case None:
		return "None"
	case Zstd:
		return "Zstd"
	case S2:
		return "S2"
	case LZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor provides compression for an encoded payload.
//
// Payloads are typically whole bjdata/UBJSON documents or large binary
// fields (byte arrays, SOA offset/payload blocks) produced by the encoder.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is owned by the caller; NoOpCompressor returns the
	//     input slice itself rather than a new allocation
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

var builtinCodecs = map[Type]Compressor{
	None: NewNoOpCompressor(),
	Zstd: NewZstdCompressor(),
	S2:   NewS2Compressor(),
	LZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Compressor for the specified compression type.
func GetCodec(compressionType Type) (Compressor, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
