// Package compress provides optional sink-level compression codecs for
// encoded payloads.
//
// Compression here is a layer above the wire format, not part of it: the
// encoder always produces a self-describing binary document first, and a
// caller may then choose to wrap the resulting bytes (or a large string/byte
// field within them, such as a structure-of-arrays payload block) in one of
// the algorithms below before writing it to a sink. Decoding that payload is
// out of scope for this package; a caller records which Type it used out of
// band and decompresses with whatever tool matches that algorithm.
//
// # Overview
//
// The package supports multiple algorithms with different size/speed
// tradeoffs:
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// # Architecture
//
// The package defines a single core interface:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
// # Supported Algorithms
//
// **NoOp Compression** (compress.None)
//
//	c := compress.NewNoOpCompressor()
//	compressed, _ := c.Compress(data)  // Returns data unchanged
//
// Use when:
//   - Data is already dense binary (typed numeric columns, packed markers)
//   - CPU is more critical than storage
//   - Data is incompressible (random, encrypted)
//
// **Zstandard (Zstd)** (compress.Zstd)
//
//	c := compress.NewZstdCompressor()
//	compressed, _ := c.Compress(data)  // Best compression ratio
//
// Characteristics:
//   - Compression: Excellent, best on repetitive text and dictionary columns
//   - Speed: Moderate (compression: ~400 MB/s)
//   - Memory: ~2-4 MB (the pure-Go build reuses pooled encoders)
//
// Use when storage cost or network bandwidth is the primary concern and
// moderate compression latency is acceptable.
//
// **S2 (Snappy Alternative)** (compress.S2)
//
//	c := compress.NewS2Compressor()
//	compressed, _ := c.Compress(data)  // Fast with good compression
//
// Characteristics:
//   - Compression: Good
//   - Speed: Fast (compression: ~1000 MB/s)
//   - Memory: ~256KB
//
// Use when latency matters and a balance between compression and speed
// is acceptable.
//
// **LZ4** (compress.LZ4)
//
//	c := compress.NewLZ4Compressor()
//	compressed, _ := c.Compress(data)  // Very fast decompression downstream
//
// Characteristics:
//   - Compression: Moderate
//   - Speed: Moderate compression (~800 MB/s), very fast to decompress
//   - Memory: ~64KB
//
// Use when the eventual reader's decompression speed is critical and
// compression ratio matters less.
//
// # Algorithm Selection Guide
//
// | Workload Type          | Recommended | Reason                              |
// |------------------------|-------------|--------------------------------------|
// | Storage-constrained    | Zstd        | Best compression ratio              |
// | Streaming ingestion    | S2          | Balanced speed and compression      |
// | Read-heavy             | LZ4         | Fastest decompression               |
// | CPU-constrained        | None        | No compression overhead             |
// | Cold storage / archival| Zstd        | Maximize space savings              |
// | Network transmission   | Zstd        | Reduce bandwidth usage              |
//
// | Payload Shape              | Recommended | Typical Ratio |
// |-----------------------------|-------------|----------------|
// | String/dictionary columns   | Zstd        | 3-5x           |
// | Fixed-width numeric columns | S2 or None  | 1-1.5x         |
// | Offset-table string blocks  | Zstd        | 2-4x           |
// | Mixed documents             | S2          | 1.8-2.5x       |
//
// # Thread Safety
//
// All Compressor implementations are safe for concurrent use across
// goroutines.
//
// # Advanced Usage
//
// For a custom compression algorithm, implement the Compressor interface
// directly:
//
//	type MyCompressor struct{}
//
//	func (c *MyCompressor) Compress(data []byte) ([]byte, error) {
//	    // Custom compression logic
//	    return compressedData, nil
//	}
package compress
