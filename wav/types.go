package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Header represents the canonical 44-byte mono PCM WAV file header.
type Header struct {
	// RIFF header
	RiffID   [4]byte // "RIFF"
	FileSize uint32  // 36 + DataSize
	WaveID   [4]byte // "WAVE"

	// fmt sub-chunk
	FmtID         [4]byte // "fmt "
	FmtSize       uint32  // 16 for PCM
	AudioFormat   uint16  // 1 for PCM
	NumChannels   uint16  // 1 for mono
	SampleRate    uint32  // e.g., 48000
	ByteRate      uint32  // SampleRate * NumChannels * BitsPerSample/8
	BlockAlign    uint16  // NumChannels * BitsPerSample/8
	BitsPerSample uint16  // 16 or 24

	// data sub-chunk
	DataID   [4]byte // "data"
	DataSize uint32  // NumSamples * NumChannels * BitsPerSample/8
}

// HeaderSize is the byte length of Header on disk.
const HeaderSize = 44

// ReadHeader parses the 44-byte header from r.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return Header{}, fmt.Errorf("wav: reading header: %w", err)
	}
	if h.RiffID != [4]byte{'R', 'I', 'F', 'F'} || h.WaveID != [4]byte{'W', 'A', 'V', 'E'} {
		return Header{}, fmt.Errorf("wav: not a RIFF/WAVE file")
	}
	return h, nil
}

func newHeader(sampleRate, bitDepth int, dataSize uint32) Header {
	bytesPerSample := uint32(bitDepth / 8)
	return Header{
		RiffID:        [4]byte{'R', 'I', 'F', 'F'},
		FileSize:      36 + dataSize,
		WaveID:        [4]byte{'W', 'A', 'V', 'E'},
		FmtID:         [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		AudioFormat:   1,
		NumChannels:   1,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate) * bytesPerSample,
		BlockAlign:    uint16(bytesPerSample),
		BitsPerSample: uint16(bitDepth),
		DataID:        [4]byte{'d', 'a', 't', 'a'},
		DataSize:      dataSize,
	}
}
