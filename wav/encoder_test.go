package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite16(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	samples := []float64{0, 1, -1, 0.5}
	require.NoError(t, Write(path, samples, 48000, 16))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, 44+len(samples)*2)

	h, err := ReadHeader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, uint32(36+8), h.FileSize)
	assert.Equal(t, uint16(1), h.AudioFormat)
	assert.Equal(t, uint16(1), h.NumChannels)
	assert.Equal(t, uint32(48000), h.SampleRate)
	assert.Equal(t, uint32(96000), h.ByteRate)
	assert.Equal(t, uint16(2), h.BlockAlign)
	assert.Equal(t, uint16(16), h.BitsPerSample)
	assert.Equal(t, uint32(8), h.DataSize)

	want := []int16{0, 32767, -32767, 16384}
	for i, w := range want {
		got := int16(binary.LittleEndian.Uint16(data[44+i*2:]))
		assert.Equal(t, w, got, "sample %d", i)
	}
}

func TestWrite24(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	samples := []float64{1, -1, 0}
	require.NoError(t, Write(path, samples, 96000, 24))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, 44+9)

	h, err := ReadHeader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, uint16(24), h.BitsPerSample)
	assert.Equal(t, uint32(96000*3), h.ByteRate)
	assert.Equal(t, uint16(3), h.BlockAlign)
	assert.Equal(t, uint32(9), h.DataSize)

	// 8388607 and -8388607 packed little-endian, sign in the third byte.
	assert.Equal(t, []byte{0xFF, 0xFF, 0x7F}, data[44:47])
	assert.Equal(t, []byte{0x01, 0x00, 0x80}, data[47:50])
	assert.Equal(t, []byte{0x00, 0x00, 0x00}, data[50:53])
}

func TestQuantize16(t *testing.T) {
	assert.Equal(t, int16(0), Quantize16(0))
	assert.Equal(t, int16(32767), Quantize16(1))
	assert.Equal(t, int16(-32767), Quantize16(-1))
	assert.Equal(t, int16(32767), Quantize16(1.5))
	assert.Equal(t, int16(-32768), Quantize16(-1.5))
	assert.Equal(t, int16(16384), Quantize16(0.5))
}

func TestQuantize24(t *testing.T) {
	assert.Equal(t, int32(0), Quantize24(0))
	assert.Equal(t, int32(8388607), Quantize24(1))
	assert.Equal(t, int32(-8388607), Quantize24(-1))
	assert.Equal(t, int32(8388607), Quantize24(2))
	assert.Equal(t, int32(-8388608), Quantize24(-2))
}

func TestQuantizationBounds(t *testing.T) {
	values := []float64{-2, -1.0001, -1, -0.999, -0.5, -1e-9, 0, 1e-9, 0.5, 0.999, 1, 1.0001, 2}
	for _, x := range values {
		s16 := Quantize16(x)
		assert.GreaterOrEqual(t, s16, int16(-32768))
		assert.LessOrEqual(t, s16, int16(32767))

		s24 := Quantize24(x)
		assert.GreaterOrEqual(t, s24, int32(-8388608))
		assert.LessOrEqual(t, s24, int32(8388607))
	}
}

func TestEncoderStreamingMatchesOneShot(t *testing.T) {
	dir := t.TempDir()
	samples := make([]float64, 1000)
	for i := range samples {
		if i%2 == 0 {
			samples[i] = 1
		} else {
			samples[i] = -1
		}
	}

	oneShot := filepath.Join(dir, "oneshot.wav")
	require.NoError(t, Write(oneShot, samples, 44100, 24))

	streamed := filepath.Join(dir, "streamed.wav")
	e, err := NewEncoder(streamed, 44100, 24)
	require.NoError(t, err)
	for pos := 0; pos < len(samples); pos += 333 {
		end := pos + 333
		if end > len(samples) {
			end = len(samples)
		}
		require.NoError(t, e.WriteSamples(samples[pos:end]))
	}
	require.NoError(t, e.Close())

	a, err := os.ReadFile(oneShot)
	require.NoError(t, err)
	b, err := os.ReadFile(streamed)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFileSizeArithmetic(t *testing.T) {
	for _, c := range []struct {
		n     int
		depth int
	}{
		{100, 16},
		{100, 24},
		{1601, 16},
		{1, 24},
	} {
		path := filepath.Join(t.TempDir(), "size.wav")
		require.NoError(t, Write(path, make([]float64, c.n), 48000, c.depth))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, int64(44+c.n*c.depth/8), info.Size(), "%d samples at %d bit", c.n, c.depth)
	}
}

func TestInvalidBitDepth(t *testing.T) {
	_, err := NewEncoder(filepath.Join(t.TempDir(), "x.wav"), 48000, 8)
	assert.True(t, errors.Is(err, ErrBitDepth))

	err = Write(filepath.Join(t.TempDir(), "x.wav"), nil, 48000, 32)
	assert.True(t, errors.Is(err, ErrBitDepth))
}

func TestNoTempFileAfterClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clean.wav")
	require.NoError(t, Write(path, []float64{0.25, -0.25}, 48000, 16))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "clean.wav", entries[0].Name())
}

func TestReadHeaderRejectsGarbage(t *testing.T) {
	_, err := ReadHeader(bytes.NewReader(make([]byte, 44)))
	assert.Error(t, err)

	_, err = ReadHeader(bytes.NewReader([]byte{1, 2, 3}))
	assert.Error(t, err)
}
