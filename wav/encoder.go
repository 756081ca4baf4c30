// Package wav quantizes float sample buffers to linear PCM and writes
// canonical mono RIFF/WAVE files.
package wav

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
)

// ErrBitDepth is returned for bit depths other than 16 or 24.
var ErrBitDepth = errors.New("wav: bit depth must be 16 or 24")

// Encoder streams quantized samples to a WAV file one chunk at a time.
// The file is assembled at a temporary path and renamed into place on
// Close, so a failed run leaves no partial file behind.
type Encoder struct {
	path     string
	tmp      *os.File
	w        *bufio.Writer
	bitDepth int
	samples  uint32
	closed   bool
}

// NewEncoder opens an encoder writing to path. The header is written with
// placeholder sizes and patched on Close.
func NewEncoder(path string, sampleRate, bitDepth int) (*Encoder, error) {
	if bitDepth != 16 && bitDepth != 24 {
		return nil, fmt.Errorf("%w: %d", ErrBitDepth, bitDepth)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return nil, fmt.Errorf("wav: creating temp file: %w", err)
	}
	e := &Encoder{
		path:     path,
		tmp:      tmp,
		w:        bufio.NewWriter(tmp),
		bitDepth: bitDepth,
	}
	if err := binary.Write(e.w, binary.LittleEndian, newHeader(sampleRate, bitDepth, 0)); err != nil {
		e.abort()
		return nil, fmt.Errorf("wav: writing header: %w", err)
	}
	return e, nil
}

// WriteSamples quantizes and appends samples, expected in [-1, +1].
// Out-of-range values clamp to full scale.
func (e *Encoder) WriteSamples(samples []float64) error {
	var buf [3]byte
	for _, x := range samples {
		var n int
		if e.bitDepth == 16 {
			s := Quantize16(x)
			buf[0] = byte(s)
			buf[1] = byte(s >> 8)
			n = 2
		} else {
			s := Quantize24(x)
			buf[0] = byte(s)
			buf[1] = byte(s >> 8)
			buf[2] = byte(s >> 16)
			n = 3
		}
		if _, err := e.w.Write(buf[:n]); err != nil {
			e.abort()
			return fmt.Errorf("wav: writing samples: %w", err)
		}
	}
	e.samples += uint32(len(samples))
	return nil
}

// Close flushes the data, patches the RIFF and data chunk sizes, and
// renames the temp file to the final path.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if err := e.w.Flush(); err != nil {
		e.remove()
		return fmt.Errorf("wav: flushing: %w", err)
	}
	dataSize := e.samples * uint32(e.bitDepth/8)
	var sizes [4]byte
	binary.LittleEndian.PutUint32(sizes[:], 36+dataSize)
	if _, err := e.tmp.WriteAt(sizes[:], 4); err != nil {
		e.remove()
		return fmt.Errorf("wav: patching RIFF size: %w", err)
	}
	binary.LittleEndian.PutUint32(sizes[:], dataSize)
	if _, err := e.tmp.WriteAt(sizes[:], 40); err != nil {
		e.remove()
		return fmt.Errorf("wav: patching data size: %w", err)
	}
	if err := e.tmp.Close(); err != nil {
		os.Remove(e.tmp.Name())
		return fmt.Errorf("wav: closing temp file: %w", err)
	}
	if err := os.Rename(e.tmp.Name(), e.path); err != nil {
		os.Remove(e.tmp.Name())
		return fmt.Errorf("wav: renaming into place: %w", err)
	}
	return nil
}

func (e *Encoder) abort() {
	e.closed = true
	e.remove()
}

func (e *Encoder) remove() {
	e.tmp.Close()
	os.Remove(e.tmp.Name())
}

// Write quantizes a whole buffer and writes it to path in one call.
func Write(path string, samples []float64, sampleRate, bitDepth int) error {
	e, err := NewEncoder(path, sampleRate, bitDepth)
	if err != nil {
		return err
	}
	if err := e.WriteSamples(samples); err != nil {
		return err
	}
	return e.Close()
}

// Quantize16 maps x in [-1, +1] to a signed 16-bit sample.
func Quantize16(x float64) int16 {
	s := math.Round(x * 32767)
	if s > 32767 {
		s = 32767
	}
	if s < -32768 {
		s = -32768
	}
	return int16(s)
}

// Quantize24 maps x in [-1, +1] to a signed 24-bit sample held in an
// int32. Callers pack the low three bytes little-endian; the 24-bit sign
// lives in the third byte, so the packing stays correct for negatives.
func Quantize24(x float64) int32 {
	s := math.Round(x * 8388607)
	if s > 8388607 {
		s = 8388607
	}
	if s < -8388608 {
		s = -8388608
	}
	return int32(s)
}

var _ io.Closer = (*Encoder)(nil)
