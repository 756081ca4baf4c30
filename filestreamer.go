package main

import (
	"fmt"
	"io"
	"os"

	"github.com/faiface/beep"
	"github.com/sithulaka/ltc-timecode-generator/wav"
)

// WaveFileStreamer streams a generated mono WAV file as a beep source,
// duplicating the single channel into both outputs.
type WaveFileStreamer struct {
	f              *os.File
	bytesPerSample int
	dataBytes      int64
	offset         int64
	err            error
}

func NewWaveStreamer(path string) (*WaveFileStreamer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	h, err := wav.ReadHeader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	if h.NumChannels != 1 {
		f.Close()
		return nil, fmt.Errorf("expected mono file, got %d channels", h.NumChannels)
	}
	return &WaveFileStreamer{
		f:              f,
		bytesPerSample: int(h.BitsPerSample) / 8,
		dataBytes:      int64(h.DataSize),
	}, nil
}

func (s *WaveFileStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	remaining := (s.dataBytes - s.offset) / int64(s.bytesPerSample)
	if remaining <= 0 {
		return 0, false
	}
	want := len(samples)
	if int64(want) > remaining {
		want = int(remaining)
	}
	buf := make([]byte, want*s.bytesPerSample)
	if _, err := io.ReadFull(s.f, buf); err != nil {
		s.err = err
		return 0, false
	}
	for i := 0; i < want; i++ {
		v := s.extractSample(buf[i*s.bytesPerSample:])
		samples[i][0], samples[i][1] = v, v
	}
	s.offset += int64(len(buf))
	return want, true
}

func (s *WaveFileStreamer) extractSample(p []byte) float64 {
	if s.bytesPerSample == 2 {
		return float64(int16(p[0])|int16(p[1])<<8) / 32767
	}
	v := int32(p[0]) | int32(p[1])<<8 | int32(p[2])<<16
	if v&0x800000 != 0 {
		v -= 1 << 24
	}
	return float64(v) / 8388607
}

func (s *WaveFileStreamer) Err() error {
	return s.err
}

func (s *WaveFileStreamer) Len() int {
	return int(s.dataBytes) / s.bytesPerSample
}

func (s *WaveFileStreamer) Position() int {
	return int(s.offset) / s.bytesPerSample
}

func (s *WaveFileStreamer) Seek(p int) error {
	bp := int64(p*s.bytesPerSample) + wav.HeaderSize
	n, err := s.f.Seek(bp, io.SeekStart)
	s.offset = n - wav.HeaderSize
	return err
}

func (s *WaveFileStreamer) Close() error {
	return s.f.Close()
}

var _ beep.StreamSeekCloser = (*WaveFileStreamer)(nil)
