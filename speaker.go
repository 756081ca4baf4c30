package main

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// playFile plays a generated WAV file to completion through the default
// audio device.
func playFile(path string, sampleRate int) error {
	st, err := NewWaveStreamer(path)
	if err != nil {
		return err
	}
	defer st.Close()

	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return err
	}

	done := make(chan bool)
	speaker.Play(beep.Seq(st, beep.Callback(func() {
		done <- true
	})))
	<-done

	return nil
}
