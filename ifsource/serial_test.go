package ifsource

import (
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"

	"github.com/pavelyazev/PocketSDR/buff"
)

func TestSerialReadsIQSamples(t *testing.T) {
	ptmx, pts, err := pty.Open()
	require.NoError(t, err)
	defer ptmx.Close()
	defer pts.Close()

	s, err := OpenSerial(pts.Name(), 0, buff.ModeIQ)
	require.NoError(t, err)
	defer s.Close()

	want := []byte{16, -16 & 0xff, 32, -32 & 0xff, 48, -48 & 0xff}
	go func() {
		_, _ = ptmx.Write(want)
	}()

	b, err := s.Next(3)
	require.NoError(t, err)
	require.Equal(t, 3, b.Len())

	i0 := b.At(0).I()
	q0 := b.At(0).Q()
	require.Equal(t, quantizeNibble(16), i0)
	require.Equal(t, quantizeNibble(byte(-16&0xff)), q0)
}

func TestOpenSerialUnsupportedBaudFallsBackTo4800(t *testing.T) {
	ptmx, pts, err := pty.Open()
	require.NoError(t, err)
	defer ptmx.Close()
	defer pts.Close()

	s, err := OpenSerial(pts.Name(), 31250, buff.ModeI)
	require.NoError(t, err)
	defer s.Close()
}
