package ifsource

import (
	"fmt"
	"io"

	"github.com/pkg/term"

	"github.com/pavelyazev/PocketSDR/buff"
)

// supportedBauds mirrors the teacher's serial_port_open fallback table;
// an unrecognized rate falls back to 4800 rather than failing outright.
var supportedBauds = map[int]bool{
	1200: true, 2400: true, 4800: true, 9600: true,
	19200: true, 38400: true, 57600: true, 115200: true,
}

// Serial is a live IF sample stream read from a serial-attached front
// end, in the same byte layout as ReadFile. It never issues a tuning,
// gain, or enable command — the device is expected to already be
// streaming samples once opened.
type Serial struct {
	fd *term.Term
	iq int
}

// OpenSerial opens device at baud (0 leaves the port's current speed
// alone) and returns a Serial ready to be read with Next.
func OpenSerial(device string, baud int, iq int) (*Serial, error) {
	fd, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("ifsource: open %s: %w", device, err)
	}

	switch {
	case baud == 0:
	case supportedBauds[baud]:
		if err := fd.SetSpeed(baud); err != nil {
			fd.Close()
			return nil, fmt.Errorf("ifsource: set speed %d on %s: %w", baud, device, err)
		}
	default:
		if err := fd.SetSpeed(4800); err != nil {
			fd.Close()
			return nil, fmt.Errorf("ifsource: set fallback speed on %s: %w", device, err)
		}
	}

	return &Serial{fd: fd, iq: iq}, nil
}

// Next blocks until n samples have arrived and returns them as a Buff.
func (s *Serial) Next(n int) (*buff.Buff, error) {
	raw := make([]byte, n*s.iq)
	if _, err := io.ReadFull(s.fd, raw); err != nil {
		return nil, fmt.Errorf("ifsource: read: %w", err)
	}
	return decode(raw, s.iq), nil
}

// Close releases the underlying serial port.
func (s *Serial) Close() error {
	return s.fd.Close()
}
