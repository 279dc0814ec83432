package media

import (
	"bytes"
	"encoding/binary"
)

// mvhdProbe extracts a video's duration from the bytes of an MP4 file as
// they stream past. It scans for the movie header box ("mvhd") and reads
// the timescale and duration fields; the moov box may sit at either end of
// the file, so the probe stays attached for the whole stream.
//
// Only a small tail of unmatched bytes is retained between writes, so the
// probe adds constant memory to an upload of any size.
type mvhdProbe struct {
	buf     []byte
	seconds float64
	done    bool
}

var mvhdMarker = []byte("mvhd")

// Seconds returns the probed duration, or 0 when no movie header was found.
func (p *mvhdProbe) Seconds() float64 {
	return p.seconds
}

func (p *mvhdProbe) Write(b []byte) (int, error) {
	if p.done {
		return len(b), nil
	}

	p.buf = append(p.buf, b...)
	for {
		i := bytes.Index(p.buf, mvhdMarker)
		if i < 0 {
			// Keep the last three bytes in case the marker straddles writes.
			if len(p.buf) > 3 {
				p.buf = p.buf[len(p.buf)-3:]
			}

			return len(b), nil
		}

		rest := p.buf[i+len(mvhdMarker):]
		if seconds, ok, needMore := parseMvhdBody(rest); needMore {
			p.buf = p.buf[i:]

			return len(b), nil
		} else if ok {
			p.seconds = seconds
			p.done = true
			p.buf = nil

			return len(b), nil
		}

		// False positive ("mvhd" appearing in media data); keep scanning.
		p.buf = p.buf[i+len(mvhdMarker):]
	}
}

// parseMvhdBody reads the fields following the box type. Layout after the
// version byte and three flag bytes: creation and modification times (4 or
// 8 bytes each depending on version), then timescale (4 bytes) and duration
// (4 or 8 bytes).
func parseMvhdBody(body []byte) (seconds float64, ok bool, needMore bool) {
	if len(body) < 1 {
		return 0, false, true
	}

	var timescale uint32
	var duration uint64

	switch body[0] {
	case 0:
		if len(body) < 20 {
			return 0, false, true
		}
		timescale = binary.BigEndian.Uint32(body[12:16])
		duration = uint64(binary.BigEndian.Uint32(body[16:20]))
	case 1:
		if len(body) < 32 {
			return 0, false, true
		}
		timescale = binary.BigEndian.Uint32(body[20:24])
		duration = binary.BigEndian.Uint64(body[24:32])
	default:
		return 0, false, false
	}

	if timescale == 0 {
		return 0, false, false
	}

	return float64(duration) / float64(timescale), true, false
}
