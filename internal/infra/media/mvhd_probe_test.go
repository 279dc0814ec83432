package media

import (
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMvhdV0(timescale, duration uint32) []byte {
	body := make([]byte, 20)
	// version 0, flags 0
	binary.BigEndian.PutUint32(body[12:16], timescale)
	binary.BigEndian.PutUint32(body[16:20], duration)

	return append([]byte("mvhd"), body...)
}

func buildMvhdV1(timescale uint32, duration uint64) []byte {
	body := make([]byte, 32)
	body[0] = 1
	binary.BigEndian.PutUint32(body[20:24], timescale)
	binary.BigEndian.PutUint64(body[24:32], duration)

	return append([]byte("mvhd"), body...)
}

func TestMvhdProbe_Version0(t *testing.T) {
	probe := &mvhdProbe{}

	payload := append([]byte("ftypisommoov....."), buildMvhdV0(1000, 125_000)...)
	payload = append(payload, make([]byte, 64)...)

	_, err := probe.Write(payload)
	require.NoError(t, err)
	assert.InDelta(t, 125.0, probe.Seconds(), 0.001)
}

func TestMvhdProbe_Version1(t *testing.T) {
	probe := &mvhdProbe{}

	_, err := probe.Write(buildMvhdV1(90_000, 2_700_000))
	require.NoError(t, err)
	assert.InDelta(t, 30.0, probe.Seconds(), 0.001)
}

func TestMvhdProbe_MarkerSplitAcrossWrites(t *testing.T) {
	probe := &mvhdProbe{}
	payload := buildMvhdV0(600, 3600)

	// Feed one byte at a time to exercise the straddle handling.
	for _, b := range payload {
		_, err := probe.Write([]byte{b})
		require.NoError(t, err)
	}

	assert.InDelta(t, 6.0, probe.Seconds(), 0.001)
}

func TestMvhdProbe_FalsePositiveMarkerInMediaData(t *testing.T) {
	probe := &mvhdProbe{}

	// An unknown version byte after the marker means this was not a real
	// movie header; the real one later in the stream must still be found.
	noise := append([]byte("xxmvhd"), 0xFF)
	noise = append(noise, make([]byte, 40)...)
	payload := append(noise, buildMvhdV0(1000, 42_000)...)

	_, err := probe.Write(payload)
	require.NoError(t, err)
	assert.InDelta(t, 42.0, probe.Seconds(), 0.001)
}

func TestMvhdProbe_NoHeaderFound(t *testing.T) {
	probe := &mvhdProbe{}

	_, err := io.Copy(probe, io.LimitReader(zeroReader{}, 1<<16))
	require.NoError(t, err)
	assert.Zero(t, probe.Seconds())
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}

	return len(p), nil
}
