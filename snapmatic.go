// Package snapmatic extracts the JPEG photo embedded in GTA Snapmatic
// container files. A Snapmatic file is a proprietary header followed by a
// plain JPEG stream; the photo starts at the first Start-Of-Image marker.
package snapmatic

import (
	"bytes"

	"github.com/pkg/errors"
)

var (
	soiMarker = []byte{0xFF, 0xD8}
	eoiMarker = []byte{0xFF, 0xD9}
)

// ErrMarkerNotFound is returned when a buffer holds no JPEG Start-Of-Image
// marker. A container without the marker holds no photo, so this is an
// error rather than a pass-through of the raw container bytes.
var ErrMarkerNotFound = errors.New("jpeg start-of-image marker not found")

// Extract returns the embedded JPEG stream: everything from the first
// 0xFF 0xD8 pair through the end of the buffer. The result is a copy and
// does not share memory with buf.
func Extract(buf []byte) ([]byte, error) {
	i := bytes.Index(buf, soiMarker)
	if i < 0 {
		return nil, ErrMarkerNotFound
	}

	out := make([]byte, len(buf)-i)
	copy(out, buf[i:])
	return out, nil
}

// HasEndOfImage reports whether an extracted stream ends with the JPEG
// End-Of-Image trailer. Diagnostic only; a truncated stream still converts.
func HasEndOfImage(jpeg []byte) bool {
	return len(jpeg) >= 4 && bytes.HasSuffix(jpeg, eoiMarker)
}
