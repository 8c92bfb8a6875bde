package snapmatic

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{
			name: "marker after header",
			in:   []byte{0x00, 0x01, 0xFF, 0xD8, 0xAA, 0xBB},
			want: []byte{0xFF, 0xD8, 0xAA, 0xBB},
		},
		{
			name: "marker at offset zero",
			in:   []byte{0xFF, 0xD8, 0xAA, 0xBB},
			want: []byte{0xFF, 0xD8, 0xAA, 0xBB},
		},
		{
			name: "first of multiple markers wins",
			in:   []byte{0x00, 0xFF, 0xD8, 0x01, 0xFF, 0xD8, 0x02},
			want: []byte{0xFF, 0xD8, 0x01, 0xFF, 0xD8, 0x02},
		},
		{
			name: "lone 0xFF before real marker",
			in:   []byte{0xFF, 0x00, 0xFF, 0xD8, 0x03},
			want: []byte{0xFF, 0xD8, 0x03},
		},
		{
			name: "marker at end",
			in:   []byte{0x10, 0x20, 0xFF, 0xD8},
			want: []byte{0xFF, 0xD8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.in)
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Extract = % X, want % X", got, tt.want)
			}
			if len(got) != len(tt.want) {
				t.Errorf("Extract length = %d, want %d", len(got), len(tt.want))
			}
		})
	}
}

func TestExtractNoMarker(t *testing.T) {
	for _, in := range [][]byte{
		nil,
		{},
		{0x00, 0x01, 0x02},
		{0xFF},             // marker cut off by end of buffer
		{0xD8, 0xFF},       // marker bytes reversed
		{0xFF, 0xD9, 0xD8}, // 0xFF never directly followed by 0xD8
	} {
		got, err := Extract(in)
		if !errors.Is(err, ErrMarkerNotFound) {
			t.Errorf("Extract(% X) err = %v, want ErrMarkerNotFound", in, err)
		}
		if got != nil {
			t.Errorf("Extract(% X) = % X, want nil", in, got)
		}
	}
}

func TestExtractDoesNotAlias(t *testing.T) {
	in := []byte{0x00, 0xFF, 0xD8, 0xAA}

	got, err := Extract(in)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	in[1] = 0x00
	in[2] = 0x00
	in[3] = 0x00

	if !bytes.Equal(got, []byte{0xFF, 0xD8, 0xAA}) {
		t.Errorf("result changed with source buffer: % X", got)
	}
}

func TestHasEndOfImage(t *testing.T) {
	if !HasEndOfImage([]byte{0xFF, 0xD8, 0xFF, 0xD9}) {
		t.Errorf("trailer not detected")
	}
	if HasEndOfImage([]byte{0xFF, 0xD8, 0xAA, 0xBB}) {
		t.Errorf("trailer detected on truncated stream")
	}
	if HasEndOfImage([]byte{0xFF, 0xD9}) {
		t.Errorf("trailer detected on stream too short to hold an image")
	}
}

func encodeTestJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encoding test jpeg: %v", err)
	}
	return buf.Bytes()
}

func TestThumbnail(t *testing.T) {
	src := encodeTestJPEG(t, 64, 32)

	thumb, err := Thumbnail(src, 16)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(thumb))
	if err != nil {
		t.Fatalf("decoding thumbnail: %v", err)
	}
	if cfg.Width != 16 || cfg.Height != 8 {
		t.Errorf("thumbnail is %dx%d, want 16x8", cfg.Width, cfg.Height)
	}
}

func TestThumbnailNoUpscale(t *testing.T) {
	src := encodeTestJPEG(t, 8, 8)

	thumb, err := Thumbnail(src, 100)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(thumb))
	if err != nil {
		t.Fatalf("decoding thumbnail: %v", err)
	}
	if cfg.Width != 8 || cfg.Height != 8 {
		t.Errorf("thumbnail is %dx%d, want 8x8", cfg.Width, cfg.Height)
	}
}

func TestThumbnailBadInput(t *testing.T) {
	if _, err := Thumbnail([]byte{0xFF, 0xD8, 0x00}, 16); err == nil {
		t.Errorf("expected error for garbage jpeg data")
	}
	if _, err := Thumbnail(encodeTestJPEG(t, 8, 8), 0); err == nil {
		t.Errorf("expected error for zero width")
	}
}
