package playback

import (
	"io"
	"testing"
)

func TestSoundReaderDrains(t *testing.T) {
	r := &soundReader{data: []byte{1, 2, 3, 4, 5}}
	buf := make([]byte, 2)

	var out []byte
	for {
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
	}
	if len(out) != 5 {
		t.Fatalf("Read: got %d bytes want 5", len(out))
	}
	for i, b := range out {
		if b != byte(i+1) {
			t.Fatalf("byte %d: got=%d want=%d", i, b, i+1)
		}
	}
}
