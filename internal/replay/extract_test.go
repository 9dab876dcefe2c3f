package replay

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCapture(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "battle.wotreplay")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractFirstLine(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    string
	}{
		{
			name:    "plain json line",
			content: []byte(`{"a":1}` + "\n"),
			want:    `{"a":1}`,
		},
		{
			name:    "binary noise stripped from first line",
			content: append([]byte{0x0c, 0x00, 0xe1, '{', '"', 'a', '"', ':', 0x01, '1', '}', 0xff}, '\n'),
			want:    `{"a":1}`,
		},
		{
			name:    "second line never read",
			content: []byte("{\"a\":1}\n\x00\x01{binary \"junk\x02"),
			want:    `{"a":1}`,
		},
		{
			name:    "spaces dropped",
			content: []byte("{\"dateTime\":\"01.01.2022 10:00:00\"}\n"),
			want:    `{"dateTime":"01.01.202210:00:00"}`,
		},
		{
			name:    "no trailing newline",
			content: []byte(`{"a":1}`),
			want:    `{"a":1}`,
		},
		{
			name:    "empty file",
			content: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCapture(t, tt.content)
			got, err := ExtractFirstLine(path)
			if err != nil {
				t.Fatalf("ExtractFirstLine: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractFirstLine = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractFirstLineMissingFile(t *testing.T) {
	if _, err := ExtractFirstLine(filepath.Join(t.TempDir(), "nope.wotreplay")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
