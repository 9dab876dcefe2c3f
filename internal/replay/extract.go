package replay

import (
	"bufio"
	"errors"
	"io"
	"os"
)

const (
	printableMin = 33
	printableMax = 127
)

// ExtractFirstLine reads the first line of a .wotreplay file and returns only
// its printable-ASCII characters. Everything after the first newline is the
// binary payload the game client uses to re-simulate the battle and is never
// read, so no decoding of it can fail. Control bytes and high-byte noise
// inside the first line are dropped outright, not replaced.
//
// An empty result is not an error; it simply yields no objects downstream.
func ExtractFirstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var out []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", err
		}
		if b == '\n' {
			break
		}
		if b >= printableMin && b <= printableMax {
			out = append(out, b)
		}
	}
	return string(out), nil
}
