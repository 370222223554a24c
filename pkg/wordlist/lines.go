package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadLines reads r to the end and returns one word per line with
// surrounding whitespace removed. Blank lines are kept as empty words, which
// teach a model that the empty word exists.
func ReadLines(ctx context.Context, r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		words = append(words, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read words: %w", err)
	}
	return words, nil
}

// LoadFile reads the word list at path with ReadLines.
func LoadFile(ctx context.Context, path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open word list: %w", err)
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	return ReadLines(ctx, file)
}
