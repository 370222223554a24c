package markov

import (
	"go/build"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// scriptedRand replays a fixed sequence of draws. Each IntN draw is reduced
// modulo n so a script written for one table stays in range.
type scriptedRand struct {
	ints   []int
	floats []float64
	calls  int
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.calls%len(r.ints)]
	r.calls++
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.calls%len(r.floats)]
	r.calls++
	return v
}

// newTestGenerator builds a table from words and wraps it in a Generator.
func newTestGenerator(t *testing.T, words []string, opts ...Option) *Generator {
	t.Helper()
	g, err := NewGenerator(Build(words), opts...)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	return g
}

var (
	benchmarkCorpus []string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus reads Go source files to create a word list for benchmarking.
func createBenchmarkCorpus() []string {
	corpusOnce.Do(func() {
		goRoot := build.Default.GOROOT
		filesToRead := []string{
			filepath.Join(goRoot, "src/net/http/server.go"),
			filepath.Join(goRoot, "src/go/parser/parser.go"),
		}

		for _, file := range filesToRead {
			content, err := os.ReadFile(file)
			if err != nil {
				benchmarkCorpus = strings.Fields("this is a fallback corpus for benchmarking it is not very long but will prevent a crash")
				return
			}
			benchmarkCorpus = append(benchmarkCorpus, strings.Fields(string(content))...)
		}
	})
	return benchmarkCorpus
}
