package randtoken

import (
	"strings"
	"sync"
	"testing"
)

func TestGenerate(t *testing.T) {
	v := Generate()

	if len(v) != Length {
		t.Errorf("value length = %d, want %d", len(v), Length)
	}

	for _, c := range v {
		if !strings.ContainsRune(Alphabet, c) {
			t.Errorf("value contains invalid character: %c", c)
		}
	}
}

func TestGenerateUniqueness(t *testing.T) {
	const n = 100
	seen := make(map[string]bool, n)

	for i := 0; i < n; i++ {
		v := Generate()
		if seen[v] {
			t.Errorf("duplicate value generated: %s", v)
		}
		seen[v] = true
	}
}

func TestGenerateDistribution(t *testing.T) {
	// Per position, each alphabet character should appear roughly
	// samples/36 times. The bounds are ~10 standard deviations wide so
	// the test does not flake.
	const samples = 36000
	const expected = samples / len(Alphabet)

	counts := make([]map[byte]int, Length)
	for i := range counts {
		counts[i] = make(map[byte]int, len(Alphabet))
	}

	for i := 0; i < samples; i++ {
		v := Generate()
		for pos := 0; pos < Length; pos++ {
			counts[pos][v[pos]]++
		}
	}

	for pos := 0; pos < Length; pos++ {
		for i := 0; i < len(Alphabet); i++ {
			c := Alphabet[i]
			got := counts[pos][c]
			if got < expected*7/10 || got > expected*13/10 {
				t.Errorf("position %d char %c: count = %d, want ~%d", pos, c, got, expected)
			}
		}
	}
}

func TestGenerateConcurrent(t *testing.T) {
	const goroutines = 50
	const perGoroutine = 200

	var wg sync.WaitGroup
	errCh := make(chan string, goroutines)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				v := Generate()
				if len(v) != Length {
					errCh <- v
					return
				}
				for j := 0; j < len(v); j++ {
					if !strings.Contains(Alphabet, string(v[j])) {
						errCh <- v
						return
					}
				}
			}
		}()
	}

	wg.Wait()
	close(errCh)

	for v := range errCh {
		t.Errorf("concurrent generation produced invalid value: %q", v)
	}
}
