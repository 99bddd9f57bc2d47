package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/viniciusth/tandem"
)

type inputType string

const (
	inputRandom    inputType = "random"
	inputFibonacci inputType = "fibonacci"
	inputPeriodic  inputType = "periodic"
)

type memMonitor struct {
	maxAlloc uint64
	stop     chan struct{}
}

func newMemMonitor() *memMonitor {
	mm := &memMonitor{stop: make(chan struct{})}
	go func() {
		for {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			if m.Alloc > mm.maxAlloc {
				mm.maxAlloc = m.Alloc
			}
			select {
			case <-mm.stop:
				return
			default:
				time.Sleep(10 * time.Millisecond)
			}
		}
	}()
	return mm
}

func (mm *memMonitor) Stop() uint64 {
	close(mm.stop)
	return mm.maxAlloc
}

func generate(r *rand.Rand, kind inputType, n, alphabet int) (string, error) {
	switch kind {
	case inputRandom:
		b := make([]byte, n)
		for i := range b {
			b[i] = byte(r.Intn(alphabet) + 'a')
		}
		return string(b), nil
	case inputFibonacci:
		a, b := "a", "ab"
		for len(b) < n {
			a, b = b, b+a
		}
		return b[:n], nil
	case inputPeriodic:
		return strings.Repeat("a", n), nil
	default:
		return "", fmt.Errorf("unknown input type %q", kind)
	}
}

func measure(text string, validate bool) (time.Duration, uint64, int, error) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	repeats := tandem.MaximalPrimitiveTandemRepeats(text)
	dur := time.Since(start)
	peak := mm.Stop()
	if validate {
		if err := tandem.Validate(text, repeats); err != nil {
			return 0, 0, 0, err
		}
	}
	return dur, peak, len(repeats), nil
}

func runBenchmark(kind inputType, n, alphabet, runs int, validate bool) error {
	for run := 0; run < runs; run++ {
		r := rand.New(rand.NewSource(int64(run)))
		text, err := generate(r, kind, n, alphabet)
		if err != nil {
			return err
		}
		dur, peak, found, err := measure(text, validate)
		if err != nil {
			return err
		}
		fmt.Printf("%s,%d,%d,%.0f,%d,%d\n", kind, n, alphabet, float64(dur.Nanoseconds()), peak, found)
	}
	return nil
}

func main() {
	n := flag.Int("n", 0, "Text length N")
	alphabet := flag.Int("alphabet", 4, "Alphabet size for random input (1-26)")
	d := flag.String("input", "random", "Input: random, fibonacci or periodic")
	runs := flag.Int("runs", 3, "Number of runs for averaging")
	validate := flag.Bool("validate", false, "Check every repeat found")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if *n <= 0 || *alphabet < 1 || *alphabet > 26 {
		fmt.Println("Usage: go run main.go -n=<N> [-input=<input>] [-alphabet=<K>] [-runs=<runs>] [-validate]")
		os.Exit(1)
	}

	if err := runBenchmark(inputType(*d), *n, *alphabet, *runs, *validate); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
