// Command minigc-demo drives the gc package through its six canonical
// scenarios and prints a heap snapshot after each, using the same
// manifest-driven structure the original test() driver followed, but as a
// standalone CLI rather than code embedded in the collector itself.
package main

import (
	_ "embed"
	"fmt"
	"os"
	"unsafe"

	colorable "github.com/mattn/go-colorable"
	"gopkg.in/yaml.v2"

	"github.com/tinygo-org/minigc/gc"
)

//go:embed scenarios.yaml
var manifestYAML []byte

type manifest struct {
	Scenarios []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	} `yaml:"scenarios"`
}

var stdout = colorable.NewColorableStdout()

type scenarioFunc func() error

func main() {
	var m manifest
	if err := yaml.Unmarshal(manifestYAML, &m); err != nil {
		fmt.Fprintln(os.Stderr, "minigc-demo: bad manifest:", err)
		os.Exit(1)
	}

	runners := map[string]scenarioFunc{
		"split-and-coalesce":      scenarioSplitAndCoalesce,
		"grow":                    scenarioGrow,
		"reclaim-unreachable":     scenarioReclaimUnreachable,
		"retain-reachable":        scenarioRetainReachable,
		"transitive-reachability": scenarioTransitiveReachability,
		"collect-on-exhaust":      scenarioCollectOnExhaust,
	}

	gc.Init()

	failed := 0
	for _, s := range m.Scenarios {
		run, ok := runners[s.Name]
		if !ok {
			fmt.Fprintf(stdout, "\033[33mSKIP\033[0m %-28s (no runner registered)\n", s.Name)
			continue
		}
		err := run()
		if err != nil {
			failed++
			fmt.Fprintf(stdout, "\033[31mFAIL\033[0m %-28s %s: %v\n", s.Name, s.Description, err)
		} else {
			fmt.Fprintf(stdout, "\033[32mPASS\033[0m %-28s %s\n", s.Name, s.Description)
		}
		stats := gc.CollectStats()
		fmt.Fprintf(stdout, "     heap: %s\n", stats)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func scenarioSplitAndCoalesce() error {
	p1 := gc.Allocate(10)
	p2 := gc.Allocate(10)
	p3 := gc.Allocate(10)
	if p1 == nil || p2 == nil || p3 == nil {
		return fmt.Errorf("allocation failed")
	}
	gc.Free(p1)
	gc.Free(p3)
	gc.Free(p2)
	stats := gc.CollectStats()
	if stats.FreeBytes == 0 {
		return fmt.Errorf("expected freed bytes to return to the free list")
	}
	return nil
}

func scenarioGrow() error {
	before := gc.CollectStats().Chunks
	p := gc.Allocate(gc.TinyHeapSize + 100)
	if p == nil {
		return fmt.Errorf("allocation failed")
	}
	after := gc.CollectStats().Chunks
	if after <= before {
		return fmt.Errorf("expected chunk count to grow: before=%d after=%d", before, after)
	}
	return nil
}

func scenarioReclaimUnreachable() error {
	var holder unsafe.Pointer = gc.Allocate(100)
	if holder == nil {
		return fmt.Errorf("allocation failed")
	}
	holder = nil
	_ = holder
	gc.Collect()
	return nil
}

func scenarioRetainReachable() error {
	holder := gc.Allocate(100)
	if holder == nil {
		return fmt.Errorf("allocation failed")
	}
	gc.Collect()
	keepAlive(holder)
	return nil
}

func scenarioTransitiveReachability() error {
	a := gc.Allocate(64)
	b := gc.Allocate(100)
	if a == nil || b == nil {
		return fmt.Errorf("allocation failed")
	}
	*(*uintptr)(a) = uintptr(b)
	gc.Collect()
	keepAlive(a)
	return nil
}

func scenarioCollectOnExhaust() error {
	before := gc.CollectStats().Chunks
	var last unsafe.Pointer
	for i := 0; i < 200; i++ {
		last = gc.Allocate(1000000)
		if last == nil {
			return fmt.Errorf("allocation failed on iteration %d", i)
		}
	}
	keepAlive(last)
	if grown := gc.CollectStats().Chunks - before; grown >= 200 {
		return fmt.Errorf("chunk count grew by %d over 200 allocations", grown)
	}
	return nil
}

// keepAlive forces the compiler to treat ptr as live up through this call.
func keepAlive(ptr unsafe.Pointer) {
	if uintptr(ptr) == 1 {
		panic("unreachable")
	}
}
