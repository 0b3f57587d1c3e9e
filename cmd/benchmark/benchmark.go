package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/prizzledev/simple-cacher/api"
	"github.com/prizzledev/simple-cacher/matcher"
	"github.com/prizzledev/simple-cacher/syncstore"
)

// ================= BENCHMARK =================

func main() {
	// ---------------- Cache Config ----------------
	const (
		capacity    = 200000
		preloadKeys = 100000
		goroutines  = 200
		opsPerG     = 5000
		writeEvery  = 10
		scans       = 20
	)

	fmt.Println("\n================ CACHE LOAD BENCHMARK =================")
	fmt.Println("CONFIG")
	fmt.Println("---------------------------------")
	fmt.Println("Capacity     :", capacity)
	fmt.Println("Preload Keys :", preloadKeys)
	fmt.Println("Goroutines   :", goroutines)
	fmt.Println("Ops/Goroutine:", opsPerG)
	fmt.Println("Write ratio  :", fmt.Sprintf("1/%d", writeEvery))
	fmt.Println("---------------------------------")

	c := syncstore.NewWithCapacity[string, int](60*time.Second, capacity)

	// ---------------- Preload Cache ----------------
	fmt.Println("Preloading cache...")
	keys := make([]string, preloadKeys)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
		c.Insert(keys[i], i)
	}
	fmt.Println("Preload complete.")

	// ---------------- Load Test ----------------
	fmt.Println("Running concurrency benchmark...")

	duration := runLoad(c, keys, goroutines, opsPerG, writeEvery)
	totalOps := goroutines * opsPerG

	// ---------------- Matcher Scans ----------------
	fmt.Println("Running matcher scans...")

	m := matcher.Prefix("key-9")
	scanStart := time.Now()
	matched := 0
	for range scans {
		matched = len(c.GetAllByMatcher(m))
	}
	scanDuration := time.Since(scanStart)

	stats := c.Stats()

	fmt.Println("\n================ RESULTS =================")
	fmt.Printf("Total Operations : %d\n", totalOps)
	fmt.Printf("Total Time       : %v\n", duration)
	fmt.Printf("Throughput       : %.2f ops/sec\n", float64(totalOps)/duration.Seconds())
	fmt.Printf("Scan Time        : %v per scan (%d matches)\n", scanDuration/scans, matched)
	fmt.Printf("Entries          : %d active / %d total\n", stats.ActiveEntries, stats.TotalEntries)
	fmt.Println("=========================================")
}

// runLoad hammers c with a read-mostly mix and reports the wall time.
func runLoad(c api.Cache[string, int], keys []string, goroutines, opsPerG, writeEvery int) time.Duration {
	start := time.Now()

	wg := sync.WaitGroup{}
	wg.Add(goroutines)

	for g := range goroutines {
		go func(id int) {
			defer wg.Done()
			for j := range opsPerG {
				key := keys[(id*opsPerG+j)%len(keys)]
				if j%writeEvery == 0 {
					c.Insert(key, j)
					continue
				}
				_, _ = c.Get(key)
			}
		}(g)
	}

	wg.Wait()
	return time.Since(start)
}
