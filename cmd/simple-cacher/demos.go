package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	cache "github.com/prizzledev/simple-cacher"
	"github.com/prizzledev/simple-cacher/expiration"
	"github.com/prizzledev/simple-cacher/matcher"
	"github.com/prizzledev/simple-cacher/syncstore"
	"github.com/prizzledev/simple-cacher/types"
)

func demoExpiry(ctx context.Context, w io.Writer, opts []cache.Option) error {
	c := cache.New[string, int](100*time.Millisecond, opts...)
	c.Insert("a", 1)
	fmt.Fprintln(w, "CACHE  → PUT a (TTL = 100ms)")
	fmt.Fprintln(w, "CACHE  → GET a =", lookup(c, "a"))

	if err := sleep(ctx, 150*time.Millisecond); err != nil {
		return err
	}
	fmt.Fprintln(w, "CACHE  → GET a after 150ms =", lookup(c, "a"))
	fmt.Fprintln(w, "CACHE  → GET a again =", lookup(c, "a"))
	return nil
}

func demoEviction(w io.Writer, opts []cache.Option) error {
	c := cache.NewWithCapacity[int, string](10*time.Second, 2, opts...)
	c.SetEvictCallback(func(k int, v string) {
		fmt.Fprintf(w, "CACHE  → EVICT %d (%s)\n", k, v)
	})

	for i := 1; i <= 3; i++ {
		c.Insert(i, fmt.Sprintf("v%d", i))
		fmt.Fprintf(w, "CACHE  → PUT %d\n", i)
	}
	for i := 1; i <= 3; i++ {
		fmt.Fprintf(w, "CACHE  → GET %d = %s\n", i, lookup(c, i))
	}
	return nil
}

func demoPrefix(w io.Writer, opts []cache.Option) error {
	c := cache.New[string, string](time.Minute, opts...)
	c.Insert("user:alice", "Alice")
	c.Insert("user:bob", "Bob")
	c.Insert("admin:carl", "Carl")

	for _, p := range c.GetAllByMatcher(matcher.Prefix("user:")) {
		fmt.Fprintf(w, "MATCH  → %s = %s\n", p.Key, p.Entry.Value())
	}
	return nil
}

func demoRange(w io.Writer, opts []cache.Option) error {
	c := cache.New[int, string](time.Minute, opts...)
	c.Insert(5, "a")
	c.Insert(10, "b")
	c.Insert(15, "c")

	e, err := c.GetByMatcher(matcher.Range(6, 12))
	fmt.Fprintln(w, "MATCH  → first key in [6, 12] =", show(e, err))
	return nil
}

func demoCleanup(ctx context.Context, w io.Writer, opts []cache.Option) error {
	c := cache.New[string, int](time.Minute, opts...)
	c.InsertWithTTL("a", 1, 50*time.Millisecond)

	if err := sleep(ctx, 60*time.Millisecond); err != nil {
		return err
	}
	fmt.Fprintln(w, "CLEANUP → removed", c.CleanupExpired())
	fmt.Fprintln(w, "CLEANUP → len =", c.Len())
	return nil
}

type file struct {
	content string
	size    int
}

func newFile(content string) file {
	return file{content: content, size: len(content)}
}

// directory selects paths under one directory.
type directory string

func (d directory) Matches(path string) bool {
	return strings.HasPrefix(path, string(d)+"/")
}

func extension(ext string) matcher.Matcher[string] {
	return matcher.Func[string](func(path string) bool {
		return strings.HasSuffix(path, "."+ext)
	})
}

func demoFiles(cfg Config, logger *slog.Logger, w io.Writer, opts []cache.Option) error {
	c := cache.NewWithCapacity[string, file](cfg.DefaultTTL, cfg.Capacity, opts...)

	files := []struct{ path, content string }{
		{"/src/main.go", `func main() { fmt.Println("Hello, world!") }`},
		{"/src/cache.go", "package cache"},
		{"/config/app.toml", "[database]\nurl = \"localhost:5432\""},
		{"/config/nginx.conf", "server { listen 80; }"},
		{"/docs/README.md", "# Project Documentation"},
		{"/docs/CHANGELOG.md", "# Changelog\n\n## v1.0.0"},
		{"/tests/cache_test.go", "func TestCache(t *testing.T) {}"},
	}
	for _, f := range files {
		c.Insert(f.path, newFile(f.content))
	}
	fmt.Fprintf(w, "FILES  → cached %d files\n", c.Len())

	for _, q := range []struct {
		label string
		m     matcher.Matcher[string]
	}{
		{"in /src", directory("/src")},
		{"*.go", extension("go")},
		{"*.md outside /src", matcher.All(extension("md"), matcher.Not[string](directory("/src")))},
	} {
		for _, p := range c.GetAllByMatcher(q.m) {
			fmt.Fprintf(w, "FILES  → %s: %s (%d bytes)\n", q.label, p.Key, p.Entry.Value().size)
		}
	}

	e, err := c.GetMut("/src/main.go")
	if err == nil {
		e.Set(newFile(`func main() { fmt.Println("Hello, updated world!") }`))
		fmt.Fprintf(w, "FILES  → updated /src/main.go: %d bytes\n", e.Value().size)
	}

	total := 0
	for _, e := range c.IterActive() {
		total += e.Value().size
	}
	fmt.Fprintf(w, "FILES  → total cached size: %d bytes\n", total)

	logger.Info("file cache stats", slog.Any("stats", c.Stats()))
	return nil
}

func demoRegex(w io.Writer, opts []cache.Option) error {
	c := cache.New[string, string](30*time.Minute, opts...)

	keys := []string{
		"alice@company.com",
		"bob.smith@example.org",
		"invalid-email-format",
		"v1.0.0",
		"v3.0.0-beta",
		"not-a-version",
		"550e8400-e29b-41d4-a716",
	}
	for range 3 {
		keys = append(keys, uuid.NewString())
	}
	for _, k := range keys {
		c.Insert(k, "value of "+k)
	}

	patterns := []struct{ label, expr string }{
		{"email", `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`},
		{"semver", `^v?(\d+)\.(\d+)\.(\d+)(-[a-zA-Z0-9]+)?$`},
		{"uuid", `^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`},
	}
	for _, p := range patterns {
		m, err := matcher.Regexp(p.expr)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "REGEX  → %s: %d matches\n", p.label, len(c.KeysByMatcher(m)))
	}
	return nil
}

func demoReadThrough(ctx context.Context, cfg Config, logger *slog.Logger, w io.Writer, opts []cache.Option) error {
	s := syncstore.New[string, string](cfg.DefaultTTL, opts...)

	sweeper := expiration.NewSweeper(s, cfg.SweepInterval, logger)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	backing := map[string]string{"a": "alpha", "b": "beta"}
	var loads atomic.Int32
	loader := types.LoaderFunc[string, string](func(ctx context.Context, key string) (string, error) {
		loads.Add(1)
		if err := sleep(ctx, 20*time.Millisecond); err != nil {
			return "", err
		}
		v, ok := backing[key]
		if !ok {
			return "", cache.ErrNotFound
		}
		return v, nil
	})

	var wg sync.WaitGroup
	for i := range 5 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			v, err := s.GetOrLoad(ctx, "b", loader)
			if err != nil {
				logger.Warn("read-through failed", slog.Int("goroutine", id), slog.Any("error", err))
				return
			}
			logger.Debug("read-through", slog.Int("goroutine", id), slog.String("value", v))
		}(i)
	}
	wg.Wait()
	fmt.Fprintln(w, "LOADER → concurrent GET b, loads =", loads.Load())

	if _, err := s.GetOrLoad(ctx, "zzz", loader); err != nil {
		fmt.Fprintln(w, "LOADER → GET zzz =", "error: "+err.Error())
	}
	fmt.Fprintln(w, "LOADER → cached keys =", s.Len())
	return nil
}
