package devices

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mobile-next/mobiletouch/utils"
)

const DefaultProbeCacheSize = 8

// ProbeCache remembers which node a device request resolved to, so a server
// handling many gestures does not rescan every candidate node each time.
// Entries are keyed by the requested path, with "" meaning "scan".
type ProbeCache struct {
	prober *Prober
	cache  *lru.Cache[string, string]

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	done    chan struct{}
}

func NewProbeCache(prober *Prober, size int) (*ProbeCache, error) {
	if size <= 0 {
		size = DefaultProbeCacheSize
	}

	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create probe cache: %w", err)
	}

	return &ProbeCache{
		prober: prober,
		cache:  cache,
	}, nil
}

// Open resolves and opens the touch device for path ("" scans). A cached
// node is re-qualified before use; if it no longer qualifies the entry is
// dropped and a fresh lookup runs.
func (c *ProbeCache) Open(path string) (*TouchDevice, error) {
	if resolved, ok := c.cache.Get(path); ok {
		device, err := c.prober.Probe(resolved)
		if err == nil {
			utils.Verbose("Probe cache hit: %q -> %s", path, resolved)
			return device, nil
		}
		utils.Verbose("Cached touch device %s is stale: %v", resolved, err)
		c.cache.Remove(path)
	}

	var device *TouchDevice
	var err error
	if path == "" {
		device, err = c.prober.Find()
	} else {
		device, err = c.prober.Probe(path)
	}
	if err != nil {
		return nil, err
	}

	c.cache.Add(path, device.Path)
	return device, nil
}

// Invalidate forgets every resolved device.
func (c *ProbeCache) Invalidate() {
	c.cache.Purge()
}

func (c *ProbeCache) Len() int {
	return c.cache.Len()
}

// Watch invalidates the cache whenever input nodes appear or disappear in the
// directory holding the candidate nodes.
func (c *ProbeCache) Watch() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.watcher != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create input watcher: %w", err)
	}

	dir := filepath.Dir(c.prober.PathPattern)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	c.watcher = watcher
	c.done = make(chan struct{})
	go c.watch(watcher, c.done)

	utils.Verbose("Watching %s for input device changes", dir)
	return nil
}

func (c *ProbeCache) watch(watcher *fsnotify.Watcher, done chan struct{}) {
	defer close(done)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				utils.Verbose("Input device change (%s), invalidating probe cache", event)
				c.Invalidate()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			utils.Verbose("Input watcher error: %v", err)
		}
	}
}

// Close stops the watcher started by Watch.
func (c *ProbeCache) Close() error {
	c.mu.Lock()
	watcher, done := c.watcher, c.done
	c.watcher, c.done = nil, nil
	c.mu.Unlock()

	if watcher == nil {
		return nil
	}

	err := watcher.Close()
	<-done
	return err
}
