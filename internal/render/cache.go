package render

import (
	"container/list"
	"sync"

	"github.com/charmbracelet/glamour"
)

const (
	// Resizes mint a new width each time, so old renderers are evicted
	maxRenderers = 8
	maxOutputs   = 64
)

// entry is one renderer; glamour.TermRenderer is not safe for concurrent Render calls
type entry struct {
	opts Options
	mu   sync.Mutex
	tr   *glamour.TermRenderer
}

type outputKey struct {
	opts    Options
	content string
}

// rendererCache holds renderers per option set in LRU order, plus the
// output of recent renders. The chat re-renders the same welcome text and
// canned replies on every transcript refresh.
type rendererCache struct {
	mu      sync.Mutex
	lru     *list.List // of *entry, most recent first
	entries map[Options]*list.Element
	outputs map[outputKey]string
}

var globalCache = newRendererCache()

func newRendererCache() *rendererCache {
	return &rendererCache{
		lru:     list.New(),
		entries: make(map[Options]*list.Element),
		outputs: make(map[outputKey]string),
	}
}

// render returns the glamour output for content, reusing earlier results
func (c *rendererCache) render(content string, opts Options) (string, error) {
	key := outputKey{opts: opts, content: content}

	c.mu.Lock()
	if out, ok := c.outputs[key]; ok {
		c.mu.Unlock()
		return out, nil
	}
	e, err := c.renderer(opts)
	c.mu.Unlock()
	if err != nil {
		return "", err
	}

	e.mu.Lock()
	out, err := e.tr.Render(content)
	e.mu.Unlock()
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	if len(c.outputs) >= maxOutputs {
		c.outputs = make(map[outputKey]string)
	}
	c.outputs[key] = out
	c.mu.Unlock()
	return out, nil
}

// renderer returns the entry for opts, creating it if needed. c.mu must be held.
func (c *rendererCache) renderer(opts Options) (*entry, error) {
	if el, ok := c.entries[opts]; ok {
		c.lru.MoveToFront(el)
		return el.Value.(*entry), nil
	}

	tr, err := createRenderer(opts)
	if err != nil {
		return nil, err
	}
	e := &entry{opts: opts, tr: tr}
	c.entries[opts] = c.lru.PushFront(e)

	for c.lru.Len() > maxRenderers {
		oldest := c.lru.Back()
		stale := oldest.Value.(*entry).opts
		c.lru.Remove(oldest)
		delete(c.entries, stale)
		for k := range c.outputs {
			if k.opts == stale {
				delete(c.outputs, k)
			}
		}
	}
	return e, nil
}

func createRenderer(opts Options) (*glamour.TermRenderer, error) {
	style := opts.Style
	if style == "" {
		style = DefaultOptions().Style
	}

	rendererOpts := []glamour.TermRendererOption{
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(opts.Width),
	}
	if opts.EnableEmoji {
		rendererOpts = append(rendererOpts, glamour.WithEmoji())
	}
	if opts.PreserveNewLines {
		rendererOpts = append(rendererOpts, glamour.WithPreservedNewLines())
	}
	return glamour.NewTermRenderer(rendererOpts...)
}

// ClearCache drops every renderer and memoised output.
func ClearCache() {
	fresh := newRendererCache()
	globalCache.mu.Lock()
	globalCache.lru = fresh.lru
	globalCache.entries = fresh.entries
	globalCache.outputs = fresh.outputs
	globalCache.mu.Unlock()
}

// CacheSize returns the number of live renderer configurations.
func CacheSize() int {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	return globalCache.lru.Len()
}
