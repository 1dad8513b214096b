package render

import (
	"fmt"
	"sync"
	"testing"

	"github.com/diogo/symptrack/internal/models"
)

func TestCache_OneRendererPerOptionSet(t *testing.T) {
	ClearCache()
	defer ClearCache()

	if _, err := Markdown("**hello**", DefaultOptions()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Markdown("*other*", DefaultOptions()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if CacheSize() != 1 {
		t.Errorf("expected 1 renderer, got %d", CacheSize())
	}

	if _, err := Markdown("**hello**", DefaultOptions().WithTheme(models.ThemeLight)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if CacheSize() != 2 {
		t.Errorf("expected 2 renderers, got %d", CacheSize())
	}
}

func TestCache_MemoisesOutput(t *testing.T) {
	ClearCache()
	defer ClearCache()

	opts := DefaultOptions()
	first, err := Markdown(models.WelcomeMarkdown(), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := globalCache.outputs[outputKey{opts: opts, content: models.WelcomeMarkdown()}]; !ok {
		t.Fatal("expected output to be memoised")
	}

	second, err := Markdown(models.WelcomeMarkdown(), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Error("memoised output differs from the first render")
	}
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	ClearCache()
	defer ClearCache()

	// A window resize produces a new width each time
	for w := 40; w < 40+maxRenderers+3; w++ {
		if _, err := Markdown("resize", DefaultOptions().WithWidth(w)); err != nil {
			t.Fatalf("width %d: %v", w, err)
		}
	}
	if CacheSize() != maxRenderers {
		t.Errorf("expected %d renderers, got %d", maxRenderers, CacheSize())
	}

	evicted := DefaultOptions().WithWidth(40)
	if _, ok := globalCache.entries[evicted]; ok {
		t.Error("oldest width should have been evicted")
	}
	if _, ok := globalCache.outputs[outputKey{opts: evicted, content: "resize"}]; ok {
		t.Error("output of an evicted renderer should be dropped")
	}
	if _, ok := globalCache.entries[DefaultOptions().WithWidth(40+maxRenderers+2)]; !ok {
		t.Error("newest width should be cached")
	}
}

func TestCache_OutputBound(t *testing.T) {
	ClearCache()
	defer ClearCache()

	for i := 0; i < maxOutputs+5; i++ {
		if _, err := Markdown(fmt.Sprintf("reply %d", i), DefaultOptions()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if n := len(globalCache.outputs); n > maxOutputs {
		t.Errorf("expected at most %d memoised outputs, got %d", maxOutputs, n)
	}
}

func TestCache_Concurrency(t *testing.T) {
	ClearCache()
	defer ClearCache()

	opts := DefaultOptions()
	var wg sync.WaitGroup
	errs := make(chan error, 50)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := Markdown(fmt.Sprintf("Please describe symptom %d.", i%5), opts); err != nil {
				errs <- err
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent access error: %v", err)
	}
	if CacheSize() != 1 {
		t.Errorf("expected 1 renderer after concurrent access, got %d", CacheSize())
	}
}

func TestCreateRenderer_EmptyStyleFallsBack(t *testing.T) {
	opts := DefaultOptions()
	opts.Style = ""

	renderer, err := createRenderer(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output, err := renderer.Render("# Test")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if output == "" {
		t.Error("expected non-empty output")
	}
}
