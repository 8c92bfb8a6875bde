// Package pipeline is the concurrent batch path: channel stages feeding a
// fanned-out save step. Each container is an independent unit of work, so
// the only shared step is the destination mkdir, which is idempotent.
package pipeline

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/xingbase/snapmatic"
	"github.com/xingbase/snapmatic/file"
)

// Item carries one container through the stages. Err short-circuits the
// later stages so the failure still reaches the result list.
type Item struct {
	Name string
	Data []byte
	JPEG []byte
	Err  error
}

// Load reads every prefixed container file in dir into the stream.
func Load(dir string, prefix string) (<-chan Item, error) {
	names, err := file.ListContainers(dir, prefix)
	if err != nil {
		return nil, err
	}

	out := make(chan Item)

	go func() {
		defer close(out)
		for _, name := range names {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				out <- Item{Name: name, Err: errors.Wrapf(err, "reading container %s", name)}
				continue
			}
			out <- Item{Name: name, Data: data}
		}
	}()

	return out, nil
}

// Extract locates the embedded JPEG stream in each loaded container.
func Extract(in <-chan Item) <-chan Item {
	out := make(chan Item)

	go func() {
		defer close(out)
		for item := range in {
			if item.Err != nil {
				out <- item
				continue
			}

			jpeg, err := snapmatic.Extract(item.Data)
			if err != nil {
				item.Err = errors.Wrapf(err, "extracting %s", item.Name)
				out <- item
				continue
			}

			item.JPEG = jpeg
			item.Data = nil
			out <- item
		}
	}()

	return out
}

// Save writes each extracted stream to dstDir as <name>.jpg, one goroutine
// per item, and collects the per-file outcomes.
func Save(in <-chan Item, dstDir string) []snapmatic.Result {
	if err := os.MkdirAll(dstDir, 0777); err != nil {
		// drain the stages so their goroutines exit
		results := []snapmatic.Result{}
		for item := range in {
			itemErr := item.Err
			if itemErr == nil {
				itemErr = errors.Wrapf(err, "creating destination %s", dstDir)
			}
			results = append(results, snapmatic.Result{Name: item.Name, Err: itemErr})
		}
		return results
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	results := []snapmatic.Result{}

	for item := range in {
		if item.Err != nil {
			mu.Lock()
			results = append(results, snapmatic.Result{Name: item.Name, Err: item.Err})
			mu.Unlock()
			continue
		}

		wg.Add(1)
		go func(item Item) {
			defer wg.Done()

			dst := filepath.Join(dstDir, file.JPEGName(item.Name))
			err := os.WriteFile(dst, item.JPEG, 0644)
			if err != nil {
				err = errors.Wrapf(err, "writing %s", dst)
			}

			mu.Lock()
			results = append(results, snapmatic.Result{Name: item.Name, Err: err})
			mu.Unlock()
		}(item)
	}
	wg.Wait()

	return results
}

// Run wires the full stage chain for one batch.
func Run(srcDir string, dstDir string, prefix string) ([]snapmatic.Result, error) {
	items, err := Load(srcDir, prefix)
	if err != nil {
		return nil, err
	}

	return Save(Extract(items), dstDir), nil
}
