package snapmatic

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/xingbase/snapmatic/file"
	"github.com/xingbase/snapmatic/logger"
)

// Config holds everything a Converter needs. It is passed in at
// construction; there are no package-level defaults.
type Config struct {
	SrcPath string
	DstPath string
	Prefix  string
	Log     logger.ILogger
}

// Result is the outcome of converting one container file in a batch.
type Result struct {
	Name string
	Err  error
}

// Failed counts the errored entries in a batch result list.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

type Converter struct {
	cfg Config
}

func NewConverter(cfg Config) *Converter {
	if cfg.Prefix == "" {
		cfg.Prefix = file.DefaultPrefix
	}
	if cfg.Log == nil {
		cfg.Log = &logger.NullLogger{}
	}
	return &Converter{cfg: cfg}
}

// ConvertFile reads one container from the source directory, extracts the
// embedded JPEG and writes it to the destination directory as <name>.jpg.
// The destination directory is created if absent.
func (c *Converter) ConvertFile(name string) error {
	if name == "" {
		return errors.New("empty container file name")
	}

	data, err := os.ReadFile(filepath.Join(c.cfg.SrcPath, name))
	if err != nil {
		return errors.Wrapf(err, "reading container %s", name)
	}

	jpeg, err := Extract(data)
	if err != nil {
		return errors.Wrapf(err, "extracting %s", name)
	}

	if !HasEndOfImage(jpeg) {
		c.cfg.Log.Debugf("%s: no end-of-image trailer, stream may be truncated", name)
	}

	if err := os.MkdirAll(c.cfg.DstPath, 0777); err != nil {
		return errors.Wrapf(err, "creating destination %s", c.cfg.DstPath)
	}

	dst := filepath.Join(c.cfg.DstPath, file.JPEGName(name))
	if err := os.WriteFile(dst, jpeg, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", dst)
	}

	c.cfg.Log.Debugf("converted %s: %d container bytes -> %d jpeg bytes", name, len(data), len(jpeg))
	return nil
}

// ConvertAll converts every container file in the source directory.
// Per-file failures land in the result list and do not stop the batch;
// the error return is for the batch itself (source directory missing).
func (c *Converter) ConvertAll() ([]Result, error) {
	names, err := file.ListContainers(c.cfg.SrcPath, c.cfg.Prefix)
	if err != nil {
		return nil, err
	}

	return c.convert(names), nil
}

// ConvertFiles converts the named subset of the discovered containers.
// Requested names absent from the source directory get a NotFound result.
func (c *Converter) ConvertFiles(names []string) ([]Result, error) {
	if len(names) == 0 {
		return nil, errors.New("no container file names given")
	}

	found, err := file.ListContainers(c.cfg.SrcPath, c.cfg.Prefix)
	if err != nil {
		return nil, err
	}

	matched, missing := file.Intersect(found, names)

	results := c.convert(matched)
	for _, name := range missing {
		results = append(results, Result{
			Name: name,
			Err:  errors.Wrapf(os.ErrNotExist, "container %s not found in %s", name, c.cfg.SrcPath),
		})
	}

	return results, nil
}

func (c *Converter) convert(names []string) []Result {
	results := make([]Result, 0, len(names))
	for _, name := range names {
		err := c.ConvertFile(name)
		if err != nil {
			c.cfg.Log.Errorf("converting %s: %v", name, err)
		}
		results = append(results, Result{Name: name, Err: err})
	}
	return results
}
