package aebgroup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/karrick/godirwalk"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// imageExts are the file types always considered.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tif":  true,
	".tiff": true,
}

// rawExts are camera RAW types, scanned only with Config.WithRaw.
var rawExts = map[string]bool{
	".arw": true,
	".cr2": true,
	".dcr": true,
	".dng": true,
	".k25": true,
	".kdc": true,
	".mrw": true,
	".nef": true,
	".orf": true,
	".pef": true,
	".raf": true,
	".raw": true,
	".rw2": true,
	".sr2": true,
	".srf": true,
	".x3f": true,
}

func isImageFile(path string, withRaw bool) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return imageExts[ext] || (withRaw && rawExts[ext])
}

// Result is a fully materialized scan plus its grouping.
type Result struct {
	Images []*Image
	Bursts []Burst
}

// Collect scans c.InDir and groups the AEB images it finds.
func Collect(ctx context.Context, c *Config) (*Result, error) {
	is, err := Scan(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return &Result{Images: is, Bursts: Group(is)}, nil
}

// Scan walks c.InDir for candidate image files and extracts their
// metadata across a worker pool bounded by c.Jobs, one Fetcher per
// worker. It returns only AEB-classified images; non-AEB files are
// excluded here, before grouping. Any extraction failure or context
// cancellation discards the whole scan so that partial results never
// reach Group.
func Scan(ctx context.Context, c *Config) ([]*Image, error) {
	paths := []string{}
	err := godirwalk.Walk(c.InDir, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if filepath.Base(path)[0] == '.' {
				return godirwalk.SkipThis
			}
			if de.IsDir() {
				return nil
			}
			if isImageFile(path, c.WithRaw) {
				paths = append(paths, path)
			}
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", c.InDir, err)
	}
	klog.V(1).Infof("found %d candidate files in %s", len(paths), c.InDir)

	jobs := c.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(paths) {
		jobs = len(paths)
	}

	// Fan-out/fan-in: workers fill write-once slots indexed by path
	// position, so the output order is independent of scheduling.
	records := make([]*Image, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	todo := make(chan int)

	g.Go(func() error {
		defer close(todo)
		for n := range paths {
			select {
			case todo <- n:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	newFetcher := c.fetcherFactory()
	for w := 0; w < jobs; w++ {
		g.Go(func() error {
			f, err := newFetcher()
			if err != nil {
				return fmt.Errorf("fetcher: %w", err)
			}
			defer func() {
				if err := f.Close(); err != nil {
					klog.Warningf("fetcher close: %v", err)
				}
			}()

			for n := range todo {
				i, err := readImage(paths[n], f)
				if err != nil {
					return err
				}
				records[n] = i
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	found := []*Image{}
	for _, i := range records {
		if !i.Bracket.AEB {
			klog.V(1).Infof("%s: not an AEB image, skipping", i.Path)
			continue
		}
		klog.Infof("found AEB image %s", i)
		found = append(found, i)
	}
	return found, nil
}

// readImage fetches one file's metadata and resolves it into a record.
// An empty metadata map degrades to a non-AEB record with the mod
// time as capture time; only fetch or stat failures are errors.
func readImage(path string, f Fetcher) (*Image, error) {
	md, err := f.Fetch(path)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	return newImage(path, fi.ModTime().Truncate(time.Second), md), nil
}
