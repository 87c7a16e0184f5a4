// aebgroup finds Auto Exposure Bracketing photos in a directory and
// groups them by shooting burst for HDR merging.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"k8s.io/klog/v2"

	"github.com/fsnotify/fsnotify"
	"github.com/hdrtools/aebgroup/pkg/aebgroup"
)

var (
	inDir     = flag.String("in", "", "Location of input directory")
	outDir    = flag.String("out", "", "Optional directory to copy grouped bursts into")
	jobs      = flag.Int("jobs", 0, "Number of metadata extraction workers (0 = one per CPU)")
	withRaw   = flag.Bool("with-raw", false, "Include RAW files")
	jsonOut   = flag.Bool("json", false, "Output the result as JSON instead of text")
	thumbs    = flag.Bool("thumbs", false, "Write preview thumbnails next to exported images")
	watchFlag = flag.Bool("watch", false, "Watch for changes to the input directory and regroup")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *inDir == "" {
		klog.Exitf("--in is a required flag")
	}
	if fi, err := os.Stat(*inDir); err != nil || !fi.IsDir() {
		klog.Exitf("%q is not a directory", *inDir)
	}

	c := &aebgroup.Config{
		InDir:   *inDir,
		OutDir:  *outDir,
		Jobs:    *jobs,
		WithRaw: *withRaw,
		Thumbs:  *thumbs,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, c); err != nil {
		klog.Exitf("group failed: %v", err)
	}

	if *watchFlag {
		if err := watch(ctx, c); err != nil {
			klog.Exitf("watch failed: %v", err)
		}
	}
}

// run performs one scan+group pass and renders the result.
func run(ctx context.Context, c *aebgroup.Config) error {
	start := time.Now()

	r, err := aebgroup.Collect(ctx, c)
	if err != nil {
		return err
	}

	if *jsonOut {
		err = aebgroup.WriteJSON(os.Stdout, r.Bursts)
	} else {
		err = aebgroup.WriteText(os.Stdout, r.Bursts)
	}
	if err != nil {
		return err
	}

	if c.OutDir != "" {
		if err := aebgroup.Export(c, r.Bursts); err != nil {
			return err
		}
	}

	klog.Infof("processing took %.2fs", time.Since(start).Seconds())
	return nil
}

// watch regroups whenever the input directory changes.
func watch(ctx context.Context, c *aebgroup.Config) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(c.InDir); err != nil {
		return err
	}
	klog.Infof("watching %s ...", c.InDir)

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				klog.V(1).Infof("event: %s", event)
				if err := run(ctx, c); err != nil {
					klog.Errorf("group failed: %v", err)
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			klog.Errorf("watch error: %v", err)
		case <-ctx.Done():
			return nil
		}
	}
}
