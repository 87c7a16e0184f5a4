package aebgroup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/otiai10/copy"
	"k8s.io/klog/v2"
)

// Export copies each burst's members into a per-burst subdirectory of
// c.OutDir, named after the burst key, ready to hand to an HDR-merge
// tool. With c.Thumbs, a small preview JPEG is written next to each
// copy.
func Export(c *Config, bursts []Burst) error {
	for _, b := range bursts {
		dir := filepath.Join(c.OutDir, dirSafeKey(b.Key))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}

		klog.Infof("exporting %d images to %s", len(b.Images), dir)
		for _, i := range b.Images {
			dst := filepath.Join(dir, filepath.Base(i.Path))
			if err := copy.Copy(i.Path, dst); err != nil {
				return fmt.Errorf("copy %s: %w", i.Path, err)
			}

			if !c.Thumbs {
				continue
			}
			if err := writeThumb(i.Path, thumbPath(dst)); err != nil {
				klog.Warningf("thumb for %s: %v", i.Path, err)
			}
		}
	}
	return nil
}

// dirSafeKey strips the colons from an ISO-8601 key so it can name a
// directory on any filesystem.
func dirSafeKey(key string) string {
	return strings.ReplaceAll(key, ":", "")
}

func thumbPath(dst string) string {
	ext := filepath.Ext(dst)
	return strings.TrimSuffix(dst, ext) + "_thumb.jpg"
}
