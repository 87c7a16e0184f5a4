package aebgroup

import (
	"fmt"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"k8s.io/klog/v2"
)

// thumbOpts sizes the burst preview thumbnails.
var thumbOpts = struct {
	Y       int
	Quality int
}{Y: 360, Quality: 85}

// writeThumb writes a preview JPEG of src, scaled to thumbOpts.Y
// pixels tall with aspect ratio preserved.
func writeThumb(src string, dst string) error {
	img, err := imgio.Open(src)
	if err != nil {
		return fmt.Errorf("imgio.Open: %w", err)
	}

	if img.Bounds().Dy() == 0 || img.Bounds().Dx() == 0 {
		return fmt.Errorf("empty image: %s", src)
	}

	scale := float64(img.Bounds().Dy()) / float64(thumbOpts.Y)
	x := int(float64(img.Bounds().Dx()) / scale)

	klog.V(1).Infof("creating %dx%d thumb: %s", x, thumbOpts.Y, dst)
	rimg := transform.Resize(img, x, thumbOpts.Y, transform.Lanczos)
	if err := imgio.Save(dst, rimg, imgio.JPEGEncoder(thumbOpts.Quality)); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}
