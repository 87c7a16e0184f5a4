package aebgroup

import (
	"fmt"
	"math/big"
	"time"
)

// closeEnough treats two capture times as identical. EXIF timestamps
// are truncated to whole seconds, so anything inside 10ms is the same
// shutter press.
const closeEnough = 10 * time.Millisecond

// Image is one candidate file: its path, resolved capture time and
// bracket classification. Built once after metadata extraction and
// immutable afterward.
type Image struct {
	Path    string
	ModTime time.Time
	Taken   time.Time
	Bracket Bracket
}

// newImage resolves md into an Image. The modification time serves as
// the capture-time fallback when no EXIF date parses.
func newImage(path string, modTime time.Time, md MetadataMap) *Image {
	return &Image{
		Path:    path,
		ModTime: modTime,
		Taken:   resolveTaken(md, modTime),
		Bracket: classify(md),
	}
}

func (i *Image) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Taken)
}

// windowSeconds is the burst tolerance derived from i's exposure
// time: longer exposures span more wall-clock time between shutter
// presses, so the window scales with exposure length, floored at one
// second. A missing exposure uses the one-second minimum.
func (i *Image) windowSeconds() int64 {
	e := i.Bracket.Exposure
	if e == nil || e.Cmp(big.NewRat(1, 1)) < 0 {
		return 1
	}
	return new(big.Int).Quo(e.Num(), e.Denom()).Int64()
}

// sameBurst reports whether b belongs to the same shooting burst as
// a. Effectively-equal timestamps always match; otherwise b must fall
// inside the window derived from a's exposure.
func sameBurst(a, b *Image) bool {
	delta := b.Taken.Sub(a.Taken)
	if delta < 0 {
		delta = -delta
	}
	if delta <= closeEnough {
		return true
	}
	return delta <= time.Duration(a.windowSeconds())*time.Second
}

// Before implements the within-burst ordering relation: images shot
// at the same instant order by bracket offset; images further apart
// order by offset only when the other image falls inside the
// receiver's proximity window, and compare false otherwise. The
// relation is partial; use it only across images already known to be
// in the same burst.
func (i *Image) Before(o *Image) bool {
	delta := o.Taken.Sub(i.Taken)
	if delta < 0 {
		delta = -delta
	}
	if delta > closeEnough && !sameBurst(i, o) {
		return false
	}
	return ratLess(i.Bracket.Offset, o.Bracket.Offset)
}

// ratLess orders exact rationals with nil (absent) sorting first.
func ratLess(a, b *big.Rat) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	return a.Cmp(b) < 0
}
