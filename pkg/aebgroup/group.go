package aebgroup

import (
	"math/big"
	"sort"

	"k8s.io/klog/v2"
)

// isoFormat renders burst keys. EXIF timestamps carry no zone, so
// keys stay naive ISO-8601.
const isoFormat = "2006-01-02T15:04:05"

// A Burst is one AEB shooting event: a representative timestamp key
// and its member images ordered by bracket offset.
type Burst struct {
	Key    string
	Images []*Image
}

// Group partitions AEB images into bursts. Images are sorted by
// capture time and scanned once; a new burst starts whenever an image
// falls outside the proximity window of the previous one. Bursts come
// back ascending by key, members ascending by bracket offset.
//
// Non-AEB images are excluded upstream; Group drops any that slip
// through. The input slice is not modified.
func Group(images []*Image) []Burst {
	aeb := make([]*Image, 0, len(images))
	for _, i := range images {
		if i.Bracket.AEB {
			aeb = append(aeb, i)
		}
	}

	// The scan order must be total and deterministic so that a
	// shuffled input regroups identically.
	sort.Slice(aeb, func(i, j int) bool { return scanLess(aeb[i], aeb[j]) })

	bursts := []Burst{}
	for n, img := range aeb {
		if n == 0 || !sameBurst(aeb[n-1], img) {
			bursts = append(bursts, Burst{Key: img.Taken.Format(isoFormat)})
		}
		b := &bursts[len(bursts)-1]
		b.Images = append(b.Images, img)
	}

	for _, b := range bursts {
		sort.Slice(b.Images, func(i, j int) bool {
			return memberLess(b.Images[i], b.Images[j])
		})
		klog.V(1).Infof("burst %s: %d images", b.Key, len(b.Images))
	}
	return bursts
}

// scanLess orders the whole input set: capture time, then bracket
// offset with absent offsets first, then path.
func scanLess(a, b *Image) bool {
	if !a.Taken.Equal(b.Taken) {
		return a.Taken.Before(b.Taken)
	}
	if c := ratCmp(a.Bracket.Offset, b.Bracket.Offset); c != 0 {
		return c < 0
	}
	return a.Path < b.Path
}

// memberLess orders images inside one burst, where the partitioner
// has already proven mutual proximity: bracket offset ascending with
// absent offsets first, then capture time, then path.
func memberLess(a, b *Image) bool {
	if c := ratCmp(a.Bracket.Offset, b.Bracket.Offset); c != 0 {
		return c < 0
	}
	if !a.Taken.Equal(b.Taken) {
		return a.Taken.Before(b.Taken)
	}
	return a.Path < b.Path
}

func ratCmp(a, b *big.Rat) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Cmp(b)
	}
}
