package aebgroup

import (
	"fmt"

	"github.com/barasher/go-exiftool"
	"k8s.io/klog/v2"
)

// Metadata keys read by the classifier and timestamp resolver. Keys
// are namespaced the way exiftool's -G option emits them.
const (
	keyCreateDate       = "EXIF:CreateDate"
	keyDateTimeOriginal = "EXIF:DateTimeOriginal"
	keyModifyDate       = "EXIF:ModifyDate"
	keyExposureTime     = "EXIF:ExposureTime"
	keyBracketMode      = "MakerNotes:BracketMode"
	keyBracketValue     = "MakerNotes:AEBBracketValue"
)

// MetadataMap is one file's extracted metadata: a flat map from
// "Group:Field" keys to string or numeric values. It is read-only
// after extraction.
type MetadataMap map[string]any

// GetString returns the value for key rendered as a string.
func (m MetadataMap) GetString(key string) (string, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprintf("%v", v), true
}

// A Fetcher extracts metadata for a single file. Implementations are
// not required to be safe for concurrent use; the scanner creates one
// Fetcher per worker.
type Fetcher interface {
	Fetch(path string) (MetadataMap, error)
	Close() error
}

// FetcherFactory creates a Fetcher for one worker.
type FetcherFactory func() (Fetcher, error)

// exifToolFetcher reads metadata through a stay-open exiftool process.
type exifToolFetcher struct {
	et *exiftool.Exiftool
}

// NewExifToolFetcher starts an exiftool instance with group-name
// prefixes enabled, so keys arrive as "EXIF:CreateDate" etc.
func NewExifToolFetcher() (Fetcher, error) {
	et, err := exiftool.NewExiftool(exiftool.PrintGroupNames("0"))
	if err != nil {
		return nil, fmt.Errorf("exiftool: %w", err)
	}
	return &exifToolFetcher{et: et}, nil
}

func (f *exifToolFetcher) Fetch(path string) (MetadataMap, error) {
	fms := f.et.ExtractMetadata(path)
	if len(fms) == 0 {
		return nil, fmt.Errorf("no metadata for %q", path)
	}
	fm := fms[0]
	if fm.Err != nil {
		return nil, fmt.Errorf("extract fail for %q: %w", path, fm.Err)
	}

	md := make(MetadataMap, len(fm.Fields))
	for k, v := range fm.Fields {
		klog.V(2).Infof("%s: %q=%v", path, k, v)
		md[k] = v
	}
	return md, nil
}

func (f *exifToolFetcher) Close() error {
	return f.et.Close()
}
