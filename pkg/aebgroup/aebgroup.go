// Package aebgroup groups Auto Exposure Bracketing (AEB) photos into
// bursts so that each burst can be fed into an HDR-merge tool.
package aebgroup

// Config holds configuration for aebgroup.
type Config struct {
	// InDir is the directory to scan for image files.
	InDir string
	// OutDir, when set, receives one subdirectory per burst with
	// copies of its members.
	OutDir string
	// Jobs bounds the metadata-extraction worker pool. Zero means
	// one worker per CPU.
	Jobs int
	// WithRaw includes RAW file types (CR2, NEF, ...) in the scan.
	WithRaw bool
	// Thumbs writes a small preview JPEG next to each exported
	// member. Only meaningful together with OutDir.
	Thumbs bool

	// NewFetcher overrides the metadata source. Nil means exiftool.
	NewFetcher FetcherFactory
}

func (c *Config) fetcherFactory() FetcherFactory {
	if c.NewFetcher != nil {
		return c.NewFetcher
	}
	return NewExifToolFetcher
}
