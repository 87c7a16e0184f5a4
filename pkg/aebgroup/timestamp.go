package aebgroup

import (
	"time"

	"k8s.io/klog/v2"
)

// exifDate is the date layout exiftool reports for EXIF timestamps.
var exifDate = "2006:01:02 15:04:05"

// takenKeys are tried in order; the first parseable value wins.
var takenKeys = []string{keyCreateDate, keyDateTimeOriginal, keyModifyDate}

// resolveTaken extracts the capture time from md. It tries
// EXIF:CreateDate, EXIF:DateTimeOriginal and EXIF:ModifyDate in that
// order against the exifDate layout; a key that is absent or fails to
// parse falls through to the next one. When none parse, fallback (the
// file's modification time) is returned unchanged. Sub-second
// precision is discarded so timestamps from independent sources
// compare cleanly.
func resolveTaken(md MetadataMap, fallback time.Time) time.Time {
	for _, key := range takenKeys {
		s, ok := md.GetString(key)
		if !ok {
			continue
		}
		t, err := time.ParseInLocation(exifDate, s, time.Local)
		if err != nil {
			klog.V(1).Infof("unparseable %s %q: %v", key, s, err)
			continue
		}
		return t.Truncate(time.Second)
	}
	return fallback
}
