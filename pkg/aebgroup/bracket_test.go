package aebgroup

import (
	"math/big"
	"testing"
)

func TestClassifyAEB(t *testing.T) {
	tests := []struct {
		name string
		md   MetadataMap
		want bool
	}{
		{"aeb mode", MetadataMap{"MakerNotes:BracketMode": "AEB"}, true},
		{"off mode", MetadataMap{"MakerNotes:BracketMode": "Off"}, false},
		{"empty mode", MetadataMap{"MakerNotes:BracketMode": ""}, false},
		{"numeric mode", MetadataMap{"MakerNotes:BracketMode": 0}, false},
		{"missing key", MetadataMap{"EXIF:Make": "Canon"}, false},
		{"empty map", MetadataMap{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := classify(tc.md).AEB; got != tc.want {
				t.Errorf("classify().AEB = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClassifyValues(t *testing.T) {
	md := MetadataMap{
		"MakerNotes:BracketMode":     "AEB",
		"MakerNotes:AEBBracketValue": "-1/3",
		"EXIF:ExposureTime":          "1/8",
	}

	b := classify(md)
	if b.Offset == nil || b.Offset.Cmp(big.NewRat(-1, 3)) != 0 {
		t.Errorf("Offset = %v, want -1/3", b.Offset)
	}
	if b.Exposure == nil || b.Exposure.Cmp(big.NewRat(1, 8)) != 0 {
		t.Errorf("Exposure = %v, want 1/8", b.Exposure)
	}
}

func TestClassifyAbsentValues(t *testing.T) {
	b := classify(MetadataMap{"MakerNotes:BracketMode": "AEB"})
	if b.Offset != nil {
		t.Errorf("Offset = %v, want nil", b.Offset)
	}
	if b.Exposure != nil {
		t.Errorf("Exposure = %v, want nil", b.Exposure)
	}
}

func TestParseRat(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *big.Rat
	}{
		{"fraction", "1/3", big.NewRat(1, 3)},
		{"negative fraction", "-2/3", big.NewRat(-2, 3)},
		{"decimal string", "0.3", big.NewRat(3, 10)},
		{"integer string", "12", big.NewRat(12, 1)},
		{"float decimal exact", float64(0.3), big.NewRat(3, 10)},
		{"float whole", float64(12), big.NewRat(12, 1)},
		{"int", 3, big.NewRat(3, 1)},
		{"int64", int64(-1), big.NewRat(-1, 1)},
		{"garbage", "fast", nil},
		{"wrong type", true, nil},
		{"nil", nil, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseRat(tc.in)
			switch {
			case tc.want == nil && got != nil:
				t.Errorf("parseRat(%v) = %v, want nil", tc.in, got)
			case tc.want != nil && (got == nil || got.Cmp(tc.want) != 0):
				t.Errorf("parseRat(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
