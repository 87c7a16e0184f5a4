package aebgroup

import (
	"testing"
	"time"
)

func TestGroupOrdersByOffset(t *testing.T) {
	in := []*Image{
		testImage("over.jpg", burstTime, "1", "1/8"),
		testImage("under.jpg", burstTime, "-1", "1/8"),
		testImage("base.jpg", burstTime, "0", "1/8"),
	}

	bursts := Group(in)
	if len(bursts) != 1 {
		t.Fatalf("got %d bursts, want 1", len(bursts))
	}
	wantKey := "2019-08-26T19:54:10"
	if bursts[0].Key != wantKey {
		t.Errorf("key = %q, want %q", bursts[0].Key, wantKey)
	}
	assertPaths(t, bursts[0], []string{"under.jpg", "base.jpg", "over.jpg"})
}

func TestGroupSplitsByExposureWindow(t *testing.T) {
	mk := func(exposure string) []*Image {
		return []*Image{
			testImage("a.jpg", burstTime, "0", exposure),
			testImage("b.jpg", burstTime.Add(10*time.Second), "0", exposure),
		}
	}

	if got := len(Group(mk("0.3"))); got != 2 {
		t.Errorf("short exposure: got %d bursts, want 2", got)
	}
	if got := len(Group(mk("12"))); got != 1 {
		t.Errorf("long exposure: got %d bursts, want 1", got)
	}
}

func TestGroupTwoBursts(t *testing.T) {
	later := burstTime.Add(2 * time.Minute)
	in := []*Image{
		testImage("b2.jpg", later, "0", "1/8"),
		testImage("a1.jpg", burstTime, "-1", "1/8"),
		testImage("b3.jpg", later, "1", "1/8"),
		testImage("a3.jpg", burstTime, "1", "1/8"),
		testImage("b1.jpg", later, "-1", "1/8"),
		testImage("a2.jpg", burstTime, "0", "1/8"),
	}

	bursts := Group(in)
	if len(bursts) != 2 {
		t.Fatalf("got %d bursts, want 2", len(bursts))
	}
	if bursts[0].Key >= bursts[1].Key {
		t.Errorf("keys not ascending: %q, %q", bursts[0].Key, bursts[1].Key)
	}
	assertPaths(t, bursts[0], []string{"a1.jpg", "a2.jpg", "a3.jpg"})
	assertPaths(t, bursts[1], []string{"b1.jpg", "b2.jpg", "b3.jpg"})
}

func TestGroupExcludesNonAEB(t *testing.T) {
	plain := testImage("plain.jpg", burstTime, "0", "1/8")
	plain.Bracket.AEB = false

	bursts := Group([]*Image{plain, testImage("aeb.jpg", burstTime, "0", "1/8")})
	if len(bursts) != 1 || len(bursts[0].Images) != 1 {
		t.Fatalf("got %+v, want one burst with one image", bursts)
	}
	if bursts[0].Images[0].Path != "aeb.jpg" {
		t.Errorf("member = %q, want aeb.jpg", bursts[0].Images[0].Path)
	}
}

func TestGroupAbsentOffsetSortsFirst(t *testing.T) {
	in := []*Image{
		testImage("base.jpg", burstTime, "0", "1/8"),
		testImage("blank.jpg", burstTime, "", "1/8"),
		testImage("under.jpg", burstTime, "-1", "1/8"),
	}

	bursts := Group(in)
	if len(bursts) != 1 {
		t.Fatalf("got %d bursts, want 1", len(bursts))
	}
	assertPaths(t, bursts[0], []string{"blank.jpg", "under.jpg", "base.jpg"})
}

func TestGroupIdempotentUnderShuffle(t *testing.T) {
	later := burstTime.Add(90 * time.Second)
	images := []*Image{
		testImage("a1.jpg", burstTime, "-1", "1/8"),
		testImage("a2.jpg", burstTime, "0", "1/8"),
		testImage("a3.jpg", burstTime, "1", "1/8"),
		testImage("b1.jpg", later, "-2/3", "0.3"),
		testImage("b2.jpg", later, "0", "0.3"),
		testImage("b3.jpg", later.Add(time.Second), "2/3", "0.3"),
	}

	want := Group(images)

	shuffles := [][]int{
		{5, 4, 3, 2, 1, 0},
		{2, 0, 4, 1, 5, 3},
		{3, 5, 0, 2, 4, 1},
	}
	for _, order := range shuffles {
		in := make([]*Image, len(order))
		for n, m := range order {
			in[n] = images[m]
		}
		got := Group(in)

		if len(got) != len(want) {
			t.Fatalf("shuffle %v: got %d bursts, want %d", order, len(got), len(want))
		}
		for n := range want {
			if got[n].Key != want[n].Key {
				t.Errorf("shuffle %v: key[%d] = %q, want %q", order, n, got[n].Key, want[n].Key)
			}
			assertPaths(t, got[n], paths(want[n]))
		}
	}
}

func TestGroupEmpty(t *testing.T) {
	if got := Group(nil); len(got) != 0 {
		t.Errorf("Group(nil) = %v, want empty", got)
	}
}

func assertPaths(t *testing.T, b Burst, want []string) {
	t.Helper()
	got := paths(b)
	if len(got) != len(want) {
		t.Fatalf("burst %s: members %v, want %v", b.Key, got, want)
	}
	for n := range want {
		if got[n] != want[n] {
			t.Errorf("burst %s: member[%d] = %q, want %q", b.Key, n, got[n], want[n])
		}
	}
}

func paths(b Burst) []string {
	ps := make([]string, 0, len(b.Images))
	for _, i := range b.Images {
		ps = append(ps, i.Path)
	}
	return ps
}
