package ultrastar

import (
	"testing"

	"github.com/pbrissaud/ultrakara/internal/assets"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRendererFromFS(assets.Embedded, []string{"templates/" + SongTemplate})
	if err != nil {
		t.Fatalf("NewRendererFromFS: %v", err)
	}
	if err := r.ParseNow(); err != nil {
		t.Fatalf("ParseNow: %v", err)
	}
	return r
}

func TestRenderHeader_Full(t *testing.T) {
	r := newTestRenderer(t)

	got, err := r.RenderHeader(Header{
		Title:      "Test Song",
		Artist:     "Tester",
		Language:   "English",
		Creator:    "Someone",
		MP3:        "Tester - Test Song.mp3",
		Cover:      "Tester - Test Song [CO].png",
		Background: "Tester - Test Song [BG].jpg",
		Video:      "Tester - Test Song.mp4",
		BPM:        BPMFor(20),
		Gap:        0,
	})
	if err != nil {
		t.Fatalf("RenderHeader: %v", err)
	}

	want := `#TITLE:Test Song
#ARTIST:Tester
#LANGUAGE:English
#CREATOR:Someone
#MP3:Tester - Test Song.mp3
#COVER:Tester - Test Song [CO].png
#BACKGROUND:Tester - Test Song [BG].jpg
#VIDEO:Tester - Test Song.mp4
#BPM:300.0
#GAP:0
`
	if string(got) != want {
		t.Errorf("header = %q; want %q", got, want)
	}
}

func TestRenderHeader_OptionalsOmitted(t *testing.T) {
	r := newTestRenderer(t)

	got, err := r.RenderHeader(Header{
		Title:  "Mini",
		Artist: "A",
		MP3:    "A - Mini.mp3",
		BPM:    BPMFor(20),
	})
	if err != nil {
		t.Fatalf("RenderHeader: %v", err)
	}

	want := `#TITLE:Mini
#ARTIST:A
#MP3:A - Mini.mp3
#BPM:300.0
#GAP:0
`
	if string(got) != want {
		t.Errorf("header = %q; want %q", got, want)
	}
}

func TestBPMFor(t *testing.T) {
	tests := []struct {
		bps  int
		want float64
	}{
		{bps: 20, want: 300},
		{bps: 10, want: 150},
		{bps: 1, want: 15},
	}
	for _, tc := range tests {
		if got := BPMFor(tc.bps); got != tc.want {
			t.Errorf("BPMFor(%d) = %v; want %v", tc.bps, got, tc.want)
		}
	}
}
