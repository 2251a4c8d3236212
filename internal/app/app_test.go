package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pbrissaud/ultrakara/internal/assets"
	"github.com/pbrissaud/ultrakara/internal/config"
	"github.com/pbrissaud/ultrakara/internal/ui"
	"github.com/pbrissaud/ultrakara/internal/ultrastar"
)

// fakeUI capture les sorties pour inspection.
type fakeUI struct {
	infos     []string
	warnings  []string
	errs      []string
	summaries []ui.Summary
}

func (f *fakeUI) PrintInfo(ctx context.Context, s string)    { f.infos = append(f.infos, s) }
func (f *fakeUI) PrintWarning(ctx context.Context, s string) { f.warnings = append(f.warnings, s) }
func (f *fakeUI) PrintError(ctx context.Context, s string)   { f.errs = append(f.errs, s) }
func (f *fakeUI) PrintSummary(ctx context.Context, s ui.Summary) {
	f.summaries = append(f.summaries, s)
}

const testASS = `[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:01.00,0:00:03.50,Default,,0,0,0,,{\k200}la{\k50}
Comment: 0,0:00:04.00,0:00:05.00,Default,,0,0,0,,ignoré
`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func newTestApp(t *testing.T, tmp string, flags *CLIFlags) (*App, *fakeUI) {
	t.Helper()

	cfg := &config.Config{
		OutputDir:         filepath.Join(tmp, "out"),
		BeatsPerSecond:    20,
		Pitch:             19,
		NormalizeLanguage: true,
		ConfigVersion:     config.CurrentConfigVersion,
	}

	renderer, err := ultrastar.NewRendererFromFS(assets.Embedded, []string{"templates/" + ultrastar.SongTemplate})
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	tui := &fakeUI{}
	return New(cfg, tui, flags, renderer, "dev"), tui
}

func TestRun_AssemblesSongFolder(t *testing.T) {
	tmp := t.TempDir()
	audio := writeTestFile(t, tmp, "audio.mp3", "mp3")
	subs := writeTestFile(t, tmp, "song.ass", testASS)
	cover := writeTestFile(t, tmp, "cover.png", "png")

	flags := &CLIFlags{
		Title:     "Test Song",
		Artist:    "Tester",
		Language:  "en",
		Audio:     audio,
		Subtitles: subs,
		Cover:     cover,
	}
	a, tui := newTestApp(t, tmp, flags)

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	songDir := filepath.Join(tmp, "out", "Tester - Test Song")

	// fichiers média renommés
	for _, name := range []string{
		"Tester - Test Song.mp3",
		"Tester - Test Song [CO].png",
	} {
		if _, err := os.Stat(filepath.Join(songDir, name)); err != nil {
			t.Errorf("fichier attendu manquant %s: %v", name, err)
		}
	}

	// artefact UltraStar complet, marqueur final compris
	got, err := os.ReadFile(filepath.Join(songDir, "Tester - Test Song.txt"))
	if err != nil {
		t.Fatalf("read song file: %v", err)
	}
	want := "#TITLE:Test Song\n" +
		"#ARTIST:Tester\n" +
		"#LANGUAGE:English\n" +
		"#MP3:Tester - Test Song.mp3\n" +
		"#COVER:Tester - Test Song [CO].png\n" +
		"#BPM:300.0\n" +
		"#GAP:0\n" +
		": 20 39 19 la \n" +
		"- 70 \n" +
		"E\n"
	if string(got) != want {
		t.Errorf("song file = %q; want %q", got, want)
	}

	if len(tui.summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(tui.summaries))
	}
	s := tui.summaries[0]
	if s.DialogueLines != 1 || s.Notes != 1 || s.Warnings != 0 {
		t.Errorf("summary = %+v", s)
	}
}

func TestRun_FailsIfSongAlreadyExists(t *testing.T) {
	tmp := t.TempDir()
	audio := writeTestFile(t, tmp, "audio.mp3", "mp3")
	subs := writeTestFile(t, tmp, "song.ass", testASS)

	flags := &CLIFlags{
		Title:     "Twice",
		Artist:    "Tester",
		Audio:     audio,
		Subtitles: subs,
	}

	a, _ := newTestApp(t, tmp, flags)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}

	b, _ := newTestApp(t, tmp, flags)
	err := b.Run(context.Background())
	if !errors.Is(err, ErrSongExists) {
		t.Errorf("err = %v; want ErrSongExists", err)
	}
}

func TestRun_RejectsBadExtensions(t *testing.T) {
	tmp := t.TempDir()
	subs := writeTestFile(t, tmp, "song.ass", testASS)
	wav := writeTestFile(t, tmp, "audio.wav", "wav")

	flags := &CLIFlags{
		Title:     "Bad",
		Artist:    "Tester",
		Audio:     wav,
		Subtitles: subs,
	}
	a, _ := newTestApp(t, tmp, flags)
	if err := a.Run(context.Background()); err == nil {
		t.Fatal("expected error for non-mp3 audio")
	}
}

func TestRun_MissingAudio(t *testing.T) {
	tmp := t.TempDir()
	subs := writeTestFile(t, tmp, "song.ass", testASS)

	flags := &CLIFlags{
		Title:     "Lost",
		Artist:    "Tester",
		Audio:     filepath.Join(tmp, "nope.mp3"),
		Subtitles: subs,
	}
	a, _ := newTestApp(t, tmp, flags)
	if err := a.Run(context.Background()); err == nil {
		t.Fatal("expected error for missing audio file")
	}
}

func TestRun_SurfacesScannerWarnings(t *testing.T) {
	tmp := t.TempDir()
	audio := writeTestFile(t, tmp, "audio.mp3", "mp3")
	badASS := `[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,{\pos(1,2)}{\k100}ha
`
	subs := writeTestFile(t, tmp, "song.ass", badASS)

	flags := &CLIFlags{
		Title:     "Warned",
		Artist:    "Tester",
		Audio:     audio,
		Subtitles: subs,
	}
	a, tui := newTestApp(t, tmp, flags)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(tui.warnings) != 1 {
		t.Errorf("warnings = %v; want 1 entrée", tui.warnings)
	}
	// le fragment ignoré ne doit pas empêcher la note suivante
	got, err := os.ReadFile(filepath.Join(tmp, "out", "Tester - Warned", "Tester - Warned.txt"))
	if err != nil {
		t.Fatalf("read song file: %v", err)
	}
	if want := ": 20 19 19 ha \n- 40 \nE\n"; !containsSuffixAfterHeader(string(got), want) {
		t.Errorf("song file = %q; want suffix %q", got, want)
	}
}

func containsSuffixAfterHeader(content, suffix string) bool {
	return len(content) >= len(suffix) && content[len(content)-len(suffix):] == suffix
}
