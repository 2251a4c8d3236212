package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pbrissaud/ultrakara/internal/clipboard"
	"github.com/pbrissaud/ultrakara/internal/config"
	"github.com/pbrissaud/ultrakara/internal/fsutil"
	"github.com/pbrissaud/ultrakara/internal/kara"
	"github.com/pbrissaud/ultrakara/internal/subtitles"
	"github.com/pbrissaud/ultrakara/internal/ui"
	"github.com/pbrissaud/ultrakara/internal/ultrastar"
	"github.com/pbrissaud/ultrakara/internal/updater"
	"github.com/pbrissaud/ultrakara/pkg/model"
)

const (
	defaultUpdateTimeout = 15 * time.Second
	filePerm             = 0o644
)

// ErrSongExists est retourné quand le dossier de sortie de la chanson existe
// déjà : on ne remplace jamais un empaquetage précédent.
var ErrSongExists = errors.New("une sortie existe déjà pour cette chanson")

// CLIFlags contient les informations venant des flags de l'app
type CLIFlags struct {
	ConfigPath string

	// Métadonnées
	Title    string
	Artist   string
	Language string
	Creator  string

	// Fichiers source
	Audio      string
	Subtitles  string
	Cover      string
	Background string
	Video      string
}

// App orchestre les différentes dépendances (UI, transcodeur, FS...)
type App struct {
	cfg      *config.Config
	ui       ui.Interface
	flags    *CLIFlags
	renderer *ultrastar.Renderer
	version  string
}

// New construit l'application en initialisant les dépendances par défaut.
// Pour les tests, on préférera construire App en injectant des implémentations mock.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags, renderer *ultrastar.Renderer, version string) *App {
	return &App{
		cfg:      cfg,
		ui:       uiClient,
		flags:    flags,
		renderer: renderer,
		version:  version,
	}
}

// Run exécute le flux principal : validation des chemins, transcodage des
// timings, puis assemblage du dossier de chanson.
func (a *App) Run(ctx context.Context) error {
	meta := model.SongMeta{
		Title:    strings.TrimSpace(a.flags.Title),
		Artist:   strings.TrimSpace(a.flags.Artist),
		Language: strings.TrimSpace(a.flags.Language),
		Creator:  strings.TrimSpace(a.flags.Creator),
	}
	media := model.MediaSet{
		Audio:      a.flags.Audio,
		Subtitles:  a.flags.Subtitles,
		Cover:      a.flags.Cover,
		Background: a.flags.Background,
		Video:      a.flags.Video,
	}

	if meta.Title == "" || meta.Artist == "" {
		return fmt.Errorf("le titre et l'artiste sont obligatoires (-title, -artist)")
	}
	if err := checkMediaPaths(media); err != nil {
		return err
	}

	// Vérification de mise à jour (optionnelle, jamais bloquante)
	if a.cfg.AutoUpdateCheck {
		a.SelfUpdateCheck(ctx, defaultUpdateTimeout)
	}

	// canonicaliser la langue pour #LANGUAGE ("en" -> "English")
	if a.cfg.NormalizeLanguage {
		meta.Language = model.NormalizeLanguage(meta.Language)
	}
	a.ui.PrintInfo(ctx, meta.Pretty())

	// Lecture + parsing du fichier de sous-titres
	data, err := os.ReadFile(media.Subtitles)
	if err != nil {
		return fmt.Errorf("lecture du fichier de sous-titres : %w", err)
	}
	doc, err := subtitles.Parse(data)
	if err != nil {
		return fmt.Errorf("analyse du fichier de sous-titres %s : %w", media.Subtitles, err)
	}

	// Transcodage des timings karaoké vers la section notes UltraStar
	transcoder := kara.Transcoder{
		BeatsPerSecond: a.cfg.BeatsPerSecond,
		Pitch:          a.cfg.Pitch,
	}
	notes, diags := transcoder.Transcode(doc)
	for _, d := range diags {
		a.ui.PrintWarning(ctx, d.String())
	}

	// Création du dossier de la chanson. Échoue si une sortie existe déjà :
	// on ne veut jamais écraser un projet vérifié à la main.
	baseName := fsutil.SanitizeFilename(meta.BaseName())
	songDir := filepath.Join(a.cfg.OutputDir, baseName)
	if err := os.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("création du dossier de sortie %s : %w", a.cfg.OutputDir, err)
	}
	if err := os.Mkdir(songDir, 0o755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w : %s", ErrSongExists, songDir)
		}
		return fmt.Errorf("création du dossier de la chanson %s : %w", songDir, err)
	}

	// Copie des fichiers média sous leurs noms renommés
	header, err := copyMedia(media, songDir, baseName)
	if err != nil {
		return err
	}

	// En-tête de métadonnées + section notes + marqueur final
	header.Title = meta.Title
	header.Artist = meta.Artist
	header.Language = meta.Language
	header.Creator = meta.Creator
	header.BPM = ultrastar.BPMFor(a.cfg.BeatsPerSecond)
	header.Gap = 0

	headerText, err := a.renderer.RenderHeader(header)
	if err != nil {
		return fmt.Errorf("rendu de l'en-tête : %w", err)
	}

	content := append(headerText, notes...)
	content = append(content, ultrastar.EndMarker...)

	songPath := filepath.Join(songDir, baseName+".txt")
	if err := fsutil.WriteFileAtomic(songPath, content, filePerm); err != nil {
		return fmt.Errorf("écriture du fichier UltraStar %s : %w", songPath, err)
	}

	// copie des notes dans le presse-papier, pratique pour les éditeurs
	if a.cfg.CopyNotesToClipboard {
		if err := clipboard.WriteAll(notes); err != nil {
			a.ui.PrintWarning(ctx, fmt.Sprintf("copie dans le presse-papier impossible : %v", err))
		} else {
			a.ui.PrintInfo(ctx, "Section notes copiée dans le presse-papier.")
		}
	}

	a.ui.PrintSummary(ctx, ui.Summary{
		SongDir:       songDir,
		DialogueLines: len(doc.Events),
		Notes:         countNotes(notes),
		Warnings:      len(diags),
	})
	a.ui.PrintInfo(ctx, "Succès : le projet UltraStar a été placé dans le dossier de sortie.")
	a.ui.PrintInfo(ctx, "La chanson doit être vérifiée manuellement pour corriger les éventuelles erreurs.")

	return nil
}

// SelfUpdateCheck signale à l'utilisateur si une version plus récente est
// disponible. Les échecs (réseau...) sont annoncés mais jamais fatals.
func (a *App) SelfUpdateCheck(ctx context.Context, timeout time.Duration) {
	uc, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	check, err := updater.CheckSelfUpdate(uc, a.version)
	if err != nil {
		a.ui.PrintWarning(ctx, fmt.Sprintf("vérification de mise à jour impossible : %v", err))
		return
	}

	if check.IsUpToDate {
		return
	}

	a.ui.PrintInfo(ctx, "Une nouvelle version d'ultrakara est disponible :")
	a.ui.PrintInfo(ctx, fmt.Sprintf("  Installée : %s", check.CurrentVersion))
	a.ui.PrintInfo(ctx, fmt.Sprintf("  Dernière  : %s", check.LatestRelease.TagName))
	a.ui.PrintInfo(ctx, check.LatestRelease.HTMLURL)
}
