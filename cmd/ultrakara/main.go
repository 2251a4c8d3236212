package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pbrissaud/ultrakara/internal/app"
	"github.com/pbrissaud/ultrakara/internal/assets"
	"github.com/pbrissaud/ultrakara/internal/bootstrap"
	"github.com/pbrissaud/ultrakara/internal/config"
	"github.com/pbrissaud/ultrakara/internal/ui"
	"github.com/pbrissaud/ultrakara/internal/ultrastar"
)

// renseignée au build via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	flags := parseFlags()

	// déterminer exePath/binDir
	binDir := "."
	exePath, err := os.Executable()
	if err != nil {
		log.Printf("impossible de déterminer le chemin de l'exécutable : %v", err)
	} else {
		binDir = filepath.Dir(exePath)
	}

	// emplacement config par défaut : à côté du binaire
	if flags.ConfigPath == "ultrakara.yaml" || flags.ConfigPath == "" {
		flags.ConfigPath = filepath.Join(binDir, "ultrakara.yaml")
	}

	// s'assurer que le fichier config existe, si non on le crée
	if err := bootstrap.EnsureConfigPresent(
		flags.ConfigPath,
		assets.Embedded,
		assets.DefaultConfigAsset,
	); err != nil {
		log.Printf("erreur : EnsureConfigPresent : %v", err)
	}

	// s'assurer que les templates existent (dans binDir/templates)
	tplDir := filepath.Join(binDir, "templates")
	if err := bootstrap.EnsureTemplatesPresent(
		tplDir,
		assets.Embedded,
		assets.DefaultTemplatePaths,
	); err != nil {
		log.Printf("warning : ensure templates present : %v", err)
	}

	// charger la config
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("config load : %v", err)
	}
	warnings, err := cfg.Validate()
	if err != nil {
		log.Fatalf("config invalide : %v", err)
	}
	for _, w := range warnings {
		log.Printf("warning : %s", w)
	}

	// construction du renderer d'en-tête
	renderer, err := ultrastar.DefaultRenderer(exePath)
	if err != nil {
		log.Fatalf("impossible de construire le renderer : %v", err)
	}

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tui := ui.NewTerminal()
	a := app.New(cfg, tui, flags, renderer, version)
	if err := a.Run(ctx); err != nil {
		if errors.Is(err, app.ErrSongExists) {
			// condition utilisateur connue, pas un plantage
			fmt.Fprintf(os.Stderr, "Erreur : %v\n", err)
			os.Exit(1)
		}
		log.Fatalf("app run : %v", err)
	}
}

func parseFlags() *app.CLIFlags {
	f := &app.CLIFlags{}
	flag.StringVar(&f.ConfigPath, "config", "ultrakara.yaml", "chemin du fichier de configuration")

	flag.StringVar(&f.Title, "title", "", "titre de la chanson")
	flag.StringVar(&f.Artist, "artist", "", "artiste de la chanson")
	flag.StringVar(&f.Language, "l", "", "langue de la chanson (optionnel)")
	flag.StringVar(&f.Creator, "c", "", "créateur de la map (optionnel)")

	flag.StringVar(&f.Audio, "audio", "", "chemin du fichier MP3")
	flag.StringVar(&f.Subtitles, "ass", "", "chemin du fichier ASS contenant les timings")
	flag.StringVar(&f.Cover, "co", "", "chemin de l'image de jaquette (optionnel)")
	flag.StringVar(&f.Background, "bg", "", "chemin de l'image de fond (optionnel)")
	flag.StringVar(&f.Video, "bv", "", "chemin de la vidéo d'arrière-plan (optionnel)")

	flag.Parse()
	return f
}
