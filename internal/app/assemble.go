package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pbrissaud/ultrakara/internal/fsutil"
	"github.com/pbrissaud/ultrakara/internal/ultrastar"
	"github.com/pbrissaud/ultrakara/pkg/model"
)

// Extensions acceptées par type de média. Seule l'extension est vérifiée,
// jamais le contenu.
var (
	audioExts = []string{".mp3"}
	subsExts  = []string{".ass"}
	imageExts = []string{".jpg", ".jpeg", ".png"}
	videoExts = []string{".mp4"}
)

// checkMediaPaths vérifie que les chemins obligatoires existent et que
// chaque fichier porte une extension plausible pour son rôle.
func checkMediaPaths(m model.MediaSet) error {
	if m.Audio == "" {
		return fmt.Errorf("le fichier audio est obligatoire (-audio)")
	}
	if m.Subtitles == "" {
		return fmt.Errorf("le fichier de sous-titres est obligatoire (-ass)")
	}

	if err := checkFile(m.Audio, audioExts, "audio"); err != nil {
		return err
	}
	if err := checkFile(m.Subtitles, subsExts, "sous-titres"); err != nil {
		return err
	}
	if m.Cover != "" {
		if err := checkFile(m.Cover, imageExts, "jaquette"); err != nil {
			return err
		}
	}
	if m.Background != "" {
		if err := checkFile(m.Background, imageExts, "image de fond"); err != nil {
			return err
		}
	}
	if m.Video != "" {
		if err := checkFile(m.Video, videoExts, "vidéo"); err != nil {
			return err
		}
	}
	return nil
}

func checkFile(path string, allowedExts []string, role string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("le fichier %s est introuvable : %s", role, path)
		}
		return fmt.Errorf("accès au fichier %s %s : %w", role, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("le chemin %s est un répertoire, pas un fichier %s", path, role)
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range allowedExts {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("extension %q inattendue pour le fichier %s %s (attendu : %s)",
		ext, role, path, strings.Join(allowedExts, ", "))
}

// copyMedia copie les fichiers média dans songDir sous des noms dérivés du
// nom de base, et retourne un Header pré-rempli avec les noms liés
// (relatifs au dossier de la chanson).
func copyMedia(m model.MediaSet, songDir, baseName string) (ultrastar.Header, error) {
	var h ultrastar.Header

	h.MP3 = baseName + ".mp3"
	if err := fsutil.CopyFile(m.Audio, filepath.Join(songDir, h.MP3)); err != nil {
		return h, fmt.Errorf("copie du fichier audio : %w", err)
	}

	if m.Cover != "" {
		h.Cover = baseName + " [CO]" + filepath.Ext(m.Cover)
		if err := fsutil.CopyFile(m.Cover, filepath.Join(songDir, h.Cover)); err != nil {
			return h, fmt.Errorf("copie de la jaquette : %w", err)
		}
	}

	if m.Background != "" {
		h.Background = baseName + " [BG]" + filepath.Ext(m.Background)
		if err := fsutil.CopyFile(m.Background, filepath.Join(songDir, h.Background)); err != nil {
			return h, fmt.Errorf("copie de l'image de fond : %w", err)
		}
	}

	if m.Video != "" {
		h.Video = baseName + filepath.Ext(m.Video)
		if err := fsutil.CopyFile(m.Video, filepath.Join(songDir, h.Video)); err != nil {
			return h, fmt.Errorf("copie de la vidéo : %w", err)
		}
	}

	return h, nil
}

// countNotes compte les enregistrements de notes dans le blob généré par le
// transcodeur (une ligne ": ..." par note).
func countNotes(notes string) int {
	count := 0
	for _, line := range strings.Split(notes, "\n") {
		if strings.HasPrefix(line, ": ") {
			count++
		}
	}
	return count
}
