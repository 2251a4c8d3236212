package model

import (
	"fmt"
	"strings"
)

// SongMeta regroupe les métadonnées d'une chanson, fournies en ligne de
// commande. Language et Creator sont optionnels.
type SongMeta struct {
	Title    string
	Artist   string
	Language string
	Creator  string
}

// BaseName compose le nom de base "Artiste - Titre" utilisé pour le dossier
// de la chanson et tous les fichiers renommés. La valeur n'est pas encore
// assainie pour le système de fichiers (voir fsutil.SanitizeFilename).
func (m SongMeta) BaseName() string {
	return fmt.Sprintf("%s - %s", m.Artist, m.Title)
}

func (m SongMeta) String() string {
	return fmt.Sprintf("SongMeta[Title=%q, Artist=%q, Language=%s, Creator=%s]",
		m.Title, m.Artist, orNone(m.Language), orNone(m.Creator))
}

// Pretty retourne une fiche multi-lignes simple.
func (m SongMeta) Pretty() string {
	return fmt.Sprintf(
		"Chanson :\n"+
			"  Titre    : %q\n"+
			"  Artiste  : %q\n"+
			"  Langue   : %s\n"+
			"  Créateur : %s\n",
		m.Title,
		m.Artist,
		orNone(m.Language),
		orNone(m.Creator),
	)
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(aucun)"
	}
	return s
}

// MediaSet regroupe les chemins des fichiers source à empaqueter. Audio et
// Subtitles sont obligatoires, le reste est optionnel (chaîne vide = absent).
type MediaSet struct {
	Audio      string // fichier MP3
	Subtitles  string // fichier ASS contenant les timings karaoké
	Cover      string // image de jaquette
	Background string // image de fond
	Video      string // vidéo d'arrière-plan
}
