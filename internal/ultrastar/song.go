// Package ultrastar construit l'artefact texte UltraStar : l'en-tête de
// métadonnées (rendu par template) suivi de la section notes produite par le
// transcodeur, terminé par le marqueur `E`.
package ultrastar

// EndMarker termine tout fichier UltraStar valide.
const EndMarker = "E\n"

// Header regroupe les données injectées dans le template d'en-tête.
// Language, Creator, Cover, Background et Video sont optionnels : les lignes
// correspondantes sont omises quand la valeur est vide.
type Header struct {
	Title    string
	Artist   string
	Language string
	Creator  string

	// Fichiers liés, relatifs au dossier de la chanson (déjà renommés).
	MP3        string
	Cover      string
	Background string
	Video      string

	BPM float64
	Gap int
}

// BPMFor calcule le tempo à inscrire dans le fichier UltraStar à partir de
// la cadence fixe utilisée pour les timings. Le BPM attendu vaut environ un
// quart du BPM calculé (constat empirique, conservé tel quel).
func BPMFor(beatsPerSecond int) float64 {
	return float64(beatsPerSecond) * 60 / 4
}
