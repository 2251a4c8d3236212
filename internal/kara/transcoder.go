package kara

import (
	"fmt"
	"math"
	"strings"

	"github.com/pbrissaud/ultrakara/internal/subtitles"
)

// Constantes du format cible. L'horloge UltraStar est un compteur de beats à
// cadence fixe ; la hauteur est un placeholder en attendant une éventuelle
// détection automatique de pitch.
const (
	DefaultBeatsPerSecond = 20
	DefaultPitch          = 19
)

// Transcoder convertit les timings karaoké d'un document ASS vers le format
// de notes UltraStar. Les deux constantes sont injectables pour garder le
// coeur testable en isolation.
type Transcoder struct {
	BeatsPerSecond int
	Pitch          int
}

// NewTranscoder retourne un Transcoder avec les valeurs de référence.
func NewTranscoder() Transcoder {
	return Transcoder{
		BeatsPerSecond: DefaultBeatsPerSecond,
		Pitch:          DefaultPitch,
	}
}

// Transcode produit la section notes complète (toutes les lignes, dans
// l'ordre du document) sous forme de blob texte, plus les diagnostics
// accumulés pendant le scan. Aucune I/O : le document est déjà en mémoire.
//
// Pour chaque ligne le curseur de beats repart du temps de début absolu
// (floor(start × bps)) — il n'est PAS relatif à la ligne précédente, les
// silences entre lignes sont donc implicites et deux lignes peuvent se
// chevaucher si la source le fait.
func (t Transcoder) Transcode(doc *subtitles.Document) (string, []Diagnostic) {
	var sb strings.Builder
	var diags []Diagnostic

	for _, ev := range doc.Events {
		tags, lineDiags := ScanTags(ev.Text)
		diags = append(diags, lineDiags...)

		cursor := int(math.Floor(ev.Start.Seconds() * float64(t.BeatsPerSecond)))

		for _, tag := range tags {
			// Les durées des balises ASS sont en centisecondes.
			duration := int(math.Floor(float64(tag.DurationCS) / 100 * float64(t.BeatsPerSecond)))

			if tag.Sound != "" {
				// La durée est réduite de 1 pour ménager un beat de
				// silence entre deux notes. Quand duration vaut 0 le
				// résultat est -1 : comportement conservé tel quel.
				fmt.Fprintf(&sb, ": %d %d %d %s \n", cursor, duration-1, t.Pitch, tag.Sound)
			}

			// Un marqueur pur consomme du temps sans émettre de note.
			cursor += duration
		}

		// Séparateur de fin de ligne, au curseur final.
		fmt.Fprintf(&sb, "- %d \n", cursor)
	}

	return sb.String(), diags
}
