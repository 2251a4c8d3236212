// Package subtitles fournit un parseur minimal des fichiers ASS/SSA :
// seuls les événements Dialogue de la section [Events] sont retenus, tout
// le reste (styles, commentaires, script info) est ignoré.
package subtitles

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoDialogue est retourné quand le document ne contient aucun événement
// Dialogue exploitable.
var ErrNoDialogue = errors.New("aucun événement Dialogue dans le document")

// Event représente une ligne de dialogue : un temps de début absolu (depuis
// le début du média) et le texte stylé brut, balises comprises.
type Event struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// Document regroupe les événements Dialogue d'un fichier ASS, dans l'ordre
// du fichier.
type Document struct {
	Events []Event
}

func (d *Document) String() string {
	if d == nil {
		return "Document(nil)"
	}
	return fmt.Sprintf("Document(%d dialogues)", len(d.Events))
}
