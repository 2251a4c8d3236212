package updater

import "time"

// ReleaseInfo contient les métadonnées de la dernière release publiée
// d'ultrakara (l'outil se distribue en source, pas d'assets par OS).
type ReleaseInfo struct {
	TagName     string
	Name        string
	PublishedAt time.Time
	Body        string
	HTMLURL     string
}
