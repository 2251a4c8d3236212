package ui

import "context"

// Summary récapitule une conversion terminée, affichée à l'utilisateur en
// fin d'exécution.
type Summary struct {
	SongDir       string // dossier créé pour la chanson
	DialogueLines int    // lignes Dialogue traitées
	Notes         int    // notes émises
	Warnings      int    // fragments ignorés pendant le scan
}

// Interface isole l'app du terminal, pour pouvoir injecter un mock dans les
// tests.
type Interface interface {
	PrintInfo(ctx context.Context, s string)
	// PrintWarning annonce une dégradation tolérée (fragment ignoré...),
	// jamais une erreur fatale.
	PrintWarning(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)
	PrintSummary(ctx context.Context, s Summary)
}
