package assets

import "embed"

//go:embed ultrakara.example.yaml
//go:embed templates/*.tmpl
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded).
const DefaultConfigAsset = "ultrakara.example.yaml"

// DefaultTemplatePaths : templates "par défaut" embarqués, chemins relatifs
// DANS Embedded.
var DefaultTemplatePaths = []string{
	"templates/ultrastar_song.txt.tmpl",
}
