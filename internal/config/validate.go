package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Validate vérifie de manière statique que la configuration est exploitable.
// Retourne warnings (non-fataux) et une erreur si c'est critique.
func (c *Config) Validate() (warnings []string, err error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}

	// cadence : une valeur éloignée de la référence donne des timings
	// surprenants mais reste légale
	if c.BeatsPerSecond != 20 {
		warnings = append(warnings, fmt.Sprintf("beats_per_second vaut %d (référence : 20) : les timings générés s'écarteront du comportement de référence", c.BeatsPerSecond))
	}

	// UltraStar encode la hauteur sur une plage restreinte autour de C4
	if c.Pitch > 48 {
		warnings = append(warnings, fmt.Sprintf("pitch %d inhabituel pour UltraStar", c.Pitch))
	}

	// le dossier de sortie sera créé, mais son parent doit être accessible
	parent := filepath.Dir(c.OutputDir)
	if parent == "" || parent == "." {
		return warnings, nil
	}
	if st, serr := os.Stat(parent); serr != nil {
		if os.IsNotExist(serr) {
			warnings = append(warnings, fmt.Sprintf("le dossier parent du dossier de sortie n'existe pas encore : %s", parent))
		} else {
			return warnings, fmt.Errorf("impossible d'accéder au dossier parent %s : %w", parent, serr)
		}
	} else if !st.IsDir() {
		return warnings, fmt.Errorf("le parent du dossier de sortie n'est pas un répertoire : %s", parent)
	}

	return warnings, nil
}
