// Package bootstrap copie les ressources embarquées (config d'exemple,
// template d'en-tête) à côté du binaire si elles manquent. Idempotent : ne
// remplace jamais un fichier existant, l'utilisateur peut donc les modifier.
package bootstrap

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pbrissaud/ultrakara/internal/fsutil"
)

// EnsureConfigPresent copie un fichier embarqué (assetPath dans fsys) vers
// dstPath si dstPath n'existe pas encore.
// - dstPath : chemin complet sur disque (ex: binDir/ultrakara.yaml)
// - fsys : embed.FS (ou autre fs.FS) contenant l'asset
// - assetPath : chemin dans fsys vers l'asset (ex: "ultrakara.example.yaml")
func EnsureConfigPresent(dstPath string, fsys fs.FS, assetPath string) error {
	parent := filepath.Dir(dstPath)
	if parent == "" {
		parent = "."
	}
	if st, err := os.Stat(parent); err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return fmt.Errorf("échec création répertoire parent %s : %w", parent, err)
			}
		} else {
			return fmt.Errorf("échec test parent %s : %w", parent, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("le parent existe mais n'est pas un répertoire : %s", parent)
	}

	// si le fichier existe déjà -> ne rien faire
	if _, err := os.Stat(dstPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("échec stat fichier cible %s : %w", dstPath, err)
	}

	data, err := fs.ReadFile(fsys, filepath.ToSlash(assetPath))
	if err != nil {
		return fmt.Errorf("lecture de la ressource embarquée %s : %w", assetPath, err)
	}
	if err := fsutil.WriteFileAtomic(dstPath, data, 0o644); err != nil {
		return fmt.Errorf("écriture du fichier %s : %w", dstPath, err)
	}
	return nil
}

// EnsureTemplatesPresent s'assure que les templates listés existent sur
// disque dans tplDir, en copiant depuis fsys ceux qui manquent.
//
// - tplDir   : dossier destination sur disque (ex: "./templates")
// - fsys     : embed.FS (ou autre fs.FS) contenant les ressources embarquées
// - srcFiles : chemins DANS fsys (ex: "templates/ultrastar_song.txt.tmpl")
func EnsureTemplatesPresent(tplDir string, fsys fs.FS, srcFiles []string) error {
	// si tplDir n'existe pas -> créer et copier tous les fichiers listés
	if _, err := os.Stat(tplDir); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("échec lors du test du répertoire de templates %s : %w", tplDir, err)
		}
		if err := os.MkdirAll(tplDir, 0o755); err != nil {
			return fmt.Errorf("échec de création du répertoire de templates %s : %w", tplDir, err)
		}
		return seedTemplates(tplDir, fsys, srcFiles)
	}

	// tplDir existe -> s'il est vide, comportement identique à tplDir manquant
	empty, err := fsutil.IsDirEmpty(tplDir)
	if err != nil {
		return fmt.Errorf("échec lors de la vérification du répertoire %s : %w", tplDir, err)
	}
	if empty {
		return seedTemplates(tplDir, fsys, srcFiles)
	}

	// tplDir non vide -> n'ajouter que les fichiers manquants (ne jamais écraser)
	for _, src := range srcFiles {
		dest := filepath.Join(tplDir, filepath.Base(src))
		if _, err := os.Stat(dest); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("échec lors du test du fichier %s : %w", dest, err)
		}
		if err := seedTemplate(dest, fsys, src); err != nil {
			return err
		}
	}
	return nil
}

// seedTemplates copie tous les fichiers listés depuis fsys vers tplDir.
func seedTemplates(tplDir string, fsys fs.FS, srcFiles []string) error {
	for _, src := range srcFiles {
		if err := seedTemplate(filepath.Join(tplDir, filepath.Base(src)), fsys, src); err != nil {
			return err
		}
	}
	return nil
}

func seedTemplate(dest string, fsys fs.FS, src string) error {
	data, err := fs.ReadFile(fsys, filepath.ToSlash(src))
	if err != nil {
		return fmt.Errorf("fichier embarqué introuvable %s : %w", src, err)
	}
	if err := fsutil.WriteFileAtomic(dest, data, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du template %s : %w", dest, err)
	}
	return nil
}
