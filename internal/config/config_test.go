package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_CreatesDefaultWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ultrakara.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// le fichier a été créé à partir de l'asset embarqué
	if _, err := os.Stat(path); err != nil {
		t.Errorf("fichier de configuration non créé : %v", err)
	}

	if cfg.BeatsPerSecond != 20 {
		t.Errorf("BeatsPerSecond = %d; want 20", cfg.BeatsPerSecond)
	}
	if cfg.Pitch != 19 {
		t.Errorf("Pitch = %d; want 19", cfg.Pitch)
	}
	if !cfg.NormalizeLanguage {
		t.Error("NormalizeLanguage doit être activé par défaut")
	}
	if cfg.ConfigVersion != CurrentConfigVersion {
		t.Errorf("ConfigVersion = %d; want %d", cfg.ConfigVersion, CurrentConfigVersion)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ultrakara.yaml")
	content := `output_dir: ./songs
beats_per_second: 10
pitch: 5
copy_notes_to_clipboard: true
config_version: 1
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.OutputDir != "songs" {
		t.Errorf("OutputDir = %q; want %q (chemin nettoyé)", cfg.OutputDir, "songs")
	}
	if cfg.BeatsPerSecond != 10 {
		t.Errorf("BeatsPerSecond = %d; want 10", cfg.BeatsPerSecond)
	}
	if cfg.Pitch != 5 {
		t.Errorf("Pitch = %d; want 5", cfg.Pitch)
	}
	if !cfg.CopyNotesToClipboard {
		t.Error("CopyNotesToClipboard doit être repris du fichier")
	}
	// champ absent du fichier : valeur par défaut conservée
	if !cfg.NormalizeLanguage {
		t.Error("NormalizeLanguage doit rester à la valeur par défaut")
	}
}

func TestLoad_NormalizesBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ultrakara.yaml")
	content := `beats_per_second: 0
pitch: -3
config_version: 1
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.BeatsPerSecond != 20 {
		t.Errorf("BeatsPerSecond = %d; want retour à 20", cfg.BeatsPerSecond)
	}
	if cfg.Pitch != 19 {
		t.Errorf("Pitch = %d; want retour à 19", cfg.Pitch)
	}
}

func TestValidate_Warnings(t *testing.T) {
	cfg := defaultConfig()
	cfg.BeatsPerSecond = 40
	cfg.Pitch = 60
	cfg.OutputDir = "out" // parent ".", toujours accessible

	warnings, err := cfg.Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(warnings) != 2 {
		t.Errorf("warnings = %v; want 2 entrées", warnings)
	}
}

func TestLoad_MigratesOldVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ultrakara.yaml")
	content := `output_dir: ./out
config_version: 0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ConfigVersion != CurrentConfigVersion {
		t.Errorf("ConfigVersion = %d; want %d après migration", cfg.ConfigVersion, CurrentConfigVersion)
	}

	// une sauvegarde horodatée doit exister à côté du fichier migré
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	foundBackup := false
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "ultrakara.yaml.bak.") {
			foundBackup = true
		}
	}
	if !foundBackup {
		t.Error("aucune sauvegarde .bak créée pendant la migration")
	}
}
