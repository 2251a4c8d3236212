package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pbrissaud/ultrakara/internal/assets"
	"github.com/pbrissaud/ultrakara/internal/ultrastar"
)

func TestEnsureTemplatesPresent_CreatesAndSeeds(t *testing.T) {
	tplDir := filepath.Join(t.TempDir(), "templates")

	if err := EnsureTemplatesPresent(tplDir, assets.Embedded, assets.DefaultTemplatePaths); err != nil {
		t.Fatalf("EnsureTemplatesPresent: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tplDir, ultrastar.SongTemplate)); err != nil {
		t.Errorf("template non exporté : %v", err)
	}
}

func TestEnsureTemplatesPresent_SeedsEmptyExistingDir(t *testing.T) {
	tplDir := filepath.Join(t.TempDir(), "templates")
	if err := os.MkdirAll(tplDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	// dossier présent mais vide : même comportement que dossier manquant
	if err := EnsureTemplatesPresent(tplDir, assets.Embedded, assets.DefaultTemplatePaths); err != nil {
		t.Fatalf("EnsureTemplatesPresent: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tplDir, ultrastar.SongTemplate)); err != nil {
		t.Errorf("template non exporté dans le dossier vide : %v", err)
	}
}

func TestEnsureTemplatesPresent_NeverOverwrites(t *testing.T) {
	tplDir := filepath.Join(t.TempDir(), "templates")
	if err := os.MkdirAll(tplDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	dest := filepath.Join(tplDir, ultrastar.SongTemplate)
	custom := []byte("#TITLE:{{.Title}}\n")
	if err := os.WriteFile(dest, custom, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := EnsureTemplatesPresent(tplDir, assets.Embedded, assets.DefaultTemplatePaths); err != nil {
		t.Fatalf("EnsureTemplatesPresent: %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(custom) {
		t.Error("le template modifié par l'utilisateur a été écrasé")
	}
}

func TestEnsureConfigPresent_CreatesOnce(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "ultrakara.yaml")

	if err := EnsureConfigPresent(dst, assets.Embedded, assets.DefaultConfigAsset); err != nil {
		t.Fatalf("EnsureConfigPresent: %v", err)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Fatalf("config non créée : %v", err)
	}

	// un contenu utilisateur ne doit jamais être remplacé
	custom := []byte("output_dir: ./custom\n")
	if err := os.WriteFile(dst, custom, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := EnsureConfigPresent(dst, assets.Embedded, assets.DefaultConfigAsset); err != nil {
		t.Fatalf("EnsureConfigPresent (2e appel) : %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(custom) {
		t.Error("le fichier de configuration existant a été écrasé")
	}
}
