package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pbrissaud/ultrakara/internal/assets"
	"github.com/pbrissaud/ultrakara/internal/fsutil"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 1

// struct pour les paramètres de configuration
type Config struct {
	// Chemins
	OutputDir string `yaml:"output_dir"`

	// Conversion des timings
	BeatsPerSecond int `yaml:"beats_per_second"`
	Pitch          int `yaml:"pitch"`

	// Métadonnées
	NormalizeLanguage bool `yaml:"normalize_language"`

	// Confort
	CopyNotesToClipboard bool `yaml:"copy_notes_to_clipboard"`
	AutoUpdateCheck      bool `yaml:"auto_update_check"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// Configuration par défaut (fallback si l'asset embarqué est manquant).
func defaultConfig() *Config {
	c := &Config{}

	// Chemins
	c.OutputDir = "./out"

	// Conversion : valeurs de référence du format cible
	c.BeatsPerSecond = 20
	c.Pitch = 19

	// Métadonnées
	c.NormalizeLanguage = true

	// Confort
	c.CopyNotesToClipboard = false
	c.AutoUpdateCheck = false

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Load lit la config ; si le fichier n'existe pas, on copie l'exemple
// embarqué depuis internal/assets.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "ultrakara.yaml"
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// On déserialise dans cfg initialisé : les champs absents conservent les
	// valeurs par défaut.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	// gestion de version : si le fichier est plus ancien -> orchestrer la mise à jour
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
		// re-normaliser au cas où la migration a modifié des valeurs
		cfg.normalizeConfig()
	}

	return cfg, nil
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	b, err := assets.Embedded.ReadFile(assets.DefaultConfigAsset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("échec mkdir pour la configuration %s : %w", filepath.Dir(dstPath), err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels)
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}

	fmt.Printf("info : fichier de configuration par défaut créé : %s\n", dstPath)
	return nil
}

func (c *Config) normalizeConfig() {
	// Nettoyage des chemins
	if c.OutputDir == "" {
		c.OutputDir = "./out"
	}
	c.OutputDir = filepath.Clean(c.OutputDir)

	// Valeurs de conversion : on retombe sur les valeurs de référence plutôt
	// que d'accepter une cadence inutilisable.
	if c.BeatsPerSecond <= 0 {
		c.BeatsPerSecond = 20
	}
	if c.Pitch < 0 {
		c.Pitch = 19
	}
}
