package updater

import (
	"context"
	"fmt"
	"strings"
)

// UpdateCheck contient le résultat de la comparaison
type UpdateCheck struct {
	CurrentVersion string       // version compilée localement
	LatestRelease  *ReleaseInfo // info complète de la release distante
	IsUpToDate     bool         // true si CurrentVersion correspond au tag distant
}

// CheckSelfUpdate compare la version locale et la dernière release GitHub.
// Les builds de développement ("dev") sont toujours considérés à jour pour
// ne pas polluer la sortie.
func CheckSelfUpdate(ctx context.Context, localVer string) (*UpdateCheck, error) {
	if localVer == "" || localVer == "dev" {
		return &UpdateCheck{CurrentVersion: localVer, IsUpToDate: true}, nil
	}

	latest, err := GetLatestRelease(ctx)
	if err != nil {
		return nil, fmt.Errorf("impossible de récupérer la release GitHub : %w", err)
	}

	// comparaison tolérante au préfixe "v"
	isUpToDate := strings.TrimPrefix(localVer, "v") == strings.TrimPrefix(latest.TagName, "v")

	return &UpdateCheck{
		CurrentVersion: localVer,
		LatestRelease:  latest,
		IsUpToDate:     isUpToDate,
	}, nil
}
