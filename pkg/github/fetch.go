package github

import (
	"context"
	"fmt"

	"github.com/pbrissaud/ultrakara/internal/fetch"
)

// FetchLatestRelease interroge l'API GitHub pour la dernière release d'un
// dépôt donné et décode la réponse dans dst (pointeur vers la structure
// attendue par l'appelant).
func FetchLatestRelease(ctx context.Context, owner, repo string, dst any) error {
	url := fmt.Sprintf("https://api.github.com/repos/%s/%s/releases/latest", owner, repo)
	if err := fetch.JSONInto(ctx, url, 0, 0, dst); err != nil {
		return fmt.Errorf("release GitHub %s/%s : %w", owner, repo, err)
	}
	return nil
}
