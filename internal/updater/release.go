package updater

import (
	"context"
	"time"

	"github.com/pbrissaud/ultrakara/pkg/github"
)

// Dépôt interrogé pour la vérification de mise à jour.
const (
	repoOwner = "pbrissaud"
	repoName  = "ultrakara"
)

type rawRelease struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	PublishedAt time.Time `json:"published_at"`
	Body        string    `json:"body"`
	HTMLURL     string    `json:"html_url"`
}

// GetLatestRelease récupère la dernière release publiée d'ultrakara.
func GetLatestRelease(ctx context.Context) (*ReleaseInfo, error) {
	var raw rawRelease
	if err := github.FetchLatestRelease(ctx, repoOwner, repoName, &raw); err != nil {
		return nil, err
	}

	return &ReleaseInfo{
		TagName:     raw.TagName,
		Name:        raw.Name,
		PublishedAt: raw.PublishedAt,
		Body:        raw.Body,
		HTMLURL:     raw.HTMLURL,
	}, nil
}
