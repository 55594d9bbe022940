package github

import (
	"context"
	"strings"

	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/telemetry"
)

// Service turns the token owner's repositories into project cards.
type Service struct {
	API API
}

func NewService(api API) *Service {
	return &Service{API: api}
}

// Projects fetches the user and repositories and builds up to MaxProjects cards.
// Any upstream failure fails the whole fetch.
func (s *Service) Projects(ctx context.Context) (Portfolio, error) {
	metrics.IncGitHubFetch()
	user, err := s.API.User(ctx)
	if err != nil {
		metrics.IncGitHubFetchFailure()
		return Portfolio{}, err
	}
	repos, err := s.API.Repos(ctx)
	if err != nil {
		metrics.IncGitHubFetchFailure()
		return Portfolio{}, err
	}

	selected := SelectRepos(repos)
	if len(selected) > MaxProjects {
		selected = selected[:MaxProjects]
	}
	projects := make([]Project, 0, len(selected))
	for _, r := range selected {
		projects = append(projects, ToProject(r))
	}
	telemetry.Info("github.projects.fetched", map[string]any{
		"login":    user.Login,
		"repos":    len(repos),
		"projects": len(projects),
	})
	return Portfolio{Projects: projects, UserInfo: user}, nil
}

// SelectRepos drops forks and repositories without a description, keeping order.
func SelectRepos(repos []Repo) []Repo {
	out := make([]Repo, 0, len(repos))
	for _, r := range repos {
		if r.Fork || strings.TrimSpace(r.Description) == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ToProject derives the display card for one repository.
func ToProject(r Repo) Project {
	return Project{
		Name:         FormatName(r.Name),
		Description:  strings.TrimSpace(r.Description),
		Technologies: Technologies(r),
		Features:     Features(r),
		URL:          strings.TrimSpace(r.Homepage),
		RepoURL:      r.HTMLURL,
		Stars:        r.Stars,
		Forks:        r.Forks,
		LastUpdated:  r.UpdatedAt,
	}
}
