package github

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	user    User
	repos   []Repo
	userErr error
	repoErr error
}

func (f fakeAPI) User(context.Context) (User, error)   { return f.user, f.userErr }
func (f fakeAPI) Repos(context.Context) ([]Repo, error) { return f.repos, f.repoErr }

func sampleRepos(valid, forks, undescribed int) []Repo {
	var out []Repo
	for i := 0; i < valid; i++ {
		out = append(out, Repo{Name: fmt.Sprintf("project-%d", i), Description: "Useful thing", Language: "Go"})
	}
	for i := 0; i < forks; i++ {
		out = append(out, Repo{Name: fmt.Sprintf("fork-%d", i), Description: "Forked", Fork: true})
	}
	for i := 0; i < undescribed; i++ {
		out = append(out, Repo{Name: fmt.Sprintf("bare-%d", i), Description: "  "})
	}
	return out
}

func TestSelectReposFiltersForksAndEmptyDescriptions(t *testing.T) {
	repos := sampleRepos(5, 3, 2)
	require.Len(t, repos, 10)

	selected := SelectRepos(repos)

	assert.Len(t, selected, 5)
	for _, r := range selected {
		assert.False(t, r.Fork)
		assert.NotEmpty(t, r.Description)
	}
}

func TestProjectsCapsAtSix(t *testing.T) {
	svc := NewService(fakeAPI{user: User{Login: "manishjangra"}, repos: sampleRepos(9, 1, 1)})

	got, err := svc.Projects(context.Background())

	require.NoError(t, err)
	assert.Len(t, got.Projects, MaxProjects)
	assert.Equal(t, "Project 0", got.Projects[0].Name, "recency order is preserved")
	assert.Equal(t, "manishjangra", got.UserInfo.Login)
}

func TestProjectsPropagatesUpstreamErrors(t *testing.T) {
	upstream := &UpstreamError{Path: "/user/repos", Status: 502}
	svc := NewService(fakeAPI{repoErr: upstream})

	_, err := svc.Projects(context.Background())

	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, 502, ue.Status)
}

func TestToProject(t *testing.T) {
	p := ToProject(Repo{
		Name:        "expense-tracker",
		Description: " Shared budgets ",
		Language:    "TypeScript",
		Topics:      []string{"react", "mongodb"},
		Homepage:    "https://expenses.example",
		HTMLURL:     "https://github.com/manishjangra/expense-tracker",
		Stars:       12,
		Forks:       3,
	})

	assert.Equal(t, "Expense Tracker", p.Name)
	assert.Equal(t, "Shared budgets", p.Description)
	assert.Equal(t, []string{"TypeScript", "react", "mongodb"}, p.Technologies)
	assert.Equal(t, "Database integration, Live demo", p.Features)
	assert.Equal(t, "https://expenses.example", p.URL)
	assert.Equal(t, 12, p.Stars)
}
