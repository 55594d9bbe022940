package github

import "time"

// User is the subset of GET /user the site displays.
type User struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	HTMLURL     string `json:"html_url"`
	Bio         string `json:"bio"`
	PublicRepos int    `json:"public_repos"`
}

// Repo is the subset of a repository record used to build project cards.
type Repo struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Fork        bool      `json:"fork"`
	Language    string    `json:"language"`
	Topics      []string  `json:"topics"`
	Homepage    string    `json:"homepage"`
	HTMLURL     string    `json:"html_url"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Project is a display-ready project card.
type Project struct {
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	Features     string    `json:"features"`
	URL          string    `json:"url,omitempty"`
	RepoURL      string    `json:"repo_url"`
	Stars        int       `json:"stars"`
	Forks        int       `json:"forks"`
	LastUpdated  time.Time `json:"last_updated"`
}

// Portfolio is the response of a project fetch.
type Portfolio struct {
	Projects []Project `json:"projects"`
	UserInfo User      `json:"user_info"`
}
