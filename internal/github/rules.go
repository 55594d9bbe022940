package github

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MaxProjects     = 6
	maxTechnologies = 4
	maxFeatures     = 3
)

// techAllowList holds the topic tags shown as technologies.
var techAllowList = map[string]bool{
	"react": true, "nextjs": true, "vue": true, "angular": true, "svelte": true,
	"javascript": true, "typescript": true, "nodejs": true, "express": true,
	"python": true, "django": true, "flask": true, "fastapi": true,
	"go": true, "golang": true, "rust": true, "java": true, "spring-boot": true, "kotlin": true,
	"swift": true, "flutter": true, "dart": true, "react-native": true,
	"html": true, "css": true, "sass": true, "tailwindcss": true, "bootstrap": true,
	"mongodb": true, "postgresql": true, "mysql": true, "sqlite": true, "redis": true,
	"supabase": true, "firebase": true, "graphql": true, "prisma": true,
	"docker": true, "kubernetes": true, "aws": true, "vercel": true,
	"pandas": true, "numpy": true, "tensorflow": true, "pytorch": true, "scikit-learn": true,
}

// featureRule maps repository signals to a display phrase.
type featureRule struct {
	phrase   string
	topics   []string
	keywords []string
	homepage bool
}

// featureRules are evaluated in order; each contributes at most once.
var featureRules = []featureRule{
	{phrase: "Responsive design", topics: []string{"responsive", "responsive-design", "tailwindcss", "bootstrap", "css"}, keywords: []string{"responsive", "mobile friendly"}},
	{phrase: "RESTful API", topics: []string{"api", "rest-api", "rest", "express", "fastapi"}, keywords: []string{"api", "rest", "backend"}},
	{phrase: "User authentication", topics: []string{"auth", "authentication", "jwt", "oauth", "login"}, keywords: []string{"auth", "authentication", "login", "sign in"}},
	{phrase: "Database integration", topics: []string{"database", "mongodb", "postgresql", "mysql", "sqlite", "supabase", "firebase", "prisma"}, keywords: []string{"database", "crud", "sql"}},
	{phrase: "Real-time updates", topics: []string{"websocket", "socket-io", "realtime", "real-time"}, keywords: []string{"real time", "realtime", "chat", "live updates"}},
	{phrase: "Data visualization", topics: []string{"dashboard", "charts", "visualization", "d3"}, keywords: []string{"dashboard", "chart", "charts", "visualization", "visualisation", "analytics"}},
	{phrase: "Machine learning", topics: []string{"machine-learning", "deep-learning", "ml", "ai", "tensorflow", "pytorch"}, keywords: []string{"machine learning", "prediction", "classifier", "neural"}},
	{phrase: "Live demo", homepage: true},
}

// languageFallbacks supply a phrase when no rule matched, keyed by language family.
var languageFallbacks = []struct {
	languages []string
	phrase    string
}{
	{languages: []string{"javascript", "typescript", "html", "css", "vue", "svelte"}, phrase: "Interactive web interface"},
	{languages: []string{"python", "jupyter notebook", "r"}, phrase: "Data processing and analysis"},
	{languages: []string{"swift", "dart", "objective-c"}, phrase: "Mobile application"},
	{languages: []string{"go", "rust", "java", "kotlin", "c#", "c++", "c"}, phrase: "Efficient backend services"},
}

const genericFeature = "Clean, maintainable code"

// Technologies lists the primary language followed by allow-listed topics,
// deduplicated case-insensitively and capped.
func Technologies(r Repo) []string {
	out := make([]string, 0, maxTechnologies)
	seen := map[string]bool{}
	add := func(v string) {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" || seen[key] || len(out) >= maxTechnologies {
			return
		}
		seen[key] = true
		out = append(out, strings.TrimSpace(v))
	}
	add(r.Language)
	for _, topic := range r.Topics {
		if techAllowList[strings.ToLower(strings.TrimSpace(topic))] {
			add(topic)
		}
	}
	return out
}

// Features derives up to three comma-joined phrases from topics, description
// keywords, and homepage presence.
func Features(r Repo) string {
	topics := map[string]bool{}
	for _, t := range r.Topics {
		topics[strings.ToLower(strings.TrimSpace(t))] = true
	}
	desc := " " + normalizeWords(r.Description) + " "
	hasHomepage := strings.TrimSpace(r.Homepage) != ""

	var phrases []string
	for _, rule := range featureRules {
		if len(phrases) >= maxFeatures {
			break
		}
		if rule.matches(topics, desc, hasHomepage) {
			phrases = append(phrases, rule.phrase)
		}
	}
	if len(phrases) == 0 {
		phrases = append(phrases, fallbackFeature(r.Language))
	}
	return strings.Join(phrases, ", ")
}

func (f featureRule) matches(topics map[string]bool, desc string, hasHomepage bool) bool {
	if f.homepage && hasHomepage {
		return true
	}
	for _, t := range f.topics {
		if topics[t] {
			return true
		}
	}
	for _, kw := range f.keywords {
		if strings.Contains(desc, " "+kw+" ") {
			return true
		}
	}
	return false
}

func fallbackFeature(language string) string {
	lang := strings.ToLower(strings.TrimSpace(language))
	for _, fb := range languageFallbacks {
		for _, l := range fb.languages {
			if l == lang {
				return fb.phrase
			}
		}
	}
	return genericFeature
}

// normalizeWords lower-cases s and joins its alphanumeric runs with single spaces.
func normalizeWords(s string) string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(words, " ")
}

// FormatName turns "my-cool_repo" into "My Cool Repo".
func FormatName(name string) string {
	replaced := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	words := strings.Fields(replaced)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
