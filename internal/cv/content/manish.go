package content

import "portfolio-backend/internal/cv/model"

var manish = model.CvProfile{
	ID:    DefaultType,
	Name:  "Manish Jangra",
	Title: "Full Stack Developer",
	Contact: model.Contact{
		Email:    "manish.jangra@example.com",
		Location: "Gurugram, India",
		Links: []model.Link{
			{Label: "GitHub", URL: "https://github.com/manishjangra"},
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/manishjangra"},
			{Label: "Portfolio", URL: "https://manishjangra.dev"},
		},
	},
	Summary: "Full stack developer building web applications end to end, from React interfaces to " +
		"serverless APIs backed by Postgres. Comfortable owning a feature from schema design through " +
		"deployment and monitoring.",
	Experience: []model.Experience{
		{
			Role:    "Software Engineer",
			Company: "Nimbus Labs",
			Period:  "2023 - Present",
			Highlights: []string{
				"Built customer-facing dashboards in React and TypeScript used by 40+ client teams.",
				"Designed REST endpoints and Postgres schemas for billing and reporting features.",
				"Cut page load time by 35% through code splitting and API response caching.",
			},
		},
		{
			Role:    "Frontend Developer Intern",
			Company: "Pixelcraft Studio",
			Period:  "2022 - 2023",
			Highlights: []string{
				"Implemented responsive marketing sites with Tailwind CSS and accessibility audits.",
				"Added end-to-end tests that caught regressions before each release.",
			},
		},
	},
	Projects: []model.Project{
		{
			Name:         "Portfolio Platform",
			Description:  "Personal site with CV delivery, contact form storage, and GitHub project sync.",
			Technologies: []string{"React", "TypeScript", "Go", "PostgreSQL"},
		},
		{
			Name:         "Expense Tracker",
			Description:  "Shared budgeting app with recurring expenses and CSV export.",
			Technologies: []string{"Next.js", "Node.js", "MongoDB"},
		},
	},
	Certifications: []model.Certification{
		{Name: "AWS Certified Cloud Practitioner", Issuer: "Amazon Web Services", Year: "2024"},
		{Name: "Meta Front-End Developer", Issuer: "Coursera", Year: "2023"},
	},
	Skills: []model.SkillGroup{
		{Category: "Languages", Items: []string{"TypeScript", "JavaScript", "Go", "SQL"}},
		{Category: "Frontend", Items: []string{"React", "Next.js", "Tailwind CSS"}},
		{Category: "Backend", Items: []string{"Node.js", "Express", "PostgreSQL", "REST APIs"}},
		{Category: "Tooling", Items: []string{"Git", "Docker", "AWS", "CI/CD"}},
	},
	Education: []model.Education{
		{
			Degree:      "B.Tech in Computer Science",
			Institution: "Guru Jambheshwar University of Science and Technology",
			Period:      "2019 - 2023",
		},
	},
	Delivery: model.Delivery{
		PagePath:    "/cv/manish",
		FileBase:    "Manish_Jangra_CV",
		StorageName: "manish-cv.pdf",
	},
}
