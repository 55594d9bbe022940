package content

import "portfolio-backend/internal/cv/model"

var omkar = model.CvProfile{
	ID:    AlternateType,
	Name:  "Omkar Singh",
	Title: "Data Analyst",
	Contact: model.Contact{
		Email:    "omkar.singh@example.com",
		Location: "Pune, India",
		Links: []model.Link{
			{Label: "GitHub", URL: "https://github.com/omkarsingh"},
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/omkarsingh"},
		},
	},
	Summary: "Data analyst turning operational data into dashboards and forecasts that teams act on. " +
		"Works across SQL, Python, and BI tooling with a focus on clean, documented pipelines.",
	Experience: []model.Experience{
		{
			Role:    "Data Analyst",
			Company: "Brightline Retail",
			Period:  "2022 - Present",
			Highlights: []string{
				"Owned weekly sales and inventory dashboards for 120 stores in Power BI.",
				"Automated data cleaning jobs in Python, saving the team 10 hours per week.",
				"Built a demand forecast that reduced stockouts on top sellers by 18%.",
			},
		},
	},
	Projects: []model.Project{
		{
			Name:         "Churn Explorer",
			Description:  "Interactive analysis of subscription churn drivers with cohort views.",
			Technologies: []string{"Python", "Pandas", "Streamlit"},
		},
	},
	Certifications: []model.Certification{
		{Name: "Google Data Analytics Professional Certificate", Issuer: "Google", Year: "2022"},
		{Name: "Microsoft Certified: Power BI Data Analyst Associate", Issuer: "Microsoft", Year: "2023"},
	},
	Skills: []model.SkillGroup{
		{Category: "Analysis", Items: []string{"SQL", "Python", "Pandas", "Excel"}},
		{Category: "Visualisation", Items: []string{"Power BI", "Tableau", "Matplotlib"}},
		{Category: "Data", Items: []string{"PostgreSQL", "BigQuery", "ETL"}},
	},
	Education: []model.Education{
		{
			Degree:      "B.Sc. in Statistics",
			Institution: "Savitribai Phule Pune University",
			Period:      "2018 - 2021",
		},
	},
	Delivery: model.Delivery{
		PagePath:    "/cv/omkar",
		FileBase:    "Omkar_Singh_CV",
		StorageName: "omkar-cv.pdf",
	},
}
