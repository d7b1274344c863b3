package model

// Bundled default content. Singleton reads fall back to these values field by
// field when the store is empty or unreachable, and seeding writes them out
// as the initial deployment state.

func intPtr(v int) *int { return &v }

// DefaultSiteSettings returns the fallback site configuration.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteName:               "Devfolio",
		DefaultMetaDescription: "Personal portfolio of a full-stack developer: projects, skills and experience.",
		DefaultMetaKeywords:    "portfolio, developer, full-stack, projects",
		SiteOGImageURL:         "",
		MaintenanceMode:        false,
		PageMetas: map[string]PageMeta{
			"portfolio": {Title: "Portfolio", Description: "Selected projects and case studies."},
			"contact":   {Title: "Contact", Description: "Get in touch."},
		},
	}
}

// DefaultAboutMe returns the fallback profile.
func DefaultAboutMe() AboutMe {
	return AboutMe{
		Name:            "Alex Doe",
		Title:           "Full-Stack Developer",
		Bio:             "I build web applications end to end, from data models to pixel-level UI polish. Currently focused on cloud-native backends and fast, accessible frontends.",
		ProfileImageURL: "https://placehold.co/400x400.png",
		ImageHint:       "professional portrait",
		Experience: []Experience{
			{
				ID:          "exp-default-1",
				Role:        "Senior Software Engineer",
				Company:     "Acme Cloud",
				Period:      "2021 - Present",
				Description: "Leading development of customer-facing dashboards and the services behind them.",
			},
			{
				ID:          "exp-default-2",
				Role:        "Software Engineer",
				Company:     "Webworks Studio",
				Period:      "2018 - 2021",
				Description: "Built and shipped client sites and internal tooling across the stack.",
			},
		},
		Education: []Education{
			{
				ID:          "edu-default-1",
				Degree:      "B.Sc. Computer Science",
				Institution: "State University",
				Period:      "2014 - 2018",
			},
		},
		Contact: ContactLinks{
			Email:    "hello@example.com",
			LinkedIn: "https://www.linkedin.com/in/example",
			GitHub:   "https://github.com/example",
		},
	}
}

// DefaultNotFoundPage returns the fallback 404-page copy.
func DefaultNotFoundPage() NotFoundPage {
	return NotFoundPage{
		ImageSrc:   "https://placehold.co/600x400.png",
		ImageHint:  "lost astronaut",
		Heading:    "Page Not Found",
		Message:    "The page you are looking for does not exist or has been moved.",
		ButtonText: "Back to Home",
	}
}

// DefaultSkills returns the seed skill set.
func DefaultSkills() []Skill {
	return []Skill{
		{ID: "skill_default_typescript", Name: "TypeScript", Category: CategoryLanguages, IconName: IconForSkill("TypeScript"), Proficiency: intPtr(90)},
		{ID: "skill_default_go", Name: "Go", Category: CategoryLanguages, IconName: IconForSkill("Go"), Proficiency: intPtr(85)},
		{ID: "skill_default_python", Name: "Python", Category: CategoryLanguages, IconName: IconForSkill("Python"), Proficiency: intPtr(80)},
		{ID: "skill_default_react", Name: "React", Category: CategoryFrontend, IconName: IconForSkill("React"), Proficiency: intPtr(90)},
		{ID: "skill_default_nextjs", Name: "Next.js", Category: CategoryFrontend, IconName: IconForSkill("Next.js"), Proficiency: intPtr(85)},
		{ID: "skill_default_tailwind", Name: "Tailwind CSS", Category: CategoryFrontend, IconName: IconForSkill("Tailwind CSS")},
		{ID: "skill_default_nodejs", Name: "Node.js", Category: CategoryBackend, IconName: IconForSkill("Node.js"), Proficiency: intPtr(85)},
		{ID: "skill_default_postgresql", Name: "PostgreSQL", Category: CategoryBackend, IconName: IconForSkill("PostgreSQL"), Proficiency: intPtr(75)},
		{ID: "skill_default_firebase", Name: "Firebase", Category: CategoryBackend, IconName: IconForSkill("Firebase")},
		{ID: "skill_default_docker", Name: "Docker", Category: CategoryDevOps, IconName: IconForSkill("Docker"), Proficiency: intPtr(70)},
		{ID: "skill_default_gcp", Name: "Google Cloud", Category: CategoryDevOps, IconName: IconForSkill("Google Cloud")},
		{ID: "skill_default_git", Name: "Git", Category: CategoryTools, IconName: IconForSkill("Git"), Proficiency: intPtr(90)},
		{ID: "skill_default_figma", Name: "Figma", Category: CategoryTools, IconName: IconForSkill("Figma")},
		{ID: "skill_default_agile", Name: "Agile", Category: CategoryOther, IconName: IconForSkill("Agile")},
	}
}

// DefaultPortfolioItems returns the seed projects. IDs are store assigned at
// seed time; CreatedAt/UpdatedAt are stamped by the store.
func DefaultPortfolioItems() []PortfolioItem {
	return []PortfolioItem{
		{
			Title:           "Realtime Collaboration Board",
			Description:     "A shared whiteboard with live cursors and presence.",
			LongDescription: "Multi-user drawing board built on websockets with optimistic local updates and conflict-free merging of strokes. Deployed on managed containers with autoscaling.",
			Images:          []string{"https://placehold.co/600x400.png"},
			Tags:            []string{"typescript", "websockets", "react"},
			LiveURL:         "https://example.com/board",
			RepoURL:         "https://github.com/example/board",
			Slug:            "realtime-collaboration-board",
			ImageHint:       "whiteboard app",
		},
		{
			Title:           "Telemetry Ingest Pipeline",
			Description:     "High-throughput event ingestion with queryable rollups.",
			LongDescription: "Ingestion service accepting device telemetry, batching into columnar storage, with a small query API for dashboards.",
			Images:          []string{"https://placehold.co/600x400.png"},
			Tags:            []string{"go", "pubsub", "bigquery"},
			RepoURL:         "https://github.com/example/telemetry",
			Slug:            "telemetry-ingest-pipeline",
			ImageHint:       "data pipeline",
		},
		{
			Title:       "Recipe Finder",
			Description: "Search-as-you-type recipe discovery with dietary filters.",
			Images:      []string{"https://placehold.co/600x400.png"},
			Tags:        []string{"nextjs", "search"},
			LiveURL:     "https://example.com/recipes",
			Slug:        "recipe-finder",
			ImageHint:   "food photography",
		},
	}
}
