package model

import "sort"

// skillIcons maps every known skill name to its icon. The key set is the
// closed vocabulary accepted by validation; anything outside it is rejected.
var skillIcons = map[string]string{
	"JavaScript":   "FileCode",
	"TypeScript":   "FileCode",
	"Python":       "FileCode",
	"Go":           "FileCode",
	"Java":         "Coffee",
	"C#":           "FileCode",
	"C++":          "FileCode",
	"PHP":          "FileCode",
	"Ruby":         "Gem",
	"Swift":        "FileCode",
	"Kotlin":       "FileCode",
	"Rust":         "FileCode",
	"HTML":         "Code",
	"CSS":          "Palette",
	"SQL":          "Database",
	"React":        "Atom",
	"Next.js":      "Layers",
	"Vue.js":       "Layers",
	"Angular":      "Layers",
	"Svelte":       "Layers",
	"Tailwind CSS": "Wind",
	"Bootstrap":    "LayoutGrid",
	"Redux":        "Repeat",
	"Node.js":      "Server",
	"Express":      "Server",
	"Django":       "Server",
	"Flask":        "Server",
	"Spring Boot":  "Server",
	"GraphQL":      "Network",
	"REST APIs":    "Network",
	"PostgreSQL":   "Database",
	"MySQL":        "Database",
	"MongoDB":      "Database",
	"Redis":        "Database",
	"Firebase":     "Flame",
	"Supabase":     "Database",
	"Docker":       "Container",
	"Kubernetes":   "Ship",
	"AWS":          "Cloud",
	"Google Cloud": "Cloud",
	"Azure":        "Cloud",
	"Terraform":    "Boxes",
	"CI/CD":        "Workflow",
	"Nginx":        "Server",
	"Linux":        "Terminal",
	"Git":          "GitBranch",
	"GitHub":       "Github",
	"VS Code":      "Code",
	"Figma":        "Figma",
	"Jira":         "Kanban",
	"Postman":      "Send",
	"Webpack":      "Package",
	"Vite":         "Zap",
	"Jest":         "TestTube",
	"Cypress":      "TestTube",
	"Storybook":    "BookOpen",
	"Agile":        "Users",
	"Scrum":        "Users",
}

// DefaultSkillIcon is used when a skill has no dedicated icon mapping.
const DefaultSkillIcon = "Code"

// KnownSkill reports whether name belongs to the skill vocabulary.
func KnownSkill(name string) bool {
	_, ok := skillIcons[name]
	return ok
}

// IconForSkill returns the icon mapped to name, or the generic fallback.
func IconForSkill(name string) string {
	if icon, ok := skillIcons[name]; ok {
		return icon
	}
	return DefaultSkillIcon
}

// SkillNames returns the vocabulary sorted by name, for admin form option
// lists.
func SkillNames() []string {
	names := make([]string, 0, len(skillIcons))
	for name := range skillIcons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
