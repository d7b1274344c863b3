package content

// Public path keys that become stale after each kind of write. The rendering
// layer consumes these; the repositories only declare them.

// SettingsPaths covers every content page: site metadata is global.
func SettingsPaths() []string {
	return []string{"/", "/about", "/skills", "/portfolio", "/contact"}
}

// AboutPaths covers the pages rendering profile data.
func AboutPaths() []string { return []string{"/", "/about"} }

// SkillsPaths covers the pages rendering the skills grid.
func SkillsPaths() []string { return []string{"/", "/skills"} }

// PortfolioPaths covers the list, the home page teaser and the item detail.
func PortfolioPaths(slug string) []string {
	paths := []string{"/", "/portfolio"}
	if slug != "" {
		paths = append(paths, "/portfolio/"+slug)
	}
	return paths
}

// NotFoundPaths covers the rendered 404 page.
func NotFoundPaths() []string { return []string{"/not-found"} }
