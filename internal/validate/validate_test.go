package validate

import (
	"strings"
	"testing"

	"github.com/devfolio/content-service/internal/model"
)

func TestSiteSettings(t *testing.T) {
	ok := model.SiteSettings{
		SiteName:               "Jane Doe Portfolio",
		DefaultMetaDescription: "Projects and writing by Jane Doe.",
		SiteOGImageURL:         "https://example.com/og.png",
	}
	if fe := SiteSettings(ok); !fe.Empty() {
		t.Fatalf("expected no errors, got %v", fe)
	}

	cases := []struct {
		name  string
		mut   func(*model.SiteSettings)
		field string
	}{
		{"short site name", func(s *model.SiteSettings) { s.SiteName = "ab" }, "siteName"},
		{"long site name", func(s *model.SiteSettings) { s.SiteName = string(make([]byte, 61)) }, "siteName"},
		{"short meta description", func(s *model.SiteSettings) { s.DefaultMetaDescription = "too short" }, "defaultMetaDescription"},
		{"bad og image url", func(s *model.SiteSettings) { s.SiteOGImageURL = "notaurl" }, "siteOgImageUrl"},
		{"relative og image url", func(s *model.SiteSettings) { s.SiteOGImageURL = "/images/og.png" }, "siteOgImageUrl"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := ok
			tc.mut(&s)
			fe := SiteSettings(s)
			if len(fe[tc.field]) == 0 {
				t.Fatalf("expected error on %q, got %v", tc.field, fe)
			}
		})
	}
}

func TestSiteSettingsPageMetaDescription(t *testing.T) {
	s := model.SiteSettings{
		SiteName:               "Jane Doe Portfolio",
		DefaultMetaDescription: "Projects and writing by Jane Doe.",
		PageMetas: map[string]model.PageMeta{
			"about": {Description: string(make([]byte, 161))},
		},
	}
	fe := SiteSettings(s)
	if len(fe["pageMetas.about.description"]) == 0 {
		t.Fatalf("expected page meta length error, got %v", fe)
	}
}

func TestAboutMe(t *testing.T) {
	ok := model.AboutMe{
		Name:  "Jane Doe",
		Title: "Software Engineer",
		Bio:   "I build web applications and developer tools.",
		Experience: []model.Experience{
			{ID: "exp1", Role: "Engineer", Company: "Acme", Period: "2020-2024", Description: "Built things."},
		},
		Education: []model.Education{
			{ID: "edu1", Degree: "BSc", Institution: "State University", Period: "2016-2020"},
		},
	}
	if fe := AboutMe(ok); !fe.Empty() {
		t.Fatalf("expected no errors, got %v", fe)
	}

	t.Run("short bio", func(t *testing.T) {
		a := ok
		a.Bio = "too short"
		if fe := AboutMe(a); len(fe["bio"]) == 0 {
			t.Fatalf("expected bio error, got %v", fe)
		}
	})

	t.Run("indexed entry errors", func(t *testing.T) {
		a := ok
		a.Experience = []model.Experience{
			{ID: "exp1", Role: "Engineer", Company: "Acme", Period: "2020-2024", Description: "Built things."},
			{ID: "exp2", Role: "", Company: "Beta", Period: "2024-", Description: "More things."},
		}
		fe := AboutMe(a)
		if len(fe["experience.1.role"]) == 0 {
			t.Fatalf("expected indexed role error, got %v", fe)
		}
	})

	t.Run("duplicate entry ids", func(t *testing.T) {
		a := ok
		a.Education = []model.Education{
			{ID: "exp1", Degree: "BSc", Institution: "State University", Period: "2016-2020"},
		}
		fe := AboutMe(a)
		if len(fe["education.0.id"]) == 0 {
			t.Fatalf("expected duplicate id error, got %v", fe)
		}
	})

	t.Run("missing entry id", func(t *testing.T) {
		a := ok
		a.Experience = []model.Experience{
			{Role: "Engineer", Company: "Acme", Period: "2020-2024", Description: "Built things."},
		}
		fe := AboutMe(a)
		if len(fe["experience.0.id"]) == 0 {
			t.Fatalf("expected missing id error, got %v", fe)
		}
	})
}

func TestLengthRulesCountRunes(t *testing.T) {
	a := model.AboutMe{Name: "Jane Doe", Title: "Software Engineer"}

	// 19 multibyte runes miss the 20-character minimum even though the
	// byte length is well past it.
	a.Bio = strings.Repeat("é", 19)
	if fe := AboutMe(a); len(fe["bio"]) == 0 {
		t.Fatalf("expected bio error for 19 runes, got %v", fe)
	}
	a.Bio = strings.Repeat("é", 20)
	if fe := AboutMe(a); len(fe["bio"]) != 0 {
		t.Fatalf("expected 20 runes accepted, got %v", fe["bio"])
	}

	// 60 multibyte runes stay within the 60-character maximum.
	s := model.SiteSettings{
		SiteName:               strings.Repeat("é", 60),
		DefaultMetaDescription: "Projects and writing by Jane Doe.",
	}
	if fe := SiteSettings(s); len(fe["siteName"]) != 0 {
		t.Fatalf("expected 60 runes accepted, got %v", fe["siteName"])
	}
}

func TestSkill(t *testing.T) {
	skill, fe := Skill(SkillInput{Name: "React", Category: "Frontend", Proficiency: "85"})
	if !fe.Empty() {
		t.Fatalf("expected no errors, got %v", fe)
	}
	if skill.Name != "React" || skill.Category != model.CategoryFrontend {
		t.Fatalf("unexpected parse: %+v", skill)
	}
	if skill.Proficiency == nil || *skill.Proficiency != 85 {
		t.Fatalf("expected proficiency 85, got %v", skill.Proficiency)
	}
}

func TestSkillEmptyProficiency(t *testing.T) {
	skill, fe := Skill(SkillInput{Name: "Go", Category: "Backend", Proficiency: ""})
	if !fe.Empty() {
		t.Fatalf("expected no errors, got %v", fe)
	}
	if skill.Proficiency != nil {
		t.Fatalf("expected nil proficiency, got %d", *skill.Proficiency)
	}
}

func TestSkillRejections(t *testing.T) {
	cases := []struct {
		name  string
		in    SkillInput
		field string
	}{
		{"unknown skill", SkillInput{Name: "COBOL-2099", Category: "Backend"}, "name"},
		{"empty name", SkillInput{Name: "", Category: "Backend"}, "name"},
		{"bad category", SkillInput{Name: "Go", Category: "Witchcraft"}, "category"},
		{"proficiency not a number", SkillInput{Name: "Go", Category: "Backend", Proficiency: "high"}, "proficiency"},
		{"proficiency above range", SkillInput{Name: "Go", Category: "Backend", Proficiency: "101"}, "proficiency"},
		{"proficiency below range", SkillInput{Name: "Go", Category: "Backend", Proficiency: "-1"}, "proficiency"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, fe := Skill(tc.in)
			if len(fe[tc.field]) == 0 {
				t.Fatalf("expected error on %q, got %v", tc.field, fe)
			}
		})
	}
}

func TestPortfolio(t *testing.T) {
	in := PortfolioInput{
		Title:       "Weather Dashboard",
		Description: "Realtime weather dashboard with charting.",
		Image1:      "https://example.com/cover.png",
		Image2:      "",
		TagsString:  "go, react ,, charts",
		Slug:        "weather-dashboard",
	}
	item, fe := Portfolio(in)
	if !fe.Empty() {
		t.Fatalf("expected no errors, got %v", fe)
	}
	if len(item.Images) != 1 || item.Images[0] != "https://example.com/cover.png" {
		t.Fatalf("expected single image, got %v", item.Images)
	}
	want := []string{"go", "react", "charts"}
	if len(item.Tags) != len(want) {
		t.Fatalf("expected tags %v, got %v", want, item.Tags)
	}
	for i := range want {
		if item.Tags[i] != want[i] {
			t.Fatalf("expected tags %v, got %v", want, item.Tags)
		}
	}
}

func TestPortfolioRejections(t *testing.T) {
	base := PortfolioInput{
		Title:       "Weather Dashboard",
		Description: "Realtime weather dashboard with charting.",
		Image1:      "https://example.com/cover.png",
		Slug:        "weather-dashboard",
	}
	cases := []struct {
		name  string
		mut   func(*PortfolioInput)
		field string
	}{
		{"short title", func(p *PortfolioInput) { p.Title = "ab" }, "title"},
		{"short description", func(p *PortfolioInput) { p.Description = "short" }, "description"},
		{"no images", func(p *PortfolioInput) { p.Image1 = "" }, "image1"},
		{"bad image url", func(p *PortfolioInput) { p.Image2 = "not a url" }, "image2"},
		{"uppercase slug", func(p *PortfolioInput) { p.Slug = "Weather-Dashboard" }, "slug"},
		{"slug with spaces", func(p *PortfolioInput) { p.Slug = "weather dashboard" }, "slug"},
		{"slug trailing hyphen", func(p *PortfolioInput) { p.Slug = "weather-" }, "slug"},
		{"slug double hyphen", func(p *PortfolioInput) { p.Slug = "weather--dashboard" }, "slug"},
		{"empty slug", func(p *PortfolioInput) { p.Slug = "" }, "slug"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mut(&in)
			_, fe := Portfolio(in)
			if len(fe[tc.field]) == 0 {
				t.Fatalf("expected error on %q, got %v", tc.field, fe)
			}
		})
	}
}

func TestSplitTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a, b ,, c", []string{"a", "b", "c"}},
		{"", nil},
		{" , ,", nil},
		{"solo", []string{"solo"}},
	}
	for _, tc := range cases {
		got := SplitTags(tc.in)
		if len(got) != len(tc.want) {
			t.Fatalf("SplitTags(%q) = %v, want %v", tc.in, got, tc.want)
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Fatalf("SplitTags(%q) = %v, want %v", tc.in, got, tc.want)
			}
		}
	}
}

func TestContact(t *testing.T) {
	_, fe := Contact(ContactInput{Name: "Jane", Email: "jane@example.com", Message: "Hello, I would like to talk."})
	if !fe.Empty() {
		t.Fatalf("expected no errors, got %v", fe)
	}

	cases := []struct {
		name  string
		in    ContactInput
		field string
	}{
		{"short name", ContactInput{Name: "J", Email: "jane@example.com", Message: "Hello, I would like to talk."}, "name"},
		{"missing email", ContactInput{Name: "Jane", Email: "", Message: "Hello, I would like to talk."}, "email"},
		{"bad email", ContactInput{Name: "Jane", Email: "jane@", Message: "Hello, I would like to talk."}, "email"},
		{"short message", ContactInput{Name: "Jane", Email: "jane@example.com", Message: "hi"}, "message"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, fe := Contact(tc.in)
			if len(fe[tc.field]) == 0 {
				t.Fatalf("expected error on %q, got %v", tc.field, fe)
			}
		})
	}
}

func TestNotFoundPage(t *testing.T) {
	ok := model.NotFoundPage{
		Heading:    "Page not found",
		Message:    "The page you are looking for does not exist.",
		ButtonText: "Go home",
	}
	if fe := NotFoundPage(ok); !fe.Empty() {
		t.Fatalf("expected no errors, got %v", fe)
	}
	bad := ok
	bad.Message = "short"
	if fe := NotFoundPage(bad); len(fe["message"]) == 0 {
		t.Fatalf("expected message error, got %v", fe)
	}
}

func TestAnnouncement(t *testing.T) {
	if fe := Announcement("Site maintenance this weekend."); !fe.Empty() {
		t.Fatalf("expected no errors, got %v", fe)
	}
	if fe := Announcement("hi"); len(fe["message"]) == 0 {
		t.Fatalf("expected message error, got %v", fe)
	}
	if fe := Announcement(string(make([]byte, 201))); len(fe["message"]) == 0 {
		t.Fatalf("expected message error, got %v", fe)
	}
}
