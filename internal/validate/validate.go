// Package validate holds the pure validation rules for every content type.
// Validators take reconstructed input, return the parsed entity where one is
// derived, and report violations as field-path → message lists. No I/O.
package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/devfolio/content-service/internal/model"
)

var (
	emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	slugRx  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// FieldErrors maps a field path (array entries use dotted indices, e.g.
// "experience.0.role") to human-readable messages.
type FieldErrors map[string][]string

// Add appends a message to a field path.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Empty reports whether no violations were recorded.
func (fe FieldErrors) Empty() bool { return len(fe) == 0 }

// Length rules count runes, not bytes, so multibyte text is measured the
// way the form UI counts it.
func minLen(fe FieldErrors, field, v string, n int) {
	if utf8.RuneCountInString(strings.TrimSpace(v)) < n {
		fe.Add(field, fmt.Sprintf("must be at least %d characters", n))
	}
}

func maxLen(fe FieldErrors, field, v string, n int) {
	if utf8.RuneCountInString(v) > n {
		fe.Add(field, fmt.Sprintf("must be at most %d characters", n))
	}
}

// urlOrEmpty accepts a syntactically valid absolute http(s) URL or "".
func urlOrEmpty(fe FieldErrors, field, v string) {
	if v == "" {
		return
	}
	u, err := url.Parse(v)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		fe.Add(field, "must be a valid absolute URL or empty")
	}
}

func email(fe FieldErrors, field, v string) {
	if v == "" {
		fe.Add(field, "is required")
		return
	}
	if len(v) > 320 || !emailRx.MatchString(v) {
		fe.Add(field, "must be a valid email address")
	}
}

// SiteSettings validates the singleton site configuration.
func SiteSettings(s model.SiteSettings) FieldErrors {
	fe := FieldErrors{}
	minLen(fe, "siteName", s.SiteName, 3)
	maxLen(fe, "siteName", s.SiteName, 60)
	minLen(fe, "defaultMetaDescription", s.DefaultMetaDescription, 10)
	maxLen(fe, "defaultMetaDescription", s.DefaultMetaDescription, 160)
	urlOrEmpty(fe, "siteOgImageUrl", s.SiteOGImageURL)
	for page, meta := range s.PageMetas {
		maxLen(fe, "pageMetas."+page+".description", meta.Description, 160)
	}
	return fe
}

// AboutMe validates the profile singleton. Experience and Education entries
// are expected to be pre-filtered to complete entries; validation still
// rejects blank fields and missing or duplicate ids with indexed paths.
func AboutMe(a model.AboutMe) FieldErrors {
	fe := FieldErrors{}
	minLen(fe, "name", a.Name, 2)
	minLen(fe, "title", a.Title, 2)
	minLen(fe, "bio", a.Bio, 20)
	urlOrEmpty(fe, "profileImageUrl", a.ProfileImageURL)
	if a.Contact.Email != "" && !emailRx.MatchString(a.Contact.Email) {
		fe.Add("contact.email", "must be a valid email address")
	}
	urlOrEmpty(fe, "contact.linkedin", a.Contact.LinkedIn)
	urlOrEmpty(fe, "contact.github", a.Contact.GitHub)

	seen := make(map[string]bool)
	for i, exp := range a.Experience {
		p := fmt.Sprintf("experience.%d.", i)
		requireEntryID(fe, p+"id", exp.ID, seen)
		minLen(fe, p+"role", exp.Role, 1)
		minLen(fe, p+"company", exp.Company, 1)
		minLen(fe, p+"period", exp.Period, 1)
		minLen(fe, p+"description", exp.Description, 1)
	}
	for i, edu := range a.Education {
		p := fmt.Sprintf("education.%d.", i)
		requireEntryID(fe, p+"id", edu.ID, seen)
		minLen(fe, p+"degree", edu.Degree, 1)
		minLen(fe, p+"institution", edu.Institution, 1)
		minLen(fe, p+"period", edu.Period, 1)
	}
	return fe
}

func requireEntryID(fe FieldErrors, field, id string, seen map[string]bool) {
	if id == "" {
		fe.Add(field, "is required")
		return
	}
	if seen[id] {
		fe.Add(field, "must be unique")
	}
	seen[id] = true
}

// SkillInput is the raw skill form payload. ID is empty on create.
type SkillInput struct {
	ID          string
	Name        string
	Category    string
	Proficiency string
}

// Skill validates a skill submission and returns the parsed entity without
// derived fields (the repository assigns ID on create and IconName always).
func Skill(in SkillInput) (model.Skill, FieldErrors) {
	fe := FieldErrors{}
	if in.Name == "" {
		fe.Add("name", "is required")
	} else if !model.KnownSkill(in.Name) {
		fe.Add("name", fmt.Sprintf("%q is not a recognized skill", in.Name))
	}
	cat := model.SkillCategory(in.Category)
	if !model.ValidCategory(cat) {
		fe.Add("category", fmt.Sprintf("must be one of %v", model.SkillCategories))
	}

	skill := model.Skill{ID: in.ID, Name: in.Name, Category: cat}
	if p := strings.TrimSpace(in.Proficiency); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 100 {
			fe.Add("proficiency", "must be an integer between 0 and 100")
		} else {
			skill.Proficiency = &n
		}
	}
	return skill, fe
}

// PortfolioInput is the raw project form payload. ID is empty on create.
// Images come from two fixed form fields; tags from one comma-separated one.
type PortfolioInput struct {
	ID              string
	Title           string
	Description     string
	LongDescription string
	Image1          string
	Image2          string
	TagsString      string
	LiveURL         string
	RepoURL         string
	Slug            string
	ImageHint       string
	ReadmeContent   string
}

// Portfolio validates a project submission and returns the normalized
// entity: empty image fields dropped (first remaining is the cover), tags
// split on commas with blanks removed, timestamps left for the repository.
func Portfolio(in PortfolioInput) (model.PortfolioItem, FieldErrors) {
	fe := FieldErrors{}
	minLen(fe, "title", in.Title, 3)
	maxLen(fe, "title", in.Title, 100)
	minLen(fe, "description", in.Description, 10)
	maxLen(fe, "description", in.Description, 200)

	var images []string
	for field, v := range map[string]string{"image1": in.Image1, "image2": in.Image2} {
		urlOrEmpty(fe, field, v)
	}
	if in.Image1 != "" {
		images = append(images, in.Image1)
	}
	if in.Image2 != "" {
		images = append(images, in.Image2)
	}
	if len(images) == 0 {
		fe.Add("image1", "at least one image is required")
	}

	urlOrEmpty(fe, "liveUrl", in.LiveURL)
	urlOrEmpty(fe, "repoUrl", in.RepoURL)
	if !slugRx.MatchString(in.Slug) {
		fe.Add("slug", "must be lowercase kebab-case (letters, digits and single hyphens)")
	}

	return model.PortfolioItem{
		ID:              in.ID,
		Title:           in.Title,
		Description:     in.Description,
		LongDescription: in.LongDescription,
		Images:          images,
		Tags:            SplitTags(in.TagsString),
		LiveURL:         in.LiveURL,
		RepoURL:         in.RepoURL,
		Slug:            in.Slug,
		ImageHint:       in.ImageHint,
		ReadmeContent:   in.ReadmeContent,
	}, fe
}

// SplitTags turns a comma-separated string into trimmed, non-empty tags.
func SplitTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// NotFoundPage validates the 404-page copy singleton.
func NotFoundPage(p model.NotFoundPage) FieldErrors {
	fe := FieldErrors{}
	urlOrEmpty(fe, "imageSrc", p.ImageSrc)
	minLen(fe, "heading", p.Heading, 3)
	minLen(fe, "message", p.Message, 10)
	minLen(fe, "buttonText", p.ButtonText, 2)
	return fe
}

// ContactInput is the public contact form payload.
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// Contact validates a contact form submission.
func Contact(in ContactInput) (model.ContactMessage, FieldErrors) {
	fe := FieldErrors{}
	minLen(fe, "name", in.Name, 2)
	maxLen(fe, "name", in.Name, 100)
	email(fe, "email", in.Email)
	minLen(fe, "message", in.Message, 10)
	maxLen(fe, "message", in.Message, 2000)
	return model.ContactMessage{Name: in.Name, Email: in.Email, Message: in.Message}, fe
}

// Announcement validates a banner message.
func Announcement(message string) FieldErrors {
	fe := FieldErrors{}
	minLen(fe, "message", message, 3)
	maxLen(fe, "message", message, 200)
	return fe
}
