package api

import (
	"github.com/devfolio/content-service/internal/form"
	"github.com/devfolio/content-service/internal/model"
	"github.com/devfolio/content-service/internal/validate"
)

// Admin forms submit flat key→value payloads; these helpers rebuild the
// typed inputs the repositories expect. Unknown keys are ignored.

// metaPages is the fixed set of pages that may carry a metadata override.
var metaPages = []string{"home", "about", "skills", "portfolio", "contact"}

func settingsFromForm(v form.Values) model.SiteSettings {
	s := model.SiteSettings{
		SiteName:               v.Get("siteName"),
		DefaultMetaDescription: v.Get("defaultMetaDescription"),
		DefaultMetaKeywords:    v.Get("defaultMetaKeywords"),
		SiteOGImageURL:         v.Get("siteOgImageUrl"),
		MaintenanceMode:        checked(v.Get("maintenanceMode")),
	}
	for _, page := range metaPages {
		title := v.Get("pageMetas." + page + ".title")
		desc := v.Get("pageMetas." + page + ".description")
		if title == "" && desc == "" {
			continue
		}
		if s.PageMetas == nil {
			s.PageMetas = make(map[string]model.PageMeta)
		}
		s.PageMetas[page] = model.PageMeta{Title: title, Description: desc}
	}
	return s
}

// aboutMeFromForm rebuilds the profile from indexed entry keys. Incomplete
// Experience/Education entries are silently dropped before validation.
func aboutMeFromForm(v form.Values) model.AboutMe {
	a := model.AboutMe{
		Name:            v.Get("name"),
		Title:           v.Get("title"),
		Bio:             v.Get("bio"),
		ProfileImageURL: v.Get("profileImageUrl"),
		ImageHint:       v.Get("dataAiHint"),
		Contact: model.ContactLinks{
			Email:    v.Get("contact.email"),
			LinkedIn: v.Get("contact.linkedin"),
			GitHub:   v.Get("contact.github"),
		},
	}
	for _, entry := range v.Indexed("experience") {
		exp := model.Experience{
			ID:          entry["id"],
			Role:        entry["role"],
			Company:     entry["company"],
			Period:      entry["period"],
			Description: entry["description"],
		}
		if exp.Complete() {
			a.Experience = append(a.Experience, exp)
		}
	}
	for _, entry := range v.Indexed("education") {
		edu := model.Education{
			ID:          entry["id"],
			Degree:      entry["degree"],
			Institution: entry["institution"],
			Period:      entry["period"],
		}
		if edu.Complete() {
			a.Education = append(a.Education, edu)
		}
	}
	return a
}

func notFoundPageFromForm(v form.Values) model.NotFoundPage {
	return model.NotFoundPage{
		ImageSrc:   v.Get("imageSrc"),
		ImageHint:  v.Get("dataAiHint"),
		Heading:    v.Get("heading"),
		Message:    v.Get("message"),
		ButtonText: v.Get("buttonText"),
	}
}

func skillInputFromForm(v form.Values) validate.SkillInput {
	return validate.SkillInput{
		ID:          v.Get("id"),
		Name:        v.Get("name"),
		Category:    v.Get("category"),
		Proficiency: v.Get("proficiency"),
	}
}

func portfolioInputFromForm(v form.Values) validate.PortfolioInput {
	return validate.PortfolioInput{
		ID:              v.Get("id"),
		Title:           v.Get("title"),
		Description:     v.Get("description"),
		LongDescription: v.Get("longDescription"),
		Image1:          v.Get("image1"),
		Image2:          v.Get("image2"),
		TagsString:      v.Get("tagsString"),
		LiveURL:         v.Get("liveUrl"),
		RepoURL:         v.Get("repoUrl"),
		Slug:            v.Get("slug"),
		ImageHint:       v.Get("dataAiHint"),
		ReadmeContent:   v.Get("readmeContent"),
	}
}

func contactInputFromForm(v form.Values) validate.ContactInput {
	return validate.ContactInput{
		Name:    v.Get("name"),
		Email:   v.Get("email"),
		Message: v.Get("message"),
	}
}

func checked(v string) bool {
	return v == "on" || v == "true" || v == "1"
}
