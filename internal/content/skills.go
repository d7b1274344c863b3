package content

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/devfolio/content-service/internal/model"
	"github.com/devfolio/content-service/internal/store"
	"github.com/devfolio/content-service/internal/validate"
)

// Skills is the repository for the skills collection.
type Skills struct {
	store  store.Store
	notify Notifier
}

func NewSkills(s store.Store, n Notifier) *Skills {
	return &Skills{store: s, notify: n}
}

// List returns every skill ordered by (category, name) ascending. A
// malformed document degrades to safe defaults instead of failing the list.
func (r *Skills) List(ctx context.Context) []model.Skill {
	if r.store == nil {
		return nil
	}
	docs, err := r.store.List(ctx, store.CollectionSkills, store.Query{})
	if err != nil {
		log.Warn().Err(err).Msg("skills list failed, serving empty")
		return nil
	}
	skills := make([]model.Skill, 0, len(docs))
	for _, d := range docs {
		skills = append(skills, decodeSkill(d))
	}
	sort.Slice(skills, func(i, j int) bool {
		if skills[i].Category != skills[j].Category {
			return skills[i].Category < skills[j].Category
		}
		return skills[i].Name < skills[j].Name
	})
	return skills
}

// Get returns a single skill by id.
func (r *Skills) Get(ctx context.Context, id string) (model.Skill, error) {
	if r.store == nil {
		return model.Skill{}, model.ErrStoreUnavailable
	}
	data, err := r.store.Get(ctx, store.CollectionSkills, id)
	if err != nil {
		return model.Skill{}, err
	}
	return decodeSkill(store.Document{ID: id, Data: data}), nil
}

// Save validates a skill submission and persists it. On create the id is
// generated and the icon derived from the name; on update the existing
// document is merge-written (icon still re-derived, never user supplied).
func (r *Skills) Save(ctx context.Context, in validate.SkillInput) SaveResult {
	skill, fe := validate.Skill(in)
	if !fe.Empty() {
		return validationResult(fe)
	}
	if r.store == nil {
		return configErrorResult()
	}

	creating := skill.ID == ""
	if creating {
		skill.ID = newSkillID()
	}
	skill.IconName = model.IconForSkill(skill.Name)

	doc := map[string]any{
		"id":       skill.ID,
		"name":     skill.Name,
		"category": string(skill.Category),
		"iconName": skill.IconName,
	}
	if skill.Proficiency != nil {
		doc["proficiency"] = *skill.Proficiency
	}
	if err := r.store.Set(ctx, store.CollectionSkills, skill.ID, doc, !creating); err != nil {
		log.Error().Err(err).Str("skillId", skill.ID).Msg("skill write failed")
		return storeErrorResult(err)
	}

	paths := SkillsPaths()
	notifyRevalidate(ctx, r.notify, paths)
	msg := "Skill updated."
	if creating {
		msg = "Skill added."
	}
	return successResult(msg, skill, paths)
}

// Delete removes a skill. A missing id yields a descriptive failure, so a
// second delete of the same id reports not-found rather than erroring.
func (r *Skills) Delete(ctx context.Context, id string) DeleteResult {
	if r.store == nil {
		return deleteUnavailable()
	}
	if err := r.store.Delete(ctx, store.CollectionSkills, id); err != nil {
		if err == model.ErrNotFound {
			return deleteNotFound(fmt.Sprintf("Skill %q not found.", id))
		}
		log.Error().Err(err).Str("skillId", id).Msg("skill delete failed")
		return deleteError("Failed to delete skill: " + err.Error())
	}
	notifyRevalidate(ctx, r.notify, SkillsPaths())
	return deleteOK("Skill deleted.")
}

// ReplaceAll clears the collection and bulk-inserts skills, one batch per
// phase. Used by seeding; concurrent readers may observe the cleared state
// between the two batches.
func (r *Skills) ReplaceAll(ctx context.Context, skills []model.Skill) (deleted, added int, err error) {
	if r.store == nil {
		return 0, 0, model.ErrStoreUnavailable
	}
	existing, err := r.store.List(ctx, store.CollectionSkills, store.Query{})
	if err != nil {
		return 0, 0, err
	}
	if len(existing) > 0 {
		clear := make([]store.WriteOp, 0, len(existing))
		for _, d := range existing {
			clear = append(clear, store.WriteOp{Kind: store.WriteDelete, Collection: store.CollectionSkills, ID: d.ID})
		}
		if err := r.store.BatchWrite(ctx, clear); err != nil {
			return 0, 0, err
		}
		deleted = len(existing)
	}

	inserts := make([]store.WriteOp, 0, len(skills))
	for _, s := range skills {
		doc := map[string]any{
			"id":       s.ID,
			"name":     s.Name,
			"category": string(s.Category),
			"iconName": model.IconForSkill(s.Name),
		}
		if s.Proficiency != nil {
			doc["proficiency"] = *s.Proficiency
		}
		inserts = append(inserts, store.WriteOp{Kind: store.WriteSet, Collection: store.CollectionSkills, ID: s.ID, Data: doc})
	}
	if err := r.store.BatchWrite(ctx, inserts); err != nil {
		return deleted, 0, err
	}
	return deleted, len(skills), nil
}

// newSkillID builds a timestamp+random token id, e.g. skill_1712345678901_3f9a2c1d0.
func newSkillID() string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("skill_%d_%s", time.Now().UnixMilli(), token)
}

func decodeSkill(d store.Document) model.Skill {
	return model.Skill{
		ID:          strField(d.Data, "id", d.ID),
		Name:        strField(d.Data, "name", ""),
		Category:    model.SkillCategory(strField(d.Data, "category", string(model.CategoryOther))),
		IconName:    strField(d.Data, "iconName", model.DefaultSkillIcon),
		Proficiency: intPtrField(d.Data, "proficiency"),
	}
}
