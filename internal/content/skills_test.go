package content

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/devfolio/content-service/internal/model"
	"github.com/devfolio/content-service/internal/store"
	"github.com/devfolio/content-service/internal/store/memstore"
	"github.com/devfolio/content-service/internal/validate"
)

var skillIDPattern = regexp.MustCompile(`^skill_\d+_[0-9a-f]{9}$`)

func TestSkillsSaveCreate(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	r := NewSkills(st, nil)

	res := r.Save(ctx, validate.SkillInput{Name: "React", Category: "Frontend", Proficiency: "85"})
	if res.Status != StatusSuccess {
		t.Fatalf("expected success, got %+v", res)
	}
	skill, ok := res.Data.(model.Skill)
	if !ok {
		t.Fatalf("expected model.Skill data, got %T", res.Data)
	}
	if !skillIDPattern.MatchString(skill.ID) {
		t.Fatalf("unexpected generated id %q", skill.ID)
	}
	if skill.IconName != model.IconForSkill("React") {
		t.Fatalf("expected derived icon, got %q", skill.IconName)
	}
	if skill.Proficiency == nil || *skill.Proficiency != 85 {
		t.Fatalf("expected proficiency 85, got %v", skill.Proficiency)
	}

	stored, err := r.Get(ctx, skill.ID)
	if err != nil {
		t.Fatalf("get after create: %v", err)
	}
	if stored.Name != "React" || stored.Category != model.CategoryFrontend {
		t.Fatalf("unexpected stored skill: %+v", stored)
	}
}

func TestSkillsSaveUpdate(t *testing.T) {
	ctx := context.Background()
	r := NewSkills(memstore.New(), nil)

	created := r.Save(ctx, validate.SkillInput{Name: "Go", Category: "Backend", Proficiency: "70"})
	id := created.Data.(model.Skill).ID

	updated := r.Save(ctx, validate.SkillInput{ID: id, Name: "Go", Category: "Backend", Proficiency: "90"})
	if updated.Status != StatusSuccess || updated.Message != "Skill updated." {
		t.Fatalf("expected update, got %+v", updated)
	}
	got, err := r.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Proficiency == nil || *got.Proficiency != 90 {
		t.Fatalf("expected proficiency updated to 90, got %v", got.Proficiency)
	}
}

func TestSkillsSaveValidationWritesNothing(t *testing.T) {
	st := memstore.New()
	r := NewSkills(st, nil)

	res := r.Save(context.Background(), validate.SkillInput{Name: "Underwater Basket Weaving", Category: "Frontend"})
	if res.Status != StatusError || len(res.Errors["name"]) == 0 {
		t.Fatalf("expected vocabulary rejection, got %+v", res)
	}
	if st.Len(store.CollectionSkills) != 0 {
		t.Fatalf("invalid input must not be written")
	}
}

func TestSkillsListOrdering(t *testing.T) {
	ctx := context.Background()
	r := NewSkills(memstore.New(), nil)

	for _, in := range []validate.SkillInput{
		{Name: "React", Category: "Frontend"},
		{Name: "Go", Category: "Backend"},
		{Name: "Docker", Category: "DevOps"},
		{Name: "Node.js", Category: "Backend"},
	} {
		if res := r.Save(ctx, in); res.Status != StatusSuccess {
			t.Fatalf("save %q failed: %+v", in.Name, res)
		}
	}

	got := r.List(ctx)
	want := []string{"Go", "Node.js", "Docker", "React"}
	if len(got) != len(want) {
		t.Fatalf("expected %d skills, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("expected category/name order %v, got %+v", want, got)
		}
	}
}

func TestSkillsListWithoutStore(t *testing.T) {
	if got := NewSkills(nil, nil).List(context.Background()); got != nil {
		t.Fatalf("expected nil list without store, got %v", got)
	}
}

func TestSkillsDelete(t *testing.T) {
	ctx := context.Background()
	notify := &recordingNotifier{}
	r := NewSkills(memstore.New(), notify)

	id := r.Save(ctx, validate.SkillInput{Name: "Git", Category: "Tools"}).Data.(model.Skill).ID

	res := r.Delete(ctx, id)
	if !res.Success {
		t.Fatalf("expected delete success, got %+v", res)
	}
	// Second delete of the same id reports not-found, not success.
	res = r.Delete(ctx, id)
	if res.Success || !res.NotFound() {
		t.Fatalf("expected not-found on second delete, got %+v", res)
	}
}

func TestSkillsDeleteWithoutStore(t *testing.T) {
	res := NewSkills(nil, nil).Delete(context.Background(), "skill_x")
	if res.Success || !res.ConfigError() {
		t.Fatalf("expected configuration error, got %+v", res)
	}
}

func TestSkillsReplaceAll(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	r := NewSkills(st, nil)

	if res := r.Save(ctx, validate.SkillInput{Name: "Ruby", Category: "Languages"}); res.Status != StatusSuccess {
		t.Fatalf("seed skill failed: %+v", res)
	}

	deleted, added, err := r.ReplaceAll(ctx, model.DefaultSkills())
	if err != nil {
		t.Fatalf("replace all: %v", err)
	}
	if deleted != 1 || added != len(model.DefaultSkills()) {
		t.Fatalf("expected 1 deleted and %d added, got %d/%d", len(model.DefaultSkills()), deleted, added)
	}
	if st.Len(store.CollectionSkills) != added {
		t.Fatalf("expected %d docs, got %d", added, st.Len(store.CollectionSkills))
	}
}

func TestSkillsReplaceAllListError(t *testing.T) {
	st := memstore.New()
	st.FailWith("list", store.CollectionSkills, errors.New("unreachable"))
	r := NewSkills(st, nil)

	if _, _, err := r.ReplaceAll(context.Background(), model.DefaultSkills()); err == nil {
		t.Fatalf("expected error from failed listing")
	}
}
