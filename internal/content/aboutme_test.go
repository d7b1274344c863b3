package content

import (
	"context"
	"testing"

	"github.com/devfolio/content-service/internal/model"
	"github.com/devfolio/content-service/internal/store/memstore"
)

func validAboutMe() model.AboutMe {
	return model.AboutMe{
		Name:  "Jane Doe",
		Title: "Software Engineer",
		Bio:   "I build web applications and developer tools.",
		Experience: []model.Experience{
			{ID: "exp1", Role: "Engineer", Company: "Acme", Period: "2020-2024", Description: "Built things."},
			{ID: "exp2", Role: "Lead", Company: "Beta", Period: "2024-", Description: "Leads things."},
		},
		Education: []model.Education{
			{ID: "edu1", Degree: "BSc", Institution: "State University", Period: "2016-2020"},
		},
		Contact: model.ContactLinks{Email: "jane@example.com"},
	}
}

func TestAboutMeGetDefaultsWithoutStore(t *testing.T) {
	r := NewAboutMe(nil, nil)
	got := r.Get(context.Background())
	if got.Name != model.DefaultAboutMe().Name {
		t.Fatalf("expected bundled defaults, got %+v", got)
	}
}

func TestAboutMeSaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := NewAboutMe(memstore.New(), nil)

	in := validAboutMe()
	res := r.Save(ctx, in)
	if res.Status != StatusSuccess {
		t.Fatalf("expected success, got %+v", res)
	}

	got := r.Get(ctx)
	if got.Name != in.Name || got.Contact.Email != "jane@example.com" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if len(got.Experience) != 2 || got.Experience[0].ID != "exp1" || got.Experience[1].ID != "exp2" {
		t.Fatalf("expected stored entry order preserved, got %+v", got.Experience)
	}
	if len(got.Education) != 1 || got.Education[0].Institution != "State University" {
		t.Fatalf("unexpected education entries: %+v", got.Education)
	}
}

func TestAboutMeSaveRemovesDroppedEntries(t *testing.T) {
	ctx := context.Background()
	r := NewAboutMe(memstore.New(), nil)

	if res := r.Save(ctx, validAboutMe()); res.Status != StatusSuccess {
		t.Fatalf("first save failed")
	}

	trimmed := validAboutMe()
	trimmed.Experience = trimmed.Experience[:1]
	trimmed.Education = nil
	if res := r.Save(ctx, trimmed); res.Status != StatusSuccess {
		t.Fatalf("second save failed")
	}

	got := r.Get(ctx)
	if len(got.Experience) != 1 {
		t.Fatalf("expected removed experience entry gone, got %+v", got.Experience)
	}
	// An explicitly empty list stays empty rather than reverting to defaults.
	if len(got.Education) != 0 {
		t.Fatalf("expected education cleared, got %+v", got.Education)
	}
}

func TestAboutMeSaveValidation(t *testing.T) {
	st := memstore.New()
	r := NewAboutMe(st, nil)

	in := validAboutMe()
	in.Experience[1].ID = "exp1"
	res := r.Save(context.Background(), in)
	if res.Status != StatusError || len(res.Errors["experience.1.id"]) == 0 {
		t.Fatalf("expected duplicate id error, got %+v", res)
	}
	if st.Len("config") != 0 {
		t.Fatalf("invalid input must not be written")
	}
}

func TestAboutMeSaveWithoutStore(t *testing.T) {
	res := NewAboutMe(nil, nil).Save(context.Background(), validAboutMe())
	if !res.ConfigError() {
		t.Fatalf("expected configuration error, got %+v", res)
	}
}

func TestAboutMeRevalidatesProfilePages(t *testing.T) {
	notify := &recordingNotifier{}
	r := NewAboutMe(memstore.New(), notify)

	res := r.Save(context.Background(), validAboutMe())
	if res.Status != StatusSuccess {
		t.Fatalf("save failed: %+v", res)
	}
	want := map[string]bool{"/": true, "/about": true}
	if len(res.Revalidate) != len(want) {
		t.Fatalf("unexpected paths: %v", res.Revalidate)
	}
	for _, p := range res.Revalidate {
		if !want[p] {
			t.Fatalf("unexpected path %q", p)
		}
	}
}
