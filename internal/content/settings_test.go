package content

import (
	"context"
	"errors"
	"testing"

	"github.com/devfolio/content-service/internal/model"
	"github.com/devfolio/content-service/internal/store"
	"github.com/devfolio/content-service/internal/store/memstore"
)

// recordingNotifier captures revalidation hints for assertions.
type recordingNotifier struct {
	calls [][]string
	err   error
}

func (n *recordingNotifier) Invalidate(ctx context.Context, paths []string) error {
	n.calls = append(n.calls, paths)
	return n.err
}

func validSettings() model.SiteSettings {
	return model.SiteSettings{
		SiteName:               "Jane Doe Portfolio",
		DefaultMetaDescription: "Projects and writing by Jane Doe.",
	}
}

func TestSettingsGetDefaultsWithoutStore(t *testing.T) {
	r := NewSettings(nil, nil)
	got := r.Get(context.Background())
	if got.SiteName != model.DefaultSiteSettings().SiteName {
		t.Fatalf("expected bundled defaults, got %+v", got)
	}
}

func TestSettingsGetDefaultsWhenUnseeded(t *testing.T) {
	r := NewSettings(memstore.New(), nil)
	got := r.Get(context.Background())
	if got.SiteName != model.DefaultSiteSettings().SiteName {
		t.Fatalf("expected bundled defaults for missing document, got %+v", got)
	}
}

func TestSettingsGetDefaultsOnReadError(t *testing.T) {
	st := memstore.New()
	st.FailWith("get", store.CollectionConfig, errors.New("unreachable"))
	r := NewSettings(st, nil)
	got := r.Get(context.Background())
	if got.SiteName != model.DefaultSiteSettings().SiteName {
		t.Fatalf("expected defaults on read failure, got %+v", got)
	}
}

func TestSettingsSaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	notify := &recordingNotifier{}
	r := NewSettings(st, notify)

	in := validSettings()
	in.MaintenanceMode = true
	res := r.Save(ctx, in)
	if res.Status != StatusSuccess {
		t.Fatalf("expected success, got %+v", res)
	}

	got := r.Get(ctx)
	if got.SiteName != in.SiteName || !got.MaintenanceMode {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	if len(res.Revalidate) != 5 {
		t.Fatalf("expected all content paths revalidated, got %v", res.Revalidate)
	}
	if len(notify.calls) != 1 {
		t.Fatalf("expected one notify call, got %d", len(notify.calls))
	}
}

func TestSettingsSaveMergePreservesOtherFields(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	r := NewSettings(st, nil)

	first := validSettings()
	first.PageMetas = map[string]model.PageMeta{
		"about": {Title: "About", Description: "About Jane Doe."},
	}
	if res := r.Save(ctx, first); res.Status != StatusSuccess {
		t.Fatalf("first save: %+v", res)
	}

	// A later save without page metas must not wipe the stored ones.
	second := validSettings()
	second.SiteName = "Jane Doe, Engineer"
	if res := r.Save(ctx, second); res.Status != StatusSuccess {
		t.Fatalf("second save: %+v", res)
	}

	got := r.Get(ctx)
	if got.SiteName != "Jane Doe, Engineer" {
		t.Fatalf("expected updated site name, got %q", got.SiteName)
	}
	if got.PageMetas["about"].Description != "About Jane Doe." {
		t.Fatalf("expected page metas preserved across merge save, got %+v", got.PageMetas)
	}
}

func TestSettingsSavePageMetasMergeByPage(t *testing.T) {
	ctx := context.Background()
	r := NewSettings(memstore.New(), nil)

	first := validSettings()
	first.PageMetas = map[string]model.PageMeta{
		"about":   {Title: "About", Description: "About Jane Doe."},
		"contact": {Title: "Contact", Description: "Get in touch."},
	}
	if res := r.Save(ctx, first); res.Status != StatusSuccess {
		t.Fatalf("first save: %+v", res)
	}

	// A save carrying only one page merges per page: the other override
	// stays stored, it is not removable through this form.
	second := validSettings()
	second.PageMetas = map[string]model.PageMeta{
		"contact": {Title: "Contact", Description: "Reach out."},
	}
	if res := r.Save(ctx, second); res.Status != StatusSuccess {
		t.Fatalf("second save: %+v", res)
	}

	got := r.Get(ctx)
	if got.PageMetas["contact"].Description != "Reach out." {
		t.Fatalf("expected contact meta updated, got %+v", got.PageMetas)
	}
	if got.PageMetas["about"].Description != "About Jane Doe." {
		t.Fatalf("expected untouched page meta retained, got %+v", got.PageMetas)
	}
}

func TestSettingsSaveValidation(t *testing.T) {
	st := memstore.New()
	r := NewSettings(st, nil)

	in := validSettings()
	in.SiteName = "ab"
	res := r.Save(context.Background(), in)
	if res.Status != StatusError || len(res.Errors["siteName"]) == 0 {
		t.Fatalf("expected siteName validation error, got %+v", res)
	}
	if st.Len(store.CollectionConfig) != 0 {
		t.Fatalf("invalid input must not be written")
	}
}

func TestSettingsSaveWithoutStore(t *testing.T) {
	r := NewSettings(nil, nil)
	res := r.Save(context.Background(), validSettings())
	if res.Status != StatusError || !res.ConfigError() {
		t.Fatalf("expected configuration error, got %+v", res)
	}
}

func TestSettingsSaveStoreError(t *testing.T) {
	st := memstore.New()
	st.FailWith("set", store.CollectionConfig, errors.New("unreachable"))
	r := NewSettings(st, nil)

	res := r.Save(context.Background(), validSettings())
	if res.Status != StatusError || res.ConfigError() {
		t.Fatalf("expected plain store error, got %+v", res)
	}
}

func TestSettingsNotifierFailureDoesNotFailSave(t *testing.T) {
	st := memstore.New()
	notify := &recordingNotifier{err: errors.New("webhook down")}
	r := NewSettings(st, notify)

	res := r.Save(context.Background(), validSettings())
	if res.Status != StatusSuccess {
		t.Fatalf("notifier failure must not fail the save: %+v", res)
	}
}
