package models

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestMessageToMap_ScalarColumnsOnly(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	msg := Message{
		Base: Base{
			ID:        uuid.New(),
			CreatedAt: created,
			UpdatedAt: created.Add(time.Minute),
		},
		VisitorID: uuid.New(),
		Subject:   strPtr("hello"),
		Content:   "hi",
	}

	got, err := msg.ToMap()
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"id":         msg.ID,
		"created_at": msg.CreatedAt,
		"updated_at": msg.UpdatedAt,
		"visitor_id": msg.VisitorID,
		"subject":    "hello",
		"content":    "hi",
	}, got)
}

func TestVisitorToMap_ExcludesMessages(t *testing.T) {
	v := Visitor{
		Base:     Base{ID: uuid.New()},
		Email:    "a@x.com",
		Messages: []Message{{Content: "loaded anyway"}},
	}

	got, err := v.ToMap()
	require.NoError(t, err)

	assert.NotContains(t, got, "messages")
	assert.Len(t, got, 6)
	assert.Equal(t, "a@x.com", got["email"])
	assert.Nil(t, got["name"])
	assert.Nil(t, got["subscribed_at"])
}

func TestGalleryItemToMap_ColumnNames(t *testing.T) {
	item := GalleryItem{ImageURL: "https://cdn.example.com/a.jpg", Year: intPtr(2021)}

	got, err := item.ToMap()
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/a.jpg", got["image_url"])
	assert.Equal(t, 2021, got["year"])
	assert.Nil(t, got["caption"])
}

func TestValidate(t *testing.T) {
	long := string(make([]byte, 256))

	tests := []struct {
		name   string
		record any
		field  string
	}{
		{"visitor without email", &Visitor{}, "email"},
		{"visitor with malformed email", &Visitor{Email: "not-an-email"}, "email"},
		{"visitor with long name", &Visitor{Email: "a@x.com", Name: strPtr(long)}, "name"},
		{"achievement without title", &Achievement{Year: intPtr(2020)}, "title"},
		{"gallery item without image", &GalleryItem{Caption: strPtr("c")}, "image_url"},
		{"message without visitor", &Message{Content: "hi"}, "visitor_id"},
		{"message without content", &Message{VisitorID: uuid.New()}, "content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.record)
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.field, verrs[0].Field())
		})
	}
}

func TestValidate_Accepts(t *testing.T) {
	assert.NoError(t, Validate(&Visitor{Email: "a@x.com"}))
	assert.NoError(t, Validate(&Achievement{Title: "Award"}))
	assert.NoError(t, Validate(&GalleryItem{ImageURL: "img/1.png"}))
	assert.NoError(t, Validate(&Message{VisitorID: uuid.New(), Content: "hi"}))
}

func TestApply_ReportsChangedColumns(t *testing.T) {
	v := Visitor{Email: "a@x.com"}
	changes, err := v.Apply(VisitorPatch{Name: strPtr("Ann")})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Ann"}, changes)
	assert.Equal(t, "Ann", *v.Name)
	assert.Equal(t, "a@x.com", v.Email)

	m := Message{Content: "old"}
	changes, err = m.Apply(MessagePatch{Content: strPtr("new")})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"content": "new"}, changes)

	changes, err = (&Achievement{Title: "t"}).Apply(AchievementPatch{})
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestApply_ClearsOptionalColumns(t *testing.T) {
	subscribed := time.Now()
	v := Visitor{Email: "a@x.com", Name: strPtr("Ann"), SubscribedAt: &subscribed}

	changes, err := v.Apply(VisitorPatch{Name: strPtr("Bea"), Clear: []string{"name", "subscribed_at"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": nil, "subscribed_at": nil}, changes)
	assert.Nil(t, v.Name)
	assert.Nil(t, v.SubscribedAt)

	g := GalleryItem{ImageURL: "img.png", Caption: strPtr("c"), Year: intPtr(2020)}
	changes, err = g.Apply(GalleryItemPatch{Clear: []string{"caption"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"caption": nil}, changes)
	assert.Equal(t, 2020, *g.Year)
}

func TestApply_RejectsClearingRequiredColumns(t *testing.T) {
	tests := []struct {
		name  string
		apply func() (map[string]any, error)
	}{
		{"visitor email", func() (map[string]any, error) {
			return (&Visitor{Email: "a@x.com"}).Apply(VisitorPatch{Clear: []string{"email"}})
		}},
		{"achievement title", func() (map[string]any, error) {
			return (&Achievement{Title: "t"}).Apply(AchievementPatch{Clear: []string{"title"}})
		}},
		{"gallery image", func() (map[string]any, error) {
			return (&GalleryItem{ImageURL: "img.png"}).Apply(GalleryItemPatch{Clear: []string{"image_url"}})
		}},
		{"message content", func() (map[string]any, error) {
			return (&Message{Content: "hi"}).Apply(MessagePatch{Clear: []string{"content"}})
		}},
		{"unknown column", func() (map[string]any, error) {
			return (&Message{Content: "hi"}).Apply(MessagePatch{Clear: []string{"nope"}})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes, err := tt.apply()
			assert.ErrorIs(t, err, ErrNotClearable)
			assert.Nil(t, changes)
		})
	}
}

func TestTouch_NeverMovesBackwards(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := Base{CreatedAt: t0, UpdatedAt: t0}

	assert.Equal(t, t0.Add(time.Second), b.Touch(t0.Add(time.Second)))
	assert.Equal(t, t0.Add(time.Second), b.Touch(t0))
}
