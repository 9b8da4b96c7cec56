package collection_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/templatetools/pkg/collection"
)

type article struct {
	Title string
}

func newRegistry() *collection.Registry {
	reg := collection.NewRegistry()
	reg.Register("news", "Article", "", collection.Slice(article{"Fyrsta"}, article{"Önnur"}))
	reg.Register("news", "Article", "published", collection.Slice(article{"Fyrsta"}))
	reg.Register("news", "Tag", "", collection.SourceFunc(func(context.Context) ([]any, error) {
		return nil, errors.New("boom")
	}))
	return reg
}

func TestRegistry_Parse(t *testing.T) {
	t.Parallel()

	reg := newRegistry()

	t.Run("default manager", func(t *testing.T) {
		t.Parallel()
		node, err := reg.Parse("get_list_of_objects news Article as articles")
		require.NoError(t, err)
		assert.Equal(t, "news", node.App)
		assert.Equal(t, "Article", node.Model)
		assert.Equal(t, collection.DefaultManager, node.Manager)
		assert.Equal(t, "articles", node.VarName)
		assert.Equal(t, "get_list_of_objects news Article objects as articles", node.String())
	})

	t.Run("explicit manager", func(t *testing.T) {
		t.Parallel()
		node, err := reg.Parse("get_list_of_objects  news Article published as latest")
		require.NoError(t, err)
		assert.Equal(t, "published", node.Manager)
		assert.Equal(t, "latest", node.VarName)
	})

	tests := []struct {
		name      string
		directive string
		err       error
		message   string
	}{
		{"too few arguments", "get_list_of_objects news Article", collection.ErrSyntax, "get_list_of_objects tag takes three or four arguments"},
		{"too many arguments", "get_list_of_objects a b c d as e", collection.ErrSyntax, "three or four arguments"},
		{"empty", "", collection.ErrSyntax, "directive tag takes three or four arguments"},
		{"missing as", "get_list_of_objects news Article into articles", collection.ErrSyntax, "Third or fourth argument for get_list_of_objects must be 'as'"},
		{"missing as with manager", "get_list_of_objects news Article published to articles", collection.ErrSyntax, "must be 'as'"},
		{"unknown app", "get_list_of_objects blog Article as articles", collection.ErrNoApp, "No application with name 'blog'"},
		{"unknown model", "get_list_of_objects news Comment as comments", collection.ErrNoModel, "No model with name 'Comment' in 'news'.models"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := reg.Parse(tt.directive)
			require.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestNode_Render(t *testing.T) {
	t.Parallel()

	reg := newRegistry()
	ctx := context.Background()

	t.Run("binds collection", func(t *testing.T) {
		t.Parallel()
		node, err := reg.Parse("get_list_of_objects news Article as articles")
		require.NoError(t, err)

		scope := map[string]any{}
		out, err := node.Render(ctx, scope)
		require.NoError(t, err)
		assert.Empty(t, out)
		assert.Equal(t, []any{article{"Fyrsta"}, article{"Önnur"}}, scope["articles"])
	})

	t.Run("unknown manager fails at render", func(t *testing.T) {
		t.Parallel()
		node, err := reg.Parse("get_list_of_objects news Article drafts as drafts")
		require.NoError(t, err)

		_, err = node.Render(ctx, map[string]any{})
		require.ErrorIs(t, err, collection.ErrNoManager)
	})

	t.Run("source error", func(t *testing.T) {
		t.Parallel()
		node, err := reg.Parse("get_list_of_objects news Tag as tags")
		require.NoError(t, err)

		scope := map[string]any{}
		_, err = node.Render(ctx, scope)
		require.EqualError(t, err, "boom")
		assert.NotContains(t, scope, "tags")
	})

	t.Run("nil scope", func(t *testing.T) {
		t.Parallel()
		node, err := reg.Parse("get_list_of_objects news Article as articles")
		require.NoError(t, err)

		_, err = node.Render(ctx, nil)
		require.ErrorIs(t, err, collection.ErrNilScope)
	})
}

func TestRegistry_All(t *testing.T) {
	t.Parallel()

	reg := newRegistry()

	items, err := reg.All(context.Background(), "news", "Article", "published")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = reg.All(context.Background(), "news", "Video", "")
	require.ErrorIs(t, err, collection.ErrNoModel)
}
