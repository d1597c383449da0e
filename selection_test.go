package gqldsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/gqldsl"
)

// The declarations below have the shape emitted by the compiler for
//
//	type Post { title: String, tags: [String]!, author: Author, editor: Author! }
//	type Author { name: String, posts: [Post] }

type Post interface{ isPost() }

func PostTitle() gqldsl.SelectionSet[string, Post] {
	return gqldsl.Field[Post]("title", gqldsl.String())
}

func PostTags() gqldsl.SelectionSet[*[]string, Post] {
	return gqldsl.Field[Post]("tags", gqldsl.Optional(gqldsl.List(gqldsl.String())))
}

func PostAuthor[R any](fields gqldsl.SelectionSet[R, Author]) gqldsl.SelectionSet[R, Post] {
	return gqldsl.Field[Post]("author", fields)
}

func PostEditor[R any](fields gqldsl.SelectionSet[R, *Author]) gqldsl.SelectionSet[R, Post] {
	return gqldsl.Field[Post]("editor", fields)
}

type Author interface{ isAuthor() }

func AuthorName() gqldsl.SelectionSet[string, Author] {
	return gqldsl.Field[Author]("name", gqldsl.String())
}

func AuthorPosts[R any](fields gqldsl.SelectionSet[R, []Post]) gqldsl.SelectionSet[R, Author] {
	return gqldsl.Field[Author]("posts", fields)
}

func TestField(t *testing.T) {
	t.Run("scalar field is a leaf", func(t *testing.T) {
		nodes := PostTitle().Nodes()
		require.Len(t, nodes, 1)
		assert.Equal(t, "title", nodes[0].Name)
		assert.Empty(t, nodes[0].Children)
	})

	t.Run("object field carries nested selection", func(t *testing.T) {
		nodes := PostAuthor(AuthorName()).Nodes()
		require.Len(t, nodes, 1)
		assert.Equal(t, "author", nodes[0].Name)
		require.Len(t, nodes[0].Children, 1)
		assert.Equal(t, "name", nodes[0].Children[0].Name)
	})

	t.Run("adapters keep nodes", func(t *testing.T) {
		var tags gqldsl.SelectionSet[*[]string, Post] = PostTags()
		require.Len(t, tags.Nodes(), 1)
		assert.Equal(t, "tags", tags.Nodes()[0].Name)

		editor := PostEditor(gqldsl.Optional(AuthorName()))
		var _ gqldsl.SelectionSet[*string, Post] = editor
		assert.Equal(t, "editor", editor.Nodes()[0].Name)
	})

	t.Run("nesting through lists", func(t *testing.T) {
		sel := PostAuthor(AuthorPosts(gqldsl.List(PostTitle())))
		assert.Equal(t, "{author{posts{title}}}", sel.Compact())
	})
}

func TestScalars(t *testing.T) {
	assert.Empty(t, gqldsl.String().Nodes())
	assert.Empty(t, gqldsl.Integer().Nodes())
	assert.Empty(t, gqldsl.Float().Nodes())
	assert.Empty(t, gqldsl.Boolean().Nodes())
}

func TestMerge(t *testing.T) {
	sel := gqldsl.Merge[Post](
		PostTitle(),
		PostTags(),
		PostAuthor(AuthorName()),
	)
	names := make([]string, 0, len(sel.Nodes()))
	for _, n := range sel.Nodes() {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"title", "tags", "author"}, names)

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, gqldsl.Merge[Post]().Nodes())
	})
}

func TestRender(t *testing.T) {
	sel := gqldsl.Merge[Post](
		PostTitle(),
		PostAuthor(AuthorName()),
	)

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "title\nauthor {\n  name\n}\n", sel.String())
	})

	t.Run("Compact", func(t *testing.T) {
		assert.Equal(t, "{title,author{name}}", sel.Compact())
	})

	t.Run("Query", func(t *testing.T) {
		want := "query {\n  title\n  author {\n    name\n  }\n}\n"
		assert.Equal(t, want, gqldsl.Query(sel))
	})

	t.Run("QueryNamed", func(t *testing.T) {
		want := "query RecentPosts {\n  title\n}\n"
		assert.Equal(t, want, gqldsl.QueryNamed("RecentPosts", PostTitle()))
	})
}
