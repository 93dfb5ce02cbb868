package htmlutil

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	require.Equal(t, "foo bar", CleanText("  foo    bar  "))
	require.Equal(t, "foo bar", CleanText("\n  foo \n bar\n"))
	require.Equal(t, "", CleanText("  \t\n  "))
}

func TestSelectionText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<div>
			<span>  hello   <b>world</b>  </span>
		</div>
	`))
	require.NoError(t, err)
	require.Equal(t, "hello world", SelectionText(doc.Find("span")))
}

func TestNextMatch(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<h2>First</h2>
		<div><ul class="target"><li>a</li></ul></div>
		<h2>Second</h2>
		<ul class="target"><li>b</li></ul>
	`))
	require.NoError(t, err)

	headings := doc.Find("h2")

	// the nested list belongs to the first heading
	got := NextMatch(doc, headings.First(), "ul.target")
	require.Equal(t, "a", SelectionText(got.Find("li")))

	got = NextMatch(doc, headings.Eq(1), "ul.target")
	require.Equal(t, "b", SelectionText(got.Find("li")))

	// empty anchor and exhausted document both come back empty
	require.Zero(t, NextMatch(doc, doc.Find("h5"), "ul.target").Length())
	require.Zero(t, NextMatch(doc, headings.Eq(1), "h2").Length())
}

func TestGetAnchors(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<ul>
			<li><a href="/resumes/1">First  Person</a></li>
			<li><a href="/resumes/2">Second</a></li>
			<li><a>no href</a></li>
		</ul>
	`))
	require.NoError(t, err)

	anchors := GetAnchors(context.Background(), doc.Find("a"))
	require.Equal(t, []Anchor{
		{Name: "First Person", Href: "/resumes/1"},
		{Name: "Second", Href: "/resumes/2"},
		{Name: "no href", Href: ""},
	}, anchors)
}
