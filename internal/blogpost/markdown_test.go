package blogpost

import (
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownBuilder_EmptyBuildReturnsEmptyString(t *testing.T) {
	b := NewMarkdownBuilder()

	require.Equal(t, "", b.Build())
	require.Equal(t, StateEmpty, b.State())
	require.Zero(t, b.Len())
}

func TestMarkdownBuilder_RoundTrip(t *testing.T) {
	b := NewMarkdownBuilder()
	b.AddTitle("T")
	b.AddParagraph("P")
	b.AddList([]string{"a", "b"})

	out := b.Build()
	require.Equal(t, "# T\n\nP\n\n* a\n* b\n", out)
	require.Equal(t, []string{"# T", "", "P", "", "* a", "* b", ""}, strings.Split(out, "\n"))
}

func TestMarkdownBuilder_FragmentRendering(t *testing.T) {
	tests := []struct {
		name string
		add  func(b *MarkdownBuilder)
		want Fragment
	}{
		{"title", func(b *MarkdownBuilder) { b.AddTitle("Hello") }, Fragment{KindTitle, "# Hello"}},
		{"header", func(b *MarkdownBuilder) { b.AddHeader("Section") }, Fragment{KindHeader, "## Section"}},
		{"paragraph", func(b *MarkdownBuilder) { b.AddParagraph("Body") }, Fragment{KindParagraph, "Body\n"}},
		{"list", func(b *MarkdownBuilder) { b.AddList([]string{"x", "y"}) }, Fragment{KindList, "* x\n* y\n"}},
		{"empty title", func(b *MarkdownBuilder) { b.AddTitle("") }, Fragment{KindTitle, "# "}},
		{"empty list", func(b *MarkdownBuilder) { b.AddList(nil) }, Fragment{KindList, ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewMarkdownBuilder()
			tt.add(b)
			require.Equal(t, []Fragment{tt.want}, b.Fragments())
		})
	}
}

func TestMarkdownBuilder_OrderFollowsCalls(t *testing.T) {
	b := NewMarkdownBuilder()
	b.AddHeader("second-level first")
	b.AddTitle("title after header")
	b.AddParagraph("tail")

	out := b.Build()
	h := strings.Index(out, "## second-level first")
	ti := strings.Index(out, "# title after header")
	p := strings.Index(out, "tail")
	require.True(t, h >= 0 && ti > h && p > ti, "unexpected order in %q", out)

	kinds := make([]FragmentKind, 0, 3)
	for _, f := range b.Fragments() {
		kinds = append(kinds, f.Kind)
	}
	assert.Equal(t, []FragmentKind{KindHeader, KindTitle, KindParagraph}, kinds)
}

func TestMarkdownBuilder_BuildIsIdempotent(t *testing.T) {
	b := NewMarkdownBuilder()
	b.AddTitle("T")
	b.AddList([]string{"a"})

	first := b.Build()
	second := b.Build()
	require.Equal(t, first, second)
	require.Equal(t, StateAccumulating, b.State())

	b.AddParagraph("more")
	require.NotEqual(t, first, b.Build())
	require.True(t, strings.HasPrefix(b.Build(), first))
}

func TestMarkdownBuilder_EmptyListHasNoBullets(t *testing.T) {
	b := NewMarkdownBuilder()
	b.AddList([]string{})

	out := b.Build()
	require.NotContains(t, out, "*")
	require.Empty(t, strings.TrimSpace(out))
	require.Equal(t, StateAccumulating, b.State())
}

func TestMarkdownBuilder_EmptyListBetweenFragmentsIsEmptyBlock(t *testing.T) {
	tests := []struct {
		name string
		add  func(b *MarkdownBuilder)
		want string
	}{
		{"between paragraphs", func(b *MarkdownBuilder) {
			b.AddParagraph("P")
			b.AddList(nil)
			b.AddParagraph("Q")
		}, "P\n\n\n\nQ\n"},
		{"after title", func(b *MarkdownBuilder) {
			b.AddTitle("T")
			b.AddList(nil)
		}, "# T\n\n"},
		{"leading", func(b *MarkdownBuilder) {
			b.AddList(nil)
			b.AddHeader("H")
		}, "\n\n## H"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewMarkdownBuilder()
			tt.add(b)
			require.Equal(t, tt.want, b.Build())
		})
	}
}

func TestMarkdownBuilder_EmbeddedNewlinesKeepOrder(t *testing.T) {
	b := NewMarkdownBuilder()
	b.AddParagraph("line one\nline two\n\nline four")
	b.AddHeader("H")
	b.AddList([]string{"multi\nline", "z"})

	require.Equal(t, "line one\nline two\n\nline four\n\n## H\n\n* multi\nline\n* z\n", b.Build())
	require.Len(t, b.Fragments(), 3)
}

func TestMarkdownBuilder_FragmentsReturnsCopy(t *testing.T) {
	b := NewMarkdownBuilder()
	b.AddTitle("T")

	frags := b.Fragments()
	frags[0].Text = "mutated"
	require.Equal(t, "# T", b.Build())
}

func TestMarkdownBuilder_ConcurrentAddsKeepEveryFragment(t *testing.T) {
	b := NewMarkdownBuilder()

	const writers = 8
	const perWriter = 50
	var wg sync.WaitGroup
	for w := range writers {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := range perWriter {
				b.AddParagraph(strconv.Itoa(w) + "-" + strconv.Itoa(i))
				_ = b.Build()
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, writers*perWriter, b.Len())
	// Each writer's own fragments stay in the order that writer issued them.
	last := make(map[string]int)
	for idx, f := range b.Fragments() {
		parts := strings.SplitN(strings.TrimSuffix(f.Text, "\n"), "-", 2)
		require.Len(t, parts, 2)
		n, err := strconv.Atoi(parts[1])
		require.NoError(t, err)
		if prev, ok := last[parts[0]]; ok {
			require.Greater(t, n, prev, "writer %s out of order at %d", parts[0], idx)
		}
		last[parts[0]] = n
	}
}
