package blogpost

import (
	"strings"
	"sync"
)

const (
	titleMarker  = "# "
	headerMarker = "## "
	bulletMarker = "* "

	// blankLine separates consecutive fragments in Build.
	blankLine = "\n\n"
)

// MarkdownBuilder renders fragments as Markdown.
//
// All methods are safe for concurrent use; fragments appear in the order the
// calls acquired the builder.
type MarkdownBuilder struct {
	mu        sync.Mutex
	fragments []Fragment
}

var _ Builder = (*MarkdownBuilder)(nil)

// NewMarkdownBuilder returns an empty builder.
func NewMarkdownBuilder() *MarkdownBuilder {
	return &MarkdownBuilder{}
}

// AddTitle appends a top-level heading.
func (b *MarkdownBuilder) AddTitle(text string) {
	b.append(KindTitle, titleMarker+text)
}

// AddHeader appends a second-level heading.
func (b *MarkdownBuilder) AddHeader(text string) {
	b.append(KindHeader, headerMarker+text)
}

// AddParagraph appends text followed by a newline.
func (b *MarkdownBuilder) AddParagraph(text string) {
	b.append(KindParagraph, text+"\n")
}

// AddList appends one bullet line per item. An empty list appends an empty fragment.
func (b *MarkdownBuilder) AddList(items []string) {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(bulletMarker)
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	b.append(KindList, sb.String())
}

// Build joins all fragments in insertion order with exactly one blank line
// between them. A fragment that already ends in a newline only needs one more.
// It does not reset the builder.
func (b *MarkdownBuilder) Build() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	var sb strings.Builder
	for i, f := range b.fragments {
		if i > 0 {
			prev := b.fragments[i-1].Text
			if strings.HasSuffix(prev, "\n") {
				sb.WriteString("\n")
			} else {
				sb.WriteString(blankLine)
			}
		}
		sb.WriteString(f.Text)
	}
	return sb.String()
}

// Len returns the number of fragments added so far.
func (b *MarkdownBuilder) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.fragments)
}

// State returns StateEmpty until the first fragment is added.
func (b *MarkdownBuilder) State() State {
	if b.Len() == 0 {
		return StateEmpty
	}
	return StateAccumulating
}

// Fragments returns a copy of the accumulated fragments.
func (b *MarkdownBuilder) Fragments() []Fragment {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Fragment, len(b.fragments))
	copy(out, b.fragments)
	return out
}

func (b *MarkdownBuilder) append(kind FragmentKind, text string) {
	b.mu.Lock()
	b.fragments = append(b.fragments, Fragment{Kind: kind, Text: text})
	b.mu.Unlock()
}
