package blogpost

// Builder assembles a blog post one fragment at a time.
type Builder interface {
	AddTitle(text string)
	AddHeader(text string)
	AddParagraph(text string)
	AddList(items []string)
	Build() string
}

// FragmentKind identifies the add operation that produced a fragment.
type FragmentKind string

const (
	KindTitle     FragmentKind = "title"
	KindHeader    FragmentKind = "header"
	KindParagraph FragmentKind = "paragraph"
	KindList      FragmentKind = "list"
)

// Fragment is one already-rendered block of the document.
type Fragment struct {
	Kind FragmentKind
	Text string
}

// State reports whether a builder holds any fragments.
type State string

const (
	StateEmpty        State = "empty"
	StateAccumulating State = "accumulating"
)
