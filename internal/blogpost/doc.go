// Package blogpost implements the Builder pattern for blog posts.
//
// A Builder accumulates ordered fragments (title, header, paragraph, list) and
// renders them into a single document on demand. Inputs are accepted verbatim:
// empty strings and empty lists are valid and produce empty-content fragments.
//
// Example usage:
//
//	b := blogpost.NewMarkdownBuilder()
//	b.AddTitle("The Builder design pattern")
//	b.AddParagraph("Used to create a complex object in several steps.")
//	b.AddList([]string{"Effective when you can't construct an object in one go"})
//	fmt.Println(b.Build())
package blogpost
