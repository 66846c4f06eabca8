package post

import "git.home.luguber.info/inful/patterns/internal/blogpost"

// Demo returns the sample post about the Builder pattern itself.
func Demo() *Post {
	return &Post{
		Title: "The Builder design pattern",
		Meta: map[string]any{
			"tags": []string{"design-patterns", "builder"},
		},
		Blocks: []Block{
			{Kind: blogpost.KindParagraph, Text: "Used to create a complex object in several steps."},
			{Kind: blogpost.KindHeader, Text: "Builder"},
			{Kind: blogpost.KindParagraph, Text: "The Builder pattern is a typical Java pattern that you see less of in the " +
				"Python world. This is because a lot of the examples can be solved by using " +
				"keyword arguments in the objects constructor, negating the need for a " +
				"Builder pattern."},
			{Kind: blogpost.KindParagraph, Text: "However, there are some cases where you could make use of the Builder " +
				"pattern, and I think the place where it shines the most is where input " +
				"is sequentially parsed and used to create an object."},
			{Kind: blogpost.KindList, Items: []string{
				"Effective when you can't construct an object completely in one go",
				"In most cases you can just use keyword args for your constructor",
				"Not used often in Python",
			}},
		},
	}
}
