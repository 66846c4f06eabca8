// Package post describes blog posts as data and replays them onto a builder.
//
// A post definition is a YAML document whose blocks are applied in order,
// which is the sequential-parsing use case the Builder pattern suits best:
//
//	title: The Builder design pattern
//	blocks:
//	  - kind: paragraph
//	    text: Used to create a complex object in several steps.
//	  - kind: list
//	    items: [one, two]
package post
