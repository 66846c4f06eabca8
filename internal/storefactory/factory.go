// Package storefactory implements the Abstract Factory pattern with store fixtures.
//
// A Factory creates a matching family of fixtures (background music, an
// advertisement display and an LED board). The Client only depends on the
// interfaces, so swapping the factory changes every fixture at once.
package storefactory

import (
	"io"
	"sort"

	foundation "git.home.luguber.info/inful/patterns/internal/foundation/errors"
)

// Season names a fixture family.
type Season string

const (
	SeasonDefault   Season = "default"
	SeasonChristmas Season = "christmas"
)

// BackgroundMusic starts the store's music.
type BackgroundMusic interface {
	Play()
}

// AdvertisementDisplay boots up and starts displaying ads.
type AdvertisementDisplay interface {
	Start()
}

// LEDBoard starts displaying text.
type LEDBoard interface {
	Run()
}

// Factory creates one family of fixtures.
type Factory interface {
	CreateBackgroundMusic() BackgroundMusic
	CreateAdvertisementDisplay() AdvertisementDisplay
	CreateLEDBoard() LEDBoard
}

var families = map[Season]func(io.Writer) Factory{
	SeasonDefault:   func(w io.Writer) Factory { return NewDefaultFactory(w) },
	SeasonChristmas: func(w io.Writer) Factory { return NewChristmasFactory(w) },
}

// ForSeason returns the factory for season, writing fixture output to w.
func ForSeason(season Season, w io.Writer) (Factory, error) {
	newFactory, ok := families[season]
	if !ok {
		return nil, foundation.ValidationError("unknown season").
			WithContext("season", string(season)).
			WithContext("supported", Seasons()).
			Build()
	}
	return newFactory(w), nil
}

// Seasons lists the supported fixture families in sorted order.
func Seasons() []string {
	out := make([]string, 0, len(families))
	for s := range families {
		out = append(out, string(s))
	}
	sort.Strings(out)
	return out
}
