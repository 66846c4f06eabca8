package storefactory

import (
	"fmt"
	"io"
)

// announcer prints a fixed line; every fixture in this package is one.
type announcer struct {
	w    io.Writer
	line string
}

func (a announcer) announce() {
	_, _ = fmt.Fprintln(a.w, a.line)
}

type music struct{ announcer }

func (m music) Play() { m.announce() }

type display struct{ announcer }

func (d display) Start() { d.announce() }

type board struct{ announcer }

func (b board) Run() { b.announce() }

// DefaultFactory creates the fixtures used during a normal time of the year.
type DefaultFactory struct {
	w io.Writer
}

// NewDefaultFactory returns a DefaultFactory writing to w.
func NewDefaultFactory(w io.Writer) *DefaultFactory {
	return &DefaultFactory{w: w}
}

func (f *DefaultFactory) CreateBackgroundMusic() BackgroundMusic {
	return music{announcer{f.w, "Playing typical store jingles."}}
}

func (f *DefaultFactory) CreateAdvertisementDisplay() AdvertisementDisplay {
	return display{announcer{f.w, "Check out our bakery, 5 donuts for the price of 4"}}
}

func (f *DefaultFactory) CreateLEDBoard() LEDBoard {
	return board{announcer{f.w, "Welcome to our store during a normal time of the year!"}}
}

// ChristmasFactory creates the seasonal fixtures.
type ChristmasFactory struct {
	w io.Writer
}

// NewChristmasFactory returns a ChristmasFactory writing to w.
func NewChristmasFactory(w io.Writer) *ChristmasFactory {
	return &ChristmasFactory{w: w}
}

func (f *ChristmasFactory) CreateBackgroundMusic() BackgroundMusic {
	return music{announcer{f.w, "Playing 'All I want for Christmas is you' on repeat"}}
}

func (f *ChristmasFactory) CreateAdvertisementDisplay() AdvertisementDisplay {
	return display{announcer{f.w, "Check out all these Christmas deals we have for you!"}}
}

func (f *ChristmasFactory) CreateLEDBoard() LEDBoard {
	return board{announcer{f.w, "Merry Christmas"}}
}
