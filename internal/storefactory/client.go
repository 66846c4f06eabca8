package storefactory

// Client owns one fixture of each kind, all from the same factory.
type Client struct {
	BackgroundMusic      BackgroundMusic
	AdvertisementDisplay AdvertisementDisplay
	LEDBoard             LEDBoard
}

// NewClient creates every fixture through factory.
func NewClient(factory Factory) *Client {
	return &Client{
		BackgroundMusic:      factory.CreateBackgroundMusic(),
		AdvertisementDisplay: factory.CreateAdvertisementDisplay(),
		LEDBoard:             factory.CreateLEDBoard(),
	}
}

// Open plays the music, starts the display and runs the LED board, in that order.
func (c *Client) Open() {
	c.BackgroundMusic.Play()
	c.AdvertisementDisplay.Start()
	c.LEDBoard.Run()
}
