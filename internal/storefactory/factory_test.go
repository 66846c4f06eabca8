package storefactory

import (
	"bytes"
	"strings"
	"testing"

	foundation "git.home.luguber.info/inful/patterns/internal/foundation/errors"
	"github.com/stretchr/testify/require"
)

func TestClient_OpenUsesOneFamily(t *testing.T) {
	tests := []struct {
		season Season
		want   []string
	}{
		{
			season: SeasonDefault,
			want: []string{
				"Playing typical store jingles.",
				"Check out our bakery, 5 donuts for the price of 4",
				"Welcome to our store during a normal time of the year!",
			},
		},
		{
			season: SeasonChristmas,
			want: []string{
				"Playing 'All I want for Christmas is you' on repeat",
				"Check out all these Christmas deals we have for you!",
				"Merry Christmas",
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.season), func(t *testing.T) {
			var out bytes.Buffer
			factory, err := ForSeason(tt.season, &out)
			require.NoError(t, err)

			NewClient(factory).Open()

			require.Equal(t, tt.want, strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n"))
		})
	}
}

func TestNewClient_CreatesWithoutStarting(t *testing.T) {
	var out bytes.Buffer
	c := NewClient(NewChristmasFactory(&out))

	require.NotNil(t, c.BackgroundMusic)
	require.NotNil(t, c.AdvertisementDisplay)
	require.NotNil(t, c.LEDBoard)
	require.Empty(t, out.String())
}

func TestForSeason_Unknown(t *testing.T) {
	_, err := ForSeason("easter", &bytes.Buffer{})
	require.Error(t, err)
	require.True(t, foundation.HasCategory(err, foundation.CategoryValidation))

	classified, ok := foundation.AsClassified(err)
	require.True(t, ok)
	season, _ := classified.Context().GetString("season")
	require.Equal(t, "easter", season)
}

func TestSeasons_Sorted(t *testing.T) {
	require.Equal(t, []string{"christmas", "default"}, Seasons())
}

type recordingFactory struct{ calls *[]string }

type recordingFixture struct {
	name  string
	calls *[]string
}

func (r recordingFixture) Play()  { *r.calls = append(*r.calls, r.name) }
func (r recordingFixture) Start() { *r.calls = append(*r.calls, r.name) }
func (r recordingFixture) Run()   { *r.calls = append(*r.calls, r.name) }

func (f recordingFactory) CreateBackgroundMusic() BackgroundMusic {
	return recordingFixture{"music", f.calls}
}

func (f recordingFactory) CreateAdvertisementDisplay() AdvertisementDisplay {
	return recordingFixture{"display", f.calls}
}

func (f recordingFactory) CreateLEDBoard() LEDBoard {
	return recordingFixture{"board", f.calls}
}

func TestClient_AcceptsAnyFactory(t *testing.T) {
	var calls []string
	NewClient(recordingFactory{&calls}).Open()
	require.Equal(t, []string{"music", "display", "board"}, calls)
}
