package external

import (
	"context"
	"net/url"
	"strconv"
)

// Artwork is the daily muse from the Art Institute of Chicago.
type Artwork struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	ImageURL string `json:"imageUrl"`
	Date     string `json:"date"`
}

var FallbackArtwork = Artwork{
	ID:       27992,
	Title:    "A Sunday on La Grande Jatte",
	Artist:   "Georges Seurat",
	ImageURL: "https://www.artic.edu/iiif/2/2d484387-2509-5e8e-2c43-22f9981972eb/full/843,/0/default.jpg",
	Date:     "1884/86",
}

const (
	artPages     = 5
	artPageLimit = 10
	artFields    = "id,title,artist_display,image_id,date_display"
	iiifBaseURL  = "https://www.artic.edu/iiif/2/"
)

type articResponse struct {
	Data []struct {
		ID            int    `json:"id"`
		Title         string `json:"title"`
		ArtistDisplay string `json:"artist_display"`
		ImageID       string `json:"image_id"`
		DateDisplay   string `json:"date_display"`
	} `json:"data"`
}

// DailyArt picks a random artwork that has an image from one of the first pages
// of the collection.
func (c *Client) DailyArt(ctx context.Context) Result[Artwork] {
	return cachedDaily(ctx, c, ProviderArt, ProviderArt, c.fetchArt)
}

func (c *Client) fetchArt(ctx context.Context) Result[Artwork] {
	q := url.Values{}
	q.Set("page", strconv.Itoa(c.intn(artPages)+1))
	q.Set("limit", strconv.Itoa(artPageLimit))
	q.Set("fields", artFields)

	var resp articResponse
	if err := c.getJSON(ctx, c.endpoints.Art+"/api/v1/artworks?"+q.Encode(), &resp); err != nil {
		return fallback(FallbackArtwork, err)
	}

	candidates := make([]Artwork, 0, len(resp.Data))
	for _, a := range resp.Data {
		if a.ImageID == "" {
			continue
		}
		candidates = append(candidates, Artwork{
			ID:       a.ID,
			Title:    a.Title,
			Artist:   a.ArtistDisplay,
			ImageURL: iiifBaseURL + a.ImageID + "/full/843,/0/default.jpg",
			Date:     a.DateDisplay,
		})
	}
	if len(candidates) == 0 {
		return fallback(FallbackArtwork, ErrEmptyResponse)
	}
	return live(candidates[c.intn(len(candidates))])
}
