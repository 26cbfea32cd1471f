package external

import "context"

// Quote is the daily mantra shown on the dashboard.
type Quote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// FallbackQuotes are the built-in mantras. The first entry is served whenever
// the quote provider is down.
var FallbackQuotes = []Quote{
	{Content: "Leadership is not about being in charge. It is about taking care of those in your charge.", Author: "Simon Sinek"},
	{Content: "The way to get started is to quit talking and begin doing.", Author: "Walt Disney"},
	{Content: "Success usually comes to those who are too busy to be looking for it.", Author: "Henry David Thoreau"},
}

const quoteTags = "business,success,wisdom"

// DailyQuote returns a random quote from Quotable.
func (c *Client) DailyQuote(ctx context.Context) Result[Quote] {
	return cachedDaily(ctx, c, ProviderQuote, ProviderQuote, c.fetchQuote)
}

func (c *Client) fetchQuote(ctx context.Context) Result[Quote] {
	var q Quote
	if err := c.getJSON(ctx, c.endpoints.Quote+"/random?tags="+quoteTags, &q); err != nil {
		return fallback(FallbackQuotes[0], err)
	}
	if q.Content == "" {
		return fallback(FallbackQuotes[0], ErrEmptyResponse)
	}
	return live(q)
}

