// internal/service/analyst/twitter.go

package analyst

import (
	"context"
	"fmt"
	"net/http"
	"time"

	twitter "github.com/g8rswimmer/go-twitter/v2"

	"newsdash/internal/domain/news"
)

// bearerAuthorizer adds the app-only bearer token to Twitter API requests.
type bearerAuthorizer struct {
	token string
}

func (a bearerAuthorizer) Add(req *http.Request) {
	req.Header.Add("Authorization", "Bearer "+a.token)
}

// TwitterSource fetches analyst commentary from the Twitter v2 API.
type TwitterSource struct {
	client *twitter.Client
	// handle -> user ID, resolved lazily and cached
	userIDs map[string]string
}

// NewTwitterSource creates a source using app-only bearer authentication.
func NewTwitterSource(bearerToken string) *TwitterSource {
	return &TwitterSource{
		client: &twitter.Client{
			Authorizer: bearerAuthorizer{token: bearerToken},
			Client:     &http.Client{Timeout: 10 * time.Second},
			Host:       "https://api.twitter.com",
		},
		userIDs: map[string]string{},
	}
}

// Commentary fetches the analyst's recent tweets and maps them to quotes.
// Classification happens downstream in the ingestion pass.
func (s *TwitterSource) Commentary(ctx context.Context, a Analyst, limit int) ([]news.Quote, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	userID, err := s.resolveUser(ctx, a.Handle)
	if err != nil {
		return nil, err
	}

	timeline, err := s.client.UserTweetTimeline(ctx, userID, twitter.UserTweetTimelineOpts{
		MaxResults:  limit,
		TweetFields: []twitter.TweetField{twitter.TweetFieldCreatedAt},
	})
	if err != nil {
		return nil, fmt.Errorf("fetching timeline for @%s: %w", a.Handle, err)
	}

	quotes := make([]news.Quote, 0, len(timeline.Raw.Tweets))
	for _, tw := range timeline.Raw.Tweets {
		created, _ := time.Parse(time.RFC3339, tw.CreatedAt)
		quotes = append(quotes, news.Quote{
			ID:           fmt.Sprintf("%s_%s", a.ID, tw.ID),
			AnalystID:    a.ID,
			AnalystName:  a.Name,
			Organization: a.Organization,
			Content:      tw.Text,
			Date:         created,
			Source:       "twitter",
			URL:          fmt.Sprintf("https://twitter.com/%s/status/%s", a.Handle, tw.ID),
		})
	}
	return quotes, nil
}

func (s *TwitterSource) resolveUser(ctx context.Context, handle string) (string, error) {
	if id, ok := s.userIDs[handle]; ok {
		return id, nil
	}

	resp, err := s.client.UserNameLookup(ctx, []string{handle}, twitter.UserLookupOpts{})
	if err != nil {
		return "", fmt.Errorf("looking up @%s: %w", handle, err)
	}
	if len(resp.Raw.Users) == 0 {
		return "", fmt.Errorf("twitter user @%s not found", handle)
	}

	id := resp.Raw.Users[0].ID
	s.userIDs[handle] = id
	return id, nil
}
