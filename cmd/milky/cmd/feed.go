package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/LemoonCan/milky-way-client/pkg/humantime"
	"github.com/LemoonCan/milky-way-client/pkg/moments"
	"github.com/LemoonCan/milky-way-client/pkg/tracking"
)

var (
	feedScope string
	feedPages int
)

var feed = &cobra.Command{
	Use:   "feed",
	Short: "prints the feed",
	RunE:  runFeed,
}

func init() {
	feed.Flags().StringVarP(&feedScope, "scope", "s", "friends", "feed scope (friends, mine or user:<id>)")
	feed.Flags().IntVarP(&feedPages, "pages", "p", 1, "number of pages to load")
}

func runFeed(*cobra.Command, []string) error {
	if err := loadConfig(); err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	session := newSession()
	client := newClient(session)

	store := moments.NewStore(client, client, session, logger)
	if config.Feed.PageSize > 0 {
		store.SetPageSize(config.Feed.PageSize)
	}

	ctx := context.Background()

	if !store.FetchFirstPage(ctx, moments.Scope(feedScope)) {
		return fmt.Errorf("failed to fetch feed: %s", store.Err())
	}

	for i := 1; i < feedPages; i++ {
		if !store.LoadNextPage(ctx) {
			break
		}
	}

	for _, moment := range store.Items() {
		printMoment(moment)
	}

	tracker := newTracker()
	err := tracker.Track(&tracking.Event{
		UserID:     session.User().ID,
		Name:       tracking.FeedViewed,
		Properties: map[string]interface{}{"scope": feedScope},
	})
	if err != nil {
		logger.Warn().Err(err).Msg("failed to track feed view")
	}

	return nil
}

func printMoment(moment moments.Moment) {
	fmt.Printf("%s  %s\n", moment.Author.Name, humantime.FormatNow(moment.CreatedAt))
	if moment.Text != "" {
		fmt.Printf("  %s\n", moment.Text)
	}
	for _, ref := range moment.MediaRefs {
		fmt.Printf("  [图] %s\n", ref)
	}
	if len(moment.Likers) > 0 {
		fmt.Printf("  ♥ %d\n", len(moment.Likers))
	}
	for _, comment := range moment.Comments {
		if comment.ReplyToUser != nil {
			fmt.Printf("  %s 回复 %s: %s\n", comment.Author.Name, comment.ReplyToUser.Name, comment.Content)
			continue
		}
		fmt.Printf("  %s: %s\n", comment.Author.Name, comment.Content)
	}
	fmt.Println()
}
