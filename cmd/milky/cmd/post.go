package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/LemoonCan/milky-way-client/pkg/moments"
	"github.com/LemoonCan/milky-way-client/pkg/tracking"
)

var (
	postText  string
	postMedia []string
)

var post = &cobra.Command{
	Use:   "post",
	Short: "publishes a moment",
	RunE:  runPost,
}

func init() {
	post.Flags().StringVarP(&postText, "text", "t", "", "moment text")
	post.Flags().StringArrayVarP(&postMedia, "media", "m", nil, "media files to attach")
}

func runPost(*cobra.Command, []string) error {
	if err := loadConfig(); err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	session := newSession()
	client := newClient(session)
	store := moments.NewStore(client, client, session, logger)

	uploads := make([]moments.Upload, 0, len(postMedia))
	for _, path := range postMedia {
		file, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "failed to open media file")
		}
		defer file.Close()

		uploads = append(uploads, moments.Upload{
			Name:       filepath.Base(path),
			Content:    file,
			Permission: "public",
		})
	}

	ctx := context.Background()

	if !store.Create(ctx, postText, uploads) {
		return fmt.Errorf("failed to publish: %s", store.Err())
	}

	// the store never inserts the new entry itself
	store.FetchFirstPage(ctx, moments.ScopeMine)

	tracker := newTracker()
	err := tracker.Track(&tracking.Event{
		UserID:     session.User().ID,
		Name:       tracking.MomentPosted,
		Properties: map[string]interface{}{"media": len(uploads)},
	})
	if err != nil {
		logger.Warn().Err(err).Msg("failed to track post")
	}

	fmt.Println("published")
	return nil
}
