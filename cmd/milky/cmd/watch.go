package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/LemoonCan/milky-way-client/pkg/chats"
	"github.com/LemoonCan/milky-way-client/pkg/friends"
	"github.com/LemoonCan/milky-way-client/pkg/moments"
	"github.com/LemoonCan/milky-way-client/pkg/notifications"
	"github.com/LemoonCan/milky-way-client/pkg/push"
	"github.com/LemoonCan/milky-way-client/pkg/push/dispatcher"
	"github.com/LemoonCan/milky-way-client/pkg/ws"
)

var watch = &cobra.Command{
	Use:   "watch",
	Short: "follows push notifications",
	RunE:  runWatch,
}

func runWatch(*cobra.Command, []string) error {
	if err := loadConfig(); err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	session := newSession()
	client := newClient(session)

	aggregator := notifications.NewAggregator()
	momentStore := moments.NewStore(client, client, session, logger)
	chatStore := chats.NewStore(client, session, logger)
	friendStore := friends.NewStore(client, logger)

	dispatch := dispatcher.New(aggregator, momentStore, chatStore, friendStore, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt)
		<-stop
		cancel()
	}()

	conn, err := ws.Dial(ctx, config.WS.URL, session.Token(), func(event push.Event) {
		dispatch.Dispatch(event)
		printLatest(aggregator)
	}, logger)
	if err != nil {
		return err
	}
	defer conn.Close()

	logger.Info().Str("url", config.WS.URL).Msg("watching for push events")

	err = conn.Run(ctx)
	if err == context.Canceled {
		return nil
	}
	return err
}

func printLatest(aggregator *notifications.Aggregator) {
	list := aggregator.Notifications()
	if len(list) == 0 {
		return
	}

	latest := list[0]
	fmt.Printf("%s  %s %s\n", latest.ReceivedAt.Format("15:04:05"), latest.Title, latest.Message)

	stats := aggregator.Stats()
	fmt.Printf("  未读 %d（点赞 %d 评论 %d）\n", stats.Unread, stats.LikeCount, stats.CommentCount)
}
