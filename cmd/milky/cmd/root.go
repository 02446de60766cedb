package cmd

import (
	"os"
	"time"

	"github.com/dukex/mixpanel"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/LemoonCan/milky-way-client/pkg/api"
	"github.com/LemoonCan/milky-way-client/pkg/conf"
	"github.com/LemoonCan/milky-way-client/pkg/sessions"
	"github.com/LemoonCan/milky-way-client/pkg/tracking"
	"github.com/LemoonCan/milky-way-client/pkg/users"
)

type Conf struct {
	API      conf.APIConf      `mapstructure:"api"`
	WS       conf.WSConf       `mapstructure:"ws"`
	Session  conf.SessionConf  `mapstructure:"session"`
	Tracking conf.TrackingConf `mapstructure:"tracking"`
	Feed     conf.FeedConf     `mapstructure:"feed"`
}

var (
	rootCmd = &cobra.Command{
		Use:   "milky",
		Short: "Milky Way Client",
		Long:  "",
	}

	file   string
	config Conf
	logger zerolog.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&file, "config", "c", "config.toml", "config file")

	rootCmd.AddCommand(feed)
	rootCmd.AddCommand(post)
	rootCmd.AddCommand(watch)

	cobra.OnInitialize(func() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	})
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() error {
	return conf.Load(file, &config)
}

func newSession() *sessions.Session {
	session := sessions.NewSession()
	session.SetToken(config.Session.Token)
	session.SetUser(users.User{
		ID:     config.Session.UserID,
		Name:   config.Session.Name,
		Avatar: config.Session.Avatar,
	})
	return session
}

func newClient(session *sessions.Session) *api.Client {
	return api.NewClientWithTimeout(config.API.URL, session, time.Duration(config.API.Timeout)*time.Second)
}

func newTracker() tracking.Tracker {
	if !config.Tracking.Enabled || config.Tracking.Token == "" {
		return tracking.NewLogTracker(logger)
	}

	return tracking.NewMulti(
		tracking.NewMixpanelTracker(mixpanel.New(config.Tracking.Token, "")),
		tracking.NewLogTracker(logger),
	)
}
