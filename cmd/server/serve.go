package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/pixelrunner/assets"
	"github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/records"
	"github.com/automoto/pixelrunner/server/core"
	"github.com/automoto/pixelrunner/shared/protocol"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagPort    uint
	flagLevel   string
	flagTick    time.Duration
	flagRecords string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the session host",
	Long: `Start the websocket host. Each client that sends a JoinRequest gets its
own simulation of the requested level, ticked at a fixed interval.

Best completion times are kept in memory unless --records names a gdata
application directory to persist them in.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().UintVar(&flagPort, "port", 7373, "Server port")
	serveCmd.Flags().StringVar(&flagLevel, "level", "", "Default level for clients that do not pick one")
	serveCmd.Flags().DurationVar(&flagTick, "tick", 0, "Tick interval (default from config, 80ms)")
	serveCmd.Flags().StringVar(&flagRecords, "records", "", "gdata app name for persisted records (empty = in memory)")
}

func runServe(_ *cobra.Command, _ []string) error {
	if flagTick > 0 {
		config.Session.TickInterval = flagTick
	}

	levels, err := assets.NewLevelLoader(os.DirFS(flagLevels), ".").LoadAll()
	if err != nil {
		return fmt.Errorf("load levels: %w", err)
	}
	if flagLevel != "" && !hasLevel(levels, flagLevel) {
		return fmt.Errorf("unknown default level %q", flagLevel)
	}

	store, err := records.Open(flagRecords)
	if err != nil {
		return err
	}

	if err := protocol.RegisterComponents(); err != nil {
		return fmt.Errorf("register components: %w", err)
	}

	server := core.NewServer(core.Options{
		Levels:       levels,
		DefaultLevel: flagLevel,
		Records:      store,
		TickInterval: config.Session.TickInterval,
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("shutting down server")
		server.Stop()
		os.Exit(0)
	}()

	log.Info("starting pixelrunner server",
		"port", flagPort,
		"levels", len(levels),
		"tick", config.Session.TickInterval)
	return server.Start(flagPort)
}

func hasLevel(levels []*assets.Level, name string) bool {
	for _, l := range levels {
		if l.Name == name {
			return true
		}
	}
	return false
}
