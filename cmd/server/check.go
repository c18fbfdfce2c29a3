package main

import (
	"fmt"
	"os"
	"time"

	"github.com/automoto/pixelrunner/assets"
	"github.com/automoto/pixelrunner/assets/animations"
	"github.com/automoto/pixelrunner/session"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate levels and animation tables",
	Long: `Load every level, validate the animation tables and run one tick of
each level to make sure a session can start. Exits non-zero on the first
failure.`,
	RunE: runCheck,
}

func runCheck(_ *cobra.Command, _ []string) error {
	if err := animations.ValidateAll(); err != nil {
		return fmt.Errorf("animation tables: %w", err)
	}

	levels, err := assets.NewLevelLoader(os.DirFS(flagLevels), ".").LoadAll()
	if err != nil {
		return fmt.Errorf("load levels: %w", err)
	}

	for _, lvl := range levels {
		sess, err := session.New(lvl)
		if err != nil {
			return fmt.Errorf("level %s: %w", lvl.Name, err)
		}
		f, err := sess.Tick(time.Now())
		if err != nil {
			return fmt.Errorf("level %s: %w", lvl.Name, err)
		}
		log.Info("level ok",
			"level", lvl.Name,
			"size", fmt.Sprintf("%dx%d", lvl.Width(), lvl.Height()),
			"collectables", f.Total,
			"enemies", len(f.Enemies))
	}
	return nil
}
