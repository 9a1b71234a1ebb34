package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/app"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/content"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/session"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/shuffle"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/store"
)

// runApp loads the content pack, opens the attempt log, and launches the
// TUI. A broken attempt log is reported but never blocks play.
func runApp(cmd *cobra.Command) error {
	pack, err := content.Load()
	if err != nil {
		return fmt.Errorf("load content pack: %w", err)
	}

	cs, err := content.NewSession(shuffle.NewSource(), pack)
	if err != nil {
		return fmt.Errorf("instantiate content: %w", err)
	}

	var rec session.Recorder
	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		st, err := store.Open(dbPath)
		if err == nil {
			defer st.Close()
			rec = st
		} else {
			fmt.Fprintln(os.Stderr, "Attempt log unavailable:", err)
		}
	} else {
		fmt.Fprintln(os.Stderr, "Attempt log unavailable:", err)
	}

	return app.Run(uuid.NewString(), cs, rec)
}
