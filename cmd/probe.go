package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/lessonbook/internal/app"
	"github.com/abhisek/lessonbook/internal/assets"
	"github.com/abhisek/lessonbook/internal/compose"
	"github.com/abhisek/lessonbook/internal/viewer"
)

var probeCmd = &cobra.Command{
	Use:   "probe [lesson-location]",
	Short: "Discover the step count of every build part",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProbe,
}

func init() {
	probeCmd.Flags().Bool("record", true, "Record discovery events in the database")
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	origin, err := openOrigin(cfg)
	if err != nil {
		return err
	}
	bundle, err := loadBundle(cmd, cfg, origin, zap.NewNop())
	if err != nil {
		return err
	}

	svc := app.Services{Config: cfg, Origin: origin}
	if record, _ := cmd.Flags().GetBool("record"); record {
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()
		svc.Store = st
	}

	sess := viewer.New(bundle, viewer.Options{Resolver: assets.NewResolver(cfg.LessonPath)})
	engine := svc.Engine(sess.ID)
	out := cmd.OutOrStdout()

	for _, i := range sess.BuildBlocks() {
		b := sess.Page.Blocks[i].(*compose.BuildBlock)
		fmt.Fprintf(out, "%s (%s)\n", b.Title, b.Name)

		steps := make([]int, len(b.Parts))
		engine.DiscoverAll(cmd.Context(), b.BasePaths(), func(part, n int) {
			steps[part] = n
		})
		for j, p := range b.Parts {
			fmt.Fprintf(out, "  %d. %-20s %-32s %s\n", j+1, p.Label, p.BasePath, plural(steps[j], "step"))
		}
	}
	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %s", n, word+"s")
}
