package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/lessonbook/internal/assets"
	"github.com/abhisek/lessonbook/internal/config"
	"github.com/abhisek/lessonbook/internal/source"
	"github.com/abhisek/lessonbook/internal/viewer"
	"github.com/abhisek/lessonbook/internal/watch"
)

var checkCmd = &cobra.Command{
	Use:   "check [lesson-location]",
	Short: "Load and validate a lesson and print its page outline",
	Long: `Load lesson_data.json and every library collection, validate them and print
the composed page. With --watch the lesson is checked again whenever a JSON
file of the lesson or library directory changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("watch", false, "Re-check when lesson or library files change")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	origin, err := openOrigin(cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	checkErr := checkOnce(cmd, out, cfg, origin)
	if w, _ := cmd.Flags().GetBool("watch"); !w {
		return checkErr
	}
	if checkErr != nil {
		fmt.Fprintln(out, "✗", checkErr)
	}

	dir, ok := origin.(*source.Dir)
	if !ok {
		return fmt.Errorf("--watch needs a local lesson directory, got %s", origin)
	}
	w := &watch.Watcher{Dirs: []string{
		filepath.Join(dir.Root, filepath.FromSlash(cfg.LessonPath)),
		filepath.Join(dir.Root, filepath.FromSlash(cfg.LibraryPath)),
	}}
	fmt.Fprintln(out, "Watching for changes. Press Ctrl+C to stop.")
	return w.Run(cmd.Context(), func(paths []string) {
		for _, p := range paths {
			fmt.Fprintln(out, "changed:", p)
		}
		if err := checkOnce(cmd, out, cfg, origin); err != nil {
			fmt.Fprintln(out, "✗", err)
		}
	})
}

func checkOnce(cmd *cobra.Command, out io.Writer, cfg *config.Config, origin source.Origin) error {
	bundle, err := loadBundle(cmd, cfg, origin, zap.NewNop())
	if err != nil {
		return err
	}
	sess := viewer.New(bundle, viewer.Options{Resolver: assets.NewResolver(cfg.LessonPath)})

	doc := bundle.Document
	fmt.Fprintf(out, "✓ %s #%s %q: %d sections, %d blocks\n",
		doc.Course(), doc.Number(), doc.Title, len(doc.Sections), len(sess.Page.Blocks))
	for _, e := range sess.Outline() {
		fmt.Fprintf(out, "  %2d  %-8s  %-24s  %s\n", e.Block, e.Kind, e.Title, e.Detail)
	}
	return nil
}
