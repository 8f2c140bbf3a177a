package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/lessonbook/internal/coach"
	"github.com/abhisek/lessonbook/internal/llm"
	"github.com/abhisek/lessonbook/internal/report"
)

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Preview coach lines for a mission report (no database)",
	Long: `Ask the configured coach for the encouragement shown after a mission report
is sent. This is a stateless developer tool: nothing is recorded. Without a
configured LLM provider the fixed fallback lines are used.`,
	RunE: runCoach,
}

func init() {
	coachCmd.Flags().String("result", string(report.Success), "Q1 answer: success, close or fail")
	coachCmd.Flags().String("grit", string(report.Great), "Q2 answer: great, good or poor")
	coachCmd.Flags().Int("count", 3, "Number of lines to generate")
}

func runCoach(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	resultVal, _ := cmd.Flags().GetString("result")
	gritVal, _ := cmd.Flags().GetString("grit")
	count, _ := cmd.Flags().GetInt("count")

	result, grit := report.Option(resultVal), report.Option(gritVal)
	flow := report.NewFlow(nil)
	if !flow.Select(report.Result, result) {
		return fmt.Errorf("invalid --result %q", resultVal)
	}
	if !flow.Select(report.Grit, grit) {
		return fmt.Errorf("invalid --grit %q", gritVal)
	}

	out := cmd.OutOrStdout()
	provider, err := llm.NewProvider(cmd.Context(), cfg.LLM, nil, nil)
	switch {
	case errors.Is(err, llm.ErrDisabled):
		fmt.Fprintln(out, "No LLM provider configured; showing fallback lines.")
	case err != nil:
		return fmt.Errorf("create provider: %w", err)
	default:
		fmt.Fprintf(out, "Provider: %s  Model: %s\n", cfg.LLM.Provider, provider.ModelID())
	}

	c := coach.New(provider, coach.DefaultConfig(), zap.NewNop())
	for i := range count {
		fmt.Fprintf(out, "%d. %s\n", i+1, c.Line(cmd.Context(), result, grit))
	}
	return nil
}
