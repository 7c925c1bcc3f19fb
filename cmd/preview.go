package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/abhisek/statgen/internal/question"
	"github.com/abhisek/statgen/internal/questiongen"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print one sample question per family",
	Long: `Generate and print one question from every family at a single
difficulty level, answers and solution steps included.

This is a stateless developer tool for eyeballing question quality,
checking template wording and tuning difficulty tables.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("difficulty", 3, "Difficulty level 1-5")
	previewCmd.Flags().Int64("seed", time.Now().UnixNano(), "Base seed (defaults to current time)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	table, err := resolveTable(cmd)
	if err != nil {
		return err
	}
	provider, err := resolveProvider(cmd)
	if err != nil {
		return err
	}

	level, _ := cmd.Flags().GetInt("difficulty")
	seed, _ := cmd.Flags().GetInt64("seed")
	out := cmd.OutOrStdout()

	gens := questiongen.Generators(table, provider)
	fmt.Fprintf(out, "Difficulty %d, seed %d\n\n", level, seed)

	for i, t := range question.Types {
		q, err := gens[t].Generate(level, seed+int64(i))
		if err != nil {
			fmt.Fprintf(out, "── %s ──\ngeneration failed: %v\n\n", t, err)
			continue
		}
		printQuestion(out, q)
	}

	// The percentile-rank family also has an interpretation variant
	// with a given rank instead of a computed one.
	pr := questiongen.NewPercentileRank(table, provider)
	q, err := pr.GenerateConceptual(level, seed+int64(len(question.Types)))
	if err != nil {
		fmt.Fprintf(out, "── %s (conceptual) ──\ngeneration failed: %v\n\n", question.TypePercentileRank, err)
		return nil
	}
	printQuestion(out, q)
	return nil
}

func printQuestion(out io.Writer, q *question.Question) {
	fmt.Fprintf(out, "── %s %s (%s) ──\n", q.Type, q.MarksDisplay(), q.ID)
	fmt.Fprintln(out, q.Text)
	for _, p := range q.Parts {
		if p.Label != "" {
			fmt.Fprintf(out, "\nAnswer %s) %s\n", p.Label, p.Answer)
		} else {
			fmt.Fprintf(out, "\nAnswer: %s\n", p.Answer)
		}
		for _, step := range p.SolutionSteps {
			fmt.Fprintf(out, "  %s\n", step)
		}
	}
	fmt.Fprintln(out)
}
