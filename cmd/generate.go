package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/interviewsprint/internal/export"
	"github.com/abhisek/interviewsprint/internal/prep"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate a 48-hour study roadmap",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := formatFlag(cmd)
		if err != nil {
			return err
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		items, err := d.generator.GenerateRoadmap(cmd.Context())
		if err != nil {
			return err
		}
		return export.Write(cmd.OutOrStdout(), format, export.Document{
			GeneratedAt: time.Now(),
			Roadmap:     items,
		})
	},
}

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate interview questions for a category and level",
	Long: "Without --topic, generates a batch across every topic of the category " +
		"(five questions each). With --topic, generates --count questions for that topic only.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := formatFlag(cmd)
		if err != nil {
			return err
		}
		catFlag, _ := cmd.Flags().GetString("category")
		category, err := prep.ParseCategory(catFlag)
		if err != nil {
			return err
		}
		levelFlag, _ := cmd.Flags().GetString("level")
		level, err := prep.ParseLevel(levelFlag)
		if err != nil {
			return err
		}
		topic, _ := cmd.Flags().GetString("topic")
		count, _ := cmd.Flags().GetInt("count")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		var qs []prep.Question
		if topic != "" {
			qs, err = d.generator.GenerateQuestions(ctx, category, topic, level, count)
		} else {
			qs, err = d.generator.GenerateQuestionBatch(ctx, category, prep.Topics(category), level)
		}
		if err != nil {
			return err
		}

		doc := export.Document{GeneratedAt: time.Now()}
		if category == prep.CategorySQL {
			doc.SQL = qs
		} else {
			doc.DSA = qs
		}
		return export.Write(cmd.OutOrStdout(), format, doc)
	},
}

var kitCmd = &cobra.Command{
	Use:   "kit",
	Short: "Print the bundled 48-hour survival kit (no model calls)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := formatFlag(cmd)
		if err != nil {
			return err
		}
		kit := prep.StarterKit()
		return export.Write(cmd.OutOrStdout(), format, export.Document{
			Roadmap: kit.Roadmap,
			SQL:     kit.SQL,
			DSA:     kit.DSA,
		})
	},
}

// formatFlag parses --format.
func formatFlag(cmd *cobra.Command) (export.Format, error) {
	s, _ := cmd.Flags().GetString("format")
	f, err := export.ParseFormat(s)
	if err != nil {
		return "", fmt.Errorf("--format: %w", err)
	}
	return f, nil
}

func init() {
	for _, c := range []*cobra.Command{roadmapCmd, questionsCmd, kitCmd} {
		c.Flags().StringP("format", "f", "markdown", "Output format: markdown, json, yaml")
	}

	questionsCmd.Flags().StringP("category", "c", "", "Question category: sql or dsa")
	questionsCmd.Flags().StringP("level", "l", "basic", "Level: basic, advanced or maang")
	questionsCmd.Flags().StringP("topic", "t", "", "Single topic instead of the full topic list")
	questionsCmd.Flags().IntP("count", "n", 5, "Questions to generate with --topic")
	_ = questionsCmd.MarkFlagRequired("category")
}
