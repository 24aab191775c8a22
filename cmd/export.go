package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/interviewsprint/internal/export"
	"github.com/abhisek/interviewsprint/internal/prep"
	"github.com/abhisek/interviewsprint/internal/workspace"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the study kit to a file",
	Long: "Writes the roadmap and both question banks to --out. Without --generate the " +
		"bundled starter kit is written; with --generate a fresh roadmap and one batch per " +
		"category are generated first. The format follows the file extension unless --format is set.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		format := export.FormatForPath(out)
		if cmd.Flags().Changed("format") {
			f, err := formatFlag(cmd)
			if err != nil {
				return err
			}
			format = f
		}

		doc, err := buildExport(cmd)
		if err != nil {
			return err
		}
		if err := export.WriteFile(out, format, doc); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d roadmap blocks, %d SQL, %d DSA questions)\n",
			out, len(doc.Roadmap), len(doc.SQL), len(doc.DSA))
		return nil
	},
}

func buildExport(cmd *cobra.Command) (export.Document, error) {
	generate, _ := cmd.Flags().GetBool("generate")
	if !generate {
		kit := prep.StarterKit()
		return export.Document{
			GeneratedAt: time.Now(),
			Roadmap:     kit.Roadmap,
			SQL:         kit.SQL,
			DSA:         kit.DSA,
		}, nil
	}

	levelFlag, _ := cmd.Flags().GetString("level")
	level, err := prep.ParseLevel(levelFlag)
	if err != nil {
		return export.Document{}, err
	}

	d, err := openDeps(cmd)
	if err != nil {
		return export.Document{}, err
	}
	defer d.Close()

	ctx := cmd.Context()
	ws := workspace.New(d.generator, workspace.WithLogger(logger))
	if err := ws.RefreshRoadmap(ctx); err != nil {
		return export.Document{}, err
	}
	for _, c := range prep.Categories {
		n, err := ws.GenerateBatch(ctx, c, level)
		if err != nil {
			return export.Document{}, err
		}
		logger.Info("batch generated", zap.String("category", string(c)), zap.Int("questions", n))
	}

	return export.Document{
		GeneratedAt: time.Now(),
		Roadmap:     ws.Roadmap(),
		SQL:         ws.Questions(prep.CategorySQL),
		DSA:         ws.Questions(prep.CategoryDSA),
	}, nil
}

func init() {
	exportCmd.Flags().StringP("out", "o", "interview-kit.md", "Output file")
	exportCmd.Flags().StringP("format", "f", "markdown", "Output format: markdown, json, yaml (default from --out extension)")
	exportCmd.Flags().Bool("generate", false, "Generate fresh content instead of the starter kit")
	exportCmd.Flags().StringP("level", "l", "basic", "Level for generated batches: basic, advanced or maang")
}
