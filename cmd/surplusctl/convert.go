package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"surplus-backend/internal/conversions"
	"surplus-backend/internal/extract"
	"surplus-backend/internal/table"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.docx>",
	Short: "Convert one .docx file into a CSV table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output := viper.GetString("output")
		if strings.TrimSpace(output) == "" {
			output = defaultOutputPath(args[0])
		}
		return runConvert(cmd.Context(), args[0], output, viper.GetBool("verify"), cmd.OutOrStdout())
	},
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output CSV path (default: input name with .csv)")
	convertCmd.Flags().Bool("verify", false, "re-read the written table and check the row count")
	_ = viper.BindPFlag("output", convertCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("verify", convertCmd.Flags().Lookup("verify"))

	rootCmd.AddCommand(convertCmd)
}

func runConvert(ctx context.Context, input, output string, verify bool, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	pipeline := conversions.Pipeline{Extractor: extract.DocxExtractor{}}
	rows, err := pipeline.Convert(ctx, input, output)
	if err != nil {
		return err
	}

	if verify {
		f, err := os.Open(output)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		defer f.Close()
		records, err := table.Read(f)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		if len(records) != rows {
			return fmt.Errorf("verify: wrote %d rows, read back %d", rows, len(records))
		}
	}

	fmt.Fprintf(stdout, "wrote %d rows to %s\n", rows, output)
	return nil
}

func defaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".csv"
}
