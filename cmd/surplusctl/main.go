// Command surplusctl converts surplus-sale Word documents to CSV without
// running the HTTP server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "surplusctl",
	Short: "Convert surplus-sale Word documents to CSV",
	Long: `surplusctl runs the same extraction and row mapping as the upload server.
Every non-blank line of the document becomes one CSV row with the 18-column
surplus sale schema.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.SetEnvPrefix("SURPLUSCTL")
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
