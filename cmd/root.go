package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "mockdata",
	Version: version,
	Short:   "A tool to generate fake personal and financial records",
	Long: `A tool to generate believable fake personal and financial records: names, addresses, phone numbers,
SSNs, credit cards, bank accounts, driver licenses and complete people.

Run "mockdata help" to see the list of available commands.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	versionTemplate := `{{printf "%s version %s\n" .Name .Version}}`
	rootCmd.SetVersionTemplate(versionTemplate)
}
