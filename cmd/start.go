package cmd

import (
	"github.com/n0rdy/mockdata/cmd/service/engine"
	"github.com/n0rdy/mockdata/cmd/utils"
	"github.com/n0rdy/mockdata/httpserver"
	"github.com/n0rdy/mockdata/logger"
	mockdatautils "github.com/n0rdy/mockdata/utils"
	"github.com/spf13/cobra"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the mockdata HTTP API",
	Long: `Start the mockdata HTTP API.

The server listens on the port from the "--port" flag, or the one from the configuration file, or 14242 by default.
Reference data is read from the bbolt file created by "mockdata load" when it exists, otherwise the embedded dataset is used.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseConf(cmd, "start")
		if err != nil {
			return err
		}

		if cmd.Flags().Changed(utils.PortFlag) {
			port, err := cmd.Flags().GetInt(utils.PortFlag)
			if err != nil {
				logger.Error("start command: error while parsing flag: "+utils.PortFlag, err)
				return utils.ErrWrongFormattedIntFlag(utils.PortFlag)
			}
			if port < 0 || port > 65535 {
				logger.Error("start command: invalid port", utils.ErrCmdInvalidPort)
				return utils.ErrCmdInvalidPort
			}
			c.Server.Port = port
		}

		e, err := engine.New(c)
		if err != nil {
			logger.Error("start command: failed to prepare the generator", err)
			return err
		}
		defer e.Close()

		return httpserver.Start(c, e.Generator, e.Info, mockdatautils.OpenApiSpecContent)
	},
}

func init() {
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().IntP(utils.PortFlag, "p", utils.DefaultPort, "Port to start the server on")
	startCmd.Flags().StringP(utils.ConfigFlag, "c", "", "Path to the configuration file")
}
