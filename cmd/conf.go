package cmd

import (
	"github.com/n0rdy/mockdata/cmd/service/conf"
	"github.com/n0rdy/mockdata/cmd/utils"
	"github.com/n0rdy/mockdata/common"
	"github.com/n0rdy/mockdata/logger"
	"github.com/spf13/cobra"
)

// parseConf reads the --config file and applies the logging level it sets.
func parseConf(cmd *cobra.Command, commandName string) (*common.Conf, error) {
	confPath, err := cmd.Flags().GetString(utils.ConfigFlag)
	if err != nil {
		logger.Error(commandName+" command: error while parsing flag: "+utils.ConfigFlag, err)
		return nil, utils.ErrWrongFormattedStringFlag(utils.ConfigFlag)
	}

	c, err := conf.Parser{}.Parse(confPath)
	if err != nil {
		return nil, err
	}

	level, err := logger.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)
	return c, nil
}
