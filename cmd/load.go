package cmd

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/n0rdy/mockdata/cmd/service/engine"
	"github.com/n0rdy/mockdata/cmd/utils"
	"github.com/n0rdy/mockdata/common"
	"github.com/n0rdy/mockdata/logger"
	"github.com/n0rdy/mockdata/refdata"
	"github.com/spf13/cobra"
)

// loadCmd represents the load command
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Import the reference data files into the mockdata database",
	Long: `Import the reference data files into the mockdata database.

The command reads the census name files, the street list, the state abbreviations and the zip code database
from the directory specified by the "--dir" flag. If the flag is not provided, the embedded files are used.

The data is written to the bbolt file specified by the "--db" flag, or the one from the configuration file,
or the OS-specific data directory by default. Any previously imported data is replaced.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseConf(cmd, "load")
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		dir, err := flags.GetString(utils.DirFlag)
		if err != nil {
			return utils.ErrWrongFormattedStringFlag(utils.DirFlag)
		}
		if flags.Changed(utils.DbFlag) {
			dbPath, err := flags.GetString(utils.DbFlag)
			if err != nil {
				return utils.ErrWrongFormattedStringFlag(utils.DbFlag)
			}
			c.ReferenceData.DbPath = dbPath
		}
		if flags.Changed(utils.LimitFlag) {
			limit, err := flags.GetInt(utils.LimitFlag)
			if err != nil {
				return utils.ErrWrongFormattedIntFlag(utils.LimitFlag)
			}
			c.ReferenceData.LoadLimit = limit
		}

		var fsys fs.FS
		if dir == "" {
			logger.Info("load command: no directory provided, importing the embedded reference data")
			fsys = refdata.DefaultFS()
		} else {
			fsys = os.DirFS(dir)
		}

		counts, err := load(fsys, c.ReferenceData)
		if err != nil {
			return err
		}
		logger.Info("load command: imported " +
			strconv.Itoa(counts.FirstNames) + " first names, " +
			strconv.Itoa(counts.LastNames) + " last names, " +
			strconv.Itoa(counts.Streets) + " streets and " +
			strconv.Itoa(counts.Zipcodes) + " zip codes into [" + engine.DbPath(c.ReferenceData) + "]")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringP(utils.DirFlag, "d", "", "Path to the folder with the reference data files")
	loadCmd.Flags().String(utils.DbFlag, "", "Path to the bbolt file to import the data into")
	loadCmd.Flags().Int(utils.LimitFlag, refdata.DefaultLoadLimit, "Maximum number of rows imported per name file, 0 imports all of them")
	loadCmd.Flags().StringP(utils.ConfigFlag, "c", "", "Path to the configuration file")
}

func load(fsys fs.FS, conf *common.ReferenceData) (refdata.Counts, error) {
	ds, err := refdata.LoadDataset(fsys, conf.LoadLimit)
	if err != nil {
		logger.Error("load command: failed to read the reference data files", err)
		return refdata.Counts{}, err
	}

	dbPath := engine.DbPath(conf)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		logger.Error("load command: failed to create the directory for ["+dbPath+"]", err)
		return refdata.Counts{}, err
	}

	bs, err := refdata.OpenBoltStore(refdata.BoltConfig{
		Path:    dbPath,
		Timeout: time.Duration(conf.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		logger.Error("load command: failed to open ["+dbPath+"]", err)
		return refdata.Counts{}, err
	}
	defer bs.Close()

	if err := bs.Import(ds); err != nil {
		logger.Error("load command: failed to import the reference data", err)
		return refdata.Counts{}, err
	}
	return bs.Counts()
}
