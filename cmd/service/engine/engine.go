// Package engine wires the reference data store and the generator from the
// parsed configuration.
package engine

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/n0rdy/mockdata/common"
	"github.com/n0rdy/mockdata/generator"
	"github.com/n0rdy/mockdata/httpserver/models"
	"github.com/n0rdy/mockdata/logger"
	"github.com/n0rdy/mockdata/refdata"
	"github.com/n0rdy/mockdata/utils"
)

const (
	EmbeddedSource   = "embedded"
	BoltSourcePrefix = "bolt:"
)

type Engine struct {
	Generator *generator.Generator
	Info      models.InfoResponse
	closer    func() error
}

// New opens the bbolt file read-only when it exists, and falls back to the
// embedded dataset otherwise.
func New(conf *common.Conf) (*Engine, error) {
	rnd := generator.NewRandom(conf.Generator.Seed)

	store, info, closer, err := openStore(conf.ReferenceData, rnd)
	if err != nil {
		return nil, err
	}

	gen := generator.New(store,
		generator.WithRandom(rnd),
		generator.WithFirstNameMaxRank(conf.Generator.FirstNameMaxRank),
		generator.WithLastNameMaxRank(conf.Generator.LastNameMaxRank),
		generator.WithSecondaryLineLikelihood(conf.Generator.SecondaryLineLikelihood),
		generator.WithSelfEmployedLikelihood(conf.Generator.SelfEmployedLikelihood),
	)
	return &Engine{Generator: gen, Info: info, closer: closer}, nil
}

func (e *Engine) Close() error {
	if e.closer == nil {
		return nil
	}
	return e.closer()
}

// DbPath resolves the configured bbolt path, defaulting to the OS data dir.
func DbPath(conf *common.ReferenceData) string {
	if conf != nil && conf.DbPath != "" {
		return conf.DbPath
	}
	return utils.DefaultDbPath()
}

func openStore(conf *common.ReferenceData, picker refdata.Picker) (refdata.Store, models.InfoResponse, func() error, error) {
	dbPath := DbPath(conf)

	_, err := os.Stat(dbPath)
	switch {
	case err == nil:
		logger.Info("reference data: using bbolt file [" + dbPath + "]")
		bs, err := refdata.OpenBoltStore(refdata.BoltConfig{
			Path:     dbPath,
			Timeout:  time.Duration(conf.TimeoutMs) * time.Millisecond,
			ReadOnly: true,
		}, refdata.WithPicker(picker))
		if err != nil {
			return nil, models.InfoResponse{}, nil, err
		}

		counts, err := bs.Counts()
		if err != nil {
			bs.Close()
			return nil, models.InfoResponse{}, nil, err
		}
		return bs, models.InfoResponse{Source: BoltSourcePrefix + dbPath, Counts: counts}, bs.Close, nil
	case errors.Is(err, fs.ErrNotExist):
		logger.Info("reference data: no bbolt file at [" + dbPath + "], using the embedded dataset")
	default:
		logger.Warn("reference data: cannot access [" + dbPath + "], using the embedded dataset: " + err.Error())
	}

	ds, err := refdata.DefaultDataset()
	if err != nil {
		return nil, models.InfoResponse{}, nil, err
	}
	ms := refdata.NewMemoryStore(ds, refdata.WithPicker(picker))
	return ms, models.InfoResponse{Source: EmbeddedSource, Counts: ms.Counts()}, ms.Close, nil
}
