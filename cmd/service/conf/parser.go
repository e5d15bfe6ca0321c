package conf

import (
	"os"
	"strconv"

	"github.com/n0rdy/mockdata/cmd/utils"
	"github.com/n0rdy/mockdata/common"
	"github.com/n0rdy/mockdata/generator"
	"github.com/n0rdy/mockdata/logger"
	"github.com/n0rdy/mockdata/refdata"
	"gopkg.in/yaml.v3"
)

const (
	defaultHost      = "localhost"
	defaultLogLevel  = "info"
	defaultTimeoutMs = 1000
	maxLikelihood    = 100
)

type Parser struct {
}

// Parse reads and validates the YAML file at confPath. An empty path yields
// the defaults.
func (p Parser) Parse(confPath string) (*common.Conf, error) {
	conf := &common.Conf{}
	if confPath == "" {
		err := p.validate(conf)
		return conf, err
	}

	confAsBytes, err := os.ReadFile(confPath)
	if err != nil {
		logger.Error("failed to open configuration file ["+confPath+"]", err)
		return nil, err
	}

	err = yaml.Unmarshal(confAsBytes, conf)
	if err != nil {
		logger.Error("failed to parse configuration file ["+confPath+"]", err)
		return nil, err
	}

	err = p.validate(conf)
	if err != nil {
		return nil, err
	}
	return conf, nil
}

func (p Parser) validate(conf *common.Conf) error {
	if conf.Server == nil {
		conf.Server = &common.Server{}
	}
	if conf.Server.Host == "" {
		conf.Server.Host = defaultHost
	}
	if conf.Server.Port == 0 {
		conf.Server.Port = utils.DefaultPort
	}
	if conf.Server.Port < 0 || conf.Server.Port > 65535 {
		logger.Error("Invalid server port: should be in range [0, 65535], got: [" + strconv.Itoa(conf.Server.Port) + "]")
		return utils.ErrInvalidConfigFile
	}

	if conf.Logging == nil {
		conf.Logging = &common.Logging{}
	}
	if conf.Logging.Level == "" {
		conf.Logging.Level = defaultLogLevel
	}
	if _, err := logger.ParseLevel(conf.Logging.Level); err != nil {
		logger.Error("Unsupported log level [" + conf.Logging.Level + "]: expected one of trace, debug, info, warn, error")
		return utils.ErrInvalidConfigFile
	}

	if conf.ReferenceData == nil {
		conf.ReferenceData = &common.ReferenceData{}
	}
	if conf.ReferenceData.TimeoutMs < 0 {
		logger.Error("Invalid reference data timeout ms: should be non-negative, got: [" + strconv.FormatInt(conf.ReferenceData.TimeoutMs, 10) + "]")
		return utils.ErrInvalidConfigFile
	}
	if conf.ReferenceData.TimeoutMs == 0 {
		logger.Debug("Reference data timeout is not provided, assuming [1000] ms as the default value")
		conf.ReferenceData.TimeoutMs = defaultTimeoutMs
	}
	if conf.ReferenceData.LoadLimit < 0 {
		logger.Error("Invalid reference data load limit: should be non-negative, got: [" + strconv.Itoa(conf.ReferenceData.LoadLimit) + "]")
		return utils.ErrInvalidConfigFile
	}
	if conf.ReferenceData.LoadLimit == 0 {
		conf.ReferenceData.LoadLimit = refdata.DefaultLoadLimit
	}

	if conf.Generator == nil {
		conf.Generator = &common.Generator{}
	}
	gen := conf.Generator
	if gen.FirstNameMaxRank < 0 || gen.LastNameMaxRank < 0 {
		logger.Error("Invalid name rank ceiling: should be non-negative, got: [" + strconv.Itoa(gen.FirstNameMaxRank) + ", " + strconv.Itoa(gen.LastNameMaxRank) + "]")
		return utils.ErrInvalidConfigFile
	}
	if gen.FirstNameMaxRank == 0 {
		gen.FirstNameMaxRank = generator.DefaultFirstNameMaxRank
	}
	if gen.LastNameMaxRank == 0 {
		gen.LastNameMaxRank = generator.DefaultLastNameMaxRank
	}
	if !validLikelihood(gen.SecondaryLineLikelihood) {
		logger.Error("Invalid secondary line likelihood: should be in range [1, 100], got: [" + strconv.Itoa(gen.SecondaryLineLikelihood) + "]")
		return utils.ErrInvalidConfigFile
	}
	if gen.SecondaryLineLikelihood == 0 {
		gen.SecondaryLineLikelihood = generator.DefaultSecondaryLineLikelihood
	}
	if !validLikelihood(gen.SelfEmployedLikelihood) {
		logger.Error("Invalid self employed likelihood: should be in range [1, 100], got: [" + strconv.Itoa(gen.SelfEmployedLikelihood) + "]")
		return utils.ErrInvalidConfigFile
	}
	if gen.SelfEmployedLikelihood == 0 {
		gen.SelfEmployedLikelihood = generator.DefaultSelfEmployedLikelihood
	}
	return nil
}

// zero is accepted and later replaced with the default
func validLikelihood(likely int) bool {
	return likely >= 0 && likely <= maxLikelihood
}
