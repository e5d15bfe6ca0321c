package utils

import (
	"errors"
	"fmt"
)

const (
	errWrongFormattedIntFlagTemplate    = "wrong formatted flag [%s] - expected to be of type int32"
	errWrongFormattedStringFlagTemplate = "wrong formatted flag [%s] - expected to be of type string"
	errUnsupportedFlagValueTemplate     = "unsupported value [%s] for flag [%s] - expected one of %v"
)

var (
	ErrCmdInvalidPort    = errors.New("port should be provided as an integer value in range [0, 65535]")
	ErrCmdInvalidCount   = errors.New("count should be a positive integer")
	ErrInvalidConfigFile = errors.New("invalid config file")
	ErrUnknownEntity     = errors.New("unknown entity")
)

func ErrWrongFormattedIntFlag(flagName string) error {
	return errors.New(fmt.Sprintf(errWrongFormattedIntFlagTemplate, flagName))
}

func ErrWrongFormattedStringFlag(flagName string) error {
	return errors.New(fmt.Sprintf(errWrongFormattedStringFlagTemplate, flagName))
}

func ErrUnsupportedFlagValue(flagName string, value string, supported []string) error {
	return errors.New(fmt.Sprintf(errUnsupportedFlagValueTemplate, value, flagName, supported))
}
