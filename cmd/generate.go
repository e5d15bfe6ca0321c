package cmd

import (
	"encoding/json"
	"io"
	"sort"
	"strings"

	"github.com/n0rdy/mockdata/cmd/service/engine"
	"github.com/n0rdy/mockdata/cmd/utils"
	"github.com/n0rdy/mockdata/generator"
	"github.com/n0rdy/mockdata/httpserver/utils/xmlp"
	"github.com/n0rdy/mockdata/logger"
	"github.com/n0rdy/mockdata/refdata"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	jsonFormat = "json"
	yamlFormat = "yaml"
	xmlFormat  = "xml"

	xmlListRoot  = "items"
	xmlValueRoot = "response"
)

type generateOptions struct {
	state    string
	zip      string
	gender   refdata.Gender
	tollFree bool
	weighted bool
}

type entityGenerator struct {
	xmlRoot  string
	generate func(gen *generator.Generator, opts generateOptions) (interface{}, error)
}

func scalar(value string, err error) (interface{}, error) {
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"value": value}, nil
}

var entityGenerators = map[string]entityGenerator{
	"person": {xmlRoot: "person", generate: func(gen *generator.Generator, opts generateOptions) (interface{}, error) {
		return gen.Person(opts.state)
	}},
	"name": {xmlRoot: "name", generate: func(gen *generator.Generator, opts generateOptions) (interface{}, error) {
		return gen.FullName(opts.gender)
	}},
	"address": {xmlRoot: "address", generate: func(gen *generator.Generator, opts generateOptions) (interface{}, error) {
		return gen.Address(opts.state, opts.zip)
	}},
	"state": {xmlRoot: "state", generate: func(gen *generator.Generator, opts generateOptions) (interface{}, error) {
		return gen.State(opts.state)
	}},
	"phone": {xmlRoot: xmlValueRoot, generate: func(gen *generator.Generator, opts generateOptions) (interface{}, error) {
		return scalar(gen.Phone(opts.state, opts.zip, opts.tollFree))
	}},
	"ssn": {xmlRoot: xmlValueRoot, generate: func(gen *generator.Generator, opts generateOptions) (interface{}, error) {
		return scalar(gen.SSN(opts.state))
	}},
	"internet": {xmlRoot: "internet", generate: func(gen *generator.Generator, opts generateOptions) (interface{}, error) {
		return gen.Internet(nil, "")
	}},
	"credit-card": {xmlRoot: "credit_card", generate: func(gen *generator.Generator, opts generateOptions) (interface{}, error) {
		return gen.CreditCard(opts.weighted), nil
	}},
	"bank-account": {xmlRoot: "bank_account", generate: func(gen *generator.Generator, opts generateOptions) (interface{}, error) {
		return gen.BankAccount(), nil
	}},
	"driver-license": {xmlRoot: "driver_license", generate: func(gen *generator.Generator, opts generateOptions) (interface{}, error) {
		return gen.DriverLicense(opts.state, 0, 0)
	}},
	"guid": {xmlRoot: xmlValueRoot, generate: func(gen *generator.Generator, opts generateOptions) (interface{}, error) {
		return scalar(gen.GUID(), nil)
	}},
	"hash": {xmlRoot: xmlValueRoot, generate: func(gen *generator.Generator, opts generateOptions) (interface{}, error) {
		return scalar(gen.UniqueHash(), nil)
	}},
}

func entityNames() []string {
	names := make([]string, 0, len(entityGenerators))
	for name := range entityGenerators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func supportedFormats() []string {
	return []string{jsonFormat, yamlFormat, xmlFormat}
}

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <entity>",
	Short: "Generate fake records and print them",
	Long: `Generate fake records and print them to the standard output.

Supported entities: ` + strings.Join(entityNames(), ", ") + `.

Examples:
  mockdata generate person --state AR
  mockdata generate address --zip 72034 --format yaml
  mockdata generate name --gender F --count 5
  mockdata generate credit-card --unweighted --seed 42
`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: entityNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseConf(cmd, "generate")
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed(utils.SeedFlag) {
			seed, err := flags.GetUint64(utils.SeedFlag)
			if err != nil {
				logger.Error("generate command: error while parsing flag: "+utils.SeedFlag, err)
				return utils.ErrWrongFormattedIntFlag(utils.SeedFlag)
			}
			c.Generator.Seed = seed
		}

		count, err := flags.GetInt(utils.CountFlag)
		if err != nil {
			return utils.ErrWrongFormattedIntFlag(utils.CountFlag)
		}
		format, err := flags.GetString(utils.FormatFlag)
		if err != nil {
			return utils.ErrWrongFormattedStringFlag(utils.FormatFlag)
		}
		opts, err := parseGenerateOptions(cmd)
		if err != nil {
			return err
		}

		e, err := engine.New(c)
		if err != nil {
			logger.Error("generate command: failed to prepare the generator", err)
			return err
		}
		defer e.Close()

		return runGenerate(e.Generator, cmd.OutOrStdout(), args[0], opts, count, format)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP(utils.StateFlag, "s", "", "Two-letter state code to generate the record for")
	generateCmd.Flags().StringP(utils.ZipFlag, "z", "", "Zip code to generate the address or phone for")
	generateCmd.Flags().StringP(utils.GenderFlag, "g", "", "Gender of the generated name: F or M")
	generateCmd.Flags().IntP(utils.CountFlag, "n", 1, "Number of records to generate")
	generateCmd.Flags().StringP(utils.FormatFlag, "f", jsonFormat, "Output format: json, yaml or xml")
	generateCmd.Flags().StringP(utils.ConfigFlag, "c", "", "Path to the configuration file")
	generateCmd.Flags().Uint64(utils.SeedFlag, 0, "Seed for reproducible output, 0 picks a random one")
	generateCmd.Flags().Bool(utils.TollFreeFlag, false, "Allow toll-free area codes for phone numbers")
	generateCmd.Flags().Bool(utils.UnweightedFlag, false, "Pick credit card types uniformly instead of by market share")
}

func parseGenerateOptions(cmd *cobra.Command) (generateOptions, error) {
	flags := cmd.Flags()

	state, err := flags.GetString(utils.StateFlag)
	if err != nil {
		return generateOptions{}, utils.ErrWrongFormattedStringFlag(utils.StateFlag)
	}
	zip, err := flags.GetString(utils.ZipFlag)
	if err != nil {
		return generateOptions{}, utils.ErrWrongFormattedStringFlag(utils.ZipFlag)
	}
	gender, err := flags.GetString(utils.GenderFlag)
	if err != nil {
		return generateOptions{}, utils.ErrWrongFormattedStringFlag(utils.GenderFlag)
	}
	tollFree, err := flags.GetBool(utils.TollFreeFlag)
	if err != nil {
		return generateOptions{}, err
	}
	unweighted, err := flags.GetBool(utils.UnweightedFlag)
	if err != nil {
		return generateOptions{}, err
	}

	opts := generateOptions{
		state:    strings.ToUpper(strings.TrimSpace(state)),
		zip:      strings.TrimSpace(zip),
		gender:   refdata.Gender(strings.ToUpper(strings.TrimSpace(gender))),
		tollFree: tollFree,
		weighted: !unweighted,
	}
	if opts.gender != "" && !opts.gender.Valid() {
		return generateOptions{}, utils.ErrUnsupportedFlagValue(utils.GenderFlag, gender, []string{string(refdata.Female), string(refdata.Male)})
	}
	return opts, nil
}

func runGenerate(gen *generator.Generator, w io.Writer, entity string, opts generateOptions, count int, format string) error {
	eg, ok := entityGenerators[entity]
	if !ok {
		logger.Error("generate command: unknown entity ["+entity+"], expected one of: "+strings.Join(entityNames(), ", "), utils.ErrUnknownEntity)
		return utils.ErrUnknownEntity
	}
	if count < 1 {
		return utils.ErrCmdInvalidCount
	}
	format = strings.ToLower(format)
	if format != jsonFormat && format != yamlFormat && format != xmlFormat {
		return utils.ErrUnsupportedFlagValue(utils.FormatFlag, format, supportedFormats())
	}

	items := make([]interface{}, 0, count)
	for i := 0; i < count; i++ {
		item, err := eg.generate(gen, opts)
		if err != nil {
			logger.Error("generate command: failed to generate "+entity, err)
			return err
		}
		items = append(items, item)
	}

	var out []byte
	var err error
	if count == 1 {
		out, err = encode(format, items[0], eg.xmlRoot, "")
	} else {
		out, err = encode(format, items, xmlListRoot, eg.xmlRoot)
	}
	if err != nil {
		logger.Error("generate command: failed to encode the output as "+format, err)
		return err
	}

	if _, err = w.Write(out); err != nil {
		return err
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		_, err = w.Write([]byte("\n"))
	}
	return err
}

func encode(format string, payload interface{}, xmlRoot string, xmlItem string) ([]byte, error) {
	switch format {
	case yamlFormat:
		return yaml.Marshal(payload)
	case xmlFormat:
		return xmlp.Marshal(payload, xmlRoot, xmlItem)
	default:
		return json.MarshalIndent(payload, "", "  ")
	}
}
