package cmd

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"testing"
	"time"

	"github.com/n0rdy/mockdata/cmd/utils"
	"github.com/n0rdy/mockdata/generator"
	"github.com/n0rdy/mockdata/refdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestGenerator(t *testing.T, seed uint64) *generator.Generator {
	t.Helper()

	ds, err := refdata.DefaultDataset()
	require.NoError(t, err)

	rnd := generator.NewRandom(seed)
	return generator.New(refdata.NewMemoryStore(ds, refdata.WithPicker(rnd)),
		generator.WithRandom(rnd),
		generator.WithClock(func() time.Time { return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC) }),
	)
}

func TestRunGenerate_EveryEntity(t *testing.T) {
	gen := newTestGenerator(t, 1)

	for _, entity := range entityNames() {
		for _, format := range supportedFormats() {
			t.Run(entity+"/"+format, func(t *testing.T) {
				var out bytes.Buffer
				err := runGenerate(gen, &out, entity, generateOptions{weighted: true}, 2, format)
				require.NoError(t, err)
				assert.NotEmpty(t, out.String())
				assert.Equal(t, byte('\n'), out.Bytes()[out.Len()-1])
			})
		}
	}
}

func TestRunGenerate_SingleJson(t *testing.T) {
	gen := newTestGenerator(t, 3)

	var out bytes.Buffer
	require.NoError(t, runGenerate(gen, &out, "address", generateOptions{zip: "72034"}, 1, "JSON"))

	var address generator.Address
	require.NoError(t, json.Unmarshal(out.Bytes(), &address))
	assert.Equal(t, "Conway", address.City)
	assert.Equal(t, "AR", address.State.Code)
}

func TestRunGenerate_ListYaml(t *testing.T) {
	gen := newTestGenerator(t, 3)

	var out bytes.Buffer
	require.NoError(t, runGenerate(gen, &out, "name", generateOptions{gender: refdata.Male}, 4, yamlFormat))

	var names []generator.FullName
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &names))
	require.Len(t, names, 4)
	for _, name := range names {
		assert.Equal(t, refdata.Male, name.Gender)
	}
}

func TestRunGenerate_ScalarXml(t *testing.T) {
	gen := newTestGenerator(t, 3)

	var out bytes.Buffer
	require.NoError(t, runGenerate(gen, &out, "ssn", generateOptions{state: "AR"}, 1, xmlFormat))

	var resp struct {
		XMLName xml.Name `xml:"response"`
		Value   string   `xml:"value"`
	}
	require.NoError(t, xml.Unmarshal(out.Bytes(), &resp))
	assert.Regexp(t, `^429[0-9]{6}$`, resp.Value)
}

func TestRunGenerate_SameSeedSameOutput(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, runGenerate(newTestGenerator(t, 99), &first, "credit-card", generateOptions{weighted: true}, 5, jsonFormat))
	require.NoError(t, runGenerate(newTestGenerator(t, 99), &second, "credit-card", generateOptions{weighted: true}, 5, jsonFormat))
	assert.Equal(t, first.String(), second.String())
}

func TestRunGenerate_Errors(t *testing.T) {
	gen := newTestGenerator(t, 1)

	var out bytes.Buffer
	assert.ErrorIs(t, runGenerate(gen, &out, "spaceship", generateOptions{}, 1, jsonFormat), utils.ErrUnknownEntity)
	assert.ErrorIs(t, runGenerate(gen, &out, "person", generateOptions{}, 0, jsonFormat), utils.ErrCmdInvalidCount)
	assert.Error(t, runGenerate(gen, &out, "person", generateOptions{}, 1, "toml"))
	assert.ErrorIs(t, runGenerate(gen, &out, "state", generateOptions{state: "ZZ"}, 1, jsonFormat), generator.ErrLookupFailure)
	assert.Empty(t, out.String())
}

func TestParseGenerateOptions(t *testing.T) {
	cmd := generateCmd
	t.Cleanup(func() {
		for _, name := range []string{utils.StateFlag, utils.ZipFlag, utils.GenderFlag, utils.UnweightedFlag, utils.TollFreeFlag} {
			flag := cmd.Flags().Lookup(name)
			flag.Value.Set(flag.DefValue)
			flag.Changed = false
		}
	})

	require.NoError(t, cmd.Flags().Set(utils.StateFlag, " ar "))
	require.NoError(t, cmd.Flags().Set(utils.GenderFlag, "f"))
	require.NoError(t, cmd.Flags().Set(utils.UnweightedFlag, "true"))

	opts, err := parseGenerateOptions(cmd)
	require.NoError(t, err)
	assert.Equal(t, generateOptions{state: "AR", gender: refdata.Female, weighted: false}, opts)

	require.NoError(t, cmd.Flags().Set(utils.GenderFlag, "x"))
	_, err = parseGenerateOptions(cmd)
	assert.Error(t, err)
}
