package xmlp

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Code string `xml:"code"`
}

func TestMarshal_Map(t *testing.T) {
	out, err := Marshal(map[string]interface{}{"value": "123-456-7890"}, "response", "")
	require.NoError(t, err)
	assert.Equal(t, "<response><value>123-456-7890</value></response>", string(out))
}

func TestMarshal_Struct(t *testing.T) {
	out, err := Marshal(item{Code: "AR"}, "state", "")
	require.NoError(t, err)
	assert.Equal(t, "<state><code>AR</code></state>", string(out))
}

func TestMarshal_Slice(t *testing.T) {
	out, err := Marshal([]item{{Code: "AR"}, {Code: "TX"}}, "states", "state")
	require.NoError(t, err)
	assert.Equal(t, "<states><state><code>AR</code></state><state><code>TX</code></state></states>", string(out))

	var decoded struct {
		XMLName xml.Name `xml:"states"`
		States  []item   `xml:"state"`
	}
	require.NoError(t, xml.Unmarshal(out, &decoded))
	assert.Len(t, decoded.States, 2)
}

func TestMarshal_SliceOfMaps(t *testing.T) {
	out, err := Marshal([]interface{}{
		map[string]interface{}{"value": "a"},
		map[string]interface{}{"value": "b"},
	}, "items", "response")
	require.NoError(t, err)
	assert.Equal(t, "<items><response><value>a</value></response><response><value>b</value></response></items>", string(out))
}
