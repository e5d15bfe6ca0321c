package xmlp

import (
	"bytes"
	"encoding/xml"
	"reflect"

	"github.com/clbanning/mxj/v2"
)

// Marshal encodes payload as XML under the root element. Slices are wrapped in
// root with one itemName element per entry.
func Marshal(payload interface{}, root string, itemName string) ([]byte, error) {
	// default Go XML marshaling doesn't support `map` data type, that's why we need to fullback to MXJ library for such cases
	if payloadCasted, ok := payload.(map[string]interface{}); ok {
		return mxj.Map(payloadCasted).Xml(root)
	}

	var buf bytes.Buffer
	value := reflect.ValueOf(payload)
	if value.Kind() == reflect.Slice || value.Kind() == reflect.Array {
		buf.WriteString("<" + root + ">")
		for i := 0; i < value.Len(); i++ {
			item, err := Marshal(value.Index(i).Interface(), itemName, "")
			if err != nil {
				return nil, err
			}
			buf.Write(item)
		}
		buf.WriteString("</" + root + ">")
		return buf.Bytes(), nil
	}

	enc := xml.NewEncoder(&buf)
	if err := enc.EncodeElement(payload, xml.StartElement{Name: xml.Name{Local: root}}); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
