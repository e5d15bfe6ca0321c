package refdata

import (
	"bytes"
	"encoding/gob"
)

func init() {
	gob.Register(FirstName{})
	gob.Register(LastName{})
	gob.Register(ZipRecord{})
}

func serialize[T FirstName | LastName | ZipRecord](obj T) ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)

	err := enc.Encode(obj)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func deserialize[T FirstName | LastName | ZipRecord](data []byte, obj *T) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)

	err := dec.Decode(obj)
	if err != nil {
		return err
	}
	return nil
}
