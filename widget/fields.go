package widget

import (
	"bytes"
	"encoding/json"
)

// Keys of the fields returned by the lookup endpoint.
const (
	FieldCountryCode = "country_code"
	FieldCountryName = "country_name"
	FieldCity        = "city"
	FieldIP          = "ip"
	FieldLatitude    = "lat"
	FieldLongitude   = "lng"
)

// Field is a key of the lookup response and its human label.
type Field struct {
	Key   string
	Label string
}

// FieldCatalog is an ordered set of fields. Order matters: plugin
// renders details in this order if caller has not chosen fields.
type FieldCatalog []Field

// Keys returns field keys in catalog order.
func (f FieldCatalog) Keys() []string {
	rv := make([]string, 0, len(f))

	for _, v := range f {
		rv = append(rv, v.Key)
	}

	return rv
}

// Label returns a label of the field.
func (f FieldCatalog) Label(key string) (string, bool) {
	for _, v := range f {
		if v.Key == key {
			return v.Label, true
		}
	}

	return "", false
}

// MarshalJSON is to conform json.Marshaller interface. Result is a JSON
// object with keys in catalog order.
func (f FieldCatalog) MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}

	buf.WriteByte('{')

	for i, v := range f {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(v.Key)
		if err != nil {
			return nil, err
		}

		label, err := json.Marshal(v.Label)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(label)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// NewFieldCatalog returns a default catalog with labels resolved by
// translator.
func NewFieldCatalog(translator Translator) FieldCatalog {
	return FieldCatalog{
		{Key: FieldCountryCode, Label: translator.Translate(MsgCountryCode)},
		{Key: FieldCountryName, Label: translator.Translate(MsgCountryName)},
		{Key: FieldCity, Label: translator.Translate(MsgCity)},
		{Key: FieldIP, Label: translator.Translate(MsgIPAddress)},
		{Key: FieldLatitude, Label: translator.Translate(MsgLatitude)},
		{Key: FieldLongitude, Label: translator.Translate(MsgLongitude)},
	}
}
