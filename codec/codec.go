// Package codec converts overlay records to and from their JSON wire form.
package codec

import (
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// Decode reads one record. Errors name the record type.
func Decode[T any](bz []byte) (T, error) {
	var v T
	if err := json.Unmarshal(bz, &v); err != nil {
		return v, eris.Wrapf(err, "decode %T", v)
	}
	return v, nil
}

// Encode writes one record. NaN and infinite numbers have no JSON form and
// fail here.
func Encode(v any) ([]byte, error) {
	bz, err := json.Marshal(v)
	if err != nil {
		return nil, eris.Wrapf(err, "encode %T", v)
	}
	return bz, nil
}

// DecodeSlice decodes a JSON array of records, as sent when an element's
// overlays are synchronised in bulk.
func DecodeSlice[T any](bz []byte) ([]T, error) {
	var vs []T
	if err := json.Unmarshal(bz, &vs); err != nil {
		var zero T
		return nil, eris.Wrapf(err, "decode []%T", zero)
	}
	return vs, nil
}
