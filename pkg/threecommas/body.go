package threecommas

import (
	"bytes"
	"fmt"
	"mime/multipart"
)

// BodyEncoding selects how a request payload is put on the wire.
type BodyEncoding int

const (
	// BodyMultipart sends one multipart/form-data field per parameter.
	BodyMultipart BodyEncoding = iota
	// BodyJSON sends the parameters as a single JSON object.
	BodyJSON
)

func (e BodyEncoding) String() string {
	switch e {
	case BodyMultipart:
		return "multipart"
	case BodyJSON:
		return "json"
	default:
		return fmt.Sprintf("BodyEncoding(%d)", int(e))
	}
}

// Body is a request payload. The payload is never part of the signed string;
// only the path and the query are signed.
type Body interface {
	Encode() (contentType string, payload []byte, err error)
}

// NewBody wraps p in the given encoding. An empty bag yields a nil Body so
// the request is sent without a payload.
func NewBody(enc BodyEncoding, p Params) Body {
	if len(p) == 0 {
		return nil
	}
	if enc == BodyJSON {
		return JSONBody(p)
	}
	return FormBody(p)
}

// FormBody encodes parameters as multipart/form-data: one field per key,
// value stringified with Stringify.
type FormBody Params

// Encode implements Body.
func (f FormBody) Encode() (string, []byte, error) {
	canon, err := Params(f).Canonical()
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, kv := range canon {
		v, err := Stringify(kv.Value)
		if err != nil {
			return "", nil, &EncodingError{Key: kv.Key, Err: err}
		}
		if err := w.WriteField(kv.Key, v); err != nil {
			return "", nil, fmt.Errorf("writing form field %q: %w", kv.Key, err)
		}
	}
	if err := w.Close(); err != nil {
		return "", nil, fmt.Errorf("closing multipart body: %w", err)
	}
	return w.FormDataContentType(), buf.Bytes(), nil
}

// JSONBody encodes parameters as a JSON object in insertion order.
type JSONBody Params

// Encode implements Body.
func (j JSONBody) Encode() (string, []byte, error) {
	data, err := Params(j).MarshalJSON()
	if err != nil {
		return "", nil, err
	}
	return "application/json", data, nil
}
