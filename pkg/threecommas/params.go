package threecommas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Param is a single entry of a parameter bag.
type Param struct {
	Key   string
	Value any
}

// Params is an ordered parameter bag. Keys may use the caller-facing
// camelCase convention; they are converted with SnakeCase before signing.
// Insertion order is preserved on the wire and in the signed string.
type Params []Param

// Add appends key=value and returns the extended bag.
func (p Params) Add(key string, value any) Params {
	return append(p, Param{Key: key, Value: value})
}

// Canonical returns a copy of the bag with every key converted to its wire
// name. Two keys that convert to the same wire name are rejected.
func (p Params) Canonical() (Params, error) {
	out := make(Params, 0, len(p))
	seen := make(map[string]string, len(p))
	for _, kv := range p {
		wire := SnakeCase(kv.Key)
		if prev, ok := seen[wire]; ok {
			return nil, &EncodingError{
				Key: kv.Key,
				Err: fmt.Errorf("%w: %q and %q both encode as %q", ErrDuplicateKey, prev, kv.Key, wire),
			}
		}
		seen[wire] = kv.Key
		out = append(out, Param{Key: wire, Value: kv.Value})
	}
	return out, nil
}

// Encode returns the canonical query string: URL-encoded key=value pairs
// joined with "&" in insertion order. An empty bag encodes to "".
func (p Params) Encode() (string, error) {
	canon, err := p.Canonical()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, kv := range canon {
		v, err := Stringify(kv.Value)
		if err != nil {
			return "", &EncodingError{Key: kv.Key, Err: err}
		}
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v))
	}
	return b.String(), nil
}

// MarshalJSON encodes the bag as a JSON object with wire keys in insertion
// order. Values may be any JSON-encodable type, including nested objects.
func (p Params) MarshalJSON() ([]byte, error) {
	canon, err := p.Canonical()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range canon {
		if isNil(kv.Value) {
			return nil, &EncodingError{Key: kv.Key, Err: fmt.Errorf("%w: nil %T", ErrUnsupportedValue, kv.Value)}
		}
		key, err := json.Marshal(kv.Key)
		if err != nil {
			return nil, &EncodingError{Key: kv.Key, Err: err}
		}
		val, err := json.Marshal(kv.Value)
		if err != nil {
			return nil, &EncodingError{Key: kv.Key, Err: fmt.Errorf("%w: %w", ErrUnsupportedValue, err)}
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

var stringerType = reflect.TypeFor[fmt.Stringer]()

// isNil reports whether v is nil or a typed nil pointer, map, slice or
// interface. A typed nil must be caught before a value-receiver String is
// called through it.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Stringify renders a parameter value the way it appears on the wire.
// Scalars use their plain text form, arrays and slices of scalars are joined
// with ",", and nil, maps, structs and nested slices are rejected with
// ErrUnsupportedValue.
func Stringify(v any) (string, error) {
	if isNil(v) {
		return "", fmt.Errorf("%w: nil %T", ErrUnsupportedValue, v)
	}

	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case bool:
		return strconv.FormatBool(x), nil
	case decimal.Decimal:
		return x.String(), nil
	case time.Time:
		return x.UTC().Format(time.RFC3339), nil
	case fmt.Stringer:
		return x.String(), nil
	}
	return stringifyValue(reflect.ValueOf(v), true)
}

func stringifyValue(rv reflect.Value, allowList bool) (string, error) {
	if rv.Type().Implements(stringerType) && rv.Kind() != reflect.Pointer {
		return rv.Interface().(fmt.Stringer).String(), nil
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return "", fmt.Errorf("%w: nil %s", ErrUnsupportedValue, rv.Type())
		}
		return Stringify(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if !allowList {
			return "", fmt.Errorf("%w: nested %s", ErrUnsupportedValue, rv.Type())
		}
		parts := make([]string, rv.Len())
		for i := range rv.Len() {
			elem := rv.Index(i)
			if elem.Kind() == reflect.Interface {
				if elem.IsNil() {
					return "", fmt.Errorf("%w: nil element", ErrUnsupportedValue)
				}
				elem = elem.Elem()
			}
			s, err := stringifyValue(elem, false)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return strings.Join(parts, ","), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedValue, rv.Type())
	}
}
