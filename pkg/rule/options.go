package rule

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
)

// ErrNoOptions is returned when options are given to a rule without a schema.
var ErrNoOptions = errors.New("rule accepts no options")

// DecodeOptions validates raw against def's schema and returns the typed options.
//
// raw may be nil, an options map, or an ESLint-style options array whose
// first element is the map. Unknown keys and mistyped values are errors.
func DecodeOptions(def *Definition, raw any) (any, error) {
	raw, err := unwrapOptions(raw)
	if err != nil {
		return nil, err
	}

	if def.Schema == nil {
		if raw != nil {
			return nil, ErrNoOptions
		}
		return nil, nil
	}

	result := def.Schema()
	if raw == nil {
		return result, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      result,
		TagName:     "mapstructure",
		ErrorUnused: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create options decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, errors.Wrap(err, "decode options")
	}
	return result, nil
}

func unwrapOptions(raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}

	v := reflect.ValueOf(raw)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		switch v.Len() {
		case 0:
			return nil, nil
		case 1:
			return unwrapOptions(v.Index(0).Interface())
		default:
			return nil, errors.Newf("expected a single options object, got %d elements", v.Len())
		}
	case reflect.Map:
		if v.Len() == 0 {
			return nil, nil
		}
		return raw, nil
	default:
		return nil, errors.Newf("expected an options object, got %T", raw)
	}
}
