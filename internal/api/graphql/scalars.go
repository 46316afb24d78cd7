package graphql

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/99designs/gqlgen/graphql"
)

// Uint64 is the scalar for database ids. Values are transported as strings
// because JavaScript numbers lose precision past 2^53.
type Uint64 = uint64

// MarshalUint64 implements the external marshaler convention gqlgen uses for
// scalars bound to plain Go types.
func MarshalUint64(v uint64) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		_, _ = io.WriteString(w, strconv.Quote(strconv.FormatUint(v, 10)))
	})
}

// UnmarshalUint64 accepts both string and numeric representations.
func UnmarshalUint64(v interface{}) (uint64, error) {
	switch v := v.(type) {
	case string:
		val, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as uint64: %w", v, err)
		}
		return val, nil
	case int:
		if v < 0 {
			return 0, fmt.Errorf("uint64 cannot be negative: %d", v)
		}
		return uint64(v), nil
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("uint64 cannot be negative: %d", v)
		}
		return uint64(v), nil
	case uint64:
		return v, nil
	default:
		return 0, fmt.Errorf("cannot unmarshal %T to Uint64", v)
	}
}

// StringMap is the scalar for flat string-to-string objects such as image
// variant URL maps.
type StringMap = map[string]string

func MarshalStringMap(m map[string]string) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		if m == nil {
			_, _ = io.WriteString(w, "null")
			return
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		_, _ = io.WriteString(w, "{")
		for i, k := range keys {
			if i > 0 {
				_, _ = io.WriteString(w, ",")
			}
			_, _ = io.WriteString(w, strconv.Quote(k))
			_, _ = io.WriteString(w, ":")
			_, _ = io.WriteString(w, strconv.Quote(m[k]))
		}
		_, _ = io.WriteString(w, "}")
	})
}

func UnmarshalStringMap(v interface{}) (map[string]string, error) {
	switch v := v.(type) {
	case map[string]interface{}:
		m := make(map[string]string, len(v))
		for k, val := range v {
			s, ok := val.(string)
			if !ok {
				return nil, fmt.Errorf("StringMap value for %q must be a string, got %T", k, val)
			}
			m[k] = s
		}
		return m, nil
	case map[string]string:
		return v, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("cannot unmarshal %T to StringMap", v)
	}
}
