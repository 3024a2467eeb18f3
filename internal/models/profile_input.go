package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// UnmarshalJSON decodes a profile body leniently, the way the SQL engine coerces
// column values: numbers may arrive as numeric strings, integer columns take
// fractional values rounded to the nearest integer and profiling_form accepts any
// truthy value. Null and falsy values decode to the zero value so Validate
// reports them missing.
func (p *ProfileInput) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var (
		in  ProfileInput
		err error
	)
	if in.Username, err = looseString(raw, "username"); err != nil {
		return err
	}
	if in.Age, err = looseInt(raw, "age"); err != nil {
		return err
	}
	if in.Weight, err = looseFloat(raw, "weight"); err != nil {
		return err
	}
	if in.Height, err = looseFloat(raw, "height"); err != nil {
		return err
	}
	if in.Objective, err = looseString(raw, "objective"); err != nil {
		return err
	}
	if in.TrainingDays, err = looseInt(raw, "training_days"); err != nil {
		return err
	}
	if in.ProfilingForm, err = looseBool(raw, "profiling_form"); err != nil {
		return err
	}

	*p = in
	return nil
}

// looseValue decodes one field keeping numbers as json.Number; absent keys yield nil
func looseValue(raw map[string]json.RawMessage, key string) (interface{}, error) {
	msg, ok := raw[key]
	if !ok {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("field %q: %w", key, err)
	}
	return v, nil
}

func looseFloat(raw map[string]json.RawMessage, key string) (float64, error) {
	v, err := looseValue(raw, key)
	if err != nil {
		return 0, err
	}

	var f float64
	switch val := v.(type) {
	case nil:
		return 0, nil
	case bool:
		if val {
			f = 1
		}
	case json.Number:
		f, err = val.Float64()
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, nil
		}
		f, err = strconv.ParseFloat(s, 64)
	default:
		return 0, fmt.Errorf("field %q: expected a number, got %T", key, v)
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("field %q: %v is not a number", key, v)
	}
	return f, nil
}

func looseInt(raw map[string]json.RawMessage, key string) (int, error) {
	f, err := looseFloat(raw, key)
	if err != nil {
		return 0, err
	}
	f = math.Round(f)
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("field %q: %v is out of range", key, f)
	}
	return int(f), nil
}

func looseString(raw map[string]json.RawMessage, key string) (string, error) {
	v, err := looseValue(raw, key)
	if err != nil {
		return "", err
	}

	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case json.Number:
		return val.String(), nil
	case bool:
		if val {
			return "1", nil
		}
		return "", nil
	default:
		return "", fmt.Errorf("field %q: expected a string, got %T", key, v)
	}
}

func looseBool(raw map[string]json.RawMessage, key string) (bool, error) {
	v, err := looseValue(raw, key)
	if err != nil {
		return false, err
	}

	switch val := v.(type) {
	case nil:
		return false, nil
	case bool:
		return val, nil
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return false, fmt.Errorf("field %q: %w", key, err)
		}
		return f != 0, nil
	case string:
		return val != "", nil
	default:
		// objects and arrays are truthy
		return true, nil
	}
}
