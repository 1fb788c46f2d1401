package chart

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// DataPoint is one normalized (key, value) observation.
type DataPoint struct {
	Key   Key
	Value float64
}

// Point is a convenience constructor for numeric keys.
func Point(key, value float64) DataPoint {
	return DataPoint{Key: NumberKey(key), Value: value}
}

// Normalize converts raw data into the canonical point sequence, sorted by
// descending key.
//
// Accepted shapes:
//   - a sequence of pairs ([]any{key, value}, [][2]float64)
//   - a sequence of objects ({"key": k, "value": v}, DataPoint)
//   - a sequence of plain numbers, where the index becomes the key
//   - a mapping from key to value
//
// Any key that is neither a number nor a date aborts the whole pass.
func Normalize(raw any) ([]DataPoint, error) {
	var (
		pts []DataPoint
		err error
	)
	switch v := raw.(type) {
	case nil:
		return nil, ErrMissingData
	case []DataPoint:
		pts = slices.Clone(v)
	case [][2]float64:
		pts = make([]DataPoint, 0, len(v))
		for _, p := range v {
			var dp DataPoint
			if dp, err = pointFrom(p[0], p[1]); err != nil {
				return nil, err
			}
			pts = append(pts, dp)
		}
	case []float64:
		pts = make([]DataPoint, 0, len(v))
		for i, f := range v {
			pts = append(pts, Point(float64(i), f))
		}
	case map[string]float64:
		pts = make([]DataPoint, 0, len(v))
		for k, f := range v {
			var dp DataPoint
			if dp, err = pointFrom(k, f); err != nil {
				return nil, err
			}
			pts = append(pts, dp)
		}
	case map[string]any:
		pts = make([]DataPoint, 0, len(v))
		for k, val := range v {
			var dp DataPoint
			if dp, err = pointFrom(k, val); err != nil {
				return nil, err
			}
			pts = append(pts, dp)
		}
	case map[any]any:
		pts = make([]DataPoint, 0, len(v))
		for k, val := range v {
			var dp DataPoint
			if dp, err = pointFrom(k, val); err != nil {
				return nil, err
			}
			pts = append(pts, dp)
		}
	case []any:
		pts = make([]DataPoint, 0, len(v))
		for i, item := range v {
			var dp DataPoint
			if dp, err = elementPoint(i, item); err != nil {
				return nil, err
			}
			pts = append(pts, dp)
		}
	default:
		if pts, err = reflectPoints(raw); err != nil {
			return nil, err
		}
	}

	sortDescending(pts)
	return pts, nil
}

func elementPoint(i int, item any) (DataPoint, error) {
	switch e := item.(type) {
	case DataPoint:
		return e, nil
	case [2]float64:
		return pointFrom(e[0], e[1])
	case []any:
		var k, v any
		if len(e) > 0 {
			k = e[0]
		}
		if len(e) > 1 {
			v = e[1]
		}
		return pointFrom(k, v)
	case []float64:
		if len(e) < 2 {
			return DataPoint{}, fmt.Errorf("%w: pair %d has %d elements", ErrInvalidValue, i, len(e))
		}
		return pointFrom(e[0], e[1])
	case map[string]any:
		return pointFrom(e["key"], e["value"])
	case map[any]any:
		return pointFrom(e["key"], e["value"])
	}

	rv := reflect.ValueOf(item)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if _, isBytes := item.([]byte); isBytes {
			break
		}
		var k, v any
		if rv.Len() > 0 {
			k = rv.Index(0).Interface()
		}
		if rv.Len() > 1 {
			v = rv.Index(1).Interface()
		}
		return pointFrom(k, v)
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return pointFrom(mapField(rv, "key"), mapField(rv, "value"))
		}
	}
	return pointFrom(i, item)
}

// reflectPoints handles typed slices, arrays and maps the type switch in
// Normalize does not name, such as [][]float64, []int or map[string]int.
func reflectPoints(raw any) ([]DataPoint, error) {
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if _, isBytes := raw.([]byte); isBytes {
			break
		}
		pts := make([]DataPoint, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			dp, err := elementPoint(i, rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			pts = append(pts, dp)
		}
		return pts, nil
	case reflect.Map:
		pts := make([]DataPoint, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			dp, err := pointFrom(iter.Key().Interface(), iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			pts = append(pts, dp)
		}
		return pts, nil
	}
	return nil, configErrorf("unsupported data shape %T", raw)
}

// mapField looks up a string key in a map with a string-kinded key type.
func mapField(m reflect.Value, name string) any {
	v := m.MapIndex(reflect.ValueOf(name).Convert(m.Type().Key()))
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}

func pointFrom(rawKey, rawValue any) (DataPoint, error) {
	k, err := ParseKey(rawKey)
	if err != nil {
		return DataPoint{}, err
	}
	v, ok := parseValue(rawValue)
	if !ok {
		return DataPoint{}, &InvalidValueError{Key: k, Raw: rawValue}
	}
	return DataPoint{Key: k, Value: v}, nil
}

// sortDescending orders points by descending key. Rendering walks the slice
// in this order, so line charts connect points right to left.
func sortDescending(pts []DataPoint) {
	slices.SortStableFunc(pts, func(a, b DataPoint) int {
		return cmp.Compare(b.Key.Float64(), a.Key.Float64())
	})
}
