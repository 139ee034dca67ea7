// Package marshal is a convenience layer over the constructed tree: Go
// structs tagged with `x12:"SEGMENTID.element[.component]"` marshal
// to/from the SegmentVal/CompositeVal values the x12 package builds. It
// is ergonomics, not a new wire format -- every value still passes
// through the same element constructors the parse package uses.
package marshal

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/gox12/x12"
)

// Unmarshal errors.
var (
	ErrNotPointer      = errors.New("target must be a pointer")
	ErrNotStruct       = errors.New("target must be a struct")
	ErrNilPointer      = errors.New("target pointer is nil")
	ErrUnsupportedType = errors.New("unsupported field type")
)

// SegmentSet looks segments up by id, the shape Unmarshal reads from.
type SegmentSet map[string]*x12.SegmentVal

// SegmentsByID indexes a node slice's direct *x12.SegmentVal children by
// segment id, the common case for a transaction set or loop body whose
// children are segments rather than nested loops.
func SegmentsByID(nodes []x12.Node) SegmentSet {
	set := make(SegmentSet)
	for _, n := range nodes {
		if seg, ok := n.(*x12.SegmentVal); ok {
			set[seg.ID()] = seg
		}
	}
	return set
}

// Unmarshal populates the struct pointed to by v from segs, using each
// exported field's `x12` tag to locate its value.
func Unmarshal(segs SegmentSet, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr {
		return ErrNotPointer
	}
	if rv.IsNil() {
		return ErrNilPointer
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return ErrNotStruct
	}
	return unmarshalStruct(segs, rv)
}

func unmarshalStruct(segs SegmentSet, rv reflect.Value) error {
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		ft := rt.Field(i)
		if !field.CanSet() {
			continue
		}
		tag := ft.Tag.Get("x12")
		if tag == "" {
			if field.Kind() == reflect.Struct && ft.Type != reflect.TypeOf(time.Time{}) {
				if err := unmarshalStruct(segs, field); err != nil {
					return err
				}
			}
			continue
		}
		info, err := parseTag(tag)
		if err != nil {
			return fmt.Errorf("field %s: %w", ft.Name, err)
		}
		if !info.hasLocation() {
			continue
		}
		wire, ok := lookupWire(segs, info)
		if !ok || wire == "" {
			continue
		}
		if err := setFieldValue(field, wire); err != nil {
			return fmt.Errorf("field %s: %w", ft.Name, err)
		}
	}
	return nil
}

func lookupWire(segs SegmentSet, info *tagInfo) (string, bool) {
	seg, ok := segs[info.segment]
	if !ok {
		return "", false
	}
	slot, err := seg.Element(info.position)
	if err != nil {
		return "", false
	}
	occ, err := slot.First()
	if err != nil {
		return "", false
	}
	if info.component > 0 {
		comp, ok := occ.(*x12.CompositeVal)
		if !ok {
			return "", false
		}
		cv, err := comp.Component(info.component)
		if err != nil {
			return "", false
		}
		return cv.ToWire(true), true
	}
	ev, ok := occ.(x12.ElementValue)
	if !ok {
		return "", false
	}
	return ev.ToWire(true), true
}

func setFieldValue(field reflect.Value, wire string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(wire)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(wire), 10, 64)
		if err != nil {
			return fmt.Errorf("cannot parse %q as int: %w", wire, err)
		}
		field.SetInt(n)
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(wire), 64)
		if err != nil {
			return fmt.Errorf("cannot parse %q as float: %w", wire, err)
		}
		field.SetFloat(f)
		return nil
	case reflect.Struct:
		if field.Type() == reflect.TypeOf(time.Time{}) {
			return setTimeValue(field, wire)
		}
		return fmt.Errorf("%w: %s", ErrUnsupportedType, field.Type())
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, field.Type())
	}
}

func setTimeValue(field reflect.Value, wire string) error {
	layouts := []string{"20060102", "060102", "1504", "150405"}
	for _, layout := range layouts {
		if len(wire) != len(layout) {
			continue
		}
		if t, err := time.Parse(layout, wire); err == nil {
			field.Set(reflect.ValueOf(t))
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as a date or time", wire)
}
