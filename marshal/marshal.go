package marshal

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/dshills/gox12/schema"
	"github.com/dshills/gox12/x12"
)

// Marshal errors.
var ErrNotStructValue = errors.New("value must be a struct or pointer to struct")

// rawField holds one tagged field's rendered wire text, pending
// placement into its segment's element slots.
type rawField struct {
	info *tagInfo
	wire string
}

// Marshal builds one *x12.SegmentVal per distinct segment id referenced
// by v's `x12` tags, looking up each segment's definition (and its
// element kinds) in dict. Fields whose wire rendering is empty and
// carry the omitempty option occupy an Empty element slot in the built
// segment.
func Marshal(dict *schema.SegmentDict, v interface{}) (SegmentSet, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, ErrNilPointer
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, ErrNotStructValue
	}

	byID := map[string][]rawField{}
	if err := collectFields(rv, byID); err != nil {
		return nil, err
	}

	out := make(SegmentSet, len(byID))
	for id, fields := range byID {
		def, err := schema.SegmentDefLookup(dict, id)
		if err != nil {
			return nil, fmt.Errorf("segment %s: %w", id, err)
		}
		seg, err := buildSegment(def, fields)
		if err != nil {
			return nil, fmt.Errorf("segment %s: %w", id, err)
		}
		out[id] = seg
	}
	return out, nil
}

func collectFields(rv reflect.Value, byID map[string][]rawField) error {
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		ft := rt.Field(i)
		if !ft.IsExported() {
			continue
		}
		tag := ft.Tag.Get("x12")
		if tag == "" {
			if field.Kind() == reflect.Struct && ft.Type != reflect.TypeOf(time.Time{}) {
				if err := collectFields(field, byID); err != nil {
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
		wire, err := fieldToWire(field)
		if err != nil {
			return fmt.Errorf("field %s: %w", ft.Name, err)
		}
		if wire == "" && info.omitEmpty {
			continue
		}
		byID[info.segment] = append(byID[info.segment], rawField{info: info, wire: wire})
	}
	return nil
}

func fieldToWire(field reflect.Value) (string, error) {
	switch field.Kind() {
	case reflect.String:
		return field.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(field.Int(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(field.Float(), 'f', -1, 64), nil
	case reflect.Struct:
		if field.Type() == reflect.TypeOf(time.Time{}) {
			t := field.Interface().(time.Time)
			if t.IsZero() {
				return "", nil
			}
			return t.Format("20060102"), nil
		}
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, field.Type())
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, field.Type())
	}
}

// buildSegment places each raw field's wire text into the element slot
// (or composite component) its tag addresses, dispatching to the right
// value constructor by the definition's declared kind.
func buildSegment(def *schema.SegmentDef, fields []rawField) (*x12.SegmentVal, error) {
	byPos := map[int][]rawField{}
	for _, f := range fields {
		byPos[f.info.position] = append(byPos[f.info.position], f)
	}

	slots := make([]x12.ElementSlot, def.ElementCount())
	for i := range slots {
		position := i + 1
		use, err := def.ElementAt(position)
		if err != nil {
			continue
		}
		pos := x12.Position{}.WithElement(position)
		group := byPos[position]
		if use.IsComposite() {
			components := make([]x12.ElementValue, use.Composite.ComponentCount())
			for ci := range components {
				cpos := pos.WithComponent(ci + 1)
				cu, err := use.Composite.ComponentAt(ci + 1)
				if err != nil {
					continue
				}
				raw := ""
				for _, f := range group {
					if f.info.component == ci+1 {
						raw = f.wire
					}
				}
				components[ci] = buildValue(raw, cu.Element, schema.NewUsage(cu.Element, cu.Usage), cpos)
			}
			usage := schema.NewRepeatingUsage(use.Composite, use.Usage, use.Repeat)
			slots[i] = x12.ElementSlot{
				Position:    position,
				Use:         use,
				Occurrences: []x12.Occurrence{x12.NewCompositeVal(use.Composite, usage, pos, components)},
			}
			continue
		}
		raw := ""
		if len(group) > 0 {
			raw = group[0].wire
		}
		usage := schema.NewRepeatingUsage(use.Element, use.Usage, use.Repeat)
		slots[i] = x12.ElementSlot{
			Position:    position,
			Use:         use,
			Occurrences: []x12.Occurrence{buildValue(raw, use.Element, usage, pos)},
		}
	}
	return x12.NewSegmentVal(def, x12.Position{}, slots), nil
}

// buildValue dispatches to the element kind's constructor -- the same
// per-kind switch the parse package's tokenizer-driven builder uses,
// duplicated here since this package never sees a tokenize.ElementTok.
func buildValue(raw string, def *schema.ElementDef, usage schema.Usage, pos x12.Position) x12.ElementValue {
	if def == nil {
		return x12.NewStringValue(raw, nil, usage, pos)
	}
	switch def.Kind {
	case schema.KindIdentifier:
		return x12.NewIdentifierValue(raw, def, usage, pos)
	case schema.KindNumeric:
		return x12.NewNumericValue(raw, def, usage, pos)
	case schema.KindReal:
		return x12.NewRealValue(raw, def, usage, pos)
	case schema.KindDate:
		return x12.NewDateValue(raw, def, usage, pos)
	case schema.KindTime:
		return x12.NewTimeValue(raw, def, usage, pos)
	default:
		return x12.NewStringValue(raw, def, usage, pos)
	}
}
