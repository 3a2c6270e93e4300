package tagwire

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/rawbytedev/tagwire/internal/common"
)

var (
	ErrNotStruct     = errors.New("tagwire: expected struct")
	ErrNotStructPtr  = errors.New("tagwire: expected pointer to struct")
	ErrFieldMismatch = errors.New("tagwire: values do not match struct fields")
)

type fieldInfo struct {
	idx  int
	name string
	typ  Type
}

// structPlan lists the encoded fields of a struct type in declaration order.
type structPlan struct {
	fields []fieldInfo
	size   int
}

var plans sync.Map // reflect.Type -> *structPlan

func kindType(k reflect.Kind) Type {
	switch k {
	case reflect.Bool:
		return TypeBool
	case reflect.Int8:
		return TypeInt8
	case reflect.Uint8:
		return TypeUint8
	case reflect.Int16:
		return TypeInt16
	case reflect.Uint16:
		return TypeUint16
	case reflect.Int32:
		return TypeInt32
	case reflect.Uint32:
		return TypeUint32
	case reflect.Int64:
		return TypeInt64
	case reflect.Uint64:
		return TypeUint64
	case reflect.Float32:
		return TypeFloat
	case reflect.Float64:
		return TypeDouble
	case reflect.String:
		return TypeString
	default:
		return 0
	}
}

func planFor(t reflect.Type) (*structPlan, error) {
	if p, ok := plans.Load(t); ok {
		return p.(*structPlan), nil
	}
	p := &structPlan{size: 2}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Tag.Get("tagwire") == "-" {
			continue
		}
		k := sf.Type.Kind()
		typ := kindType(k)
		if typ == 0 {
			return nil, &UnsupportedTypeError{Index: i, GoType: sf.Type}
		}
		p.fields = append(p.fields, fieldInfo{idx: i, name: sf.Name, typ: typ})
		if w := common.FixedSize(k); w > 0 {
			p.size += 1 + w
		} else {
			p.size += 2
		}
	}
	actual, _ := plans.LoadOrStore(t, p)
	return actual.(*structPlan), nil
}

// Marshal encodes the exported fields of a struct in declaration order.
// Fields tagged `tagwire:"-"` are skipped. Every other exported field must
// have a scalar kind; UnsupportedTypeError.Index is then the field index.
func Marshal(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, ErrNotStruct
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, ErrNotStruct
	}
	p, err := planFor(rv.Type())
	if err != nil {
		return nil, err
	}
	e := NewEncoder(p.size)
	for _, f := range p.fields {
		if err := e.appendKind(f.idx, rv.Field(f.idx).Interface()); err != nil {
			return nil, err
		}
	}
	return e.Bytes(), nil
}

// Unmarshal decodes data into the struct v points to. The buffer must hold
// exactly one value per encoded field, each with the field's tag. On error
// v is left unchanged.
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPtr
	}
	rv = rv.Elem()
	p, err := planFor(rv.Type())
	if err != nil {
		return err
	}
	vals, err := Decode(data)
	if err != nil {
		return err
	}
	if len(vals) != len(p.fields) {
		return fmt.Errorf("%w: %d values for %d fields", ErrFieldMismatch, len(vals), len(p.fields))
	}
	for i, f := range p.fields {
		if vals[i].typ != f.typ {
			return fmt.Errorf("%w: field %s is %s, got %s", ErrFieldMismatch, f.name, f.typ, vals[i].typ)
		}
	}
	for i, f := range p.fields {
		setField(rv.Field(f.idx), vals[i])
	}
	return nil
}

func setField(fv reflect.Value, v Value) {
	switch x := v.data.(type) {
	case bool:
		fv.SetBool(x)
	case int8:
		fv.SetInt(int64(x))
	case int16:
		fv.SetInt(int64(x))
	case int32:
		fv.SetInt(int64(x))
	case int64:
		fv.SetInt(x)
	case uint8:
		fv.SetUint(uint64(x))
	case uint16:
		fv.SetUint(uint64(x))
	case uint32:
		fv.SetUint(uint64(x))
	case uint64:
		fv.SetUint(x)
	case float32:
		fv.SetFloat(float64(x))
	case float64:
		fv.SetFloat(x)
	case string:
		fv.SetString(x)
	}
}
