package coltype

import "fmt"

// Type identifies the physical kind of a data type.
type Type uint8

const (
	TypeNull Type = iota
	TypeBool
	TypeInt64
	TypeFloat64
	TypeString
	TypeList
	TypeLargeList
	TypeFixedSizeList
)

var typeNames = [...]string{
	TypeNull:          "null",
	TypeBool:          "bool",
	TypeInt64:         "int64",
	TypeFloat64:       "float64",
	TypeString:        "string",
	TypeList:          "list",
	TypeLargeList:     "large_list",
	TypeFixedSizeList: "fixed_size_list",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("type(%d)", uint8(t))
}

// DataType is the declared type of one column or list element.
type DataType interface {
	ID() Type
	String() string
	Equal(other DataType) bool
}

// Field describes one list element or output column.
type Field struct {
	Name     string
	Type     DataType
	Nullable bool
}

func (f Field) Equal(o Field) bool {
	return f.Name == o.Name && f.Nullable == o.Nullable && f.Type.Equal(o.Type)
}

// PrimitiveType covers types without a nested element.
type PrimitiveType struct {
	id Type
}

func (p *PrimitiveType) ID() Type       { return p.id }
func (p *PrimitiveType) String() string { return p.id.String() }
func (p *PrimitiveType) Equal(other DataType) bool {
	o, ok := other.(*PrimitiveType)
	return ok && o.id == p.id
}

var (
	Null    DataType = &PrimitiveType{id: TypeNull}
	Bool    DataType = &PrimitiveType{id: TypeBool}
	Int64   DataType = &PrimitiveType{id: TypeInt64}
	Float64 DataType = &PrimitiveType{id: TypeFloat64}
	String  DataType = &PrimitiveType{id: TypeString}
)

// ListType is a variable-length list with 32-bit offsets.
type ListType struct {
	Elem Field
}

func (t *ListType) ID() Type       { return TypeList }
func (t *ListType) String() string { return "list<" + t.Elem.Type.String() + ">" }
func (t *ListType) Equal(other DataType) bool {
	o, ok := other.(*ListType)
	return ok && o.Elem.Equal(t.Elem)
}

// LargeListType is a variable-length list with 64-bit offsets.
type LargeListType struct {
	Elem Field
}

func (t *LargeListType) ID() Type       { return TypeLargeList }
func (t *LargeListType) String() string { return "large_list<" + t.Elem.Type.String() + ">" }
func (t *LargeListType) Equal(other DataType) bool {
	o, ok := other.(*LargeListType)
	return ok && o.Elem.Equal(t.Elem)
}

// FixedSizeListType is a list where every row has exactly N elements and no
// offsets are stored. It exists at the type level only; no runtime array is
// materialized for it in this engine.
type FixedSizeListType struct {
	Elem Field
	N    int32
}

func (t *FixedSizeListType) ID() Type { return TypeFixedSizeList }
func (t *FixedSizeListType) String() string {
	return fmt.Sprintf("fixed_size_list<%s, %d>", t.Elem.Type, t.N)
}
func (t *FixedSizeListType) Equal(other DataType) bool {
	o, ok := other.(*FixedSizeListType)
	return ok && o.N == t.N && o.Elem.Equal(t.Elem)
}

// elemField is the default field used for list elements.
func elemField(elem DataType) Field {
	return Field{Name: "item", Type: elem, Nullable: true}
}

// ListOf builds a ListType with the default element field.
func ListOf(elem DataType) *ListType { return &ListType{Elem: elemField(elem)} }

// LargeListOf builds a LargeListType with the default element field.
func LargeListOf(elem DataType) *LargeListType { return &LargeListType{Elem: elemField(elem)} }

// FixedSizeListOf builds a FixedSizeListType with the default element field.
func FixedSizeListOf(elem DataType, n int32) *FixedSizeListType {
	return &FixedSizeListType{Elem: elemField(elem), N: n}
}
