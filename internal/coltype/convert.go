package coltype

// ToLarge maps a declared type to its 64-bit-offset shape: every list level
// becomes a large_list. Fixed-size lists and non-list types are unchanged.
func ToLarge(dt DataType) DataType {
	switch t := dt.(type) {
	case *ListType:
		elem := t.Elem
		elem.Type = ToLarge(elem.Type)
		return &LargeListType{Elem: elem}
	case *LargeListType:
		elem := t.Elem
		elem.Type = ToLarge(elem.Type)
		return &LargeListType{Elem: elem}
	default:
		return dt
	}
}
