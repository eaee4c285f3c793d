package expr

// Result is one evaluated batch returned to the caller.
type Result struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}
