package querybuilder

import "sort"

type CondType int

const (
	CondTypeAnd CondType = iota + 1
)

func (c CondType) ToString() string {
	switch c {
	case CondTypeAnd:
		return "AND"
	default:
		return ""
	}
}

type Condition struct {
	condType CondType
	clause   string
	args     []interface{}
}

func sortedKeys(data UpdateData) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
