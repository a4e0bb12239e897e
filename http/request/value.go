package request

// Value is a single raw value taken from a request.
type Value string

func (v Value) String() string {
	return string(v)
}

func (v Value) IsEmpty() bool {
	return v == ""
}

// Values is the ordered list of values submitted for one field.
type Values []Value

// NonEmpty drops the empty values, keeping the order of the rest.
func (vs Values) NonEmpty() Values {
	res := make(Values, 0, len(vs))
	for _, v := range vs {
		if v.IsEmpty() {
			continue
		}

		res = append(res, v)
	}

	return res
}

func (vs Values) Strings() []string {
	res := make([]string, len(vs))
	for i, v := range vs {
		res[i] = v.String()
	}

	return res
}
