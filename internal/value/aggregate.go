package value

import "fmt"

// AggregateFn identifies one of the four range aggregate built-ins.
type AggregateFn int

const (
	AggMax AggregateFn = iota
	AggMean
	AggMin
	AggSum
)

// Reduce folds a set of already-read, present cell values into the result
// of the named aggregate, per spec §4.4. cells absent from the environment
// are expected to have already been filtered out by the caller; every
// value passed in here must be numeric or Reduce fails the whole
// aggregate, matching the "non-numeric cell in aggregate" rule.
func Reduce(fn AggregateFn, cells []Primitive) (Primitive, error) {
	if len(cells) == 0 {
		return Primitive{}, fmt.Errorf("empty range")
	}

	allInteger := true
	sum := 0.0
	extreme, _ := cells[0].AsFloat()

	for _, c := range cells {
		f, ok := c.AsFloat()
		if !ok {
			return Primitive{}, fmt.Errorf("non-numeric cell in aggregate")
		}
		if c.Kind() == KindFloat {
			allInteger = false
		}
		sum += f

		switch fn {
		case AggMax:
			if f > extreme {
				extreme = f
			}
		case AggMin:
			if f < extreme {
				extreme = f
			}
		}
	}

	switch fn {
	case AggSum:
		if allInteger {
			return Integer(int32(sum)), nil
		}
		return Float(float32(sum)), nil
	case AggMean:
		return Float(float32(sum / float64(len(cells)))), nil
	case AggMax, AggMin:
		// The result takes the widest kind seen anywhere in the range.
		if !allInteger {
			return Float(float32(extreme)), nil
		}
		return Integer(int32(extreme)), nil
	default:
		return Primitive{}, fmt.Errorf("unknown aggregate")
	}
}
