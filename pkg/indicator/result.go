package indicator

import (
	"fmt"
	"strings"
)

const (
	// MaxRawValues is the largest count of raw value slots a Result can declare.
	MaxRawValues = 4
	// MaxActions is the largest count of action slots a Result can declare.
	MaxActions = 4
)

// Result is the fixed-shape per-bar output of a running indicator instance.
// It holds exactly the declared count of raw numeric values and the declared
// count of discrete actions; every Result produced by one instance has the
// same shape. Results are plain values owned by the caller and never alias
// instance state.
type Result struct {
	values    [MaxRawValues]float64
	actions   [MaxActions]Action
	valueLen  int
	actionLen int
}

// NewResult creates a Result from the given raw values and actions. The slot
// counts are fixed per indicator variant; exceeding MaxRawValues or
// MaxActions is a programming error and panics.
func NewResult(values []float64, actions []Action) Result {
	if len(values) > MaxRawValues {
		panic(fmt.Sprintf("indicator result holds at most %d raw values, got %d", MaxRawValues, len(values)))
	}

	if len(actions) > MaxActions {
		panic(fmt.Sprintf("indicator result holds at most %d actions, got %d", MaxActions, len(actions)))
	}

	var result Result
	copy(result.values[:], values)
	copy(result.actions[:], actions)
	result.valueLen = len(values)
	result.actionLen = len(actions)

	return result
}

// Size returns the shape of the result as (count of raw values, count of actions).
func (r Result) Size() (int, int) {
	return r.valueLen, r.actionLen
}

// Value returns the raw value at index i. It panics when i is outside the
// declared shape, mirroring slice indexing.
func (r Result) Value(i int) float64 {
	if i < 0 || i >= r.valueLen {
		panic(fmt.Sprintf("raw value index %d out of range [0:%d]", i, r.valueLen))
	}

	return r.values[i]
}

// Action returns the action at index i. It panics when i is outside the
// declared shape, mirroring slice indexing.
func (r Result) Action(i int) Action {
	if i < 0 || i >= r.actionLen {
		panic(fmt.Sprintf("action index %d out of range [0:%d]", i, r.actionLen))
	}

	return r.actions[i]
}

// Values returns a copy of the declared raw value slots.
func (r Result) Values() []float64 {
	values := make([]float64, r.valueLen)
	copy(values, r.values[:r.valueLen])

	return values
}

// Actions returns a copy of the declared action slots.
func (r Result) Actions() []Action {
	actions := make([]Action, r.actionLen)
	copy(actions, r.actions[:r.actionLen])

	return actions
}

// String returns a compact textual form of the result for logging.
func (r Result) String() string {
	var builder strings.Builder
	builder.WriteString("values=[")

	for i := 0; i < r.valueLen; i++ {
		if i > 0 {
			builder.WriteString(" ")
		}

		fmt.Fprintf(&builder, "%g", r.values[i])
	}

	builder.WriteString("] actions=[")

	for i := 0; i < r.actionLen; i++ {
		if i > 0 {
			builder.WriteString(" ")
		}

		builder.WriteString(r.actions[i].String())
	}

	builder.WriteString("]")

	return builder.String()
}
