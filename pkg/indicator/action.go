package indicator

// Action is a discrete per-bar signal emitted in a Result slot.
type Action int8

const (
	ActionSell Action = -1
	ActionNone Action = 0
	ActionBuy  Action = 1
)

// String returns a human-readable form of the action.
func (a Action) String() string {
	switch a {
	case ActionBuy:
		return "buy"
	case ActionSell:
		return "sell"
	case ActionNone:
		return "none"
	default:
		return "none"
	}
}

// Cross tracks a series against a moving level and reports side changes.
// Update returns ActionBuy when the series crosses above the level,
// ActionSell when it crosses below, and ActionNone otherwise. Touching the
// level exactly does not count as a cross until the series moves past it.
type Cross struct {
	above bool
}

// NewCross creates a Cross primed with the initial positions of the series
// and the level, so the first Update never reports a spurious cross.
func NewCross(value, level float64) *Cross {
	return &Cross{
		above: value > level,
	}
}

// Update advances the tracker by one observation.
func (c *Cross) Update(value, level float64) Action {
	above := value > level
	below := value < level

	switch {
	case above && !c.above:
		c.above = true

		return ActionBuy
	case below && c.above:
		c.above = false

		return ActionSell
	default:
		return ActionNone
	}
}
