package sim

import "fmt"

// InitCond implements filter.InitCond
type InitCond struct {
	state float64
	v     float64
}

// NewInitCond creates new InitCond and returns it
func NewInitCond(state, v float64) *InitCond {
	return &InitCond{
		state: state,
		v:     v,
	}
}

// State returns initial state
func (c *InitCond) State() float64 {
	return c.state
}

// Var returns initial state variance
func (c *InitCond) Var() float64 {
	return c.v
}

// String implements the Stringer interface
func (c *InitCond) String() string {
	return fmt.Sprintf("InitCond{State=%v, Var=%v}", c.state, c.v)
}
