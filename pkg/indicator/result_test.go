package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResultTestSuite struct {
	suite.Suite
}

func TestResultSuite(t *testing.T) {
	suite.Run(t, new(ResultTestSuite))
}

func (suite *ResultTestSuite) TestSize() {
	result := NewResult([]float64{1.5, 2.5}, []Action{ActionBuy})

	raw, actions := result.Size()
	suite.Equal(2, raw)
	suite.Equal(1, actions)
}

func (suite *ResultTestSuite) TestAccessors() {
	result := NewResult([]float64{1.5, 2.5}, []Action{ActionBuy})

	suite.Equal(1.5, result.Value(0))
	suite.Equal(2.5, result.Value(1))
	suite.Equal(ActionBuy, result.Action(0))
}

func (suite *ResultTestSuite) TestEmptyShape() {
	result := NewResult(nil, nil)

	raw, actions := result.Size()
	suite.Equal(0, raw)
	suite.Equal(0, actions)
	suite.Empty(result.Values())
	suite.Empty(result.Actions())
}

func (suite *ResultTestSuite) TestValueOutOfRangePanics() {
	result := NewResult([]float64{1.5}, nil)

	suite.Panics(func() { result.Value(1) })
	suite.Panics(func() { result.Value(-1) })
	suite.Panics(func() { result.Action(0) })
}

func (suite *ResultTestSuite) TestTooManySlotsPanics() {
	suite.Panics(func() { NewResult([]float64{1, 2, 3, 4, 5}, nil) })
	suite.Panics(func() {
		NewResult(nil, []Action{ActionNone, ActionNone, ActionNone, ActionNone, ActionNone})
	})
}

func (suite *ResultTestSuite) TestValuesReturnsCopy() {
	result := NewResult([]float64{1.5, 2.5}, []Action{ActionSell})

	values := result.Values()
	values[0] = 99

	suite.Equal(1.5, result.Value(0))

	actions := result.Actions()
	actions[0] = ActionBuy

	suite.Equal(ActionSell, result.Action(0))
}

func (suite *ResultTestSuite) TestString() {
	result := NewResult([]float64{1.5, -2}, []Action{ActionBuy})
	suite.Equal("values=[1.5 -2] actions=[buy]", result.String())

	empty := NewResult(nil, nil)
	suite.Equal("values=[] actions=[]", empty.String())
}
