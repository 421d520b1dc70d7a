package indicator

import (
	"testing"

	"github.com/rxtech-lab/tide/pkg/errors"
	"github.com/rxtech-lab/tide/pkg/ohlcv"
	"github.com/stretchr/testify/suite"
)

type MovingAverageUnitTestSuite struct {
	suite.Suite
}

func TestMovingAverageUnitSuite(t *testing.T) {
	suite.Run(t, new(MovingAverageUnitTestSuite))
}

func (suite *MovingAverageUnitTestSuite) TestDefaults() {
	config := NewMovingAverage[ohlcv.Candle]()
	suite.Equal(20, config.Period)
	suite.Equal(MAMethodSMA, config.Method)
	suite.Equal(ohlcv.SourceClose, config.Source)
	suite.True(config.Validate())
}

func (suite *MovingAverageUnitTestSuite) TestName() {
	config := NewMovingAverage[ohlcv.Candle]()
	suite.Equal(IndicatorTypeMovingAverage, config.Name())
}

func (suite *MovingAverageUnitTestSuite) TestSize() {
	config := NewMovingAverage[ohlcv.Candle]()
	raw, actions := config.Size()
	suite.Equal(1, raw)
	suite.Equal(0, actions)
}

func (suite *MovingAverageUnitTestSuite) TestSetPeriod() {
	config := NewMovingAverage[ohlcv.Candle]()

	err := config.Set("period", "10")
	suite.NoError(err)
	suite.Equal(10, config.Period)
}

func (suite *MovingAverageUnitTestSuite) TestSetMethod() {
	config := NewMovingAverage[ohlcv.Candle]()

	err := config.Set("method", "ema")
	suite.NoError(err)
	suite.Equal(MAMethodEMA, config.Method)

	err = config.Set("method", "wma")
	suite.NoError(err)
	suite.Equal(MAMethodWMA, config.Method)
}

func (suite *MovingAverageUnitTestSuite) TestSetSource() {
	config := NewMovingAverage[ohlcv.Candle]()

	err := config.Set("source", "hl2")
	suite.NoError(err)
	suite.Equal(ohlcv.SourceHL2, config.Source)
}

func (suite *MovingAverageUnitTestSuite) TestSetParseFailure() {
	config := NewMovingAverage[ohlcv.Candle]()

	err := config.Set("period", "ten")
	suite.Error(err)
	suite.True(errors.IsParseFailure(err))
	suite.Equal(20, config.Period)

	err = config.Set("method", "hull")
	suite.Error(err)
	suite.True(errors.IsParseFailure(err))
	suite.Equal(MAMethodSMA, config.Method)
}

func (suite *MovingAverageUnitTestSuite) TestSetUnknownParameter() {
	config := NewMovingAverage[ohlcv.Candle]()

	err := config.Set("window", "10")
	suite.Error(err)
	suite.True(errors.IsUnknownParameter(err))
}

func (suite *MovingAverageUnitTestSuite) TestSetNameIsCaseSensitive() {
	config := NewMovingAverage[ohlcv.Candle]()

	err := config.Set("Period", "10")
	suite.Error(err)
	suite.True(errors.IsUnknownParameter(err))
	suite.Equal(20, config.Period)
}

func (suite *MovingAverageUnitTestSuite) TestValidateInvalidStates() {
	config := NewMovingAverage[ohlcv.Candle]()

	config.Period = 0
	suite.False(config.Validate())

	config.Period = -5
	suite.False(config.Validate())

	config.Period = 10
	config.Method = MAMethod("hull")
	suite.False(config.Validate())

	config.Method = MAMethodSMA
	config.Source = ohlcv.Source("median")
	suite.False(config.Validate())
}

func (suite *MovingAverageUnitTestSuite) TestInitInvalidPeriod() {
	config := NewMovingAverage[ohlcv.Candle]()
	config.Period = 0

	instance, err := config.Init(ohlcv.Candle{Close: 100})
	suite.Error(err)
	suite.Nil(instance)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))
}

func (suite *MovingAverageUnitTestSuite) TestInitInvalidMethod() {
	config := NewMovingAverage[ohlcv.Candle]()
	config.Method = MAMethod("hull")

	_, err := config.Init(ohlcv.Candle{Close: 100})
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidMethod))
}

func (suite *MovingAverageUnitTestSuite) TestInitInvalidSource() {
	config := NewMovingAverage[ohlcv.Candle]()
	config.Source = ohlcv.Source("median")

	_, err := config.Init(ohlcv.Candle{Close: 100})
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidSource))
}
