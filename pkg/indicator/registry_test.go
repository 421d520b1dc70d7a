package indicator

import (
	"testing"

	"github.com/rxtech-lab/tide/pkg/errors"
	"github.com/rxtech-lab/tide/pkg/ohlcv"
	"github.com/stretchr/testify/suite"
)

type RegistryTestSuite struct {
	suite.Suite
	registry IndicatorRegistry[ohlcv.Candle]
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (suite *RegistryTestSuite) SetupTest() {
	suite.registry = NewIndicatorRegistry[ohlcv.Candle]()
}

func (suite *RegistryTestSuite) TestRegisterAndGet() {
	err := suite.registry.RegisterIndicator(IndicatorTypeRSI, func() IndicatorConfig[ohlcv.Candle] {
		return NewRSI[ohlcv.Candle]()
	})
	suite.NoError(err)

	config, err := suite.registry.GetIndicator(IndicatorTypeRSI)
	suite.NoError(err)
	suite.Equal(IndicatorTypeRSI, config.Name())
}

func (suite *RegistryTestSuite) TestRegisterDuplicate() {
	factory := func() IndicatorConfig[ohlcv.Candle] { return NewRSI[ohlcv.Candle]() }

	suite.NoError(suite.registry.RegisterIndicator(IndicatorTypeRSI, factory))

	err := suite.registry.RegisterIndicator(IndicatorTypeRSI, factory)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorAlreadyExists))
}

func (suite *RegistryTestSuite) TestGetNotFound() {
	config, err := suite.registry.GetIndicator(IndicatorType("bogus"))
	suite.Error(err)
	suite.Nil(config)
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorNotFound))
}

func (suite *RegistryTestSuite) TestGetReturnsFreshConfig() {
	suite.NoError(suite.registry.RegisterIndicator(IndicatorTypeRSI, func() IndicatorConfig[ohlcv.Candle] {
		return NewRSI[ohlcv.Candle]()
	}))

	first, err := suite.registry.GetIndicator(IndicatorTypeRSI)
	suite.Require().NoError(err)
	suite.Require().NoError(first.Set("period", "5"))

	second, err := suite.registry.GetIndicator(IndicatorTypeRSI)
	suite.Require().NoError(err)

	// Tuning one configuration must not leak into a later lookup.
	secondRSI, ok := second.(*RSI[ohlcv.Candle])
	suite.Require().True(ok)
	suite.Equal(14, secondRSI.Period)
}

func (suite *RegistryTestSuite) TestListIsSorted() {
	registry := DefaultIndicatorRegistry[ohlcv.Candle]()

	names := registry.ListIndicators()
	suite.Equal([]IndicatorType{
		IndicatorTypeConv,
		IndicatorTypeMACD,
		IndicatorTypeMovingAverage,
		IndicatorTypeRSI,
	}, names)
}

func (suite *RegistryTestSuite) TestRemove() {
	suite.NoError(suite.registry.RegisterIndicator(IndicatorTypeRSI, func() IndicatorConfig[ohlcv.Candle] {
		return NewRSI[ohlcv.Candle]()
	}))

	suite.NoError(suite.registry.RemoveIndicator(IndicatorTypeRSI))

	err := suite.registry.RemoveIndicator(IndicatorTypeRSI)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorNotFound))
}

func (suite *RegistryTestSuite) TestDefaultRegistryConfigsInitialize() {
	registry := DefaultIndicatorRegistry[ohlcv.Candle]()
	seed := ohlcv.Candle{Open: 100, High: 101, Low: 99, Close: 100, Volume: 10}

	for _, name := range registry.ListIndicators() {
		config, err := registry.GetIndicator(name)
		suite.Require().NoError(err)
		suite.True(config.Validate(), "indicator %s", name)

		instance, err := config.Init(seed)
		suite.NoError(err, "indicator %s", name)
		suite.NotNil(instance, "indicator %s", name)
	}
}
