package indicator

import (
	"sort"
	"sync"

	"github.com/rxtech-lab/tide/pkg/errors"
	"github.com/rxtech-lab/tide/pkg/ohlcv"
)

// IndicatorFactory produces a fresh default configuration for one indicator
// variant. Every GetIndicator call returns an independent configuration, so
// tuning one stream never leaks into another.
type IndicatorFactory[T ohlcv.OHLCV] func() IndicatorConfig[T]

// IndicatorRegistry manages all available indicator variants.
type IndicatorRegistry[T ohlcv.OHLCV] interface {
	RegisterIndicator(name IndicatorType, factory IndicatorFactory[T]) error
	GetIndicator(name IndicatorType) (IndicatorConfig[T], error)
	ListIndicators() []IndicatorType
	RemoveIndicator(name IndicatorType) error
}

// IndicatorRegistryV1 manages all available indicator variants.
type IndicatorRegistryV1[T ohlcv.OHLCV] struct {
	factories map[IndicatorType]IndicatorFactory[T]
	mu        sync.RWMutex
}

// NewIndicatorRegistry creates a new empty indicator registry.
func NewIndicatorRegistry[T ohlcv.OHLCV]() IndicatorRegistry[T] {
	return &IndicatorRegistryV1[T]{
		factories: make(map[IndicatorType]IndicatorFactory[T]),
		mu:        sync.RWMutex{},
	}
}

// DefaultIndicatorRegistry creates a registry pre-populated with every
// built-in indicator variant.
func DefaultIndicatorRegistry[T ohlcv.OHLCV]() IndicatorRegistry[T] {
	registry := NewIndicatorRegistry[T]()

	// Registration of built-ins cannot collide on a fresh registry.
	_ = registry.RegisterIndicator(IndicatorTypeMovingAverage, func() IndicatorConfig[T] { return NewMovingAverage[T]() })
	_ = registry.RegisterIndicator(IndicatorTypeConv, func() IndicatorConfig[T] { return NewConv[T]() })
	_ = registry.RegisterIndicator(IndicatorTypeRSI, func() IndicatorConfig[T] { return NewRSI[T]() })
	_ = registry.RegisterIndicator(IndicatorTypeMACD, func() IndicatorConfig[T] { return NewMACD[T]() })

	return registry
}

// RegisterIndicator adds an indicator factory to the registry.
func (r *IndicatorRegistryV1[T]) RegisterIndicator(name IndicatorType, factory IndicatorFactory[T]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return errors.Newf(errors.ErrCodeIndicatorAlreadyExists, "indicator with name %s already registered", name)
	}

	r.factories[name] = factory

	return nil
}

// GetIndicator returns a fresh default configuration for the named indicator.
func (r *IndicatorRegistryV1[T]) GetIndicator(name IndicatorType) (IndicatorConfig[T], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, errors.Newf(errors.ErrCodeIndicatorNotFound, "indicator with name %s not found", name)
	}

	return factory(), nil
}

// ListIndicators returns the sorted names of all registered indicators.
func (r *IndicatorRegistryV1[T]) ListIndicators() []IndicatorType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]IndicatorType, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	return names
}

// RemoveIndicator removes an indicator from the registry.
func (r *IndicatorRegistryV1[T]) RemoveIndicator(name IndicatorType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; !exists {
		return errors.Newf(errors.ErrCodeIndicatorNotFound, "indicator with name %s not found", name)
	}

	delete(r.factories, name)

	return nil
}
