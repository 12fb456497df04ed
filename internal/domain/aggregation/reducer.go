package aggregation

import "go-weather/internal/domain/entity"

// Reducer folds forecast samples into one representative per day.
//
// The first sample seen for a day becomes its representative and fixes the
// day's position in the output. A later sample of the same day replaces it
// only if its temperature is strictly greater, so the representative is the
// earliest sample reaching the day's maximum temperature.
type Reducer struct {
	dayKey DayKeyFunc
	days   *orderedMap[DayKey, entity.ForecastSample]
}

// NewReducer creates an empty reducer. A nil dayKey selects DayOfMonth.
func NewReducer(dayKey DayKeyFunc) *Reducer {
	if dayKey == nil {
		dayKey = DayOfMonth
	}
	return &Reducer{
		dayKey: dayKey,
		days:   newOrderedMap[DayKey, entity.ForecastSample](),
	}
}

// Add offers the next sample, in input order.
func (r *Reducer) Add(sample entity.ForecastSample) error {
	key, err := r.dayKey(sample.TimestampText)
	if err != nil {
		return err
	}

	current, ok := r.days.Get(key)
	if ok && sample.Temperature() <= current.Temperature() {
		return nil
	}

	r.days.Set(key, sample)
	return nil
}

// Keys returns the distinct day keys seen so far, in first-occurrence order.
func (r *Reducer) Keys() []DayKey {
	return r.days.Keys()
}

// Representatives returns the chosen sample of each day, in first-occurrence order.
func (r *Reducer) Representatives() []entity.ForecastSample {
	return r.days.Values()
}
