package aggregation

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"go-weather/internal/domain/entity"
)

func sample(dt int64, text string, temp float64) entity.ForecastSample {
	return entity.ForecastSample{
		Timestamp:     dt,
		TimestampText: text,
		Main:          entity.Measurements{Temp: temp},
		Weather:       []entity.WeatherCondition{{ID: 800, Main: "Clear", Description: "clear sky", Icon: "01d"}},
	}
}

func timestamps(days []entity.DailyForecast) []int64 {
	out := make([]int64, len(days))
	for i, d := range days {
		out[i] = d.Timestamp
	}
	return out
}

// series builds n samples 3 hours apart starting at start, with a deterministic
// temperature curve that repeats values so ties occur.
func series(start time.Time, n int) []entity.ForecastSample {
	samples := make([]entity.ForecastSample, n)
	for i := 0; i < n; i++ {
		ts := start.Add(time.Duration(i) * 3 * time.Hour)
		temp := float64((i*7)%5) + 10
		samples[i] = sample(ts.Unix(), ts.Format(TimestampLayout), temp)
	}
	return samples
}

func TestCondenseDaysExample(t *testing.T) {
	input := []entity.ForecastSample{
		sample(1, "2024-05-05 00:00:00", 10),
		sample(2, "2024-05-05 03:00:00", 15),
		sample(3, "2024-05-06 00:00:00", 8),
		sample(4, "2024-05-05 06:00:00", 15),
	}

	got, err := CondenseDays(input, DayOfMonth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := []int64{2, 3}; !reflect.DeepEqual(timestamps(got), want) {
		t.Errorf("expected samples %v, got %v", want, timestamps(got))
	}
	if got[0].Temperature() != 15 || got[1].Temperature() != 8 {
		t.Errorf("unexpected temperatures %v / %v", got[0].Temperature(), got[1].Temperature())
	}
}

func TestCondenseDaysTieKeepsEarliest(t *testing.T) {
	input := []entity.ForecastSample{
		sample(1, "2024-05-05 09:00:00", 20),
		sample(2, "2024-05-05 12:00:00", 20),
	}

	got, err := CondenseDays(input, DayOfMonth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Timestamp != 1 {
		t.Errorf("expected the earlier sample to win the tie, got %v", timestamps(got))
	}
}

func TestCondenseDaysStrictlyIncreasingPicksLast(t *testing.T) {
	input := []entity.ForecastSample{
		sample(1, "2024-05-05 06:00:00", 11),
		sample(2, "2024-05-05 09:00:00", 12.5),
		sample(3, "2024-05-05 12:00:00", 14),
	}

	got, err := CondenseDays(input, DayOfMonth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Timestamp != 3 {
		t.Errorf("expected the last sample, got %v", timestamps(got))
	}
}

func TestCondenseDaysKeepsFirstOccurrenceOrder(t *testing.T) {
	input := []entity.ForecastSample{
		sample(1, "2024-05-07 00:00:00", 5),
		sample(2, "2024-05-05 00:00:00", 5),
		sample(3, "2024-05-06 00:00:00", 5),
		sample(4, "2024-05-05 03:00:00", 9),
	}

	got, err := CondenseDays(input, DayOfMonth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int64{1, 4, 3}; !reflect.DeepEqual(timestamps(got), want) {
		t.Errorf("expected %v, got %v", want, timestamps(got))
	}
}

func TestCondenseDaysEmpty(t *testing.T) {
	for name, input := range map[string][]entity.ForecastSample{"nil": nil, "empty": {}} {
		got, err := CondenseDays(input, DayOfMonth)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("%s: expected empty non-nil result, got %#v", name, got)
		}
	}
}

func TestCondenseDaysMalformedTimestamp(t *testing.T) {
	input := []entity.ForecastSample{
		sample(1, "2024-05-05 00:00:00", 10),
		sample(2, "not a date", 12),
	}

	got, err := CondenseDays(input, DayOfMonth)
	if !errors.Is(err, ErrMalformedTimestamp) {
		t.Fatalf("expected ErrMalformedTimestamp, got %v", err)
	}
	if got != nil {
		t.Errorf("expected no partial result, got %v", got)
	}
}

func TestCondenseDaysMonthBoundary(t *testing.T) {
	acrossMonthEnd := []entity.ForecastSample{
		sample(1, "2024-01-31 21:00:00", 3),
		sample(2, "2024-02-01 00:00:00", 1),
	}
	got, err := CondenseDays(acrossMonthEnd, DayOfMonth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("31st and 1st must be different days, got %v", timestamps(got))
	}

	// Same day of month in different months shares a key: the known limitation
	// of the day-of-month strategy.
	sameDayOfMonth := []entity.ForecastSample{
		sample(1, "2024-01-05 12:00:00", 3),
		sample(2, "2024-02-05 12:00:00", 4),
	}
	got, err = CondenseDays(sameDayOfMonth, DayOfMonth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Timestamp != 2 {
		t.Errorf("expected day-of-month key to collapse both samples, got %v", timestamps(got))
	}

	got, err = CondenseDays(sameDayOfMonth, CalendarDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int64{1, 2}; !reflect.DeepEqual(timestamps(got), want) {
		t.Errorf("expected calendar-date key to keep both samples, got %v", timestamps(got))
	}
}

func TestCondenseDaysProperties(t *testing.T) {
	starts := []time.Time{
		time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 29, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 30, 9, 0, 0, 0, time.UTC),
	}

	for _, start := range starts {
		t.Run(start.Format("2006-01-02"), func(t *testing.T) {
			input := series(start, 40)

			distinct := map[DayKey]bool{}
			var firstSeen []DayKey
			for _, s := range input {
				key, err := DayOfMonth(s.TimestampText)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !distinct[key] {
					firstSeen = append(firstSeen, key)
				}
				distinct[key] = true
			}

			got, err := CondenseDays(input, DayOfMonth)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(got) != len(distinct) {
				t.Fatalf("expected %d days, got %d", len(distinct), len(got))
			}

			for i, day := range got {
				key, _ := DayOfMonth(day.TimestampText)
				if key != firstSeen[i] {
					t.Errorf("day %d: expected key %d, got %d", i, firstSeen[i], key)
				}
				for _, s := range input {
					sKey, _ := DayOfMonth(s.TimestampText)
					if sKey == key && s.Temperature() > day.Temperature() {
						t.Errorf("day %d: representative %.1f is below the day maximum %.1f", key, day.Temperature(), s.Temperature())
					}
				}
			}

			again, err := CondenseDays(input, DayOfMonth)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, again) {
				t.Error("aggregation is not idempotent")
			}
		})
	}
}

func TestAggregatePassesCityThrough(t *testing.T) {
	city := entity.City{
		ID:      2618425,
		Name:    "Copenhagen",
		Coord:   entity.Coordinates{Lat: 55.6759, Lon: 12.5655},
		Country: "DK",
	}

	input := entity.Forecast{Cod: "200", Count: 40, City: city, List: series(time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC), 40)}
	before := make([]entity.ForecastSample, len(input.List))
	copy(before, input.List)

	got, err := Aggregate(input, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(got.City, city) {
		t.Errorf("city metadata changed: %+v", got.City)
	}
	if got.Cod != "200" || got.Count != 40 {
		t.Errorf("envelope not passed through: cod=%q cnt=%d", got.Cod, got.Count)
	}
	if len(got.List) != 5 {
		t.Errorf("expected 5 days, got %d", len(got.List))
	}
	if !reflect.DeepEqual(input.List, before) {
		t.Error("input samples were modified")
	}
}

func TestAggregateEmptyList(t *testing.T) {
	city := entity.City{Name: "Nowhere"}

	got, err := Aggregate(entity.Forecast{City: city}, DayOfMonth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.List == nil || len(got.List) != 0 {
		t.Errorf("expected empty list, got %#v", got.List)
	}
	if got.City.Name != "Nowhere" {
		t.Errorf("expected city metadata to be kept, got %+v", got.City)
	}
}

func TestAggregateMalformedTimestamp(t *testing.T) {
	input := entity.Forecast{
		City: entity.City{Name: "Oslo"},
		List: []entity.ForecastSample{sample(1, fmt.Sprintf("%d", 1714867200), 3)},
	}

	if _, err := Aggregate(input, DayOfMonth); !errors.Is(err, ErrMalformedTimestamp) {
		t.Fatalf("expected ErrMalformedTimestamp, got %v", err)
	}
}
