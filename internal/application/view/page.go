package view

import (
	"fmt"
	"math"
	"time"

	"go-weather/internal/domain/aggregation"
	"go-weather/internal/domain/entity"
)

const iconURLFormat = "http://openweathermap.org/img/wn/%s@2x.png"

// Page is the data rendered by the index template.
type Page struct {
	Search  string
	Error   string
	Theme   string
	City    string
	Current *Conditions
	Days    []DayCard
	// APIBase is the prefix of the JSON API, used by the locate button.
	APIBase string
}

// Conditions is the detailed card for the day being shown.
type Conditions struct {
	Timestamp   int64
	DayName     string
	Main        string
	Description string
	IconURL     string
	Temp        int
	FeelsLike   int
	Wind        int
	Humidity    int
	Visibility  int
}

// DayCard is one entry of the day strip.
type DayCard struct {
	Timestamp int64
	DayName   string
	IconURL   string
	Temp      int
	Selected  bool
	// Toggle is the day to request when the card is clicked; 0 goes back to today.
	Toggle int64
}

// NewErrorPage renders the search form with an error message instead of a forecast.
func NewErrorPage(search string, message string) Page {
	return Page{Search: search, Error: message}
}

// NewPage builds the view for a condensed forecast. The first day is the current
// conditions and the rest form the strip; selectedDay picks a strip day by its
// timestamp and falls back to the first day when it matches none.
func NewPage(search string, forecast *entity.AggregatedForecast, selectedDay int64) Page {
	page := Page{Search: search, City: forecast.City.Name, Days: []DayCard{}}
	if page.Search == "" {
		page.Search = forecast.City.Name
	}
	if len(forecast.List) == 0 {
		return page
	}

	today := forecast.List[0]
	shown := today
	for _, day := range forecast.List[1:] {
		if selectedDay != 0 && day.Timestamp == selectedDay {
			shown = day
			break
		}
	}

	for _, day := range forecast.List[1:] {
		card := DayCard{
			Timestamp: day.Timestamp,
			DayName:   DayName(day.TimestampText, false),
			Temp:      round(day.Temperature()),
			Selected:  day.Timestamp == shown.Timestamp && shown.Timestamp != today.Timestamp,
			Toggle:    day.Timestamp,
		}
		if condition, ok := day.Condition(); ok {
			card.IconURL = IconURL(condition.Icon)
		}
		if card.Selected {
			card.Toggle = 0
		}
		page.Days = append(page.Days, card)
	}

	page.Current = newConditions(shown)
	if condition, ok := shown.Condition(); ok {
		page.Theme = Theme(condition.ID)
	}

	return page
}

func newConditions(day entity.DailyForecast) *Conditions {
	conditions := &Conditions{
		Timestamp:  day.Timestamp,
		DayName:    DayName(day.TimestampText, true),
		Temp:       round(day.Temperature()),
		FeelsLike:  round(day.Main.FeelsLike),
		Wind:       round(day.Wind.Speed),
		Humidity:   round(day.Main.Humidity),
		Visibility: round(float64(day.Visibility) / 1000),
	}
	if condition, ok := day.Condition(); ok {
		conditions.Main = condition.Main
		conditions.Description = condition.Description
		conditions.IconURL = IconURL(condition.Icon)
	}
	return conditions
}

// DayName returns the English weekday of a forecast timestamp, e.g. "Monday" or "Mon".
// An unparsable timestamp yields an empty name.
func DayName(timestampText string, long bool) string {
	t, err := time.Parse(aggregation.TimestampLayout, timestampText)
	if err != nil {
		return ""
	}
	name := t.Weekday().String()
	if long {
		return name
	}
	return name[:3]
}

// IconURL returns the upstream artwork for a condition icon code.
func IconURL(icon string) string {
	if icon == "" {
		return ""
	}
	return fmt.Sprintf(iconURLFormat, icon)
}

// round rounds half up, so -0.5 becomes 0 and 2.5 becomes 3.
func round(value float64) int {
	return int(math.Floor(value + 0.5))
}
