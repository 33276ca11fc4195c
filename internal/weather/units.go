package weather

import "math"

// RoundTemp rounds a temperature to the nearest whole degree, half away from zero.
func RoundTemp(t float64) int {
	return int(math.Round(t))
}

// CelsiusToFahrenheit converts and rounds a whole-degree Celsius temperature.
func CelsiusToFahrenheit(c int) int {
	return RoundTemp(float64(c)*9/5 + 32)
}

// FahrenheitToCelsius converts and rounds a whole-degree Fahrenheit temperature.
func FahrenheitToCelsius(f int) int {
	return RoundTemp(float64(f-32) * 5 / 9)
}

// Other returns the unit a toggle switches to.
func (u Unit) Other() Unit {
	if u == Fahrenheit {
		return Celsius
	}
	return Fahrenheit
}

// ToggleUnit converts all temps of s to the other unit in one step.
func ToggleUnit(s WeatherSnapshot) WeatherSnapshot {
	convert := CelsiusToFahrenheit
	if s.Unit == Fahrenheit {
		convert = FahrenheitToCelsius
	}

	s.Current.Temp = convert(s.Current.Temp)
	s.Tomorrow.Temp = convert(s.Tomorrow.Temp)
	s.DayAfter.Temp = convert(s.DayAfter.Temp)
	s.Unit = s.Unit.Other()
	return s
}

// InUnit returns s expressed in u, converting only when the units differ.
func (s WeatherSnapshot) InUnit(u Unit) WeatherSnapshot {
	if s.Unit == u {
		return s
	}
	return ToggleUnit(s)
}

// ToggleUnit flips the view's unit flag and converts its snapshot together,
// so the displayed temps never end up in mixed units.
func (v ViewState) ToggleUnit() ViewState {
	v.Unit = v.Unit.Other()
	if v.Snapshot != nil {
		converted := v.Snapshot.InUnit(v.Unit)
		v.Snapshot = &converted
	}
	return v
}
