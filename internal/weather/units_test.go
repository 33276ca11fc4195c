package weather

import "testing"

func TestRoundTemp(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{21.6, 22},
		{21.4, 21},
		{2.5, 3},
		{-0.4, 0},
		{-2.5, -3},
	}

	for _, tt := range tests {
		if got := RoundTemp(tt.in); got != tt.want {
			t.Errorf("RoundTemp(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestConversions(t *testing.T) {
	if got := CelsiusToFahrenheit(22); got != 72 {
		t.Errorf("CelsiusToFahrenheit(22) = %d, want 72", got)
	}
	if got := FahrenheitToCelsius(72); got != 22 {
		t.Errorf("FahrenheitToCelsius(72) = %d, want 22", got)
	}
	if got := CelsiusToFahrenheit(-40); got != -40 {
		t.Errorf("CelsiusToFahrenheit(-40) = %d, want -40", got)
	}
	if got := FahrenheitToCelsius(32); got != 0 {
		t.Errorf("FahrenheitToCelsius(32) = %d, want 0", got)
	}
}

func testSnapshot() WeatherSnapshot {
	return WeatherSnapshot{
		Unit: Celsius,
		Current: CurrentConditions{
			Temp:                 22,
			Humidity:             60,
			Pressure:             1012,
			WindSpeed:            3.5,
			WindDirection:        "NE",
			ConditionDescription: "céu limpo",
			Condition:            "Clear",
		},
		Tomorrow: DayOutlook{Temp: 25, Condition: "Clouds"},
		DayAfter: DayOutlook{Temp: 18, Condition: "Rain"},
	}
}

func TestToggleUnit_ConvertsAllTemps(t *testing.T) {
	got := ToggleUnit(testSnapshot())

	if got.Unit != Fahrenheit {
		t.Fatalf("Unit = %q, want %q", got.Unit, Fahrenheit)
	}
	if got.Current.Temp != 72 {
		t.Errorf("Current.Temp = %d, want 72", got.Current.Temp)
	}
	if got.Tomorrow.Temp != 77 {
		t.Errorf("Tomorrow.Temp = %d, want 77", got.Tomorrow.Temp)
	}
	if got.DayAfter.Temp != 64 {
		t.Errorf("DayAfter.Temp = %d, want 64", got.DayAfter.Temp)
	}
	if got.Current.Condition != "Clear" || got.Current.Humidity != 60 {
		t.Errorf("non-temperature fields changed: %+v", got.Current)
	}
}

func TestToggleUnit_TwiceStaysWithinOneDegree(t *testing.T) {
	for c := -60; c <= 60; c++ {
		s := WeatherSnapshot{
			Unit:     Celsius,
			Current:  CurrentConditions{Temp: c},
			Tomorrow: DayOutlook{Temp: c + 1},
			DayAfter: DayOutlook{Temp: c - 1},
		}

		back := ToggleUnit(ToggleUnit(s))
		if back.Unit != Celsius {
			t.Fatalf("unit after two toggles = %q, want %q", back.Unit, Celsius)
		}
		for _, pair := range [][2]int{
			{back.Current.Temp, s.Current.Temp},
			{back.Tomorrow.Temp, s.Tomorrow.Temp},
			{back.DayAfter.Temp, s.DayAfter.Temp},
		} {
			if d := pair[0] - pair[1]; d < -1 || d > 1 {
				t.Errorf("round trip of %d°C gave %d°C", pair[1], pair[0])
			}
		}
	}
}

func TestViewState_ToggleUnit(t *testing.T) {
	snap := testSnapshot()
	v := NewViewState("view")
	v.Snapshot = &snap

	toggled := v.ToggleUnit()

	if toggled.Unit != Fahrenheit || toggled.Snapshot.Unit != Fahrenheit {
		t.Fatalf("unit flag %q and snapshot unit %q, want both F", toggled.Unit, toggled.Snapshot.Unit)
	}
	if v.Unit != Celsius || v.Snapshot.Current.Temp != 22 {
		t.Errorf("input view was modified: unit=%q temp=%d", v.Unit, v.Snapshot.Current.Temp)
	}

	back := toggled.ToggleUnit()
	if back.Unit != Celsius || back.Snapshot.Current.Temp != 22 {
		t.Errorf("after two toggles unit=%q temp=%d, want C 22", back.Unit, back.Snapshot.Current.Temp)
	}
}

func TestViewState_ToggleUnitWithoutSnapshot(t *testing.T) {
	v := NewViewState("view").ToggleUnit()
	if v.Unit != Fahrenheit {
		t.Errorf("Unit = %q, want %q", v.Unit, Fahrenheit)
	}
	if v.Snapshot != nil {
		t.Errorf("Snapshot = %+v, want nil", v.Snapshot)
	}
}
