package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/weather-card/internal/app"
	"github.com/i474232898/weather-card/internal/config"
	"github.com/i474232898/weather-card/internal/render"
	"github.com/i474232898/weather-card/internal/weather"
)

func main() {
	var (
		lat        = flag.Float64("lat", 0, "latitude override (requires -lon)")
		lon        = flag.Float64("lon", 0, "longitude override (requires -lat)")
		query      = flag.String("q", "", "place name to search for, e.g. \"Curitiba, PR\"")
		fahrenheit = flag.Bool("f", false, "show temperatures in Fahrenheit")
		verbose    = flag.Bool("v", false, "log diagnostics to stderr")
	)
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	service := app.NewWeatherService(cfg)
	v := weather.NewViewState(uuid.NewString())

	latSet, lonSet := flagSet("lat"), flagSet("lon")
	switch {
	case latSet != lonSet:
		fmt.Fprintln(os.Stderr, "-lat and -lon must be given together")
		os.Exit(2)
	case latSet:
		v = service.Search(ctx, v, weather.Coordinates{Latitude: *lat, Longitude: *lon})
	case *query != "":
		v, _ = service.SearchPlace(ctx, v, *query)
	default:
		v = service.Load(ctx, v)
	}

	if *fahrenheit {
		v = v.ToggleUnit()
	}

	for _, n := range v.Notices {
		fmt.Fprintln(os.Stderr, n.Message)
	}

	fmt.Println(render.Card(v))

	if v.Phase != weather.PhaseReady {
		os.Exit(1)
	}
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
