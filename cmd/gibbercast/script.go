package main

import (
	"fmt"
	"time"

	"github.com/example/gibbercast/internal/script"
	"github.com/spf13/cobra"
)

func newScriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "script",
		Short: "Build the spoken script text for a daily video",
	}

	cmd.AddCommand(newScriptWeatherCmd())
	cmd.AddCommand(newScriptRamadanCmd())

	return cmd
}

func newScriptWeatherCmd() *cobra.Command {
	var temp float64
	var ww int
	var city string
	var forecastTemp float64
	var forecastWW int

	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Build a Dutch weather script from observation values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := activeCfg

			if city == "" {
				city = cfg.Script.City
			}
			condition := script.Condition(ww)

			var forecast *script.Forecast
			if forecastWW >= 0 {
				forecast = &script.Forecast{
					Temp:      forecastTemp,
					Condition: script.Condition(forecastWW),
				}
			}

			mood, music := script.Mood(temp, condition, forecast)
			builder := script.NewBuilder(newRand(cfg.Voice.Seed))
			text := builder.WeatherScript(script.WeatherParams{
				City:      city,
				TempC:     temp,
				Condition: condition,
				Mood:      mood,
				Forecast:  forecast,
			})

			fmt.Fprintln(cmd.OutOrStdout(), text)
			fmt.Fprintf(cmd.ErrOrStderr(), "music: %s\n", music)
			return nil
		},
	}

	cmd.Flags().Float64Var(&temp, "temp", 10, "Observed temperature in °C")
	cmd.Flags().IntVar(&ww, "ww", 2, "WMO 4677 present-weather code")
	cmd.Flags().StringVar(&city, "city", "", "City name (overrides config)")
	cmd.Flags().Float64Var(&forecastTemp, "forecast-temp", 0, "Forecast temperature in °C (with --forecast-ww)")
	cmd.Flags().IntVar(&forecastWW, "forecast-ww", -1, "Forecast WMO code (-1 = no forecast)")

	return cmd
}

func newScriptRamadanCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "ramadan",
		Short: "Build the Dutch intro line for the daily verse video",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := activeCfg

			if !force && !script.InRamadan(time.Now()) {
				return fmt.Errorf("ramadan starts on %s; use --force to build the intro anyway",
					script.RamadanStart.Format("2 January 2006"))
			}

			builder := script.NewBuilder(newRand(cfg.Voice.Seed))
			fmt.Fprintln(cmd.OutOrStdout(), builder.RamadanIntro())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Build the intro even before the Ramadan start date")

	return cmd
}
