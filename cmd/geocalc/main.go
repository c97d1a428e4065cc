package main

import (
	"context"
	"errors"
	"fmt"
	"geocalc/internal/adapters/distance"
	"geocalc/internal/config"
	"geocalc/internal/domain"
	"geocalc/internal/platform/obs"
	"geocalc/internal/services"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const usage = `usage:
  geocalc distance    <lat1> <lon1> <lat2> <lon2>
  geocalc azimuth     <lat1> <lon1> <lat2> <lon2>
  geocalc midpoint    <lat1> <lon1> <lat2> <lon2>
  geocalc destination <lat> <lon> <azimuthDeg> <distanceM>
  geocalc matrix      <origin lat,lon> <dest lat,lon>...`

var errUsage = errors.New(usage)

// main is the composition root: it loads config, builds the logger and runs one command.
func main() {
	bootLog := obs.NewLogger(os.Stderr, config.DefaultLogLevel)
	if !config.LoadDotEnv() {
		bootLog.Debug().Msg("no .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("load config")
	}
	logger := obs.NewLogger(os.Stderr, cfg.LogLevel)

	if err := run(context.Background(), os.Args[1:], os.Stdout, cfg, logger); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		logger.Error().Err(err).Msg("geocalc failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer, cfg config.Config, logger zerolog.Logger) (err error) {
	if len(args) == 0 {
		return errUsage
	}

	cmd, rest := args[0], args[1:]
	defer obs.Time(ctx, logger, "geocalc."+cmd)(&err)

	switch cmd {
	case "distance", "azimuth", "midpoint":
		nums, err := parseFloats(rest, 4)
		if err != nil {
			return err
		}
		p1 := domain.NewGeoPoint(nums[0], nums[1])
		p2 := domain.NewGeoPoint(nums[2], nums[3])

		switch cmd {
		case "distance":
			d, err := services.CalcDistance(p1, p2)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatFloat(d, cfg.Precision))
		case "azimuth":
			az, err := services.CalcAzimuthDegree(p1, p2)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatFloat(az, cfg.Precision))
		default:
			mid, err := services.CalcMidpoint(p1, p2)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatPoint(mid, cfg.Precision))
		}
		return nil

	case "destination":
		nums, err := parseFloats(rest, 4)
		if err != nil {
			return err
		}
		dest, err := services.CalcDestination(domain.NewGeoPoint(nums[0], nums[1]), nums[2], nums[3])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, formatPoint(dest, cfg.Precision))
		return nil

	case "matrix":
		if len(rest) < 2 {
			return errUsage
		}
		provider, err := distance.NewGreatCircleProvider(cfg.SpeedMPS, logger)
		if err != nil {
			return err
		}
		origin, destinations := rest[0], rest[1:]
		results, err := provider.GetDistances(ctx, origin, destinations)
		if err != nil {
			return err
		}
		for _, d := range destinations {
			r := results[d]
			fmt.Fprintf(out, "%s %s %s %d\n",
				d,
				formatFloat(r.DistanceMeters, cfg.Precision),
				formatFloat(r.AzimuthDegrees, cfg.Precision),
				r.DurationSeconds,
			)
		}
		return nil
	}

	return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
}

func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("want %d numeric arguments, got %d: %w", n, len(args), errUsage)
	}

	nums := make([]float64, n)
	for i, a := range args {
		f, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		nums[i] = f
	}
	return nums, nil
}

func formatFloat(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}

func formatPoint(p domain.GeoPoint, precision int) string {
	return formatFloat(p.Lat, precision) + " " + formatFloat(p.Lon, precision)
}
