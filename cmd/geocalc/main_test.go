package main

import (
	"bytes"
	"context"
	"errors"
	"geocalc/internal/config"
	"geocalc/internal/services"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = config.Config{LogLevel: "info", Precision: 4, SpeedMPS: 10}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), args, &out, testConfig, zerolog.Nop())
	return strings.TrimSpace(out.String()), err
}

func TestRunDistance(t *testing.T) {
	out, err := runCLI(t, "distance", "0", "-60", "-60", "10")
	require.NoError(t, err)

	got, err := strconv.ParseFloat(out, 64)
	require.NoError(t, err)
	assert.InDelta(t, 8912230, got, 1000)
}

func TestRunAzimuth(t *testing.T) {
	out, err := runCLI(t, "azimuth", "0", "0", "0", "10")
	require.NoError(t, err)
	assert.Equal(t, "90.0000", out)
}

func TestRunMidpoint(t *testing.T) {
	out, err := runCLI(t, "midpoint", "0", "90", "0", "0")
	require.NoError(t, err)
	assert.Equal(t, "0.0000 45.0000", out)
}

func TestRunDestination(t *testing.T) {
	out, err := runCLI(t, "destination", "30", "60", "0", "0")
	require.NoError(t, err)
	assert.Equal(t, "30.0000 60.0000", out)
}

func TestRunMatrix(t *testing.T) {
	out, err := runCLI(t, "matrix", "0,0", "0,10", "10,0")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)

	fields := strings.Fields(lines[0])
	require.Len(t, fields, 4)
	assert.Equal(t, "0,10", fields[0])
	assert.Equal(t, "90.0000", fields[2])

	fields = strings.Fields(lines[1])
	require.Len(t, fields, 4)
	assert.Equal(t, "10,0", fields[0])
	assert.Equal(t, "0.0000", fields[2])
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name  string
		args  []string
		usage bool
	}{
		{"no args", nil, true},
		{"unknown command", []string{"area"}, true},
		{"too few numbers", []string{"distance", "1", "2"}, true},
		{"matrix without destinations", []string{"matrix", "0,0"}, true},
		{"not a number", []string{"azimuth", "a", "0", "0", "0"}, false},
		{"invalid point", []string{"distance", "100", "-10", "30", "-60"}, false},
		{"invalid distance", []string{"destination", "0", "0", "90", "-1500"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runCLI(t, tc.args...)
			require.Error(t, err)
			assert.Equal(t, tc.usage, errors.Is(err, errUsage))
		})
	}
}

func TestRunInvalidPointIsInvalidArgument(t *testing.T) {
	_, err := runCLI(t, "midpoint", "-100", "90", "0", "200")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "(-100, 90)")
	assert.Contains(t, err.Error(), "(0, 200)")
}
