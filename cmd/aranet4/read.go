package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/m1guelpf/aranet-go/aranet"
)

// readCmd represents the read command
var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read the current sensor measurements",
	Long: `Connects to the nearest Aranet4 device and reads the current measurements.

Examples:
  # Read once and print a human-readable summary
  aranet4 read

  # Machine-readable output
  aranet4 read --json

  # Re-read every 30 seconds until interrupted
  aranet4 read --watch 30s

  # Write identity and measurements to a file
  aranet4 read --output aranet.txt`,
	Args: cobra.NoArgs,
	RunE: runRead,
}

var (
	readJSON   bool
	readWatch  time.Duration
	readOutput string
)

func init() {
	readCmd.Flags().BoolVar(&readJSON, "json", false, "Output as JSON")
	readCmd.Flags().DurationVar(&readWatch, "watch", 0, "Re-read at this interval (e.g. 30s); 0 reads once")
	readCmd.Flags().StringVar(&readOutput, "output", "", "Write identity and measurements to a file instead of stdout")
}

// measurementJSON is the wire shape of --json output; units are pinned in the
// field names so consumers don't have to guess.
type measurementJSON struct {
	CO2             uint16  `json:"co2_ppm"`
	Temperature     float64 `json:"temperature_c"`
	Pressure        uint16  `json:"pressure_hpa"`
	Humidity        uint8   `json:"humidity_pct"`
	Battery         uint8   `json:"battery_pct"`
	Status          string  `json:"status"`
	Interval        int64   `json:"interval_s"`
	SinceLastUpdate int64   `json:"since_last_update_s"`
}

func runRead(cmd *cobra.Command, args []string) error {
	opts, _, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	device, err := aranet.Connect(ctx, opts)
	if err != nil {
		return err
	}
	defer device.Disconnect()

	if readOutput != "" {
		return writeDump(ctx, device, readOutput)
	}

	for {
		m, err := device.ReadMeasurement(ctx)
		if err != nil {
			return err
		}
		if err := printMeasurement(m); err != nil {
			return err
		}
		if readWatch <= 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(readWatch):
		}
	}
}

func printMeasurement(m aranet.Measurement) error {
	if readJSON {
		out := measurementJSON{
			CO2:             m.CO2,
			Temperature:     m.Temperature,
			Pressure:        m.Pressure,
			Humidity:        m.Humidity,
			Battery:         m.Battery,
			Status:          m.Status.String(),
			Interval:        int64(m.Interval / time.Second),
			SinceLastUpdate: int64(m.SinceLastUpdate / time.Second),
		}
		data, err := json.Marshal(out)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("CO2:         %d ppm (%s)\n", m.CO2, colorStatus(m.Status))
	fmt.Printf("Temperature: %.2f °C\n", m.Temperature)
	fmt.Printf("Pressure:    %d hPa\n", m.Pressure)
	fmt.Printf("Humidity:    %d %%\n", m.Humidity)
	fmt.Printf("Battery:     %d %%\n", m.Battery)
	fmt.Printf("Updated %s ago, measures every %s\n", m.SinceLastUpdate, m.Interval)
	return nil
}

func colorStatus(s aranet.Status) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return s.String()
	}
	switch s {
	case aranet.StatusGreen:
		return color.GreenString(s.String())
	case aranet.StatusAmber:
		return color.YellowString(s.String())
	case aranet.StatusRed:
		return color.RedString(s.String())
	}
	return s.String()
}

// writeDump stores the identity record and one measurement as plain text, one
// value per line.
func writeDump(ctx context.Context, device *aranet.Device, path string) error {
	identity, err := device.ReadIdentity(ctx)
	if err != nil {
		return err
	}
	m, err := device.ReadMeasurement(ctx)
	if err != nil {
		return err
	}

	content := fmt.Sprintf("%s\n%s\n%s\n%s\n%s\n%g\n%d\n%d\n%d\n%d\n",
		identity.ManufacturerName,
		identity.ModelNumber,
		identity.SerialNumber,
		identity.HardwareRevision,
		identity.FirmwareRevision,
		m.Temperature,
		m.Humidity,
		m.CO2,
		m.Pressure,
		m.Battery,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
