package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/cornelk/hashmap"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/m1guelpf/aranet-go/internal/ble"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Discover nearby Aranet4 devices",
	Long: `Scans for BLE advertisements and lists the devices seen.

By default only Aranet4 devices are shown; use --all to list every
advertising peripheral.

Examples:
  # Scan for Aranet4 devices for 10 seconds
  aranet4 scan

  # Scan for 30 seconds and show everything in range
  aranet4 scan --duration 30s --all`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

var (
	scanDuration time.Duration
	scanAll      bool
)

func init() {
	scanCmd.Flags().DurationVar(&scanDuration, "duration", 10*time.Second, "How long to scan")
	scanCmd.Flags().BoolVar(&scanAll, "all", false, "List every peripheral, not just Aranet4 devices")
}

func runScan(cmd *cobra.Command, args []string) error {
	opts, logger, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	adapter, err := ble.AdapterFactory(logger)
	if err != nil {
		return fmt.Errorf("failed to find a Bluetooth adapter: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), scanDuration)
	defer cancel()

	seen := hashmap.New[string, ble.Advertisement]()
	if err := adapter.Scan(ctx, true, func(adv ble.Advertisement) {
		seen.Set(adv.Addr(), adv)
	}); err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	var devices []ble.Advertisement
	seen.Range(func(_ string, adv ble.Advertisement) bool {
		if scanAll || strings.HasPrefix(adv.LocalName(), opts.NamePrefix) {
			devices = append(devices, adv)
		}
		return true
	})
	sort.Slice(devices, func(i, j int) bool {
		return devices[i].RSSI() > devices[j].RSSI()
	})

	if len(devices) == 0 {
		fmt.Println("No devices found")
		return nil
	}

	highlight := color.New(color.FgGreen, color.Bold)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	fmt.Printf("%-24s %-20s %-6s %s\n", "NAME", "ADDRESS", "RSSI", "CONNECTABLE")
	for _, adv := range devices {
		name := adv.LocalName()
		if name == "" {
			name = "(unknown)"
		}
		if strings.HasPrefix(name, opts.NamePrefix) {
			name = highlight.Sprint(name)
		}
		connectable := "yes"
		if !adv.Connectable() {
			connectable = "no"
		}
		fmt.Printf("%-24s %-20s %-6d %s\n", name, adv.Addr(), adv.RSSI(), connectable)
	}
	return nil
}
