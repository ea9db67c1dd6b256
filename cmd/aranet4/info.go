package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m1guelpf/aranet-go/aranet"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the device identity",
	Long: `Connects to the nearest Aranet4 device and reads the standard
Device Information Service values.`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
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

	identity, err := device.ReadIdentity(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Manufacturer:      %s\n", identity.ManufacturerName)
	fmt.Printf("Model:             %s\n", identity.ModelNumber)
	fmt.Printf("Serial number:     %s\n", identity.SerialNumber)
	fmt.Printf("Hardware revision: %s\n", identity.HardwareRevision)
	fmt.Printf("Firmware revision: %s\n", identity.FirmwareRevision)
	fmt.Printf("Software revision: %s\n", identity.SoftwareRevision)
	return nil
}
