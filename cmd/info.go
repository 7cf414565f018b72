package cmd

import (
	"context"
	"fmt"

	units "github.com/docker/go-units"
	"github.com/sigmalogic/deviceprobe/internal/probe"
	"github.com/sigmalogic/deviceprobe/internal/storage"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print every device-info value",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, c := newDeviceChannel()

			s, err := probe.Collect(ctx, c)
			if err != nil {
				return err
			}

			battery := "unavailable"
			if s.BatteryLevel != nil {
				battery = fmt.Sprintf("%d%%", *s.BatteryLevel)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Model:             %s\n", s.Model)
			fmt.Fprintf(out, "OS version:        %s\n", s.OSVersion)
			fmt.Fprintf(out, "Manufacturer:      %s\n", s.Manufacturer)
			fmt.Fprintf(out, "Battery:           %s\n", battery)
			fmt.Fprintf(out, "Total storage:     %s\n", s.TotalStorage)
			fmt.Fprintf(out, "Available storage: %s\n", s.AvailableStorage)

			if vol, err := storage.NewReader().GetInfo(ctx); err == nil {
				fmt.Fprintf(out, "Volume:            %s (%s of %s free)\n",
					vol.Path, units.BytesSize(float64(vol.Available)), units.BytesSize(float64(vol.Total)))
			}
			return nil
		},
	}
}
