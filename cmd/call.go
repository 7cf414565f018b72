package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sigmalogic/deviceprobe/internal/channel"
	"github.com/spf13/cobra"
)

func newCallCmd() *cobra.Command {
	var rawArgs string

	cmd := &cobra.Command{
		Use:   "call <method>",
		Short: "Send one method call to the device-info channel and print the reply",
		Example: `  deviceprobe call getOSVersion
  deviceprobe call getBatteryLevel`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, positional []string) error {
			_, c := newDeviceChannel()

			var payload []byte
			if rawArgs != "" {
				payload = []byte(rawArgs)
			}

			value, err := c.InvokeMethod(context.Background(), positional[0], payload)
			var replyErr *channel.Error
			switch {
			case errors.Is(err, channel.ErrNotImplemented):
				return errors.Errorf("%s: not implemented", positional[0])
			case errors.As(err, &replyErr):
				return replyErr
			case err != nil:
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(value))
			return nil
		},
	}

	cmd.Flags().StringVar(&rawArgs, "args", "", "JSON arguments sent with the call (ignored by every current method)")
	return cmd
}
