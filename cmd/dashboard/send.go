package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rohits-web03/quickdrop/internal/models"
)

var sendEvent models.TransferEvent

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Record a transfer event through the API",
	Example: `  dashboard send --sender laptop --receiver phone --file photo.jpg --size 20480 --type image/jpeg
  dashboard send --sender laptop --receiver phone --file big.iso --successful=false`,
	RunE: runSend,
}

func init() {
	f := sendCmd.Flags()
	f.StringVar(&sendEvent.SenderName, "sender", "", "sender device name")
	f.StringVar(&sendEvent.SenderIP, "sender-ip", "", "sender IP address")
	f.StringVar(&sendEvent.ReceiverName, "receiver", "", "receiver device name")
	f.StringVar(&sendEvent.ReceiverIP, "receiver-ip", "", "receiver IP address")
	f.StringVar(&sendEvent.FileName, "file", "", "file name")
	f.Int64Var(&sendEvent.FileSize, "size", 0, "file size in bytes")
	f.StringVar(&sendEvent.FileType, "type", "", "file type")
	f.StringVar(&sendEvent.Timestamp, "timestamp", "", "ISO-8601 time of the transfer (default: now)")
	f.BoolVar(&sendEvent.Successful, "successful", true, "whether the transfer succeeded")

	_ = sendCmd.MarkFlagRequired("sender")
	_ = sendCmd.MarkFlagRequired("receiver")
	_ = sendCmd.MarkFlagRequired("file")
}

func runSend(cmd *cobra.Command, args []string) error {
	if err := newClient().SendLog(cmd.Context(), sendEvent); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s: %s -> %s\n", sendEvent.FileName, sendEvent.SenderName, sendEvent.ReceiverName)
	return nil
}
