package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rejdeboer/dhcp-decoder/internal/application"
	"github.com/rejdeboer/dhcp-decoder/internal/layout"
	"github.com/rejdeboer/dhcp-decoder/internal/logger"
	"github.com/rejdeboer/dhcp-decoder/internal/output"
)

var (
	layoutPath string
	hexInput   string
	inputFile  string
	strict     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Decode input with a layout",
	Long: `Decode input with a layout and print the fields.

Input is taken from --hex, from --file (raw bytes) or as hex from stdin.`,
	Example: `  dhcp-decode run --layout layouts/routers.yml --hex "03 08 0a 00 00 01 0a 00 00 02"
  dhcp-decode run --layout layouts/bootp.yml --file packet.bin --strict`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := layout.LoadFile(layoutPath)
		if err != nil {
			return err
		}

		input, err := readInput(cmd.InOrStdin())
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("strict") {
			settings.Decoder.StrictTermination = strict
		}

		app := application.Build(settings, logger.Get())
		res, err := app.Decode(input, plan)

		w := cmd.OutOrStdout()
		if len(res.Fields) > 0 {
			output.PrintTable(w, output.FieldTable(res.Fields))
		}
		if err != nil {
			return err
		}
		if len(res.Trailing) > 0 {
			fmt.Fprintf(w, "\n%d trailing bytes: %x\n", len(res.Trailing), res.Trailing)
		}
		return nil
	},
}

func readInput(stdin io.Reader) ([]byte, error) {
	switch {
	case hexInput != "" && inputFile != "":
		return nil, errors.New("--hex and --file are mutually exclusive")
	case hexInput != "":
		return application.ParseHex(hexInput)
	case inputFile != "":
		b, err := os.ReadFile(inputFile)
		return b, errors.Wrap(err, "error reading input file")
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		return nil, errors.Wrap(err, "error reading stdin")
	}
	return application.ParseHex(string(b))
}

func init() {
	runCmd.Flags().StringVarP(&layoutPath, "layout", "l", "", "Layout file (required)")
	runCmd.Flags().StringVar(&hexInput, "hex", "", "Input as hex")
	runCmd.Flags().StringVarP(&inputFile, "file", "f", "", "Input file with raw bytes")
	runCmd.Flags().BoolVar(&strict, "strict", false, "Fail on fixed strings without a null terminator")
	_ = runCmd.MarkFlagRequired("layout")
}
