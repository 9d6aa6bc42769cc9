package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/autoflow/autoflow/pkg/converter"
	"github.com/autoflow/autoflow/pkg/domain"
	"github.com/spf13/cobra"
)

func NewConvertCommand() *cobra.Command {
	var (
		sourceFlag string
		targetFlag string
		outFlag    string
	)

	cmd := &cobra.Command{
		Use:   "convert <blueprint-file>",
		Short: "Convert a blueprint between Make.com and n8n formats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args[0], sourceFlag, targetFlag, outFlag)
		},
	}

	cmd.Flags().StringVar(&sourceFlag, "source", "make", "Source platform (make or n8n)")
	cmd.Flags().StringVar(&targetFlag, "target", "n8n", "Target platform (make or n8n)")
	cmd.Flags().StringVarP(&outFlag, "output", "o", "", "Output file (defaults to stdout)")

	return cmd
}

func runConvert(path, source, target, out string) error {
	sourcePlatform, err := domain.ParsePlatform(source)
	if err != nil {
		return err
	}

	targetPlatform, err := domain.ParsePlatform(target)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read blueprint file: %w", err)
	}

	blueprint, err := domain.ParseBlueprint(sourcePlatform, data)
	if err != nil {
		return err
	}

	engine := converter.NewConverter(converter.ConverterDependencies{
		Registry: converter.NewRegistry(),
	})

	result := engine.Convert(blueprint, targetPlatform)
	if !result.Success {
		return fmt.Errorf("conversion failed: %s", strings.Join(result.Warnings, "; "))
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}

	if out == "" {
		fmt.Println(result.ConvertedJSON)
		return nil
	}

	if err := os.WriteFile(out, []byte(result.ConvertedJSON), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Converted blueprint written to %s\n", out)

	return nil
}
