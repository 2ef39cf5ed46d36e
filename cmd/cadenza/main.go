package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cadenza-ml/cadenza/pkg/component/registry"
	"github.com/cadenza-ml/cadenza/pkg/logger"
	"github.com/cadenza-ml/cadenza/pkg/pipeline"

	// Import all built-in components to register them
	_ "github.com/cadenza-ml/cadenza/pkg/components/schemagen"
	_ "github.com/cadenza-ml/cadenza/pkg/components/statisticsgen"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	var logLevel string

	root := &cobra.Command{
		Use:   "cadenza",
		Short: "Cadenza - ML pipeline definition toolkit",
		Long: `Cadenza builds declarative ML pipeline definitions from component
configurations. It validates component wiring at definition time and renders
the specification consumed by the external execution engine; it does not run
pipelines itself.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logger.Config{
				Level:    logLevel,
				Encoding: "console",
			})
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	// Version command
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Cadenza v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	// List command to show available component types
	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available component types",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Available components:")
			for _, info := range registry.ListComponentInfo() {
				fmt.Printf("  - %s: %s\n", info.Name, info.Description)
			}
		},
	})

	// Render command: assemble a definition file and emit the engine spec
	var definitionFile, outFile string
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render a pipeline definition to its engine specification",
		Long: `Render loads a YAML pipeline definition, assembles the declared
components through the registry, validates the wiring, and prints the JSON
specification handed to the execution engine.

Example:
  cadenza render --file pipeline.yaml --out pipeline.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pipeline.FromFile(definitionFile)
			if err != nil {
				return err
			}

			rendered, err := p.Render()
			if err != nil {
				return err
			}

			if outFile == "" {
				fmt.Println(rendered)
				return nil
			}

			if err := os.WriteFile(outFile, []byte(rendered+"\n"), 0644); err != nil { //nolint:gosec
				return err
			}
			logger.Info("pipeline specification written",
				zap.String("pipeline", p.Name()),
				zap.String("path", outFile))
			return nil
		},
	}
	renderCmd.Flags().StringVarP(&definitionFile, "file", "f", "", "pipeline definition file (required)")
	renderCmd.Flags().StringVarP(&outFile, "out", "o", "", "write the specification to a file instead of stdout")
	_ = renderCmd.MarkFlagRequired("file")
	root.AddCommand(renderCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
