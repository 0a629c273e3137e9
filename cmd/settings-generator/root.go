package main

import (
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"settings-generator/internal/gen"
	"settings-generator/internal/overrides"
	"settings-generator/internal/resolve"
	"settings-generator/internal/schema"
)

var (
	outputPath    string
	packageName   string
	structName    string
	storageID     string
	overridesPath string
	strict        bool
	debug         bool
	quiet         bool
)

var rootCmd = &cobra.Command{
	Use:           "settings-generator [flags] <schema.xml>",
	Short:         "Generate strongly-typed settings accessors from a schema",
	Args:          cobra.ExactArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "settings_gen.go", "output file")
	rootCmd.Flags().StringVarP(&packageName, "package", "p", "config", "package name of the generated file")
	rootCmd.Flags().StringVar(&structName, "struct", "Settings", "name of the generated wrapper type")
	rootCmd.Flags().StringVar(&storageID, "id", "", "fix the storage identifier at generation time")
	rootCmd.Flags().StringVar(&overridesPath, "overrides", "", "YAML override file")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "treat unknown signatures as fatal")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "dump per-key resolutions to stderr")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")
}

func run(_ *cobra.Command, args []string) error {
	logger := newLogger()

	sch, err := schema.FromXMLFile(args[0])
	if err != nil {
		logger.Error().Err(err).Str("schema", args[0]).Msg("failed to parse schema")
		return err
	}

	reg := resolve.NewRegistry(sch.Enums)

	if overridesPath != "" {
		of, err := overrides.Load(overridesPath)
		if err != nil {
			logger.Error().Err(err).Str("file", overridesPath).Msg("failed to load overrides")
			return err
		}

		if err := of.Apply(reg); err != nil {
			logger.Error().Err(err).Str("file", overridesPath).Msg("invalid overrides")
			return err
		}
	}

	generator := gen.New(gen.Options{
		Package:    packageName,
		StructName: structName,
		ID:         storageID,
		Strict:     strict,
	})

	out, err := generator.Generate(sch, reg)
	if out != nil {
		for _, d := range out.Diagnostics.Warnings {
			logger.Warn().Msg(d.String())
		}

		for _, d := range out.Diagnostics.Infos {
			logger.Debug().Msg(d.String())
		}

		if debug {
			spew.Fdump(os.Stderr, out.Resolutions)
		}
	}

	if err != nil {
		logger.Error().Err(err).Msg("generation failed")
		return err
	}

	content, err := gen.Render(out.File, outputPath)
	if err != nil {
		logger.Error().Err(err).Msg("rendering failed")
		return err
	}

	if err := gen.WriteFile(outputPath, content); err != nil {
		logger.Error().Err(err).Msg("write failed")
		return err
	}

	logger.Info().
		Str("schema", args[0]).
		Str("output", outputPath).
		Int("keys", len(sch.Keys)).
		Msg("generated")

	return nil
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if quiet {
		level = zerolog.ErrorLevel
	} else if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
