package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/iondrive-co/classifile"
	"github.com/iondrive-co/classifile/internal/runner"
	"github.com/projectdiscovery/gologger"
)

func main() {
	cliOpts := runner.ParseFlags()

	engineCfg := &classifile.DefaultConfig
	if cliOpts.EngineConfig != "" {
		cfg, err := classifile.NewConfig(cliOpts.EngineConfig)
		if err != nil {
			gologger.Fatal().Msgf("failed to read %v file got: %v", cliOpts.EngineConfig, err)
		}
		engineCfg = cfg
	}

	model, err := classifile.New(&classifile.Options{
		Names:  cliOpts.Names,
		Config: engineCfg,
	})
	if err != nil {
		gologger.Fatal().Msgf("failed to build model got %v", err)
	}

	output := getOutputWriter(cliOpts.Output)
	defer closeOutput(output, cliOpts.Output)

	switch {
	case cliOpts.Patterns:
		printPatterns(model, output)
	case cliOpts.Name != "" && cliOpts.Candidates > 0:
		printCandidates(model, cliOpts, output)
	case cliOpts.Name != "" && cliOpts.Element >= 0:
		for _, v := range model.GetElementSuggestions(cliOpts.Name, cliOpts.Element) {
			fmt.Fprintln(output, v)
		}
	case cliOpts.Name != "":
		printPrediction(model.PredictByName(cliOpts.Name), cliOpts.JSON, output)
	case cliOpts.Ordinal >= 0:
		printOrdinal(model.PredictByOrdinal(cliOpts.Ordinal), cliOpts.JSON, output)
	default:
		gologger.Fatal().Msgf("nothing to do: supply -name, -ordinal, -candidates or -patterns")
	}
}

func printPatterns(model *classifile.Model, output io.Writer) {
	for _, p := range model.Patterns() {
		fmt.Fprintf(output, "%s\t%d files\t%v\n", p.Signature, p.FileCount, p.ExampleFiles)
	}
}

func printCandidates(model *classifile.Model, cliOpts *runner.Options, output io.Writer) {
	// seed with the input list so existing filenames never reappear
	dw := classifile.NewDedupingWriter(output, cliOpts.Names...)
	defer dw.Close()
	for _, candidate := range model.Candidates(cliOpts.Name, cliOpts.Candidates) {
		if _, err := dw.Write([]byte(candidate + "\n")); err != nil {
			gologger.Error().Msgf("failed to write candidate got %v", err)
			return
		}
	}
}

func printPrediction(prediction classifile.Prediction, asJSON bool, output io.Writer) {
	if asJSON {
		writeJSON(prediction, output)
		return
	}
	gologger.Info().Msgf("matched pattern: %s", prediction.Signature.Canonical)
	for _, pos := range prediction.Positions {
		for _, s := range pos.Suggestions {
			fmt.Fprintf(output, "%d\t%s\t%.2f\t%s\n", pos.Position, s.Value, s.Score, s.Reason)
		}
	}
}

func printOrdinal(prediction classifile.OrdinalPrediction, asJSON bool, output io.Writer) {
	if asJSON {
		writeJSON(prediction, output)
		return
	}
	gologger.Info().Msgf("pattern: %s", prediction.Signature.Canonical)
	for _, el := range prediction.Elements {
		fmt.Fprintf(output, "%d\t%s\t%v\n", el.ElementIndex, el.Kind, el.Suggestions)
	}
}

func writeJSON(v interface{}, output io.Writer) {
	enc := json.NewEncoder(output)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		gologger.Error().Msgf("failed to encode output got %v", err)
	}
}

// getOutputWriter returns the appropriate output writer
func getOutputWriter(outputPath string) io.Writer {
	if outputPath != "" {
		fs, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			gologger.Fatal().Msgf("failed to open output file %v got %v", outputPath, err)
		}
		return fs
	}
	return os.Stdout
}

// closeOutput closes the output writer if it's a file
func closeOutput(output io.Writer, outputPath string) {
	if outputPath != "" {
		if closer, ok := output.(io.Closer); ok {
			closer.Close()
		}
	}
}
