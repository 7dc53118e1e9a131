package runner

import (
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
	updateutils "github.com/projectdiscovery/utils/update"
)

type Options struct {
	Names              goflags.StringSlice // Filenames to analyze
	Name               string              // Query filename
	Ordinal            int                 // Query ordinal into the first group's file list
	Element            int                 // Restrict output to one element's suggestions
	Candidates         int                 // Generate N whole-filename candidates
	Patterns           bool                // List discovered pattern groups
	JSON               bool                // Emit predictions as JSON
	Output             string
	Config             string
	EngineConfig       string
	DisableUpdateCheck bool
	Verbose            bool
	Silent             bool
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Filename shape analyzer and next-value suggester for interactive pickers.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Names, "list", "l", nil, "filenames to analyze (stdin, comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("query", "Query",
		flagSet.StringVarP(&opts.Name, "name", "n", "", "query filename to predict values for"),
		flagSet.IntVarP(&opts.Ordinal, "ordinal", "ord", -1, "query ordinal into the first pattern group's file list"),
		flagSet.IntVarP(&opts.Element, "element", "el", -1, "restrict output to a single element's suggestions (requires -name)"),
		flagSet.IntVarP(&opts.Candidates, "candidates", "cn", 0, "generate N whole-filename candidates (requires -name)"),
		flagSet.BoolVarP(&opts.Patterns, "patterns", "ps", false, "list discovered pattern groups"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write results"),
		flagSet.BoolVarP(&opts.JSON, "json", "j", false, "write predictions as JSON"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display classifile version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `classifile cli config file (default '$HOME/.config/classifile/config.yaml')`),
		flagSet.StringVarP(&opts.EngineConfig, "engine-config", "ec", "", `engine config file (default '$HOME/.config/classifile/engine.yaml')`),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update classifile to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic classifile update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("classifile")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("classifile version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current classifile version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	// read from stdin
	if fileutil.HasStdin() {
		bin, err := io.ReadAll(os.Stdin)
		if err != nil {
			gologger.Error().Msgf("failed to read input from stdin got %v", err)
		}
		opts.Names = strings.Fields(string(bin))
	}

	if len(opts.Names) == 0 {
		gologger.Fatal().Msgf("classifile: no input filenames found")
	}
	if err := opts.validate(); err != nil {
		gologger.Fatal().Msgf("%s", err)
	}

	return opts
}

func (opts *Options) validate() error {
	if opts.Element >= 0 && opts.Name == "" {
		return errorutil.NewWithTag("classifile", "-element requires -name")
	}
	if opts.Candidates > 0 && opts.Name == "" {
		return errorutil.NewWithTag("classifile", "-candidates requires -name")
	}
	return nil
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
