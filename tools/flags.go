package tools

import (
	"flag"
)

const (
	CommandBake       = "bake"
	CommandParseVoxel = "parse-voxel"
)

type FlagsGlobal struct {
	Help    *bool `json:"help"`
	Version *bool `json:"version"`
}

type BakerFlags struct {
	Input    *string `json:"input"`
	Output   *string `json:"output"`
	Name     *string `json:"name"`
	Size     *string `json:"size"`
	Type     *string `json:"type"`
	Material *uint64 `json:"material"`
}

type FlagsForCommandBake struct {
	BakerFlags
	Silent       *bool
	LogTimestamp *bool
	Help         *bool
	Version      *bool
}

func ParseFlagsGlobal() FlagsGlobal {
	help := defineBoolFlag("help", "h", false, "Displays this help.")
	version := defineBoolFlag("version", "v", false, "Displays the version of svobaker.")

	flag.Parse()

	return FlagsGlobal{
		Help:    help,
		Version: version,
	}
}

func ParseFlagsForCommandBake(args []string) FlagsForCommandBake {
	flagCommand := flag.NewFlagSet("command-bake", flag.ExitOnError)

	input := defineStringFlagCommand(flagCommand, "input", "i", "", "Specifies the input voxel sample document (JSON).")
	output := defineStringFlagCommand(flagCommand, "output", "o", "", "Specifies the output blueprint file.")
	name := defineStringFlagCommand(flagCommand, "name", "n", "", "Model name embedded in the blueprint. Defaults to the input file name.")
	size := defineStringFlagCommand(flagCommand, "size", "c", "SMALL", "Core size, one of SMALL, MEDIUM, LARGE, XL. Fixes the octree height.")
	coreType := defineStringFlagCommand(flagCommand, "type", "y", "DYNAMIC", "Core type, one of STATIC, DYNAMIC.")
	material := defineUint64FlagCommand(flagCommand, "material", "m", 1971262921, "Fallback voxel material id used for flat position lists.")

	silent := defineBoolFlagCommand(flagCommand, "silent", "s", false, "Use to suppress all the non-error messages.")
	logTimestamp := defineBoolFlagCommand(flagCommand, "timestamp", "t", false, "Adds timestamp to log messages.")
	help := defineBoolFlagCommand(flagCommand, "help", "h", false, "Displays this help.")
	version := defineBoolFlagCommand(flagCommand, "version", "v", false, "Displays the version of svobaker.")

	flagCommand.Parse(args)

	return FlagsForCommandBake{
		BakerFlags: BakerFlags{
			Input:    input,
			Output:   output,
			Name:     name,
			Size:     size,
			Type:     coreType,
			Material: material,
		},
		Silent:       silent,
		LogTimestamp: logTimestamp,
		Help:         help,
		Version:      version,
	}
}

func defineBoolFlag(name string, shortHand string, defaultValue bool, usage string) *bool {
	var output bool
	flag.BoolVar(&output, name, defaultValue, usage)
	if shortHand != name {
		flag.BoolVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineStringFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue string, usage string) *string {
	var output string
	flagCommand.StringVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.StringVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineUint64FlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue uint64, usage string) *uint64 {
	var output uint64
	flagCommand.Uint64Var(&output, name, defaultValue, usage)
	if shortHand != name {
		flagCommand.Uint64Var(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineBoolFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue bool, usage string) *bool {
	var output bool
	flagCommand.BoolVar(&output, name, defaultValue, usage)
	if shortHand != name {
		flagCommand.BoolVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}
