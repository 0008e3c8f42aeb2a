package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/voxelforge/svo_baker/internal/baker"
	"github.com/voxelforge/svo_baker/internal/converters/decimal_snapper"
	"github.com/voxelforge/svo_baker/pkg"
	"github.com/voxelforge/svo_baker/tools"
)

const VERSION = "0.3.1"

const logo = `
                 _           _
 _____   _____  | |__   __ _| | _____ _ __
/ __\ \ / / _ \ | '_ \ / _  | |/ / _ \ '__|
\__ \\ V / (_) || |_) | (_| |   <  __/ |
|___/ \_/ \___/ |_.__/ \__,_|_|\_\___|_|
        A voxel SVO blueprint baker written in golang
        Copyright YYYY - voxelforge
`

func main() {
	log.SetPrefix("[svobaker] ")
	log.SetFlags(log.LUTC | log.Ldate | log.Lmicroseconds | log.Lshortfile)

	flagsGlobal := tools.ParseFlagsGlobal()

	args := flag.Args()
	if len(args) == 0 {
		if *flagsGlobal.Help {
			showHelp()
			return
		}
		if *flagsGlobal.Version {
			printVersion()
			return
		}
		log.Fatal("Please specify a subcommand [bake|parse-voxel].")
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case tools.CommandBake:
		mainCommandBake(args)
	case tools.CommandParseVoxel:
		mainCommandParseVoxel(args)
	default:
		log.Fatalf("Unrecognized command [%q]. Command must be one of [bake|parse-voxel]", cmd)
	}
}

func mainCommandBake(args []string) {
	// Retrieve command line args
	flags := tools.ParseFlagsForCommandBake(args)

	// Prints the command line flag description
	if *flags.Help {
		showHelp()
		return
	}

	if *flags.Version {
		printVersion()
		return
	}

	// set logging and timestamp logging
	if *flags.Silent {
		tools.DisableLogger()
	} else {
		printLogo()
	}
	if !*flags.LogTimestamp {
		tools.DisableLoggerTimestamp()
	}

	name := *flags.Name
	if name == "" {
		name = getFilenameWithoutExtension(*flags.Input)
	}

	// Put args inside a BakerOptions struct
	opts := baker.BakerOptions{
		Input:      *flags.Input,
		Output:     *flags.Output,
		Name:       name,
		Size:       baker.ParseCoreSize(*flags.Size),
		Type:       baker.ParseCoreType(*flags.Type),
		MaterialID: *flags.Material,
		Command:    tools.CommandBake,
	}

	// Validate BakerOptions
	if msg, res := validateOptionsForCommandBake(&opts); !res {
		log.Fatal("Error parsing input parameters: " + msg)
	}

	// Starts the baker
	defer timeTrack(time.Now(), "bake")
	err := pkg.NewBaker(decimal_snapper.NewDecimalSnapper()).RunBaker(&opts)

	if err != nil {
		log.Fatal("Error while baking: ", err)
	} else {
		tools.LogOutput("Bake Completed")
	}
}

// Validates the input options provided to the command line tool checking
// that the input document exists and the output location is writable
func validateOptionsForCommandBake(opts *baker.BakerOptions) (string, bool) {
	if _, err := os.Stat(opts.Input); os.IsNotExist(err) {
		return "Input file not found", false
	}
	if opts.Output == "" {
		return "Output file not specified", false
	}
	if err := tools.CreateDirectoryIfDoesNotExist(filepath.Dir(opts.Output)); err != nil {
		return "Output folder cannot be created", false
	}

	if opts.Size == "" {
		return "size should be one of SMALL, MEDIUM, LARGE, XL", false
	}
	if opts.Type == "" {
		return "type should be either STATIC or DYNAMIC", false
	}

	return "", true
}

func mainCommandParseVoxel(args []string) {
	if len(args) == 0 {
		log.Fatal("parse-voxel requires a base64 chunk (or a file containing one) as argument")
	}

	encoded := tools.ReadChunkArgOrFail(args[0])
	summary, err := pkg.DumpChunk(encoded)
	if err != nil {
		log.Fatal("Error parsing voxel chunk: ", err)
	}

	fmt.Println(summary)
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	tools.LogOutput(fmt.Sprintf("%s took %s", name, elapsed))
}

func getFilenameWithoutExtension(filePath string) string {
	nameWext := filepath.Base(filePath)
	extension := filepath.Ext(nameWext)
	return nameWext[0 : len(nameWext)-len(extension)]
}

func printLogo() {
	fmt.Println(strings.ReplaceAll(logo, "YYYY", strconv.Itoa(time.Now().Year())))
}

func showHelp() {
	printLogo()
	fmt.Println("***")
	fmt.Println("svobaker converts voxel sample documents into a multi-resolution sparse voxel octree embedded in a blueprint file")
	printVersion()
	fmt.Println("***")
	fmt.Println("")
	fmt.Println("Command line flags: ")
	flag.CommandLine.SetOutput(os.Stdout)
	flag.PrintDefaults()
}

func printVersion() {
	fmt.Println("v." + VERSION)
}
