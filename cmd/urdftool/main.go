// urdftool is a CLI utility for inspecting URDF robot descriptions.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/Faultbox/urdfkit/internal/assets"
	"github.com/Faultbox/urdfkit/internal/config"
	"github.com/Faultbox/urdfkit/internal/logger"
	"github.com/Faultbox/urdfkit/pkg/urdf"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "tree":
		cmdTree(args)
	case "check":
		cmdCheck(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`urdftool - URDF robot description utility

Usage:
  urdftool <command> [options] <file.urdf>

Commands:
  info <file.urdf>      Show model summary (links, joints, geometry)
  tree <file.urdf>      Print the assembled kinematic tree
  check <file.urdf>...  Validate files, report errors and warnings

Options:
  -config <path>        Path to config file
  -debug                Enable debug logging
  -scale <factor>       Global scale for linear quantities
  -mesh-path <dirs>     Extra mesh search directories (colon separated)
  -log-file <path>      Write logs to this file

Examples:
  urdftool info robot.urdf
  urdftool tree -scale 0.001 robot_mm.urdf
  urdftool check -mesh-path /opt/meshes robots/*.urdf`)
}

// setup parses flags from args, loads configuration, and returns a
// ready parser plus the remaining positional arguments.
func setup(args []string) (*urdf.Parser, []string) {
	rest := config.ParseFlags(args)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fileCfg := logger.DefaultFileConfig(cfg.Logging.LogFile)
	log := logger.New(cfg.Logging.Level, fileCfg, true)

	store := assets.NewStore(cfg.Assets.MeshPaths...)

	parser := urdf.NewParser()
	parser.Scale = cfg.Parser.Scale
	parser.Log = log
	parser.Assets = store

	return parser, rest
}

func cmdInfo(args []string) {
	parser, rest := setup(args)
	if len(rest) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: urdftool info [options] <file.urdf>")
		os.Exit(1)
	}

	model, err := parser.ParseFile(rest[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Robot:     %s\n", model.Name)
	fmt.Printf("Source:    %s\n", model.SourceFile)
	fmt.Printf("Scale:     %g\n", model.Scale)
	fmt.Printf("Links:     %d\n", len(model.Links))
	fmt.Printf("Joints:    %d\n", len(model.Joints))
	fmt.Printf("Materials: %d\n", len(model.Materials))
	fmt.Printf("Roots:     %d\n", len(model.RootLinks))
	fmt.Printf("Warnings:  %d\n", parser.Warnings())

	// Count geometry entries by shape
	shapeCount := make(map[string]int)
	for _, link := range model.Links {
		for _, v := range link.Visuals {
			shapeCount[v.Geometry.Type.String()]++
		}
		for _, c := range link.Collisions {
			shapeCount[c.Geometry.Type.String()]++
		}
	}
	if len(shapeCount) > 0 {
		fmt.Println()
		fmt.Println("Geometry by shape:")

		shapes := make([]string, 0, len(shapeCount))
		for s := range shapeCount {
			shapes = append(shapes, s)
		}
		sort.Strings(shapes)
		for _, s := range shapes {
			fmt.Printf("  %-10s %d\n", s, shapeCount[s])
		}
	}

	jointCount := make(map[string]int)
	for _, j := range model.Joints {
		jointCount[j.Type.String()]++
	}
	if len(jointCount) > 0 {
		fmt.Println()
		fmt.Println("Joints by type:")

		types := make([]string, 0, len(jointCount))
		for t := range jointCount {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			fmt.Printf("  %-10s %d\n", t, jointCount[t])
		}
	}
}

func cmdTree(args []string) {
	parser, rest := setup(args)
	if len(rest) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: urdftool tree [options] <file.urdf>")
		os.Exit(1)
	}

	model, err := parser.ParseFile(rest[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(model.KinematicChain())
}

func cmdCheck(args []string) {
	parser, rest := setup(args)
	if len(rest) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: urdftool check [options] <file.urdf>...")
		os.Exit(1)
	}

	failed := 0
	for _, path := range rest {
		model, err := parser.ParseFile(path)
		if err != nil {
			fmt.Printf("FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("OK   %s (%d links, %d joints, %d warnings)\n",
			path, len(model.Links), len(model.Joints), parser.Warnings())
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "\n%d of %d files failed\n", failed, len(rest))
		os.Exit(1)
	}
}
