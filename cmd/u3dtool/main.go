// u3dtool exports animated triangle meshes to the Unreal Engine 1 vertex
// animation format (_a.3d, _d.3d).
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Faultbox/unreal3d/internal/config"
	"github.com/Faultbox/unreal3d/internal/export"
	"github.com/Faultbox/unreal3d/internal/logger"
	"github.com/Faultbox/unreal3d/pkg/formats"
)

func main() {
	config.ParseFlags()
	args := flag.Args()

	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	switch args[0] {
	case "export":
		cmdExport(cfg, args[1:])
	case "check":
		cmdCheck(cfg, args[1:])
	case "script":
		cmdScript(cfg, args[1:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`u3dtool - Unreal Engine 1 vertex animation mesh exporter

Usage:
  u3dtool [flags] <command> [arguments]

Commands:
  export <frame.obj ...>   Export an OBJ frame sequence to <Package>/Models
  check <frame.obj ...>    Validate a frame sequence without writing files
  script <numframes>       Print the UnrealScript class for the configured mesh

Flags:
  -config <file>           Config file (default: ./u3dtool.yaml)
  -out <dir>               Root directory for the package (default ".")
  -package <name>          Unreal package name (default "MyPackage")
  -mesh <name>             Mesh and class name (default "MyMesh")
  -scale <n>               Export scale (default 1)
  -format <name>           Vertex format: unreal1 or deusex
  -flip-x -flip-y -flip-z  Mirror the model per axis
  -flip-u -flip-v          Flip UVs (vertical flip is on by default)
  -debug                   Enable debug logging

Examples:
  u3dtool -package Weapons -mesh Rocket export frames/frame_*.obj
  u3dtool -scale 0.5 -format deusex check frames/frame_*.obj
  u3dtool -mesh Rocket script 30`)
}

func cmdExport(cfg *config.Config, paths []string) {
	if len(paths) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: u3dtool [flags] export <frame.obj ...>")
		os.Exit(1)
	}

	res, err := export.Run(formats.OBJSequence(paths), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d frame(s), %d vertices, %d faces\n", res.Frames, res.Vertices, res.Faces)
	fmt.Printf("  %s\n", res.AnimFile)
	fmt.Printf("  %s\n", res.DataFile)
	fmt.Printf("  %s\n", res.ClassFile)
}

func cmdCheck(cfg *config.Config, paths []string) {
	if len(paths) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: u3dtool [flags] check <frame.obj ...>")
		os.Exit(1)
	}

	if err := export.Check(formats.OBJSequence(paths), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d frame(s) OK\n", len(paths))
}

func cmdScript(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: u3dtool [flags] script <numframes>")
		os.Exit(1)
	}

	frames, err := strconv.Atoi(args[0])
	if err != nil || frames < 1 {
		fmt.Fprintf(os.Stderr, "Invalid frame count: %s\n", args[0])
		os.Exit(1)
	}

	fmt.Print(export.Script(cfg.Output.Mesh, frames))
}
