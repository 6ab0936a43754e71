package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagOut     = flag.String("out", "", "Root directory the package is written under")
	flagPackage = flag.String("package", "", "Unreal package name")
	flagMesh    = flag.String("mesh", "", "Mesh and class name")
	flagScale   = flag.Float64("scale", 0, "Export scale applied to the model")
	flagFormat  = flag.String("format", "", "Vertex format: unreal1 or deusex")
	flagFlipX   = flag.Bool("flip-x", false, "Mirror the model on the YZ plane")
	flagFlipY   = flag.Bool("flip-y", false, "Mirror the model on the XZ plane")
	flagFlipZ   = flag.Bool("flip-z", false, "Mirror the model on the XY plane")
	flagFlipU   = flag.Bool("flip-u", false, "Flip UVs horizontally")
	flagFlipV   = flag.Bool("flip-v", true, "Flip UVs vertically")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config. Only flags the user
// actually set are applied, so flag defaults never shadow file settings.
func applyFlags(cfg *Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			if *flagDebug {
				cfg.Logging.Level = "debug"
			}
		case "out":
			cfg.Output.Dir = *flagOut
		case "package":
			cfg.Output.Package = *flagPackage
		case "mesh":
			cfg.Output.Mesh = *flagMesh
		case "scale":
			cfg.Export.Scale = float32(*flagScale)
		case "format":
			cfg.Export.Format = *flagFormat
		case "flip-x":
			cfg.Export.FlipX = *flagFlipX
		case "flip-y":
			cfg.Export.FlipY = *flagFlipY
		case "flip-z":
			cfg.Export.FlipZ = *flagFlipZ
		case "flip-u":
			cfg.Export.FlipU = *flagFlipU
		case "flip-v":
			cfg.Export.FlipV = *flagFlipV
		}
	})
}
