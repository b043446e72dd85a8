package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sightline/sightline/internal/config"
	"github.com/sightline/sightline/internal/obslist"
	"github.com/sightline/sightline/internal/positioning"
	"github.com/sightline/sightline/internal/tui"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	configFile string
	verbose    bool
	demoFix    bool

	rootCmd = &cobra.Command{
		Use:   "sightline",
		Short: "On-device interaction core for a handheld push-to celestial pointing instrument.",
		Long: `Sightline tracks the selected catalog object, finds objects by typed
designation, keeps history and observing lists, and computes the live az/alt
correction needed to aim the instrument at the target.`,
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr so they never mix into the rendered frame.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML config file (defaults to the built-in catalog set)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	runCmd.Flags().BoolVar(&demoFix, "demo-fix", false, "Seed a fixed solved position for bench testing without solver hardware")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listsCmd)

	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func loadConfig() config.Config {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if configFile == "" {
		cfg, err := config.Normalized()
		if err != nil {
			logrus.Fatalf("Invalid built-in config: %v", err)
		}
		return cfg
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		logrus.Fatalf("Unable to load config %s: %v", configFile, err)
	}
	return cfg
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive catalog-search and locate screens",
	Long: `Runs the two-screen interaction core in the terminal. Without solver
hardware the aim readout shows no-fix placeholders; --demo-fix seeds a fixed
solved position so the readout is live on the bench.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		source := positioning.NewStaticSource()
		source.WallClock = true
		if cfg.Observer != nil {
			source.SetLocation(positioning.Location{
				Lat:      cfg.Observer.Lat,
				Lon:      cfg.Observer.Lon,
				Altitude: cfg.Observer.Altitude,
				GPSLock:  true,
			})
		}
		if demoFix {
			if cfg.Observer == nil {
				source.SetLocation(positioning.Location{Lat: 40, Lon: -105, Altitude: 1600})
			}
			source.SetSolution(positioning.Solution{Az: 180, Alt: 45, AltAzValid: true})
		}

		if err := tui.Run(cfg, source); err != nil {
			logrus.Fatalf("UI failed: %v", err)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Print the saved observing lists",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		names, err := obslist.NewStore(cfg.ListsDir).ListNames()
		if err != nil {
			logrus.Fatal(err)
		}
		if len(names) == 0 {
			fmt.Fprintln(os.Stdout, "No saved lists")
			return
		}
		for _, name := range names {
			fmt.Fprintln(os.Stdout, name)
		}
	},
}

func main() {
	Execute()
}
