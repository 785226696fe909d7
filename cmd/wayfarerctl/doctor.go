package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/mod/modfile"

	"github.com/wayfarerhq/wayfarer/internal/logging"
)

// frameworkModule is the dependency doctor reports on.
const frameworkModule = "github.com/go-drift/drift"

var doctorDir string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the project's framework dependency",
	Long: `Check the project's framework dependency.

Locates the enclosing Go module (walking up from --dir) and reports the
module path, Go version, and the required ` + frameworkModule + `
version, including any replace directive in effect. Fails when the
module does not depend on the framework at all.`,
	Example: `  # Check the current project
  wayfarerctl doctor

  # Check another checkout
  wayfarerctl doctor --dir ~/src/otherapp`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().StringVar(&doctorDir, "dir", ".", "Directory to start the go.mod search from")
}

// frameworkReport summarizes a go.mod for doctor output.
type frameworkReport struct {
	ModulePath string // the project's own module path
	GoVersion  string // go directive, "" when absent
	Framework  string // required framework version, "" when not required
	Replaced   string // replacement target, "" when none
}

func runDoctor(cmd *cobra.Command, args []string) error {
	goMod, err := findGoMod(doctorDir)
	if err != nil {
		return err
	}
	logging.Debug("inspecting go.mod", zap.String("path", goMod))

	report, err := inspectGoMod(goMod)
	if err != nil {
		return err
	}
	if report.Framework == "" {
		return fmt.Errorf("%s does not require %s", goMod, frameworkModule)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "go.mod:    %s\n", goMod)
	fmt.Fprintf(out, "module:    %s\n", report.ModulePath)
	if report.GoVersion != "" {
		fmt.Fprintf(out, "go:        %s\n", report.GoVersion)
	}
	if report.Replaced != "" {
		fmt.Fprintf(out, "framework: %s %s (replaced by %s)\n", frameworkModule, report.Framework, report.Replaced)
	} else {
		fmt.Fprintf(out, "framework: %s %s\n", frameworkModule, report.Framework)
	}
	return nil
}

// findGoMod walks up from dir to the nearest go.mod.
func findGoMod(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		path := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

// inspectGoMod parses a go.mod and extracts the framework requirement.
func inspectGoMod(path string) (*frameworkReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read go.mod: %w", err)
	}

	file, err := modfile.Parse(path, data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse go.mod: %w", err)
	}
	if file.Module == nil {
		return nil, fmt.Errorf("%s has no module directive", path)
	}

	report := &frameworkReport{ModulePath: file.Module.Mod.Path}
	if file.Go != nil {
		report.GoVersion = file.Go.Version
	}
	for _, req := range file.Require {
		if req.Mod.Path == frameworkModule {
			report.Framework = req.Mod.Version
		}
	}
	for _, rep := range file.Replace {
		if rep.Old.Path == frameworkModule {
			report.Replaced = rep.New.Path
			if rep.New.Version != "" {
				report.Replaced += " " + rep.New.Version
			}
		}
	}
	return report, nil
}
