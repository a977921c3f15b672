package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/frudas24/regionsel/internal/config"
	"github.com/frudas24/regionsel/internal/monitor"
	"github.com/frudas24/regionsel/internal/region"
)

// nativeSource selects WinAPI enumeration instead of hyprctl JSON.
const nativeSource = "native"

// options holds the parsed command-line flags.
type options struct {
	debug   bool
	format  string
	region  string
	monitor string
}

// clampResult is printed when a region is clamped.
type clampResult struct {
	Monitor string        `json:"monitor" yaml:"monitor"`
	Region  region.Region `json:"region" yaml:"region"`
}

// run wires configuration, monitor sources and output.
func run(opts options, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.format != "" {
		cfg.OutputFormat = config.NormalizeFormat(opts.format)
	}
	if opts.debug {
		log.Printf("debug: enabled")
		log.Printf("shell config: %s", cfg.ShellConfig)
		log.Printf("monitors source: %s", cfg.MonitorsPath)
	}

	order, err := config.LoadMonitorOrder(cfg.ShellConfig)
	if err != nil {
		log.Printf("monitor order: %v (using compositor order)", err)
		order = nil
	}
	if opts.debug {
		log.Printf("monitor order: %v", order)
	}

	infos, err := loadMonitors(cfg.MonitorsPath, stdin)
	if err != nil {
		return err
	}
	sorted := monitor.SortByOrder(infos, order)

	if opts.region == "" {
		return encode(stdout, cfg.OutputFormat, sorted)
	}

	r, err := parseRegion(opts.region)
	if err != nil {
		return err
	}
	target, err := pickMonitor(sorted, opts.monitor)
	if err != nil {
		return err
	}
	return encode(stdout, cfg.OutputFormat, clampResult{
		Monitor: target.Name,
		Region:  region.ClampToScreen(r, target.Width, target.Height),
	})
}

// loadMonitors builds the monitor list from hyprctl JSON or native enumeration.
func loadMonitors(source string, stdin io.Reader) ([]monitor.Info, error) {
	if source == nativeSource {
		screens, err := monitor.ListScreens()
		if err != nil {
			return nil, err
		}
		infos := make([]monitor.Info, 0, len(screens))
		for _, s := range screens {
			infos = append(infos, monitor.BuildInfo(s, monitor.CompositorMonitor{
				Name:  s.Name,
				X:     s.X,
				Y:     s.Y,
				Scale: 1,
			}))
		}
		return infos, nil
	}

	data, err := readSource(source, stdin)
	if err != nil {
		return nil, err
	}
	list, err := monitor.ParseHyprctlMonitors(data)
	if err != nil {
		return nil, err
	}
	list = monitor.Enabled(list)
	infos := make([]monitor.Info, 0, len(list))
	for _, m := range list {
		infos = append(infos, monitor.BuildInfo(monitor.LogicalScreen(m), m))
	}
	return infos, nil
}

// readSource reads a file, or stdin when source is "-".
func readSource(source string, stdin io.Reader) ([]byte, error) {
	if source == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read monitors: %w", err)
	}
	return data, nil
}

// pickMonitor returns the named monitor, or the first one when name is empty.
func pickMonitor(list []monitor.Info, name string) (monitor.Info, error) {
	if name == "" {
		if len(list) == 0 {
			return monitor.Info{}, fmt.Errorf("no monitors available")
		}
		return list[0], nil
	}
	m, ok := monitor.InfoByName(list, name)
	if !ok {
		return monitor.Info{}, fmt.Errorf("monitor %q not found", name)
	}
	return m, nil
}

// parseRegion parses "x,y,width,height".
func parseRegion(raw string) (region.Region, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return region.Region{}, fmt.Errorf("region must be x,y,width,height: %q", raw)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return region.Region{}, fmt.Errorf("region value %q must be an integer: %w", p, err)
		}
		v[i] = n
	}
	return region.Region{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}

// encode writes v to w as indented JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}
