// Package main provides veltheme, a validator for velt theme files.
// It parses each file with the same loader the library uses and reports
// schema or color errors without needing a running application.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/style"
)

var printResolved = flag.Bool("print", false, "print the resolved role colors of each valid theme")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: veltheme [flags] <theme.yaml>...\n\n")
		fmt.Fprintf(os.Stderr, "Validates velt theme files and reports the first error in each.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	failed := 0
	for _, path := range flag.Args() {
		if err := check(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("%s: ok\n", path)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func check(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	theme, err := style.ParseTheme(data)
	if err != nil {
		return err
	}
	if *printResolved {
		printRoles(theme)
	}
	return nil
}

func printRoles(theme *style.Theme) {
	roles := []struct {
		name  string
		color graphics.Color
	}{
		{"primary", theme.Colors.Primary},
		{"on_primary", theme.Colors.OnPrimary},
		{"surface", theme.Colors.Surface},
		{"on_surface", theme.Colors.OnSurface},
		{"outline", theme.Colors.Outline},
		{"scrim", theme.Colors.Scrim},
		{"error", theme.Colors.Error},
	}
	for _, role := range roles {
		fmt.Printf("  %-12s #%08X\n", role.name, uint32(role.color))
	}
}
