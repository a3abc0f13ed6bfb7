package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for TripWeaver.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Warm sunset gradient, one shade per line
	s1 := termenv.String(" _____     _      _ _ _").Foreground(p.Color("#fbbf24"))
	s2 := termenv.String("|_   _| __(_)_ __| | | | ___  __ ___   _____ _ __").Foreground(p.Color("#fb923c"))
	s3 := termenv.String("  | || '__| | '_ \\ | | |/ _ \\/ _` \\ \\ / / _ \\ '__|").Foreground(p.Color("#f97316"))
	s4 := termenv.String("  | || |  | | |_) | |_|_|  __/ (_| |\\ V /  __/ |").Foreground(p.Color("#ef4444"))
	s5 := termenv.String("  |_||_|  |_| .__/ \\___,_\\___|\\__,_| \\_/ \\___|_|").Foreground(p.Color("#ec4899"))
	s6 := termenv.String("            |_|").Foreground(p.Color("#d946ef"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
