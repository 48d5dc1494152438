// Command scramble previews the title animation in the terminal.
//
//	scramble                 rotate the hero roles from the content file
//	scramble -list projects  rotate the project titles
//	scramble -manual a b c   step through the given titles with n/p
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/scramble"
)

func main() {
	list := flag.String("list", "roles", "titles to rotate: roles or projects")
	manual := flag.Bool("manual", false, "hold each title until n or p is pressed")
	flag.Parse()

	cfg := config.Load()

	items := flag.Args()
	if len(items) == 0 {
		site, err := content.Load(cfg.ContentPath)
		if err != nil {
			log.Fatal(err)
		}
		items, err = titles(site, *list)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if len(items) == 0 {
		fmt.Fprintln(os.Stderr, "nothing to scramble")
		os.Exit(2)
	}

	emit, frames := scramble.Latest(64)
	opts := append(cfg.Scramble.Options(), scramble.WithAutoAdvance(!*manual))
	ctrl := scramble.NewController(items, emit, opts...)

	p := tea.NewProgram(newModel(ctrl, frames, len(items)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func titles(site *content.Site, list string) ([]string, error) {
	switch list {
	case "roles":
		return site.Profile.Roles, nil
	case "projects":
		return site.Projects.Titles(), nil
	}
	return nil, fmt.Errorf("unknown list %q, want roles or projects", list)
}
