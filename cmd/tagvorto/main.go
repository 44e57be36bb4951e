package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"tagvorto/internal/client"
	"tagvorto/internal/tui"
)

var cli struct {
	Server string `help:"Game server base URL." default:"http://localhost:8080" env:"TAGVORTO_SERVER"`
	Token  string `help:"Bearer token identifying the player." required:"" env:"TAGVORTO_TOKEN"`
	Date   string `help:"Puzzle date (YYYY-MM-DD); defaults to today." env:"TAGVORTO_DATE"`
	Title  string `help:"Title used in share text." default:"Tagvorto" env:"TAGVORTO_TITLE"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("tagvorto"),
		kong.Description("Play the daily word game in your terminal."),
	)

	date := cli.Date
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	api := client.NewAPIClient(cli.Server, cli.Token, 15*time.Second)
	program := tea.NewProgram(tui.New(api, date, cli.Title))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tagvorto: %v\n", err)
		os.Exit(1)
	}
}
