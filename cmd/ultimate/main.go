package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"ultimateholdem/internal/config"
	"ultimateholdem/internal/rng"
	"ultimateholdem/internal/util"
	"ultimateholdem/pkg/player"
	"ultimateholdem/pkg/ultimate"
)

var name = flag.String("name", "", "the player name; prompted for when empty")
var game = flag.Int("game", 1, "the game number recorded in the log")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	opts := ultimate.DefaultOptions()
	opts.StandardDeck = cfg.Deck.Standard
	opts.Seed = cfg.Deck.Seed
	opts.ImageDir = cfg.ImageDir
	opts.Number = *game

	playerName := *name
	if playerName == "" {
		var err error
		if playerName, err = getName(); err != nil {
			logrus.WithError(err).Fatal("could not read name")
		}
	}

	g, err := ultimate.NewGame(playerName, opts)
	if err != nil {
		logrus.WithError(err).Fatal("could not start game")
	}

	printPlayer(g.Player(), cfg.ImageDir)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g.Log()); err != nil {
		logrus.WithError(err).Fatal("could not write game log")
	}
}

// getName prompts for a name when stdin is a terminal
// A random name is used otherwise, or when nothing is entered.
func getName() (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return util.GetRandomName(rng.Crypto{}), nil
	}

	fmt.Print("Enter your name: ")
	reader := bufio.NewReader(os.Stdin)
	str, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	str = strings.TrimRight(str, "\r\n")
	if strings.TrimSpace(str) == "" {
		return util.GetRandomName(rng.Crypto{}), nil
	}

	return str, nil
}

func printPlayer(p player.Player, imageDir string) {
	var sb strings.Builder
	for i, card := range p.HoleCards() {
		img, err := card.ImagePathIn(imageDir)
		if err != nil {
			logrus.WithError(err).WithField("card", card.String()).Warn("no image for card")
		}

		sb.WriteString(pterm.Sprintfln("%s %s (%s)", pterm.LightCyan(fmt.Sprintf("Card %d:", i+1)), card.String(), img))
	}

	sb.WriteString(pterm.Sprintf("%s %s", pterm.LightYellow("Wager:"), p.Wager().String()))

	pterm.DefaultBox.
		WithTitle(pterm.LightGreen(p.Name())).
		WithTitleTopCenter().
		Println(sb.String())
	fmt.Println(p.String())
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	logrus.SetOutput(os.Stderr)
}
