// Command boardsim plays the engine against itself from a starting
// position, logging each chosen move and its search statistics. It is
// a runnable stand-in for the embedded board's host loop, exercising
// the Core API the same way the real firmware's main loop would.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/op/go-logging"

	"github.com/Hardware7253/ElectronicChessBoard/board"
	"github.com/Hardware7253/ElectronicChessBoard/cli"
	"github.com/Hardware7253/ElectronicChessBoard/fen"
	"github.com/Hardware7253/ElectronicChessBoard/geometry"
	"github.com/Hardware7253/ElectronicChessBoard/host"
	"github.com/Hardware7253/ElectronicChessBoard/movegen"
)

var log = logging.MustGetLogger("boardsim")

const startingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	fenFlag := flag.String("fen", startingFEN, "starting position in FEN")
	plies := flag.Int("plies", 10, "number of plies to play before stopping")
	configPath := flag.String("config", "", "path to a TOML config file (defaults are used if omitted)")
	flag.Parse()

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	backendFormatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{message}`,
	))
	logging.SetBackend(backendFormatted)

	cfg := host.DefaultConfig()
	if *configPath != "" {
		loaded, err := host.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	b, err := fen.Decode(*fenFlag, true)
	if err != nil {
		log.Fatalf("decoding FEN: %v", err)
	}

	driver := host.NewDriver(cfg)

	for ply := 0; ply < *plies; ply++ {
		fmt.Println(cli.FormatBoard(b))

		friendlyKingIndex := geometry.WhiteKing
		if !b.WhitesMove {
			friendlyKingIndex = geometry.BlackKing
		}
		enemyKingIndex := geometry.BlackKing
		if !b.WhitesMove {
			enemyKingIndex = geometry.WhiteKing
		}

		friendlyKing := board.Coordinates{BoardIndex: friendlyKingIndex, Bit: board.FindBitOn(b.Boards[friendlyKingIndex], 0)}
		enemyKing := board.Coordinates{BoardIndex: enemyKingIndex, Bit: board.FindBitOn(b.Boards[enemyKingIndex], 0)}
		team := board.NewTeamBitboards(friendlyKingIndex, b)
		attacks := movegen.GenEnemyAttacks(friendlyKing, team, b)

		result := driver.Think(b, true)
		if result.PieceMove == nil {
			log.Info("no move returned, stopping")
			break
		}

		newBoard, err := movegen.NewTurn(result.PieceMove.Initial, result.PieceMove.FinalBit, friendlyKing, enemyKing, attacks, team, b)
		if err != nil {
			log.Infof("game ended: %v", err)
			break
		}

		diff := driver.RenderMove(b, newBoard)
		log.Infof("squares changed: %#x", diff)

		b = newBoard
	}

	fmt.Println(cli.FormatBoard(b))
}
