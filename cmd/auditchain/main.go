package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/synergylabs/auditchain/commands"
	"github.com/synergylabs/auditchain/config"
	"github.com/synergylabs/auditchain/ledger"
	"github.com/synergylabs/auditchain/model"
	"github.com/synergylabs/auditchain/store"
)

var (
	configPath *string
	difficulty *int
)

func init() {
	configPath = flag.String("config_path", "cmd/auditchain/config.yaml", "path to app config")
	difficulty = flag.Int("difficulty", -1, "override configured difficulty")
}

// ParseCommand reads console lines and turns them into commands.
func ParseCommand(cmd chan commands.Command) {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		text, err := reader.ReadString('\n')
		if err != nil {
			cmd <- commands.Command{Op: commands.QUIT}
			return
		}
		text = strings.TrimSpace(text)
		c, err := commands.CreateCommand(text)
		if err != nil {
			fmt.Println(err)
			continue
		}
		cmd <- c
	}
}

// HandleCommand runs console commands against the ledger until quit.
// ctx interrupts an in-flight append when the process shuts down.
func HandleCommand(ctx context.Context, cmd chan commands.Command, led *ledger.Ledger, st *store.Store, log zerolog.Logger) {
	for {
		var c commands.Command
		select {
		case <-ctx.Done():
			return
		case c = <-cmd:
		}
		switch c.Op {
		case commands.APPEND:
			var data model.Document
			if err := json.Unmarshal([]byte(c.Args[0]), &data); err != nil {
				fmt.Println("payload must be a JSON object:", err)
				continue
			}
			idx, err := led.Append(ctx, data)
			if err != nil {
				fmt.Println("append failed:", err)
				continue
			}
			fmt.Printf("appended block %d\n", idx)
			persist(led, st, log)
		case commands.QUERY:
			printBlocks(led.QueryByType(c.Args[0]))
		case commands.STATS:
			printJSON(led.Stats())
		case commands.VALIDATE:
			fmt.Println("chain valid:", led.IsValid())
		case commands.EXPORT:
			raw, err := led.Export().Marshal()
			if err == nil {
				err = os.WriteFile(c.Args[0], raw, 0644)
			}
			if err != nil {
				fmt.Println("export failed:", err)
				continue
			}
			fmt.Println("chain written to", c.Args[0])
		case commands.IMPORT:
			raw, err := os.ReadFile(c.Args[0])
			if err != nil {
				fmt.Println("import failed:", err)
				continue
			}
			snap, err := model.ParseSnapshot(raw)
			if err == nil {
				err = led.Import(snap)
			}
			if err != nil {
				fmt.Println("import rejected:", err)
				continue
			}
			fmt.Printf("imported %d blocks\n", led.Len())
			persist(led, st, log)
		case commands.SHOW:
			// Argument already validated as a number.
			depth, _ := strconv.Atoi(c.Args[0])
			all := led.Query(func(model.Document) bool { return true })
			if depth >= 0 && depth < len(all) {
				all = all[len(all)-depth:]
			}
			printBlocks(all)
		case commands.QUIT:
			return
		default:
			fmt.Println("unrecognized command:", c)
		}
	}
}

func persist(led *ledger.Ledger, st *store.Store, log zerolog.Logger) {
	if st == nil {
		return
	}
	if err := st.SaveSnapshot(led.Export()); err != nil {
		log.Error().Err(err).Msg("failed to persist snapshot")
	}
}

func printBlocks(blocks []model.Block) {
	for i := range blocks {
		printJSON(blocks[i])
	}
	fmt.Printf("%d block(s)\n", len(blocks))
}

func printJSON(v interface{}) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(raw))
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "using default config:", err)
	}
	if *difficulty >= 0 {
		cfg.Difficulty = *difficulty
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger().Level(level)

	var st *store.Store
	if cfg.DataFile != "" {
		st, err = store.Open(cfg.DataFile, log)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DataFile).Msg("cannot open snapshot store")
		}
		defer st.Close()
	}

	led, err := ledger.New(cfg.Difficulty, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create ledger")
	}
	if st != nil {
		snap, ok, err := st.LoadSnapshot()
		if err != nil {
			log.Fatal().Err(err).Msg("cannot read persisted snapshot")
		}
		if ok {
			if err := led.Import(snap); err != nil {
				log.Fatal().Err(err).Msg("persisted snapshot failed validation")
			}
			log.Info().Int("blocks", led.Len()).Msg("ledger restored")
		}
	}

	// SIGINT cancels the context so a long proof-of-work search aborts
	// without corrupting ledger state.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	cmd := make(chan commands.Command)
	go ParseCommand(cmd)
	HandleCommand(ctx, cmd, led, st, log)
}
