package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mcardoso/swipehire/internal/bus"
	"github.com/mcardoso/swipehire/internal/catalog"
	"github.com/mcardoso/swipehire/internal/deck"
	"github.com/mcardoso/swipehire/internal/filter"
	"github.com/mcardoso/swipehire/internal/gesture"
	"github.com/mcardoso/swipehire/internal/history"
	"github.com/mcardoso/swipehire/internal/ledger"
	"github.com/mcardoso/swipehire/internal/model"
	"github.com/mcardoso/swipehire/internal/output"
	"github.com/mcardoso/swipehire/internal/storage"
)

func envOrFlag(flagVal, envKey string) string {
	if flagVal != "" {
		return flagVal
	}
	return os.Getenv(envKey)
}

func main() {
	godotenv.Load()

	storePath := flag.String("store", "swipehire.db", "Path to the local database file")
	redisURL := flag.String("redis", "", "Redis URL (ex: redis://localhost:6379); overrides -store")
	catalogPath := flag.String("catalog", "", "Path to a JSON job catalog (default: built-in)")
	telegramToken := flag.String("telegram-token", "", "Telegram bot token for notifications")
	telegramChatID := flag.String("telegram-chat-id", "", "Telegram chat ID")
	discordWebhook := flag.String("discord-webhook", "", "Discord webhook URL for notifications")
	exitDuration := flag.Duration("exit-duration", 300*time.Millisecond, "Card exit animation duration")
	flag.Parse()

	store := openStore(*redisURL, *storePath)

	cat := catalog.Default()
	if *catalogPath != "" {
		loaded, err := catalog.LoadFile(*catalogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cat = loaded
	}

	notifiers := output.Multi{output.NewConsole()}
	if tkn, chat := envOrFlag(*telegramToken, "TELEGRAM_TOKEN"), envOrFlag(*telegramChatID, "TELEGRAM_CHAT_ID"); tkn != "" && chat != "" {
		notifiers = append(notifiers, output.NewTelegram(tkn, chat))
	}
	if hook := envOrFlag(*discordWebhook, "DISCORD_WEBHOOK"); hook != "" {
		notifiers = append(notifiers, output.NewDiscord(hook))
	}

	stdin := bufio.NewScanner(os.Stdin)
	confirm := func(prompt string) bool {
		fmt.Printf("%s [y/N] ", prompt)
		if !stdin.Scan() {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(stdin.Text()))
		return answer == "y" || answer == "yes"
	}

	eventBus := bus.New()
	led := ledger.New(store).WithGate(confirm)
	d := deck.New(cat, history.NewLog(store), led, eventBus, notifiers).WithGate(confirm)

	app := &cli{
		deck:    d,
		ledger:  led,
		bus:     eventBus,
		catalog: cat,
		printer: output.NewPrinter(os.Stdout),
		stdin:   stdin,
		exit:    *exitDuration,
	}
	app.run()
}

func openStore(redisURL, storePath string) storage.Store {
	if redisURL != "" {
		s, err := storage.OpenRedis(redisURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return s
	}
	s, err := storage.OpenBolt(storePath)
	if err != nil {
		// Degrade to in-memory rather than refuse to start; swipes just
		// will not survive this process.
		log.Printf("falling back to in-memory store: %v", err)
		return storage.NewMemory()
	}
	return s
}

type cli struct {
	deck    *deck.Deck
	ledger  *ledger.Ledger
	bus     *bus.Bus
	catalog *catalog.Catalog
	printer *output.Printer
	stdin   *bufio.Scanner
	exit    time.Duration
}

func (c *cli) run() {
	fmt.Println("SwipeHire — swipe your way to your dream job")
	fmt.Println(`Type "help" for commands.`)
	c.showCard()

	for {
		fmt.Print("> ")
		if !c.stdin.Scan() {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(c.stdin.Text()), " ")

		switch strings.ToLower(cmd) {
		case "":
		case "a", "apply", "right":
			c.swipe(gesture.Right)
		case "p", "pass", "left":
			c.swipe(gesture.Left)
		case "s", "save", "up":
			c.swipe(gesture.Up)
		case "u", "undo":
			c.bus.Emit(bus.EventUndoSwipe, nil)
			c.showCard()
		case "r", "refresh":
			c.bus.Emit(bus.EventRefreshJobs, nil)
			c.showCard()
		case "b", "browse":
			jobs := filter.Apply(c.catalog.All(), filter.Options{Query: arg})
			if err := c.printer.JobList(jobs); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			fmt.Printf("%d job(s) found.\n", len(jobs))
		case "qa", "quickapply":
			if arg == "" {
				fmt.Println("usage: qa <job-id>")
				break
			}
			c.deck.QuickApply(arg)
		case "apps", "applications":
			if err := c.printer.Applications(c.ledger.List(model.Status(arg))); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		case "w", "withdraw":
			if arg == "" {
				fmt.Println("usage: w <application-id>")
				break
			}
			if c.ledger.Withdraw(arg) {
				fmt.Println("Application withdrawn")
			}
		case "c", "card":
			c.showCard()
		case "h", "help":
			c.help()
		case "q", "quit", "exit":
			return
		default:
			fmt.Printf("Unknown command %q. Type \"help\".\n", cmd)
		}
	}
}

// swipe routes a button press through the gesture tracker so the commit
// callback fires only after the exit animation, like a real drag.
func (c *cli) swipe(dir gesture.Direction) {
	if c.deck.Empty() {
		fmt.Println("No more jobs. Try \"refresh\".")
		return
	}

	committed := make(chan gesture.Direction, 1)
	tracker := gesture.NewTracker(
		gesture.Config{ExitDuration: c.exit},
		gesture.Callbacks{OnCommit: func(d gesture.Direction) { committed <- d }},
	)
	tracker.Trigger(dir)
	c.deck.Resolve(<-committed)
	c.showCard()
}

func (c *cli) showCard() {
	job, ok := c.deck.Current()
	if !ok {
		fmt.Println("No more jobs to show! Check back later for new opportunities.")
		return
	}
	var next *model.Job
	if n, ok := c.deck.Next(); ok {
		next = &n
	}
	c.printer.Card(job, next)
}

func (c *cli) help() {
	fmt.Println(`Commands:
  a, apply       swipe right (apply to the current job)
  p, pass        swipe left (pass on the current job)
  s, save        swipe up (save for later)
  u, undo        undo the last swipe
  r, refresh     reset swipes and start over
  b [query]      browse/search all jobs
  qa <job-id>    quick-apply from the browse list
  apps [status]  list applications (pending|interview|rejected|accepted)
  w <app-id>     withdraw an application
  c, card        show the current card again
  q, quit        exit`)
}
