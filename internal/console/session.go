// Package console implements the line-oriented brewing session used by the host binary.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/udisondev/cauldron/internal/data"
	"github.com/udisondev/cauldron/internal/game/brew"
	"github.com/udisondev/cauldron/internal/game/deck"
	"github.com/udisondev/cauldron/internal/game/identity"
	"github.com/udisondev/cauldron/internal/game/recipe"
	"github.com/udisondev/cauldron/internal/model"
)

// ErrQuit is returned by Exec for the quit command.
var ErrQuit = errors.New("quit")

// CodexEntry is one discovered potion.
type CodexEntry struct {
	PotionID   string
	RecipeName string
	Count      int64
}

// Codex lists discovered potions (injected dependency).
type Codex interface {
	Entries(ctx context.Context) ([]CodexEntry, error)
}

// LogEntry is one brew from the journal.
type LogEntry struct {
	PotionID   string
	RecipeName string
	BrewedAt   time.Time
}

// History lists recent brews, newest first (injected dependency).
type History interface {
	Recent(ctx context.Context, limit int) ([]LogEntry, error)
}

// brewableCount — сколько разных зелий вообще можно сварить.
var brewableCount = sync.OnceValue(func() int {
	return len(identity.Brewable(data.MaxIngredientsPerPotion))
})

// Session — состояние одной игровой сессии в терминале.
type Session struct {
	out     io.Writer
	basket  *deck.Basket
	brewer  *brew.Controller
	book    *recipe.Book
	codex   Codex        // nil — команда codex недоступна
	history History      // nil — команда log недоступна
	reload  func() error // nil — команда reload недоступна
}

// Option configures a Session.
type Option func(*Session)

// WithCodex enables the codex command.
func WithCodex(c Codex) Option {
	return func(s *Session) { s.codex = c }
}

// WithHistory enables the log command.
func WithHistory(h History) Option {
	return func(s *Session) { s.history = h }
}

// WithReload enables the reload command.
func WithReload(fn func() error) Option {
	return func(s *Session) { s.reload = fn }
}

// NewSession creates a session and deals the first hand.
func NewSession(out io.Writer, basket *deck.Basket, brewer *brew.Controller, book *recipe.Book, opts ...Option) *Session {
	s := &Session{out: out, basket: basket, brewer: brewer, book: book}
	for _, opt := range opts {
		opt(s)
	}
	basket.Fill()
	return s
}

// Run reads commands from in until quit, EOF or ctx cancellation.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	s.printf("Welcome to the cauldron. Type 'help' for commands.\n")
	s.printHand()

	for {
		s.printf("> ")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("reading input: %w", err)
					}
				default:
				}
				return nil
			}
			err := s.Exec(ctx, line)
			if errors.Is(err, ErrQuit) {
				return nil
			}
			if err != nil {
				s.printf("error: %v\n", err)
			}
		}
	}
}

// Exec runs one command line.
func (s *Session) Exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "hand":
		s.printHand()
		return nil
	case "brew":
		return s.brew(ctx, args)
	case "hint":
		return s.hint(args)
	case "shelf":
		s.printShelf()
		return nil
	case "replace":
		return s.replace(args)
	case "discard":
		return s.discard()
	case "codex":
		return s.printCodex(ctx)
	case "log":
		return s.printLog(ctx, args)
	case "recipes":
		return s.printRecipes(args)
	case "reload":
		return s.doReload()
	case "help":
		s.printHelp()
		return nil
	case "quit", "exit":
		return ErrQuit
	default:
		return fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
}

func (s *Session) brew(ctx context.Context, args []string) error {
	if s.brewer.Pending() != nil {
		return fmt.Errorf("a potion is waiting for a shelf slot: 'replace <slot>' or 'discard' first")
	}
	indices, err := parseIndices(args)
	if err != nil {
		return err
	}

	ings, err := s.basket.Peek(indices)
	if err != nil {
		return err
	}

	// Карты списываются только после варки без ошибки.
	res, err := s.brewer.Brew(ctx, ings)
	if err != nil {
		return err
	}
	if _, err := s.basket.Take(indices); err != nil {
		return err
	}

	if !res.Success {
		s.printf("The mixture fizzles (%s). No recipe uses %s.\n", emptyAs(res.Identity, "nothing"), describe(ings))
		s.printHand()
		return nil
	}

	p := res.Potion
	s.printf("You brewed %s: level %d, sub-level %d, %ds, %s magic.\n",
		p, p.Level, p.SubLevel, p.Duration, p.MagicType)
	if p.Description != "" {
		s.printf("  %s\n", p.Description)
	}
	if res.NeedsReplacement {
		s.printf("The shelf is full. 'replace <slot>' to swap it in, or 'discard'.\n")
		s.printShelf()
	} else {
		s.printf("Placed on shelf slot %d.\n", res.Slot)
	}
	s.printHand()
	return nil
}

func (s *Session) hint(args []string) error {
	indices, err := parseIndices(args)
	if err != nil {
		return err
	}
	sel, err := s.basket.Peek(indices)
	if err != nil {
		return err
	}

	tbl := s.book.Current()
	if r, ok := tbl.Match(sel); ok {
		s.printf("Brewing now makes %s.\n", r.Name)
	}
	cands := tbl.Candidates(sel)
	s.printf("%d recipes still reachable.\n", len(cands))
	for _, r := range cands[:min(len(cands), 5)] {
		s.printf("  %s\n", r.Name)
	}
	return nil
}

func (s *Session) replace(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: replace <slot>")
	}
	slot, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad slot %q", args[0])
	}
	old, err := s.brewer.ReplacePending(slot)
	if err != nil {
		return err
	}
	if old != nil {
		s.printf("Poured out %s.\n", old)
	}
	s.printShelf()
	return nil
}

func (s *Session) discard() error {
	p, err := s.brewer.DiscardPending()
	if err != nil {
		return err
	}
	s.printf("Discarded %s.\n", p)
	return nil
}

func (s *Session) doReload() error {
	if s.reload == nil {
		return fmt.Errorf("reload is not available")
	}
	if err := s.reload(); err != nil {
		return err
	}
	s.printf("Recipe book reloaded: %d recipes.\n", s.book.Current().Len())
	return nil
}

func (s *Session) printHand() {
	hand := s.basket.Hand()
	if len(hand) == 0 {
		s.printf("Your basket is empty.\n")
		return
	}
	s.printf("Basket:\n")
	for i, ing := range hand {
		s.printf("  %d: %s (%s %s)\n", i, ing.DisplayName(), ing.Family(), ing.SubFamily())
	}
}

func (s *Session) printShelf() {
	s.printf("Shelf:\n")
	for i, p := range s.brewer.Shelf().Slots() {
		if p == nil {
			s.printf("  %d: (empty)\n", i)
			continue
		}
		s.printf("  %d: %s\n", i, p)
	}
	if p := s.brewer.Pending(); p != nil {
		s.printf("  pending: %s\n", p)
	}
}

func (s *Session) printCodex(ctx context.Context) error {
	if s.codex == nil {
		return fmt.Errorf("codex is not available")
	}
	entries, err := s.codex.Entries(ctx)
	if err != nil {
		return fmt.Errorf("reading codex: %w", err)
	}
	if len(entries) == 0 {
		s.printf("No potions discovered yet (0 of %d).\n", brewableCount())
		return nil
	}

	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tRECIPE\tBREWED")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", e.PotionID, e.RecipeName, e.Count)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	s.printf("%d of %d potions discovered.\n", len(entries), brewableCount())
	return nil
}

func (s *Session) printLog(ctx context.Context, args []string) error {
	if s.history == nil {
		return fmt.Errorf("log is not available")
	}
	limit, err := parseLimit(args)
	if err != nil {
		return err
	}
	entries, err := s.history.Recent(ctx, limit)
	if err != nil {
		return fmt.Errorf("reading brew log: %w", err)
	}
	if len(entries) == 0 {
		s.printf("Nothing brewed yet.\n")
		return nil
	}

	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.BrewedAt.Format(time.DateTime), e.PotionID, e.RecipeName)
	}
	return tw.Flush()
}

func (s *Session) printRecipes(args []string) error {
	limit, err := parseLimit(args)
	if err != nil {
		return err
	}

	recipes := s.book.Current().Recipes()
	s.printf("%d recipes in the book.\n", len(recipes))
	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, r := range recipes[:min(limit, len(recipes))] {
		fmt.Fprintf(tw, "%s\tlvl %d\t%ds\t%s\n", r.Name, r.Level, r.Duration, strings.Join(requirementStrings(r), ", "))
	}
	return tw.Flush()
}

func (s *Session) printHelp() {
	s.printf(`Commands:
  hand                 show the basket
  brew <i> [<j> ...]   brew with the basket cards at the given positions (max %d)
  hint <i> [<j> ...]   show what a selection can still become
  shelf                show the shelf
  replace <slot>       put the pending potion into a shelf slot
  discard              throw the pending potion away
  codex                list discovered potions
  log [n]              show the last n brews
  recipes [n]          list the first n recipes
  reload               reload the recipe book
  quit                 leave
`, data.MaxIngredientsPerPotion)
}

func (s *Session) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		slog.Debug("console write failed", "error", err)
	}
}

func parseIndices(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: give basket positions, e.g. 'brew 0 2'", deck.ErrInvalidSelection)
	}
	out := make([]int, 0, len(args))
	for _, a := range args {
		i, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a position", deck.ErrInvalidSelection, a)
		}
		out = append(out, i)
	}
	return out, nil
}

// parseLimit reads an optional non-negative count, 10 by default.
func parseLimit(args []string) (int, error) {
	if len(args) == 0 {
		return 10, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("bad limit %q", args[0])
	}
	return n, nil
}

func describe(ings []*model.Ingredient) string {
	names := make([]string, 0, len(ings))
	for _, ing := range ings {
		names = append(names, ing.DisplayName())
	}
	return strings.Join(names, " + ")
}

func requirementStrings(r *recipe.Recipe) []string {
	out := make([]string, 0, len(r.Requirements))
	for _, req := range r.Requirements {
		out = append(out, req.String())
	}
	return out
}

func emptyAs(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
