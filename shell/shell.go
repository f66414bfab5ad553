package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/David-Mais/crossfill/grid"
	"github.com/David-Mais/crossfill/lexicon"
	"github.com/David-Mais/crossfill/puzzleio"
	"github.com/David-Mais/crossfill/render"
	"github.com/David-Mais/crossfill/solver"
)

// ShellController drives the interactive fill loop.
type ShellController struct {
	l *readline.Instance

	curName       string
	curCrossword  *grid.Crossword
	curWords      []string
	curAssignment solver.Assignment
	solveTimeout  time.Duration
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(solveTimeout time.Duration) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:              "crossfill> ",
		HistoryFile:         "/tmp/readline-crossfill.tmp",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, solveTimeout: solveTimeout}
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "load <bundle.yaml> - load a YAML puzzle bundle\n")
	io.WriteString(w, "load <structure> <words> - load a structure file and a word list\n")
	io.WriteString(w, "slots - list the puzzle's slots\n")
	io.WriteString(w, "words - list the loaded vocabulary\n")
	io.WriteString(w, "solve - fill the loaded puzzle\n")
	io.WriteString(w, "show - print the current fill\n")
	io.WriteString(w, "exit - leave\n")
}

func (sc *ShellController) load(args []string) error {
	switch len(args) {
	case 1:
		bundle, err := puzzleio.Load(args[0])
		if err != nil {
			return err
		}
		cw, err := bundle.Crossword()
		if err != nil {
			return err
		}
		sc.curName = bundle.Name
		sc.curCrossword = cw
		sc.curWords = bundle.Words
	case 2:
		structure, err := grid.LoadStructure(args[0])
		if err != nil {
			return err
		}
		cw, err := grid.New(structure)
		if err != nil {
			return err
		}
		words, err := lexicon.Load(args[1])
		if err != nil {
			return err
		}
		sc.curName = args[0]
		sc.curCrossword = cw
		sc.curWords = words
	default:
		return fmt.Errorf("load takes a bundle path, or a structure path and a words path")
	}
	sc.curAssignment = nil
	showMessage(fmt.Sprintf("loaded %d slots, %d words",
		len(sc.curCrossword.Slots()), len(sc.curWords)), sc.l.Stderr())
	return nil
}

func (sc *ShellController) solve() error {
	if sc.curCrossword == nil {
		return fmt.Errorf("no puzzle loaded; see `load`")
	}
	ctx := context.Background()
	if sc.solveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, sc.solveTimeout)
		defer cancel()
	}
	start := time.Now()
	assignment := solver.NewFiller(sc.curCrossword, sc.curWords).Solve(ctx)
	elapsed := time.Since(start)
	if assignment == nil {
		showMessage(fmt.Sprintf("no fill found (%.2fs)", elapsed.Seconds()), sc.l.Stderr())
		return nil
	}
	sc.curAssignment = assignment
	showMessage(render.Text(sc.curCrossword, assignment), sc.l.Stderr())
	showMessage(fmt.Sprintf("filled in %.2fs", elapsed.Seconds()), sc.l.Stderr())
	return nil
}

func (sc *ShellController) show() error {
	if sc.curCrossword == nil {
		return fmt.Errorf("no puzzle loaded; see `load`")
	}
	showMessage(render.Text(sc.curCrossword, sc.curAssignment), sc.l.Stderr())
	return nil
}

func (sc *ShellController) slots() error {
	if sc.curCrossword == nil {
		return fmt.Errorf("no puzzle loaded; see `load`")
	}
	for _, s := range sc.curCrossword.Slots() {
		word := sc.curAssignment[s]
		showMessage(fmt.Sprintf("%v degree %d %s", s, sc.curCrossword.Degree(s), word),
			sc.l.Stderr())
	}
	return nil
}

type shellcmd struct {
	cmd  string
	args []string
}

var errNoData = errors.New("no data in command")

func extractFields(line string) (*shellcmd, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errNoData
	}
	return &shellcmd{cmd: fields[0], args: fields[1:]}, nil
}

func (sc *ShellController) words() error {
	if sc.curCrossword == nil {
		return fmt.Errorf("no puzzle loaded; see `load`")
	}
	showMessage(formatWords(sc.curWords), sc.l.Stderr())
	return nil
}

func formatWords(words []string) string {
	if len(words) == 0 {
		return "0 words"
	}
	return fmt.Sprintf("%d words: %s", len(words), strings.Join(words, " "))
}

// Execute runs one shell command line. It returns false when the shell
// should exit.
func (sc *ShellController) Execute(line string) bool {
	parsed, perr := extractFields(line)
	if perr != nil {
		return true
	}
	cmd, args := parsed.cmd, parsed.args

	var err error
	switch cmd {
	case "load":
		err = sc.load(args)
	case "solve":
		err = sc.solve()
	case "show":
		err = sc.show()
	case "slots":
		err = sc.slots()
	case "words":
		err = sc.words()
	case "help":
		usage(sc.l.Stderr())
	case "exit", "quit":
		return false
	default:
		err = fmt.Errorf("unknown command %q; see `help`", cmd)
	}
	if err != nil {
		showMessage("error: "+err.Error(), sc.l.Stderr())
	}
	return true
}

// Loop reads and executes commands until EOF, interrupt, or `exit`.
func (sc *ShellController) Loop() {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		if !sc.Execute(strings.TrimSpace(line)) {
			break
		}
	}
	log.Debug().Msg("leaving shell loop")
}
