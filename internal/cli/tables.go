package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	twophase "github.com/SeamusWaldron/gocube_twophase"
	"github.com/SeamusWaldron/gocube_twophase/pkg/tables"
)

var (
	rebuildTables bool
	listTables    bool
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Build or load every lookup table",
	Long: `Build every move table, the merge table and the phase-2 pruning table,
showing progress as each one is loaded from the cache or built.

Use --rebuild to discard the cache first, or --list to show what the cache
currently holds without building anything.`,
	Args: cobra.NoArgs,
	RunE: runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.Flags().BoolVar(&rebuildTables, "rebuild", false, "Discard cached tables before building")
	tablesCmd.Flags().BoolVar(&listTables, "list", false, "List cached tables and exit")
}

func runTables(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if listTables || rebuildTables {
		d, err := openCache()
		if err != nil {
			return err
		}
		if d == nil {
			return errors.New("--list and --rebuild need the cache")
		}
		if listTables {
			defer d.Close()
			builds, err := d.Builds()
			if err != nil {
				return err
			}
			if len(builds) == 0 {
				fmt.Fprintln(out, "No cached tables in", d.Root())
				return nil
			}
			for _, b := range builds {
				fmt.Fprintf(out, "%-30s %10d bytes  %s  %s\n", b.Name, b.Bytes, b.SHA256[:12], b.CreatedAt.Local().Format(time.DateTime))
			}
			return nil
		}
		err = d.Clear()
		d.Close()
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	m := newTablesModel(ctx)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run progress view: %w", err)
	}

	fm := final.(*tablesModel)
	if fm.err != nil {
		return fm.err
	}
	if !fm.done {
		return errors.New("interrupted")
	}
	return nil
}

// Messages
type tableEventMsg tables.Event
type buildDoneMsg struct{ err error }

type tablesModel struct {
	ctx    context.Context
	names  []string
	events chan tables.Event
	status map[string]tables.Event

	start    time.Time
	elapsed  time.Duration
	done     bool
	err      error
	quitting bool
}

func newTablesModel(ctx context.Context) *tablesModel {
	names := tables.Names()
	return &tablesModel{
		ctx:   ctx,
		names: names,
		// Each table emits at most two events, so sends never block.
		events: make(chan tables.Event, 2*len(names)),
		status: make(map[string]tables.Event),
		start:  time.Now(),
	}
}

func (m *tablesModel) Init() tea.Cmd {
	return tea.Batch(
		m.build(),
		m.listenForEvents(),
		m.tickCmd(),
	)
}

func (m *tablesModel) build() tea.Cmd {
	return func() tea.Msg {
		_, err := buildTables(m.ctx, twophase.WithProgress(func(e tables.Event) {
			m.events <- e
		}))
		return buildDoneMsg{err: err}
	}
}

func (m *tablesModel) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		return tableEventMsg(<-m.events)
	}
}

func (m *tablesModel) tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type tickMsg time.Time

func (m *tablesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tableEventMsg:
		m.status[msg.Table] = tables.Event(msg)
		return m, m.listenForEvents()

	case buildDoneMsg:
		m.elapsed = time.Since(m.start)
		m.done = msg.err == nil
		m.err = msg.err
		return m, tea.Quit

	case tickMsg:
		if !m.done {
			m.elapsed = time.Since(m.start)
		}
		return m, m.tickCmd()
	}

	return m, nil
}

func (m *tablesModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Lookup tables"))
	b.WriteString("\n\n")

	for _, name := range m.names {
		e, seen := m.status[name]
		switch {
		case !seen:
			b.WriteString(fmt.Sprintf("  %-30s %s\n", name, statusStyle.Render("waiting")))
		case e.Status == tables.StatusBuilding:
			b.WriteString(fmt.Sprintf("  %-30s %s\n", name, valueStyle.Render("building...")))
		default:
			b.WriteString(fmt.Sprintf("  %-30s %s %s\n", name,
				doneStyle.Render(fmt.Sprintf("%-8s", e.Status)),
				statusStyle.Render(e.Took.Round(time.Millisecond).String())))
		}
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	case m.done:
		b.WriteString(doneStyle.Render(fmt.Sprintf("All %d tables ready in %s", len(m.names), m.elapsed.Round(time.Millisecond))))
	case m.quitting:
		b.WriteString(errorStyle.Render("Interrupted"))
	default:
		b.WriteString(statusStyle.Render(fmt.Sprintf("Elapsed %s", m.elapsed.Round(100*time.Millisecond))))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("q/Esc to quit"))
	}
	b.WriteString("\n")

	return b.String()
}
