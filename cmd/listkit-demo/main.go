// Command listkit-demo runs a task list built on the listkit view engine,
// exercising unified actions, filters, sort, view modes, and persisted
// preferences.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/listkit/listkit/listview"
	"github.com/listkit/listkit/persist"
	"github.com/listkit/listkit/pkg/logger"
	"github.com/listkit/listkit/tui/components"
	"github.com/listkit/listkit/tui/models"
)

type config struct {
	LogLevel  string `koanf:"log_level"  validate:"oneof=debug info warn error"`
	LogJSON   bool   `koanf:"log_json"`
	PageSize  int    `koanf:"page_size"  validate:"min=1,max=100"`
	StorePath string `koanf:"store_path"`
	ViewMode  string `koanf:"view_mode"  validate:"omitempty,oneof=auto table cards graph"`
	Dev       bool   `koanf:"dev"`
}

func defaultConfig() config {
	return config{
		LogLevel:  "info",
		PageSize:  10,
		StorePath: os.TempDir() + "/listkit-demo.db",
		ViewMode:  "auto",
	}
}

// loadConfig layers LISTKIT_* environment variables over the defaults.
func loadConfig() (*config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	err := k.Load(env.Provider(".", env.Opt{
		Prefix: "LISTKIT_",
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, "LISTKIT_")), value
		},
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	var cfg config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

type task struct {
	ID        uuid.UUID
	Name      string
	Status    string
	Priority  int
	CreatedAt time.Time
}

func sampleTasks() []task {
	names := []string{
		"Ship release notes", "Rotate access keys", "Fix flaky pipeline",
		"Review storage quotas", "Upgrade runtime image", "Archive stale projects",
		"Document webhook retries", "Tune cache eviction", "Audit login events",
		"Refresh onboarding guide", "Merge dependency bumps", "Profile slow queries",
	}
	statuses := []string{"open", "active", "done"}
	tasks := make([]task, len(names))
	for i, name := range names {
		tasks[i] = task{
			ID:        uuid.New(),
			Name:      name,
			Status:    statuses[i%len(statuses)],
			Priority:  1 + i%5,
			CreatedAt: time.Now().AddDate(0, 0, -i*3),
		}
	}
	return tasks
}

func taskFields() []listview.FieldSpec[task] {
	return []listview.FieldSpec[task]{
		{Key: "name", Label: "Name", Width: 28, Searchable: true,
			Value: func(t task) any { return t.Name }},
		{Key: "status", Label: "Status", Width: 10, Searchable: true,
			Value: func(t task) any { return t.Status }},
		{Key: "priority", Label: "Priority", Width: 10,
			Value: func(t task) any { return t.Priority }},
		{Key: "created", Label: "Created", Width: 12,
			Value: func(t task) any { return t.CreatedAt.Format("2006-01-02") }},
	}
}

func buildDefinition(ctx context.Context, cfg *config, store persist.Store, tasks []task) listview.Definition[task] {
	log := logger.FromContext(ctx)
	return listview.Definition[task]{
		Source:     listview.DataSource[task]{Items: tasks},
		Fields:     taskFields(),
		ID:         func(t task) listview.RowID { return t.ID.String() },
		Selectable: true,
		Actions: listview.UnifiedActions[task]{
			{
				Key: "open", Label: "Open", Icon: "↗",
				NavigateTo: func(t task) string { return "/tasks/" + t.ID.String() },
			},
			{
				Key: "complete", Label: "Mark Done",
				Hidden: func(t task) bool { return t.Status == "done" },
				Mutation: &listview.Mutation[task]{
					Input: func(t task) any { return t.ID },
					Run: func(_ context.Context, input any) error {
						id := input.(uuid.UUID)
						for i := range tasks {
							if tasks[i].ID == id {
								tasks[i].Status = "done"
								return nil
							}
						}
						return fmt.Errorf("task %s not found", id)
					},
				},
				Confirm: &listview.ConfirmSpec[task]{
					Title:         "Mark task done?",
					DescriptionFn: func(t task) string { return t.Name },
				},
			},
			{
				Key: "delete", Label: "Delete", Destructive: true,
				OnClick: func(_ context.Context, t task) error {
					return fmt.Errorf("deleting %q is disabled in the demo", t.Name)
				},
				Confirm: &listview.ConfirmSpec[task]{
					Title:         "Delete task?",
					DescriptionFn: func(t task) string { return "This permanently removes " + t.Name },
					Variant:       listview.VariantDanger,
				},
			},
		},
		Filters: listview.UnifiedFilters{
			{Key: "status", Label: "Status", Options: []listview.FilterOption{
				{Value: "open", Label: "Open"},
				{Value: "active", Label: "Active"},
				{Value: "done", Label: "Done"},
			}},
			{Key: "priority", Label: "Priority", Options: []listview.FilterOption{
				{Value: "1"}, {Value: "2"}, {Value: "3"}, {Value: "4"}, {Value: "5"},
			}},
		},
		Sort: listview.UnifiedSort[task]{
			Options: []listview.SortOption[task]{
				{Value: "name", Label: "Name"},
				{Value: "priority", Label: "Priority", Direction: listview.SortDesc},
				{Value: "created", Label: "Created", Direction: listview.SortDesc},
			},
			Default: "created",
		},
		ViewMode: listview.ViewModeOptions{
			Requested:    listview.ViewMode(cfg.ViewMode),
			EnableToggle: true,
			Persist:      true,
			Store:        store,
		},
		State:      listview.ReconcilerOptions{DefaultState: &listview.ListState{PageSize: cfg.PageSize}},
		GraphValue: func(t task) float64 { return float64(t.Priority) },
		CardRender: func(t task) string {
			return fmt.Sprintf("%s\nstatus: %s  priority: %d", t.Name, t.Status, t.Priority)
		},
		Navigate: func(url string) { log.Info("navigate", "url", url) },
		OnError:  func(err error) { log.Error("action failed", "error", err) },
		Dev:      cfg.Dev,
	}
}

type appModel struct {
	models.BaseModel
	layout *components.Layout
	page   *components.ListPage[task]
}

func newAppModel(ctx context.Context, page *components.ListPage[task]) *appModel {
	layout := components.NewLayout("Tasks")
	layout.Breadcrumb.SetPath([]string{"listkit", "demo"}, "tasks")
	return &appModel{
		BaseModel: models.NewBaseModel(ctx, models.ModeTUI),
		layout:    &layout,
		page:      page,
	}
}

func (m *appModel) Init() tea.Cmd {
	return m.page.Init()
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd := m.BaseModel.Update(msg); cmd != nil {
		return m, cmd
	}
	if windowMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.layout.SetSize(windowMsg.Width, windowMsg.Height)
		_, height := m.layout.ContentSize()
		m.page.SetSize(windowMsg.Width, height)
		return m, nil
	}
	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)
	return m, cmd
}

func (m *appModel) View() string {
	if !m.IsReady() || m.IsQuitting() {
		return ""
	}
	m.layout.SetContent(m.page.View())
	return m.layout.View()
}

func run(cmd *cobra.Command, cfg *config) error {
	logger.SetupLogger(cfg.LogLevel, cfg.LogJSON, cfg.Dev)
	ctx := logger.ContextWithLogger(cmd.Context(), logger.GetDefault())

	store, err := persist.NewBolt(cfg.StorePath)
	if err != nil {
		return fmt.Errorf("failed to open preference store: %w", err)
	}
	defer store.Close()

	view, err := listview.New(ctx, buildDefinition(ctx, cfg, store, sampleTasks()))
	if err != nil {
		return fmt.Errorf("failed to build list view: %w", err)
	}
	defer view.Close()

	page := components.NewListPage(ctx, view)
	program := tea.NewProgram(newAppModel(ctx, page), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("program failed: %w", err)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listkit-demo",
		Short: "Interactive task list built on listkit",
		Long: "listkit-demo renders a task list with table, card, and graph views.\n" +
			"Configuration comes from LISTKIT_* environment variables.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
