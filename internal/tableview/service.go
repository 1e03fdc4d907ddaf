package tableview

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campus-tools/advising-admin/internal/models"
	appErrors "github.com/campus-tools/advising-admin/pkg/errors"
	"github.com/campus-tools/advising-admin/pkg/export"
	"github.com/campus-tools/advising-admin/pkg/table"
)

// Fetch loads the full entity dataset from the Data Provider.
type Fetch[R any] func(ctx context.Context) ([]R, error)

// Page is what one rows call returns: the visible window plus the metadata
// the screen renders around it.
type Page[R any] struct {
	ViewID     string            `json:"view_id"`
	Rows       []R               `json:"rows"`
	Pagination models.Pagination `json:"pagination"`
	Selected   []string          `json:"selected"`
	AllPicked  bool              `json:"all_selected"`
	SortKey    string            `json:"sort_key"`
	SortDir    table.Direction   `json:"sort_dir"`
}

// Download is a rendered export ready to stream to the browser.
type Download struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// Service is the table page controller for one entity type. Every list
// screen in the dashboard is an instance of this with a different Config.
type Service[R any] struct {
	entity  string
	cfg     table.Config[R]
	columns []export.Column[R]
	fetch   Fetch[R]
	store   Store
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	logger  *zap.Logger
}

// NewService wires a controller for one entity screen.
func NewService[R any](entity string, cfg table.Config[R], columns []export.Column[R], fetch Fetch[R], store Store, logger *zap.Logger) *Service[R] {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	return &Service[R]{
		entity:  entity,
		cfg:     cfg,
		columns: columns,
		fetch:   fetch,
		store:   store,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		logger:  logger,
	}
}

// Entity names the entity this controller serves.
func (s *Service[R]) Entity() string {
	return s.entity
}

// Open fetches the dataset and creates a fresh view session with default
// filter, sort and page state.
func (s *Service[R]) Open(ctx context.Context) (*Page[R], error) {
	records, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	viewID := uuid.NewString()
	if err := s.saveSnapshot(ctx, viewID, records); err != nil {
		return nil, err
	}

	state := &State{
		Entity:    s.entity,
		SortKey:   s.cfg.DefaultSortKey,
		SortDir:   table.Ascending,
		Page:      1,
		PageSize:  s.cfg.PageSize,
		CreatedAt: time.Now().UTC(),
	}
	return s.applyAndSave(ctx, viewID, state, records)
}

// Rows applies any requested state changes and returns the re-derived
// visible window.
func (s *Service[R]) Rows(ctx context.Context, viewID string, params Params) (*Page[R], error) {
	state, records, err := s.load(ctx, viewID)
	if err != nil {
		return nil, err
	}

	if params.Query != nil {
		state.Filters.Query = *params.Query
		state.Page = 1
	}
	if params.Dimensions != nil {
		if state.Filters.Dimensions == nil {
			state.Filters.Dimensions = make(map[string]string)
		}
		for name, value := range params.Dimensions {
			state.Filters.Dimensions[name] = value
		}
		state.Page = 1
	}
	if params.SortKey != nil {
		key := *params.SortKey
		switch {
		case params.SortDir != nil:
			state.SortKey = key
			state.SortDir = *params.SortDir
		case key == state.SortKey:
			// Header click on the active column flips direction.
			if state.SortDir == table.Ascending {
				state.SortDir = table.Descending
			} else {
				state.SortDir = table.Ascending
			}
		default:
			state.SortKey = key
			state.SortDir = table.Ascending
		}
	}
	if params.Page != nil {
		state.Page = *params.Page
	}

	return s.applyAndSave(ctx, viewID, state, records)
}

// ToggleSelect flips one record in the selection set.
func (s *Service[R]) ToggleSelect(ctx context.Context, viewID, recordID string) (*Page[R], error) {
	state, records, err := s.load(ctx, viewID)
	if err != nil {
		return nil, err
	}
	selection := table.NewSelection(state.Selected...)
	selection.Toggle(recordID)
	state.Selected = selection.IDs()
	return s.applyAndSave(ctx, viewID, state, records)
}

// SelectAll toggles between "everything in scope selected" and "nothing
// selected". The scope (filtered set or current page) is fixed per entity
// in the table config.
func (s *Service[R]) SelectAll(ctx context.Context, viewID string) (*Page[R], error) {
	state, records, err := s.load(ctx, viewID)
	if err != nil {
		return nil, err
	}

	filtered := s.cfg.Filter(records, state.Filters)
	sorted := s.cfg.Sort(filtered, state.SortKey, state.SortDir)
	scope := sorted
	if s.cfg.SelectAll == table.SelectPage {
		scope = table.Paginate(sorted, state.Page, state.PageSize).Visible
	}

	selection := table.NewSelection(state.Selected...)
	selection.SelectAll(s.idsOf(scope))
	state.Selected = selection.IDs()
	return s.applyAndSave(ctx, viewID, state, records)
}

// ClearSelection empties the selection set.
func (s *Service[R]) ClearSelection(ctx context.Context, viewID string) (*Page[R], error) {
	state, records, err := s.load(ctx, viewID)
	if err != nil {
		return nil, err
	}
	state.Selected = nil
	return s.applyAndSave(ctx, viewID, state, records)
}

// Export renders the filtered set, or the selection, in row order. An
// empty result still yields a header-only file; gating the action on
// emptiness is the screen's concern.
func (s *Service[R]) Export(ctx context.Context, viewID string, scope ExportScope, format ExportFormat) (*Download, error) {
	state, records, err := s.load(ctx, viewID)
	if err != nil {
		return nil, err
	}

	filtered := s.cfg.Filter(records, state.Filters)
	sorted := s.cfg.Sort(filtered, state.SortKey, state.SortDir)

	rows := sorted
	if scope == ScopeSelected {
		selection := table.NewSelection(state.Selected...)
		picked := make([]R, 0, len(selection))
		for _, r := range sorted {
			if selection.Has(s.cfg.ID(r)) {
				picked = append(picked, r)
			}
		}
		rows = picked
	}

	dataset := export.BuildDataset(rows, s.columns)
	switch format {
	case FormatPDF:
		payload, err := s.pdf.Render(dataset, s.entity)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render pdf export")
		}
		return &Download{Filename: export.Filename(s.entity, "pdf"), ContentType: export.PDFContentType, Payload: payload}, nil
	default:
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render csv export")
		}
		return &Download{Filename: export.Filename(s.entity, "csv"), ContentType: export.CSVContentType, Payload: payload}, nil
	}
}

// Refresh re-fetches the dataset. Each refresh takes a sequence number; a
// response is discarded when a newer refresh was issued while it was in
// flight, so rapid filter changes can never resurrect stale data.
func (s *Service[R]) Refresh(ctx context.Context, viewID string) (*Page[R], error) {
	state, err := s.store.LoadState(ctx, viewID)
	if err != nil {
		return nil, err
	}

	seq, err := s.store.BeginRefresh(ctx, viewID)
	if err != nil {
		return nil, err
	}

	records, err := s.fetch(ctx)
	if err != nil {
		// The previous snapshot stays in place; the screen keeps showing
		// it alongside the error banner.
		return nil, err
	}

	latest, err := s.store.LatestRefresh(ctx, viewID)
	if err != nil {
		return nil, err
	}
	if latest != seq {
		s.logger.Debug("discarding superseded refresh",
			zap.String("entity", s.entity),
			zap.String("view_id", viewID),
			zap.Int64("seq", seq),
			zap.Int64("latest", latest))
		return nil, appErrors.ErrStaleRefresh
	}

	if err := s.saveSnapshot(ctx, viewID, records); err != nil {
		return nil, err
	}
	return s.applyAndSave(ctx, viewID, state, records)
}

// Close drops the view session.
func (s *Service[R]) Close(ctx context.Context, viewID string) error {
	return s.store.Delete(ctx, viewID)
}

// applyAndSave runs the engine pipeline, reconciles the selection with the
// filtered set, persists the resulting state and builds the page.
func (s *Service[R]) applyAndSave(ctx context.Context, viewID string, state *State, records []R) (*Page[R], error) {
	filtered := s.cfg.Filter(records, state.Filters)
	sorted := s.cfg.Sort(filtered, state.SortKey, state.SortDir)
	window := table.Paginate(sorted, state.Page, state.PageSize)
	state.Page = window.Page

	// Selection never outlives visibility: anything outside the filtered
	// set is dropped on every re-derivation.
	selection := table.NewSelection(state.Selected...)
	filteredIDs := s.idsOf(filtered)
	selection.Intersect(filteredIDs)
	state.Selected = selection.IDs()

	scopeIDs := filteredIDs
	if s.cfg.SelectAll == table.SelectPage {
		scopeIDs = s.idsOf(window.Visible)
	}

	if err := s.store.SaveState(ctx, viewID, state); err != nil {
		return nil, err
	}

	return &Page[R]{
		ViewID: viewID,
		Rows:   window.Visible,
		Pagination: models.Pagination{
			Page:       window.Page,
			PageSize:   state.PageSize,
			TotalPages: window.TotalPages,
			TotalCount: len(filtered),
		},
		Selected:  state.Selected,
		AllPicked: selection.AllSelected(scopeIDs),
		SortKey:   state.SortKey,
		SortDir:   state.SortDir,
	}, nil
}

func (s *Service[R]) load(ctx context.Context, viewID string) (*State, []R, error) {
	state, err := s.store.LoadState(ctx, viewID)
	if err != nil {
		return nil, nil, err
	}
	raw, err := s.store.LoadSnapshot(ctx, viewID)
	if err != nil {
		return nil, nil, err
	}
	var records []R
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "decode view snapshot")
	}
	return state, records, nil
}

func (s *Service[R]) saveSnapshot(ctx context.Context, viewID string, records []R) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode view snapshot")
	}
	return s.store.SaveSnapshot(ctx, viewID, raw)
}

func (s *Service[R]) idsOf(records []R) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, s.cfg.ID(r))
	}
	return ids
}
