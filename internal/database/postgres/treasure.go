package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GielinorRush_Go/internal/domain"
	"github.com/osse101/GielinorRush_Go/internal/repository"
)

// TreasureRepository implements repository.TreasureHunt for PostgreSQL
type TreasureRepository struct {
	db *pgxpool.Pool
}

// NewTreasureRepository creates a new TreasureRepository
func NewTreasureRepository(db *pgxpool.Pool) *TreasureRepository {
	return &TreasureRepository{db: db}
}

var _ repository.TreasureHunt = (*TreasureRepository)(nil)

// treasureTx implements repository.TreasureTx
type treasureTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *TreasureRepository) BeginTx(ctx context.Context) (repository.TreasureTx, error) {
	tx, err := beginTx(ctx, r.db)
	if err != nil {
		return nil, err
	}
	return &treasureTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *treasureTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Rollback rolls back the transaction
func (t *treasureTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// ---- Events ----

const eventColumns = `event_id, name, status, config, derived_values, map_structure,
	content_selections, map_version, created_at, updated_at`

// CreateEvent inserts a new treasure event
func (r *TreasureRepository) CreateEvent(ctx context.Context, event *domain.TreasureEvent) error {
	configJSON, err := json.Marshal(event.Config)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalEventData, err)
	}
	derivedJSON, structureJSON, selectionsJSON, err := marshalEventParts(event)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO treasure_events (`+eventColumns+`, closes_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		event.EventID, event.Name, string(event.Status), configJSON, derivedJSON, structureJSON,
		selectionsJSON, event.MapVersion, event.CreatedAt, event.UpdatedAt, closesAt(event.Config),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertEvent, err)
	}
	return nil
}

// GetEvent retrieves an event by id
func (r *TreasureRepository) GetEvent(ctx context.Context, eventID string) (*domain.TreasureEvent, error) {
	return getEvent(ctx, r.db, eventID, "")
}

// GetEventForUpdate locks the event row for writing until the transaction ends
func (t *treasureTx) GetEventForUpdate(ctx context.Context, eventID string) (*domain.TreasureEvent, error) {
	return getEvent(ctx, t.tx, eventID, " FOR UPDATE")
}

// GetEventForShare blocks concurrent regeneration while team transitions run
func (t *treasureTx) GetEventForShare(ctx context.Context, eventID string) (*domain.TreasureEvent, error) {
	return getEvent(ctx, t.tx, eventID, " FOR SHARE")
}

// UpdateEvent writes every mutable event column
func (t *treasureTx) UpdateEvent(ctx context.Context, event *domain.TreasureEvent) error {
	configJSON, err := json.Marshal(event.Config)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalEventData, err)
	}
	derivedJSON, structureJSON, selectionsJSON, err := marshalEventParts(event)
	if err != nil {
		return err
	}

	tag, err := t.tx.Exec(ctx, `
		UPDATE treasure_events
		SET name = $2, status = $3, config = $4, derived_values = $5, map_structure = $6,
		    content_selections = $7, map_version = $8, updated_at = $9, closes_at = $10
		WHERE event_id = $1`,
		event.EventID, event.Name, string(event.Status), configJSON, derivedJSON, structureJSON,
		selectionsJSON, event.MapVersion, event.UpdatedAt, closesAt(event.Config),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateEvent, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrEventNotFound, event.EventID)
	}
	return nil
}

// ListExpiredEvents returns the ids of active events due to close at or before cutoff
func (r *TreasureRepository) ListExpiredEvents(ctx context.Context, cutoff time.Time) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT event_id FROM treasure_events
		WHERE status = $1 AND closes_at IS NOT NULL AND closes_at <= $2
		ORDER BY closes_at`, string(domain.EventStatusActive), cutoff)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}
	return ids, nil
}

// closesAt is the nullable closes_at column value for cfg
func closesAt(cfg domain.EventConfig) *time.Time {
	at, ok := cfg.ClosesAt()
	if !ok {
		return nil
	}
	return &at
}

func marshalEventParts(event *domain.TreasureEvent) (derived, structure, selections []byte, err error) {
	if derived, err = jsonOrNull(event.DerivedValues); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalEventData, err)
	}
	if structure, err = jsonOrNull(event.MapStructure); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalEventData, err)
	}
	if selections, err = jsonOrNull(event.ContentSelections); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalEventData, err)
	}
	return derived, structure, selections, nil
}

func getEvent(ctx context.Context, q querier, eventID, lockClause string) (*domain.TreasureEvent, error) {
	row := q.QueryRow(ctx, `SELECT `+eventColumns+` FROM treasure_events WHERE event_id = $1`+lockClause, eventID)

	var (
		evt                                                    domain.TreasureEvent
		status                                                 string
		configJSON, derivedJSON, structureJSON, selectionsJSON []byte
	)
	err := row.Scan(&evt.EventID, &evt.Name, &status, &configJSON, &derivedJSON, &structureJSON,
		&selectionsJSON, &evt.MapVersion, &evt.CreatedAt, &evt.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrEventNotFound, eventID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEvent, err)
	}
	evt.Status = domain.EventStatus(status)

	if err := json.Unmarshal(configJSON, &evt.Config); err != nil {
		return nil, fmt.Errorf("%s: config: %w", ErrMsgFailedToUnmarshalEventRow, err)
	}
	if evt.DerivedValues, err = unmarshalNullable[domain.DerivedValues](derivedJSON); err != nil {
		return nil, fmt.Errorf("%s: derived values: %w", ErrMsgFailedToUnmarshalEventRow, err)
	}
	if evt.MapStructure, err = unmarshalNullable[domain.MapStructure](structureJSON); err != nil {
		return nil, fmt.Errorf("%s: map structure: %w", ErrMsgFailedToUnmarshalEventRow, err)
	}
	if evt.ContentSelections, err = unmarshalNullable[domain.ContentSelections](selectionsJSON); err != nil {
		return nil, fmt.Errorf("%s: content selections: %w", ErrMsgFailedToUnmarshalEventRow, err)
	}
	return &evt, nil
}

// ---- Nodes ----

// GetNodes returns an event's nodes in generation order
func (r *TreasureRepository) GetNodes(ctx context.Context, eventID string) ([]domain.Node, error) {
	rows, err := r.db.Query(ctx, `
		SELECT data FROM treasure_nodes
		WHERE event_id = $1
		ORDER BY position`, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryNodes, err)
	}
	defer rows.Close()

	nodes := []domain.Node{}
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryNodes, err)
		}
		var n domain.Node
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalNode, err)
		}
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryNodes, err)
	}
	return nodes, nil
}

// ReplaceNodes swaps an event's whole node set
func (t *treasureTx) ReplaceNodes(ctx context.Context, eventID string, nodes []domain.Node) error {
	if _, err := t.tx.Exec(ctx, `DELETE FROM treasure_nodes WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteNodes, err)
	}
	if len(nodes) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i := range nodes {
		data, err := json.Marshal(nodes[i])
		if err != nil {
			return fmt.Errorf("%s %s: %w", ErrMsgFailedToMarshalNode, nodes[i].NodeID, err)
		}
		batch.Queue(`
			INSERT INTO treasure_nodes (event_id, node_id, position, node_type, data)
			VALUES ($1, $2, $3, $4, $5)`,
			eventID, nodes[i].NodeID, i, string(nodes[i].NodeType), data)
	}

	br := t.tx.SendBatch(ctx, batch)
	for range nodes {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			if pgErrorCode(err) == PgErrorCodeUniqueViolation {
				return fmt.Errorf("%w: %v", domain.ErrDuplicateNodeID, err)
			}
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertNode, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertNode, err)
	}
	return nil
}

// ---- Teams ----

// teamProgress is the JSONB progress column of treasure_teams.
type teamProgress struct {
	CompletedNodes  []string                   `json:"completed_nodes"`
	AvailableNodes  []string                   `json:"available_nodes"`
	KeysHeld        []domain.KeyAmount         `json:"keys_held"`
	ActiveBuffs     []domain.Buff              `json:"active_buffs"`
	BuffHistory     []domain.BuffHistoryEntry  `json:"buff_history"`
	InnTransactions []domain.InnTransaction    `json:"inn_transactions"`
	AppliedBuffs    map[string]domain.NodeBuff `json:"applied_buffs,omitempty"`
}

func progressOf(t *domain.Team) teamProgress {
	return teamProgress{
		CompletedNodes:  orEmpty(t.CompletedNodes),
		AvailableNodes:  orEmpty(t.AvailableNodes),
		KeysHeld:        orEmpty(t.KeysHeld),
		ActiveBuffs:     orEmpty(t.ActiveBuffs),
		BuffHistory:     orEmpty(t.BuffHistory),
		InnTransactions: orEmpty(t.InnTransactions),
		AppliedBuffs:    t.AppliedBuffs,
	}
}

func (p teamProgress) applyTo(t *domain.Team) {
	t.CompletedNodes = orEmpty(p.CompletedNodes)
	t.AvailableNodes = orEmpty(p.AvailableNodes)
	t.KeysHeld = orEmpty(p.KeysHeld)
	t.ActiveBuffs = orEmpty(p.ActiveBuffs)
	t.BuffHistory = orEmpty(p.BuffHistory)
	t.InnTransactions = orEmpty(p.InnTransactions)
	t.AppliedBuffs = p.AppliedBuffs
}

// current_pot is NUMERIC so it round-trips through text to keep full precision
const teamColumns = `team_id, event_id, name, members, current_pot::text, progress, created_at, updated_at`

// CreateTeam inserts a new team
func (r *TreasureRepository) CreateTeam(ctx context.Context, team *domain.Team) error {
	membersJSON, err := json.Marshal(orEmpty(team.Members))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalProgress, err)
	}
	progressJSON, err := json.Marshal(progressOf(team))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalProgress, err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO treasure_teams (team_id, event_id, name, members, current_pot, progress, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::text::numeric, $6, $7, $8)`,
		team.TeamID, team.EventID, team.Name, membersJSON, team.CurrentPot.String(), progressJSON,
		team.CreatedAt, team.UpdatedAt,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case PgErrorCodeUniqueViolation:
			return fmt.Errorf("%w: %s", domain.ErrTeamNameTaken, team.Name)
		case PgErrorCodeForeignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrEventNotFound, team.EventID)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertTeam, err)
	}
	return nil
}

// GetTeam retrieves a team within an event
func (r *TreasureRepository) GetTeam(ctx context.Context, eventID, teamID string) (*domain.Team, error) {
	return getTeam(ctx, r.db, eventID, teamID, "")
}

// GetTeamForUpdate locks the team row until the transaction ends
func (t *treasureTx) GetTeamForUpdate(ctx context.Context, eventID, teamID string) (*domain.Team, error) {
	return getTeam(ctx, t.tx, eventID, teamID, " FOR UPDATE")
}

// ListTeams returns all teams of an event in creation order
func (r *TreasureRepository) ListTeams(ctx context.Context, eventID string) ([]domain.Team, error) {
	return listTeams(ctx, r.db, eventID, "")
}

// ListTeamsForUpdate locks every team row of the event
func (t *treasureTx) ListTeamsForUpdate(ctx context.Context, eventID string) ([]domain.Team, error) {
	return listTeams(ctx, t.tx, eventID, " FOR UPDATE")
}

// UpdateTeam persists a team's progress and pot
func (t *treasureTx) UpdateTeam(ctx context.Context, team *domain.Team) error {
	membersJSON, err := json.Marshal(orEmpty(team.Members))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalProgress, err)
	}
	progressJSON, err := json.Marshal(progressOf(team))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalProgress, err)
	}

	tag, err := t.tx.Exec(ctx, `
		UPDATE treasure_teams
		SET name = $3, members = $4, current_pot = $5::text::numeric, progress = $6, updated_at = $7
		WHERE event_id = $1 AND team_id = $2`,
		team.EventID, team.TeamID, team.Name, membersJSON, team.CurrentPot.String(), progressJSON, team.UpdatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == PgErrorCodeUniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrTeamNameTaken, team.Name)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateTeam, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrTeamNotFound, team.TeamID)
	}
	return nil
}

func getTeam(ctx context.Context, q querier, eventID, teamID, lockClause string) (*domain.Team, error) {
	row := q.QueryRow(ctx, `SELECT `+teamColumns+` FROM treasure_teams
		WHERE event_id = $1 AND team_id = $2`+lockClause, eventID, teamID)
	team, err := scanTeam(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTeamNotFound, teamID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTeam, err)
	}
	return team, nil
}

func listTeams(ctx context.Context, q querier, eventID, lockClause string) ([]domain.Team, error) {
	rows, err := q.Query(ctx, `SELECT `+teamColumns+` FROM treasure_teams
		WHERE event_id = $1
		ORDER BY created_at, team_id`+lockClause, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTeams, err)
	}
	defer rows.Close()

	teams := []domain.Team{}
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTeams, err)
		}
		teams = append(teams, *team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTeams, err)
	}
	return teams, nil
}

func scanTeam(row pgx.Row) (*domain.Team, error) {
	var (
		team                      domain.Team
		pot                       string
		membersJSON, progressJSON []byte
		createdAt, updatedAt      time.Time
	)
	if err := row.Scan(&team.TeamID, &team.EventID, &team.Name, &membersJSON, &pot, &progressJSON,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if team.CurrentPot, err = domain.ParseGP(pot); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParsePot, err)
	}
	if err := json.Unmarshal(membersJSON, &team.Members); err != nil {
		return nil, fmt.Errorf("%s: members: %w", ErrMsgFailedToUnmarshalProgress, err)
	}
	var p teamProgress
	if err := json.Unmarshal(progressJSON, &p); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalProgress, err)
	}
	p.applyTo(&team)
	team.CreatedAt = createdAt
	team.UpdatedAt = updatedAt
	return &team, nil
}
