package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/GNaves/Tasks-API/internal/core/domain"
	"github.com/GNaves/Tasks-API/internal/core/ports"
)

type TeamRepository struct {
	db *sqlx.DB
}

type teamRow struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type teamMemberRow struct {
	ID        string    `db:"id"`
	TeamID    string    `db:"team_id"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.TeamRepository = (*TeamRepository)(nil)

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]domain.Team, error) {
	var rows []teamRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM teams ORDER BY created_at`); err != nil {
		return nil, err
	}

	teams := make([]domain.Team, 0, len(rows))
	for _, row := range rows {
		teams = append(teams, mapTeamRowToDomainTeam(row))
	}

	return teams, nil
}

func (r *TeamRepository) FindByID(ctx context.Context, id string) (domain.Team, error) {
	var row teamRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM teams WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Team{}, domain.ErrTeamNotFound
	}
	if err != nil {
		return domain.Team{}, err
	}

	return mapTeamRowToDomainTeam(row), nil
}

func (r *TeamRepository) Insert(ctx context.Context, team domain.Team) (domain.Team, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO teams (id, name, description) VALUES (?, ?, ?)`,
		team.ID, team.Name, team.Description,
	)
	if err != nil {
		return domain.Team{}, err
	}

	return r.FindByID(ctx, team.ID)
}

// Delete removes the team only when no task references it. The open-task
// check, the membership cleanup and the delete run in one transaction so a
// refused delete leaves the team fully intact.
func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var exists bool
	if err := tx.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM teams WHERE id = ? FOR UPDATE)`, id); err != nil {
		return err
	}
	if !exists {
		return domain.ErrTeamNotFound
	}

	var hasTasks bool
	if err := tx.GetContext(ctx, &hasTasks, `SELECT EXISTS(SELECT 1 FROM tasks WHERE team_id = ?)`, id); err != nil {
		return err
	}
	if hasTasks {
		return domain.ErrTeamHasOpenTasks
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM team_members WHERE team_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *TeamRepository) AddMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO team_members (id, team_id, user_id) VALUES (?, ?, ?)`,
		member.ID, member.TeamID, member.UserID,
	)
	if err != nil {
		return domain.TeamMember{}, err
	}

	var row teamMemberRow
	if err := r.db.GetContext(ctx, &row, `SELECT * FROM team_members WHERE id = ?`, member.ID); err != nil {
		return domain.TeamMember{}, err
	}

	return domain.TeamMember{
		ID:        row.ID,
		TeamID:    row.TeamID,
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt,
	}, nil
}

func mapTeamRowToDomainTeam(row teamRow) domain.Team {
	return domain.Team{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
