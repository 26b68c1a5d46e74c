package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/GNaves/Tasks-API/internal/core/domain"
	"github.com/GNaves/Tasks-API/internal/core/ports"
)

const listTasksQuery = `
SELECT
  t.*,
  tm.name AS team_name,
  tm.description AS team_description,
  tm.created_at AS team_created_at,
  tm.updated_at AS team_updated_at
FROM tasks t
INNER JOIN teams tm ON tm.id = t.team_id
ORDER BY t.created_at;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	Priority    string    `db:"priority"`
	AssignedTo  string    `db:"assigned_to"`
	TeamID      string    `db:"team_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`

	TeamName        sql.NullString `db:"team_name"`
	TeamDescription sql.NullString `db:"team_description"`
	TeamCreatedAt   sql.NullTime   `db:"team_created_at"`
	TeamUpdatedAt   sql.NullTime   `db:"team_updated_at"`
}

type taskHistoryRow struct {
	ID        string    `db:"id"`
	TaskID    string    `db:"task_id"`
	OldStatus string    `db:"old_status"`
	NewStatus string    `db:"new_status"`
	ChangedBy string    `db:"changed_by"`
	ChangedAt time.Time `db:"changed_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksQuery); err != nil {
		return nil, err
	}

	var historyRows []taskHistoryRow
	err := r.db.SelectContext(ctx, &historyRows, `SELECT * FROM task_history ORDER BY changed_at`)
	if err != nil {
		return nil, err
	}

	historyByTask := make(map[string][]domain.TaskHistory, len(rows))
	for _, h := range historyRows {
		historyByTask[h.TaskID] = append(historyByTask[h.TaskID], mapHistoryRowToDomain(h))
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task := mapTaskRowToDomainTask(row)
		task.History = historyByTask[row.ID]
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM tasks WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

// Insert checks that the assignee and the team exist in the same
// transaction as the insert, so neither can disappear between the check
// and the write.
func (r *TaskRepository) Insert(ctx context.Context, task domain.Task) (domain.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Task{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var userExists bool
	if err := tx.GetContext(ctx, &userExists, `SELECT EXISTS(SELECT 1 FROM users WHERE id = ? FOR SHARE)`, task.AssignedTo); err != nil {
		return domain.Task{}, err
	}
	if !userExists {
		return domain.Task{}, domain.ErrUserNotFound
	}

	var teamExists bool
	if err := tx.GetContext(ctx, &teamExists, `SELECT EXISTS(SELECT 1 FROM teams WHERE id = ? FOR SHARE)`, task.TeamID); err != nil {
		return domain.Task{}, err
	}
	if !teamExists {
		return domain.Task{}, domain.ErrTeamNotFound
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO tasks (id, title, description, status, priority, assigned_to, team_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Title, task.Description, string(task.Status), string(task.Priority), task.AssignedTo, task.TeamID,
	)
	if err != nil {
		return domain.Task{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Task{}, err
	}

	return r.FindByID(ctx, task.ID)
}

func (r *TaskRepository) Update(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, status = ?, priority = ? WHERE id = ?`,
		input.Title, input.Description, string(input.Status), string(input.Priority), id,
	)
	if err != nil {
		return domain.Task{}, err
	}

	return r.FindByID(ctx, id)
}

// UpdateStatus locks the task row, rejects transitions out of completed and
// appends the history record before the status write, all in one
// transaction. History therefore never records a change that didn't happen.
func (r *TaskRepository) UpdateStatus(ctx context.Context, id string, status domain.TaskStatus, changedBy string) (domain.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Task{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var current string
	err = tx.GetContext(ctx, &current, `SELECT status FROM tasks WHERE id = ? FOR UPDATE`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}

	if domain.TaskStatus(current) == domain.TaskStatusCompleted {
		return domain.Task{}, domain.ErrTaskAlreadyCompleted
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO task_history (id, task_id, old_status, new_status, changed_by)
		 VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), id, current, string(status), changedBy,
	)
	if err != nil {
		return domain.Task{}, err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE tasks SET status = ? WHERE id = ?`, string(status), id); err != nil {
		return domain.Task{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Task{}, err
	}

	return r.FindByID(ctx, id)
}

func (r *TaskRepository) UpdatePriority(ctx context.Context, id string, priority domain.TaskPriority) (domain.Task, error) {
	if _, err := r.FindByID(ctx, id); err != nil {
		return domain.Task{}, err
	}

	if _, err := r.db.ExecContext(ctx, `UPDATE tasks SET priority = ? WHERE id = ?`, string(priority), id); err != nil {
		return domain.Task{}, err
	}

	return r.FindByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Status:      domain.TaskStatus(row.Status),
		Priority:    domain.TaskPriority(row.Priority),
		AssignedTo:  row.AssignedTo,
		TeamID:      row.TeamID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if row.TeamName.Valid {
		task.Team = &domain.Team{
			ID:          row.TeamID,
			Name:        row.TeamName.String,
			Description: row.TeamDescription.String,
			CreatedAt:   row.TeamCreatedAt.Time,
			UpdatedAt:   row.TeamUpdatedAt.Time,
		}
	}

	return task
}

func mapHistoryRowToDomain(row taskHistoryRow) domain.TaskHistory {
	return domain.TaskHistory{
		ID:        row.ID,
		TaskID:    row.TaskID,
		OldStatus: domain.TaskStatus(row.OldStatus),
		NewStatus: domain.TaskStatus(row.NewStatus),
		ChangedBy: row.ChangedBy,
		ChangedAt: row.ChangedAt,
	}
}
