package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/sophiaacademy/careerguide/internal/app/models"
	"github.com/sophiaacademy/careerguide/internal/app/scoring"
	"github.com/sophiaacademy/careerguide/internal/pkg/apperrors"
	"github.com/sophiaacademy/careerguide/internal/pkg/logger"
)

const studentScoresTable = "student_scores"

var studentRecordColumns = []string{
	"id", "name", "school", "district", "mobile", "board", "scores", "dominant_trait", "created_at",
}

// StudentRecordRepository handles student_scores database operations
type StudentRecordRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentRecordRepository creates a new StudentRecordRepository
func NewStudentRecordRepository(db DBTX) *StudentRecordRepository {
	return &StudentRecordRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a record and returns it with the identifier and creation
// time assigned by the database. The input is not modified.
func (r *StudentRecordRepository) Create(ctx context.Context, record *models.StudentRecord) (*models.StudentRecord, error) {
	scoresJSON, err := json.Marshal(record.Scores)
	if err != nil {
		return nil, fmt.Errorf("failed to encode scores: %w", err)
	}

	sql, args, err := r.sb.Insert(studentScoresTable).
		Columns("name", "school", "district", "mobile", "board", "scores", "dominant_trait").
		Values(record.Name, record.School, record.District, record.Mobile, record.Board, scoresJSON, string(record.DominantTrait)).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student record SQL")
		return nil, fmt.Errorf("failed to build create student record query: %w", err)
	}

	created := *record
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create student record query")
		return nil, fmt.Errorf("error creating student record: %w", err)
	}

	return &created, nil
}

// GetByID retrieves a record by identifier
func (r *StudentRecordRepository) GetByID(ctx context.Context, id int64) (*models.StudentRecord, error) {
	sql, args, err := r.sb.Select(studentRecordColumns...).
		From(studentScoresTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student record SQL")
		return nil, fmt.Errorf("failed to build get student record query: %w", err)
	}

	var (
		record     models.StudentRecord
		scoresJSON []byte
		trait      string
	)
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&record.ID,
		&record.Name,
		&record.School,
		&record.District,
		&record.Mobile,
		&record.Board,
		&scoresJSON,
		&trait,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student record row")
		return nil, fmt.Errorf("error getting student record by ID: %w", err)
	}

	if err := json.Unmarshal(scoresJSON, &record.Scores); err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Stored scores are not valid JSON")
		return nil, fmt.Errorf("error decoding scores of student record %d: %w", id, err)
	}
	record.DominantTrait = scoring.Category(trait)

	return &record, nil
}
