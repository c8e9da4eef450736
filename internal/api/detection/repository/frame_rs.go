package detectionRepository

import (
	"context"
	"database/sql"
	"time"

	"TutelaGolang/internal/entity"
	contextPkg "TutelaGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type FrameResultDB struct {
	ID             sql.NullString  `db:"id"`
	FrameID        sql.NullInt64   `db:"frame_id"`
	DetectionCount sql.NullInt64   `db:"detection_count"`
	TrackCount     sql.NullInt64   `db:"track_count"`
	ProcessingMs   sql.NullFloat64 `db:"processing_ms"`
	Source         sql.NullString  `db:"source"`
	CreatedAt      time.Time       `db:"created_at"`
}

func (r *frameRepository) CreateFrameResult(c context.Context, result entity.FrameResult) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":              result.ID,
		"frame_id":        result.FrameID,
		"detection_count": result.DetectionCount,
		"track_count":     result.TrackCount,
		"processing_ms":   result.ProcessingMs,
		"source":          string(result.Source),
		"created_at":      time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateFrameResult, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateFrameResult")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when recording frame result")

		return err
	}

	return nil
}

func (r *frameRepository) GetRecentFrameResults(c context.Context, limit int) ([]entity.FrameResult, error) {
	requestID := contextPkg.GetRequestID(c)
	var results []FrameResultDB

	argsKV := map[string]interface{}{
		"limit": limit,
	}

	query, args, err := sqlx.Named(queryGetRecentFrameResults, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecentFrameResults named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &results, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecentFrameResults execution err")
		return nil, err
	}

	frameResults := make([]entity.FrameResult, 0, len(results))
	for _, row := range results {
		frameResults = append(frameResults, r.makeFrameResult(row))
	}

	return frameResults, nil
}

func (r *frameRepository) GetFrameResultsBySource(c context.Context, source entity.FrameSource, limit int) ([]entity.FrameResult, error) {
	requestID := contextPkg.GetRequestID(c)
	var results []FrameResultDB

	argsKV := map[string]interface{}{
		"source": string(source),
		"limit":  limit,
	}

	query, args, err := sqlx.Named(queryGetFrameResultsBySource, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetFrameResultsBySource named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &results, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetFrameResultsBySource execution err")
		return nil, err
	}

	frameResults := make([]entity.FrameResult, 0, len(results))
	for _, row := range results {
		frameResults = append(frameResults, r.makeFrameResult(row))
	}

	return frameResults, nil
}

func (r *frameRepository) makeFrameResult(row FrameResultDB) entity.FrameResult {
	return entity.FrameResult{
		ID:             row.ID.String,
		FrameID:        row.FrameID.Int64,
		DetectionCount: int(row.DetectionCount.Int64),
		TrackCount:     int(row.TrackCount.Int64),
		ProcessingMs:   row.ProcessingMs.Float64,
		Source:         entity.FrameSource(row.Source.String),
		CreatedAt:      row.CreatedAt,
	}
}
