package detectionRepository

const (
	queryCreateFrameResult = `
		INSERT INTO frame_results (
			id,
			frame_id,
			detection_count,
			track_count,
			processing_ms,
			source,
			created_at
		) VALUES (
			:id,
			:frame_id,
			:detection_count,
			:track_count,
			:processing_ms,
			:source,
			:created_at
		)
	`

	queryGetRecentFrameResults = `
		SELECT
			id,
			frame_id,
			detection_count,
			track_count,
			processing_ms,
			source,
			created_at
		FROM frame_results
		ORDER BY created_at DESC
		LIMIT :limit
	`

	queryGetFrameResultsBySource = `
		SELECT
			id,
			frame_id,
			detection_count,
			track_count,
			processing_ms,
			source,
			created_at
		FROM frame_results
		WHERE source = :source
		ORDER BY created_at DESC
		LIMIT :limit
	`
)
