package postgres

// kv_store queries. Values are stored as JSONB, so every value written must
// be a JSON document.
const (
	queryGet    = `SELECT value::text FROM kv_store WHERE key = $1`
	queryUpsert = `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	queryDelete = `DELETE FROM kv_store WHERE key = $1`
)

// Error Messages - KV Operations
const (
	ErrMsgGetFailed    = "failed to read key %s: %w"
	ErrMsgSetFailed    = "failed to write key %s: %w"
	ErrMsgDeleteFailed = "failed to delete key %s: %w"
)
