package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const preferencesTable = "preferences"

func buildSelectPreferenceQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Select("value").
		From(preferencesTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertPreferenceQuery(b sq.StatementBuilderType, key, value string, now time.Time) (string, []any, error) {
	return b.Insert(preferencesTable).
		Columns("key", "value", "updated_at").
		Values(key, value, now).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}
