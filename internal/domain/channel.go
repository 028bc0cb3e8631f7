package domain

const (
	DefaultRetentionHours = 168
	DefaultMinimumLevel   = LevelWarning

	MaxChannelNameLength = 256
	MaxRetentionHours    = 32767
)

// Channel is a named log destination of one tenant. Id is assigned by the
// store and is what entries reference.
type Channel struct {
	Id             int64  `db:"id"`
	TenantId       int64  `db:"tenant_id"`
	Name           string `db:"name"`
	RetentionHours int    `db:"retention_hours"`
	MinimumLevel   Level  `db:"minimum_level"`
}

func (c Channel) Accepts(level Level) bool {
	return level >= c.MinimumLevel
}
