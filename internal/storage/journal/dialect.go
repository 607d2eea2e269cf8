package journal

// dialect holds the statements that differ between drivers.
type dialect struct {
	schema       []string
	insert       string
	selectAll    string
	selectHolder string
}

const columns = "seq, kind, at, customer, counterparty, currency, tokens, detail"

var dialects = map[string]dialect{
	DriverSQLite: {
		schema: []string{
			`CREATE TABLE IF NOT EXISTS events (
				seq          INTEGER PRIMARY KEY AUTOINCREMENT,
				kind         TEXT    NOT NULL,
				at           INTEGER NOT NULL,
				customer     TEXT    NOT NULL,
				counterparty TEXT    NOT NULL,
				currency     TEXT    NOT NULL,
				tokens       TEXT    NOT NULL,
				detail       TEXT    NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS events_customer ON events (customer)`,
			`CREATE INDEX IF NOT EXISTS events_counterparty ON events (counterparty)`,
		},
		insert: `INSERT INTO events (kind, at, customer, counterparty, currency, tokens, detail)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
		selectAll: `SELECT ` + columns + ` FROM events ORDER BY seq DESC LIMIT ?`,
		selectHolder: `SELECT ` + columns + ` FROM events
			WHERE customer = ? OR counterparty = ? ORDER BY seq DESC LIMIT ?`,
	},
	DriverPostgres: {
		schema: []string{
			`CREATE TABLE IF NOT EXISTS events (
				seq          BIGSERIAL PRIMARY KEY,
				kind         TEXT   NOT NULL,
				at           BIGINT NOT NULL,
				customer     TEXT   NOT NULL,
				counterparty TEXT   NOT NULL,
				currency     NUMERIC(78, 0) NOT NULL,
				tokens       NUMERIC(78, 0) NOT NULL,
				detail       TEXT   NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS events_customer ON events (customer)`,
			`CREATE INDEX IF NOT EXISTS events_counterparty ON events (counterparty)`,
		},
		insert: `INSERT INTO events (kind, at, customer, counterparty, currency, tokens, detail)
			VALUES ($1, $2, $3, $4, $5::NUMERIC, $6::NUMERIC, $7)`,
		selectAll: `SELECT seq, kind, at, customer, counterparty, currency::TEXT, tokens::TEXT, detail
			FROM events ORDER BY seq DESC LIMIT $1`,
		selectHolder: `SELECT seq, kind, at, customer, counterparty, currency::TEXT, tokens::TEXT, detail
			FROM events WHERE customer = $1 OR counterparty = $2 ORDER BY seq DESC LIMIT $3`,
	},
}
