// Command microrl-demo drives the editor from a real terminal: os.Stdin
// in raw mode feeds bytes to the engine one at a time, and the engine's
// print sink writes straight back to os.Stdout. It completes SQL
// keywords on Tab and echoes the parsed tokens of each submitted line.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"

	"github.com/ajwerner/microrl"
)

func init() {
	sort.Strings(sqlKeywords)
}

func completer(e *microrl.Editor, argv [][]byte) [][]byte {
	if len(argv) == 0 {
		return nil
	}
	word := strings.ToUpper(string(argv[len(argv)-1]))
	i := sort.Search(len(sqlKeywords), func(i int) bool {
		return sqlKeywords[i] >= word
	})
	if i >= len(sqlKeywords) {
		return nil
	}
	var out [][]byte
	for ; i < len(sqlKeywords) && strings.HasPrefix(sqlKeywords[i], word); i++ {
		out = append(out, []byte(sqlKeywords[i]))
	}
	return out
}

func execute(e *microrl.Editor, argv [][]byte) int {
	if len(argv) == 1 && (string(argv[0]) == "quit" || string(argv[0]) == "exit") {
		fmt.Println("bye")
		os.Exit(0)
	}
	for i, tok := range argv {
		fmt.Printf("  [%d] %q\r\n", i, tok)
	}
	return 0
}

func main() {
	fd := int(os.Stdin.Fd())

	fmt.Print("# microrl demo\r\n# - command-line editing over a raw terminal\r\n# - history browsing with up/down\r\n# - tab completion of SQL keywords\r\n# - type quit or exit to leave\r\n")

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	e, err := microrl.New(
		func(e *microrl.Editor, p []byte) { os.Stdout.Write(p) },
		microrl.WithPrompt("\x1b[36mmicrorl>\x1b[0m ", 9),
		microrl.WithPrintPromptOnInit(true),
	)
	if err != nil {
		log.Fatal(err)
	}
	e.SetCompleter(completer)
	e.SetExecutor(execute)
	e.SetSigintHandler(func(e *microrl.Editor) {
		fmt.Print("\r\n^C\r\n")
		os.Exit(1)
	})

	buf := make([]byte, 256)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			log.Fatal(err)
		}
		for _, b := range buf[:n] {
			e.InsertByte(b)
		}
	}
}

// Adapted from the same CockroachDB keyword table the teacher's demo used.
var sqlKeywords = []string{
	"ABORT", "ACCESS", "ACTION", "ADD", "ADMIN", "AFTER", "AGGREGATE", "ALL",
	"ALTER", "ALWAYS", "ANALYSE", "ANALYZE", "AND", "ANY", "ARRAY", "AS",
	"ASC", "AT", "BACKUP", "BEFORE", "BEGIN", "BETWEEN", "BIGINT", "BOOLEAN",
	"BOTH", "BY", "CACHE", "CANCEL", "CASCADE", "CASE", "CAST", "CHANGEFEED",
	"CHAR", "CHARACTER", "CHECK", "CLOSE", "CLUSTER", "COALESCE", "COLLATE",
	"COLUMN", "COLUMNS", "COMMENT", "COMMIT", "COMMITTED", "CONCURRENTLY",
	"CONFLICT", "CONNECTION", "CONSTRAINT", "COPY", "CREATE", "CROSS", "CSV",
	"CURRENT", "CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP", "CURSOR",
	"DATA", "DATABASE", "DATABASES", "DAY", "DEALLOCATE", "DEC", "DECIMAL",
	"DECLARE", "DEFAULT", "DEFERRABLE", "DEFERRED", "DELETE", "DESC",
	"DISCARD", "DISTINCT", "DO", "DOMAIN", "DOUBLE", "DROP", "ELSE",
	"ENCODING", "END", "ENUM", "ESCAPE", "EXCEPT", "EXCLUDE", "EXECUTE",
	"EXISTS", "EXPLAIN", "EXPORT", "EXTENSION", "EXTRACT", "FALSE", "FAMILY",
	"FETCH", "FILTER", "FIRST", "FLOAT", "FOLLOWING", "FOR", "FOREIGN",
	"FROM", "FULL", "FUNCTION", "GLOBAL", "GRANT", "GRANTS", "GREATEST",
	"GROUP", "GROUPING", "HASH", "HAVING", "HOUR", "IDENTITY", "IF",
	"IGNORE_FOREIGN_KEYS", "ILIKE", "IMMEDIATE", "IMPORT", "IN", "INDEX",
	"INDEXES", "INHERITS", "INITIALLY", "INNER", "INSERT", "INT", "INTEGER",
	"INTERSECT", "INTERVAL", "INTO", "IS", "ISOLATION", "JOB", "JOBS",
	"JOIN", "JSON", "KEY", "KEYS", "LANGUAGE", "LAST", "LATERAL", "LEADING",
	"LEAST", "LEFT", "LEVEL", "LIKE", "LIMIT", "LOCAL", "LOCALTIME", "LOGIN",
	"LOOKUP", "MATCH", "MATERIALIZED", "MAXVALUE", "MERGE", "MINUTE",
	"MINVALUE", "MONTH", "NAMES", "NATURAL", "NEXT", "NO", "NONE", "NOT",
	"NOTHING", "NULL", "NULLIF", "NULLS", "NUMERIC", "OF", "OFF", "OFFSET",
	"ON", "ONLY", "OPERATOR", "OPTION", "OPTIONS", "OR", "ORDER", "OUTER",
	"OVER", "OVERLAPS", "OWNED", "OWNER", "PARTITION", "PASSWORD", "PAUSE",
	"PHYSICAL", "PLACING", "PRECEDING", "PRECISION", "PREPARE", "PRIMARY",
	"PRIORITY", "PRIVILEGES", "PUBLIC", "PUBLICATION", "QUERIES", "QUERY",
	"RANGE", "READ", "REAL", "REASSIGN", "RECURSIVE", "REFERENCES",
	"REFRESH", "REGION", "REINDEX", "RELEASE", "RENAME", "REPEATABLE",
	"REPLACE", "REPLICATION", "RESET", "RESTORE", "RESTRICT", "RESUME",
	"RETURNING", "REVOKE", "RIGHT", "ROLE", "ROLES", "ROLLBACK", "ROLLUP",
	"ROW", "ROWS", "RULE", "SAVEPOINT", "SCHEMA", "SCHEMAS", "SEARCH",
	"SECOND", "SELECT", "SEQUENCE", "SEQUENCES", "SERIALIZABLE", "SERVER",
	"SESSION", "SET", "SETS", "SETTING", "SETTINGS", "SHARE", "SHOW",
	"SIMILAR", "SKIP", "SMALLINT", "SOME", "SPLIT", "SQL", "START",
	"STATISTICS", "STDIN", "STORAGE", "STORE", "STORED", "STORING", "STRICT",
	"STRING", "SUBSCRIPTION", "SUBSTRING", "SYMMETRIC", "SYSTEM", "TABLE",
	"TABLES", "TABLESPACE", "TEMP", "TEMPLATE", "TEMPORARY", "TEXT", "THEN",
	"TIES", "TIME", "TIMESTAMP", "TO", "TRACE", "TRAILING", "TRANSACTION",
	"TREAT", "TRIGGER", "TRIM", "TRUE", "TRUNCATE", "TRUSTED", "TYPE",
	"TYPES", "UNBOUNDED", "UNCOMMITTED", "UNION", "UNIQUE", "UNKNOWN",
	"UNTIL", "UPDATE", "UPSERT", "USE", "USER", "USERS", "USING", "VALID",
	"VALIDATE", "VALUE", "VALUES", "VARCHAR", "VARYING", "VIEW", "VISIBLE",
	"WHEN", "WHERE", "WINDOW", "WITH", "WITHIN", "WITHOUT", "WORK", "YEAR",
	"ZONE",
}
