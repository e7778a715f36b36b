package schemanaming

import "strings"

// sqlReservedWords contains SQL keywords that cannot be used as unquoted
// table or column names in common dialects.
var sqlReservedWords = map[string]bool{
	"add": true, "all": true, "alter": true, "and": true, "as": true,
	"asc": true, "between": true, "both": true, "by": true, "case": true,
	"check": true, "column": true, "constraint": true, "create": true,
	"cross": true, "current_date": true, "current_time": true,
	"current_user": true, "database": true, "default": true, "delete": true,
	"desc": true, "distinct": true, "drop": true, "else": true, "end": true,
	"exists": true, "false": true, "fetch": true, "for": true,
	"foreign": true, "from": true, "function": true, "grant": true,
	"group": true, "having": true, "in": true, "index": true, "inner": true,
	"insert": true, "interval": true, "into": true, "is": true, "join": true,
	"key": true, "leading": true, "left": true, "like": true, "limit": true,
	"not": true, "null": true, "of": true, "on": true, "or": true,
	"order": true, "outer": true, "primary": true, "procedure": true,
	"range": true, "rank": true, "read": true, "references": true,
	"release": true, "right": true, "row": true, "rows": true,
	"schema": true, "select": true, "set": true, "table": true, "then": true,
	"to": true, "trailing": true, "trigger": true, "true": true,
	"union": true, "unique": true, "update": true, "user": true,
	"using": true, "values": true, "when": true, "where": true,
	"window": true, "with": true,
}

// IsReserved checks if a table or column name is an SQL reserved word.
func IsReserved(name string) bool {
	return sqlReservedWords[strings.ToLower(name)]
}
