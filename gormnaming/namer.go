// Package gormnaming plugs the resource naming strategy into GORM.
//
//	db, err := gorm.Open(dialector, &gorm.Config{
//		NamingStrategy: gormnaming.New(naming.Default(), gormnaming.Config{}),
//	})
package gormnaming

import (
	"strings"

	"gorm.io/gorm/schema"

	"resource-naming/naming"
)

// Config holds GORM-specific naming options.
type Config struct {
	// TablePrefix is prepended to table and join table names.
	TablePrefix string
	// IdentifierMaxLength bounds constraint names; longer names are
	// truncated and suffixed with a hash. Zero means 64.
	IdentifierMaxLength int
}

var _ schema.Namer = (*Namer)(nil)

// Namer implements schema.Namer on top of a naming.ResourceStrategy.
// Tables and columns come from the strategy; constraint names keep GORM's
// fk_/chk_/idx_/uni_ format so they stay within identifier limits.
type Namer struct {
	strategy    *naming.ResourceStrategy
	prefix      string
	constraints schema.NamingStrategy
}

// New creates a Namer for GORM.
func New(strategy *naming.ResourceStrategy, cfg Config) *Namer {
	if strategy == nil {
		strategy = naming.Default()
	}
	return &Namer{
		strategy: strategy,
		prefix:   cfg.TablePrefix,
		constraints: schema.NamingStrategy{
			IdentifierMaxLength: cfg.IdentifierMaxLength,
		},
	}
}

// TableName converts a model name to a table name.
func (n *Namer) TableName(table string) string {
	return n.prefix + n.strategy.ClassToTableName(table)
}

// SchemaName converts a table name back to a model name.
func (n *Namer) SchemaName(table string) string {
	return n.strategy.ClassName(strings.TrimPrefix(table, n.prefix))
}

// ColumnName converts a field name to a column name.
func (n *Namer) ColumnName(table, column string) string {
	return n.strategy.PropertyToColumnName(column, table)
}

// JoinTableName converts a many2many tag value to a join table name.
// Lower-case names are taken as given; others are underscored but, unlike
// GORM's default, never pluralized.
func (n *Namer) JoinTableName(joinTable string) string {
	if strings.ToLower(joinTable) == joinTable {
		return n.prefix + joinTable
	}
	return n.prefix + n.strategy.PropertyToColumnName(joinTable, "")
}

// RelationshipFKName names the foreign key constraint of a relationship.
func (n *Namer) RelationshipFKName(rel schema.Relationship) string {
	return n.constraints.RelationshipFKName(rel)
}

// CheckerName names a check constraint.
func (n *Namer) CheckerName(table, column string) string {
	return n.constraints.CheckerName(table, column)
}

// IndexName names an index.
func (n *Namer) IndexName(table, column string) string {
	return n.constraints.IndexName(table, column)
}

// UniqueName names a unique constraint.
func (n *Namer) UniqueName(table, column string) string {
	return n.constraints.UniqueName(table, column)
}

// JoinTableFor returns the canonical join table name for two models, suitable
// as a many2many tag value. The table prefix is applied later by JoinTableName.
func (n *Namer) JoinTableFor(source, target string) string {
	return n.strategy.JoinTableName(source, target, "")
}
