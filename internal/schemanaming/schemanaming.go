// Package schemanaming applies naming rules to the entities of a manifest and
// produces the relational names an ORM would map them to.
package schemanaming

import (
	"fmt"
	"log/slog"

	"resource-naming/internal/manifest"
	"resource-naming/naming"
)

// Plan is the set of relational names derived from a manifest.
type Plan struct {
	Tables     []Table     `json:"tables"`
	JoinTables []JoinTable `json:"join_tables,omitempty"`
}

// Table is the table of one entity.
type Table struct {
	Class    string   `json:"class"`
	Name     string   `json:"name"`
	Reserved bool     `json:"reserved,omitempty"`
	Columns  []Column `json:"columns"`
}

// Column is a column and the model element it was derived from.
type Column struct {
	Name     string `json:"name"`
	Source   string `json:"source"`
	Reserved bool   `json:"reserved,omitempty"`
}

// JoinTable links two entities of a many-to-many relation.
type JoinTable struct {
	Name     string   `json:"name"`
	Source   string   `json:"source"`
	Target   string   `json:"target"`
	Reserved bool     `json:"reserved,omitempty"`
	Columns  []Column `json:"columns"`
}

// Applier derives a Plan with the given strategy. Collisions get numeric
// suffixes and reserved words are flagged, both with a logged warning.
type Applier struct {
	strategy naming.Strategy
	logger   *slog.Logger
}

// NewApplier creates an Applier.
func NewApplier(strategy naming.Strategy, logger *slog.Logger) *Applier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Applier{strategy: strategy, logger: logger}
}

// Apply derives the naming plan for m. Collision state is fresh per call,
// so the same manifest always yields the same plan.
func (a *Applier) Apply(m *manifest.Manifest) *Plan {
	plan := &Plan{}
	if m == nil {
		return plan
	}
	resolver := NewCollisionResolver(a.logger)

	for _, entity := range m.Entities {
		plan.Tables = append(plan.Tables, a.entityTable(resolver, entity))
	}

	joined := make(map[string]bool)
	for _, entity := range m.Entities {
		for _, assoc := range entity.ManyToMany {
			name := a.strategy.JoinTableName(entity.Class, assoc.Target, assoc.Property)
			// Both sides may declare the relation; the canonical name is shared.
			if joined[name] {
				continue
			}
			joined[name] = true
			plan.JoinTables = append(plan.JoinTables, a.joinTable(resolver, name, entity.Class, assoc))
		}
	}
	return plan
}

func (a *Applier) entityTable(resolver *CollisionResolver, entity manifest.Entity) Table {
	class := entity.Class
	name := resolver.RegisterTable(a.strategy.ClassToTableName(class), "class:"+class)
	table := Table{Class: class, Name: name, Reserved: a.checkReserved(name, "table", class)}

	addColumn := func(column, source string) {
		column = resolver.RegisterColumn(name, column, source)
		table.Columns = append(table.Columns, Column{
			Name:     column,
			Source:   source,
			Reserved: a.checkReserved(column, "column", source),
		})
	}

	addColumn(a.strategy.ReferenceColumnName(), "primary key")
	for _, prop := range entity.Properties {
		addColumn(a.strategy.PropertyToColumnName(prop, class), "property:"+prop)
	}
	for _, emb := range entity.Embedded {
		for _, field := range emb.Fields {
			column := a.strategy.EmbeddedFieldToColumnName(emb.Property, field, class, emb.Class)
			addColumn(column, fmt.Sprintf("embedded:%s.%s", emb.Property, field))
		}
	}
	for _, assoc := range entity.ManyToOne {
		var column string
		if assoc.ReferencedColumn != "" {
			column = a.strategy.JoinKeyColumnName(assoc.Property, assoc.ReferencedColumn)
		} else {
			column = a.strategy.JoinColumnName(assoc.Property, class)
		}
		addColumn(column, fmt.Sprintf("many_to_one:%s->%s", assoc.Property, naming.SimpleName(assoc.Target)))
	}
	return table
}

func (a *Applier) joinTable(resolver *CollisionResolver, name, source string, assoc manifest.Association) JoinTable {
	name = resolver.RegisterTable(name, fmt.Sprintf("many_to_many:%s.%s", naming.SimpleName(source), assoc.Property))

	jt := JoinTable{
		Name:     name,
		Source:   source,
		Target:   assoc.Target,
		Reserved: a.checkReserved(name, "table", source),
	}
	for _, side := range []string{source, assoc.Target} {
		src := "references:" + naming.SimpleName(side)
		column := resolver.RegisterColumn(name, a.strategy.JoinKeyColumnName(side, assoc.ReferencedColumn), src)
		jt.Columns = append(jt.Columns, Column{
			Name:     column,
			Source:   src,
			Reserved: a.checkReserved(column, "column", src),
		})
	}
	return jt
}

func (a *Applier) checkReserved(name, kind, source string) bool {
	if !IsReserved(name) {
		return false
	}
	a.logger.Warn("derived name is an SQL reserved word",
		slog.String("kind", kind),
		slog.String("name", name),
		slog.String("source", source),
	)
	return true
}
