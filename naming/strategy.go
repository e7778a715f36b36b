// Package naming derives relational names (tables, columns, join tables and
// join columns) from object-model class and property names.
//
// Class names are pluralized and converted to snake_case; property names are
// converted to snake_case only. Join tables name both sides of a many-to-many
// relation in lexicographic order, so the name does not depend on which side
// owns the relation.
package naming

import (
	"strings"

	"resource-naming/internal/inflect"
)

// Strategy is the naming contract an ORM schema-mapping layer calls into.
// Parameters the convention accepts but does not need (the owning class,
// the relation property) are kept so callers can pass what they have;
// an empty string means absent.
type Strategy interface {
	// ClassToTableName returns a table name for a fully-qualified class name.
	ClassToTableName(className string) string
	// PropertyToColumnName returns a column name for a property.
	PropertyToColumnName(propertyName, className string) string
	// EmbeddedFieldToColumnName returns a column name for a property of an embedded value.
	EmbeddedFieldToColumnName(propertyName, embeddedColumnName, className, embeddedClassName string) string
	// ReferenceColumnName returns the primary key column name of referenced entities.
	ReferenceColumnName() string
	// JoinColumnName returns a foreign key column name for a to-one property.
	JoinColumnName(propertyName, className string) string
	// JoinTableName returns the join table name for a many-to-many relation.
	JoinTableName(sourceEntity, targetEntity, propertyName string) string
	// JoinKeyColumnName returns a join table column referencing entityName.
	JoinKeyColumnName(entityName, referencedColumnName string) string
}

// Inflector is the word-level capability a strategy is built on.
type Inflector interface {
	Pluralize(word string) string
	Underscore(word string) string
}

// reverseInflector is implemented by inflectors that can map table names
// back to class names.
type reverseInflector interface {
	Singularize(word string) string
	Camelize(word string) string
}

// namespaceSeparators split qualified names: `App\Models\User`,
// `models.User` and `example.com/models/User` all name User.
const namespaceSeparators = `\./`

const referenceColumn = "id"

var _ Strategy = (*ResourceStrategy)(nil)

// ResourceStrategy names tables after the plural of their class and columns
// after their property, both in snake_case. It holds no mutable state and is
// safe for concurrent use.
type ResourceStrategy struct {
	inflector Inflector
}

// New creates a ResourceStrategy bound to the rule table of locale.
// An empty locale means "en".
func New(locale string) (*ResourceStrategy, error) {
	inf, err := inflect.ForLocale(locale)
	if err != nil {
		return nil, err
	}
	return NewWithInflector(inf), nil
}

// NewWithInflector creates a ResourceStrategy on top of the given inflector.
func NewWithInflector(inflector Inflector) *ResourceStrategy {
	return &ResourceStrategy{inflector: inflector}
}

// Default returns the English ResourceStrategy.
func Default() *ResourceStrategy {
	inf, err := inflect.ForLocale(inflect.DefaultLocale)
	if err != nil {
		panic(err)
	}
	return NewWithInflector(inf)
}

// ClassToTableName strips the namespace, pluralizes and underscores.
// Example: `App\Models\OrderItem` -> "order_items"
func (s *ResourceStrategy) ClassToTableName(className string) string {
	name := SimpleName(className)
	if name == "" {
		return ""
	}
	return s.inflector.Underscore(s.inflector.Pluralize(name))
}

// PropertyToColumnName underscores the property name.
// Example: "firstName" -> "first_name"
func (s *ResourceStrategy) PropertyToColumnName(propertyName, className string) string {
	return s.inflector.Underscore(SimpleName(propertyName))
}

// EmbeddedFieldToColumnName prefixes the embedded column with the embedding property.
// Example: ("homeAddress", "postCode") -> "home_address_post_code"
func (s *ResourceStrategy) EmbeddedFieldToColumnName(propertyName, embeddedColumnName, className, embeddedClassName string) string {
	return s.PropertyToColumnName(propertyName, "") + "_" + s.PropertyToColumnName(embeddedColumnName, "")
}

// ReferenceColumnName always returns "id".
func (s *ResourceStrategy) ReferenceColumnName() string {
	return referenceColumn
}

// JoinColumnName appends the reference column to the property column.
// Example: "author" -> "author_id"
func (s *ResourceStrategy) JoinColumnName(propertyName, className string) string {
	return s.PropertyToColumnName(propertyName, "") + "_" + s.ReferenceColumnName()
}

// JoinTableName joins the underscored entity names in ascending byte order.
// Example: ("User", "Group") -> "group_user"
func (s *ResourceStrategy) JoinTableName(sourceEntity, targetEntity, propertyName string) string {
	first := s.PropertyToColumnName(sourceEntity, "")
	second := s.PropertyToColumnName(targetEntity, "")
	if second < first {
		first, second = second, first
	}
	return first + "_" + second
}

// JoinKeyColumnName names a join table column after the entity it references.
// Example: ("Author", "") -> "author_id", ("Author", "uuid") -> "author_uuid"
func (s *ResourceStrategy) JoinKeyColumnName(entityName, referencedColumnName string) string {
	if referencedColumnName == "" {
		referencedColumnName = s.ReferenceColumnName()
	}
	return s.PropertyToColumnName(entityName, "") + "_" + referencedColumnName
}

// ClassName maps a table name back to a class name. It is not guaranteed to
// be the exact inverse of ClassToTableName. When the inflector cannot
// singularize, the table name is returned unchanged.
// Example: "order_items" -> "OrderItem"
func (s *ResourceStrategy) ClassName(tableName string) string {
	rev, ok := s.inflector.(reverseInflector)
	if !ok {
		return tableName
	}
	return rev.Camelize(rev.Singularize(tableName))
}

// SimpleName returns the last segment of a qualified name.
func SimpleName(qualifiedName string) string {
	if idx := strings.LastIndexAny(qualifiedName, namespaceSeparators); idx >= 0 {
		return qualifiedName[idx+1:]
	}
	return qualifiedName
}
