package naming

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resource-naming/internal/inflect"
)

func TestClassToTableName(t *testing.T) {
	strategy := Default()

	tests := []struct {
		input    string
		expected string
	}{
		{"User", "users"},
		{"Category", "categories"},
		{"OrderItem", "order_items"},
		{`App\Models\OrderItem`, "order_items"},
		{"Some.Namespace.ClassName", "class_names"},
		{"example.com/models/Invoice", "invoices"},
		{"Person", "people"},
		{"Child", "children"},
		{"Status", "statuses"},
		{"Box", "boxes"},
		{"Match", "matches"},
		{"Wish", "wishes"},
		{"Address", "addresses"},
		{"Equipment", "equipment"},
		{"Address2", "address2s"},
		{"ApiV2Key", "api_v2_keys"},
		{"Étudiant", "étudiants"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, strategy.ClassToTableName(tt.input))
		})
	}
}

func TestClassToTableName_IgnoresNamespace(t *testing.T) {
	strategy := Default()

	for _, qualified := range []string{
		`App\Entity\BlogPost`,
		`\BlogPost`,
		"models.BlogPost",
		"github.com/acme/models/BlogPost",
	} {
		t.Run(qualified, func(t *testing.T) {
			assert.Equal(t, strategy.ClassToTableName(SimpleName(qualified)), strategy.ClassToTableName(qualified))
			assert.Equal(t, "blog_posts", strategy.ClassToTableName(qualified))
		})
	}
}

func TestPropertyToColumnName(t *testing.T) {
	strategy := Default()

	tests := []struct {
		input    string
		expected string
	}{
		{"firstName", "first_name"},
		{"FirstName", "first_name"},
		{"id", "id"},
		{"userID", "user_id"},
		{"HTMLParser", "html_parser"},
		{"JSONData", "json_data"},
		{"address_line1", "address_line1"},
		{"sha256", "sha256"},
		{"line1Text", "line1_text"},
		{"ÄrgerGrund", "ärger_grund"},
		{`App\Models\createdAt`, "created_at"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, strategy.PropertyToColumnName(tt.input, ""))
		})
	}
}

func TestPropertyToColumnName_IgnoresClassName(t *testing.T) {
	strategy := Default()
	assert.Equal(t, strategy.PropertyToColumnName("lastName", ""), strategy.PropertyToColumnName("lastName", `App\Models\User`))
}

func TestPropertyToColumnName_Idempotent(t *testing.T) {
	strategy := Default()

	for _, name := range []string{
		"firstName", "OrderItem", "HTMLParser", "created_at", "user_id",
		"address_line1", "sha256", "line1Text", "ApiV2Key", "ärger_grund", "ÄrgerGrund",
	} {
		t.Run(name, func(t *testing.T) {
			once := strategy.PropertyToColumnName(name, "")
			assert.Equal(t, once, strategy.PropertyToColumnName(once, ""))
		})
	}
}

func TestEmbeddedFieldToColumnName(t *testing.T) {
	strategy := Default()

	assert.Equal(t, "home_address_post_code", strategy.EmbeddedFieldToColumnName("homeAddress", "postCode", "", ""))
	assert.Equal(t, "price_amount", strategy.EmbeddedFieldToColumnName("price", "amount", "Product", "Money"))
}

func TestReferenceColumnName(t *testing.T) {
	assert.Equal(t, "id", Default().ReferenceColumnName())
	assert.Equal(t, "id", NewWithInflector(stubInflector{}).ReferenceColumnName())
}

func TestJoinColumnName(t *testing.T) {
	strategy := Default()

	assert.Equal(t, "author_id", strategy.JoinColumnName("author", ""))
	assert.Equal(t, "billing_contact_id", strategy.JoinColumnName("billingContact", "Invoice"))
}

func TestJoinTableName(t *testing.T) {
	strategy := Default()

	tests := []struct {
		name     string
		source   string
		target   string
		expected string
	}{
		{"sorted by snake name", "User", "Group", "group_user"},
		{"already ordered", "Group", "User", "group_user"},
		{"qualified names", `App\Models\Post`, `App\Models\Tag`, "post_tag"},
		{"compound names", "BlogPost", "Author", "author_blog_post"},
		{"self reference", "User", "User", "user_user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, strategy.JoinTableName(tt.source, tt.target, ""))
		})
	}
}

func TestJoinTableName_Symmetric(t *testing.T) {
	strategy := Default()
	names := []string{"User", "Group", "OrderItem", "order", "Zebra", "aardvark", "APIKey", "Person"}

	for _, a := range names {
		for _, b := range names {
			assert.Equal(t, strategy.JoinTableName(a, b, ""), strategy.JoinTableName(b, a, "members"), "%s/%s", a, b)
		}
	}
}

func TestJoinTableName_SortsUnderscoredNames(t *testing.T) {
	strategy := Default()

	// "Banana" < "apple" byte-wise, but "apple" < "banana" once underscored.
	assert.Equal(t, "apple_banana", strategy.JoinTableName("Banana", "apple", ""))
	assert.Equal(t, "a_thing_zone", strategy.JoinTableName("Zone", "AThing", ""))
}

func TestJoinKeyColumnName(t *testing.T) {
	strategy := Default()

	assert.Equal(t, "author_id", strategy.JoinKeyColumnName("Author", ""))
	assert.Equal(t, "author_uuid", strategy.JoinKeyColumnName("Author", "uuid"))
	assert.Equal(t, "order_item_id", strategy.JoinKeyColumnName(`Shop\OrderItem`, ""))
}

func TestClassName(t *testing.T) {
	strategy := Default()

	assert.Equal(t, "OrderItem", strategy.ClassName("order_items"))
	assert.Equal(t, "Category", strategy.ClassName("categories"))
	assert.Equal(t, "Person", strategy.ClassName("people"))
	assert.Equal(t, "order_items", NewWithInflector(stubInflector{}).ClassName("order_items"))
}

func TestNew(t *testing.T) {
	strategy, err := New("en-GB")
	require.NoError(t, err)
	assert.Equal(t, "users", strategy.ClassToTableName("User"))

	strategy, err = New("")
	require.NoError(t, err)
	assert.Equal(t, "users", strategy.ClassToTableName("User"))

	_, err = New("fr")
	require.Error(t, err)
	assert.ErrorIs(t, err, inflect.ErrUnsupportedLocale)
}

func TestNewWithInflector_UsesInjectedRules(t *testing.T) {
	strategy := NewWithInflector(stubInflector{})

	assert.Equal(t, "USERZ", strategy.ClassToTableName(`App\User`))
	assert.Equal(t, "GROUP_USER", strategy.JoinTableName("user", "group", ""))
	assert.Equal(t, "AUTHOR_id", strategy.JoinColumnName("author", ""))
}

func TestNewWithInflector_Overrides(t *testing.T) {
	cfg := inflect.DefaultConfig()
	cfg.PluralOverrides["person"] = "persons"
	inf, err := inflect.New(cfg)
	require.NoError(t, err)

	strategy := NewWithInflector(inf)
	assert.Equal(t, "persons", strategy.ClassToTableName("Person"))
	assert.Equal(t, "users", strategy.ClassToTableName("User"))
}

func TestResourceStrategy_ConcurrentUse(t *testing.T) {
	strategy := Default()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "order_items", strategy.ClassToTableName("OrderItem"))
				assert.Equal(t, "group_user", strategy.JoinTableName("User", "Group", ""))
			}
		}()
	}
	wg.Wait()
}

// stubInflector upper-cases and appends "z", making it obvious which rules ran.
type stubInflector struct{}

func (stubInflector) Pluralize(word string) string  { return word + "z" }
func (stubInflector) Underscore(word string) string { return strings.ToUpper(word) }
