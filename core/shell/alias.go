package shell

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/mjanumpa/magicsh/core/shellerr"
)

var validate = validator.New()

// aliasNameRules rejects names that could never be typed as a single token.
const aliasNameRules = "required,excludesall= \t\n='\"\\"

// AliasTable maps a command name to the command line it stands for.
type AliasTable struct {
	aliases map[string]string
}

// NewAliasTable creates a table holding a copy of initial.
func NewAliasTable(initial map[string]string) *AliasTable {
	table := &AliasTable{aliases: make(map[string]string, len(initial))}
	for name, value := range initial {
		table.aliases[name] = value
	}
	return table
}

// ValidateAliasName reports whether name can be used as an alias key.
func ValidateAliasName(name string) error {
	if err := validate.Var(name, aliasNameRules); err != nil {
		return fmt.Errorf("invalid alias name %q", name)
	}
	return nil
}

// Set creates or overwrites an alias.
func (a *AliasTable) Set(name, value string) error {
	if err := ValidateAliasName(name); err != nil {
		return &shellerr.UsageError{Use: "alias <name> <value...>, names may not contain whitespace, quotes or '='"}
	}
	a.aliases[name] = value
	return nil
}

// Get returns the value stored for name.
func (a *AliasTable) Get(name string) (string, bool) {
	value, ok := a.aliases[name]
	return value, ok
}

// Remove deletes name, reporting whether it existed.
func (a *AliasTable) Remove(name string) bool {
	_, ok := a.aliases[name]
	delete(a.aliases, name)
	return ok
}

// Names returns the alias names in sorted order.
func (a *AliasTable) Names() []string {
	var names []string
	for name := range a.aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the table.
func (a *AliasTable) Map() map[string]string {
	out := make(map[string]string, len(a.aliases))
	for name, value := range a.aliases {
		out[name] = value
	}
	return out
}

// Resolve expands the head token if it is an alias. The replacement is not
// checked for further aliases, so expansion always takes a single step.
func (a *AliasTable) Resolve(tokens []string) ([]string, error) {
	if len(tokens) == 0 {
		return tokens, nil
	}

	value, ok := a.aliases[tokens[0]]
	if !ok {
		return tokens, nil
	}

	replacement, err := Split(value)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(replacement)+len(tokens)-1)
	out = append(out, replacement...)
	return append(out, tokens[1:]...), nil
}
