package treewalk

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnumerationOrder controls how a single-level listing groups its entries.
// The numeric values are persisted in configuration files and must not change.
type EnumerationOrder int

const (
	// OrderNone yields one combined listing in the order the provider returns it.
	OrderNone EnumerationOrder = 0

	// OrderFilesThenDirectories yields every file, then every directory.
	OrderFilesThenDirectories EnumerationOrder = 1

	// OrderDirectoriesThenFiles yields every directory, then every file.
	OrderDirectoriesThenFiles EnumerationOrder = 2
)

var orderNames = map[EnumerationOrder]string{
	OrderNone:                 "none",
	OrderFilesThenDirectories: "files-first",
	OrderDirectoriesThenFiles: "dirs-first",
}

// Aliases accepted by ParseOrder in addition to the canonical names.
var orderAliases = map[string]EnumerationOrder{
	"none":                 OrderNone,
	"files-first":          OrderFilesThenDirectories,
	"filesthendirectories": OrderFilesThenDirectories,
	"files":                OrderFilesThenDirectories,
	"dirs-first":           OrderDirectoriesThenFiles,
	"directoriesthenfiles": OrderDirectoriesThenFiles,
	"dirs":                 OrderDirectoriesThenFiles,
}

// Valid reports whether o is one of the defined orders.
func (o EnumerationOrder) Valid() bool {
	_, ok := orderNames[o]
	return ok
}

// String returns the canonical name of the order.
func (o EnumerationOrder) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("EnumerationOrder(%d)", int(o))
}

// ParseOrder parses an order from its integer value ("0", "1", "2") or from a
// case-insensitive name such as "files-first" or "DirectoriesThenFiles".
func ParseOrder(s string) (EnumerationOrder, error) {
	trimmed := strings.TrimSpace(s)
	if n, err := strconv.Atoi(trimmed); err == nil {
		o := EnumerationOrder(n)
		if !o.Valid() {
			return OrderNone, fmt.Errorf("%w: %d", ErrInvalidOrder, n)
		}
		return o, nil
	}

	if o, ok := orderAliases[strings.ToLower(trimmed)]; ok {
		return o, nil
	}
	return OrderNone, fmt.Errorf("%w: %q (expected none, files-first or dirs-first)", ErrInvalidOrder, s)
}

// Set implements pflag.Value so an order can be bound directly to a flag.
func (o *EnumerationOrder) Set(s string) error {
	parsed, err := ParseOrder(s)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Type implements pflag.Value.
func (o *EnumerationOrder) Type() string {
	return "order"
}

// MarshalYAML stores the numeric value so persisted configuration stays
// stable even if names change.
func (o EnumerationOrder) MarshalYAML() (interface{}, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, int(o))
	}
	return int(o), nil
}

// UnmarshalYAML accepts either the numeric value or a name.
func (o *EnumerationOrder) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", ErrInvalidOrder, value.Line)
	}
	return o.Set(value.Value)
}
