// Package fields carries the static field-description reference data
// for the two analyzed tables. The same column name can mean different
// things in each table, so lookups are scoped per table.
package fields

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed graphics.yaml
var graphicsYAML []byte

//go:embed statics.yaml
var staticsYAML []byte

var byTable = map[string]map[string]string{
	"graphics": mustDecode(graphicsYAML),
	"statics":  mustDecode(staticsYAML),
}

func mustDecode(data []byte) map[string]string {
	m := map[string]string{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		panic("fields: bad embedded description data: " + err.Error())
	}
	return m
}

// Descriptions returns the description lookup for a table. Columns
// absent from the map render with an empty description; that is
// expected for undocumented fields, not an error.
func Descriptions(table string) map[string]string {
	return byTable[table]
}
