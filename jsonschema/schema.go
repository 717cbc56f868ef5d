package jsonschema

// Schema is a minimal JSON Schema representation used for export.
// Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Type        string   `json:"type,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Definitions keyed by name, used when several enumerations are exported
	// together.
	Defs map[string]*Schema `json:"$defs,omitempty"`
}

// ArrayOf wraps item into an array schema.
func ArrayOf(item *Schema) *Schema {
	return &Schema{Type: "array", Items: item}
}
