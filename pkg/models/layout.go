package models

// Widget kinds understood by the card renderer.
const (
	WidgetText  = "text"
	WidgetLink  = "link"
	WidgetFile  = "file"
	WidgetCount = "count"
	WidgetProof = "proof"
)

// CardLayout lists, per record type, which fields a card shows and in what order.
type CardLayout struct {
	Publication []Field `yaml:"publication" toml:"publication" json:"publication"`
	Patent      []Field `yaml:"patent" toml:"patent" json:"patent"`
}

type Field struct {
	Name   string `yaml:"name" toml:"name" json:"name"`
	Label  string `yaml:"label" toml:"label" json:"label"`
	Widget string `yaml:"widget,omitempty" toml:"widget,omitempty" json:"widget,omitempty"`
}

// Detail is one rendered line of a card.
type Detail struct {
	Label string
	Value string
	Kind  string // text, link, image, pdf
	URL   string
}
