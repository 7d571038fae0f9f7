package notion

import "strings"

// Page is one database row with its raw property bag.
type Page struct {
	ID          string              `json:"id"`
	CreatedTime string              `json:"created_time"`
	Properties  map[string]property `json:"properties"`
}

type property struct {
	Type     string         `json:"type"`
	Title    []textFragment `json:"title"`
	RichText []textFragment `json:"rich_text"`
	Select   *selectOption  `json:"select"`
	Number   *float64       `json:"number"`
}

type textFragment struct {
	PlainText string `json:"plain_text"`
}

type selectOption struct {
	Name string `json:"name"`
}

// Text returns the concatenated plain text of a title or rich_text column,
// or "" when the column is missing or of another type.
func (p Page) Text(col string) string {
	prop, ok := p.Properties[col]
	if !ok {
		return ""
	}

	frags := prop.Title
	if prop.Type == "rich_text" {
		frags = prop.RichText
	}

	var b strings.Builder
	for _, f := range frags {
		b.WriteString(f.PlainText)
	}
	return b.String()
}

// Select returns the selected option's label, or "" when the column is
// missing or nothing is selected.
func (p Page) Select(col string) string {
	prop, ok := p.Properties[col]
	if !ok || prop.Select == nil {
		return ""
	}
	return prop.Select.Name
}

// Number returns the column's numeric value. The second return is false
// when the column is missing or unset.
func (p Page) Number(col string) (float64, bool) {
	prop, ok := p.Properties[col]
	if !ok || prop.Number == nil {
		return 0, false
	}
	return *prop.Number, true
}
