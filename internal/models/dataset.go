package models

// Row holds one entity and its value for every selected indicator.
type Row struct {
	Values map[string]Value
	Entity Entity
}

// Get returns the row's value for an indicator, missing if absent.
func (r Row) Get(indicator string) Value {
	return r.Values[indicator]
}

// ValidCount returns how many indicators resolved to a number.
func (r Row) ValidCount() int {
	n := 0

	for _, v := range r.Values {
		if v.Valid {
			n++
		}
	}

	return n
}

// Dataset is the table assembled for one query.
type Dataset struct {
	Indicators []string
	Rows       []Row
	Scope      Scope
}

// NewDataset creates an empty dataset for the given scope and indicators.
func NewDataset(scope Scope, indicators []string) *Dataset {
	return &Dataset{
		Scope:      scope,
		Indicators: append([]string(nil), indicators...),
	}
}

// Add appends an entity. Every selected indicator gets an entry, missing if
// not present in values.
func (d *Dataset) Add(entity Entity, values map[string]Value) {
	row := Row{
		Entity: entity,
		Values: make(map[string]Value, len(d.Indicators)),
	}

	for _, ind := range d.Indicators {
		row.Values[ind] = values[ind]
	}

	d.Rows = append(d.Rows, row)
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}

	return len(d.Rows)
}

// Names returns the entity names in row order.
func (d *Dataset) Names() []string {
	if d == nil {
		return nil
	}

	names := make([]string, len(d.Rows))
	for i, r := range d.Rows {
		names[i] = r.Entity.Name
	}

	return names
}

// HasIndicator reports whether the indicator is part of the dataset.
func (d *Dataset) HasIndicator(indicator string) bool {
	if d == nil {
		return false
	}

	for _, ind := range d.Indicators {
		if ind == indicator {
			return true
		}
	}

	return false
}

// Value looks up one cell.
func (d *Dataset) Value(entity, indicator string) Value {
	if d == nil {
		return Missing()
	}

	for _, r := range d.Rows {
		if r.Entity.Name == entity {
			return r.Get(indicator)
		}
	}

	return Missing()
}

// Column returns the values of one indicator in row order.
func (d *Dataset) Column(indicator string) []Value {
	if d == nil {
		return nil
	}

	col := make([]Value, len(d.Rows))
	for i, r := range d.Rows {
		col[i] = r.Get(indicator)
	}

	return col
}
