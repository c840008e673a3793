package models

// Selection is the user's choice of scope, entities and indicators for one
// query. Builders return modified copies and never touch the receiver.
type Selection struct {
	entities   []string
	indicators []string
	scope      Scope
}

// NewSelection copies the given slices into a new selection.
func NewSelection(scope Scope, entities, indicators []string) Selection {
	return Selection{
		scope:      scope,
		entities:   dedupe(entities),
		indicators: dedupe(indicators),
	}
}

// Scope returns the selection scope.
func (s Selection) Scope() Scope { return s.scope }

// Entities returns a copy of the selected entity names.
func (s Selection) Entities() []string { return append([]string(nil), s.entities...) }

// Indicators returns a copy of the selected indicator names.
func (s Selection) Indicators() []string { return append([]string(nil), s.indicators...) }

// HasEntity reports whether name is selected.
func (s Selection) HasEntity(name string) bool { return contains(s.entities, name) }

// HasIndicator reports whether name is selected.
func (s Selection) HasIndicator(name string) bool { return contains(s.indicators, name) }

// WithScope changes the scope and clears the entity list, since entity names
// are only meaningful inside a scope.
func (s Selection) WithScope(scope Scope) Selection {
	return Selection{scope: scope, indicators: s.Indicators()}
}

// WithEntity adds an entity.
func (s Selection) WithEntity(name string) Selection {
	if s.HasEntity(name) {
		return s
	}

	out := s.clone()
	out.entities = append(out.entities, name)

	return out
}

// WithoutEntity removes an entity.
func (s Selection) WithoutEntity(name string) Selection {
	out := s.clone()
	out.entities = remove(out.entities, name)

	return out
}

// ToggleEntity adds or removes an entity.
func (s Selection) ToggleEntity(name string) Selection {
	if s.HasEntity(name) {
		return s.WithoutEntity(name)
	}

	return s.WithEntity(name)
}

// ToggleIndicator adds or removes an indicator.
func (s Selection) ToggleIndicator(name string) Selection {
	out := s.clone()
	if s.HasIndicator(name) {
		out.indicators = remove(out.indicators, name)

		return out
	}

	out.indicators = append(out.indicators, name)

	return out
}

// WithIndicators replaces the indicator list, as quick presets do.
func (s Selection) WithIndicators(names []string) Selection {
	out := s.clone()
	out.indicators = dedupe(names)

	return out
}

func (s Selection) clone() Selection {
	return Selection{
		scope:      s.scope,
		entities:   s.Entities(),
		indicators: s.Indicators(),
	}
}

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}

	return false
}

func remove(list []string, name string) []string {
	out := list[:0]

	for _, v := range list {
		if v != name {
			out = append(out, v)
		}
	}

	return out
}

func dedupe(list []string) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]bool, len(list))

	for _, v := range list {
		if v == "" || seen[v] {
			continue
		}

		seen[v] = true
		out = append(out, v)
	}

	return out
}
