package rules

// The lookups below are total: an absent key (or a nil table map) yields the
// documented fallback instead of an error.

// Intensity returns the base physical intensity for an FCI group.
func (t *RuleTable) Intensity(group string) int {
	if v, ok := t.FCIBaseIntensidade[group]; ok {
		return v
	}
	return DefaultIntensity
}

// Minutes returns the base daily exercise minutes for an FCI group. A key
// present with a null value yields nil; an absent key yields DefaultMinutes.
func (t *RuleTable) Minutes(group string) *int {
	if v, ok := t.FCIBaseMinutos[group]; ok {
		return v
	}
	m := DefaultMinutes
	return &m
}

// Mental returns the cognitive stimulation value of a working function.
func (t *RuleTable) Mental(function string) int {
	if v, ok := t.MentalFuncoes[function]; ok {
		return v
	}
	return DefaultMental
}

// Brushing returns the brushing effort base for a coat type.
func (t *RuleTable) Brushing(coat string) int {
	if v, ok := t.EscovacaoPelo[coat]; ok {
		return v
	}
	return DefaultGrooming
}

// Shedding returns the shedding base for an undercoat density.
func (t *RuleTable) Shedding(undercoat string) int {
	if v, ok := t.SheddingSubpelo[undercoat]; ok {
		return v
	}
	return DefaultGrooming
}

// Trim returns the trimming need base.
func (t *RuleTable) Trim(need string) int {
	if v, ok := t.TosaNecessidade[need]; ok {
		return v
	}
	return DefaultGrooming
}

// GroupName returns the display name of an FCI group.
func (t *RuleTable) GroupName(group string) string {
	if v, ok := t.FCIGrupos[group]; ok {
		return v
	}
	return DefaultGroupName
}
