package form

import "time"

// Model holds the typed value a field is bound to. A nil value is absent.
type Model interface {
	Object() *time.Time
	SetObject(value *time.Time)
}

// ValueModel is an in-memory Model.
type ValueModel struct {
	value *time.Time
}

var _ Model = (*ValueModel)(nil)

// NewModel returns a model holding value.
func NewModel(value *time.Time) *ValueModel {
	return &ValueModel{value: value}
}

func (m *ValueModel) Object() *time.Time {
	return m.value
}

func (m *ValueModel) SetObject(value *time.Time) {
	m.value = value
}
