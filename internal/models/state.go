package models

import "time"

// State - все данные трекера: договор и введенные периоды.
// Порядок периодов - порядок добавления, он определяет приоритет при наложении.
type State struct {
	ContractStart  *time.Time   `json:"contract_start"`
	InitialBalance int          `json:"initial_balance"` // может быть отрицательным
	WorkPeriods    []WorkPeriod `json:"work_periods"`
	SickPeriods    []SickPeriod `json:"sick_periods"`
}

// NewState возвращает состояние первого запуска
func NewState() *State {
	return &State{
		WorkPeriods: []WorkPeriod{},
		SickPeriods: []SickPeriod{},
	}
}

// HasContract проверяет, задана ли дата начала договора
func (s *State) HasContract() bool {
	return s.ContractStart != nil
}

// Clone returns a deep copy, so commands can mutate it without touching the committed state.
func (s *State) Clone() *State {
	clone := &State{
		InitialBalance: s.InitialBalance,
		WorkPeriods:    append([]WorkPeriod{}, s.WorkPeriods...),
		SickPeriods:    append([]SickPeriod{}, s.SickPeriods...),
	}
	if s.ContractStart != nil {
		start := *s.ContractStart
		clone.ContractStart = &start
	}
	return clone
}
