package models

import (
	"time"
)

// EmergencyType - категория происшествия
type EmergencyType string

const (
	TypeMedical     EmergencyType = "medical"
	TypeFire        EmergencyType = "fire"
	TypePolice      EmergencyType = "police"
	TypeNeedsReview EmergencyType = "needs_review"
)

// EmergencyTypes - фиксированный порядок перечисления категорий
var EmergencyTypes = []EmergencyType{TypeMedical, TypeFire, TypePolice}

// Responder - экипаж (скорая, пожарные, патруль)
type Responder struct {
	ID         string        `json:"id" mapstructure:"id" validate:"required"`
	Name       string        `json:"name" mapstructure:"name"`
	Type       EmergencyType `json:"type" mapstructure:"type" validate:"required,oneof=medical fire police"`
	Location   *Location     `json:"location,omitempty" mapstructure:"location"`
	Available  bool          `json:"available" mapstructure:"available"`
	LastUpdate time.Time     `json:"last_update" mapstructure:"last_update"`
}

// Clone возвращает копию экипажа, не разделяющую координаты с оригиналом
func (r *Responder) Clone() *Responder {
	if r == nil {
		return nil
	}
	c := *r
	if r.Location != nil {
		loc := *r.Location
		c.Location = &loc
	}
	return &c
}

// ETA - расчётное время прибытия
type ETA struct {
	Minutes int    `json:"minutes"`
	Range   string `json:"range"`
}

// AssignedResponder - снимок экипажа на момент назначения
type AssignedResponder struct {
	Responder
	AssignedAt time.Time `json:"assigned_at"`
	ETA        ETA       `json:"eta"`
}

func (a *AssignedResponder) Clone() *AssignedResponder {
	if a == nil {
		return nil
	}
	c := *a
	c.Responder = *a.Responder.Clone()
	return &c
}

// ResponderStats - счётчики по справочнику экипажей
type ResponderStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Medical   int `json:"medical"`
	Police    int `json:"police"`
	Fire      int `json:"fire"`
}

// ResponderFilter - параметры выборки экипажей
type ResponderFilter struct {
	Type      EmergencyType
	Available *bool
}

// ResponderList - результат выборки экипажей
type ResponderList struct {
	Responders []*Responder   `json:"responders"`
	Stats      ResponderStats `json:"stats"`
}
