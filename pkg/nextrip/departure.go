package nextrip

import (
	"github.com/liip/sheriff"
	"golang.org/x/exp/slices"
)

type Departure struct {
	Actual               bool                 `json:"actual" yaml:"actual" groups:"basic"`
	TripID               string               `json:"trip_id" yaml:"trip_id" groups:"basic" validate:"required"`
	DepartureText        string               `json:"departure_text" yaml:"departure_text" groups:"basic" validate:"required"`
	RouteShortName       string               `json:"route_short_name" yaml:"route_short_name" groups:"basic" validate:"required"`
	Terminal             *string              `json:"terminal,omitempty" yaml:"terminal" groups:"basic"`
	ScheduleRelationship ScheduleRelationship `json:"schedule_relationship" yaml:"schedule_relationship" groups:"basic"`
}

// Marshal hands the whole departure to encoding/json so keys keep their declaration order.
// Every field belongs to the basic group.
func (d Departure) Marshal(options *sheriff.Options) (interface{}, error) {
	if !slices.Contains(options.Groups, "basic") {
		return nil, nil
	}

	return d, nil
}

type Response struct {
	Departures []Departure `json:"departures" yaml:"departures" groups:"basic" validate:"required,min=1,dive"`
}
