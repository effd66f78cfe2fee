package nextrip

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixtureDocument []byte

var (
	fixtureOnce       sync.Once
	fixtureDepartures []Departure
	fixtureErr        error
)

func ParseFixtures(document []byte) ([]Departure, error) {
	var response Response
	if err := yaml.Unmarshal(document, &response); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}

	if err := validator.New().Struct(response); err != nil {
		return nil, fmt.Errorf("validate fixtures: %w", err)
	}

	// Relationships must survive a round trip through their GTFS-realtime equivalent
	for _, departure := range response.Departures {
		relationship, err := departure.ScheduleRelationship.GTFS()
		if err != nil {
			return nil, fmt.Errorf("validate fixture %s: %w", departure.TripID, err)
		}

		if _, err := ScheduleRelationshipFromGTFS(relationship); err != nil {
			return nil, fmt.Errorf("validate fixture %s: %w", departure.TripID, err)
		}
	}

	return response.Departures, nil
}

// LoadFixtures parses the departures compiled into the binary once. Must be called before Fixtures.
func LoadFixtures() error {
	fixtureOnce.Do(func() {
		fixtureDepartures, fixtureErr = ParseFixtures(fixtureDocument)
		if fixtureErr == nil {
			log.Debug().Int("length", len(fixtureDepartures)).Msg("Loaded fixture departures")
		}
	})

	return fixtureErr
}

// Fixtures returns a copy of the loaded departures that the caller is free to modify
func Fixtures() ([]Departure, error) {
	if fixtureDepartures == nil {
		return nil, errors.New("fixtures have not been loaded")
	}

	var departures []Departure
	if err := copier.CopyWithOption(&departures, &fixtureDepartures, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("copy fixtures: %w", err)
	}

	return departures, nil
}

// Reduce strips a response down to the fields in the basic API group
func (r *Response) Reduce() (interface{}, error) {
	return sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, r)
}
