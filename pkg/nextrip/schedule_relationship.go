package nextrip

import (
	"fmt"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
)

// ScheduleRelationship is the status of a departure relative to its published schedule
type ScheduleRelationship string

//goland:noinspection GoUnusedConst
const (
	ScheduleRelationshipNoData    ScheduleRelationship = "NoData"
	ScheduleRelationshipScheduled ScheduleRelationship = "Scheduled"
	ScheduleRelationshipSkipped   ScheduleRelationship = "Skipped"
)

func (s ScheduleRelationship) GTFS() (gtfs.TripUpdate_StopTimeUpdate_ScheduleRelationship, error) {
	switch s {
	case ScheduleRelationshipNoData:
		return gtfs.TripUpdate_StopTimeUpdate_NO_DATA, nil
	case ScheduleRelationshipScheduled:
		return gtfs.TripUpdate_StopTimeUpdate_SCHEDULED, nil
	case ScheduleRelationshipSkipped:
		return gtfs.TripUpdate_StopTimeUpdate_SKIPPED, nil
	default:
		return 0, fmt.Errorf("unknown schedule relationship %q", string(s))
	}
}

// ScheduleRelationshipFromGTFS maps a GTFS-realtime stop time update relationship.
// UNSCHEDULED has no NexTrip equivalent.
func ScheduleRelationshipFromGTFS(relationship gtfs.TripUpdate_StopTimeUpdate_ScheduleRelationship) (ScheduleRelationship, error) {
	switch relationship {
	case gtfs.TripUpdate_StopTimeUpdate_NO_DATA:
		return ScheduleRelationshipNoData, nil
	case gtfs.TripUpdate_StopTimeUpdate_SCHEDULED:
		return ScheduleRelationshipScheduled, nil
	case gtfs.TripUpdate_StopTimeUpdate_SKIPPED:
		return ScheduleRelationshipSkipped, nil
	default:
		return "", fmt.Errorf("gtfs schedule relationship %s has no nextrip equivalent", relationship.String())
	}
}
